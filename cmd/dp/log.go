package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/avandyck/daypack/internal/dates"
	"github.com/avandyck/daypack/internal/models"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	var (
		configPath string
		shipped    string
	)

	cmd := &cobra.Command{
		Use:   "log <what you worked on>",
		Short: "Log today's daily entry",
		Long:  "Records what was worked on today. Run again on the same day to append to the existing entry.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, configPath, strings.Join(args, " "), shipped)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Daypack config file")
	cmd.Flags().StringVar(&shipped, "shipped", "", "what shipped today")
	return cmd
}

func runLog(cmd *cobra.Command, configPath, workedOn, shipped string) error {
	out := cmd.OutOrStdout()

	_, st, err := openStore(out, configPath)
	if err != nil {
		return err
	}
	ctx := context.Background()
	today := dates.Today()

	// Same-day captures append to the existing entry.
	for _, e := range st.FetchDailyEntries(ctx) {
		if e.TraceDate != today {
			continue
		}
		e.WorkedOn = appendLine(e.WorkedOn, workedOn)
		if shipped != "" {
			e.Shipped = appendLine(e.Shipped, shipped)
		}
		st.UpdateDailyEntry(ctx, &e)
		fmt.Fprintf(out, "Appended to today's entry (%s)\n", today)
		return nil
	}

	st.SaveDailyEntry(ctx, &models.DailyEntry{
		WorkedOn: workedOn,
		Shipped:  shipped,
	})
	fmt.Fprintf(out, "Logged entry for %s\n", today)
	return nil
}

// appendLine joins existing text and an addition on separate lines.
func appendLine(existing, add string) string {
	if existing == "" {
		return add
	}
	return existing + "\n" + add
}
