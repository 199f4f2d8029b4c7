package main

import (
	"context"
	"fmt"
	"time"

	"github.com/avandyck/daypack/internal/insights"
	"github.com/avandyck/daypack/internal/notify"
	"github.com/spf13/cobra"
)

func newDigestCmd() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Send the insights digest now",
		Long:  "Computes the insights report and delivers it to every configured notifier, regardless of the schedule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, configPath, dryRun)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Daypack config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the digest instead of sending it")
	return cmd
}

func runDigest(cmd *cobra.Command, configPath string, dryRun bool) error {
	out := cmd.OutOrStdout()
	ctx := context.Background()

	cfg, st, err := openStore(out, configPath)
	if err != nil {
		return err
	}

	if !st.LocalOnly() {
		if err := st.SyncAll(ctx); err != nil {
			fmt.Fprintf(out, "Sync incomplete, using cached data: %v\n", err)
		}
	}

	report := insights.Compute(gatherData(st), time.Now())
	title, body := insights.FormatDigest(report)

	if dryRun {
		fmt.Fprintf(out, "%s\n\n%s\n", title, body)
		return nil
	}

	notifiers, err := buildNotifiers(cfg)
	if err != nil {
		return err
	}
	if len(notifiers) == 0 {
		return fmt.Errorf("no notifiers configured in %s — set notify.slack or notify.discord", configPath)
	}

	notify.Broadcast(ctx, notifiers, title, body)
	for _, n := range notifiers {
		fmt.Fprintf(out, "Digest sent via %s\n", n.Name())
	}
	return nil
}
