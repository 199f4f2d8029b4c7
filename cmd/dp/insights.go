package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avandyck/daypack/internal/insights"
	"github.com/spf13/cobra"
)

func newInsightsCmd() *cobra.Command {
	var (
		configPath string
		coach      bool
		exportPath string
		noSync     bool
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Print the current insights report",
		Long:  "Computes streak, consistency, completion, and execution metrics from the full history, with flagged gaps and wins.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsights(cmd, configPath, coach, exportPath, noSync)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Daypack config file")
	cmd.Flags().BoolVar(&coach, "coach", false, "append a generative coaching summary")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the report as JSON to this path")
	cmd.Flags().BoolVar(&noSync, "no-sync", false, "compute from the cache without refreshing first")
	return cmd
}

func runInsights(cmd *cobra.Command, configPath string, coach bool, exportPath string, noSync bool) error {
	out := cmd.OutOrStdout()
	ctx := context.Background()

	cfg, st, err := openStore(out, configPath)
	if err != nil {
		return err
	}

	if !noSync && !st.LocalOnly() {
		if err := st.SyncAll(ctx); err != nil {
			fmt.Fprintf(out, "Sync incomplete, using cached data: %v\n", err)
		}
	}

	report := insights.Compute(gatherData(st), time.Now())

	fmt.Fprintf(out, "Insights for %s\n\n", cfg.Owner)
	fmt.Fprintf(out, "Streak:           %d days\n", report.Streak)
	fmt.Fprintf(out, "Consistency:      %.0f%% (last 30 days)\n", report.ConsistencyPercent)
	fmt.Fprintf(out, "Task completion:  %.0f%%\n", report.TaskCompletionRate)
	fmt.Fprintf(out, "Idea execution:   %.0f%%\n", report.IdeaExecutionRate)
	fmt.Fprintf(out, "Outcome success:  %.0f%%\n", report.OutcomeSuccessRate)
	fmt.Fprintf(out, "Overdue tasks:    %d\n", report.OverdueTasks)
	fmt.Fprintf(out, "Pending gates:    %d\n", report.PendingGates)

	if len(report.Gaps) > 0 {
		fmt.Fprintln(out, "\nGaps:")
		for _, g := range report.Gaps {
			fmt.Fprintf(out, "  - %s\n", g)
		}
	}
	if len(report.Wins) > 0 {
		fmt.Fprintln(out, "\nWins:")
		for _, w := range report.Wins {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	if coach {
		c := insights.NewCoach(cfg.Coach.AnthropicAPIKey, cfg.Coach.Model)
		summary := c.Summary(ctx, report)
		fmt.Fprintf(out, "\nCoach:\n%s\n", wrapIndent(summary, "  "))
	}

	if exportPath != "" {
		if err := insights.Export(exportPath, report); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nReport written to %s\n", exportPath)
	}
	return nil
}

// wrapIndent prefixes every line of s with the given indent.
func wrapIndent(s, indent string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}
