package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avandyck/daypack/internal/dashboard"
	"github.com/avandyck/daypack/internal/insights"
	"github.com/avandyck/daypack/internal/notify"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
		resync     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local web dashboard",
		Long:  "Launches the Daypack dashboard, syncs the cache from the backend, and runs the digest schedule if one is configured.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port, resync)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Daypack config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (default from config)")
	cmd.Flags().DurationVar(&resync, "resync", 10*time.Minute, "background cache resync interval, 0 to disable")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int, resync time.Duration) error {
	out := cmd.OutOrStdout()

	cfg, st, err := openStore(out, configPath)
	if err != nil {
		return err
	}
	if port == 0 {
		port = cfg.Dashboard.Port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(out, "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	// Warm the cache before serving.
	if !st.LocalOnly() {
		if err := st.SyncAll(ctx); err != nil {
			fmt.Fprintf(out, "Initial sync incomplete: %v\n", err)
		}
	}

	// Background resync keeps the cache fresh while the dashboard runs.
	if resync > 0 && !st.LocalOnly() {
		go func() {
			ticker := time.NewTicker(resync)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					st.SyncAll(ctx)
				}
			}
		}()
	}

	// Scheduled digest delivery.
	if cfg.Notify.Schedule != "" {
		if err := notify.ValidateSchedule(cfg.Notify.Schedule); err != nil {
			return err
		}
		notifiers, err := buildNotifiers(cfg)
		if err != nil {
			return err
		}
		if len(notifiers) > 0 {
			fmt.Fprintf(out, "Digest schedule %q active (%d notifiers)\n", cfg.Notify.Schedule, len(notifiers))
			go notify.RunSchedule(ctx, cfg.Notify.Schedule, func(ctx context.Context) {
				report := insights.Compute(gatherData(st), time.Now())
				title, body := insights.FormatDigest(report)
				notify.Broadcast(ctx, notifiers, title, body)
			})
		}
	}

	return dashboard.Start(ctx, dashboard.StartOpts{
		Deps: dashboard.Deps{
			Store: st,
			Coach: insights.NewCoach(cfg.Coach.AnthropicAPIKey, cfg.Coach.Model),
			Owner: cfg.Owner,
		},
		Port: port,
		Out:  out,
	})
}
