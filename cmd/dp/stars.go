package main

import (
	"context"
	"fmt"

	"github.com/avandyck/daypack/internal/stars"
	"github.com/spf13/cobra"
)

func newStarsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "stars",
		Short: "Import starred GitHub repos as discoveries",
		Long:  "Fetches the authenticated user's starred repositories and records each new one as a discovery, skipping URLs already present.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStars(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Daypack config file")
	return cmd
}

func runStars(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()

	cfg, st, err := openStore(out, configPath)
	if err != nil {
		return err
	}
	if cfg.GitHub.Token == "" {
		return fmt.Errorf("no github token configured in %s — set github.token first", configPath)
	}

	imp, err := stars.New(stars.Opts{Token: cfg.GitHub.Token, Store: st})
	if err != nil {
		return err
	}

	ctx := context.Background()
	// Refresh discoveries first so the dedupe set is current.
	st.FetchDiscoveries(ctx)

	created, err := imp.Run(ctx)
	if err != nil {
		return err
	}
	if created == 0 {
		fmt.Fprintln(out, "No new starred repos.")
		return nil
	}
	fmt.Fprintf(out, "Imported %d starred repos as discoveries.\n", created)
	return nil
}
