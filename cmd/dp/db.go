package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avandyck/daypack/internal/config"
	"github.com/avandyck/daypack/internal/db"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Backend database management commands",
	}

	cmd.AddCommand(newDBInitCmd())
	return cmd
}

func newDBInitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Provision the hosted backend database",
		Long:  "Creates the Daypack database on the configured backend and migrates all tables. Prompts for the password when the config omits it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBInit(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Daypack config file")
	return cmd
}

func runDBInit(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if !cfg.Backend.Configured() {
		return fmt.Errorf("no backend configured in %s — set backend.host first", configPath)
	}
	fmt.Fprintf(out, "Loaded config for owner %q from %s\n", cfg.Owner, configPath)

	backend := cfg.Backend
	if backend.Password == "" {
		pw, err := promptPassword(out, fmt.Sprintf("Password for %s@%s: ", backend.User, backend.Host))
		if err != nil {
			return err
		}
		backend.Password = pw
	}

	adminDB, err := db.ConnectAdmin(backend)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Connected to %s:%d\n", backend.Host, backend.Port)

	if err := db.CreateDatabase(adminDB, backend.Database); err != nil {
		return err
	}
	fmt.Fprintf(out, "Database %s ready\n", backend.Database)

	gormDB, err := db.Connect(backend)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(db.AllModels()))

	fmt.Fprintln(out, "\nDaypack backend initialized successfully.")
	return nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (piped input in scripts).
func promptPassword(out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
