package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/taskhive/taskhive/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "taskhive",
		Short:   "Taskhive board API server and admin CLI",
		Long:    "Taskhive board API server and admin CLI",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global db-url flag
	defaultDB := os.Getenv("TASKHIVE_DB_URL")
	if defaultDB == "" {
		defaultDB = "sqlite:taskhive.db"
	}
	cmd.PersistentFlags().String("db-url", defaultDB, "Database URL (env TASKHIVE_DB_URL) (sqlite:/path/to.db | memory: | file:/path/to/seed.yml)")

	cmd.PersistentFlags().String("log-format", "text", "Log format (text|json) (env TASKHIVE_LOG_FORMAT)")
	cmd.PersistentFlags().String("log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR) (env TASKHIVE_LOG_LEVEL)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("TASKHIVE_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		level, _ := c.Flags().GetString("log-level")
		if env := os.Getenv("TASKHIVE_LOG_LEVEL"); env != "" {
			level = env
		}
		l, err := logging.New(format, logging.ParseLevel(level))
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	// Add subcommands
	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdConfig())
	cmd.AddCommand(newCmdServe())
	cmd.AddCommand(newCmdAdmin())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
