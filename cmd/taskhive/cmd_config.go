package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/taskhive/taskhive/config/taskhiveenv"
)

// newCmdConfig returns the parent command for configuration operations.
func newCmdConfig() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Read and initialize configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(newCmdConfigShow())
	c.AddCommand(newCmdConfigInit())
	return c
}

// newCmdConfigShow returns a command that resolves and shows the current
// configuration.
func newCmdConfigShow() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:           "show",
		Short:         "Resolve and print the effective configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			env, err := taskhiveenv.Resolve(file, os.Getenv(taskhiveenv.DirEnvKey), workDir)
			if err != nil {
				return err
			}
			// Print a concise summary to stdout
			fmt.Fprintf(cmd.OutOrStdout(), "version=%d listen=%s store=%s log_dir=%s\n",
				env.Version, env.Server.Listen, env.Store.URL, env.LogDir())
			return nil
		},
	}
	c.Flags().StringVarP(&file, "file", "f", os.Getenv(taskhiveenv.ConfigEnvKey), "Path to taskhive.yml (env TASKHIVE_CONFIG)")
	return c
}

// newCmdConfigInit returns a command that writes a default taskhive.yml.
func newCmdConfigInit() *cobra.Command {
	var forceFlag bool
	c := &cobra.Command{
		Use:           "init",
		Short:         "Write a default taskhive.yml to the working directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := taskhiveenv.ConfigFileName
			if !forceFlag {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use -f to overwrite)", path)
				}
			}
			data, err := taskhiveenv.InitialConfigYAML()
			if err != nil {
				return fmt.Errorf("generating default config: %w", err)
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing taskhive.yml")
	return c
}
