package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/taskhive/taskhive/adapters/httpapi"
	"github.com/taskhive/taskhive/config/taskhiveenv"
	"github.com/taskhive/taskhive/internal/logging"
)

// newCmdServe returns the command that runs the REST API server.
func newCmdServe() *cobra.Command {
	var listen string
	var configPath string
	c := &cobra.Command{
		Use:           "serve",
		Short:         "Run the REST API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			env, err := taskhiveenv.Resolve(configPath, os.Getenv(taskhiveenv.DirEnvKey), workDir)
			if err != nil {
				return err
			}
			if listen == "" {
				listen = env.Server.Listen
			}
			// The config file's store URL applies only when the flag keeps
			// its default.
			if f := findFlag(cmd, "db-url"); f != nil && !f.Changed && env.Store.URL != "" {
				_ = f.Value.Set(env.Store.URL)
			}

			if env.Logging.RetentionDays > 0 {
				if err := logging.CleanupOldLogFiles(env.LogDir(), env.Logging.RetentionDays); err != nil {
					log.Warn(ctx, "log cleanup failed", "error", err)
				}
			}

			uc, err := buildUseCases(cmd)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              listen,
				Handler:           httpapi.NewHandler(uc, log),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info(ctx, "server listening", "addr", listen, "db_url", getDBURL(cmd))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				log.Info(context.Background(), "shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
	c.Flags().StringVar(&listen, "listen", "", "Listen address (default from taskhive.yml or :8080)")
	c.Flags().StringVar(&configPath, "config", os.Getenv(taskhiveenv.ConfigEnvKey), "Path to taskhive.yml (env TASKHIVE_CONFIG)")
	return c
}
