package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"IssueCreator/internal/app"
	"IssueCreator/internal/config"
	"IssueCreator/internal/logging"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP trigger and run the weekly scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := config.Load()
			logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

			application, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			if err := application.Serve(ctx); err != nil {
				logger.Error("application stopped", "error", err)
				return err
			}
			return nil
		},
	}
}
