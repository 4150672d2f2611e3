package main

import (
	"os"

	"github.com/spf13/cobra"

	"hywoma/internal/daemon"
	"hywoma/internal/logging"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the mediation daemon in the foreground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: os.Stderr,
			})
			if err != nil {
				return err
			}
			return daemon.New(cfg, logger).Run()
		},
	}
}
