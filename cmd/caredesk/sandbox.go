package main

import (
	"github.com/spf13/cobra"

	"github.com/caredesk/caredesk/internal/config"
	"github.com/caredesk/caredesk/internal/platform/sandbox"
)

func sandboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Run a local fake backend with seeded demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := newLogger(cfg)

			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = cfg.SandboxAddr
			}

			srv := sandbox.NewServer(logger)
			logger.Info().Str("addr", addr).Msg("sandbox listening")
			logger.Info().Msg("login with admin@caredesk.local / admin123")
			return srv.Start(addr)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (defaults to SANDBOX_ADDR)")
	return cmd
}
