package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/caredesk/caredesk/internal/domain/admin"
	"github.com/caredesk/caredesk/internal/domain/appointment"
	"github.com/caredesk/caredesk/internal/domain/doctor"
	"github.com/caredesk/caredesk/internal/domain/patient"
	"github.com/caredesk/caredesk/internal/domain/payment"
	"github.com/caredesk/caredesk/internal/domain/pharmacyorder"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the admin dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			d := admin.NewDashboard(
				appointment.NewGateway(a.client),
				doctor.NewGateway(a.client),
				patient.NewGateway(a.client),
				payment.NewGateway(a.client),
				pharmacyorder.NewGateway(a.client),
				a.log,
			)

			feedLimit, _ := cmd.Flags().GetInt("activities")
			watch, _ := cmd.Flags().GetBool("watch")
			if !watch {
				return renderDashboard(cmd.Context(), d, feedLimit)
			}
			return watchDashboard(a, d, feedLimit)
		},
	}
	cmd.Flags().Bool("watch", false, "Keep refreshing on the configured interval")
	cmd.Flags().Int("activities", 10, "Recent activity rows to show")
	return cmd
}

func renderDashboard(ctx context.Context, d *admin.Dashboard, feedLimit int) error {
	stats, err := d.Overview(ctx)
	if err != nil {
		return err
	}
	feed, err := d.RecentActivities(ctx, feedLimit)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{
		"stats":      stats,
		"activities": feed,
	})
}

// watchDashboard re-renders on the configured interval until interrupted.
func watchDashboard(a *app, d *admin.Dashboard, feedLimit int) error {
	if err := renderDashboard(context.Background(), d, feedLimit); err != nil {
		return err
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %s", a.cfg.RefreshInterval)
	_, err := c.AddFunc(spec, func() {
		if err := renderDashboard(context.Background(), d, feedLimit); err != nil {
			a.log.Error().Err(err).Msg("dashboard refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}
	c.Start()
	defer c.Stop()

	a.log.Info().Dur("interval", a.cfg.RefreshInterval).Msg("watching dashboard, ctrl-c to stop")
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	return nil
}
