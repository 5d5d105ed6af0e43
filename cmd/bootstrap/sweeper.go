package bootstrap

import (
	"context"
	"log/slog"

	"staybook/internal/pkg/config"
	"staybook/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(startSweeper),
)

// startSweeper runs the stale-hold expiry job on a fixed interval for the
// whole process lifetime.
func startSweeper(lc fx.Lifecycle, cfg config.Config, sweep commands.SweepCommands, logger *slog.Logger) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(cfg.Booking.SweepInterval),
		gocron.NewTask(func(ctx context.Context) {
			if _, err := sweep.ExpireStaleHolds(ctx); err != nil {
				logger.Error("stale hold sweep failed", "error", err)
			}
		}),
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			logger.Info("hold expiry sweeper started",
				"interval", cfg.Booking.SweepInterval,
				"hold_ttl", cfg.Booking.HoldTTL)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return scheduler.Shutdown()
		},
	})

	return nil
}
