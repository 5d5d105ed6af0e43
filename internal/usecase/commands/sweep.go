package commands

import (
	"context"
	"log/slog"

	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"
)

// SweepCommands releases date ranges held by pending bookings whose guests
// never completed payment within the hold TTL.
type SweepCommands interface {
	ExpireStaleHolds(ctx context.Context) (int64, error)
}

type sweepCommandsImpl struct {
	uow   shared.UnitOfWork
	cfg   config.BookingConfig
	clock clock.Clock
}

func NewSweepCommands(uow shared.UnitOfWork, cfg config.BookingConfig, clk clock.Clock) SweepCommands {
	return &sweepCommandsImpl{
		uow:   uow,
		cfg:   cfg,
		clock: clk,
	}
}

func (s *sweepCommandsImpl) ExpireStaleHolds(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-s.cfg.HoldTTL)

	var released int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Bookings().ExpireStaleHolds(ctx, tx.DB(), cutoff)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		released = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	if released > 0 {
		slog.Info("expired stale pending holds", "count", released, "cutoff", cutoff)
	}
	return released, nil
}
