package components

import (
	"staybook/internal/infra/readstore"
	"staybook/internal/infra/uow"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// UnitOfWork owns write transactions and the command-side reads.
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Query-side read store bound to the pool.
		fx.Annotate(
			NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
	),
)

func NewBookingReadStore(pool *pgxpool.Pool) *readstore.BookingReadStore {
	return readstore.NewBookingReadStore(pool)
}
