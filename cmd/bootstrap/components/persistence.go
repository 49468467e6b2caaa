package components

import (
	"lessence-checkout/internal/infra/db"
	"lessence-checkout/internal/infra/readstore"
	"lessence-checkout/internal/infra/uow"
	"lessence-checkout/internal/usecase/queries"
	"lessence-checkout/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewCommandReads,
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewCommandReads exposes pool-backed reads for validation that runs
// before any transaction is opened.
func NewCommandReads(u shared.UnitOfWork) shared.CommandReads {
	return u.CommandReads()
}
