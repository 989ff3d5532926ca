package bootstrap

import (
	"log/slog"

	"amaluz-seeder/internal/infra/uow"
	"amaluz-seeder/internal/pkg/config"
	"amaluz-seeder/internal/seed"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Provide(
		NewUnitOfWork,
		NewRunner,
	),
)

func NewUnitOfWork(pool *pgxpool.Pool) seed.UnitOfWork {
	return uow.NewPostgresUoW(pool)
}

func NewRunner(cfg config.Config, u seed.UnitOfWork, log *slog.Logger) *seed.Runner {
	return seed.NewRunner(cfg, u, log)
}
