package db_fx

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gymapi/internal/config"
	"gymapi/internal/infra"
	"gymapi/internal/repositories"
	"gymapi/internal/repositories/memory"
)

var Module = fx.Provide(
	provideStore)

func provideStore(lc fx.Lifecycle, cfg *config.Config, log *logrus.Logger) (repositories.Store, error) {
	if cfg.DBDriver == config.DriverMemory {
		log.Warn("Using the in-memory store, records are lost on restart")
		return memory.NewStore(), nil
	}

	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infra.ClosePostgresql(db, log)
		},
	})

	if cfg.MigrateOnStart {
		if err := infra.Migrate(cfg.DatabaseURL, log); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	return repositories.NewGormStore(db, cfg.TxIsolation), nil
}
