package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chronline/chronline/internal/config"
	storepkg "github.com/chronline/chronline/internal/store"
	storemem "github.com/chronline/chronline/internal/store/memory"
	storepg "github.com/chronline/chronline/internal/store/postgres"
	storelite "github.com/chronline/chronline/internal/store/sqlite"
)

// NewStore builds a store.Store for the configured driver.
// The postgres driver launches an async bootstrap check and returns
// the store immediately for fast startup.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "memory":
		return storemem.New(), nil

	case "sqlite":
		st, err := storelite.New(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Debug().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("sqlite store ready")
		return st, nil

	case "postgres":
		dsn := cfg.PostgresDSN
		if dsn == "" {
			return nil, fmt.Errorf("CHRONLINE_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}

		// Open connection synchronously since health checks need it immediately
		db, err := storepg.Open(dsn)
		if err != nil {
			return nil, err
		}

		// Async bootstrap check with configurable timeout; don't block startup
		go func() {
			bootstrapTimeout := time.Duration(cfg.BootstrapTimeoutSeconds) * time.Second
			bootstrapCtx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
			defer cancel()

			if err := storepg.Bootstrap(bootstrapCtx, dsn); err != nil {
				log.Warn().Err(err).Str("driver", cfg.DBDriver).Msg("store bootstrap check failed")
			} else {
				log.Debug().Str("driver", cfg.DBDriver).Msg("store bootstrap check completed")
			}
		}()

		return storepg.NewWithDB(db), nil

	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
