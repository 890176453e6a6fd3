package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/pettymatters/internal/adapter/cache"
	gormAdapter "github.com/bornholm/pettymatters/internal/adapter/gorm"
	"github.com/bornholm/pettymatters/internal/adapter/memory"
	"github.com/bornholm/pettymatters/internal/config"
	"github.com/pkg/errors"
)

// getBackendStoreFromConfig opens the configured database. When it cannot be
// opened and ephemeral storage is allowed, data is kept in memory instead and
// lost on restart.
var getBackendStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (cache.Backend, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		if !conf.Storage.EphemeralAllowed {
			return nil, errors.Wrap(err, "could not open database")
		}

		slog.WarnContext(ctx, "could not open database, falling back to ephemeral in-memory storage", slogx.Error(err))

		return memory.NewStore(), nil
	}

	return gormAdapter.NewStore(db), nil
})

var getStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*cache.Store, error) {
	backend, err := getBackendStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return cache.NewStore(backend, conf.Cache.Size, conf.Cache.TTL), nil
})
