package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/pettymatters/internal/adapter/memory"
	"github.com/bornholm/pettymatters/internal/config"
	"github.com/bornholm/pettymatters/internal/core/service"
	"github.com/pkg/errors"
)

// getWriteQueueFromConfig starts the worker applying queued writes. It stops
// with ctx, after applying the writes already queued.
var getWriteQueueFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*memory.WriteQueue, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	queue := memory.NewWriteQueue(conf.Queue.Capacity, service.NewStoreWriter(store, store))

	go func() {
		if err := queue.Run(ctx); err != nil {
			slog.ErrorContext(ctx, "write queue stopped", slogx.Error(err))
		}
	}()

	return queue, nil
})

var getForumFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.Forum, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	queue, err := getWriteQueueFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewForum(store, store, queue), nil
})
