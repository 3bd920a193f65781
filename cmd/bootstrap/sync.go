package bootstrap

import (
	"context"
	"log/slog"

	"slotbook/internal/infra/repository"
	"slotbook/internal/infra/sync"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// SyncModule wires the live collection pipeline: the watcher listens for
// change notifications, reloads the collection, and publishes snapshots to
// the hub; the availability query consumes them. Both run for the lifetime
// of the app.
var SyncModule = fx.Module("sync",
	fx.Provide(
		sync.NewHub,
		fx.Annotate(
			func(hub *sync.Hub) *sync.Hub { return hub },
			fx.As(new(queries.CollectionStream)),
		),
		NewWatcher,
	),
	fx.Invoke(runSync),
)

func NewWatcher(pool *pgxpool.Pool, repo *repository.AppointmentRepository, hub *sync.Hub, cfg config.Config, logger *slog.Logger) *sync.Watcher {
	return sync.NewWatcher(pool, repo, hub, cfg.Sync, logger)
}

func runSync(lc fx.Lifecycle, watcher *sync.Watcher, availability *queries.Availability) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go watcher.Run(ctx)
			go availability.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
