package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/queries"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SyncError classifies subscription failures surfaced to the UI boundary.
// The index and classifier never see it; they keep serving the hub's
// last-known-good snapshot.
type SyncError struct {
	Op  string
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %v", e.Op, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// Loader materializes the complete current collection.
type Loader interface {
	FindAll(ctx context.Context) ([]queries.AppointmentView, error)
}

const reloadTimeout = 10 * time.Second

// Watcher holds a LISTEN subscription against the appointment collection's
// notification channel and republishes the full materialized collection to
// the hub on every change. Connection loss triggers resubscription with
// exponential backoff; the hub serves stale data in the meantime.
type Watcher struct {
	pool   *pgxpool.Pool
	loader Loader
	hub    *Hub
	cfg    config.SyncConfig
	logger *slog.Logger
}

func NewWatcher(pool *pgxpool.Pool, loader Loader, hub *Hub, cfg config.SyncConfig, logger *slog.Logger) *Watcher {
	return &Watcher{
		pool:   pool,
		loader: loader,
		hub:    hub,
		cfg:    cfg,
		logger: logger,
	}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = w.cfg.InitialBackoff
	bo.MaxInterval = w.cfg.MaxBackoff
	bo.MaxElapsedTime = 0

	for {
		err := w.listen(ctx, bo)
		if ctx.Err() != nil {
			return
		}

		syncErr := &SyncError{Op: "subscribe", Err: err}
		w.hub.Fail(syncErr)
		wait := bo.NextBackOff()
		w.logger.Warn("appointment subscription lost, resubscribing",
			"error", err, "backoff", wait)

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

func (w *Watcher) listen(ctx context.Context, bo *backoff.ExponentialBackOff) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	channel := pgx.Identifier{w.cfg.Channel}.Sanitize()
	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return err
	}

	// Initial load establishes the baseline snapshot before any notification
	// arrives.
	if err := w.reload(ctx); err != nil {
		return err
	}
	bo.Reset()
	w.logger.Info("appointment subscription established", "channel", w.cfg.Channel)

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return err
		}
		if err := w.reload(ctx); err != nil {
			// Keep the subscription; the hub stays on last-known-good and the
			// next notification retries the load.
			w.hub.Fail(&SyncError{Op: "reload", Err: err})
			w.logger.Warn("snapshot reload failed", "error", err)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, reloadTimeout)
	defer cancel()

	snapshot, err := w.loader.FindAll(loadCtx)
	if err != nil {
		return err
	}
	w.hub.Publish(snapshot)
	return nil
}
