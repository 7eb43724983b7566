package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/store"
	"github.com/robfig/cron/v3"
)

const (
	// DefaultPollInterval bounds how long another process's sync marker can
	// go unnoticed.
	DefaultPollInterval = 100 * time.Millisecond

	// integritySchedule re-checks the persisted catalog for external
	// corruption.
	integritySchedule = "@every 10s"
)

// Watcher observes the shared store for mutations made by other processes.
// The sync marker carries no payload; seeing it change only means "re-read".
type Watcher struct {
	engine       *Engine
	store        store.Store
	pollInterval time.Duration

	cron   *cron.Cron
	cancel context.CancelFunc
}

func NewWatcher(engine *Engine, st store.Store, pollInterval time.Duration) *Watcher {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &Watcher{
		engine:       engine,
		store:        st,
		pollInterval: pollInterval,
	}
}

// Start launches the signal poller and the periodic integrity job. Stop (or
// cancelling the parent context) shuts both down.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	go w.pollSignal(ctx)

	w.cron = cron.New()
	if _, err := w.cron.AddFunc(integritySchedule, func() { w.checkIntegrity(ctx) }); err != nil {
		slog.Error("Failed to schedule integrity check", slog.String("error", err.Error()))
	}
	w.cron.Start()

	slog.Info("Catalog watcher started", slog.Duration("poll_interval", w.pollInterval))
}

func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}

	if w.cron != nil {
		w.cron.Stop()
	}
}

func (w *Watcher) pollSignal(ctx context.Context) {
	lastSeen := w.readSignal(ctx)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := w.readSignal(ctx)
			if current == "" || current == lastSeen {
				continue
			}

			lastSeen = current

			products := w.engine.LoadProducts(ctx)
			w.engine.emit(&models.ProductUpdate{
				Type:      models.ProductsReordered,
				Products:  products,
				Timestamp: w.engine.now().UnixMilli(),
				Source:    models.SourceSystem,
			})

			slog.Debug("Reloaded catalog after external sync signal", slog.String("signal", current))
		}
	}
}

func (w *Watcher) readSignal(ctx context.Context) string {
	data, err := w.store.Get(ctx, store.KeySyncTimestamp)
	if err != nil {
		return ""
	}

	return string(data)
}

// checkIntegrity re-reads the persisted catalog and reinitializes it when an
// external writer left it missing, unparsable, or under the floor.
func (w *Watcher) checkIntegrity(ctx context.Context) {
	data, err := w.store.Get(ctx, store.KeyProducts)

	healthy := false

	if err == nil {
		var products []models.Product
		if jsonErr := json.Unmarshal(data, &products); jsonErr == nil && len(products) >= MinCatalogSize {
			healthy = true
		}
	}

	if healthy {
		return
	}

	slog.Warn("Persisted catalog failed integrity check, reinitializing",
		slog.String("reason", fmt.Sprintf("err=%v", err)))

	products := w.engine.LoadProducts(ctx)
	w.engine.emit(&models.ProductUpdate{
		Type:      models.ProductsReordered,
		Products:  products,
		Timestamp: w.engine.now().UnixMilli(),
		Source:    models.SourceSystem,
	})
}
