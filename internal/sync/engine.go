package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/parisboutique/storefront/internal/bus"
	"github.com/parisboutique/storefront/internal/catalog"
	appErrors "github.com/parisboutique/storefront/internal/errors"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/store"
)

const (
	// MinCatalogSize is the floor below which destructive writes are refused.
	MinCatalogSize = 70

	// RecentThreshold is the rolling window for the recently-added flag.
	RecentThreshold = 5 * time.Minute
)

// CatalogService is the surface UI consumers and handlers depend on.
type CatalogService interface {
	LoadProducts(ctx context.Context) []models.Product
	InitializeProducts(ctx context.Context) []models.Product
	AddProduct(ctx context.Context, candidate *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	RestoreDefaults(ctx context.Context) error
	SyncStats(ctx context.Context) models.SyncStats
	Subscribe(callback func(models.ProductUpdate)) func()
}

type subscriber struct {
	id       int
	callback func(models.ProductUpdate)
}

// Engine is the sole arbiter of catalog truth within the process. One
// instance is constructed by the composition root and injected into
// consumers.
type Engine struct {
	store store.Store
	bus   *bus.Bus
	now   func() time.Time

	// mu serializes every read-modify-write cycle against the store.
	mu          sync.Mutex
	initialized bool

	listenerMu sync.Mutex
	listeners  []subscriber
	nextSubID  int
}

var _ CatalogService = (*Engine)(nil)

type Option func(*Engine)

// WithClock overrides the engine clock. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func New(st store.Store, eventBus *bus.Bus, opts ...Option) *Engine {
	engine := &Engine{
		store: st,
		bus:   eventBus,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Subscribe registers a listener for catalog notifications and returns its
// unsubscribe function. Listeners are notified synchronously, in
// subscription order, before the mutating call returns.
func (e *Engine) Subscribe(callback func(models.ProductUpdate)) func() {
	e.listenerMu.Lock()
	defer e.listenerMu.Unlock()

	e.nextSubID++
	id := e.nextSubID
	e.listeners = append(e.listeners, subscriber{id: id, callback: callback})

	slog.Debug("Sync listener subscribed", slog.Int("total", len(e.listeners)))

	return func() {
		e.listenerMu.Lock()
		defer e.listenerMu.Unlock()

		for i, sub := range e.listeners {
			if sub.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				break
			}
		}
	}
}

// notify delivers an update to every listener. A panic in one listener is
// logged and must not prevent later listeners from running.
func (e *Engine) notify(update models.ProductUpdate) {
	e.listenerMu.Lock()
	subscribers := make([]subscriber, len(e.listeners))
	copy(subscribers, e.listeners)
	e.listenerMu.Unlock()

	for _, sub := range subscribers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Sync listener panicked", slog.Any("panic", r), slog.String("update", string(update.Type)))
				}
			}()
			sub.callback(update)
		}()
	}

	if e.bus != nil {
		e.bus.PublishUpdate(update)
	}
}

func (e *Engine) emit(updates ...*models.ProductUpdate) {
	for _, update := range updates {
		if update != nil {
			e.notify(*update)
		}
	}
}

// LoadProducts returns the ordered current catalog. It never fails from the
// caller's perspective: a missing, malformed, or undersized persisted
// catalog falls back to initialization, and initialization itself degrades
// to the built-in defaults.
func (e *Engine) LoadProducts(ctx context.Context) []models.Product {
	e.mu.Lock()
	products, update := e.loadLocked(ctx)
	e.mu.Unlock()

	e.emit(update)

	return products
}

// InitializeProducts is the idempotent bootstrap. The PRODUCTS_INITIALIZED
// notification fires at most once per engine lifetime.
func (e *Engine) InitializeProducts(ctx context.Context) []models.Product {
	e.mu.Lock()
	products, update := e.initializeLocked(ctx)
	e.mu.Unlock()

	e.emit(update)

	return products
}

func (e *Engine) loadLocked(ctx context.Context) ([]models.Product, *models.ProductUpdate) {
	data, err := e.store.Get(ctx, store.KeyProducts)
	if err != nil {
		if err != store.ErrKeyNotFound {
			slog.Error("Failed to read catalog from store", slog.String("error", err.Error()))
		}

		return e.initializeLocked(ctx)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		slog.Error("Persisted catalog is unparsable, reinitializing", slog.String("error", err.Error()))
		return e.initializeLocked(ctx)
	}

	if len(products) < MinCatalogSize {
		slog.Warn("Persisted catalog below floor, reinitializing", slog.Int("count", len(products)))
		return e.initializeLocked(ctx)
	}

	return e.orderProducts(products), nil
}

func (e *Engine) initializeLocked(ctx context.Context) ([]models.Product, *models.ProductUpdate) {
	final := catalog.Defaults()

	data, err := e.store.Get(ctx, store.KeyProducts)
	if err == nil {
		var persisted []models.Product
		if jsonErr := json.Unmarshal(data, &persisted); jsonErr == nil && len(persisted) >= MinCatalogSize {
			final = persisted
		} else {
			if saveErr := e.saveLocked(ctx, catalog.Defaults(), "sync-engine"); saveErr != nil {
				slog.Error("Failed to persist default catalog", slog.String("error", saveErr.Error()))
			}
		}
	} else {
		if saveErr := e.saveLocked(ctx, catalog.Defaults(), "sync-engine"); saveErr != nil {
			slog.Error("Failed to persist default catalog", slog.String("error", saveErr.Error()))
		}
	}

	var update *models.ProductUpdate

	if !e.initialized {
		e.initialized = true
		update = &models.ProductUpdate{
			Type:      models.ProductsInitialized,
			Products:  final,
			Timestamp: e.now().UnixMilli(),
			Source:    models.SourceInitialization,
		}
	}

	return e.orderProducts(final), update
}

// AddProduct validates the candidate, stamps its bookkeeping fields, and
// prepends it to the catalog. An existing entry with the same id is replaced
// rather than duplicated.
func (e *Engine) AddProduct(ctx context.Context, candidate *models.Product) (*models.Product, error) {
	now := e.now()

	enhanced := *candidate
	if enhanced.ID == 0 {
		enhanced.ID = now.UnixMilli()
	}

	enhanced.AddedTimestamp = now.UnixMilli()
	enhanced.IsRecentlyAdded = true
	enhanced.IsNew = true
	enhanced.LastModified = now.UTC().Format(time.RFC3339)

	if enhanced.DateAdded == "" {
		enhanced.DateAdded = now.UTC().Format("2006-01-02")
	}

	if err := enhanced.Validate(); err != nil {
		return nil, appErrors.ValidationError("Invalid product").WithDetail(err.Error()).WithError(err)
	}

	e.mu.Lock()

	existing, initUpdate := e.loadLocked(ctx)

	updated := make([]models.Product, 0, len(existing)+1)
	updated = append(updated, enhanced)

	for _, product := range existing {
		if product.ID != enhanced.ID {
			updated = append(updated, product)
		}
	}

	err := e.saveLocked(ctx, updated, "sync-engine")
	e.mu.Unlock()

	if err != nil {
		e.emit(initUpdate)
		return nil, err
	}

	e.emit(initUpdate, &models.ProductUpdate{
		Type:      models.ProductAdded,
		Product:   &enhanced,
		Timestamp: now.UnixMilli(),
		Source:    models.SourceAdmin,
	})
	e.triggerCrossTabSync(ctx)

	slog.Info("Product added", slog.Int64("id", enhanced.ID), slog.String("title", enhanced.Title))

	return &enhanced, nil
}

// UpdateProduct replaces the entry with the same id in place. The original
// addedTimestamp is preserved across edits; lastModified always advances.
func (e *Engine) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, appErrors.ValidationError("Invalid product").WithDetail(err.Error()).WithError(err)
	}

	now := e.now()

	e.mu.Lock()

	existing, initUpdate := e.loadLocked(ctx)

	index := -1

	for i, p := range existing {
		if p.ID == product.ID {
			index = i
			break
		}
	}

	if index == -1 {
		e.mu.Unlock()
		e.emit(initUpdate)

		return nil, appErrors.NotFoundError(fmt.Sprintf("Product %d not found", product.ID))
	}

	enhanced := *product
	enhanced.LastModified = now.UTC().Format(time.RFC3339)

	enhanced.AddedTimestamp = existing[index].AddedTimestamp
	if enhanced.AddedTimestamp == 0 {
		enhanced.AddedTimestamp = now.UnixMilli()
	}

	updated := make([]models.Product, len(existing))
	copy(updated, existing)
	updated[index] = enhanced

	err := e.saveLocked(ctx, updated, "sync-engine")
	e.mu.Unlock()

	if err != nil {
		e.emit(initUpdate)
		return nil, err
	}

	e.emit(initUpdate, &models.ProductUpdate{
		Type:      models.ProductUpdated,
		Product:   &enhanced,
		Timestamp: now.UnixMilli(),
		Source:    models.SourceAdmin,
	})
	e.triggerCrossTabSync(ctx)

	slog.Info("Product updated", slog.Int64("id", enhanced.ID))

	return &enhanced, nil
}

// DeleteProduct removes the matching entry. A delete that would drop the
// catalog below the floor aborts before any write.
func (e *Engine) DeleteProduct(ctx context.Context, id int64) error {
	e.mu.Lock()

	existing, initUpdate := e.loadLocked(ctx)

	updated := make([]models.Product, 0, len(existing))
	for _, product := range existing {
		if product.ID != id {
			updated = append(updated, product)
		}
	}

	if len(updated) == len(existing) {
		e.mu.Unlock()
		e.emit(initUpdate)

		return appErrors.NotFoundError(fmt.Sprintf("Product %d not found", id))
	}

	if len(updated) < MinCatalogSize {
		e.mu.Unlock()
		e.emit(initUpdate)

		slog.Warn("Delete refused, catalog floor reached", slog.Int64("id", id), slog.Int("count", len(existing)))

		return appErrors.IntegrityFloorError(fmt.Sprintf("Catalog must keep at least %d products", MinCatalogSize))
	}

	err := e.saveLocked(ctx, updated, "sync-engine")
	e.mu.Unlock()

	if err != nil {
		e.emit(initUpdate)
		return err
	}

	e.emit(initUpdate, &models.ProductUpdate{
		Type:      models.ProductDeleted,
		Timestamp: e.now().UnixMilli(),
		Source:    models.SourceAdmin,
	})
	e.triggerCrossTabSync(ctx)

	slog.Info("Product deleted", slog.Int64("id", id))

	return nil
}

// RestoreDefaults unconditionally overwrites the catalog with a fresh copy
// of the built-in defaults.
func (e *Engine) RestoreDefaults(ctx context.Context) error {
	restored := catalog.Defaults()

	e.mu.Lock()
	err := e.saveLocked(ctx, restored, "sync-engine")
	e.mu.Unlock()

	if err != nil {
		return err
	}

	e.emit(&models.ProductUpdate{
		Type:      models.ProductsInitialized,
		Products:  restored,
		Timestamp: e.now().UnixMilli(),
		Source:    models.SourceSystem,
	})
	e.triggerCrossTabSync(ctx)

	slog.Info("Catalog restored to defaults", slog.Int("count", len(restored)))

	return nil
}

// SyncStats reports a read-only snapshot of engine state.
func (e *Engine) SyncStats(ctx context.Context) models.SyncStats {
	products := e.LoadProducts(ctx)

	stats := models.SyncStats{
		TotalProducts:       len(products),
		LastUpdateTimestamp: e.now().UnixMilli(),
		DefaultProducts:     catalog.Count(),
	}

	for _, product := range products {
		if product.IsRecentlyAdded {
			stats.RecentlyAdded++
		}

		if product.IsNew {
			stats.NewProducts++
		}

		if product.IsPopular {
			stats.PopularProducts++
		}
	}

	e.listenerMu.Lock()
	stats.ActiveListeners = len(e.listeners)
	e.listenerMu.Unlock()

	e.mu.Lock()
	stats.IsInitialized = e.initialized
	e.mu.Unlock()

	return stats
}

// saveLocked persists the catalog: primary key, two mirror keys, metadata,
// and a snapshot of the previous primary value, all in one transaction.
// Caller must hold e.mu.
func (e *Engine) saveLocked(ctx context.Context, products []models.Product, source string) error {
	if len(products) < MinCatalogSize {
		return appErrors.IntegrityFloorError(fmt.Sprintf("Refusing to save catalog with %d products, floor is %d", len(products), MinCatalogSize))
	}

	now := e.now()

	enhanced := make([]models.Product, len(products))
	copy(enhanced, products)

	for i := range enhanced {
		enhanced[i].LastModified = now.UTC().Format(time.RFC3339)
		if enhanced[i].AddedTimestamp == 0 {
			enhanced[i].AddedTimestamp = fallbackTimestamp(&enhanced[i], now)
		}
	}

	data, err := json.Marshal(enhanced)
	if err != nil {
		return appErrors.StorageError("Failed to serialize catalog").WithError(err)
	}

	meta, err := json.Marshal(models.CatalogMeta{
		Count:       len(enhanced),
		LastUpdated: now.UTC().Format(time.RFC3339),
		Version:     now.UnixMilli(),
		Source:      source,
	})
	if err != nil {
		return appErrors.StorageError("Failed to serialize catalog metadata").WithError(err)
	}

	batch := map[string][]byte{
		store.KeyProducts:             data,
		store.KeyProductsMirror:       data,
		store.KeyProductsMirrorBackup: data,
		store.KeyProductsMeta:         meta,
	}

	if previous, getErr := e.store.Get(ctx, store.KeyProducts); getErr == nil {
		batch[store.KeyProductsBackup] = previous
		batch[store.KeyProductsBackupTimestamp] = []byte(now.UTC().Format(time.RFC3339))
	}

	if err := e.store.SetMulti(ctx, batch); err != nil {
		return appErrors.StorageError("Failed to persist catalog").WithError(err)
	}

	return nil
}

// triggerCrossTabSync writes the epoch-millis marker other processes watch.
// Failure here is logged and swallowed: the write itself already succeeded.
func (e *Engine) triggerCrossTabSync(ctx context.Context) {
	millis := strconv.FormatInt(e.now().UnixMilli(), 10)
	if err := e.store.Set(ctx, store.KeySyncTimestamp, []byte(millis)); err != nil {
		slog.Warn("Failed to write sync timestamp", slog.String("error", err.Error()))
	}
}

// orderProducts recomputes the derived recently-added flag and applies the
// four-tier ordering: recently added, then new, then popular, then newest
// addedTimestamp, with descending id as the deterministic final tiebreak.
func (e *Engine) orderProducts(products []models.Product) []models.Product {
	now := e.now()

	ordered := make([]models.Product, len(products))
	copy(ordered, products)

	for i := range ordered {
		if ordered[i].AddedTimestamp == 0 {
			ordered[i].AddedTimestamp = fallbackTimestamp(&ordered[i], now)
		}

		age := now.UnixMilli() - ordered[i].AddedTimestamp
		ordered[i].IsRecentlyAdded = age >= 0 && age < RecentThreshold.Milliseconds()
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]

		if a.IsRecentlyAdded != b.IsRecentlyAdded {
			return a.IsRecentlyAdded
		}

		if a.IsNew != b.IsNew {
			return a.IsNew
		}

		if a.IsPopular != b.IsPopular {
			return a.IsPopular
		}

		if a.AddedTimestamp != b.AddedTimestamp {
			return a.AddedTimestamp > b.AddedTimestamp
		}

		return a.ID > b.ID
	})

	return ordered
}

func fallbackTimestamp(product *models.Product, now time.Time) int64 {
	if product.DateAdded != "" {
		if t, err := time.Parse("2006-01-02", product.DateAdded); err == nil {
			return t.UnixMilli()
		}
	}

	if product.LastModified != "" {
		if t, err := time.Parse(time.RFC3339, product.LastModified); err == nil {
			return t.UnixMilli()
		}
	}

	return now.UnixMilli()
}
