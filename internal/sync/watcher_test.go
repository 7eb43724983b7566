package sync

import (
	"context"
	"encoding/json"
	"strconv"
	gosync "sync"
	"testing"
	"time"

	"github.com/parisboutique/storefront/internal/bus"
	"github.com/parisboutique/storefront/internal/catalog"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updateRecorder struct {
	mu      gosync.Mutex
	updates []models.ProductUpdate
}

func (r *updateRecorder) record(update models.ProductUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.updates = append(r.updates, update)
}

func (r *updateRecorder) countOf(updateType models.UpdateType) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, update := range r.updates {
		if update.Type == updateType {
			count++
		}
	}

	return count
}

func TestWatcherReloadsOnSignalChange(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	engine := New(st, bus.New())

	engine.InitializeProducts(ctx)

	recorder := &updateRecorder{}
	unsubscribe := engine.Subscribe(recorder.record)
	defer unsubscribe()

	watcher := NewWatcher(engine, st, 5*time.Millisecond)
	watcher.Start(ctx)
	defer watcher.Stop()

	// Keep bumping the marker until the poller notices a change. The loop
	// absorbs the race between the poller's initial read and our first write.
	marker := time.Now().UnixMilli()

	require.Eventually(t, func() bool {
		marker++
		_ = st.Set(ctx, store.KeySyncTimestamp, []byte(strconv.FormatInt(marker, 10)))

		return recorder.countOf(models.ProductsReordered) > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherStop(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	engine := New(st, bus.New())
	engine.InitializeProducts(ctx)

	watcher := NewWatcher(engine, st, 5*time.Millisecond)
	watcher.Start(ctx)
	watcher.Stop()

	recorder := &updateRecorder{}
	unsubscribe := engine.Subscribe(recorder.record)
	defer unsubscribe()

	require.NoError(t, st.Set(ctx, store.KeySyncTimestamp, []byte("999999")))
	time.Sleep(50 * time.Millisecond)

	assert.Zero(t, recorder.countOf(models.ProductsReordered), "stopped watcher must not deliver updates")
}

func TestCheckIntegrityRepairsCorruptCatalog(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	engine := New(st, bus.New())
	engine.InitializeProducts(ctx)

	recorder := &updateRecorder{}
	unsubscribe := engine.Subscribe(recorder.record)
	defer unsubscribe()

	// Simulate an external writer clobbering the catalog.
	require.NoError(t, st.Set(ctx, store.KeyProducts, []byte("{corrupt")))

	watcher := NewWatcher(engine, st, DefaultPollInterval)
	watcher.checkIntegrity(ctx)

	assert.Equal(t, 1, recorder.countOf(models.ProductsReordered))

	data, err := st.Get(ctx, store.KeyProducts)
	require.NoError(t, err)

	var repaired []models.Product
	require.NoError(t, json.Unmarshal(data, &repaired))
	assert.Equal(t, catalog.Count(), len(repaired))
}

func TestCheckIntegrityLeavesHealthyCatalogAlone(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	engine := New(st, bus.New())
	engine.InitializeProducts(ctx)

	recorder := &updateRecorder{}
	unsubscribe := engine.Subscribe(recorder.record)
	defer unsubscribe()

	before, err := st.Get(ctx, store.KeyProducts)
	require.NoError(t, err)

	watcher := NewWatcher(engine, st, DefaultPollInterval)
	watcher.checkIntegrity(ctx)

	assert.Zero(t, recorder.countOf(models.ProductsReordered))

	after, err := st.Get(ctx, store.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
