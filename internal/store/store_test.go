package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/parisboutique/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStores(t *testing.T) map[string]store.Store {
	t.Helper()

	boltStore, err := store.NewBoltStore(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = boltStore.Close() })

	return map[string]store.Store{
		"bolt":   boltStore,
		"memory": store.NewMemoryStore(),
	}
}

func TestGetMissingKey(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Get(context.Background(), "no-such-key")
			assert.ErrorIs(t, err, store.ErrKeyNotFound)
		})
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, st.Set(ctx, store.KeyProducts, []byte(`[{"id":1}]`)))

			value, err := st.Get(ctx, store.KeyProducts)
			require.NoError(t, err)
			assert.Equal(t, []byte(`[{"id":1}]`), value)

			// Overwrite wins.
			require.NoError(t, st.Set(ctx, store.KeyProducts, []byte(`[]`)))

			value, err = st.Get(ctx, store.KeyProducts)
			require.NoError(t, err)
			assert.Equal(t, []byte(`[]`), value)
		})
	}
}

func TestSetMultiAppliesAllKeys(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			batch := map[string][]byte{
				store.KeyProducts:       []byte("primary"),
				store.KeyProductsMirror: []byte("primary"),
				store.KeyProductsMeta:   []byte(`{"count":1}`),
			}

			require.NoError(t, st.SetMulti(ctx, batch))

			for key, want := range batch {
				got, err := st.Get(ctx, key)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, st.Set(ctx, store.KeySession, []byte("session")))
			require.NoError(t, st.Delete(ctx, store.KeySession))

			_, err := st.Get(ctx, store.KeySession)
			assert.ErrorIs(t, err, store.ErrKeyNotFound)

			// Deleting an absent key is not an error.
			assert.NoError(t, st.Delete(ctx, store.KeySession))
		})
	}
}

func TestCanceledContext(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := st.Get(ctx, store.KeyProducts)
			assert.ErrorIs(t, err, context.Canceled)
			assert.ErrorIs(t, st.Set(ctx, store.KeyProducts, nil), context.Canceled)
			assert.ErrorIs(t, st.SetMulti(ctx, nil), context.Canceled)
			assert.ErrorIs(t, st.Delete(ctx, store.KeyProducts), context.Canceled)
		})
	}
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storefront.db")

	first, err := store.NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, store.KeyProducts, []byte("durable")))
	require.NoError(t, first.Close())

	second, err := store.NewBoltStore(path)
	require.NoError(t, err)
	defer second.Close()

	value, err := second.Get(ctx, store.KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, []byte("durable"), value)
}

func TestGetReturnsCopy(t *testing.T) {
	for name, st := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, st.Set(ctx, store.KeyProducts, []byte("original")))

			value, err := st.Get(ctx, store.KeyProducts)
			require.NoError(t, err)

			value[0] = 'X'

			again, err := st.Get(ctx, store.KeyProducts)
			require.NoError(t, err)
			assert.Equal(t, []byte("original"), again)
		})
	}
}
