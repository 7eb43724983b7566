package health_test

import (
	"context"
	"testing"

	gohealth "github.com/hellofresh/health-go/v5"
	"github.com/parisboutique/storefront/internal/health"
	"github.com/parisboutique/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthAllChecksPass(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	// A present, parsable catalog metadata record satisfies the meta check.
	require.NoError(t, st.Set(ctx, store.KeyProductsMeta, []byte(`{"count":77,"lastUpdated":"2024-03-10T12:00:00Z","version":1,"source":"sync-engine"}`)))

	h, err := health.NewHealthHandler(st)
	require.NoError(t, err)

	check := h.Measure(ctx)
	assert.Equal(t, gohealth.StatusOK, check.Status)
}

func TestHealthDegradedWithoutCatalogMeta(t *testing.T) {
	st := store.NewMemoryStore()

	h, err := health.NewHealthHandler(st)
	require.NoError(t, err)

	// The meta check is skip-on-error, so a missing record degrades the
	// report without taking the service unavailable.
	check := h.Measure(context.Background())
	assert.NotEqual(t, gohealth.StatusUnavailable, check.Status)
	assert.NotEqual(t, gohealth.StatusOK, check.Status)
}
