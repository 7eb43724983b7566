package metrics

import (
	"context"
	"testing"

	"github.com/parisboutique/storefront/internal/bus"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/sync/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogCollectorSnapshotsOnStart(t *testing.T) {
	engine := new(mocks.CatalogService)
	engine.On("SyncStats", mock.Anything).Return(models.SyncStats{
		TotalProducts:   77,
		RecentlyAdded:   2,
		NewProducts:     11,
		PopularProducts: 23,
		ActiveListeners: 1,
	})

	collector := NewCatalogCollector(engine, bus.New())
	require.NoError(t, collector.Start(context.Background()))

	assert.Equal(t, 77.0, testutil.ToFloat64(catalogProducts))
	assert.Equal(t, 2.0, testutil.ToFloat64(catalogRecentlyAdded))
	assert.Equal(t, 11.0, testutil.ToFloat64(catalogNew))
	assert.Equal(t, 23.0, testutil.ToFloat64(catalogPopular))
	assert.Equal(t, 1.0, testutil.ToFloat64(catalogListeners))
}

func TestCatalogCollectorRefreshesOnBusUpdate(t *testing.T) {
	engine := new(mocks.CatalogService)
	engine.On("SyncStats", mock.Anything).Return(models.SyncStats{TotalProducts: 80}).Once()
	engine.On("SyncStats", mock.Anything).Return(models.SyncStats{TotalProducts: 81})

	eventBus := bus.New()

	collector := NewCatalogCollector(engine, eventBus)
	require.NoError(t, collector.Start(context.Background()))
	require.Equal(t, 80.0, testutil.ToFloat64(catalogProducts))

	before := testutil.ToFloat64(catalogMutations.WithLabelValues(string(models.ProductAdded)))

	eventBus.PublishUpdate(models.ProductUpdate{Type: models.ProductAdded, Source: models.SourceAdmin})

	assert.Equal(t, 81.0, testutil.ToFloat64(catalogProducts))
	assert.Equal(t, before+1, testutil.ToFloat64(catalogMutations.WithLabelValues(string(models.ProductAdded))))
}
