package metrics

import (
	"context"

	"github.com/parisboutique/storefront/internal/bus"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/sync"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catalogProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products_total",
		Help: "Current number of products in the catalog.",
	})
	catalogRecentlyAdded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products_recently_added",
		Help: "Products inside the recently-added window.",
	})
	catalogNew = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products_new",
		Help: "Products flagged as new.",
	})
	catalogPopular = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products_popular",
		Help: "Products flagged as popular.",
	})
	catalogListeners = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_sync_listeners",
		Help: "Active in-process sync listeners.",
	})
	catalogMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_mutations_total",
		Help: "Catalog mutations observed, by notification type.",
	}, []string{"type"})
)

// CatalogCollector keeps the catalog gauges fresh by listening on the event
// bus rather than polling the engine.
type CatalogCollector struct {
	engine sync.CatalogService
	bus    *bus.Bus
}

func NewCatalogCollector(engine sync.CatalogService, eventBus *bus.Bus) *CatalogCollector {
	return &CatalogCollector{engine: engine, bus: eventBus}
}

// Start subscribes to catalog updates and snapshots the gauges once.
func (c *CatalogCollector) Start(ctx context.Context) error {
	if err := c.bus.Subscribe(bus.TopicProductsUpdated, func(update models.ProductUpdate) {
		catalogMutations.WithLabelValues(string(update.Type)).Inc()
		c.refresh(ctx)
	}); err != nil {
		return err
	}

	c.refresh(ctx)

	return nil
}

func (c *CatalogCollector) refresh(ctx context.Context) {
	stats := c.engine.SyncStats(ctx)

	catalogProducts.Set(float64(stats.TotalProducts))
	catalogRecentlyAdded.Set(float64(stats.RecentlyAdded))
	catalogNew.Set(float64(stats.NewProducts))
	catalogPopular.Set(float64(stats.PopularProducts))
	catalogListeners.Set(float64(stats.ActiveListeners))
}
