package bus_test

import (
	"testing"

	"github.com/parisboutique/storefront/internal/bus"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishUpdateFansOutToBothTopics(t *testing.T) {
	b := bus.New()

	var productsUpdated, adminUpdated []models.UpdateType

	require.NoError(t, b.Subscribe(bus.TopicProductsUpdated, func(update models.ProductUpdate) {
		productsUpdated = append(productsUpdated, update.Type)
	}))
	require.NoError(t, b.Subscribe(bus.TopicAdminProductsUpdated, func(update models.ProductUpdate) {
		adminUpdated = append(adminUpdated, update.Type)
	}))

	b.PublishUpdate(models.ProductUpdate{Type: models.ProductAdded, Source: models.SourceAdmin})

	assert.Equal(t, []models.UpdateType{models.ProductAdded}, productsUpdated)
	assert.Equal(t, []models.UpdateType{models.ProductAdded}, adminUpdated)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := bus.New()

	calls := 0
	handler := func(update models.ProductUpdate) {
		calls++
	}

	require.NoError(t, b.Subscribe(bus.TopicProductsUpdated, handler))

	b.PublishUpdate(models.ProductUpdate{Type: models.ProductAdded})
	require.Equal(t, 1, calls)

	require.NoError(t, b.Unsubscribe(bus.TopicProductsUpdated, handler))

	b.PublishUpdate(models.ProductUpdate{Type: models.ProductDeleted})
	assert.Equal(t, 1, calls)
}

func TestPublishWithoutSubscribersIsSafe(t *testing.T) {
	b := bus.New()

	assert.NotPanics(t, func() {
		b.PublishUpdate(models.ProductUpdate{Type: models.ProductsInitialized})
	})
}
