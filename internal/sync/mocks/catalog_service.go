package mocks

import (
	"context"

	"github.com/parisboutique/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CatalogService is a testify mock of sync.CatalogService.
type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) LoadProducts(ctx context.Context) []models.Product {
	args := m.Called(ctx)

	if products, ok := args.Get(0).([]models.Product); ok {
		return products
	}

	return nil
}

func (m *CatalogService) InitializeProducts(ctx context.Context) []models.Product {
	args := m.Called(ctx)

	if products, ok := args.Get(0).([]models.Product); ok {
		return products
	}

	return nil
}

func (m *CatalogService) AddProduct(ctx context.Context, candidate *models.Product) (*models.Product, error) {
	args := m.Called(ctx, candidate)

	var product *models.Product
	if p, ok := args.Get(0).(*models.Product); ok {
		product = p
	}

	return product, args.Error(1)
}

func (m *CatalogService) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	args := m.Called(ctx, product)

	var updated *models.Product
	if p, ok := args.Get(0).(*models.Product); ok {
		updated = p
	}

	return updated, args.Error(1)
}

func (m *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CatalogService) RestoreDefaults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CatalogService) SyncStats(ctx context.Context) models.SyncStats {
	args := m.Called(ctx)

	if stats, ok := args.Get(0).(models.SyncStats); ok {
		return stats
	}

	return models.SyncStats{}
}

func (m *CatalogService) Subscribe(callback func(models.ProductUpdate)) func() {
	args := m.Called(callback)

	if unsubscribe, ok := args.Get(0).(func()); ok {
		return unsubscribe
	}

	return func() {}
}
