package models

// UpdateType enumerates the notifications the sync engine emits.
type UpdateType string

const (
	ProductAdded        UpdateType = "PRODUCT_ADDED"
	ProductUpdated      UpdateType = "PRODUCT_UPDATED"
	ProductDeleted      UpdateType = "PRODUCT_DELETED"
	ProductsReordered   UpdateType = "PRODUCTS_REORDERED"
	ProductsInitialized UpdateType = "PRODUCTS_INITIALIZED"
)

// UpdateSource tags who caused a notification.
type UpdateSource string

const (
	SourceAdmin          UpdateSource = "admin"
	SourceSystem         UpdateSource = "system"
	SourceInitialization UpdateSource = "initialization"
)

// ProductUpdate is delivered to every subscribed listener after a successful
// mutation, in subscription order, before the mutating call returns.
type ProductUpdate struct {
	Type      UpdateType   `json:"type"`
	Product   *Product     `json:"product,omitempty"`
	Products  []Product    `json:"products,omitempty"`
	Timestamp int64        `json:"timestamp"`
	Source    UpdateSource `json:"source"`
}

// SyncStats is a read-only snapshot of engine state.
type SyncStats struct {
	TotalProducts       int   `json:"totalProducts"`
	RecentlyAdded       int   `json:"recentlyAdded"`
	NewProducts         int   `json:"newProducts"`
	PopularProducts     int   `json:"popularProducts"`
	LastUpdateTimestamp int64 `json:"lastUpdateTimestamp"`
	ActiveListeners     int   `json:"activeListeners"`
	IsInitialized       bool  `json:"isInitialized"`
	DefaultProducts     int   `json:"defaultProductsCount"`
}

// CatalogMeta is persisted alongside every catalog write.
type CatalogMeta struct {
	Count       int    `json:"count"`
	LastUpdated string `json:"lastUpdated"`
	Version     int64  `json:"version"`
	Source      string `json:"source"`
}
