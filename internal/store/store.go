package store

import (
	"context"
	"errors"
)

// Storage keys. Values are UTF-8 JSON unless noted. The primary catalog is
// mirrored under two additional keys so readers of any of the three see the
// same data immediately after a successful write.
const (
	KeyProducts                = "admin-products"
	KeyProductsMirror          = "products"
	KeyProductsMirrorBackup    = "products-backup"
	KeyProductsBackup          = "admin-products-backup"
	KeyProductsBackupTimestamp = "admin-products-backup-timestamp"
	KeyProductsMeta            = "admin-products-meta"
	KeySyncTimestamp           = "admin-products-sync-timestamp" // epoch millis string, write-only signal
	KeyInquiries               = "admin-inquiries"
	KeySession                 = "admin-session"
)

// ErrKeyNotFound is returned by Get for absent keys.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is origin-scoped key/value byte storage. SetMulti must apply all
// writes atomically so the catalog, its mirrors, backup, and metadata can
// never be observed half-updated.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMulti(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
