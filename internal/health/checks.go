package health

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/parisboutique/storefront/internal/store"
)

// NewHealthHandler wires liveness checks for the embedded store and the
// persisted catalog metadata.
func NewHealthHandler(st store.Store) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "store",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					probe := []byte(time.Now().UTC().Format(time.RFC3339Nano))
					if err := st.Set(ctx, "health-probe", probe); err != nil {
						return fmt.Errorf("store write failed: %w", err)
					}

					if _, err := st.Get(ctx, "health-probe"); err != nil {
						return fmt.Errorf("store read failed: %w", err)
					}

					return nil
				},
			},
			health.Config{
				Name:      "catalog-meta",
				Timeout:   2 * time.Second,
				SkipOnErr: true,
				Check: func(ctx context.Context) error {
					data, err := st.Get(ctx, store.KeyProductsMeta)
					if err != nil {
						return fmt.Errorf("catalog metadata missing: %w", err)
					}

					var meta models.CatalogMeta
					if err := json.Unmarshal(data, &meta); err != nil {
						return fmt.Errorf("catalog metadata unparsable: %w", err)
					}

					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
