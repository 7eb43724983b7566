package catalog_test

import (
	"testing"

	"github.com/parisboutique/storefront/internal/catalog"
	"github.com/parisboutique/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	defaults := catalog.Defaults()

	require.Equal(t, catalog.Count(), len(defaults))

	seen := make(map[int64]bool, len(defaults))
	perCategory := make(map[models.Category]int)

	for _, product := range defaults {
		require.NoError(t, product.Validate(), "default product %d (%s)", product.ID, product.Title)

		assert.False(t, seen[product.ID], "duplicate default id %d", product.ID)
		seen[product.ID] = true

		assert.NotEmpty(t, product.DateAdded)
		perCategory[product.CategoryID]++
	}

	for _, category := range models.Categories {
		assert.Positive(t, perCategory[category], "category %s has no defaults", category)
	}
}

func TestDefaultsComfortablyAboveFloor(t *testing.T) {
	// The engine refuses to shrink the catalog below 70 entries, so the
	// compiled-in baseline needs headroom above that.
	assert.GreaterOrEqual(t, catalog.Count(), 70)
	assert.Greater(t, catalog.Count(), 70, "defaults must leave room for deletes before the floor bites")
}

func TestDefaultsReturnsCopy(t *testing.T) {
	first := catalog.Defaults()
	first[0].Title = "Tampered"

	second := catalog.Defaults()
	assert.NotEqual(t, "Tampered", second[0].Title)
}
