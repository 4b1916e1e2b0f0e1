//go:build integration

package e2e

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/light-bringer/procat-facets/internal/app/catalog/catalogtest"
	"github.com/light-bringer/procat-facets/tests/testutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// pagedSeed creates n priced cameras under one category with alternating brands.
func pagedSeed(n int) *testutil.Seed {
	s := testutil.NewSeed().
		Category("cameras", "").
		Template(catalogtest.CameraTemplate())
	brands := []string{"Canon", "Sony", "Nikon"}
	for i := 0; i < n; i++ {
		s.Product(testutil.ProductFixture{
			ID:          fmt.Sprintf("p%03d", i),
			CategoryIDs: []string{"cameras"},
			Prices:      []float64{float64(100 + i)},
			TemplateID:  "tpl_camera",
			Attributes:  map[string]any{"brand": brands[i%len(brands)], "megapixels": 20 + float64(i%10)},
		})
	}
	return s
}

func aggregateBody(filters map[string]any) map[string]any {
	return map[string]any{
		"filters":       filters,
		"region_id":     testutil.RegionID,
		"currency_code": testutil.CurrencyCode,
	}
}

func listPath(category, query string) string {
	return fmt.Sprintf("/api/v1/categories/%s/products?region_id=%s&currency_code=%s%s",
		category, testutil.RegionID, testutil.CurrencyCode, query)
}
