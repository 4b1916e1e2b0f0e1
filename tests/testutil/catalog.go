package testutil

import (
	"github.com/light-bringer/procat-facets/internal/app/catalog/catalogtest"
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// CameraSeed mirrors catalogtest.CameraCatalog as Spanner rows.
func CameraSeed() *Seed {
	s := NewSeed().
		Category("cameras", "").
		Category("dslr", "cameras").
		Category("mirrorless", "cameras").
		Category("lenses", "").
		Template(catalogtest.CameraTemplate())

	camera := func(id, title, categoryID string, tags []string, attrs map[string]any, prices ...float64) {
		s.Product(ProductFixture{
			ID:          id,
			Title:       title,
			CategoryIDs: []string{categoryID},
			Tags:        tags,
			Prices:      prices,
			TemplateID:  "tpl_camera",
			Attributes:  attrs,
		})
	}

	camera("p1", "Canon EOS 5D", "dslr", []string{"sale"},
		map[string]any{"brand": "Canon", "sensor": "Full Frame", "megapixels": 30.4, "weather_sealed": true}, 2499, 2299)
	camera("p2", "Canon EOS 90D", "dslr", nil,
		map[string]any{"brand": "Canon", "sensor": "APS-C", "megapixels": 32.5, "weather_sealed": false}, 1199)
	camera("p3", "Sony A7 IV", "mirrorless", []string{"sale", "new"},
		map[string]any{"brand": "Sony", "sensor": "Full Frame", "megapixels": 33, "weather_sealed": "true"}, 2499)
	camera("p4", "Nikon Z6 II", "mirrorless", nil,
		map[string]any{"brand": "Nikon", "sensor": "Full Frame", "megapixels": 24.5}, 1799)
	camera("p5", "Sony A6400", "mirrorless", []string{"new"},
		map[string]any{"brand": "Sony", "sensor": "APS-C", "megapixels": 24.2})

	s.Product(ProductFixture{ID: "p6", Title: "50mm f/1.8", CategoryIDs: []string{"lenses"}, Prices: []float64{125}})
	s.Product(ProductFixture{ID: "p7", Title: "Prototype", Status: domain.StatusDraft, CategoryIDs: []string{"cameras"}, Prices: []float64{6299}})
	return s
}
