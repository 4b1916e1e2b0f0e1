package catalogtest

import (
	"time"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// Price returns a pointer to v.
func Price(v float64) *float64 {
	return &v
}

// NewProduct creates a published product in categoryID with one variant per price.
func NewProduct(id, title, categoryID string, prices ...*float64) *domain.Product {
	p := &domain.Product{
		ID:          id,
		Title:       title,
		Status:      domain.StatusPublished,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CategoryIDs: []string{categoryID},
	}
	for i, price := range prices {
		p.Variants = append(p.Variants, domain.Variant{
			ID:              id + "_v" + string(rune('a'+i)),
			Title:           "Default",
			CalculatedPrice: price,
		})
	}
	return p
}

// CameraTemplate is the attribute template of the camera fixture.
func CameraTemplate() domain.AttributeTemplate {
	return domain.AttributeTemplate{
		ID:   "tpl_camera",
		Name: "Camera",
		Attributes: []domain.AttributeDefinition{
			{
				Key:           "brand",
				Label:         "Brand",
				Type:          domain.AttributeSelect,
				OptionGroupID: "og_brands",
				Facet:         &domain.FacetConfig{IsFacet: true, DisplayPriority: 1, AggregationType: domain.AggregationTerm, Widget: "checkbox"},
			},
			{
				Key:   "sensor",
				Label: "Sensor",
				Type:  domain.AttributeSelect,
				Facet: &domain.FacetConfig{IsFacet: true, DisplayPriority: 2, AggregationType: domain.AggregationTerm},
			},
			{
				Key:   "megapixels",
				Label: "Megapixels",
				Type:  domain.AttributeNumber,
				Facet: &domain.FacetConfig{IsFacet: true, DisplayPriority: 3, AggregationType: domain.AggregationRange, Widget: "range_slider"},
			},
			{
				Key:   "weather_sealed",
				Label: "Weather sealed",
				Type:  domain.AttributeBoolean,
				Facet: &domain.FacetConfig{IsFacet: true, DisplayPriority: 4, AggregationType: domain.AggregationBoolean},
			},
			{
				Key:   "sku",
				Label: "SKU",
				Type:  domain.AttributeText,
			},
		},
		OptionGroups: []domain.OptionGroup{{
			ID:      "og_brands",
			Options: []domain.AttributeOption{{Value: "Nikon", Label: "Nikon Corporation"}},
		}},
	}
}

// CameraCatalog builds a small camera catalog:
//
//	cameras
//	├── dslr:       p1 Canon FF, p2 Canon APS-C
//	└── mirrorless: p3 Sony FF, p4 Nikon FF, p5 Sony APS-C (unpriced)
//	lenses:         p6 (out of camera scope)
//
// p7 is a draft directly under cameras.
func CameraCatalog() *Catalog {
	c := New().
		AddCategory("cameras", "").
		AddCategory("dslr", "cameras").
		AddCategory("mirrorless", "cameras").
		AddCategory("lenses", "")

	p1 := NewProduct("p1", "Canon EOS 5D", "dslr", Price(2499), Price(2299))
	p1.Tags = []string{"sale"}
	p2 := NewProduct("p2", "Canon EOS 90D", "dslr", Price(1199))
	p3 := NewProduct("p3", "Sony A7 IV", "mirrorless", Price(2499))
	p3.Tags = []string{"sale", "new"}
	p4 := NewProduct("p4", "Nikon Z6", "mirrorless", Price(1799))
	p5 := NewProduct("p5", "Sony A6400", "mirrorless", nil)
	p5.Tags = []string{"new"}
	p6 := NewProduct("p6", "Canon EF 50mm", "lenses", Price(125))
	p7 := NewProduct("p7", "Canon R1 prototype", "cameras", Price(6299))
	p7.Status = domain.StatusDraft

	for _, p := range []*domain.Product{p1, p2, p3, p4, p5, p6, p7} {
		c.AddProduct(p)
	}

	c.AddRecord("p1", "tpl_camera", map[string]any{"brand": "Canon", "sensor": "Full Frame", "megapixels": 30.4, "weather_sealed": true, "sku": "C-5D"})
	c.AddRecord("p2", "tpl_camera", map[string]any{"brand": "Canon", "sensor": "APS-C", "megapixels": 32.5, "weather_sealed": false})
	c.AddRecord("p3", "tpl_camera", map[string]any{"brand": "Sony", "sensor": "Full Frame", "megapixels": 33.0, "weather_sealed": "true"})
	c.AddRecord("p4", "tpl_camera", map[string]any{"brand": "Nikon", "sensor": "Full Frame", "megapixels": 24.5})
	c.AddRecord("p5", "tpl_camera", map[string]any{"brand": "Sony", "sensor": "APS-C", "megapixels": 24.2})
	c.AddRecord("p6", "tpl_lens", map[string]any{"brand": "Canon", "focal_length": 50.0})
	c.AddRecord("p7", "tpl_camera", map[string]any{"brand": "Canon", "sensor": "Full Frame", "megapixels": 45.0})

	c.AddTemplate(CameraTemplate())
	c.AddTemplate(domain.AttributeTemplate{
		ID:   "tpl_lens",
		Name: "Lens",
		Attributes: []domain.AttributeDefinition{{
			Key:   "focal_length",
			Label: "Focal length",
			Type:  domain.AttributeNumber,
			Facet: &domain.FacetConfig{IsFacet: true, DisplayPriority: 1, AggregationType: domain.AggregationRange},
		}},
	})

	return c
}
