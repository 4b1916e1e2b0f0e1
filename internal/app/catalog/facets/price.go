package facets

import (
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

const (
	priceLabel  = "Price"
	priceWidget = "range_slider"
)

var pricing = domain.NewPricingCalculator()

// Price builds the system price facet over the filtered products.
// Zero and missing prices are ignored; ErrNoPriceValues is returned when none remain.
func Price(products []*domain.Product) (*domain.FacetAggregation, error) {
	rng, err := PriceRange(products)
	if err != nil {
		return nil, err
	}
	return &domain.FacetAggregation{
		Key:             domain.PriceFacetKey,
		Label:           priceLabel,
		Type:            domain.AggregationRange,
		Widget:          priceWidget,
		DisplayPriority: domain.PriceFacetPriority,
		Range:           rng,
	}, nil
}

// PriceRange is the price window of products.
func PriceRange(products []*domain.Product) (*domain.FacetRange, error) {
	lo, hi, ok := pricing.PriceSpan(products)
	if !ok {
		return nil, domain.ErrNoPriceValues
	}
	return &domain.FacetRange{Min: lo, Max: hi, Step: PriceStep(hi - lo)}, nil
}

// PriceStep is the bucketing heuristic for prices.
func PriceStep(span float64) float64 {
	switch {
	case span <= 100:
		return 5
	case span <= 500:
		return 10
	case span <= 1000:
		return 25
	case span <= 5000:
		return 50
	default:
		return 100
	}
}

// PriceResponse describes the price facet without counts.
func PriceResponse(products []*domain.Product) (*domain.FacetResponse, error) {
	rng, err := PriceRange(products)
	if err != nil {
		return nil, err
	}
	return &domain.FacetResponse{
		Key:             domain.PriceFacetKey,
		Label:           priceLabel,
		Type:            domain.AggregationRange,
		Widget:          priceWidget,
		DisplayPriority: domain.PriceFacetPriority,
		Range:           rng,
	}, nil
}
