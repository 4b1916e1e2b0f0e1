package domain

// PricingCalculator centralises the variant price rules shared by the price
// filter, the price sort and the price facet.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// MinPrice returns the lowest resolved variant price of a product.
// ok is false when no variant carries a price.
func (pc *PricingCalculator) MinPrice(p *Product) (lowest float64, ok bool) {
	for _, v := range p.Variants {
		if v.CalculatedPrice == nil {
			continue
		}
		if !ok || *v.CalculatedPrice < lowest {
			lowest = *v.CalculatedPrice
			ok = true
		}
	}
	return lowest, ok
}

// HasPriceWithin reports whether at least one variant price lies within bounds.
// Products without any priced variant never match.
func (pc *PricingCalculator) HasPriceWithin(p *Product, bounds *PriceBounds) bool {
	for _, v := range p.Variants {
		if v.CalculatedPrice == nil {
			continue
		}
		if bounds.Contains(*v.CalculatedPrice) {
			return true
		}
	}
	return false
}

// PriceSpan returns the min and max over all positive variant prices of the products.
// Zero and missing prices are excluded; ok is false when nothing remains.
func (pc *PricingCalculator) PriceSpan(products []*Product) (min, max float64, ok bool) {
	for _, p := range products {
		for _, v := range p.Variants {
			if v.CalculatedPrice == nil || *v.CalculatedPrice <= 0 {
				continue
			}
			price := *v.CalculatedPrice
			if !ok {
				min, max, ok = price, price, true
				continue
			}
			if price < min {
				min = price
			}
			if price > max {
				max = price
			}
		}
	}
	return min, max, ok
}
