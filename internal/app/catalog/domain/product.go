package domain

import "time"

// Product statuses as stored by the catalog.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusArchived  = "archived"
)

// Product is a read-only snapshot of a catalog product for one request.
// Attributes are attached after the catalog fetch from the attribute store.
type Product struct {
	ID          string
	Title       string
	Status      string
	CreatedAt   time.Time
	Variants    []Variant
	CategoryIDs []string
	Tags        []string
	Images      []string
	Attributes  map[string]any
}

// Variant is a purchasable variant of a product.
// CalculatedPrice is nil when no price exists for the requested pricing context.
type Variant struct {
	ID              string
	Title           string
	CalculatedPrice *float64
}

// PricingContext selects the region and currency prices are resolved against.
type PricingContext struct {
	RegionID     string
	CurrencyCode string
}

// IsZero reports whether no pricing context was supplied.
func (pc PricingContext) IsZero() bool {
	return pc.RegionID == "" && pc.CurrencyCode == ""
}

// Validate requires both region and currency.
func (pc PricingContext) Validate() error {
	if pc.RegionID == "" || pc.CurrencyCode == "" {
		return ErrPricingContextRequired
	}
	return nil
}

// WithAttributes returns a shallow copy of the product carrying the given attribute map.
func (p *Product) WithAttributes(attrs map[string]any) *Product {
	cp := *p
	if attrs == nil {
		attrs = map[string]any{}
	}
	cp.Attributes = attrs
	return &cp
}

// ProductIDs collects product ids preserving order.
func ProductIDs(products []*Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// CategoryNode is a category with its children, as returned by the catalog.
type CategoryNode struct {
	ID       string
	Children []*CategoryNode
}
