package contracts

import (
	"time"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// VariantDTO is a data transfer object for a product variant.
type VariantDTO struct {
	VariantID       string   `json:"id"`
	Title           string   `json:"title"`
	CalculatedPrice *float64 `json:"calculated_price"`
}

// ProductDTO is a data transfer object for product listings.
type ProductDTO struct {
	ProductID   string         `json:"id"`
	Title       string         `json:"title"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	CategoryIDs []string       `json:"category_ids"`
	Tags        []string       `json:"tags"`
	Images      []string       `json:"images"`
	Variants    []VariantDTO   `json:"variants"`
	Attributes  map[string]any `json:"attributes"`
}

// NewProductDTO converts a domain product.
func NewProductDTO(p *domain.Product) *ProductDTO {
	variants := make([]VariantDTO, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantDTO{VariantID: v.ID, Title: v.Title, CalculatedPrice: v.CalculatedPrice})
	}
	attrs := p.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &ProductDTO{
		ProductID:   p.ID,
		Title:       p.Title,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		CategoryIDs: p.CategoryIDs,
		Tags:        p.Tags,
		Images:      p.Images,
		Variants:    variants,
		Attributes:  attrs,
	}
}

// Pagination describes the page returned by a listing.
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// ProductPage is a paginated product listing.
type ProductPage struct {
	Data       []*ProductDTO `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// FacetSummary is a full facet aggregation response.
type FacetSummary struct {
	CategoryID     string                     `json:"categoryId"`
	TotalProducts  int                        `json:"totalProducts"`
	Facets         []*domain.FacetAggregation `json:"facets"`
	AppliedFilters domain.FilterMap           `json:"appliedFilters"`
}
