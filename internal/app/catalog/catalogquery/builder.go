// Package catalogquery translates category scope, raw filters and a sort
// specification into the product query understood by the catalog.
package catalogquery

import (
	"strings"

	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// DefaultMaxFetch bounds how many products one catalog fetch may return.
// Filtering and pagination happen in memory, so the whole scope is fetched.
const DefaultMaxFetch = 5000

// ProductFields is the projection requested for products.
var ProductFields = []string{
	"id",
	"title",
	"created_at",
	"categories.id",
	"tags.value",
	"images.url",
	"variants.id",
	"variants.title",
	"variants.calculated_price",
}

// sort fields the catalog cannot order by; the filter pipeline re-applies price.
var untranslatableSort = map[string]struct{}{
	"price":  {},
	"rating": {},
}

// Options tune query construction.
type Options struct {
	MaxFetch int64
	Status   string
}

// Option customises Options.
type Option func(*Options)

// WithMaxFetch overrides the catalog fetch window.
func WithMaxFetch(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxFetch = n
		}
	}
}

// WithStatus restricts products to a status. An empty status disables the predicate.
func WithStatus(status string) Option {
	return func(o *Options) {
		o.Status = status
	}
}

func newOptions(opts []Option) Options {
	o := Options{MaxFetch: DefaultMaxFetch, Status: domain.StatusPublished}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Build creates the product query for a listing request.
// Category membership and tags are pushed down; price and attribute filters are not.
func Build(categoryIDs []string, filters domain.FilterMap, sort string, pricing domain.PricingContext, opts ...Option) *contracts.ProductQuery {
	o := newOptions(opts)
	return &contracts.ProductQuery{
		Fields: append([]string(nil), ProductFields...),
		Filter: contracts.ProductFilter{
			CategoryIDs: append([]string(nil), categoryIDs...),
			Tags:        dedupe(filters.Tags()),
			Status:      o.Status,
		},
		Order:   CatalogOrder(ParseSort(sort)),
		Window:  contracts.Window{Offset: 0, Limit: o.MaxFetch},
		Pricing: pricing,
	}
}

// BaseQuery creates the scope-only query used to enumerate facet values.
func BaseQuery(categoryIDs []string, pricing domain.PricingContext, opts ...Option) *contracts.ProductQuery {
	return Build(categoryIDs, nil, "", pricing, opts...)
}

// ParseSort parses a comma-separated sort specification.
// A leading "-" selects descending order; the first occurrence of a field wins.
func ParseSort(spec string) []contracts.OrderTerm {
	var terms []contracts.OrderTerm
	seen := make(map[string]struct{})

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		direction := contracts.Asc
		if strings.HasPrefix(part, "-") {
			direction = contracts.Desc
			part = strings.TrimSpace(part[1:])
		}
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		terms = append(terms, contracts.OrderTerm{Field: part, Direction: direction})
	}

	return terms
}

// CatalogOrder drops the terms the catalog cannot sort by. Unknown fields pass verbatim.
func CatalogOrder(terms []contracts.OrderTerm) []contracts.OrderTerm {
	out := make([]contracts.OrderTerm, 0, len(terms))
	for _, term := range terms {
		if _, skip := untranslatableSort[term.Field]; skip {
			continue
		}
		out = append(out, term)
	}
	return out
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
