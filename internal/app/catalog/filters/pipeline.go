// Package filters narrows an in-memory product list through independent,
// composable stages.
//
// Stage order is fixed for listing requests:
//
//	search -> price -> attribute -> tag -> sort -> paginate
//
// Every stage is a pure function over a Result; inputs are never mutated and
// a stage given no filter returns its input unchanged.
package filters

import (
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// Result is the output of a stage.
type Result struct {
	Products   []*domain.Product
	TotalCount int
}

// NewResult wraps a product list.
func NewResult(products []*domain.Product) Result {
	return Result{Products: products, TotalCount: len(products)}
}

// Stage transforms a Result.
type Stage func(Result) Result

// Pipeline runs stages in the order they were added.
type Pipeline struct {
	stages []Stage
}

// New creates a pipeline from stages.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: append([]Stage(nil), stages...)}
}

// Then returns a new pipeline with stage appended.
func (p *Pipeline) Then(stage Stage) *Pipeline {
	return New(append(append([]Stage(nil), p.stages...), stage)...)
}

// Run applies every stage to products.
func (p *Pipeline) Run(products []*domain.Product) Result {
	result := NewResult(products)
	for _, stage := range p.stages {
		result = stage(result)
	}
	return result
}

// Params are the inputs of a listing pipeline.
type Params struct {
	Search  string
	Filters domain.FilterMap
	Sort    string
	Offset  int
	Limit   int
}

// ForListing builds the fixed listing pipeline.
func ForListing(params Params) *Pipeline {
	return New(
		Search(params.Search),
		Price(params.Filters.PriceBounds()),
		Attributes(params.Filters.AttributeFilters()),
		Tags(params.Filters.Tags()),
		SortByPrice(params.Sort),
		Paginate(params.Offset, params.Limit),
	)
}

// ForFacets builds the pipeline that derives the filtered set of a facet
// request from the base set. It never sorts or paginates.
func ForFacets(filters domain.FilterMap) *Pipeline {
	return New(
		Price(filters.PriceBounds()),
		Attributes(filters.AttributeFilters()),
		Tags(filters.Tags()),
	)
}

func keep(products []*domain.Product, match func(*domain.Product) bool) Result {
	out := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if match(p) {
			out = append(out, p)
		}
	}
	return NewResult(out)
}
