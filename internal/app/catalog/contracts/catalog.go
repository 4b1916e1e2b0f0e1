package contracts

import (
	"context"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// Direction represents a sort direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// OrderTerm is one catalog sort term.
type OrderTerm struct {
	Field     string
	Direction Direction
}

// ProductFilter is the predicate pushed down to the catalog.
// Price and attribute filters are never part of it.
type ProductFilter struct {
	CategoryIDs []string
	Tags        []string
	Status      string
}

// Window is the pagination window requested from the catalog.
type Window struct {
	Offset int64
	Limit  int64
}

// ProductQuery is the normalised product projection request.
type ProductQuery struct {
	Fields  []string
	Filter  ProductFilter
	Order   []OrderTerm
	Window  Window
	Pricing domain.PricingContext
}

// TemplateFilter selects attribute templates.
type TemplateFilter struct {
	IDs []string
}

// CategoryReader reads the category tree.
type CategoryReader interface {
	// CategoryTree returns rootID and its descendants down to depth levels.
	// Returns domain.ErrCategoryNotFound when the root does not exist.
	CategoryTree(ctx context.Context, rootID string, depth int) (*domain.CategoryNode, error)
}

// ProductReader runs product projections against the catalog.
type ProductReader interface {
	// QueryProducts returns products matching the query with variant prices
	// resolved against the query's pricing context.
	QueryProducts(ctx context.Context, q *ProductQuery) ([]*domain.Product, error)
}

// AttributeStore reads free-form attribute values and their templates.
type AttributeStore interface {
	// ListAttributeRecords returns the attribute records of the given products.
	ListAttributeRecords(ctx context.Context, productIDs []string) ([]domain.AttributeRecord, error)

	// ListAttributeTemplates returns templates matching the filter.
	ListAttributeTemplates(ctx context.Context, filter TemplateFilter) ([]domain.AttributeTemplate, error)
}

// Catalog bundles every collaborator the engine reads from.
type Catalog interface {
	CategoryReader
	ProductReader
	AttributeStore
}

// DescendantResolver expands a category into itself and its descendants.
type DescendantResolver interface {
	// ResolveDescendantIDs never fails; it degrades to the root id.
	ResolveDescendantIDs(ctx context.Context, rootID string) []string
}
