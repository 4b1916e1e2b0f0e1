// Package catalogtest provides an in-memory catalog for tests.
package catalogtest

import (
	"context"
	"sort"
	"sync"

	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// Catalog is an in-memory contracts.Catalog.
// Products are returned in insertion order; prices are already resolved.
type Catalog struct {
	mu sync.Mutex

	Parents   map[string]string
	Products  []*domain.Product
	Records   []domain.AttributeRecord
	Templates []domain.AttributeTemplate

	// Injected failures
	TreeErr      error
	ProductsErr  error
	RecordsErr   error
	TemplatesErr error

	// FailProductsAfter makes QueryProducts fail once it has been called this many times. Zero disables it.
	FailProductsAfter int

	productCalls int
	queries      []*contracts.ProductQuery
}

var _ contracts.Catalog = (*Catalog)(nil)

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{Parents: map[string]string{}}
}

// AddCategory registers a category under parent ("" for a root).
func (c *Catalog) AddCategory(id, parent string) *Catalog {
	c.Parents[id] = parent
	return c
}

// AddProduct registers a product.
func (c *Catalog) AddProduct(p *domain.Product) *Catalog {
	c.Products = append(c.Products, p)
	return c
}

// AddRecord registers an attribute record.
func (c *Catalog) AddRecord(productID, templateID string, values map[string]any) *Catalog {
	c.Records = append(c.Records, domain.AttributeRecord{ProductID: productID, TemplateID: templateID, Values: values})
	return c
}

// AddTemplate registers an attribute template.
func (c *Catalog) AddTemplate(t domain.AttributeTemplate) *Catalog {
	c.Templates = append(c.Templates, t)
	return c
}

// ProductCalls is the number of QueryProducts calls so far.
func (c *Catalog) ProductCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.productCalls
}

// Queries returns the product queries received so far.
func (c *Catalog) Queries() []*contracts.ProductQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*contracts.ProductQuery(nil), c.queries...)
}

// CategoryTree implements contracts.CategoryReader.
func (c *Catalog) CategoryTree(ctx context.Context, rootID string, depth int) (*domain.CategoryNode, error) {
	if c.TreeErr != nil {
		return nil, c.TreeErr
	}
	if _, ok := c.Parents[rootID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return c.node(rootID, depth), nil
}

func (c *Catalog) node(id string, depth int) *domain.CategoryNode {
	n := &domain.CategoryNode{ID: id}
	if depth <= 0 {
		return n
	}
	var children []string
	for child, parent := range c.Parents {
		if parent == id {
			children = append(children, child)
		}
	}
	sort.Strings(children)
	for _, child := range children {
		n.Children = append(n.Children, c.node(child, depth-1))
	}
	return n
}

// QueryProducts implements contracts.ProductReader.
// It honours category, tag and status filters and the window.
func (c *Catalog) QueryProducts(ctx context.Context, q *contracts.ProductQuery) ([]*domain.Product, error) {
	c.mu.Lock()
	c.productCalls++
	calls := c.productCalls
	c.queries = append(c.queries, q)
	c.mu.Unlock()

	if c.ProductsErr != nil {
		return nil, c.ProductsErr
	}
	if c.FailProductsAfter > 0 && calls > c.FailProductsAfter {
		return nil, context.DeadlineExceeded
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []*domain.Product
	for _, p := range c.Products {
		if q.Filter.Status != "" && p.Status != q.Filter.Status {
			continue
		}
		if !intersects(p.CategoryIDs, q.Filter.CategoryIDs) {
			continue
		}
		if len(q.Filter.Tags) > 0 && !intersects(p.Tags, q.Filter.Tags) {
			continue
		}
		out = append(out, p)
	}

	if q.Window.Limit > 0 && int64(len(out)) > q.Window.Offset+q.Window.Limit {
		out = out[:q.Window.Offset+q.Window.Limit]
	}
	if q.Window.Offset > 0 {
		if q.Window.Offset >= int64(len(out)) {
			return nil, nil
		}
		out = out[q.Window.Offset:]
	}
	return out, nil
}

// ListAttributeRecords implements contracts.AttributeStore.
func (c *Catalog) ListAttributeRecords(ctx context.Context, productIDs []string) ([]domain.AttributeRecord, error) {
	if c.RecordsErr != nil {
		return nil, c.RecordsErr
	}
	wanted := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}
	var out []domain.AttributeRecord
	for _, r := range c.Records {
		if _, ok := wanted[r.ProductID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListAttributeTemplates implements contracts.AttributeStore.
func (c *Catalog) ListAttributeTemplates(ctx context.Context, filter contracts.TemplateFilter) ([]domain.AttributeTemplate, error) {
	if c.TemplatesErr != nil {
		return nil, c.TemplatesErr
	}
	if len(filter.IDs) == 0 {
		return append([]domain.AttributeTemplate(nil), c.Templates...), nil
	}
	var out []domain.AttributeTemplate
	for _, t := range c.Templates {
		for _, id := range filter.IDs {
			if t.ID == id {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
