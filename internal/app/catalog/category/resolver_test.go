package category

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// adjacencyReader builds trees from a parent -> children map, the way the
// catalog expands children to a fixed depth. Cycles in the map are allowed.
type adjacencyReader struct {
	children map[string][]string
	err      error
	calls    int
}

func (a *adjacencyReader) CategoryTree(_ context.Context, rootID string, depth int) (*domain.CategoryNode, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	if _, ok := a.children[rootID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return a.build(rootID, depth), nil
}

func (a *adjacencyReader) build(id string, depth int) *domain.CategoryNode {
	node := &domain.CategoryNode{ID: id}
	if depth == 0 {
		return node
	}
	for _, child := range a.children[id] {
		node.Children = append(node.Children, a.build(child, depth-1))
	}
	return node
}

func TestResolver_ResolveDescendantIDs(t *testing.T) {
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	tree := &adjacencyReader{children: map[string][]string{
		"cameras":    {"mirrorless", "dslr"},
		"mirrorless": {"full-frame", "aps-c"},
		"dslr":       {},
		"full-frame": {},
		"aps-c":      {},
	}}

	t.Run("root first then breadth first", func(t *testing.T) {
		r := NewResolver(tree, WithLogger(logger))
		ids := r.ResolveDescendantIDs(ctx, "cameras")
		assert.Equal(t, []string{"cameras", "mirrorless", "dslr", "full-frame", "aps-c"}, ids)
	})

	t.Run("leaf resolves to itself", func(t *testing.T) {
		r := NewResolver(tree)
		assert.Equal(t, []string{"dslr"}, r.ResolveDescendantIDs(ctx, "dslr"))
	})

	t.Run("descendants of a child are included for the ancestor", func(t *testing.T) {
		r := NewResolver(tree)
		parent := r.ResolveDescendantIDs(ctx, "cameras")
		for _, id := range r.ResolveDescendantIDs(ctx, "mirrorless") {
			assert.Contains(t, parent, id)
		}
	})

	t.Run("cycle is visited once", func(t *testing.T) {
		cyclic := &adjacencyReader{children: map[string][]string{
			"a": {"b"},
			"b": {"c", "a"},
			"c": {"a", "b"},
		}}
		r := NewResolver(cyclic, WithLogger(logger))
		assert.Equal(t, []string{"a", "b", "c"}, r.ResolveDescendantIDs(ctx, "a"))
	})

	t.Run("depth limit", func(t *testing.T) {
		chain := &adjacencyReader{children: map[string][]string{}}
		for i := 0; i < 10; i++ {
			chain.children[fmt.Sprintf("c%d", i)] = []string{fmt.Sprintf("c%d", i+1)}
		}
		r := NewResolver(chain, WithMaxDepth(2))
		assert.Equal(t, []string{"c0", "c1", "c2"}, r.ResolveDescendantIDs(ctx, "c0"))

		r = NewResolver(chain)
		assert.Len(t, r.ResolveDescendantIDs(ctx, "c0"), DefaultMaxDepth+1)
	})

	t.Run("id cap", func(t *testing.T) {
		wide := &adjacencyReader{children: map[string][]string{"root": {}}}
		for i := 0; i < 50; i++ {
			wide.children["root"] = append(wide.children["root"], fmt.Sprintf("child-%02d", i))
		}
		r := NewResolver(wide, WithMaxIDs(10), WithLogger(logger))
		ids := r.ResolveDescendantIDs(ctx, "root")
		assert.Len(t, ids, 10)
		assert.Equal(t, "root", ids[0])
	})

	t.Run("not found falls back to root", func(t *testing.T) {
		r := NewResolver(tree, WithLogger(logger))
		assert.Equal(t, []string{"missing"}, r.ResolveDescendantIDs(ctx, "missing"))
	})

	t.Run("catalog error falls back to root", func(t *testing.T) {
		broken := &adjacencyReader{err: errors.New("connection refused")}
		r := NewResolver(broken, WithLogger(logger))
		assert.Equal(t, []string{"cameras"}, r.ResolveDescendantIDs(ctx, "cameras"))
		assert.Equal(t, 1, broken.calls)
	})

	t.Run("empty root", func(t *testing.T) {
		assert.Empty(t, NewResolver(tree).ResolveDescendantIDs(ctx, ""))
	})
}
