// Package category expands a category into the ids of its descendants.
package category

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

const (
	// DefaultMaxDepth is how many levels below the root the catalog is asked for.
	DefaultMaxDepth = 4
	// DefaultMaxIDs caps the number of collected category ids.
	DefaultMaxIDs = 1000
)

// Resolver expands a category id into its descendant ids.
type Resolver struct {
	reader   contracts.CategoryReader
	maxDepth int
	maxIDs   int
	logger   *zap.Logger
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithMaxDepth overrides the traversal depth limit.
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// WithMaxIDs overrides the collected id limit.
func WithMaxIDs(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxIDs = n
		}
	}
}

// WithLogger sets the logger used to report degraded resolutions.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver reading from the catalog.
func NewResolver(reader contracts.CategoryReader, opts ...Option) *Resolver {
	r := &Resolver{
		reader:   reader,
		maxDepth: DefaultMaxDepth,
		maxIDs:   DefaultMaxIDs,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type queued struct {
	node  *domain.CategoryNode
	depth int
}

// ResolveDescendantIDs returns rootID followed by its descendants in
// breadth-first order. Any failure degrades to rootID alone.
func (r *Resolver) ResolveDescendantIDs(ctx context.Context, rootID string) []string {
	if rootID == "" {
		return nil
	}
	fallback := []string{rootID}

	if r.reader == nil {
		return fallback
	}

	tree, err := r.reader.CategoryTree(ctx, rootID, r.maxDepth)
	if err != nil {
		r.logger.Warn("category resolution failed, scoping to requested category",
			zap.String("category_id", rootID),
			zap.Error(err),
		)
		return fallback
	}
	if tree == nil {
		return fallback
	}

	ids := []string{rootID}
	visited := map[string]struct{}{rootID: {}}
	queue := []queued{{node: tree, depth: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.depth >= r.maxDepth {
			continue
		}

		for _, child := range item.node.Children {
			if child == nil || child.ID == "" {
				continue
			}
			if _, seen := visited[child.ID]; seen {
				continue
			}
			if len(ids) >= r.maxIDs {
				r.logger.Warn("category id cap reached",
					zap.String("category_id", rootID),
					zap.Int("max_ids", r.maxIDs),
				)
				return ids
			}
			visited[child.ID] = struct{}{}
			ids = append(ids, child.ID)
			queue = append(queue, queued{node: child, depth: item.depth + 1})
		}
	}

	return ids
}
