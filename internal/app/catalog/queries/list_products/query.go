package list_products

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/light-bringer/procat-facets/internal/app/catalog/catalogquery"
	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
	"github.com/light-bringer/procat-facets/internal/app/catalog/filters"
	"github.com/light-bringer/procat-facets/internal/pkg/metrics"
)

// Page size bounds.
const (
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPageSize = 20
)

// Request contains scope, filtering, sorting and pagination parameters.
type Request struct {
	CategoryID   string
	Page         int
	PageSize     int
	OrderBy      string
	Filters      domain.FilterMap
	SearchQuery  string
	RegionID     string
	CurrencyCode string
}

// Query handles the list products by category use case.
type Query struct {
	catalog   contracts.Catalog
	resolver  contracts.DescendantResolver
	logger    *zap.Logger
	metrics   *metrics.Metrics
	queryOpts []catalogquery.Option
}

// NewQuery creates a new list products query.
func NewQuery(catalog contracts.Catalog, resolver contracts.DescendantResolver, logger *zap.Logger, m *metrics.Metrics, opts ...catalogquery.Option) *Query {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Query{
		catalog:   catalog,
		resolver:  resolver,
		logger:    logger,
		metrics:   m,
		queryOpts: opts,
	}
}

// Execute lists one page of the filtered products of a category.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductPage, error) {
	if strings.TrimSpace(req.CategoryID) == "" {
		return nil, domain.ErrInvalidCategory
	}
	pricing := domain.PricingContext{RegionID: req.RegionID, CurrencyCode: req.CurrencyCode}
	if err := pricing.Validate(); err != nil {
		return nil, err
	}

	page := clamp(req.Page)
	pageSize := clamp(req.PageSize)
	offset := (page - 1) * pageSize

	logger := q.logger.With(zap.String("category_id", req.CategoryID))

	categoryIDs := q.resolver.ResolveDescendantIDs(ctx, req.CategoryID)
	if len(categoryIDs) == 0 {
		return nil, domain.ErrInvalidCategory
	}

	products, err := q.catalog.QueryProducts(ctx, catalogquery.Build(categoryIDs, req.Filters, req.OrderBy, pricing, q.queryOpts...))
	if err != nil {
		logger.Warn("product listing degraded", zap.String("stage", "catalog_fetch"), zap.Error(err))
		q.metrics.Degraded("catalog_fetch")
		products = nil
	}

	products = q.attach(ctx, logger, products)

	result := filters.ForListing(filters.Params{
		Search:  req.SearchQuery,
		Filters: req.Filters,
		Sort:    req.OrderBy,
		Offset:  offset,
		Limit:   pageSize,
	}).Run(products)

	data := make([]*contracts.ProductDTO, 0, len(result.Products))
	for _, p := range result.Products {
		data = append(data, contracts.NewProductDTO(p))
	}

	return &contracts.ProductPage{
		Data: data,
		Pagination: contracts.Pagination{
			Total:       result.TotalCount,
			Limit:       pageSize,
			Offset:      offset,
			TotalPages:  totalPages(result.TotalCount, pageSize),
			CurrentPage: page,
		},
	}, nil
}

// attach loads attribute values; on failure products keep empty attribute maps.
func (q *Query) attach(ctx context.Context, logger *zap.Logger, products []*domain.Product) []*domain.Product {
	if len(products) == 0 {
		return products
	}
	records, err := q.catalog.ListAttributeRecords(ctx, domain.ProductIDs(products))
	if err != nil {
		logger.Warn("product listing degraded", zap.String("stage", "attribute_attach"), zap.Error(err))
		q.metrics.Degraded("attribute_attach")
		records = nil
	}
	return domain.AttachAttributes(products, records)
}

func clamp(n int) int {
	return min(max(n, MinPageSize), MaxPageSize)
}

func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
