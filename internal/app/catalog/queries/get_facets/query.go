package get_facets

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/light-bringer/procat-facets/internal/app/catalog/catalogquery"
	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
	"github.com/light-bringer/procat-facets/internal/app/catalog/facets"
	"github.com/light-bringer/procat-facets/internal/pkg/metrics"
)

// Request contains the category to describe. RegionID and CurrencyCode are
// optional; without them the price facet is omitted.
type Request struct {
	CategoryID   string
	RegionID     string
	CurrencyCode string
}

func (r *Request) pricing() (domain.PricingContext, error) {
	pricing := domain.PricingContext{RegionID: r.RegionID, CurrencyCode: r.CurrencyCode}
	if pricing.RegionID == "" && pricing.CurrencyCode == "" {
		return pricing, nil
	}
	return pricing, pricing.Validate()
}

// Query handles the configuration-only facet listing of a category.
type Query struct {
	catalog   contracts.Catalog
	resolver  contracts.DescendantResolver
	logger    *zap.Logger
	metrics   *metrics.Metrics
	queryOpts []catalogquery.Option
}

// NewQuery creates a new get facets query.
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

// Execute lists the facets available in a category without counts.
// Catalog failures degrade to the facets that could still be described.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.FacetResponse, error) {
	if strings.TrimSpace(req.CategoryID) == "" {
		return nil, domain.ErrInvalidCategory
	}
	pricing, err := req.pricing()
	if err != nil {
		return nil, err
	}

	logger := q.logger.With(zap.String("category_id", req.CategoryID))
	out := make([]*domain.FacetResponse, 0)

	categoryIDs := q.resolver.ResolveDescendantIDs(ctx, req.CategoryID)
	base, err := q.catalog.QueryProducts(ctx, catalogquery.BaseQuery(categoryIDs, pricing, q.queryOpts...))
	if err != nil {
		q.degrade(logger, "base_fetch", err)
		return out, nil
	}

	if price, err := facets.PriceResponse(base); err == nil {
		out = append(out, price)
	}
	if len(base) == 0 {
		return out, nil
	}

	records, err := q.catalog.ListAttributeRecords(ctx, domain.ProductIDs(base))
	if err != nil {
		q.degrade(logger, "attribute_records", err)
		return out, nil
	}
	templateIDs := domain.TemplateIDs(records)
	if len(templateIDs) == 0 {
		return out, nil
	}
	templates, err := q.catalog.ListAttributeTemplates(ctx, contracts.TemplateFilter{IDs: templateIDs})
	if err != nil {
		q.degrade(logger, "attribute_templates", err)
		return out, nil
	}

	merged := domain.MergeRecords(records)
	for _, def := range facets.Definitions(templates) {
		resp, err := facets.Describe(def.Input(merged, nil))
		if err != nil {
			if errors.Is(err, domain.ErrUnsupportedAggregation) {
				q.degrade(logger.With(zap.String("attribute", def.Attribute.Key)), "facet", err)
			}
			continue
		}
		out = append(out, resp)
	}

	facets.SortResponses(out)
	return out, nil
}

func (q *Query) degrade(logger *zap.Logger, stage string, err error) {
	logger.Warn("facet listing degraded", zap.String("stage", stage), zap.Error(err))
	q.metrics.Degraded(stage)
}
