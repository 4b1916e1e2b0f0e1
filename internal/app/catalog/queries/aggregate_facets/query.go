package aggregate_facets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/procat-facets/internal/app/catalog/catalogquery"
	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
	"github.com/light-bringer/procat-facets/internal/app/catalog/facets"
	"github.com/light-bringer/procat-facets/internal/app/catalog/filters"
	"github.com/light-bringer/procat-facets/internal/pkg/metrics"
)

const tracerName = "github.com/light-bringer/procat-facets/internal/app/catalog/queries/aggregate_facets"

// Request contains the category, the applied filters and the pricing context.
type Request struct {
	CategoryID   string
	Filters      domain.FilterMap
	RegionID     string
	CurrencyCode string
}

// Query handles the aggregate facets query use case.
type Query struct {
	catalog   contracts.Catalog
	resolver  contracts.DescendantResolver
	logger    *zap.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	queryOpts []catalogquery.Option
}

// Option customises the query.
type Option func(*Query)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(q *Query) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Metrics) Option {
	return func(q *Query) { q.metrics = m }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(q *Query) {
		if tracer != nil {
			q.tracer = tracer
		}
	}
}

// WithQueryOptions tunes the catalog queries.
func WithQueryOptions(opts ...catalogquery.Option) Option {
	return func(q *Query) { q.queryOpts = append(q.queryOpts, opts...) }
}

// NewQuery creates a new aggregate facets query.
func NewQuery(catalog contracts.Catalog, resolver contracts.DescendantResolver, opts ...Option) *Query {
	q := &Query{
		catalog:  catalog,
		resolver: resolver,
		logger:   zap.NewNop(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// branchResult is what one concurrent branch contributes.
type branchResult struct {
	ok     bool
	total  int
	facets []*domain.FacetAggregation
}

// Execute computes every facet of a category with counts restricted to the
// filtered set. Only input errors are returned; every other failure degrades
// the response.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.FacetSummary, error) {
	if strings.TrimSpace(req.CategoryID) == "" {
		return nil, domain.ErrInvalidCategory
	}
	pricing := domain.PricingContext{RegionID: req.RegionID, CurrencyCode: req.CurrencyCode}
	if err := pricing.Validate(); err != nil {
		return nil, err
	}

	applied := req.Filters
	if applied == nil {
		applied = domain.FilterMap{}
	}

	ctx, span := q.tracer.Start(ctx, "AggregateFacets", trace.WithAttributes(
		attribute.String("category_id", req.CategoryID),
		attribute.String("region_id", pricing.RegionID),
	))
	defer span.End()

	logger := q.logger.With(zap.String("category_id", req.CategoryID))
	categoryIDs := q.resolver.ResolveDescendantIDs(ctx, req.CategoryID)

	var system, attrs branchResult
	var g errgroup.Group
	g.Go(func() error {
		system = q.guard(logger, "system_branch", func() branchResult {
			return q.systemBranch(ctx, logger, categoryIDs, applied, pricing)
		})
		return nil
	})
	g.Go(func() error {
		attrs = q.guard(logger, "attribute_branch", func() branchResult {
			return q.attributeBranch(ctx, logger, categoryIDs, applied, pricing)
		})
		return nil
	})
	_ = g.Wait()

	summary := &contracts.FacetSummary{
		CategoryID:     req.CategoryID,
		Facets:         make([]*domain.FacetAggregation, 0, len(system.facets)+len(attrs.facets)),
		AppliedFilters: applied,
	}
	switch {
	case system.ok:
		summary.TotalProducts = system.total
	case attrs.ok:
		summary.TotalProducts = attrs.total
	}
	summary.Facets = append(summary.Facets, system.facets...)
	summary.Facets = append(summary.Facets, attrs.facets...)
	facets.SortAggregations(summary.Facets)

	span.SetAttributes(
		attribute.Int("total_products", summary.TotalProducts),
		attribute.Int("facet_count", len(summary.Facets)),
	)
	return summary, nil
}

// guard runs a branch, turning a panic into an empty result.
func (q *Query) guard(logger *zap.Logger, stage string, fn func() branchResult) (res branchResult) {
	defer func() {
		if r := recover(); r != nil {
			q.degrade(logger, stage, fmt.Errorf("recovered panic: %v", r))
			res = branchResult{}
		}
	}()
	return fn()
}

// systemBranch computes the filtered product count and the price facet.
func (q *Query) systemBranch(ctx context.Context, logger *zap.Logger, categoryIDs []string, applied domain.FilterMap, pricing domain.PricingContext) branchResult {
	ctx, span := q.tracer.Start(ctx, "AggregateFacets.system")
	defer span.End()

	base, err := q.catalog.QueryProducts(ctx, catalogquery.BaseQuery(categoryIDs, pricing, q.queryOpts...))
	if err != nil {
		q.fail(span, logger, "base_fetch", err)
		return branchResult{}
	}

	if len(applied.AttributeFilters()) > 0 {
		base = q.attach(ctx, logger, base)
	}
	filtered := filters.ForFacets(applied).Run(base)

	res := branchResult{ok: true, total: filtered.TotalCount}
	price, err := facets.Price(filtered.Products)
	switch {
	case err == nil:
		res.facets = append(res.facets, price)
	case errors.Is(err, domain.ErrNoPriceValues):
		logger.Debug("price facet omitted", zap.Error(err))
	default:
		q.degrade(logger, "facet", err)
	}

	span.SetAttributes(attribute.Int("base_products", len(base)), attribute.Int("filtered_products", filtered.TotalCount))
	return res
}

// attributeBranch computes one facet per facet-enabled attribute.
func (q *Query) attributeBranch(ctx context.Context, logger *zap.Logger, categoryIDs []string, applied domain.FilterMap, pricing domain.PricingContext) branchResult {
	ctx, span := q.tracer.Start(ctx, "AggregateFacets.attributes")
	defer span.End()

	base, err := q.catalog.QueryProducts(ctx, catalogquery.BaseQuery(categoryIDs, pricing, q.queryOpts...))
	if err != nil {
		q.fail(span, logger, "base_fetch", err)
		return branchResult{}
	}
	if len(base) == 0 {
		return branchResult{ok: true}
	}

	records, err := q.catalog.ListAttributeRecords(ctx, domain.ProductIDs(base))
	if err != nil {
		q.fail(span, logger, "attribute_records", err)
		return branchResult{}
	}

	filtered := filters.ForFacets(applied).Run(domain.AttachAttributes(base, records))
	res := branchResult{ok: true, total: filtered.TotalCount}

	templateIDs := domain.TemplateIDs(records)
	if len(templateIDs) == 0 {
		return res
	}
	templates, err := q.catalog.ListAttributeTemplates(ctx, contracts.TemplateFilter{IDs: templateIDs})
	if err != nil {
		q.fail(span, logger, "attribute_templates", err)
		return res
	}

	// counts are per product, not per template record
	merged := domain.MergeRecords(records)
	filteredRecords := recordsOf(merged, filtered.Products)
	for _, def := range facets.Definitions(templates) {
		agg, err := facets.Aggregate(def.Input(merged, filteredRecords))
		if err != nil {
			if isEmptyFacet(err) {
				logger.Debug("facet omitted", zap.String("attribute", def.Attribute.Key), zap.Error(err))
				continue
			}
			q.degrade(logger.With(zap.String("attribute", def.Attribute.Key)), "facet", err)
			continue
		}
		res.facets = append(res.facets, agg)
	}

	span.SetAttributes(attribute.Int("attribute_facets", len(res.facets)))
	return res
}

// attach loads attribute values for products; on failure products keep empty maps.
func (q *Query) attach(ctx context.Context, logger *zap.Logger, products []*domain.Product) []*domain.Product {
	if len(products) == 0 {
		return products
	}
	records, err := q.catalog.ListAttributeRecords(ctx, domain.ProductIDs(products))
	if err != nil {
		q.degrade(logger, "attribute_attach", err)
		records = nil
	}
	return domain.AttachAttributes(products, records)
}

func (q *Query) fail(span trace.Span, logger *zap.Logger, stage string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, stage)
	q.degrade(logger, stage, err)
}

func (q *Query) degrade(logger *zap.Logger, stage string, err error) {
	logger.Warn("facet aggregation degraded", zap.String("stage", stage), zap.Error(err))
	q.metrics.Degraded(stage)
}

func recordsOf(records []domain.AttributeRecord, products []*domain.Product) []domain.AttributeRecord {
	keep := make(map[string]struct{}, len(products))
	for _, p := range products {
		keep[p.ID] = struct{}{}
	}
	out := make([]domain.AttributeRecord, 0, len(records))
	for _, r := range records {
		if _, ok := keep[r.ProductID]; ok {
			out = append(out, r)
		}
	}
	return out
}

func isEmptyFacet(err error) bool {
	return errors.Is(err, domain.ErrNoTermValues) ||
		errors.Is(err, domain.ErrNoNumericValues) ||
		errors.Is(err, domain.ErrNoBooleanValues)
}
