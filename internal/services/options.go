package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/procat-facets/internal/app/catalog/catalogquery"
	"github.com/light-bringer/procat-facets/internal/app/catalog/category"
	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/aggregate_facets"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/get_facets"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/procat-facets/internal/app/catalog/repo"
	"github.com/light-bringer/procat-facets/internal/pkg/config"
	"github.com/light-bringer/procat-facets/internal/pkg/metrics"
	"github.com/light-bringer/procat-facets/internal/transport/grpc/catalog"
	httphandler "github.com/light-bringer/procat-facets/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	Metrics        *metrics.Metrics
	CatalogHandler *catalog.Handler
	HTTPHandler    *httphandler.CatalogHandler
}

// NewServiceOptions creates the Spanner client and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	opts := Wire(repo.NewCatalogRepo(spannerClient, logger.Named("repo")), cfg, logger, metrics.NewDefault())
	opts.SpannerClient = spannerClient
	return opts, nil
}

// Wire builds the queries and transport handlers on top of a catalog.
func Wire(store contracts.Catalog, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *ServiceOptions {
	resolver := category.NewResolver(store,
		category.WithMaxDepth(cfg.Category.MaxDepth),
		category.WithMaxIDs(cfg.Category.MaxIDs),
		category.WithLogger(logger.Named("category")),
	)
	queryOpts := []catalogquery.Option{catalogquery.WithMaxFetch(cfg.Catalog.MaxFetch)}

	listProductsQuery := list_products.NewQuery(store, resolver, logger.Named("list_products"), m, queryOpts...)
	getFacetsQuery := get_facets.NewQuery(store, resolver, logger.Named("get_facets"), m, queryOpts...)
	aggregateFacetsQuery := aggregate_facets.NewQuery(store, resolver,
		aggregate_facets.WithLogger(logger.Named("aggregate_facets")),
		aggregate_facets.WithMetrics(m),
		aggregate_facets.WithQueryOptions(queryOpts...),
	)

	return &ServiceOptions{
		Metrics:        m,
		CatalogHandler: catalog.NewHandler(listProductsQuery, getFacetsQuery, aggregateFacetsQuery),
		HTTPHandler:    httphandler.NewCatalogHandler(listProductsQuery, getFacetsQuery, aggregateFacetsQuery),
	}
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
