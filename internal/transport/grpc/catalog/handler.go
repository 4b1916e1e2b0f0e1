package catalog

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/aggregate_facets"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/get_facets"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/list_products"
)

// Handler implements CatalogServiceServer.
// It's a thin coordinator that delegates to the catalog queries.
type Handler struct {
	listProducts    *list_products.Query
	getFacets       *get_facets.Query
	aggregateFacets *aggregate_facets.Query
}

var _ CatalogServiceServer = (*Handler)(nil)

// NewHandler creates a new gRPC catalog handler.
func NewHandler(
	listProducts *list_products.Query,
	getFacets *get_facets.Query,
	aggregateFacets *aggregate_facets.Query,
) *Handler {
	return &Handler{
		listProducts:    listProducts,
		getFacets:       getFacets,
		aggregateFacets: aggregateFacets,
	}
}

// ListProducts returns one page of the filtered products of a category.
func (h *Handler) ListProducts(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req listProductsRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	if err := validateListProductsRequest(&req); err != nil {
		return nil, err
	}

	page, err := h.listProducts.Execute(ctx, req.toQuery())
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return encodeStruct(page)
}

// GetFacets lists the facets of a category without counts.
func (h *Handler) GetFacets(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req getFacetsRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	if err := validateGetFacetsRequest(&req); err != nil {
		return nil, err
	}

	resps, err := h.getFacets.Execute(ctx, req.toQuery())
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return encodeStruct(facetsReply{Facets: resps})
}

// AggregateFacets computes facet values and counts for the applied filters.
func (h *Handler) AggregateFacets(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req aggregateFacetsRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	if err := validateAggregateFacetsRequest(&req); err != nil {
		return nil, err
	}

	summary, err := h.aggregateFacets.Execute(ctx, req.toQuery())
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return encodeStruct(summary)
}
