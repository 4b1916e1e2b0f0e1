package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/aggregate_facets"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/get_facets"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/list_products"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes bounds the aggregate request body.
const maxBodyBytes = 1 << 20

// CatalogHandler serves the catalog read endpoints.
type CatalogHandler struct {
	listProducts    *list_products.Query
	getFacets       *get_facets.Query
	aggregateFacets *aggregate_facets.Query
}

// NewCatalogHandler creates a new HTTP catalog handler.
func NewCatalogHandler(
	listProducts *list_products.Query,
	getFacets *get_facets.Query,
	aggregateFacets *aggregate_facets.Query,
) *CatalogHandler {
	return &CatalogHandler{
		listProducts:    listProducts,
		getFacets:       getFacets,
		aggregateFacets: aggregateFacets,
	}
}

// FacetsResponse is the body of the facet listing endpoint.
type FacetsResponse struct {
	Facets []*domain.FacetResponse `json:"facets"`
}

// AggregateRequest is the body of the facet aggregation endpoint.
type AggregateRequest struct {
	Filters      domain.FilterMap `json:"filters"`
	RegionID     string           `json:"region_id"`
	CurrencyCode string           `json:"currency_code"`
}

// ListProducts handles GET /api/v1/categories/{categoryID}/products.
//
// Query parameters: page, page_size, order_by, q, region_id, currency_code
// and filters, a JSON object in the shape of the aggregate request filters.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters, err := parseFilters(query.Get("filters"))
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "invalid_filters", "filters must be a JSON object")
		return
	}
	page, err := intParam(query.Get("page"))
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "invalid_page", "page must be an integer")
		return
	}
	pageSize, err := intParam(query.Get("page_size"))
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "invalid_page_size", "page_size must be an integer")
		return
	}

	resp, err := h.listProducts.Execute(r.Context(), &list_products.Request{
		CategoryID:   categoryID(r),
		Page:         page,
		PageSize:     pageSize,
		OrderBy:      query.Get("order_by"),
		Filters:      filters,
		SearchQuery:  query.Get("q"),
		RegionID:     query.Get("region_id"),
		CurrencyCode: query.Get("currency_code"),
	})
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetFacets handles GET /api/v1/categories/{categoryID}/facets.
func (h *CatalogHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resps, err := h.getFacets.Execute(r.Context(), &get_facets.Request{
		CategoryID:   categoryID(r),
		RegionID:     query.Get("region_id"),
		CurrencyCode: query.Get("currency_code"),
	})
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, FacetsResponse{Facets: resps})
}

// AggregateFacets handles POST /api/v1/categories/{categoryID}/facets/aggregate.
func (h *CatalogHandler) AggregateFacets(w http.ResponseWriter, r *http.Request) {
	var body AggregateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "invalid_body", "request body must be a JSON object")
		return
	}

	summary, err := h.aggregateFacets.Execute(r.Context(), &aggregate_facets.Request{
		CategoryID:   categoryID(r),
		Filters:      body.Filters,
		RegionID:     body.RegionID,
		CurrencyCode: body.CurrencyCode,
	})
	if err != nil {
		writeDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func categoryID(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "categoryID"))
}

func parseFilters(raw string) (domain.FilterMap, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var filters domain.FilterMap
	if err := json.UnmarshalFromString(raw, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}

// intParam parses an optional integer; empty means zero so the query applies its default.
func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
