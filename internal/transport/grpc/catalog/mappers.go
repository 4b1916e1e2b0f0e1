package catalog

import (
	jsoniter "github.com/json-iterator/go"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/aggregate_facets"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/get_facets"
	"github.com/light-bringer/procat-facets/internal/app/catalog/queries/list_products"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type listProductsRequest struct {
	CategoryID   string           `json:"category_id"`
	Page         int              `json:"page"`
	PageSize     int              `json:"page_size"`
	OrderBy      string           `json:"order_by"`
	Filters      domain.FilterMap `json:"filters"`
	SearchQuery  string           `json:"q"`
	RegionID     string           `json:"region_id"`
	CurrencyCode string           `json:"currency_code"`
}

type getFacetsRequest struct {
	CategoryID   string `json:"category_id"`
	RegionID     string `json:"region_id"`
	CurrencyCode string `json:"currency_code"`
}

type aggregateFacetsRequest struct {
	CategoryID   string           `json:"category_id"`
	Filters      domain.FilterMap `json:"filters"`
	RegionID     string           `json:"region_id"`
	CurrencyCode string           `json:"currency_code"`
}

type facetsReply struct {
	Facets []*domain.FacetResponse `json:"facets"`
}

// decodeStruct copies a Struct message into a request type through its JSON form.
func decodeStruct(in *structpb.Struct, out any) error {
	if in == nil {
		return nil
	}
	raw, err := protojson.Marshal(in)
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "malformed request: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return status.Errorf(codes.InvalidArgument, "malformed request: %v", err)
	}
	return nil
}

// encodeStruct converts a reply into a Struct message through its JSON form.
func encodeStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode reply: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode reply: %v", err)
	}
	return out, nil
}

func (r *listProductsRequest) toQuery() *list_products.Request {
	return &list_products.Request{
		CategoryID:   r.CategoryID,
		Page:         r.Page,
		PageSize:     r.PageSize,
		OrderBy:      r.OrderBy,
		Filters:      r.Filters,
		SearchQuery:  r.SearchQuery,
		RegionID:     r.RegionID,
		CurrencyCode: r.CurrencyCode,
	}
}

func (r *getFacetsRequest) toQuery() *get_facets.Request {
	return &get_facets.Request{
		CategoryID:   r.CategoryID,
		RegionID:     r.RegionID,
		CurrencyCode: r.CurrencyCode,
	}
}

func (r *aggregateFacetsRequest) toQuery() *aggregate_facets.Request {
	return &aggregate_facets.Request{
		CategoryID:   r.CategoryID,
		Filters:      r.Filters,
		RegionID:     r.RegionID,
		CurrencyCode: r.CurrencyCode,
	}
}
