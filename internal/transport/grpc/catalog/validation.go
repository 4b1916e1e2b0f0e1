package catalog

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func validateCategory(categoryID string) error {
	if strings.TrimSpace(categoryID) == "" {
		return status.Error(codes.InvalidArgument, "category_id is required")
	}
	return nil
}

func validatePricing(regionID, currencyCode string, required bool) error {
	if !required && regionID == "" && currencyCode == "" {
		return nil
	}
	if regionID == "" {
		return status.Error(codes.InvalidArgument, "region_id is required")
	}
	if currencyCode == "" {
		return status.Error(codes.InvalidArgument, "currency_code is required")
	}
	return nil
}

// validateListProductsRequest validates the ListProducts request.
func validateListProductsRequest(req *listProductsRequest) error {
	if err := validateCategory(req.CategoryID); err != nil {
		return err
	}
	return validatePricing(req.RegionID, req.CurrencyCode, true)
}

// validateGetFacetsRequest validates the GetFacets request.
func validateGetFacetsRequest(req *getFacetsRequest) error {
	if err := validateCategory(req.CategoryID); err != nil {
		return err
	}
	return validatePricing(req.RegionID, req.CurrencyCode, false)
}

// validateAggregateFacetsRequest validates the AggregateFacets request.
func validateAggregateFacetsRequest(req *aggregateFacetsRequest) error {
	if err := validateCategory(req.CategoryID); err != nil {
		return err
	}
	return validatePricing(req.RegionID, req.CurrencyCode, true)
}
