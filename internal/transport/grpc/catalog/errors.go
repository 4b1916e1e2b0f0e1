package catalog

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
// Only input errors are expected here; the queries degrade everything else.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCategory):
		return status.Error(codes.InvalidArgument, "category_id is required")

	case errors.Is(err, domain.ErrPricingContextRequired):
		return status.Error(codes.InvalidArgument, "region_id and currency_code are required")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
