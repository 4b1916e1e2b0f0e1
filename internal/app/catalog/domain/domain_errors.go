package domain

import "errors"

// Domain errors as sentinel values
var (
	// Input errors, surfaced to callers
	ErrInvalidCategory        = errors.New("category id cannot be empty")
	ErrPricingContextRequired = errors.New("region id and currency code are required")

	// Scoping errors, recovered by falling back to the requested category
	ErrCategoryNotFound = errors.New("category not found")

	// Aggregation errors, recovered by omitting the facet
	ErrUnsupportedAggregation = errors.New("unsupported aggregation type")
	ErrNoNumericValues        = errors.New("no numeric values to aggregate")
	ErrNoBooleanValues        = errors.New("no boolean values to aggregate")
	ErrNoTermValues           = errors.New("no term values to aggregate")
	ErrNoPriceValues          = errors.New("no valid prices to aggregate")
)

// IsInputError reports whether err should be surfaced to the caller as a client error.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidCategory) || errors.Is(err, ErrPricingContextRequired)
}
