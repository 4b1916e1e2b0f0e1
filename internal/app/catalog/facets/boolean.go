package facets

import (
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

const (
	yesLabel = "Yes"
	noLabel  = "No"
)

// Boolean aggregates a yes/no attribute.
// An option is emitted only when some base record produces it; Yes precedes No.
func Boolean(in Input) (*domain.FacetAggregation, error) {
	hasTrue, hasFalse := booleanUniverse(in)
	if !hasTrue && !hasFalse {
		return nil, domain.ErrNoBooleanValues
	}

	var trues, falses int
	in.values(in.Filtered, func(v any) {
		b, ok := domain.ToBool(v)
		switch {
		case !ok:
		case b:
			trues++
		default:
			falses++
		}
	})

	values := make([]domain.FacetValue, 0, 2)
	if hasTrue {
		values = append(values, domain.FacetValue{Value: "true", Label: yesLabel, Count: trues})
	}
	if hasFalse {
		values = append(values, domain.FacetValue{Value: "false", Label: noLabel, Count: falses})
	}

	return in.aggregation(values, nil), nil
}

func booleanUniverse(in Input) (hasTrue, hasFalse bool) {
	in.values(in.Base, func(v any) {
		if b, ok := domain.ToBool(v); ok {
			if b {
				hasTrue = true
			} else {
				hasFalse = true
			}
		}
	})
	return hasTrue, hasFalse
}
