package facets

import (
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// Range aggregates a numeric attribute as a {min, max, step} window.
// Used for both range and histogram facets; no discrete values are emitted.
func Range(in Input) (*domain.FacetAggregation, error) {
	rng, err := RangeBounds(in)
	if err != nil {
		return nil, err
	}
	return in.aggregation(nil, rng), nil
}

// RangeBounds computes the numeric window from the base records.
// Configured bounds and step win over computed ones.
func RangeBounds(in Input) (*domain.FacetRange, error) {
	var lo, hi float64
	found := false
	in.values(in.Base, func(v any) {
		for _, n := range numbers(v) {
			if !found {
				lo, hi, found = n, n, true
				continue
			}
			lo = min(lo, n)
			hi = max(hi, n)
		}
	})

	var override domain.RangeConfig
	if rc := in.Config().RangeConfig; rc != nil {
		override = *rc
	}
	if override.Min != nil {
		lo = *override.Min
	}
	if override.Max != nil {
		hi = *override.Max
	}
	if !found && (override.Min == nil || override.Max == nil) {
		return nil, domain.ErrNoNumericValues
	}

	step := RangeStep(hi - lo)
	if override.Step != nil && *override.Step > 0 {
		step = *override.Step
	}

	return &domain.FacetRange{Min: lo, Max: hi, Step: step}, nil
}

// RangeStep is the bucketing heuristic for attribute ranges.
func RangeStep(span float64) float64 {
	switch {
	case span <= 10:
		return 1
	case span <= 100:
		return 5
	case span <= 1000:
		return 10
	default:
		return 50
	}
}

func numbers(v any) []float64 {
	if list, ok := v.([]any); ok {
		out := make([]float64, 0, len(list))
		for _, e := range list {
			if n, ok := domain.ToFloat(e); ok {
				out = append(out, n)
			}
		}
		return out
	}
	if n, ok := domain.ToFloat(v); ok {
		return []float64{n}
	}
	return nil
}
