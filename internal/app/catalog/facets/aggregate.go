package facets

import (
	"fmt"
	"sort"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// Aggregate runs the aggregator matching the attribute's aggregation type.
// A panicking aggregator is recovered into an error so the caller can omit the facet.
func Aggregate(in Input) (agg *domain.FacetAggregation, err error) {
	defer func() {
		if r := recover(); r != nil {
			agg, err = nil, fmt.Errorf("facet %q: recovered panic: %v", in.Key(), r)
		}
	}()

	switch t := in.AggregationType(); t {
	case domain.AggregationTerm:
		return Term(in)
	case domain.AggregationRange, domain.AggregationHistogram:
		return Range(in)
	case domain.AggregationBoolean:
		return Boolean(in)
	default:
		return nil, fmt.Errorf("facet %q: %w: %s", in.Key(), domain.ErrUnsupportedAggregation, t)
	}
}

// Describe builds the configuration-only view of a facet from the base records.
// Term options are ordered by label.
func Describe(in Input) (resp *domain.FacetResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("facet %q: recovered panic: %v", in.Key(), r)
		}
	}()

	cfg := in.Config()
	resp = &domain.FacetResponse{
		Key:             in.Key(),
		Label:           in.Label(),
		Type:            in.AggregationType(),
		Widget:          cfg.Widget,
		DisplayPriority: cfg.DisplayPriority,
	}

	switch resp.Type {
	case domain.AggregationTerm:
		resp.Options, err = termOptions(in)
	case domain.AggregationRange, domain.AggregationHistogram:
		resp.Range, err = RangeBounds(in)
	case domain.AggregationBoolean:
		resp.Options, err = booleanOptions(in)
	default:
		err = fmt.Errorf("facet %q: %w: %s", in.Key(), domain.ErrUnsupportedAggregation, resp.Type)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func termOptions(in Input) ([]domain.FacetOption, error) {
	labels := domain.OptionLabels(in.Definition, in.OptionGroups)

	universe := termUniverse(in)
	if len(universe) == 0 {
		// nothing in scope yet: fall back to the configured options
		for value := range labels {
			universe[value] = struct{}{}
		}
	}
	if len(universe) == 0 {
		return nil, domain.ErrNoTermValues
	}

	options := make([]domain.FacetOption, 0, len(universe))
	for value := range universe {
		options = append(options, domain.FacetOption{Value: value, Label: labelFor(labels, value)})
	}
	sort.Slice(options, func(i, j int) bool {
		if options[i].Label != options[j].Label {
			return options[i].Label < options[j].Label
		}
		return options[i].Value < options[j].Value
	})
	return options, nil
}

func booleanOptions(in Input) ([]domain.FacetOption, error) {
	hasTrue, hasFalse := booleanUniverse(in)
	if !hasTrue && !hasFalse {
		return nil, domain.ErrNoBooleanValues
	}
	var options []domain.FacetOption
	if hasTrue {
		options = append(options, domain.FacetOption{Value: "true", Label: yesLabel})
	}
	if hasFalse {
		options = append(options, domain.FacetOption{Value: "false", Label: noLabel})
	}
	return options, nil
}

// SortAggregations orders facets by display priority; price is always first
// and ties break by key.
func SortAggregations(aggs []*domain.FacetAggregation) {
	sort.SliceStable(aggs, func(i, j int) bool {
		return facetLess(aggs[i].Key, aggs[i].DisplayPriority, aggs[j].Key, aggs[j].DisplayPriority)
	})
}

// SortResponses orders configuration-only facets like SortAggregations.
func SortResponses(resps []*domain.FacetResponse) {
	sort.SliceStable(resps, func(i, j int) bool {
		return facetLess(resps[i].Key, resps[i].DisplayPriority, resps[j].Key, resps[j].DisplayPriority)
	})
}

func facetLess(keyA string, prioA int, keyB string, prioB int) bool {
	aPrice, bPrice := keyA == domain.PriceFacetKey, keyB == domain.PriceFacetKey
	if aPrice != bPrice {
		return aPrice
	}
	if prioA != prioB {
		return prioA < prioB
	}
	return keyA < keyB
}
