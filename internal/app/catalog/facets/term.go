package facets

import (
	"sort"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// Term aggregates a categorical attribute.
// Every distinct base value is emitted, including values whose filtered count is zero.
func Term(in Input) (*domain.FacetAggregation, error) {
	universe := termUniverse(in)
	if len(universe) == 0 {
		return nil, domain.ErrNoTermValues
	}

	counts := make(map[string]int, len(universe))
	in.values(in.Filtered, func(v any) {
		// a record counts once per distinct value
		seen := make(map[string]struct{})
		for _, s := range domain.ValueStrings(v) {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			counts[s]++
		}
	})

	labels := domain.OptionLabels(in.Definition, in.OptionGroups)
	values := make([]domain.FacetValue, 0, len(universe))
	for value := range universe {
		values = append(values, domain.FacetValue{
			Value: value,
			Label: labelFor(labels, value),
			Count: counts[value],
		})
	}
	SortValues(values)

	return in.aggregation(values, nil), nil
}

// SortValues orders values by count descending, then label and value ascending.
func SortValues(values []domain.FacetValue) {
	sort.Slice(values, func(i, j int) bool {
		a, b := values[i], values[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.Value < b.Value
	})
}

func termUniverse(in Input) map[string]struct{} {
	universe := make(map[string]struct{})
	in.values(in.Base, func(v any) {
		for _, s := range domain.ValueStrings(v) {
			universe[s] = struct{}{}
		}
	})
	return universe
}

func labelFor(labels map[string]string, value string) string {
	if l, ok := labels[value]; ok && l != "" {
		return l
	}
	return value
}
