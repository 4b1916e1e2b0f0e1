// Package facets computes facet values and ranges from attribute records.
//
// Every aggregator is dual-sourced: the base record set (category scope only)
// decides which values exist, the filtered record set decides their counts.
package facets

import (
	"sort"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

// Input is everything an aggregator needs for one attribute.
type Input struct {
	Definition   domain.AttributeDefinition
	OptionGroups []domain.OptionGroup
	Base         []domain.AttributeRecord
	Filtered     []domain.AttributeRecord
}

// Key is the attribute key.
func (in Input) Key() string {
	return in.Definition.Key
}

// Label is the attribute display label.
func (in Input) Label() string {
	return in.Definition.DisplayLabel()
}

// Config returns the facet config, or the zero config when none is set.
func (in Input) Config() domain.FacetConfig {
	if in.Definition.Facet == nil {
		return domain.FacetConfig{}
	}
	return *in.Definition.Facet
}

// AggregationType returns the configured aggregation, inferring one from the
// attribute type when the config leaves it empty.
func (in Input) AggregationType() domain.AggregationType {
	if t := in.Config().AggregationType; t != "" {
		return t
	}
	switch in.Definition.Type {
	case domain.AttributeNumber:
		return domain.AggregationRange
	case domain.AttributeBoolean:
		return domain.AggregationBoolean
	default:
		return domain.AggregationTerm
	}
}

func (in Input) values(records []domain.AttributeRecord, each func(v any)) {
	key := in.Key()
	for _, r := range records {
		if v, ok := r.Value(key); ok && v != nil {
			each(v)
		}
	}
}

func (in Input) aggregation(values []domain.FacetValue, rng *domain.FacetRange) *domain.FacetAggregation {
	cfg := in.Config()
	return &domain.FacetAggregation{
		Key:             in.Key(),
		Label:           in.Label(),
		Type:            in.AggregationType(),
		Widget:          cfg.Widget,
		DisplayPriority: cfg.DisplayPriority,
		Values:          values,
		Range:           rng,
	}
}

// Definition is a facet-enabled attribute with the option groups of its template.
type Definition struct {
	Attribute    domain.AttributeDefinition
	OptionGroups []domain.OptionGroup
}

// Input pairs the definition with record sets.
func (d Definition) Input(base, filtered []domain.AttributeRecord) Input {
	return Input{Definition: d.Attribute, OptionGroups: d.OptionGroups, Base: base, Filtered: filtered}
}

// Definitions collects facet-enabled attributes from templates.
// Templates are visited by id and the first definition of a key wins; the
// reserved price key is never an attribute facet.
func Definitions(templates []domain.AttributeTemplate) []Definition {
	ordered := append([]domain.AttributeTemplate(nil), templates...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	seen := make(map[string]struct{})
	var out []Definition
	for _, tpl := range ordered {
		for _, def := range tpl.Attributes {
			if !def.IsFacet() || def.Key == "" || def.Key == domain.PriceFacetKey {
				continue
			}
			if _, dup := seen[def.Key]; dup {
				continue
			}
			seen[def.Key] = struct{}{}
			out = append(out, Definition{Attribute: def, OptionGroups: tpl.OptionGroups})
		}
	}
	return out
}
