package domain

// PriceFacetKey is the key of the system-level price facet.
const PriceFacetKey = "price"

// PriceFacetPriority pins the price facet before every attribute facet.
const PriceFacetPriority = 0

// FacetValue is one selectable value of a term or boolean facet.
type FacetValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FacetRange is the numeric window of a range, histogram or price facet.
type FacetRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// FacetAggregation is a computed facet with counts.
type FacetAggregation struct {
	Key             string          `json:"key"`
	Label           string          `json:"label"`
	Type            AggregationType `json:"type"`
	Widget          string          `json:"widget,omitempty"`
	DisplayPriority int             `json:"display_priority"`
	Values          []FacetValue    `json:"values,omitempty"`
	Range           *FacetRange     `json:"range,omitempty"`
}

// FacetOption is a selectable value of a configuration-only facet.
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FacetResponse is a facet's configuration without counts.
type FacetResponse struct {
	Key             string          `json:"key"`
	Label           string          `json:"label"`
	Type            AggregationType `json:"type"`
	Widget          string          `json:"widget,omitempty"`
	DisplayPriority int             `json:"display_priority"`
	Options         []FacetOption   `json:"options,omitempty"`
	Range           *FacetRange     `json:"range,omitempty"`
}
