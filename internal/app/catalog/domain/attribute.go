package domain

// AttributeType is the value type of a free-form product attribute.
type AttributeType string

const (
	AttributeText    AttributeType = "text"
	AttributeNumber  AttributeType = "number"
	AttributeSelect  AttributeType = "select"
	AttributeBoolean AttributeType = "boolean"
)

// AggregationType selects the facet aggregator for an attribute.
type AggregationType string

const (
	AggregationTerm      AggregationType = "term"
	AggregationRange     AggregationType = "range"
	AggregationHistogram AggregationType = "histogram"
	AggregationBoolean   AggregationType = "boolean"
)

// RangeConfig overrides computed range bounds and step.
type RangeConfig struct {
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Step *float64 `json:"step,omitempty"`
}

// FacetConfig controls how an attribute is exposed as a facet.
type FacetConfig struct {
	IsFacet         bool            `json:"is_facet"`
	DisplayPriority int             `json:"display_priority"`
	AggregationType AggregationType `json:"aggregation_type"`
	Widget          string          `json:"widget,omitempty"`
	RangeConfig     *RangeConfig    `json:"range_config,omitempty"`
}

// AttributeOption is one selectable value of a select attribute.
type AttributeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionGroup is a shared option list referenced by several attributes.
type OptionGroup struct {
	ID      string            `json:"id"`
	Options []AttributeOption `json:"options"`
}

// AttributeDefinition describes one attribute of a template.
type AttributeDefinition struct {
	Key           string            `json:"key"`
	Label         string            `json:"label"`
	Type          AttributeType     `json:"type"`
	Options       []AttributeOption `json:"options,omitempty"`
	OptionGroupID string            `json:"option_group_id,omitempty"`
	Facet         *FacetConfig      `json:"facet_config,omitempty"`
}

// IsFacet reports whether the attribute is exposed as a facet.
func (d AttributeDefinition) IsFacet() bool {
	return d.Facet != nil && d.Facet.IsFacet
}

// DisplayLabel falls back to the key when no label is configured.
func (d AttributeDefinition) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Key
}

// AttributeTemplate groups attribute definitions assigned to products.
type AttributeTemplate struct {
	ID           string
	Name         string
	Attributes   []AttributeDefinition
	OptionGroups []OptionGroup
}

// AttributeRecord holds the attribute values of one product.
type AttributeRecord struct {
	ProductID  string
	TemplateID string
	Values     map[string]any
}

// Value returns the raw value for key.
func (r AttributeRecord) Value(key string) (any, bool) {
	if r.Values == nil {
		return nil, false
	}
	v, ok := r.Values[key]
	return v, ok
}

// OptionLabels maps option values to display labels for a definition,
// resolving the referenced option group when one is set.
func OptionLabels(def AttributeDefinition, groups []OptionGroup) map[string]string {
	labels := make(map[string]string, len(def.Options))
	if def.OptionGroupID != "" {
		for _, g := range groups {
			if g.ID != def.OptionGroupID {
				continue
			}
			for _, o := range g.Options {
				labels[o.Value] = o.Label
			}
		}
	}
	// inline options win over group options
	for _, o := range def.Options {
		labels[o.Value] = o.Label
	}
	return labels
}

// AttributesByProduct merges the records of each product into one value map.
// When a product carries several templates, later records win on key clashes.
func AttributesByProduct(records []AttributeRecord) map[string]map[string]any {
	out := make(map[string]map[string]any, len(records))
	for _, r := range records {
		values, ok := out[r.ProductID]
		if !ok {
			values = make(map[string]any, len(r.Values))
			out[r.ProductID] = values
		}
		for k, v := range r.Values {
			values[k] = v
		}
	}
	return out
}

// MergeRecords collapses records to one per product, in order of first
// appearance, with values merged the way AttributesByProduct merges them.
// The merged record keeps the template id of the product's first record.
func MergeRecords(records []AttributeRecord) []AttributeRecord {
	byProduct := AttributesByProduct(records)
	out := make([]AttributeRecord, 0, len(byProduct))
	seen := make(map[string]struct{}, len(byProduct))
	for _, r := range records {
		if _, dup := seen[r.ProductID]; dup {
			continue
		}
		seen[r.ProductID] = struct{}{}
		out = append(out, AttributeRecord{ProductID: r.ProductID, TemplateID: r.TemplateID, Values: byProduct[r.ProductID]})
	}
	return out
}

// AttachAttributes returns copies of products carrying their merged attribute
// values. Products without records get an empty map.
func AttachAttributes(products []*Product, records []AttributeRecord) []*Product {
	byProduct := AttributesByProduct(records)
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.WithAttributes(byProduct[p.ID]))
	}
	return out
}

// TemplateIDs collects the distinct template ids referenced by records, sorted.
func TemplateIDs(records []AttributeRecord) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		if r.TemplateID != "" {
			seen[r.TemplateID] = struct{}{}
		}
	}
	return SortedKeys(seen)
}
