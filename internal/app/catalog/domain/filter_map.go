package domain

import "sort"

// Reserved filter keys. Every other key of a FilterMap is an attribute key.
const (
	FilterKeyPrice        = "price"
	FilterKeyTags         = "tags"
	FilterKeyAvailability = "availability"
)

// FilterMap is the raw, untyped filter map supplied by callers.
type FilterMap map[string]any

// PriceBounds is an inclusive price window; either bound may be nil.
type PriceBounds struct {
	Min *float64
	Max *float64
}

// IsSet reports whether at least one bound is present.
func (b *PriceBounds) IsSet() bool {
	return b != nil && (b.Min != nil || b.Max != nil)
}

// Contains reports whether price lies within the bounds, both inclusive.
func (b *PriceBounds) Contains(price float64) bool {
	if b == nil {
		return true
	}
	if b.Min != nil && price < *b.Min {
		return false
	}
	if b.Max != nil && price > *b.Max {
		return false
	}
	return true
}

// IsReservedFilterKey reports whether key is not an attribute key.
func IsReservedFilterKey(key string) bool {
	switch key {
	case FilterKeyPrice, FilterKeyTags, FilterKeyAvailability:
		return true
	}
	return false
}

// PriceBounds extracts the price window from the reserved price key.
// A missing or malformed entry yields nil.
func (f FilterMap) PriceBounds() *PriceBounds {
	raw, ok := f[FilterKeyPrice]
	if !ok || raw == nil {
		return nil
	}

	var lookup func(string) (any, bool)
	switch m := raw.(type) {
	case map[string]any:
		lookup = func(k string) (any, bool) { v, ok := m[k]; return v, ok }
	case map[string]float64:
		lookup = func(k string) (any, bool) { v, ok := m[k]; return v, ok }
	case PriceBounds:
		return &m
	case *PriceBounds:
		return m
	default:
		return nil
	}

	bounds := &PriceBounds{}
	if v, ok := lookup("min"); ok {
		if n, ok := ToFloat(v); ok {
			bounds.Min = &n
		}
	}
	if v, ok := lookup("max"); ok {
		if n, ok := ToFloat(v); ok {
			bounds.Max = &n
		}
	}
	if !bounds.IsSet() {
		return nil
	}
	return bounds
}

// Tags extracts the requested tag values.
func (f FilterMap) Tags() []string {
	values, ok := toStringList(f[FilterKeyTags])
	if !ok {
		return nil
	}
	return values
}

// AttributeFilters returns the attribute keys with a non-empty list of values.
// Keys whose value is empty or not a list are treated as absent.
func (f FilterMap) AttributeFilters() map[string][]string {
	out := make(map[string][]string)
	for key, raw := range f {
		if IsReservedFilterKey(key) {
			continue
		}
		values, ok := toStringList(raw)
		if !ok || len(values) == 0 {
			continue
		}
		out[key] = values
	}
	return out
}

// SortedKeys returns the map keys in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toStringList(raw any) ([]string, bool) {
	switch list := raw.(type) {
	case []string:
		out := make([]string, 0, len(list))
		out = append(out, list...)
		return out, true
	case []any:
		out := make([]string, 0, len(list))
		for _, v := range list {
			if s, ok := ScalarString(v); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}
