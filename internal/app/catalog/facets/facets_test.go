package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
)

func ptr(v float64) *float64 {
	return &v
}

func record(productID string, values map[string]any) domain.AttributeRecord {
	return domain.AttributeRecord{ProductID: productID, TemplateID: "tpl_camera", Values: values}
}

func facetDef(key string, typ domain.AttributeType, agg domain.AggregationType, priority int) domain.AttributeDefinition {
	return domain.AttributeDefinition{
		Key:   key,
		Label: key + " label",
		Type:  typ,
		Facet: &domain.FacetConfig{IsFacet: true, DisplayPriority: priority, AggregationType: agg},
	}
}

func valueSet(values []domain.FacetValue) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v.Value] = struct{}{}
	}
	return out
}

var base = []domain.AttributeRecord{
	record("p1", map[string]any{"brand": "Canon", "megapixels": 45.0, "weather_sealed": true}),
	record("p2", map[string]any{"brand": "Canon", "megapixels": 24.0, "weather_sealed": "false"}),
	record("p3", map[string]any{"brand": "Sony", "megapixels": "61", "weather_sealed": "TRUE"}),
	record("p4", map[string]any{"brand": "Nikon", "megapixels": 20.5}),
	record("p5", map[string]any{"brand": []any{"Fujifilm", "Fujifilm"}}),
}

func TestTerm(t *testing.T) {
	def := facetDef("brand", domain.AttributeSelect, domain.AggregationTerm, 2)
	def.Options = []domain.AttributeOption{{Value: "Fujifilm", Label: "Fuji"}}

	filtered := []domain.AttributeRecord{base[0], base[1], base[4]}

	agg, err := Term(Input{Definition: def, Base: base, Filtered: filtered})
	require.NoError(t, err)

	t.Run("value universe comes from the base set", func(t *testing.T) {
		assert.Equal(t, map[string]struct{}{
			"Canon": {}, "Sony": {}, "Nikon": {}, "Fujifilm": {},
		}, valueSet(agg.Values))
	})

	t.Run("counts come from the filtered set and zeros are kept", func(t *testing.T) {
		assert.Equal(t, []domain.FacetValue{
			{Value: "Canon", Label: "Canon", Count: 2},
			{Value: "Fujifilm", Label: "Fuji", Count: 1},
			{Value: "Nikon", Label: "Nikon", Count: 0},
			{Value: "Sony", Label: "Sony", Count: 0},
		}, agg.Values)
	})

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, "brand", agg.Key)
		assert.Equal(t, "brand label", agg.Label)
		assert.Equal(t, domain.AggregationTerm, agg.Type)
		assert.Equal(t, 2, agg.DisplayPriority)
		assert.Nil(t, agg.Range)
	})

	t.Run("empty filtered set keeps every value", func(t *testing.T) {
		agg, err := Term(Input{Definition: def, Base: base})
		require.NoError(t, err)
		assert.Len(t, agg.Values, 4)
		for _, v := range agg.Values {
			assert.Zero(t, v.Count)
		}
	})

	t.Run("no base values", func(t *testing.T) {
		_, err := Term(Input{Definition: facetDef("color", domain.AttributeSelect, domain.AggregationTerm, 1), Base: base})
		assert.ErrorIs(t, err, domain.ErrNoTermValues)
	})
}

func TestTerm_OptionGroupLabels(t *testing.T) {
	def := facetDef("mount", domain.AttributeSelect, domain.AggregationTerm, 1)
	def.OptionGroupID = "og_mounts"
	groups := []domain.OptionGroup{{
		ID:      "og_mounts",
		Options: []domain.AttributeOption{{Value: "rf", Label: "Canon RF"}, {Value: "e", Label: "Sony E"}},
	}}
	records := []domain.AttributeRecord{
		record("p1", map[string]any{"mount": "rf"}),
		record("p2", map[string]any{"mount": "e"}),
	}

	agg, err := Term(Input{Definition: def, OptionGroups: groups, Base: records, Filtered: records})
	require.NoError(t, err)

	assert.Equal(t, []domain.FacetValue{
		{Value: "rf", Label: "Canon RF", Count: 1},
		{Value: "e", Label: "Sony E", Count: 1},
	}, agg.Values)
}

func TestRange(t *testing.T) {
	def := facetDef("megapixels", domain.AttributeNumber, domain.AggregationRange, 3)

	t.Run("computed bounds and heuristic step", func(t *testing.T) {
		agg, err := Range(Input{Definition: def, Base: base})
		require.NoError(t, err)
		assert.Equal(t, &domain.FacetRange{Min: 20.5, Max: 61, Step: 5}, agg.Range)
		assert.Empty(t, agg.Values)
	})

	t.Run("configured overrides win", func(t *testing.T) {
		d := def
		d.Facet = &domain.FacetConfig{
			IsFacet:         true,
			AggregationType: domain.AggregationHistogram,
			RangeConfig:     &domain.RangeConfig{Min: ptr(0), Step: ptr(2)},
		}
		agg, err := Range(Input{Definition: d, Base: base})
		require.NoError(t, err)
		assert.Equal(t, &domain.FacetRange{Min: 0, Max: 61, Step: 2}, agg.Range)
		assert.Equal(t, domain.AggregationHistogram, agg.Type)
	})

	t.Run("complete override without base values", func(t *testing.T) {
		d := facetDef("iso", domain.AttributeNumber, domain.AggregationRange, 1)
		d.Facet.RangeConfig = &domain.RangeConfig{Min: ptr(100), Max: ptr(51200)}
		agg, err := Range(Input{Definition: d, Base: base})
		require.NoError(t, err)
		assert.Equal(t, &domain.FacetRange{Min: 100, Max: 51200, Step: 50}, agg.Range)
	})

	t.Run("no numeric values", func(t *testing.T) {
		_, err := Range(Input{Definition: facetDef("brand", domain.AttributeText, domain.AggregationRange, 1), Base: base})
		assert.ErrorIs(t, err, domain.ErrNoNumericValues)
	})
}

func TestRangeStep(t *testing.T) {
	cases := []struct {
		span float64
		want float64
	}{
		{0, 1}, {10, 1}, {10.5, 5}, {100, 5}, {101, 10}, {1000, 10}, {1001, 50},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RangeStep(c.span), "span %v", c.span)
	}
}

func TestBoolean(t *testing.T) {
	def := facetDef("weather_sealed", domain.AttributeBoolean, domain.AggregationBoolean, 4)

	t.Run("yes before no with filtered counts", func(t *testing.T) {
		agg, err := Boolean(Input{Definition: def, Base: base, Filtered: base[1:2]})
		require.NoError(t, err)
		assert.Equal(t, []domain.FacetValue{
			{Value: "true", Label: "Yes", Count: 0},
			{Value: "false", Label: "No", Count: 1},
		}, agg.Values)
	})

	t.Run("only options the base set can produce", func(t *testing.T) {
		records := []domain.AttributeRecord{record("p1", map[string]any{"weather_sealed": true})}
		agg, err := Boolean(Input{Definition: def, Base: records, Filtered: records})
		require.NoError(t, err)
		assert.Equal(t, []domain.FacetValue{{Value: "true", Label: "Yes", Count: 1}}, agg.Values)
	})

	t.Run("omitted without base values", func(t *testing.T) {
		records := []domain.AttributeRecord{record("p1", map[string]any{"weather_sealed": "maybe"})}
		_, err := Boolean(Input{Definition: def, Base: records})
		assert.ErrorIs(t, err, domain.ErrNoBooleanValues)
	})
}

func TestPrice(t *testing.T) {
	products := []*domain.Product{
		{ID: "a", Variants: []domain.Variant{{CalculatedPrice: ptr(0)}, {CalculatedPrice: ptr(120)}}},
		{ID: "b", Variants: []domain.Variant{{CalculatedPrice: ptr(35.5)}, {CalculatedPrice: nil}}},
		{ID: "c"},
	}

	agg, err := Price(products)
	require.NoError(t, err)
	assert.Equal(t, domain.PriceFacetKey, agg.Key)
	assert.Equal(t, domain.PriceFacetPriority, agg.DisplayPriority)
	assert.Equal(t, &domain.FacetRange{Min: 35.5, Max: 120, Step: 5}, agg.Range)

	t.Run("omitted without valid prices", func(t *testing.T) {
		_, err := Price([]*domain.Product{{ID: "z", Variants: []domain.Variant{{CalculatedPrice: ptr(0)}}}})
		assert.ErrorIs(t, err, domain.ErrNoPriceValues)
	})
}

func TestPriceStep(t *testing.T) {
	cases := []struct {
		span float64
		want float64
	}{
		{50, 5}, {100, 5}, {400, 10}, {1000, 25}, {5000, 50}, {5001, 100},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PriceStep(c.span), "span %v", c.span)
	}
}

func TestAggregate(t *testing.T) {
	t.Run("dispatches by type", func(t *testing.T) {
		agg, err := Aggregate(Input{Definition: facetDef("megapixels", domain.AttributeNumber, domain.AggregationHistogram, 1), Base: base})
		require.NoError(t, err)
		assert.NotNil(t, agg.Range)
	})

	t.Run("infers the type from the attribute", func(t *testing.T) {
		def := facetDef("weather_sealed", domain.AttributeBoolean, "", 1)
		agg, err := Aggregate(Input{Definition: def, Base: base})
		require.NoError(t, err)
		assert.Equal(t, domain.AggregationBoolean, agg.Type)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := Aggregate(Input{Definition: facetDef("brand", domain.AttributeText, "geo", 1), Base: base})
		assert.ErrorIs(t, err, domain.ErrUnsupportedAggregation)
	})

}

func TestDescribe(t *testing.T) {
	t.Run("term options sorted by label", func(t *testing.T) {
		def := facetDef("brand", domain.AttributeSelect, domain.AggregationTerm, 2)
		def.Options = []domain.AttributeOption{{Value: "Sony", Label: "Alpha by Sony"}}

		resp, err := Describe(Input{Definition: def, Base: base})
		require.NoError(t, err)
		assert.Equal(t, []domain.FacetOption{
			{Value: "Sony", Label: "Alpha by Sony"},
			{Value: "Canon", Label: "Canon"},
			{Value: "Fujifilm", Label: "Fujifilm"},
			{Value: "Nikon", Label: "Nikon"},
		}, resp.Options)
	})

	t.Run("configured options when scope is empty", func(t *testing.T) {
		def := facetDef("color", domain.AttributeSelect, domain.AggregationTerm, 2)
		def.Options = []domain.AttributeOption{{Value: "blk", Label: "Black"}, {Value: "slv", Label: "Silver"}}

		resp, err := Describe(Input{Definition: def})
		require.NoError(t, err)
		assert.Equal(t, []domain.FacetOption{{Value: "blk", Label: "Black"}, {Value: "slv", Label: "Silver"}}, resp.Options)
	})

	t.Run("range and boolean", func(t *testing.T) {
		resp, err := Describe(Input{Definition: facetDef("megapixels", domain.AttributeNumber, domain.AggregationRange, 1), Base: base})
		require.NoError(t, err)
		assert.Equal(t, 20.5, resp.Range.Min)

		resp, err = Describe(Input{Definition: facetDef("weather_sealed", domain.AttributeBoolean, domain.AggregationBoolean, 1), Base: base})
		require.NoError(t, err)
		assert.Equal(t, []domain.FacetOption{{Value: "true", Label: "Yes"}, {Value: "false", Label: "No"}}, resp.Options)
	})
}

func TestSortAggregations(t *testing.T) {
	aggs := []*domain.FacetAggregation{
		{Key: "zoom", DisplayPriority: 1},
		{Key: "brand", DisplayPriority: 5},
		{Key: "color", DisplayPriority: -3},
		{Key: domain.PriceFacetKey, DisplayPriority: domain.PriceFacetPriority},
		{Key: "aperture", DisplayPriority: 1},
	}

	SortAggregations(aggs)

	keys := make([]string, 0, len(aggs))
	for _, a := range aggs {
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{"price", "color", "aperture", "zoom", "brand"}, keys)
}

func TestDefinitions(t *testing.T) {
	brand := facetDef("brand", domain.AttributeSelect, domain.AggregationTerm, 1)
	otherBrand := facetDef("brand", domain.AttributeText, domain.AggregationTerm, 9)
	hidden := domain.AttributeDefinition{Key: "sku", Type: domain.AttributeText}
	reserved := facetDef("price", domain.AttributeNumber, domain.AggregationRange, 1)
	groups := []domain.OptionGroup{{ID: "og"}}

	defs := Definitions([]domain.AttributeTemplate{
		{ID: "tpl_b", Attributes: []domain.AttributeDefinition{otherBrand, facetDef("zoom", domain.AttributeNumber, "", 2)}},
		{ID: "tpl_a", Attributes: []domain.AttributeDefinition{brand, hidden, reserved}, OptionGroups: groups},
	})

	require.Len(t, defs, 2)
	assert.Equal(t, brand, defs[0].Attribute)
	assert.Equal(t, groups, defs[0].OptionGroups)
	assert.Equal(t, "zoom", defs[1].Attribute.Key)
}
