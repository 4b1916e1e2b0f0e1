package aggregate_facets

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/light-bringer/procat-facets/internal/app/catalog/catalogtest"
	"github.com/light-bringer/procat-facets/internal/app/catalog/category"
	"github.com/light-bringer/procat-facets/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-facets/internal/app/catalog/domain"
	"github.com/light-bringer/procat-facets/internal/pkg/metrics"
)

func newQuery(t *testing.T, catalog *catalogtest.Catalog, opts ...Option) *Query {
	t.Helper()
	logger := zaptest.NewLogger(t)
	resolver := category.NewResolver(catalog, category.WithLogger(logger))
	return NewQuery(catalog, resolver, append([]Option{WithLogger(logger)}, opts...)...)
}

func request(filters domain.FilterMap) *Request {
	return &Request{CategoryID: "cameras", Filters: filters, RegionID: "reg_eu", CurrencyCode: "eur"}
}

func facetKeys(summary *contracts.FacetSummary) []string {
	keys := make([]string, 0, len(summary.Facets))
	for _, f := range summary.Facets {
		keys = append(keys, f.Key)
	}
	return keys
}

func facetByKey(t *testing.T, summary *contracts.FacetSummary, key string) *domain.FacetAggregation {
	t.Helper()
	for _, f := range summary.Facets {
		if f.Key == key {
			return f
		}
	}
	require.Failf(t, "facet not found", "key %q", key)
	return nil
}

func TestAggregateFacets_WithFilters(t *testing.T) {
	catalog := catalogtest.CameraCatalog()
	filters := domain.FilterMap{
		"brand":  []any{"Canon", "Sony"},
		"sensor": []any{"Full Frame"},
	}

	summary, err := newQuery(t, catalog).Execute(context.Background(), request(filters))
	require.NoError(t, err)

	assert.Equal(t, "cameras", summary.CategoryID)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, filters, summary.AppliedFilters)

	t.Run("price first then display priority", func(t *testing.T) {
		assert.Equal(t, []string{"price", "brand", "sensor", "megapixels", "weather_sealed"}, facetKeys(summary))
	})

	t.Run("price range over the filtered set", func(t *testing.T) {
		assert.Equal(t, &domain.FacetRange{Min: 2299, Max: 2499, Step: 10}, facetByKey(t, summary, "price").Range)
	})

	t.Run("term values from base with filtered counts", func(t *testing.T) {
		assert.Equal(t, []domain.FacetValue{
			{Value: "Canon", Label: "Canon", Count: 1},
			{Value: "Sony", Label: "Sony", Count: 1},
			{Value: "Nikon", Label: "Nikon Corporation", Count: 0},
		}, facetByKey(t, summary, "brand").Values)

		assert.Equal(t, []domain.FacetValue{
			{Value: "Full Frame", Label: "Full Frame", Count: 2},
			{Value: "APS-C", Label: "APS-C", Count: 0},
		}, facetByKey(t, summary, "sensor").Values)
	})

	t.Run("range from the base set", func(t *testing.T) {
		mp := facetByKey(t, summary, "megapixels")
		assert.Equal(t, &domain.FacetRange{Min: 24.2, Max: 33, Step: 1}, mp.Range)
		assert.Equal(t, "range_slider", mp.Widget)
	})

	t.Run("boolean options", func(t *testing.T) {
		assert.Equal(t, []domain.FacetValue{
			{Value: "true", Label: "Yes", Count: 2},
			{Value: "false", Label: "No", Count: 0},
		}, facetByKey(t, summary, "weather_sealed").Values)
	})

	t.Run("out of scope templates never contribute", func(t *testing.T) {
		assert.NotContains(t, facetKeys(summary), "focal_length")
	})
}

func TestAggregateFacets_NoFilters(t *testing.T) {
	summary, err := newQuery(t, catalogtest.CameraCatalog()).Execute(context.Background(), request(nil))
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalProducts)
	assert.Equal(t, domain.FilterMap{}, summary.AppliedFilters)
	assert.Equal(t, &domain.FacetRange{Min: 1199, Max: 2499, Step: 50}, facetByKey(t, summary, "price").Range)
	assert.Equal(t, []domain.FacetValue{
		{Value: "Canon", Label: "Canon", Count: 2},
		{Value: "Sony", Label: "Sony", Count: 2},
		{Value: "Nikon", Label: "Nikon Corporation", Count: 1},
	}, facetByKey(t, summary, "brand").Values)
}

func TestAggregateFacets_PriceAndTagFilters(t *testing.T) {
	t.Run("inclusive price bounds", func(t *testing.T) {
		filters := domain.FilterMap{"price": map[string]any{"min": 1199.0, "max": 1799.0}}
		summary, err := newQuery(t, catalogtest.CameraCatalog()).Execute(context.Background(), request(filters))
		require.NoError(t, err)

		assert.Equal(t, 2, summary.TotalProducts)
		assert.Equal(t, &domain.FacetRange{Min: 1199, Max: 1799, Step: 25}, facetByKey(t, summary, "price").Range)
	})

	t.Run("tags", func(t *testing.T) {
		filters := domain.FilterMap{"tags": []any{"new"}}
		summary, err := newQuery(t, catalogtest.CameraCatalog()).Execute(context.Background(), request(filters))
		require.NoError(t, err)

		assert.Equal(t, 2, summary.TotalProducts)
		assert.Equal(t, []domain.FacetValue{
			{Value: "Sony", Label: "Sony", Count: 2},
			{Value: "Canon", Label: "Canon", Count: 0},
			{Value: "Nikon", Label: "Nikon Corporation", Count: 0},
		}, facetByKey(t, summary, "brand").Values)
	})
}

func TestAggregateFacets_ProductsWithSeveralTemplates(t *testing.T) {
	brandTemplate := func(id string) domain.AttributeTemplate {
		return domain.AttributeTemplate{
			ID: id,
			Attributes: []domain.AttributeDefinition{{
				Key:   "brand",
				Label: "Brand",
				Type:  domain.AttributeSelect,
				Facet: &domain.FacetConfig{IsFacet: true, DisplayPriority: 1, AggregationType: domain.AggregationTerm},
			}},
		}
	}
	catalog := catalogtest.New().
		AddCategory("cameras", "").
		AddProduct(catalogtest.NewProduct("p1", "Canon EOS R5", "cameras", catalogtest.Price(3899))).
		AddProduct(catalogtest.NewProduct("p2", "Sony A1", "cameras", catalogtest.Price(6499))).
		AddRecord("p1", "tpl_body", map[string]any{"brand": "Canon"}).
		AddRecord("p1", "tpl_video", map[string]any{"brand": "Canon"}).
		AddRecord("p2", "tpl_body", map[string]any{"brand": "Canon"}).
		AddRecord("p2", "tpl_video", map[string]any{"brand": "Sony"}).
		AddTemplate(brandTemplate("tpl_body")).
		AddTemplate(brandTemplate("tpl_video"))
	q := newQuery(t, catalog)

	t.Run("counts products once", func(t *testing.T) {
		summary, err := q.Execute(context.Background(), request(nil))
		require.NoError(t, err)

		assert.Equal(t, 2, summary.TotalProducts)
		assert.Equal(t, []domain.FacetValue{
			{Value: "Canon", Label: "Canon", Count: 1},
			{Value: "Sony", Label: "Sony", Count: 1},
		}, facetByKey(t, summary, "brand").Values)
	})

	t.Run("counts agree with the filtered set", func(t *testing.T) {
		summary, err := q.Execute(context.Background(), request(domain.FilterMap{"brand": []any{"Canon"}}))
		require.NoError(t, err)

		assert.Equal(t, 1, summary.TotalProducts)
		assert.Equal(t, []domain.FacetValue{
			{Value: "Canon", Label: "Canon", Count: 1},
			{Value: "Sony", Label: "Sony", Count: 0},
		}, facetByKey(t, summary, "brand").Values)
	})
}

func TestAggregateFacets_InputErrors(t *testing.T) {
	q := newQuery(t, catalogtest.CameraCatalog())

	_, err := q.Execute(context.Background(), &Request{CategoryID: "  ", RegionID: "reg_eu", CurrencyCode: "eur"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = q.Execute(context.Background(), &Request{CategoryID: "cameras", RegionID: "reg_eu"})
	assert.ErrorIs(t, err, domain.ErrPricingContextRequired)

	_, err = q.Execute(context.Background(), &Request{CategoryID: "cameras", CurrencyCode: "eur"})
	assert.ErrorIs(t, err, domain.ErrPricingContextRequired)
}

func TestAggregateFacets_Degradation(t *testing.T) {
	t.Run("base fetch failure yields an empty envelope", func(t *testing.T) {
		catalog := catalogtest.CameraCatalog()
		catalog.ProductsErr = errors.New("catalog unavailable")
		reg := prometheus.NewRegistry()
		filters := domain.FilterMap{"brand": []any{"Canon"}}

		summary, err := newQuery(t, catalog, WithMetrics(metrics.New(reg))).Execute(context.Background(), request(filters))
		require.NoError(t, err)

		assert.Equal(t, "cameras", summary.CategoryID)
		assert.Zero(t, summary.TotalProducts)
		assert.NotNil(t, summary.Facets)
		assert.Empty(t, summary.Facets)
		assert.Equal(t, filters, summary.AppliedFilters)
		assert.Equal(t, 2.0, degraded(t, reg, "base_fetch"))
	})

	t.Run("one failing branch keeps the other", func(t *testing.T) {
		catalog := catalogtest.CameraCatalog()
		catalog.FailProductsAfter = 1
		filters := domain.FilterMap{"brand": []any{"Canon", "Sony"}, "sensor": []any{"Full Frame"}}

		summary, err := newQuery(t, catalog).Execute(context.Background(), request(filters))
		require.NoError(t, err)

		assert.Equal(t, 2, summary.TotalProducts)
		assert.NotEmpty(t, summary.Facets)
	})

	t.Run("attribute store failure keeps the price facet", func(t *testing.T) {
		catalog := catalogtest.CameraCatalog()
		catalog.RecordsErr = errors.New("attribute store unavailable")

		summary, err := newQuery(t, catalog).Execute(context.Background(), request(nil))
		require.NoError(t, err)

		assert.Equal(t, 5, summary.TotalProducts)
		assert.Equal(t, []string{"price"}, facetKeys(summary))
	})

	t.Run("template failure keeps the filtered count", func(t *testing.T) {
		catalog := catalogtest.CameraCatalog()
		catalog.TemplatesErr = errors.New("templates unavailable")

		summary, err := newQuery(t, catalog).Execute(context.Background(), request(domain.FilterMap{"sensor": []any{"APS-C"}}))
		require.NoError(t, err)

		assert.Equal(t, 2, summary.TotalProducts)
		assert.Equal(t, []string{"price"}, facetKeys(summary))
	})

	t.Run("unknown category falls back to itself", func(t *testing.T) {
		summary, err := newQuery(t, catalogtest.CameraCatalog()).Execute(context.Background(), &Request{
			CategoryID: "ghost", RegionID: "reg_eu", CurrencyCode: "eur",
		})
		require.NoError(t, err)

		assert.Equal(t, "ghost", summary.CategoryID)
		assert.Zero(t, summary.TotalProducts)
		assert.Empty(t, summary.Facets)
	})
}

func TestAggregateFacets_BranchesFetchIndependently(t *testing.T) {
	catalog := catalogtest.CameraCatalog()

	_, err := newQuery(t, catalog).Execute(context.Background(), request(nil))
	require.NoError(t, err)

	assert.Equal(t, 2, catalog.ProductCalls())
	for _, q := range catalog.Queries() {
		assert.Equal(t, []string{"cameras", "dslr", "mirrorless"}, q.Filter.CategoryIDs)
		assert.Equal(t, domain.StatusPublished, q.Filter.Status)
		assert.Equal(t, domain.PricingContext{RegionID: "reg_eu", CurrencyCode: "eur"}, q.Pricing)
	}
}

func TestAggregateFacets_Deterministic(t *testing.T) {
	q := newQuery(t, catalogtest.CameraCatalog())
	filters := domain.FilterMap{"sensor": []any{"Full Frame"}, "tags": []any{"sale"}}

	first, err := q.Execute(context.Background(), request(filters))
	require.NoError(t, err)
	second, err := q.Execute(context.Background(), request(filters))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func degraded(t *testing.T, reg *prometheus.Registry, stage string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != "catalog_degraded_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "stage" && l.GetValue() == stage {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
