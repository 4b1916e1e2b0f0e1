package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 { return &v }

func TestPricingCalculator_MinPrice(t *testing.T) {
	pc := NewPricingCalculator()

	t.Run("lowest priced variant wins", func(t *testing.T) {
		p := &Product{Variants: []Variant{
			{ID: "v1", CalculatedPrice: price(30)},
			{ID: "v2"},
			{ID: "v3", CalculatedPrice: price(12.5)},
		}}

		min, ok := pc.MinPrice(p)
		assert.True(t, ok)
		assert.Equal(t, 12.5, min)
	})

	t.Run("no priced variant", func(t *testing.T) {
		_, ok := pc.MinPrice(&Product{Variants: []Variant{{ID: "v1"}}})
		assert.False(t, ok)

		_, ok = pc.MinPrice(&Product{})
		assert.False(t, ok)
	})
}

func TestPricingCalculator_HasPriceWithin(t *testing.T) {
	pc := NewPricingCalculator()
	min, max := 10.0, 20.0
	bounds := &PriceBounds{Min: &min, Max: &max}

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, pc.HasPriceWithin(&Product{Variants: []Variant{{CalculatedPrice: price(10)}}}, bounds))
		assert.True(t, pc.HasPriceWithin(&Product{Variants: []Variant{{CalculatedPrice: price(20)}}}, bounds))
		assert.False(t, pc.HasPriceWithin(&Product{Variants: []Variant{{CalculatedPrice: price(20.01)}}}, bounds))
	})

	t.Run("one matching variant is enough", func(t *testing.T) {
		p := &Product{Variants: []Variant{{CalculatedPrice: price(5)}, {CalculatedPrice: price(15)}}}
		assert.True(t, pc.HasPriceWithin(p, bounds))
	})

	t.Run("null priced product never matches", func(t *testing.T) {
		assert.False(t, pc.HasPriceWithin(&Product{Variants: []Variant{{ID: "v1"}}}, bounds))
		assert.False(t, pc.HasPriceWithin(&Product{}, bounds))
	})

	t.Run("open upper bound", func(t *testing.T) {
		open := &PriceBounds{Min: &min}
		assert.True(t, pc.HasPriceWithin(&Product{Variants: []Variant{{CalculatedPrice: price(9999)}}}, open))
	})
}

func TestPricingCalculator_PriceSpan(t *testing.T) {
	pc := NewPricingCalculator()

	products := []*Product{
		{Variants: []Variant{{CalculatedPrice: price(0)}, {CalculatedPrice: price(40)}}},
		{Variants: []Variant{{CalculatedPrice: price(15)}, {}}},
		{Variants: []Variant{{CalculatedPrice: price(120)}}},
	}

	min, max, ok := pc.PriceSpan(products)
	assert.True(t, ok)
	assert.Equal(t, 15.0, min)
	assert.Equal(t, 120.0, max)

	_, _, ok = pc.PriceSpan([]*Product{{Variants: []Variant{{CalculatedPrice: price(0)}}}})
	assert.False(t, ok)
}
