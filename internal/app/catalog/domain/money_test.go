package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(249900, 100)
		require.NoError(t, err)
		assert.Equal(t, 2499.0, m.Float64())
		assert.Equal(t, "2499.00", m.String())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, -1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})
}

func TestMoney_Comparisons(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	negative, _ := NewMoney(-50, 1)
	zero, _ := NewMoney(0, 1)

	assert.True(t, m1.IsPositive())
	assert.False(t, negative.IsPositive())
	assert.False(t, negative.IsZero())
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())
}

func TestMoney_Precision(t *testing.T) {
	m, _ := NewMoney(199920, 100)
	assert.Equal(t, "1999.20", m.String())
	assert.Equal(t, 1999.2, m.Float64())
}
