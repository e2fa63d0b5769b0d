package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSortNormalisesDirection(t *testing.T) {
	s, err := ResolveSort("price", "asc")
	require.NoError(t, err)
	assert.Equal(t, "price", s.Field)
	assert.Equal(t, Asc, s.Direction)
	assert.Equal(t, "price ASC", s.OrderBy())

	s, err = ResolveSort("name", "desc")
	require.NoError(t, err)
	assert.Equal(t, "name DESC", s.OrderBy())
}

func TestResolveSortMapsStockColumn(t *testing.T) {
	s, err := ResolveSort("stockQuantity", "DESC")
	require.NoError(t, err)
	assert.Equal(t, "stockQuantity", s.Field)
	assert.Equal(t, "stock_quantity", s.Column)
	assert.Equal(t, "stock_quantity DESC", s.OrderBy())
}

func TestResolveSortDefaults(t *testing.T) {
	s, err := ResolveSort("", "")
	require.NoError(t, err)
	assert.Equal(t, "price ASC", s.OrderBy())
}

func TestResolveSortRejectsUnknownField(t *testing.T) {
	_, err := ResolveSort("color", "ASC")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "color")
	assert.Contains(t, err.Error(), "price, name, stockQuantity")
}

func TestResolveSortRejectsUnknownOrder(t *testing.T) {
	_, err := ResolveSort("price", "sideways")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "sideways")
}

func TestSortZeroValue(t *testing.T) {
	assert.True(t, Sort{}.IsZero())

	s, err := ResolveSort("price", "ASC")
	require.NoError(t, err)
	assert.False(t, s.IsZero())
}
