package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePage(t *testing.T) {
	p, err := ResolvePage(1, 10)
	require.NoError(t, err)
	assert.Equal(t, Page{Offset: 0, Limit: 10}, p)

	p, err = ResolvePage(2, 10)
	require.NoError(t, err)
	assert.Equal(t, Page{Offset: 10, Limit: 10}, p)

	p, err = ResolvePage(5, 25)
	require.NoError(t, err)
	assert.Equal(t, Page{Offset: 100, Limit: 25}, p)
}

func TestResolvePageDefaults(t *testing.T) {
	p, err := ResolvePage(DefaultPage, DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, Page{Offset: 0, Limit: DefaultLimit}, p)
}

func TestResolvePageRejectsBadInput(t *testing.T) {
	_, err := ResolvePage(-1, 10)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = ResolvePage(1, -5)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestResolvePageRejectsExplicitZero(t *testing.T) {
	// An explicit page=0 or limit=0 is a caller error, never remapped to
	// the defaults.
	_, err := ResolvePage(0, 5)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = ResolvePage(5, 0)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestResolvePageClampsLimit(t *testing.T) {
	p, err := ResolvePage(1, 10_000)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestComposeDescriptor(t *testing.T) {
	pred := Filter{Category: "books"}.Predicate()
	sort, err := ResolveSort("price", "DESC")
	require.NoError(t, err)
	page, err := ResolvePage(3, 10)
	require.NoError(t, err)

	d := Compose(pred, sort, page)
	assert.Equal(t, pred, d.Predicate)
	assert.Equal(t, "price DESC", d.Sort.OrderBy())
	assert.Equal(t, 20, d.Page.Offset)
	assert.Equal(t, 10, d.Page.Limit)

	// Unsorted, unpaged descriptors leave both parts zero.
	d = Compose(nil, Sort{}, Page{})
	assert.True(t, d.Sort.IsZero())
	assert.True(t, d.Page.IsZero())
}
