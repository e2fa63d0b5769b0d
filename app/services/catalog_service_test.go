package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Gentle-wave/scelloo-ecommerce-api/app/models"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/query"
)

// memStore is an in-memory ProductStore. Find evaluates the descriptor's
// predicate tree directly instead of compiling it to SQL, which keeps the
// service tests free of any database.
type memStore struct {
	nextID   uint
	products []models.Product
}

func newMemStore(seed ...models.Product) *memStore {
	s := &memStore{nextID: 1}
	for _, p := range seed {
		cp := p
		_ = s.Create(&cp)
	}
	return s
}

func (s *memStore) Create(p *models.Product) error {
	p.ID = s.nextID
	s.nextID++
	s.products = append(s.products, *p)
	return nil
}

func (s *memStore) FindByID(id uint) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, gorm.ErrRecordNotFound
}

func (s *memStore) Find(d query.Descriptor) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if d.Predicate != nil && !d.Predicate.Matches(rowOf(p)) {
			continue
		}
		out = append(out, p)
	}

	if !d.Sort.IsZero() {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := rowOf(out[i])[d.Sort.Column], rowOf(out[j])[d.Sort.Column]
			less := lessValue(a, b)
			if d.Sort.Direction == query.Desc {
				return lessValue(b, a)
			}
			return less
		})
	}

	if !d.Page.IsZero() {
		if d.Page.Offset >= len(out) {
			return nil, nil
		}
		out = out[d.Page.Offset:]
		if len(out) > d.Page.Limit {
			out = out[:d.Page.Limit]
		}
	}
	return out, nil
}

func (s *memStore) Save(p *models.Product) error {
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = *p
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *memStore) Delete(p *models.Product) error {
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func rowOf(p models.Product) query.Row {
	return query.Row{
		query.FieldName:     p.Name,
		query.FieldPrice:    p.Price,
		query.FieldCategory: p.Category,
		query.FieldStock:    p.StockQuantity,
	}
}

func lessValue(a, b interface{}) bool {
	if as, ok := a.(string); ok {
		bs, _ := b.(string)
		return as < bs
	}
	af, _ := toFloat(a)
	bf, _ := toFloat(b)
	return af < bf
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func seedProducts() []models.Product {
	return []models.Product{
		{Name: "Laptop", Price: 1200, Category: "electronics", StockQuantity: 5},
		{Name: "Phone", Price: 800, Category: "electronics", StockQuantity: 12},
		{Name: "Desk Lamp", Price: 35, Category: "furniture", StockQuantity: 40},
		{Name: "Office Chair", Price: 150, Category: "furniture", StockQuantity: 8},
		{Name: "USB Cable", Price: 10, Category: "electronics", StockQuantity: 200},
	}
}

func TestCatalogCreateAssignsID(t *testing.T) {
	svc := NewCatalogService(newMemStore())

	p, err := svc.Create(CreateProductInput{
		Name: "Monitor", Price: 300, Description: "27 inch", StockQuantity: 7, Category: "electronics",
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Monitor", p.Name)

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestCatalogListPaginates(t *testing.T) {
	svc := NewCatalogService(newMemStore(seedProducts()...))

	first, err := svc.List(1, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.List(2, 2)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.NotEqual(t, first[0].ID, second[0].ID)

	_, err = svc.List(0, 5)
	assert.True(t, query.IsValidation(err))
}

func TestCatalogGetUnknownID(t *testing.T) {
	svc := NewCatalogService(newMemStore(seedProducts()...))

	_, err := svc.Get(999)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, uint(999), nf.ID)
	assert.Equal(t, "Product with ID 999 not found", nf.Error())
}

func TestCatalogUpdatePartial(t *testing.T) {
	svc := NewCatalogService(newMemStore(seedProducts()...))

	price := 999.0
	updated, err := svc.Update(1, UpdateProductInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 999.0, updated.Price)
	assert.Equal(t, "Laptop", updated.Name)
	assert.Equal(t, uint(1), updated.ID)

	_, err = svc.Update(999, UpdateProductInput{Price: &price})
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestCatalogDelete(t *testing.T) {
	svc := NewCatalogService(newMemStore(seedProducts()...))

	require.NoError(t, svc.Delete(3))

	_, err := svc.Get(3)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)

	err = svc.Delete(3)
	assert.ErrorAs(t, err, &nf)
}

func TestCatalogSearchLiteralSubstring(t *testing.T) {
	store := newMemStore(seedProducts()...)
	require.NoError(t, store.Create(&models.Product{Name: "50%_off bundle", Price: 20, Category: "misc"}))
	svc := NewCatalogService(store)

	got, err := svc.Search("Lamp")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Desk Lamp", got[0].Name)

	// wildcards in the term match literally, not as patterns
	got, err = svc.Search("50%_off")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "50%_off bundle", got[0].Name)

	got, err = svc.Search("5%o")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogFilter(t *testing.T) {
	svc := NewCatalogService(newMemStore(seedProducts()...))

	min, max := 100.0, 1000.0
	got, err := svc.Filter(query.Filter{Category: "electronics", MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Phone", got[0].Name)

	// empty filter matches everything
	got, err = svc.Filter(query.Filter{})
	require.NoError(t, err)
	assert.Len(t, got, 5)

	// inverted range matches nothing
	lo, hi := 500.0, 100.0
	got, err = svc.Filter(query.Filter{MinPrice: &lo, MaxPrice: &hi})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogSortBy(t *testing.T) {
	svc := NewCatalogService(newMemStore(seedProducts()...))

	got, err := svc.SortBy("price", "DESC")
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "Laptop", got[0].Name)
	assert.Equal(t, "USB Cable", got[4].Name)

	got, err = svc.SortBy("stockQuantity", "asc")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got[0].Name)

	// defaults: price ascending
	got, err = svc.SortBy("", "")
	require.NoError(t, err)
	assert.Equal(t, "USB Cable", got[0].Name)

	_, err = svc.SortBy("createdAt", "ASC")
	assert.True(t, query.IsValidation(err))

	_, err = svc.SortBy("price", "sideways")
	assert.True(t, query.IsValidation(err))
}
