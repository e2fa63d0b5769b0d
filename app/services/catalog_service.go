package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Gentle-wave/scelloo-ecommerce-api/app/models"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/cache"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/metrics"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/query"
)

// ProductStore is the storage surface CatalogService needs. Satisfied by
// repositories.ProductRepository; tests substitute an in-memory store.
type ProductStore interface {
	Create(*models.Product) error
	FindByID(id uint) (models.Product, error)
	Find(query.Descriptor) ([]models.Product, error)
	Save(*models.Product) error
	Delete(*models.Product) error
}

// NotFoundError reports an unknown product id.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product with ID %d not found", e.ID)
}

// CreateProductInput carries the validated fields of a create request.
type CreateProductInput struct {
	Name          string
	Price         float64
	Description   string
	StockQuantity int
	Category      string
}

// UpdateProductInput carries a partial update: nil fields stay untouched.
type UpdateProductInput struct {
	Name          *string
	Price         *float64
	Description   *string
	StockQuantity *int
	Category      *string
}

const productCacheTTL = 5 * time.Minute

// CatalogService implements the product catalogue operations over a
// ProductStore, composing every read through pkg/query.
type CatalogService struct {
	store ProductStore
}

func NewCatalogService(store ProductStore) *CatalogService {
	return &CatalogService{store: store}
}

// Create persists a new product.
func (s *CatalogService) Create(in CreateProductInput) (models.Product, error) {
	p := models.Product{
		Name:          in.Name,
		Price:         in.Price,
		Description:   in.Description,
		StockQuantity: in.StockQuantity,
		Category:      in.Category,
	}
	if err := s.store.Create(&p); err != nil {
		return models.Product{}, fmt.Errorf("catalog: create: %w", err)
	}
	return p, nil
}

// List returns one page of products.
func (s *CatalogService) List(page, limit int) ([]models.Product, error) {
	pg, err := query.ResolvePage(page, limit)
	if err != nil {
		return nil, err
	}
	return s.store.Find(query.Compose(nil, query.Sort{}, pg))
}

// Get fetches a product by id, serving repeat lookups from the cache.
func (s *CatalogService) Get(id uint) (models.Product, error) {
	key := productCacheKey(id)

	var cached models.Product
	if cache.Get(key, &cached) {
		metrics.CacheHits.WithLabelValues("product").Inc()
		return cached, nil
	}
	metrics.CacheMisses.WithLabelValues("product").Inc()

	p, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, &NotFoundError{ID: id}
		}
		return models.Product{}, fmt.Errorf("catalog: get %d: %w", id, err)
	}

	_ = cache.Set(key, p, productCacheTTL)
	return p, nil
}

// Update overwrites the provided fields of an existing product.
// ID and CreatedAt are never touched.
func (s *CatalogService) Update(id uint, in UpdateProductInput) (models.Product, error) {
	p, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, &NotFoundError{ID: id}
		}
		return models.Product{}, fmt.Errorf("catalog: update %d: %w", id, err)
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.StockQuantity != nil {
		p.StockQuantity = *in.StockQuantity
	}
	if in.Category != nil {
		p.Category = *in.Category
	}

	if err := s.store.Save(&p); err != nil {
		return models.Product{}, fmt.Errorf("catalog: save %d: %w", id, err)
	}

	_ = cache.Del(productCacheKey(id))
	return p, nil
}

// Delete removes a product by id.
func (s *CatalogService) Delete(id uint) error {
	p, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{ID: id}
		}
		return fmt.Errorf("catalog: delete %d: %w", id, err)
	}

	if err := s.store.Delete(&p); err != nil {
		return fmt.Errorf("catalog: delete %d: %w", id, err)
	}

	_ = cache.Del(productCacheKey(id))
	return nil
}

// Search returns products whose name contains term as a literal substring.
func (s *CatalogService) Search(term string) ([]models.Product, error) {
	return s.store.Find(query.Compose(query.NameSearch(term), query.Sort{}, query.Page{}))
}

// Filter returns products matching the optional category/price filter.
func (s *CatalogService) Filter(f query.Filter) ([]models.Product, error) {
	return s.store.Find(query.Compose(f.Predicate(), query.Sort{}, query.Page{}))
}

// SortBy returns all products ordered by an allow-listed field.
func (s *CatalogService) SortBy(field, order string) ([]models.Product, error) {
	sort, err := query.ResolveSort(field, order)
	if err != nil {
		return nil, err
	}
	return s.store.Find(query.Compose(nil, sort, query.Page{}))
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}
