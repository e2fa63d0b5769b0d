package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/Gentle-wave/scelloo-ecommerce-api/app/models"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/metrics"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/query"
)

// ProductRepository handles database operations for Product. It executes
// query descriptors verbatim; all filter/sort/page decisions are made
// upstream in pkg/query.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create persists a new product and backfills its ID and CreatedAt.
func (r *ProductRepository) Create(p *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(p).Error
}

// FindByID looks up a product by primary key. Unknown ids surface as
// gorm.ErrRecordNotFound.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var p models.Product
	err := r.db.First(&p, id).Error
	return p, err
}

// Find executes a composed query descriptor: the predicate compiles once
// to a SQL condition, sort and page apply as ORDER BY / LIMIT / OFFSET.
func (r *ProductRepository) Find(d query.Descriptor) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	tx := r.db.Model(&models.Product{})

	cond, args, err := query.SQL(d.Predicate)
	if err != nil {
		return nil, err
	}
	if cond != "" {
		tx = tx.Where(cond, args...)
	}

	if !d.Sort.IsZero() {
		tx = tx.Order(d.Sort.OrderBy())
	}

	if !d.Page.IsZero() {
		tx = tx.Offset(d.Page.Offset).Limit(d.Page.Limit)
	}

	var products []models.Product
	err = tx.Find(&products).Error
	return products, err
}

// Save persists changes to an existing product.
func (r *ProductRepository) Save(p *models.Product) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(p).Error
}

// Delete removes a product row.
func (r *ProductRepository) Delete(p *models.Product) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(p).Error
}
