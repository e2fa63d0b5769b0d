package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Gentle-wave/scelloo-ecommerce-api/app/models"
	"github.com/Gentle-wave/scelloo-ecommerce-api/app/services"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/bind"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/logger"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/query"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/response"
)

// Catalog is the service surface the product controller depends on.
type Catalog interface {
	Create(services.CreateProductInput) (models.Product, error)
	List(page, limit int) ([]models.Product, error)
	Get(id uint) (models.Product, error)
	Update(id uint, in services.UpdateProductInput) (models.Product, error)
	Delete(id uint) error
	Search(term string) ([]models.Product, error)
	Filter(f query.Filter) ([]models.Product, error)
	SortBy(field, order string) ([]models.Product, error)
}

type ProductController struct {
	catalog Catalog
}

func NewProductController(catalog Catalog) *ProductController {
	return &ProductController{catalog: catalog}
}

type createProductRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Price         *float64 `json:"price" validate:"required,numeric,gte=0"`
	Description   string   `json:"description" validate:"required"`
	StockQuantity *int     `json:"stockQuantity" validate:"required,integer,gte=0"`
	Category      string   `json:"category" validate:"required,max=255"`
}

type updateProductRequest struct {
	Name          *string  `json:"name" validate:"nullable,max=255"`
	Price         *float64 `json:"price" validate:"nullable,numeric,gte=0"`
	Description   *string  `json:"description" validate:"nullable"`
	StockQuantity *int     `json:"stockQuantity" validate:"nullable,integer,gte=0"`
	Category      *string  `json:"category" validate:"nullable,max=255"`
}

// Store handles POST /api/product/admin.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.catalog.Create(services.CreateProductInput{
		Name:          req.Name,
		Price:         *req.Price,
		Description:   req.Description,
		StockQuantity: *req.StockQuantity,
		Category:      req.Category,
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.Created(w, product)
}

// Index handles GET /api/product. Absent page/limit parameters take the
// documented defaults; explicit values pass through for validation.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page", query.DefaultPage)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", query.DefaultLimit)
	if !ok {
		return
	}

	products, err := c.catalog.List(page, limit)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, emptyToSlice(products))
}

// Show handles GET /api/product/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := c.catalog.Get(id)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, product)
}

// Update handles PUT /api/product/{id}.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req updateProductRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.catalog.Update(id, services.UpdateProductInput{
		Name:          req.Name,
		Price:         req.Price,
		Description:   req.Description,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, product)
}

// Destroy handles DELETE /api/product/admin/{id}.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if err := c.catalog.Delete(id); err != nil {
		c.fail(w, r, err)
		return
	}

	response.NoContent(w)
}

// Search handles GET /api/product/product/search?name=term.
func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.Search(r.URL.Query().Get("name"))
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, emptyToSlice(products))
}

// Filter handles GET /api/product/product?category=&minPrice=&maxPrice=.
func (c *ProductController) Filter(w http.ResponseWriter, r *http.Request) {
	minPrice, ok := queryFloat(w, r, "minPrice")
	if !ok {
		return
	}
	maxPrice, ok := queryFloat(w, r, "maxPrice")
	if !ok {
		return
	}

	products, err := c.catalog.Filter(query.Filter{
		Category: r.URL.Query().Get("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, emptyToSlice(products))
}

// Sort handles GET /api/product/sort/products?field=&order=.
func (c *ProductController) Sort(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, err := c.catalog.SortBy(q.Get("field"), q.Get("order"))
	if err != nil {
		c.fail(w, r, err)
		return
	}

	response.JSON(w, emptyToSlice(products))
}

// fail maps service errors onto HTTP responses.
func (c *ProductController) fail(w http.ResponseWriter, r *http.Request, err error) {
	var nf *services.NotFoundError
	switch {
	case errors.As(err, &nf):
		response.NotFound(w, nf.Error())
	case query.IsValidation(err):
		response.BadRequest(w, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("catalog request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// productID parses the {id} path parameter. Writes a 400 and returns
// ok=false when the value is not a positive integer.
func productID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(w, "Invalid product ID")
		return 0, false
	}
	return uint(id), true
}

func queryInt(w http.ResponseWriter, r *http.Request, key string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, "Invalid "+key+" parameter")
		return 0, false
	}
	return n, true
}

func queryFloat(w http.ResponseWriter, r *http.Request, key string) (*float64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		response.BadRequest(w, "Invalid "+key+" parameter")
		return nil, false
	}
	return &f, true
}

// emptyToSlice keeps empty result sets encoding as [] instead of null.
func emptyToSlice(products []models.Product) []models.Product {
	if products == nil {
		return []models.Product{}
	}
	return products
}
