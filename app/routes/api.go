// Package routes declares the API route table. Static paths register
// before the {id} wildcard so /product/product/search and /product/admin
// never get captured as an id.
package routes

import (
	"github.com/Gentle-wave/scelloo-ecommerce-api/app/controllers"
	"github.com/Gentle-wave/scelloo-ecommerce-api/pkg/router"
)

// Register mounts all API routes under the /api prefix. authGuard
// protects the admin endpoints.
func Register(r *router.Router, products *controllers.ProductController, auth *controllers.AuthController, authGuard router.Middleware) {
	api := r.Group("/api")

	api.Post("/login", "auth.login", auth.Login)

	product := api.Group("/product")
	product.Post("/admin", "product.store", products.Store, authGuard)
	product.Get("", "product.index", products.Index)
	product.Get("/product/search", "product.search", products.Search)
	product.Get("/product", "product.filter", products.Filter)
	product.Get("/sort/products", "product.sort", products.Sort)
	product.Get("/{id}", "product.show", products.Show)
	product.Put("/{id}", "product.update", products.Update)
	product.Delete("/admin/{id}", "product.destroy", products.Destroy, authGuard)
}
