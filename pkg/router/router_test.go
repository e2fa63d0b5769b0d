package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body)) //nolint:errcheck
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGroupPrefixesRoutes(t *testing.T) {
	r := New()
	api := r.Group("/api")
	product := api.Group("/product")
	product.Get("", "product.index", named("index"))
	product.Get("/{id}", "product.show", named("show"))

	rec := get(t, r.Handler(), "/api/product")
	assert.Equal(t, "index", rec.Body.String())

	rec = get(t, r.Handler(), "/api/product/7")
	assert.Equal(t, "show", rec.Body.String())
}

func TestStaticRoutesWinOverParams(t *testing.T) {
	r := New()
	api := r.Group("/api/product")
	api.Get("/sort/products", "product.sort", named("sort"))
	api.Get("/product/search", "product.search", named("search"))
	api.Get("/{id}", "product.show", named("show"))

	assert.Equal(t, "sort", get(t, r.Handler(), "/api/product/sort/products").Body.String())
	assert.Equal(t, "search", get(t, r.Handler(), "/api/product/product/search").Body.String())
	assert.Equal(t, "show", get(t, r.Handler(), "/api/product/42").Body.String())
}

func TestRoutesTable(t *testing.T) {
	r := New()
	r.Get("/health", "health", named("ok"))
	api := r.Group("/api")
	api.Post("/login", "auth.login", named("login"))

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, RouteInfo{Method: http.MethodGet, Path: "/health", Name: "health"}, routes[0])
	assert.Equal(t, RouteInfo{Method: http.MethodPost, Path: "/api/login", Name: "auth.login"}, routes[1])
}

func TestURLReverse(t *testing.T) {
	r := New()
	r.Get("/api/product/{id}", "product.show", named("show"))

	url, err := r.URL("product.show", map[string]string{"id": "9"})
	require.NoError(t, err)
	assert.Equal(t, "/api/product/9", url)

	_, err = r.URL("product.show", nil)
	assert.Error(t, err)

	_, err = r.URL("missing", nil)
	assert.Error(t, err)
}

func TestRouteMiddlewareApplies(t *testing.T) {
	guard := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	r := New()
	admin := r.Group("/admin", guard)
	admin.Get("/panel", "admin.panel", named("panel"))

	rec := get(t, r.Handler(), "/admin/panel")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/panel", nil)
	req.Header.Set("Authorization", "Bearer x")
	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "panel", rec.Body.String())
}
