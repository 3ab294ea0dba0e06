package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestGroupPrefixAndMiddleware(t *testing.T) {
	r := New()
	var hits int
	count := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			hits++
			next.ServeHTTP(w, req)
		})
	}

	api := r.Group("/api")
	admin := api.Group("admin", count)
	admin.Delete("/products/{id}", "admin.products.destroy", ok)
	api.Get("/products", "products.index", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/products/3", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, hits)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, hits)
}

func TestRoutesSorted(t *testing.T) {
	r := New()
	g := r.Group("/api")
	g.Put("/cart/{id}", "cart.update", ok)
	g.Get("/products", "products.index", ok)
	g.Post("/cart", "cart.store", ok)

	routes := r.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, RouteInfo{Method: http.MethodPost, Path: "/api/cart", Name: "cart.store"}, routes[0])
	assert.Equal(t, "/api/cart/{id}", routes[1].Path)
	assert.Equal(t, "/api/products", routes[2].Path)
}

func TestFallbacksAreJSON(t *testing.T) {
	r := New()
	r.Get("/api/products", "products.index", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/products", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}
