// Package ctx provides a request context for storefront handlers.
//
// Instead of accepting (http.ResponseWriter, *http.Request), a handler
// receives a single *Context with helpers for params, binding and replies:
//
//	func (c *ProductController) Show(cx *ctx.Context) {
//	    id, ok := cx.ParamUint("id")
//	    if !ok {
//	        return // 404 already sent
//	    }
//	    cx.JSON(http.StatusOK, product)
//	}
//
//	r.Get("/products/{id}", "products.show", ctx.Wrap(c.Show))
package ctx

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/bedjos/storefront/pkg/bind"
	"github.com/bedjos/storefront/pkg/response"
	"github.com/bedjos/storefront/pkg/validate"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W http.ResponseWriter
	R *http.Request
}

var pool = sync.Pool{
	New: func() any { return new(Context) },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter ("/cart/{session_id}" → c.Param("session_id")).
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamUint parses a numeric path parameter. A value that is not a positive
// integer cannot name a row, so it is answered with 404 and ok=false.
func (c *Context) ParamUint(key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || n == 0 {
		c.NotFound()
		return 0, false
	}
	return uint(n), true
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// ─── Binding / Validation ─────────────────────────────────────────────────────

// BindJSON decodes the JSON body into dest and runs validation.
// On any failure it sends a 400 and returns false.
//
//	var input CreateOrderInput
//	if !c.BindJSON(&input) {
//	    return // response already sent
//	}
func (c *Context) BindJSON(dest any) bool {
	errs, err := bind.JSON(c.R, dest)
	if err != nil {
		if errors.Is(err, bind.ErrEmptyBody) {
			c.Error(http.StatusBadRequest, "Request body is required")
			return false
		}
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	if validate.HasErrors(errs) {
		c.ValidationError(errs)
		return false
	}
	return true
}

// ─── Response helpers ─────────────────────────────────────────────────────────

// JSON writes v as the response body with the given status code.
func (c *Context) JSON(code int, v any) {
	response.JSON(c.W, code, v)
}

// OK sends 200 with v.
func (c *Context) OK(v any) {
	c.JSON(http.StatusOK, v)
}

// Created sends 201 with v.
func (c *Context) Created(v any) {
	c.JSON(http.StatusCreated, v)
}

// Message sends {"message": msg} with the given status.
func (c *Context) Message(code int, msg string) {
	c.JSON(code, map[string]string{"message": msg})
}

// Error sends {"error": message} with the given status.
func (c *Context) Error(code int, message string) {
	c.JSON(code, response.ErrorBody{Error: message})
}

// ValidationError sends a 400 with field-level errors.
func (c *Context) ValidationError(errs map[string]string) {
	c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "Validation failed", Fields: errs})
}

func (c *Context) Unauthorized() { c.Error(http.StatusUnauthorized, "Unauthorized") }

func (c *Context) NotFound() { c.Error(http.StatusNotFound, "Not found") }
