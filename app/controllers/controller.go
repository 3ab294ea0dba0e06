// Package controllers turns HTTP requests into service calls and service
// results into JSON responses.
package controllers

import (
	"errors"
	"net/http"

	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/pkg/ctx"
	"github.com/bedjos/storefront/pkg/logger"
	"github.com/bedjos/storefront/pkg/middleware"
)

// respondError maps a service error onto a status code. Unknown errors are
// logged and reported as a bare 500.
func respondError(c *ctx.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithCtx(c.Context()).Error("request failed", "error", err)
		c.Error(status, "Internal server error")
		return
	}

	msg, ok := services.PublicMessage(err)
	if !ok {
		msg = http.StatusText(status)
	}
	c.Error(status, msg)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// principal returns the caller set by the auth middleware. Routes that call
// it are always mounted behind RequireRole.
func principal(c *ctx.Context) middleware.Principal {
	p, _ := middleware.PrincipalFromCtx(c.Context())
	return p
}
