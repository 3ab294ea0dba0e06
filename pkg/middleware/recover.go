package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/bedjos/storefront/pkg/logger"
	"github.com/bedjos/storefront/pkg/response"
)

// Recovery turns a panic in a handler into a logged stack trace and a 500
// {"error": "Internal server error"} reply.
//
//	r.Use(reqid.Middleware())
//	r.Use(middleware.Logger)
//	r.Use(middleware.Recovery)
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()
				logger.WithCtx(r.Context()).Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(stack),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Error(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
