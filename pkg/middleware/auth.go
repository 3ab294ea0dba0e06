package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bedjos/storefront/pkg/auth"
	"github.com/bedjos/storefront/pkg/logger"
	"github.com/bedjos/storefront/pkg/response"
)

// Principal is the authenticated caller of a protected route.
type Principal struct {
	Subject string // account id
	Role    string
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromCtx returns the principal set by RequireRole.
func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// RequireRole only lets requests through whose bearer token is valid and
// carries role. Everything else gets a 401 with {"error": "Unauthorized"}.
func RequireRole(tm *auth.TokenManager, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := tm.Authorize(bearerToken(r), role)
			if err != nil {
				logger.WithCtx(r.Context()).Debug("auth rejected", "role", role, "error", err)
				response.Unauthorized(w)
				return
			}

			ctx := WithPrincipal(r.Context(), Principal{Subject: claims.Subject, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
