// Package kernel assembles the HTTP handler: global middleware first, then
// the application routes.
package kernel

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bedjos/storefront/app/routes"
	"github.com/bedjos/storefront/pkg/middleware"
	"github.com/bedjos/storefront/pkg/reqid"
	"github.com/bedjos/storefront/pkg/router"
)

// Options configures the global middleware stack.
type Options struct {
	CORSOrigins []string
}

// New builds the router with its middleware and routes. The router is
// returned too so callers can list the route table.
func New(deps routes.Deps, opts Options) (http.Handler, *router.Router) {
	r := router.New()

	// Outermost first: the request ID must exist before anything logs and
	// Recovery relies on the request logger Logger injects.
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(cors.Handler(corsOptions(opts.CORSOrigins)))
	r.Use(chimw.StripSlashes)

	routes.RegisterAPI(r, deps)
	return r.Handler(), r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", reqid.Header},
		ExposedHeaders:   []string{reqid.Header},
		AllowCredentials: false,
		MaxAge:           300,
	}
}
