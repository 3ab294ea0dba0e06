package routes

import (
	"time"

	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/controllers"
	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/pkg/auth"
	"github.com/bedjos/storefront/pkg/ctx"
	"github.com/bedjos/storefront/pkg/middleware"
	"github.com/bedjos/storefront/pkg/router"
)

// Deps is what the route table needs to build its controllers.
type Deps struct {
	DB            *gorm.DB
	Tokens        *auth.TokenManager
	Notifier      services.ContactNotifier // may be nil
	PaymentPrefix string
	Now           func() time.Time
}

// RegisterAPI mounts every route of the storefront on r.
func RegisterAPI(r *router.Router, d Deps) {
	authService := services.NewAuthService(d.DB, d.Tokens)

	home := controllers.NewHomeController()
	authc := controllers.NewAuthController(authService)
	products := controllers.NewProductController(services.NewCatalogService(d.DB))
	cart := controllers.NewCartController(services.NewCartService(d.DB))
	orders := controllers.NewOrderController(services.NewOrderService(d.DB), authService)
	contact := controllers.NewContactController(services.NewContactService(d.DB, d.Notifier))
	admin := controllers.NewAdminController(services.NewStatsService(d.DB), authService)
	payments := controllers.NewPaymentController(services.NewPaymentService(d.PaymentPrefix, d.Now))

	requireAdmin := middleware.RequireRole(d.Tokens, auth.RoleAdmin)
	requireCustomer := middleware.RequireRole(d.Tokens, auth.RoleCustomer)

	r.Get("/", "home", ctx.Wrap(home.Banner))

	api := r.Group("/api")
	api.Get("/", "health", ctx.Wrap(home.Health))

	api.Post("/auth/login", "auth.login", ctx.Wrap(authc.AdminLogin))
	api.Get("/auth/check", "auth.check", ctx.Wrap(authc.Check), requireAdmin)
	api.Post("/auth/logout", "auth.logout", ctx.Wrap(authc.Logout))
	api.Post("/auth/customer/signup", "auth.customer.signup", ctx.Wrap(authc.Signup))
	api.Post("/auth/customer/login", "auth.customer.login", ctx.Wrap(authc.CustomerLogin))

	api.Get("/products", "products.index", ctx.Wrap(products.Index))
	api.Get("/products/{id}", "products.show", ctx.Wrap(products.Show))

	api.Post("/orders", "orders.store", ctx.Wrap(orders.Store))
	api.Get("/orders/{id}", "orders.show", ctx.Wrap(orders.Show))

	api.Post("/cart", "cart.add", ctx.Wrap(cart.Add))
	api.Get("/cart/{session_id}", "cart.show", ctx.Wrap(cart.Show))
	api.Delete("/cart/{session_id}/item/{item_id}", "cart.item.remove", ctx.Wrap(cart.RemoveItem))
	api.Delete("/cart/{session_id}", "cart.clear", ctx.Wrap(cart.Clear))

	api.Post("/contact", "contact.store", ctx.Wrap(contact.Store))

	api.Post("/payments/mpesa/stk-push", "payments.stk_push", ctx.Wrap(payments.STKPush))
	api.Get("/payments/verify/{reference}", "payments.verify", ctx.Wrap(payments.Verify))

	customer := api.Group("/customer", requireCustomer)
	customer.Post("/orders", "customer.orders.store", ctx.Wrap(orders.StoreForCustomer))
	customer.Get("/orders", "customer.orders.index", ctx.Wrap(orders.IndexForCustomer))

	adm := api.Group("/admin", requireAdmin)
	adm.Post("/products", "admin.products.store", ctx.Wrap(products.Store))
	adm.Put("/products/{id}", "admin.products.update", ctx.Wrap(products.Update))
	adm.Delete("/products/{id}", "admin.products.destroy", ctx.Wrap(products.Destroy))
	adm.Get("/orders", "admin.orders.index", ctx.Wrap(orders.Index))
	adm.Put("/orders/{id}/status", "admin.orders.status", ctx.Wrap(orders.UpdateStatus))
	adm.Get("/messages", "admin.messages.index", ctx.Wrap(contact.Index))
	adm.Get("/customers", "admin.customers.index", ctx.Wrap(admin.Customers))
	adm.Get("/stats", "admin.stats", ctx.Wrap(admin.Stats))
}
