package controllers

import (
	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/pkg/ctx"
)

// AdminController serves the dashboard read models.
type AdminController struct {
	stats *services.StatsService
	auth  *services.AuthService
}

func NewAdminController(stats *services.StatsService, auth *services.AuthService) *AdminController {
	return &AdminController{stats: stats, auth: auth}
}

func (a *AdminController) Stats(c *ctx.Context) {
	st, err := a.stats.Summary(c.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.OK(st)
}

func (a *AdminController) Customers(c *ctx.Context) {
	customers, err := a.auth.Customers(c.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.OK(customers)
}
