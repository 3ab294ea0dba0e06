package controllers

import (
	"github.com/bedjos/storefront/pkg/ctx"
)

const apiVersion = "1.0.0"

type HomeController struct{}

func NewHomeController() *HomeController { return &HomeController{} }

// Banner answers GET / with a short description of the API.
func (h *HomeController) Banner(c *ctx.Context) {
	c.OK(map[string]any{
		"status":  "success",
		"message": "Bedjos Solutions Backend API",
		"version": apiVersion,
		"api_url": "/api",
		"docs": map[string]string{
			"health_check": "GET /api/",
			"products":     "GET /api/products",
			"admin_login":  "POST /api/auth/login",
		},
	})
}

func (h *HomeController) Health(c *ctx.Context) {
	c.OK(map[string]string{
		"status":  "success",
		"message": "Bedjos Solutions API running",
		"version": apiVersion,
	})
}
