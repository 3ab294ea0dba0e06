package controllers

import (
	"net/http"

	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/pkg/ctx"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// AdminLogin handles POST /api/auth/login.
func (a *AuthController) AdminLogin(c *ctx.Context) {
	var in services.LoginInput
	if !c.BindJSON(&in) {
		return
	}

	token, admin, err := a.service.AdminLogin(c.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.OK(map[string]any{
		"access_token": token,
		"admin":        map[string]string{"email": admin.Email},
	})
}

// Check reports the admin behind the bearer token.
func (a *AuthController) Check(c *ctx.Context) {
	admin, err := a.service.Admin(c.Context(), principal(c).Subject)
	if err != nil {
		c.Unauthorized()
		return
	}
	c.OK(map[string]any{"authenticated": true, "email": admin.Email})
}

// Logout is stateless; the client drops its token.
func (a *AuthController) Logout(c *ctx.Context) {
	c.Message(http.StatusOK, "Logged out successfully")
}

func (a *AuthController) Signup(c *ctx.Context) {
	var in services.SignupInput
	if !c.BindJSON(&in) {
		return
	}

	session, err := a.service.Signup(c.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(session)
}

func (a *AuthController) CustomerLogin(c *ctx.Context) {
	var in services.LoginInput
	if !c.BindJSON(&in) {
		return
	}

	session, err := a.service.CustomerLogin(c.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.OK(session)
}
