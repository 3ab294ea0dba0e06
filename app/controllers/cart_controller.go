package controllers

import (
	"net/http"

	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/pkg/ctx"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (cc *CartController) Add(c *ctx.Context) {
	var in services.AddToCartInput
	if !c.BindJSON(&in) {
		return
	}

	if err := cc.cart.Add(c.Context(), in); err != nil {
		respondError(c, err)
		return
	}
	c.Message(http.StatusCreated, "Added to cart")
}

func (cc *CartController) Show(c *ctx.Context) {
	cart, err := cc.cart.Get(c.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.OK(cart)
}

func (cc *CartController) RemoveItem(c *ctx.Context) {
	itemID, ok := c.ParamUint("item_id")
	if !ok {
		return
	}

	if err := cc.cart.Remove(c.Context(), c.Param("session_id"), itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Message(http.StatusOK, "Item removed from cart")
}

func (cc *CartController) Clear(c *ctx.Context) {
	if err := cc.cart.Clear(c.Context(), c.Param("session_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Message(http.StatusOK, "Cart cleared")
}
