package controllers

import (
	"net/http"

	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/pkg/ctx"
)

type OrderController struct {
	orders *services.OrderService
	auth   *services.AuthService
}

func NewOrderController(orders *services.OrderService, auth *services.AuthService) *OrderController {
	return &OrderController{orders: orders, auth: auth}
}

// Store places a guest order with a client-supplied total.
func (o *OrderController) Store(c *ctx.Context) {
	var in services.GuestOrderInput
	if !c.BindJSON(&in) {
		return
	}

	id, err := o.orders.PlaceGuestOrder(c.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(map[string]any{"message": "Order placed", "order_id": id})
}

func (o *OrderController) Show(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	order, err := o.orders.Get(c.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.OK(order)
}

// StoreForCustomer places a priced, stock-checked order for the signed-in
// customer.
func (o *OrderController) StoreForCustomer(c *ctx.Context) {
	customer, err := o.auth.Customer(c.Context(), principal(c).Subject)
	if err != nil {
		respondError(c, err)
		return
	}

	var in services.CustomerOrderInput
	if !c.BindJSON(&in) {
		return
	}

	order, err := o.orders.PlaceCustomerOrder(c.Context(), customer, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(map[string]any{"message": "Order placed", "order_id": order.ID, "order": order})
}

func (o *OrderController) IndexForCustomer(c *ctx.Context) {
	customer, err := o.auth.Customer(c.Context(), principal(c).Subject)
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := o.orders.ForCustomer(c.Context(), customer.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.OK(orders)
}

func (o *OrderController) Index(c *ctx.Context) {
	orders, err := o.orders.List(c.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.OK(orders)
}

func (o *OrderController) UpdateStatus(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	var in services.UpdateStatusInput
	if !c.BindJSON(&in) {
		return
	}

	if err := o.orders.UpdateStatus(c.Context(), id, in.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Message(http.StatusOK, "Order status updated")
}
