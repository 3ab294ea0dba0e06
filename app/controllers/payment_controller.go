package controllers

import (
	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/pkg/ctx"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

func (p *PaymentController) STKPush(c *ctx.Context) {
	var in services.STKPushInput
	if !c.BindJSON(&in) {
		return
	}
	c.OK(p.payments.STKPush(c.Context(), in))
}

func (p *PaymentController) Verify(c *ctx.Context) {
	c.OK(p.payments.Verify(c.Param("reference")))
}
