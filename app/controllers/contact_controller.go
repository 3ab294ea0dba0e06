package controllers

import (
	"net/http"

	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/pkg/ctx"
)

type ContactController struct {
	contact *services.ContactService
}

func NewContactController(contact *services.ContactService) *ContactController {
	return &ContactController{contact: contact}
}

func (cc *ContactController) Store(c *ctx.Context) {
	var in services.ContactInput
	if !c.BindJSON(&in) {
		return
	}

	if _, err := cc.contact.Submit(c.Context(), in); err != nil {
		respondError(c, err)
		return
	}
	c.Message(http.StatusCreated, "Message sent successfully")
}

func (cc *ContactController) Index(c *ctx.Context) {
	messages, err := cc.contact.List(c.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.OK(messages)
}
