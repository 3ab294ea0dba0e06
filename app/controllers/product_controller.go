package controllers

import (
	"net/http"

	"github.com/bedjos/storefront/app/services"
	"github.com/bedjos/storefront/pkg/ctx"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

func (p *ProductController) Index(c *ctx.Context) {
	products, err := p.catalog.List(c.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.OK(products)
}

func (p *ProductController) Show(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	product, err := p.catalog.Get(c.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.OK(product)
}

func (p *ProductController) Store(c *ctx.Context) {
	var in services.CreateProductInput
	if !c.BindJSON(&in) {
		return
	}

	id, err := p.catalog.Create(c.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Created(map[string]any{"message": "Product created", "id": id})
}

// Update applies a partial update; absent fields keep their value.
func (p *ProductController) Update(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	var in services.UpdateProductInput
	if !c.BindJSON(&in) {
		return
	}

	if err := p.catalog.Update(c.Context(), id, in); err != nil {
		respondError(c, err)
		return
	}
	c.Message(http.StatusOK, "Product updated")
}

func (p *ProductController) Destroy(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	if err := p.catalog.Delete(c.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Message(http.StatusOK, "Product deleted")
}
