// products.go - Product reads for any authenticated user

package handlers

import (
	"net/http"

	"go-shop-admin/presenter"

	"github.com/gin-gonic/gin"
)

// PublicIndex lists active products for any authenticated user.
func (h *ProductHandler) PublicIndex(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}
	c.JSON(http.StatusOK, presenter.Products(products))
}

func (h *ProductHandler) PublicShow(c *gin.Context) {
	product, err := h.find(c)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}
	c.JSON(http.StatusOK, presenter.Product(product))
}
