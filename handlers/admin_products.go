// admin_products.go - Admin product endpoints, including trash, restore and force delete

package handlers

import (
	"log/slog"
	"net/http"

	"go-shop-admin/models"
	"go-shop-admin/presenter"
	"go-shop-admin/repository"
	"go-shop-admin/validation"

	"github.com/gin-gonic/gin"
)

const productEntity = "Product"

// ProductHandler serves /admin/products and the public /products reads.
type ProductHandler struct {
	responder
	products repository.ProductRepository
}

func NewProductHandler(products repository.ProductRepository, v *validation.Validator, log *slog.Logger) *ProductHandler {
	return &ProductHandler{responder: responder{log: log, validator: v}, products: products}
}

// Index lists every active product with its review stats.
func (h *ProductHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	products, err := h.products.List(ctx)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}

	stats, err := h.products.ReviewStats(ctx, productIDs(products)...)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": presenter.ProductsWithStats(products, stats)})
}

func (h *ProductHandler) Store(c *gin.Context) {
	payload, err := h.validate(c, validation.ProductRules(), validation.Create)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}

	product := &models.Product{}
	applyProduct(product, payload)
	if err := h.products.Create(c.Request.Context(), product); err != nil {
		h.fail(c, err, productEntity)
		return
	}

	h.audit(c, "product created", "product_id", product.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": presenter.Product(product),
	})
}

func (h *ProductHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	product, err := h.find(c)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}

	stats, err := h.products.ReviewStats(ctx, product.ID)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}

	c.JSON(http.StatusOK, presenter.ProductStats(product, stats[product.ID]))
}

func (h *ProductHandler) Update(c *gin.Context) {
	product, err := h.find(c)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}

	payload, err := h.validate(c, validation.ProductRules(), validation.Update)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}

	applyProduct(product, payload)
	if err := h.products.Update(c.Request.Context(), product); err != nil {
		h.fail(c, err, productEntity)
		return
	}

	h.audit(c, "product updated", "product_id", product.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": presenter.Product(product),
	})
}

// Destroy soft deletes the product.
func (h *ProductHandler) Destroy(c *gin.Context) {
	product, err := h.find(c)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}

	if err := h.products.Delete(c.Request.Context(), product); err != nil {
		h.fail(c, err, productEntity)
		return
	}

	h.audit(c, "product deleted", "product_id", product.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) Trashed(c *gin.Context) {
	products, err := h.products.ListTrashed(c.Request.Context())
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": presenter.Products(products)})
}

func (h *ProductHandler) Restore(c *gin.Context) {
	product, err := h.findWithTrashed(c)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}

	if err := h.products.Restore(c.Request.Context(), product); err != nil {
		h.fail(c, err, productEntity)
		return
	}

	h.audit(c, "product restored", "product_id", product.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Product restored successfully",
		"product": presenter.Product(product),
	})
}

// ForceDestroy permanently removes the product, trashed or not.
func (h *ProductHandler) ForceDestroy(c *gin.Context) {
	product, err := h.findWithTrashed(c)
	if err != nil {
		h.fail(c, err, productEntity)
		return
	}

	if err := h.products.ForceDelete(c.Request.Context(), product); err != nil {
		h.fail(c, err, productEntity)
		return
	}

	h.audit(c, "product purged", "product_id", product.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Product permanently deleted"})
}

func (h *ProductHandler) find(c *gin.Context) (*models.Product, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, err
	}
	return h.products.FindByID(c.Request.Context(), id)
}

func (h *ProductHandler) findWithTrashed(c *gin.Context) (*models.Product, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, err
	}
	return h.products.FindWithTrashed(c.Request.Context(), id)
}

// applyProduct copies the validated fields present in payload.
func applyProduct(product *models.Product, payload validation.Payload) {
	if name, ok := payload.String("name"); ok {
		product.Name = name
	}
	if description, present := payload.NullableString("description"); present {
		product.Description = description
	}
	if price, ok := payload.Float("price"); ok {
		product.Price = price
	}
}

func productIDs(products []models.Product) []uint {
	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
