// admin_reviews.go - Admin review endpoints, including trash, restore and force delete

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

const reviewEntity = "Review"

// ReviewHandler serves /admin/reviews.
type ReviewHandler struct {
	responder
	reviews  repository.ReviewRepository
	users    validation.Existence // Resolves user_id references
	products validation.Existence // Resolves product_id references
}

func NewReviewHandler(reviews repository.ReviewRepository, users, products validation.Existence, v *validation.Validator, log *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		responder: responder{log: log, validator: v},
		reviews:   reviews,
		users:     users,
		products:  products,
	}
}

func (h *ReviewHandler) rules() validation.Rules {
	return validation.ReviewRules(h.users, h.products)
}

func (h *ReviewHandler) Index(c *gin.Context) {
	reviews, err := h.reviews.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, reviewEntity)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": presenter.Reviews(reviews)})
}

func (h *ReviewHandler) Store(c *gin.Context) {
	payload, err := h.validate(c, h.rules(), validation.Create)
	if err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	review := &models.Review{}
	applyReview(review, payload)
	if err := h.reviews.Create(c.Request.Context(), review); err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	h.audit(c, "review created", "review_id", review.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"review":  presenter.ReviewSummaryOf(review),
	})
}

func (h *ReviewHandler) Show(c *gin.Context) {
	review, err := h.find(c)
	if err != nil {
		h.fail(c, err, reviewEntity)
		return
	}
	c.JSON(http.StatusOK, presenter.Review(review))
}

func (h *ReviewHandler) Update(c *gin.Context) {
	review, err := h.find(c)
	if err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	payload, err := h.validate(c, h.rules(), validation.Update)
	if err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	applyReview(review, payload)
	if err := h.reviews.Update(c.Request.Context(), review); err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	h.audit(c, "review updated", "review_id", review.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"review":  presenter.ReviewSummaryOf(review),
	})
}

func (h *ReviewHandler) Destroy(c *gin.Context) {
	review, err := h.find(c)
	if err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), review); err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	h.audit(c, "review deleted", "review_id", review.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func (h *ReviewHandler) Trashed(c *gin.Context) {
	reviews, err := h.reviews.ListTrashed(c.Request.Context())
	if err != nil {
		h.fail(c, err, reviewEntity)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": presenter.Reviews(reviews)})
}

func (h *ReviewHandler) Restore(c *gin.Context) {
	review, err := h.findWithTrashed(c)
	if err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	if err := h.reviews.Restore(c.Request.Context(), review); err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	h.audit(c, "review restored", "review_id", review.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Review restored successfully",
		"review":  presenter.Review(review),
	})
}

func (h *ReviewHandler) ForceDestroy(c *gin.Context) {
	review, err := h.findWithTrashed(c)
	if err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	if err := h.reviews.ForceDelete(c.Request.Context(), review); err != nil {
		h.fail(c, err, reviewEntity)
		return
	}

	h.audit(c, "review purged", "review_id", review.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Review permanently deleted"})
}

func (h *ReviewHandler) find(c *gin.Context) (*models.Review, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, err
	}
	return h.reviews.FindByID(c.Request.Context(), id)
}

func (h *ReviewHandler) findWithTrashed(c *gin.Context) (*models.Review, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, err
	}
	return h.reviews.FindWithTrashed(c.Request.Context(), id)
}

func applyReview(review *models.Review, payload validation.Payload) {
	if userID, ok := payload.Int("user_id"); ok {
		review.UserID = uint(userID)
	}
	if productID, ok := payload.Int("product_id"); ok {
		review.ProductID = uint(productID)
	}
	if rating, ok := payload.Int("rating"); ok {
		review.Rating = int(rating)
	}
	if comment, present := payload.NullableString("comment"); present {
		review.Comment = comment
	}
}
