// admin_users.go - Admin user endpoints

package handlers

import (
	"log/slog"
	"net/http"

	"go-shop-admin/auth"
	"go-shop-admin/models"
	"go-shop-admin/presenter"
	"go-shop-admin/repository"
	"go-shop-admin/validation"

	"github.com/gin-gonic/gin"
)

const userEntity = "User"

// UserHandler serves /admin/users. Users have no trashed state.
type UserHandler struct {
	responder
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository, v *validation.Validator, log *slog.Logger) *UserHandler {
	return &UserHandler{responder: responder{log: log, validator: v}, users: users}
}

func (h *UserHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.users.List(ctx)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}

	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	stats, err := h.users.ReviewStats(ctx, ids...)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": presenter.UsersWithStats(users, stats)})
}

func (h *UserHandler) Store(c *gin.Context) {
	payload, err := h.validate(c, validation.UserRules(h.users, 0), validation.Create)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}

	user := &models.User{}
	if err := applyUser(user, payload); err != nil {
		h.fail(c, err, userEntity)
		return
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		h.fail(c, err, userEntity)
		return
	}

	h.audit(c, "user created", "user_id", user.ID, "is_admin", user.IsAdmin)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    presenter.User(user),
	})
}

func (h *UserHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	user, err := h.find(c)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}

	stats, err := h.users.ReviewStats(ctx, user.ID)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}

	c.JSON(http.StatusOK, presenter.UserStats(user, stats[user.ID]))
}

func (h *UserHandler) Update(c *gin.Context) {
	user, err := h.find(c)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}

	payload, err := h.validate(c, validation.UserRules(h.users, user.ID), validation.Update)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}

	if err := applyUser(user, payload); err != nil {
		h.fail(c, err, userEntity)
		return
	}
	if err := h.users.Update(c.Request.Context(), user); err != nil {
		h.fail(c, err, userEntity)
		return
	}

	h.audit(c, "user updated", "user_id", user.ID, "is_admin", user.IsAdmin)
	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    presenter.User(user),
	})
}

// Destroy permanently removes the user; their reviews go with them.
func (h *UserHandler) Destroy(c *gin.Context) {
	user, err := h.find(c)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}

	if err := h.users.Delete(c.Request.Context(), user); err != nil {
		h.fail(c, err, userEntity)
		return
	}

	h.audit(c, "user deleted", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) find(c *gin.Context) (*models.User, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, err
	}
	return h.users.FindByID(c.Request.Context(), id)
}

// applyUser copies the validated fields present in payload. A supplied
// password is stored as a bcrypt hash.
func applyUser(user *models.User, payload validation.Payload) error {
	if name, ok := payload.String("name"); ok {
		user.Name = name
	}
	if email, ok := payload.String("email"); ok {
		user.Email = email
	}
	if password, ok := payload.String("password"); ok {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		user.Password = hash
	}
	if isAdmin, ok := payload.Bool("is_admin"); ok {
		user.IsAdmin = isAdmin
	}
	return nil
}
