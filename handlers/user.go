// user.go - Handles user registration and login

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go-shop-admin/auth"
	"go-shop-admin/middleware"
	"go-shop-admin/models"
	"go-shop-admin/presenter"
	"go-shop-admin/repository"
	"go-shop-admin/validation"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct { // Struct for registration input
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler serves /auth. Self-registered users are never admins.
type AuthHandler struct {
	responder
	users  repository.UserRepository
	tokens *auth.Tokens
}

func NewAuthHandler(users repository.UserRepository, tokens *auth.Tokens, log *slog.Logger) *AuthHandler {
	return &AuthHandler{responder: responder{log: log}, users: users, tokens: tokens}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx := c.Request.Context()
	taken, err := h.users.EmailTaken(ctx, input.Email, 0)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}
	if taken {
		verrs := &validation.Errors{}
		verrs.Add("email", "The email has already been taken.")
		h.fail(c, verrs, userEntity)
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}
	user := &models.User{Name: input.Name, Email: input.Email, Password: hash}
	if err := h.users.Create(ctx, user); err != nil { // Save user to DB
		h.fail(c, err, userEntity)
		return
	}

	h.log.Info("user registered", "user_id", user.ID, "request_id", middleware.RequestID(c))
	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"user":    presenter.User(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), input.Email)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}
	if err := auth.CheckPassword(user.Password, input.Password); err != nil { // Check password
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.fail(c, err, userEntity)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"token_type": "bearer",
		"expires_in": int64(h.tokens.TTL().Seconds()),
	})
}
