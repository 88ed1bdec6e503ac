// handler.go - Shared response and error handling for controllers

// Package handlers contains the HTTP controllers. Admin controllers assume
// the admin gate already ran; each request then goes find-or-404,
// validate, persist and present.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go-shop-admin/middleware"
	"go-shop-admin/repository"
	"go-shop-admin/validation"

	"github.com/gin-gonic/gin"
)

// responder carries what every controller needs to turn results and
// errors into responses.
type responder struct {
	log       *slog.Logger          // Structured logger
	validator *validation.Validator // Payload validator (nil for auth)
}

// parseID reads the :id path parameter. Ids that cannot name a row are
// reported as not found.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, repository.ErrNotFound
	}
	return uint(id), nil
}

func (r responder) validate(c *gin.Context, rules validation.Rules, mode validation.Mode) (validation.Payload, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return r.validator.Validate(c.Request.Context(), body, rules, mode)
}

// fail maps err to its response. entity names the resource in not-found
// messages ("Product not found").
func (r responder) fail(c *gin.Context, err error, entity string) {
	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": verrs.Message(),
			"errors":  verrs.Fields,
		})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
	default:
		r.log.Error("request failed",
			"request_id", middleware.RequestID(c),
			"path", c.FullPath(),
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
	}
}

// audit records a successful admin write together with the acting identity.
func (r responder) audit(c *gin.Context, action string, attrs ...any) {
	if identity := middleware.CurrentIdentity(c); identity != nil {
		attrs = append(attrs, "actor_id", identity.UserID)
	}
	attrs = append(attrs, "request_id", middleware.RequestID(c))
	r.log.Info(action, attrs...)
}
