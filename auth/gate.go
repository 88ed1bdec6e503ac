// gate.go - Caller identity and the admin authorization gate

// Package auth holds the caller identity, the admin authorization gate,
// JWT issuing and password hashing.
package auth

import (
	"errors"

	"go-shop-admin/models"
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Identity is the authenticated caller. A nil *Identity means the request
// carried no valid credentials.
type Identity struct {
	UserID  uint
	Name    string
	Email   string
	IsAdmin bool
}

// IdentityOf builds the identity of a persisted user.
func IdentityOf(user *models.User) *Identity {
	return &Identity{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}

// Gate decides whether an identity may perform admin operations.
type Gate interface {
	Authorize(identity *Identity) error
}

// AdminGate allows only authenticated identities carrying the admin flag.
type AdminGate struct{}

func (AdminGate) Authorize(identity *Identity) error {
	if identity == nil || !identity.IsAdmin {
		return ErrForbidden
	}
	return nil
}
