// user.go - Defines the User model for the database

package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct { // User struct represents an account that can log in and write reviews
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;uniqueIndex;not null"` // Must be unique across users
	Password  string `gorm:"not null"`                      // bcrypt hash, never serialized
	IsAdmin   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	purged bool
}

// Status reports the lifecycle state. Users have no soft delete, so they
// go straight from active to purged.
func (u *User) Status() Status { return statusOf(gorm.DeletedAt{}, u.purged) }

func (u *User) MarkPurged() { u.purged = true }
