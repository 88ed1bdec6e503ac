// product.go - Defines the Product model for the database

package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;not null"`
	Description *string `gorm:"type:text"` // nil when not provided
	Price       float64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Tombstone for soft delete

	purged bool
}

func (p *Product) Status() Status { return statusOf(p.DeletedAt, p.purged) }

// MarkPurged records that the row was permanently removed.
func (p *Product) MarkPurged() { p.purged = true }
