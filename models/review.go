// review.go - Defines the Review model for the database

package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;index"`
	User      User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ProductID uint    `gorm:"not null;index"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Rating    int     `gorm:"not null"` // 1..5
	Comment   *string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	purged bool
}

func (r *Review) Status() Status { return statusOf(r.DeletedAt, r.purged) }

func (r *Review) MarkPurged() { r.purged = true }

// ReviewStats is the review aggregate shown next to products and users.
type ReviewStats struct {
	TotalReviews  int64
	AverageRating float64 // Rounded to 2 decimals, 0 without reviews
}
