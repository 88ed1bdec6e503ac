// status.go - Lifecycle status shared by the models

package models

import "gorm.io/gorm"

// Status is the lifecycle state of a persisted entity.
//
//	Active -> SoftDeleted              (delete)
//	SoftDeleted -> Active              (restore)
//	Active|SoftDeleted -> Purged       (force delete, terminal)
//
// Users skip SoftDeleted entirely.
type Status string

const (
	StatusActive      Status = "active"
	StatusSoftDeleted Status = "soft_deleted"
	StatusPurged      Status = "purged"
)

func statusOf(deletedAt gorm.DeletedAt, purged bool) Status {
	switch {
	case purged:
		return StatusPurged
	case deletedAt.Valid:
		return StatusSoftDeleted
	default:
		return StatusActive
	}
}
