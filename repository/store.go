// store.go - Generic gorm store shared by the repositories

// Package repository provides the data access layer on top of gorm.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when an id does not resolve in the queried scope.
var ErrNotFound = errors.New("record not found")

// store holds the gorm operations shared by every entity repository.
// Soft-delete behavior comes from the model: models carrying a
// gorm.DeletedAt column are tombstoned by Delete, others are removed.
type store[T any] struct {
	db     *gorm.DB                  // Database handle
	name   string                    // Entity name used in error messages
	scopes []func(*gorm.DB) *gorm.DB // Applied to every read (preloads)
}

func newStore[T any](db *gorm.DB, name string, scopes ...func(*gorm.DB) *gorm.DB) store[T] {
	return store[T]{db: db, name: name, scopes: scopes}
}

func (s store[T]) query(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Scopes(s.scopes...)
}

func (s store[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := s.query(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", s.name, err)
	}
	return items, nil
}

func (s store[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	return s.first(s.query(ctx), id)
}

func (s store[T]) FindWithTrashed(ctx context.Context, id uint) (*T, error) {
	return s.first(s.query(ctx).Unscoped(), id)
}

func (s store[T]) first(tx *gorm.DB, id uint) (*T, error) {
	var item T
	err := tx.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s by id %d: %w", s.name, id, err)
	}
	return &item, nil
}

func (s store[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s %d: %w", s.name, id, err)
	}
	return count > 0, nil
}

func (s store[T]) Create(ctx context.Context, item *T) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", s.name, err)
	}
	return nil
}

// Update writes every column of a row previously loaded with FindByID.
// Associations are left untouched. A row that was deleted or trashed
// since it was loaded is not written and reports ErrNotFound.
func (s store[T]) Update(ctx context.Context, item *T) error {
	result := s.db.WithContext(ctx).Model(item).Select("*").Omit(clause.Associations).Updates(item)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", s.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s store[T]) Delete(ctx context.Context, item *T) error {
	if err := s.db.WithContext(ctx).Delete(item).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.name, err)
	}
	return nil
}

func (s store[T]) ListTrashed(ctx context.Context) ([]T, error) {
	var items []T
	err := s.query(ctx).Unscoped().Where("deleted_at IS NOT NULL").Order("id").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trashed %ss: %w", s.name, err)
	}
	return items, nil
}

// Restore clears the tombstone of a row loaded with FindWithTrashed.
func (s store[T]) Restore(ctx context.Context, item *T) error {
	if err := s.db.WithContext(ctx).Unscoped().Model(item).Omit(clause.Associations).Update("deleted_at", nil).Error; err != nil {
		return fmt.Errorf("failed to restore %s: %w", s.name, err)
	}
	return nil
}

func (s store[T]) ForceDelete(ctx context.Context, item *T) error {
	if err := s.db.WithContext(ctx).Unscoped().Delete(item).Error; err != nil {
		return fmt.Errorf("failed to permanently delete %s: %w", s.name, err)
	}
	return nil
}
