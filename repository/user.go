// user.go - User repository

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-shop-admin/models"

	"gorm.io/gorm"
)

// UserRepository defines the data operations on users. Users are hard
// deleted; there is no trashed scope.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, user *models.User) error
	ReviewStats(ctx context.Context, ids ...uint) (map[uint]models.ReviewStats, error)
}

type userRepository struct {
	store[models.User]
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{store: newStore[models.User](db, "user"), db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, err)
	}
	return &user, nil
}

// EmailTaken reports whether another user (id != exceptID) owns email.
// Pass exceptID 0 on create.
func (r *userRepository) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("LOWER(email) = ? AND id <> ?", strings.ToLower(email), exceptID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email %s: %w", email, err)
	}
	return count > 0, nil
}

func (r *userRepository) Delete(ctx context.Context, user *models.User) error {
	if err := r.store.Delete(ctx, user); err != nil {
		return err
	}
	user.MarkPurged()
	return nil
}

func (r *userRepository) ReviewStats(ctx context.Context, ids ...uint) (map[uint]models.ReviewStats, error) {
	return reviewStats(ctx, r.db, "user_id", ids)
}
