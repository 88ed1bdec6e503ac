// review.go - Review repository, always loads user and product

package repository

import (
	"context"

	"go-shop-admin/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the data operations on reviews. Every read
// loads the reviewing user and the reviewed product, trashed or not.
type ReviewRepository interface {
	List(ctx context.Context) ([]models.Review, error)
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	FindWithTrashed(ctx context.Context, id uint) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, review *models.Review) error
	ListTrashed(ctx context.Context) ([]models.Review, error)
	Restore(ctx context.Context, review *models.Review) error
	ForceDelete(ctx context.Context, review *models.Review) error
}

type reviewRepository struct {
	store[models.Review]
}

// NewReviewRepository creates a new ReviewRepository instance.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{store: newStore[models.Review](db, "review", withReviewRelations)}
}

func withReviewRelations(db *gorm.DB) *gorm.DB {
	unscoped := func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }
	return db.Preload("User").Preload("Product", unscoped)
}

// Create inserts the review and loads its relations for presentation.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.store.Create(ctx, review); err != nil {
		return err
	}
	return r.reload(ctx, review)
}

// Update saves the review and reloads relations, since user_id or
// product_id may have changed.
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	if err := r.store.Update(ctx, review); err != nil {
		return err
	}
	return r.reload(ctx, review)
}

func (r *reviewRepository) Restore(ctx context.Context, review *models.Review) error {
	if err := r.store.Restore(ctx, review); err != nil {
		return err
	}
	review.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (r *reviewRepository) ForceDelete(ctx context.Context, review *models.Review) error {
	if err := r.store.ForceDelete(ctx, review); err != nil {
		return err
	}
	review.MarkPurged()
	return nil
}

func (r *reviewRepository) reload(ctx context.Context, review *models.Review) error {
	fresh, err := r.FindWithTrashed(ctx, review.ID)
	if err != nil {
		return err
	}
	*review = *fresh
	return nil
}
