// product.go - Product repository

package repository

import (
	"context"

	"go-shop-admin/models"

	"gorm.io/gorm"
)

// ProductRepository defines the data operations on products.
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindWithTrashed(ctx context.Context, id uint) (*models.Product, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, product *models.Product) error
	ListTrashed(ctx context.Context) ([]models.Product, error)
	Restore(ctx context.Context, product *models.Product) error
	ForceDelete(ctx context.Context, product *models.Product) error
	ReviewStats(ctx context.Context, ids ...uint) (map[uint]models.ReviewStats, error)
}

type productRepository struct {
	store[models.Product]
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{store: newStore[models.Product](db, "product"), db: db}
}

func (r *productRepository) Restore(ctx context.Context, product *models.Product) error {
	if err := r.store.Restore(ctx, product); err != nil {
		return err
	}
	product.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (r *productRepository) ForceDelete(ctx context.Context, product *models.Product) error {
	if err := r.store.ForceDelete(ctx, product); err != nil {
		return err
	}
	product.MarkPurged()
	return nil
}

func (r *productRepository) ReviewStats(ctx context.Context, ids ...uint) (map[uint]models.ReviewStats, error) {
	return reviewStats(ctx, r.db, "product_id", ids)
}
