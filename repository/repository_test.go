// repository_test.go - Tests for the repositories against sqlite

package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"go-shop-admin/config"
	"go-shop-admin/database"
	"go-shop-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(&config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "error",
	})
	require.NoError(t, err)
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "User " + email, Email: email, Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestProductSoftDeleteLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(setupTestDB(t))

	product := &models.Product{Name: "New Laptop", Price: 299999}
	require.NoError(t, repo.Create(ctx, product))
	require.NotZero(t, product.ID)

	// Active -> SoftDeleted
	require.NoError(t, repo.Delete(ctx, product))

	_, err := repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	trashed, err := repo.ListTrashed(ctx)
	require.NoError(t, err)
	require.Len(t, trashed, 1)
	assert.Equal(t, models.StatusSoftDeleted, trashed[0].Status())

	// SoftDeleted -> Active
	found, err := repo.FindWithTrashed(ctx, product.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Restore(ctx, found))
	assert.Equal(t, models.StatusActive, found.Status())

	restored, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Laptop", restored.Name)
	trashed, err = repo.ListTrashed(ctx)
	require.NoError(t, err)
	assert.Empty(t, trashed)

	// Active -> Purged
	require.NoError(t, repo.ForceDelete(ctx, restored))
	assert.Equal(t, models.StatusPurged, restored.Status())

	_, err = repo.FindWithTrashed(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductUpdateKeepsUntouchedColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(setupTestDB(t))

	description := "Gaming laptop"
	product := &models.Product{Name: "New Laptop", Description: &description, Price: 299999}
	require.NoError(t, repo.Create(ctx, product))

	loaded, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	loaded.Price = 399999
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 399999.0, reloaded.Price)
	assert.Equal(t, "New Laptop", reloaded.Name)
	require.NotNil(t, reloaded.Description)
	assert.Equal(t, "Gaming laptop", *reloaded.Description)
}

func TestUpdateAfterConcurrentDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("purged product stays purged", func(t *testing.T) {
		repo := NewProductRepository(setupTestDB(t))
		product := &models.Product{Name: "Keyboard", Price: 50}
		require.NoError(t, repo.Create(ctx, product))

		loaded, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		other, err := repo.FindWithTrashed(ctx, product.ID)
		require.NoError(t, err)
		require.NoError(t, repo.ForceDelete(ctx, other))

		loaded.Name = "Renamed"
		assert.ErrorIs(t, repo.Update(ctx, loaded), ErrNotFound)
		_, err = repo.FindWithTrashed(ctx, product.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("trashed product stays trashed", func(t *testing.T) {
		repo := NewProductRepository(setupTestDB(t))
		product := &models.Product{Name: "Keyboard", Price: 50}
		require.NoError(t, repo.Create(ctx, product))

		loaded, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		other, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, other))

		loaded.Price = 60
		assert.ErrorIs(t, repo.Update(ctx, loaded), ErrNotFound)

		_, err = repo.FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		stored, err := repo.FindWithTrashed(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusSoftDeleted, stored.Status())
		assert.Equal(t, 50.0, stored.Price)
	})

	t.Run("trashed review stays trashed", func(t *testing.T) {
		db := setupTestDB(t)
		products := NewProductRepository(db)
		reviews := NewReviewRepository(db)
		user := createUser(t, db, "ann@test.com")
		product := &models.Product{Name: "Laptop", Price: 1000}
		require.NoError(t, products.Create(ctx, product))
		review := &models.Review{UserID: user.ID, ProductID: product.ID, Rating: 4}
		require.NoError(t, reviews.Create(ctx, review))

		loaded, err := reviews.FindByID(ctx, review.ID)
		require.NoError(t, err)
		other, err := reviews.FindByID(ctx, review.ID)
		require.NoError(t, err)
		require.NoError(t, reviews.Delete(ctx, other))

		loaded.Rating = 1
		assert.ErrorIs(t, reviews.Update(ctx, loaded), ErrNotFound)
		_, err = reviews.FindByID(ctx, review.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deleted user is not recreated", func(t *testing.T) {
		db := setupTestDB(t)
		users := NewUserRepository(db)
		user := createUser(t, db, "ann@test.com")

		loaded, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		other, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NoError(t, users.Delete(ctx, other))

		loaded.Name = "Ann Again"
		assert.ErrorIs(t, users.Update(ctx, loaded), ErrNotFound)
		_, err = users.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProductExistsIgnoresTrashed(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(setupTestDB(t))

	product := &models.Product{Name: "Mouse", Price: 10}
	require.NoError(t, repo.Create(ctx, product))

	ok, err := repo.Exists(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, product))
	ok, err = repo.Exists(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReviewStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	products := NewProductRepository(db)
	users := NewUserRepository(db)
	reviews := NewReviewRepository(db)

	ann := createUser(t, db, "ann@test.com")
	bob := createUser(t, db, "bob@test.com")
	reviewed := &models.Product{Name: "Laptop", Price: 1000}
	unreviewed := &models.Product{Name: "Mouse", Price: 10}
	require.NoError(t, products.Create(ctx, reviewed))
	require.NoError(t, products.Create(ctx, unreviewed))

	require.NoError(t, reviews.Create(ctx, &models.Review{UserID: ann.ID, ProductID: reviewed.ID, Rating: 4}))
	require.NoError(t, reviews.Create(ctx, &models.Review{UserID: bob.ID, ProductID: reviewed.ID, Rating: 5}))
	trashed := &models.Review{UserID: bob.ID, ProductID: reviewed.ID, Rating: 1}
	require.NoError(t, reviews.Create(ctx, trashed))
	require.NoError(t, reviews.Delete(ctx, trashed))

	stats, err := products.ReviewStats(ctx, reviewed.ID, unreviewed.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStats{TotalReviews: 2, AverageRating: 4.5}, stats[reviewed.ID])
	assert.Equal(t, models.ReviewStats{}, stats[unreviewed.ID])

	byUser, err := users.ReviewStats(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStats{TotalReviews: 1, AverageRating: 5}, byUser[bob.ID])
}

func TestReviewStatsAcrossChunks(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	products := NewProductRepository(db)
	reviews := NewReviewRepository(db)
	user := createUser(t, db, "ann@test.com")

	catalog := make([]models.Product, 2*statsChunkSize+1)
	for i := range catalog {
		catalog[i] = models.Product{Name: fmt.Sprintf("Product %d", i), Price: 1}
	}
	require.NoError(t, db.CreateInBatches(&catalog, 100).Error)

	ids := make([]uint, len(catalog))
	for i, p := range catalog {
		ids[i] = p.ID
	}
	first, last := catalog[0], catalog[len(catalog)-1]
	require.NoError(t, reviews.Create(ctx, &models.Review{UserID: user.ID, ProductID: first.ID, Rating: 2}))
	require.NoError(t, reviews.Create(ctx, &models.Review{UserID: user.ID, ProductID: last.ID, Rating: 5}))

	stats, err := products.ReviewStats(ctx, ids...)
	require.NoError(t, err)
	assert.Len(t, stats, len(ids))
	assert.Equal(t, models.ReviewStats{TotalReviews: 1, AverageRating: 2}, stats[first.ID])
	assert.Equal(t, models.ReviewStats{TotalReviews: 1, AverageRating: 5}, stats[last.ID])
	assert.Equal(t, models.ReviewStats{}, stats[catalog[statsChunkSize].ID])
}

func TestReviewStatsRounding(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	products := NewProductRepository(db)
	reviews := NewReviewRepository(db)

	user := createUser(t, db, "ann@test.com")
	product := &models.Product{Name: "Laptop", Price: 1000}
	require.NoError(t, products.Create(ctx, product))
	for _, rating := range []int{5, 5, 4} {
		require.NoError(t, reviews.Create(ctx, &models.Review{UserID: user.ID, ProductID: product.ID, Rating: rating}))
	}

	stats, err := products.ReviewStats(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.67, stats[product.ID].AverageRating)
}

func TestReviewLoadsRelations(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	products := NewProductRepository(db)
	reviews := NewReviewRepository(db)

	user := createUser(t, db, "ann@test.com")
	product := &models.Product{Name: "Laptop", Price: 1000}
	require.NoError(t, products.Create(ctx, product))

	review := &models.Review{UserID: user.ID, ProductID: product.ID, Rating: 3}
	require.NoError(t, reviews.Create(ctx, review))
	assert.Equal(t, "ann@test.com", review.User.Email)
	assert.Equal(t, "Laptop", review.Product.Name)

	// A trashed product still shows up on its reviews
	require.NoError(t, products.Delete(ctx, product))
	loaded, err := reviews.FindByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", loaded.Product.Name)

	listed, err := reviews.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, user.ID, listed[0].User.ID)
}

func TestReviewSoftDeleteLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	products := NewProductRepository(db)
	reviews := NewReviewRepository(db)

	user := createUser(t, db, "ann@test.com")
	product := &models.Product{Name: "Laptop", Price: 1000}
	require.NoError(t, products.Create(ctx, product))
	review := &models.Review{UserID: user.ID, ProductID: product.ID, Rating: 3}
	require.NoError(t, reviews.Create(ctx, review))

	require.NoError(t, reviews.Delete(ctx, review))
	_, err := reviews.FindByID(ctx, review.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	trashed, err := reviews.ListTrashed(ctx)
	require.NoError(t, err)
	require.Len(t, trashed, 1)
	assert.Equal(t, "Laptop", trashed[0].Product.Name)

	found, err := reviews.FindWithTrashed(ctx, review.ID)
	require.NoError(t, err)
	require.NoError(t, reviews.Restore(ctx, found))
	_, err = reviews.FindByID(ctx, review.ID)
	assert.NoError(t, err)

	require.NoError(t, reviews.ForceDelete(ctx, found))
	_, err = reviews.FindWithTrashed(ctx, review.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepository(db)

	ann := &models.User{Name: "Ann", Email: "Ann@Test.com", Password: "hash"}
	require.NoError(t, users.Create(ctx, ann))

	found, err := users.FindByEmail(ctx, "ann@test.com")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, found.ID)

	taken, err := users.EmailTaken(ctx, "ann@test.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = users.EmailTaken(ctx, "ann@test.com", ann.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, users.Delete(ctx, ann))
	assert.Equal(t, models.StatusPurged, ann.Status())
	_, err = users.FindByID(ctx, ann.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = users.FindByEmail(ctx, "ann@test.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
