// seed.go - Demo data for local development

package database

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"go-shop-admin/auth"
	"go-shop-admin/models"

	"gorm.io/gorm"
)

const (
	seedUsers          = 10
	seedProducts       = 20
	seedReviewsPerUser = 5
)

var (
	seedAdjectives = []string{"Compact", "Wireless", "Ergonomic", "Portable", "Smart", "Pro", "Classic", "Ultra"}
	seedNouns      = []string{"Laptop", "Keyboard", "Mouse", "Monitor", "Headset", "Speaker", "Webcam", "Charger", "Router", "Tablet"}
	seedComments   = []string{"Does the job.", "Would buy again.", "Not worth the price.", "Exceeded expectations.", "Arrived damaged."}
)

// Seed fills an empty database with demo data: an admin, regular users,
// products and reviews. It refuses to run when users already exist.
func Seed(db *gorm.DB, seed uint64, log *slog.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("database already has %d users, refusing to seed", count)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	return db.Transaction(func(tx *gorm.DB) error {
		admin, err := seedUser(tx, "Admin", "admin@example.com", "admin123", true)
		if err != nil {
			return err
		}

		users := make([]models.User, 0, seedUsers)
		for i := 1; i <= seedUsers; i++ {
			u, err := seedUser(tx, fmt.Sprintf("User %d", i), fmt.Sprintf("user%d@example.com", i), "password", false)
			if err != nil {
				return err
			}
			users = append(users, *u)
		}

		products := make([]models.Product, 0, seedProducts)
		for i := 0; i < seedProducts; i++ {
			description := fmt.Sprintf("Demo product #%d", i+1)
			products = append(products, models.Product{
				Name:        seedAdjectives[rng.IntN(len(seedAdjectives))] + " " + seedNouns[rng.IntN(len(seedNouns))],
				Description: &description,
				Price:       float64(rng.IntN(500000)) / 100,
			})
		}
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		var reviews []models.Review
		for _, u := range users {
			for _, idx := range rng.Perm(len(products))[:seedReviewsPerUser] {
				comment := seedComments[rng.IntN(len(seedComments))]
				reviews = append(reviews, models.Review{
					UserID:    u.ID,
					ProductID: products[idx].ID,
					Rating:    rng.IntN(5) + 1,
					Comment:   &comment,
				})
			}
		}
		if err := tx.Omit("User", "Product").Create(&reviews).Error; err != nil {
			return fmt.Errorf("failed to seed reviews: %w", err)
		}

		if _, err := seedUser(tx, "Test User", "test@example.com", "password", false); err != nil {
			return err
		}

		log.Info("database seeded",
			"admin", admin.Email,
			"users", len(users)+1,
			"products", len(products),
			"reviews", len(reviews))
		return nil
	})
}

func seedUser(tx *gorm.DB, name, email, password string, isAdmin bool) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Name: name, Email: email, Password: hash, IsAdmin: isAdmin}
	if err := tx.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to seed user %s: %w", email, err)
	}
	return user, nil
}
