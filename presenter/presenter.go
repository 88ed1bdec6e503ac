// presenter.go - Shapes entities into JSON response bodies

// Package presenter shapes persisted entities into JSON response bodies.
// Presenters only read the entities they are given.
package presenter

import (
	"time"

	"go-shop-admin/models"
)

type Stats struct {
	TotalReviews  int64   `json:"totalReviews"`  // Count of non-trashed reviews
	AverageRating float64 `json:"averageRating"` // Rounded to 2 decimals, 0 without reviews
}

type ProductBody struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Price       float64    `json:"price"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"` // Only set on trashed products
}

type ProductWithStats struct {
	Product ProductBody `json:"product"`
	Stats   Stats       `json:"stats"`
}

type UserBody struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type UserWithStats struct {
	User  UserBody `json:"user"`
	Stats Stats    `json:"stats"`
}

type ReviewBody struct {
	ID        uint       `json:"id"`
	Rating    int        `json:"rating"`
	Comment   *string    `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type ReviewUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReviewProduct struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ReviewWithRelations is the read shape of a review.
type ReviewWithRelations struct {
	Review  ReviewBody    `json:"review"`
	User    ReviewUser    `json:"user"`
	Product ReviewProduct `json:"product"`
}

// ReviewSummary is the write shape returned by create and update.
type ReviewSummary struct {
	ID        uint    `json:"id"`
	UserID    uint    `json:"user_id"`
	ProductID uint    `json:"product_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
}

func Product(p *models.Product) ProductBody {
	return ProductBody{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		DeletedAt:   deletedAt(p.Status(), p.DeletedAt.Time),
	}
}

func ProductStats(p *models.Product, stats models.ReviewStats) ProductWithStats {
	return ProductWithStats{Product: Product(p), Stats: statsOf(stats)}
}

func Products(products []models.Product) []ProductBody {
	out := make([]ProductBody, 0, len(products))
	for i := range products {
		out = append(out, Product(&products[i]))
	}
	return out
}

func ProductsWithStats(products []models.Product, stats map[uint]models.ReviewStats) []ProductWithStats {
	out := make([]ProductWithStats, 0, len(products))
	for i := range products {
		out = append(out, ProductStats(&products[i], stats[products[i].ID]))
	}
	return out
}

func User(u *models.User) UserBody {
	return UserBody{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}

func UserStats(u *models.User, stats models.ReviewStats) UserWithStats {
	return UserWithStats{User: User(u), Stats: statsOf(stats)}
}

func UsersWithStats(users []models.User, stats map[uint]models.ReviewStats) []UserWithStats {
	out := make([]UserWithStats, 0, len(users))
	for i := range users {
		out = append(out, UserStats(&users[i], stats[users[i].ID]))
	}
	return out
}

func Review(r *models.Review) ReviewWithRelations {
	return ReviewWithRelations{
		Review: ReviewBody{
			ID:        r.ID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			DeletedAt: deletedAt(r.Status(), r.DeletedAt.Time),
		},
		User: ReviewUser{
			ID:    r.User.ID,
			Name:  r.User.Name,
			Email: r.User.Email,
		},
		Product: ReviewProduct{
			ID:    r.Product.ID,
			Name:  r.Product.Name,
			Price: r.Product.Price,
		},
	}
}

func Reviews(reviews []models.Review) []ReviewWithRelations {
	out := make([]ReviewWithRelations, 0, len(reviews))
	for i := range reviews {
		out = append(out, Review(&reviews[i]))
	}
	return out
}

func ReviewSummaryOf(r *models.Review) ReviewSummary {
	return ReviewSummary{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func statsOf(stats models.ReviewStats) Stats {
	return Stats{TotalReviews: stats.TotalReviews, AverageRating: stats.AverageRating}
}

func deletedAt(status models.Status, at time.Time) *time.Time {
	if status != models.StatusSoftDeleted {
		return nil
	}
	return &at
}
