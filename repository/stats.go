// stats.go - Review count and average aggregates

package repository

import (
	"context"
	"fmt"
	"math"

	"go-shop-admin/models"

	"gorm.io/gorm"
)

// statsChunkSize keeps each IN list below sqlite's bound variable limit
// (999 on older builds).
const statsChunkSize = 500

type statsRow struct {
	OwnerID       uint    // product_id or user_id
	TotalReviews  int64   // Non-trashed reviews
	AverageRating float64 // Raw average, rounded later
}

// reviewStats aggregates non-trashed reviews grouped by column (product_id
// or user_id). Ids without reviews get a zero entry.
func reviewStats(ctx context.Context, db *gorm.DB, column string, ids []uint) (map[uint]models.ReviewStats, error) {
	stats := make(map[uint]models.ReviewStats, len(ids))
	if len(ids) == 0 {
		return stats, nil
	}
	for _, id := range ids {
		stats[id] = models.ReviewStats{}
	}

	for start := 0; start < len(ids); start += statsChunkSize {
		chunk := ids[start:min(start+statsChunkSize, len(ids))]

		var rows []statsRow
		err := db.WithContext(ctx).
			Model(&models.Review{}).
			Select(column+" AS owner_id, COUNT(*) AS total_reviews, AVG(rating) AS average_rating").
			Where(column+" IN ?", chunk).
			Group(column).
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate reviews by %s: %w", column, err)
		}

		for _, row := range rows {
			stats[row.OwnerID] = models.ReviewStats{
				TotalReviews:  row.TotalReviews,
				AverageRating: roundRating(row.AverageRating),
			}
		}
	}
	return stats, nil
}

func roundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}
