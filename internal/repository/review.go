package repository

import (
	"context"

	"tenant-storefront/internal/model"

	"gorm.io/gorm"
)

type ReviewStats struct {
	Count   int64
	Average float64
}

type ReviewRepository interface {
	// Stats aggregates the ratings left on a product (or on a shop, keyed by its id).
	Stats(ctx context.Context, productID string) (ReviewStats, error)
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepoImpl{
		db: db,
	}
}

func (r *reviewRepoImpl) Stats(ctx context.Context, productID string) (ReviewStats, error) {
	var stats ReviewStats
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0.0) AS average").
		Where("product_id = ?", productID).
		Scan(&stats).Error

	return stats, err
}
