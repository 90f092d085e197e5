package repository

import (
	"context"

	"tenant-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistRepository interface {
	Contains(ctx context.Context, userID, productID string) (bool, error)
	// Toggle adds the product when absent and removes it otherwise. It reports whether the
	// product is in the wishlist afterwards.
	Toggle(ctx context.Context, userID, productID string) (bool, error)
	ProductIDs(ctx context.Context, userID string) ([]string, error)
}

type wishlistRepoImpl struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepoImpl{
		db: db,
	}
}

func (r *wishlistRepoImpl) Contains(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Wishlist{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error

	return count > 0, err
}

func (r *wishlistRepoImpl) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	var added bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&model.Wishlist{})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		added = true
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.Wishlist{
			UserID:    userID,
			ProductID: productID,
		}).Error
	})

	return added, err
}

func (r *wishlistRepoImpl) ProductIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Wishlist{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("product_id", &ids).Error

	if err != nil {
		return nil, err
	}

	return ids, nil
}
