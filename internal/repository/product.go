package repository

import (
	"context"

	"tenant-storefront/internal/model"

	"gorm.io/gorm"
)

// ProductRepository reads product listings, which live in the posts table.
type ProductRepository interface {
	FindByID(ctx context.Context, productID string) (*model.Post, error)
	FindMany(ctx context.Context, productIDs []string) ([]*model.Post, error)
	Exists(ctx context.Context, productID string) (bool, error)
	// ListByBusiness returns the shop's products newest first. limit <= 0 means no limit.
	ListByBusiness(ctx context.Context, businessID string, limit int) ([]*model.Post, error)
	ListByCategory(ctx context.Context, businessID, categoryID string) ([]*model.Post, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Post, error) {
	var product model.Post
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, notFound(err)
	}

	return &product, nil
}

func (r *productRepoImpl) FindMany(ctx context.Context, productIDs []string) ([]*model.Post, error) {
	var products []*model.Post
	if len(productIDs) == 0 {
		return products, nil
	}

	err := r.db.WithContext(ctx).
		Where("id IN ?", productIDs).
		Order("created_at DESC").
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Exists(ctx context.Context, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", productID).
		Count(&count).Error

	return count > 0, err
}

func (r *productRepoImpl) ListByBusiness(ctx context.Context, businessID string, limit int) ([]*model.Post, error) {
	var products []*model.Post
	query := r.db.WithContext(ctx).
		Preload("Category").
		Where("business_id = ?", businessID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) ListByCategory(ctx context.Context, businessID, categoryID string) ([]*model.Post, error) {
	var products []*model.Post
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND category_id = ?", businessID, categoryID).
		Order("created_at DESC").
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
