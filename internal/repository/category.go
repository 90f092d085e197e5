package repository

import (
	"context"

	"tenant-storefront/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	// FindByName matches the category name case-insensitively.
	FindByName(ctx context.Context, name string) (*model.Category, error)
}

type categoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepoImpl{
		db: db,
	}
}

func (r *categoryRepoImpl) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&category).Error

	if err != nil {
		return nil, notFound(err)
	}

	return &category, nil
}
