package repository

import (
	"context"

	"tenant-storefront/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*model.NexusUser, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

func (r *userRepoImpl) FindByID(ctx context.Context, userID string) (*model.NexusUser, error) {
	var user model.NexusUser
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error

	if err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}
