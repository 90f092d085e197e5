package repository

import (
	"context"

	"tenant-storefront/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, submission *model.ContactSubmission) error
}

type contactRepoImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepoImpl{
		db: db,
	}
}

func (r *contactRepoImpl) Create(ctx context.Context, submission *model.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}
