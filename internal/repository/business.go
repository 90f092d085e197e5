package repository

import (
	"context"

	"tenant-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BusinessRepository interface {
	Seed(ctx context.Context) error
	FindByDomain(ctx context.Context, domain string) (*model.Business, error)
	FindByUserID(ctx context.Context, userID string) (*model.Business, error)
	FindMany(ctx context.Context, businessIDs []string) ([]*model.Business, error)
	// List returns shops newest first. An empty statuses list applies no status filter.
	List(ctx context.Context, statuses []string) ([]*model.Business, error)
}

type businessRepoImpl struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepoImpl{
		db: db,
	}
}

const demoComponents = `[
	{"type":"ProfileWebsiteThemeComponent","primaryColor":"#f97316","backgroundColor":"#121418","surfaceColor":"#181b21","textColor":"#ffffff"},
	{"type":"ProfileHeroComponent","title":"Nexus Businesses","subtitle":"Innovating for the Future"}
]`

func (r *businessRepoImpl) Seed(ctx context.Context) error {
	business := model.Business{
		ID:                  "demo-shoe",
		Domain:              "shoe",
		BusinessName:        "Nexus Businesses",
		BusinessDescription: "Innovating for the Future",
		LogoURL:             "https://via.placeholder.com/150",
		Components:          demoComponents,
		Status:              "verified",
		IsVerified:          true,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&business).Error
}

func (r *businessRepoImpl) FindByDomain(ctx context.Context, domain string) (*model.Business, error) {
	var business model.Business
	err := r.db.WithContext(ctx).
		Where("domain = ?", domain).
		First(&business).Error

	if err != nil {
		return nil, notFound(err)
	}

	return &business, nil
}

func (r *businessRepoImpl) FindByUserID(ctx context.Context, userID string) (*model.Business, error) {
	var business model.Business
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		First(&business).Error

	if err != nil {
		return nil, notFound(err)
	}

	return &business, nil
}

func (r *businessRepoImpl) FindMany(ctx context.Context, businessIDs []string) ([]*model.Business, error) {
	var businesses []*model.Business
	if len(businessIDs) == 0 {
		return businesses, nil
	}

	err := r.db.WithContext(ctx).
		Where("id IN ?", businessIDs).
		Find(&businesses).
		Error

	if err != nil {
		return nil, err
	}

	return businesses, nil
}

func (r *businessRepoImpl) List(ctx context.Context, statuses []string) ([]*model.Business, error) {
	var businesses []*model.Business
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	if err := query.Find(&businesses).Error; err != nil {
		return nil, err
	}

	return businesses, nil
}
