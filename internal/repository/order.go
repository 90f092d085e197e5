package repository

import (
	"context"

	"tenant-storefront/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.MarketOrder) error
	FindByID(ctx context.Context, orderID string) (*model.MarketOrder, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*model.MarketOrder, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.MarketOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.MarketOrder, error) {
	var order model.MarketOrder
	err := r.db.WithContext(ctx).
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, notFound(err)
	}

	return &order, nil
}

func (r *orderRepoImpl) ListByBuyer(ctx context.Context, buyerID string) ([]*model.MarketOrder, error) {
	var orders []*model.MarketOrder
	err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}
