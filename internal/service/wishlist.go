package service

import (
	"context"
	"fmt"
	"log/slog"

	"tenant-storefront/internal/repository"
)

type WishlistService interface {
	// Toggle flips the product's membership in the user's wishlist and reports whether it is now
	// in the list.
	Toggle(ctx context.Context, userID, productID string) (bool, error)
	// Contains never fails; backend errors read as "not in wishlist".
	Contains(ctx context.Context, userID, productID string) bool
}

type wishlistServiceImpl struct {
	productRepo  repository.ProductRepository
	wishlistRepo repository.WishlistRepository
	logger       *slog.Logger
}

func NewWishlistService(
	productRepo repository.ProductRepository,
	wishlistRepo repository.WishlistRepository,
	logger *slog.Logger,
) WishlistService {
	return &wishlistServiceImpl{
		productRepo:  productRepo,
		wishlistRepo: wishlistRepo,
		logger:       logger,
	}
}

func (s *wishlistServiceImpl) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("check product %s: %w", productID, err)
	}
	if !exists {
		return false, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	added, err := s.wishlistRepo.Toggle(ctx, userID, productID)
	if err != nil {
		return false, fmt.Errorf("toggle wishlist: %w", err)
	}
	return added, nil
}

func (s *wishlistServiceImpl) Contains(ctx context.Context, userID, productID string) bool {
	if userID == "" {
		return false
	}
	in, err := s.wishlistRepo.Contains(ctx, userID, productID)
	if err != nil {
		s.logger.WarnContext(ctx, "wishlist status check failed", "user_id", userID, "product_id", productID, "error", err)
		return false
	}
	return in
}
