package service

import (
	"context"
	"errors"
	"log/slog"

	"tenant-storefront/internal/component"
	"tenant-storefront/internal/dto"
	"tenant-storefront/internal/model"
	"tenant-storefront/internal/repository"
)

const (
	fallbackUserName     = "Nexus User"
	fallbackBusinessName = "Official Store"
	untitledOrderProduct = "Untitled Product"
)

type ProfileService interface {
	// Profile assembles the signed-in user's account page. slug may be empty on the root site.
	Profile(ctx context.Context, slug, userID string) (*dto.ProfilePage, error)
}

type profileServiceImpl struct {
	assembler
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	wishlistRepo repository.WishlistRepository
}

func NewProfileService(
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	wishlistRepo repository.WishlistRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) ProfileService {
	return &profileServiceImpl{
		assembler: assembler{
			businessRepo: businessRepo,
			userRepo:     userRepo,
			logger:       logger,
		},
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		wishlistRepo: wishlistRepo,
	}
}

func (s *profileServiceImpl) Profile(ctx context.Context, slug, userID string) (*dto.ProfilePage, error) {
	viewer := s.viewer(ctx, userID)
	page := &dto.ProfilePage{
		Page: dto.Page{
			Theme:       component.DefaultTheme(),
			Breadcrumbs: []dto.Breadcrumb{homeCrumb(), {Name: "Profile", URL: "/profile"}},
			Viewer:      viewer,
		},
		User: profileUser(userID, viewer),
	}

	s.brand(ctx, page, slug, userID)
	page.Orders = s.orders(ctx, userID)
	page.Wishes = s.wishes(ctx, userID)
	return page, nil
}

func profileUser(userID string, user *model.NexusUser) dto.ProfileUser {
	if user == nil {
		return dto.ProfileUser{ID: userID, Name: fallbackUserName}
	}
	profile := dto.ProfileUser{ID: user.ID, Name: user.Name, Email: user.Email, AvatarURL: user.AvatarURL}
	if profile.Name == "" {
		profile.Name = fallbackUserName
	}
	return profile
}

// brand paints the page with the current shop's theme, or with the theme of the shop the user
// owns, or leaves the default.
func (s *profileServiceImpl) brand(ctx context.Context, page *dto.ProfilePage, slug, userID string) {
	if slug != "" {
		tp, err := s.loadTenant(ctx, slug)
		if err == nil {
			page.Business = tp.business
			if !tp.theme.IsDefault {
				page.Theme = tp.theme
				return
			}
		} else if !errors.Is(err, ErrTenantNotFound) {
			s.logger.WarnContext(ctx, "could not load shop for profile", "tenant", slug, "error", err)
		}
	}

	owned, err := s.businessRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.WarnContext(ctx, "could not load user's shop", "user_id", userID, "error", err)
		}
		return
	}

	if theme := component.BuildFrom(owned.Components).Theme(); !theme.IsDefault {
		page.Theme = theme
		if page.Business == nil {
			page.Business = owned
		}
	}
}

// orders lists the user's orders newest first, each with its product and shop summary.
func (s *profileServiceImpl) orders(ctx context.Context, userID string) []dto.ProfileOrder {
	orders, err := s.orderRepo.ListByBuyer(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "could not list orders", "user_id", userID, "error", err)
		return nil
	}
	if len(orders) == 0 {
		return nil
	}

	var productIDs, businessIDs []string
	for _, o := range orders {
		productIDs = appendUnique(productIDs, o.ProductID)
		businessIDs = appendUnique(businessIDs, o.BusinessID)
	}

	products := map[string]component.Record{}
	if posts, err := s.productRepo.FindMany(ctx, productIDs); err != nil {
		s.logger.WarnContext(ctx, "could not hydrate ordered products", "user_id", userID, "error", err)
	} else {
		for _, p := range posts {
			products[p.ID] = component.ParseRecord(p.Data)
		}
	}

	businesses := map[string]*model.Business{}
	if list, err := s.businessRepo.FindMany(ctx, businessIDs); err != nil {
		s.logger.WarnContext(ctx, "could not hydrate order shops", "user_id", userID, "error", err)
	} else {
		for _, b := range list {
			businesses[b.ID] = b
		}
	}

	out := make([]dto.ProfileOrder, 0, len(orders))
	for _, o := range orders {
		row := dto.ProfileOrder{
			MarketOrder:     o,
			ProductName:     untitledOrderProduct,
			ProductCurrency: fallbackCurrency,
			BusinessName:    fallbackBusinessName,
		}
		if data, ok := products[o.ProductID]; ok {
			if name := component.Str(data, "productName"); name != "" {
				row.ProductName = name
			}
			row.ProductImage = component.Str(data, "thumbnailUrl", "imageUrl")
			row.ProductCurrency = s.currency(ctx, component.Str(data, "productCurrency"))
		}
		if b, ok := businesses[o.BusinessID]; ok {
			if b.BusinessName != "" {
				row.BusinessName = b.BusinessName
			}
			row.BusinessLogo = b.LogoURL
		}
		out = append(out, row)
	}
	return out
}

func (s *profileServiceImpl) wishes(ctx context.Context, userID string) []dto.ProductCard {
	ids, err := s.wishlistRepo.ProductIDs(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "could not list wishlist", "user_id", userID, "error", err)
		return nil
	}
	if len(ids) == 0 {
		return nil
	}

	posts, err := s.productRepo.FindMany(ctx, ids)
	if err != nil {
		s.logger.WarnContext(ctx, "could not hydrate wishlist", "user_id", userID, "error", err)
		return nil
	}

	out := make([]dto.ProductCard, 0, len(posts))
	for _, p := range posts {
		card, _ := s.productCard(ctx, p)
		out = append(out, card)
	}
	return out
}

func appendUnique(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
