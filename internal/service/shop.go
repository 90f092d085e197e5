package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tenant-storefront/internal/component"
	"tenant-storefront/internal/dto"
	"tenant-storefront/internal/model"
	"tenant-storefront/internal/repository"
)

const (
	relatedWindow = 20
	relatedLimit  = 5
)

type ShopService interface {
	// Landing lists the shops on the root site, split by verification.
	Landing(ctx context.Context, userID string) (*dto.LandingPage, error)
	Home(ctx context.Context, slug, query, userID string) (*dto.HomePage, error)
	ProductDetail(ctx context.Context, slug, productID, userID string) (*dto.ProductPage, error)
	Category(ctx context.Context, slug, name, userID string) (*dto.CategoryPage, error)
}

type shopServiceImpl struct {
	assembler
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	visibleStatuses []string
}

// NewShopService builds the storefront page assembler. visibleStatuses restricts which shops the
// landing page lists; an empty list shows every shop.
func NewShopService(
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	renderer *component.Renderer,
	logger *slog.Logger,
	visibleStatuses []string,
) ShopService {
	return &shopServiceImpl{
		assembler: assembler{
			businessRepo: businessRepo,
			reviewRepo:   reviewRepo,
			userRepo:     userRepo,
			renderer:     renderer,
			logger:       logger,
		},
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		visibleStatuses: visibleStatuses,
	}
}

func (s *shopServiceImpl) Landing(ctx context.Context, userID string) (*dto.LandingPage, error) {
	businesses, err := s.businessRepo.List(ctx, s.visibleStatuses)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}

	page := &dto.LandingPage{
		Page:  s.page(ctx, nil, userID),
		Total: len(businesses),
	}
	for _, b := range businesses {
		if b.IsVerified {
			page.Verified = append(page.Verified, b)
		} else {
			page.Unverified = append(page.Unverified, b)
		}
	}
	return page, nil
}

func (s *shopServiceImpl) Home(ctx context.Context, slug, query, userID string) (*dto.HomePage, error) {
	tp, err := s.loadTenant(ctx, slug)
	if err != nil {
		return nil, err
	}

	rc := s.renderContext(tp)
	page := &dto.HomePage{
		Page:           s.page(ctx, tp, userID, homeCrumb()),
		HeroHTML:       s.renderer.RenderNode(tp.tree, tp.layout.Hero, rc),
		TabsHTML:       s.renderer.RenderNode(tp.tree, tp.layout.Tabs, rc),
		ComponentsHTML: s.renderer.RenderNodes(tp.tree, tp.layout.Rest, rc),
		SearchQuery:    strings.TrimSpace(query),
		Reviews:        s.reviews(ctx, tp.business.ID),
	}

	products, err := s.productRepo.ListByBusiness(ctx, tp.business.ID, 0)
	if err != nil {
		s.logger.WarnContext(ctx, "could not list products", "tenant", slug, "error", err)
		return page, nil
	}

	page.Groups = s.groupProducts(ctx, products, page.SearchQuery)
	return page, nil
}

// groupProducts buckets cards by title-cased category name, keeping the order in which each
// category first appears.
func (s *shopServiceImpl) groupProducts(ctx context.Context, products []*model.Post, query string) []dto.CategoryGroup {
	needle := strings.ToLower(query)
	index := map[string]int{}
	var groups []dto.CategoryGroup

	for _, p := range products {
		card, _ := s.productCard(ctx, p)
		if needle != "" && !strings.Contains(strings.ToLower(card.Name), needle) {
			continue
		}

		name := groupName(card.Category)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, dto.CategoryGroup{Name: name})
		}
		groups[i].Products = append(groups[i].Products, card)
	}
	return groups
}

func (s *shopServiceImpl) ProductDetail(ctx context.Context, slug, productID, userID string) (*dto.ProductPage, error) {
	tp, err := s.loadTenant(ctx, slug)
	if err != nil {
		return nil, err
	}

	post, err := s.findProduct(ctx, tp, productID)
	if err != nil {
		return nil, err
	}

	card, data := s.productCard(ctx, post)
	card.Reviews = s.reviews(ctx, post.ID)

	detail := dto.ProductDetail{
		ProductCard:    card,
		Images:         productImages(data),
		ComponentsHTML: s.renderer.RenderList(component.ParseList(data["components"]), s.renderContext(tp)),
		Brand:          component.Str(data, "brand"),
		GTIN:           component.Str(data, "gtin"),
		MPN:            component.Str(data, "mpn", "mpi"),
		IsSwap:         isSwap(card),
		CategoryID:     post.CategoryID,
		CreatedAt:      post.CreatedAt,
	}

	return &dto.ProductPage{
		Page: s.page(ctx, tp, userID,
			homeCrumb(),
			categoryCrumb(card.Category),
			dto.Breadcrumb{Name: card.Name, URL: "/product/" + post.ID},
		),
		Product: detail,
		Related: s.related(ctx, tp, post.ID, card.Category),
	}, nil
}

// findProduct loads a listing and makes sure it belongs to the current shop.
func (s *shopServiceImpl) findProduct(ctx context.Context, tp *tenantPage, productID string) (*model.Post, error) {
	post, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("load product %s: %w", productID, err)
	}
	if post.BusinessID != tp.business.ID {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	return post, nil
}

// related picks up to relatedLimit products of the same category among the shop's most recent
// listings. Failures yield no related products.
func (s *shopServiceImpl) related(ctx context.Context, tp *tenantPage, productID, category string) []dto.ProductCard {
	recent, err := s.productRepo.ListByBusiness(ctx, tp.business.ID, relatedWindow)
	if err != nil {
		s.logger.WarnContext(ctx, "could not load related products", "product_id", productID, "error", err)
		return nil
	}

	var out []dto.ProductCard
	for _, p := range recent {
		if p.ID == productID {
			continue
		}
		card, _ := s.productCard(ctx, p)
		if card.Category != category {
			continue
		}
		card.Reviews = s.reviews(ctx, p.ID)
		out = append(out, card)
		if len(out) >= relatedLimit {
			break
		}
	}
	return out
}

func (s *shopServiceImpl) Category(ctx context.Context, slug, name, userID string) (*dto.CategoryPage, error) {
	tp, err := s.loadTenant(ctx, slug)
	if err != nil {
		return nil, err
	}

	page := &dto.CategoryPage{
		Page:         s.page(ctx, tp, userID, homeCrumb(), categoryCrumb(name)),
		CategoryName: name,
	}

	category, err := s.categoryRepo.FindByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return page, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load category %s: %w", name, err)
	}

	products, err := s.productRepo.ListByCategory(ctx, tp.business.ID, category.ID)
	if err != nil {
		return nil, fmt.Errorf("list category %s: %w", name, err)
	}

	for _, p := range products {
		card, _ := s.productCard(ctx, p)
		page.Products = append(page.Products, card)
	}
	return page, nil
}
