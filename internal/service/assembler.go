package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"tenant-storefront/internal/component"
	"tenant-storefront/internal/dto"
	"tenant-storefront/internal/model"
	"tenant-storefront/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

const (
	fallbackCurrency = "UGX"
	fallbackCategory = "General"
	untitledProduct  = "Untitled"
)

var validCurrencies = map[string]bool{
	"UGX": true, "USD": true, "EUR": true, "GBP": true, "KES": true,
	"TZS": true, "RWF": true, "BDI": true, "ZAR": true, "NGN": true,
	"EGP": true, "MAD": true, "GHS": true, "ZWL": true, "ZMW": true,
	"ETB": true, "AED": true, "INR": true, "PKR": true,
}

// assembler holds the lookups shared by every page: the tenant, its component tree and theme,
// and the shaping of product records into cards.
type assembler struct {
	businessRepo repository.BusinessRepository
	reviewRepo   repository.ReviewRepository
	userRepo     repository.UserRepository
	renderer     *component.Renderer
	logger       *slog.Logger
}

// tenantPage is a resolved shop with its component tree already built.
type tenantPage struct {
	business *model.Business
	tree     *component.Tree
	layout   component.Layout
	theme    component.Theme
}

func (a *assembler) loadTenant(ctx context.Context, slug string) (*tenantPage, error) {
	if slug == "" {
		return nil, ErrTenantNotFound
	}

	business, err := a.businessRepo.FindByDomain(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrTenantNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("load tenant %s: %w", slug, err)
	}

	tree := component.BuildFrom(business.Components)
	if tree.Dropped > 0 {
		a.logger.WarnContext(ctx, "components nested too deep were dropped",
			"tenant", slug, "dropped", tree.Dropped)
	}

	page := &tenantPage{
		business: business,
		tree:     tree,
		layout:   tree.Split(),
		theme:    tree.Theme(),
	}
	return page, nil
}

func (a *assembler) renderContext(tp *tenantPage) component.Context {
	return component.Context{"Business": tp.business}
}

func (a *assembler) page(ctx context.Context, tp *tenantPage, userID string, crumbs ...dto.Breadcrumb) dto.Page {
	p := dto.Page{
		Theme:       component.DefaultTheme(),
		Breadcrumbs: crumbs,
		Viewer:      a.viewer(ctx, userID),
	}
	if tp != nil {
		p.Business = tp.business
		p.Theme = tp.theme
	}
	return p
}

// viewer loads the signed-in user for the page header. Failures leave the header anonymous.
func (a *assembler) viewer(ctx context.Context, userID string) *model.NexusUser {
	if userID == "" {
		return nil
	}
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			a.logger.WarnContext(ctx, "could not load viewer", "user_id", userID, "error", err)
		}
		return nil
	}
	return user
}

// reviews aggregates ratings for id, degrading to zero on backend errors.
func (a *assembler) reviews(ctx context.Context, id string) dto.ReviewSummary {
	stats, err := a.reviewRepo.Stats(ctx, id)
	if err != nil {
		a.logger.WarnContext(ctx, "could not aggregate reviews", "id", id, "error", err)
		return dto.ReviewSummary{}
	}
	return dto.ReviewSummary{Count: stats.Count, Average: stats.Average}
}

func (a *assembler) currency(ctx context.Context, raw string) string {
	code, ok := validateCurrency(raw)
	if !ok {
		a.logger.WarnContext(ctx, "invalid currency code", "currency", raw, "fallback", code)
	}
	return code
}

// validateCurrency upper-cases raw and checks it against the supported codes. ok is false only
// when a non-empty code was rejected.
func validateCurrency(raw string) (code string, ok bool) {
	clean := strings.ToUpper(strings.TrimSpace(raw))
	if clean == "" {
		return fallbackCurrency, true
	}
	if validCurrencies[clean] {
		return clean, true
	}
	return fallbackCurrency, false
}

// productCard shapes a stored listing. The currency is validated.
func (a *assembler) productCard(ctx context.Context, post *model.Post) (dto.ProductCard, component.Record) {
	data := component.ParseRecord(post.Data)
	price, _ := component.Number(data, "productPrice", "price")
	return dto.ProductCard{
		ID:          post.ID,
		Name:        productName(data),
		Description: component.Str(data, "textContent", "description"),
		Price:       price,
		Currency:    a.currency(ctx, component.Str(data, "productCurrency", "currency")),
		ImageURL:    displayImage(data),
		VideoURL:    component.Str(data, "videoUrl"),
		Category:    categoryName(post, data),
	}, data
}

func productName(data component.Record) string {
	if name := component.Str(data, "productName", "name", "title"); name != "" {
		return name
	}
	return untitledProduct
}

// displayImage picks the first gallery image, then the thumbnail, then the plain image field.
func displayImage(data component.Record) string {
	if images := component.List(data, "images"); len(images) > 0 {
		if u := component.URLOf(images[0]); u != "" {
			return u
		}
	}
	return component.Str(data, "thumbnailUrl", "imageUrl")
}

func productImages(data component.Record) []string {
	var out []string
	for _, item := range component.List(data, "images") {
		if u := component.URLOf(item); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// categoryName prefers the linked category row over the name embedded in the payload.
func categoryName(post *model.Post, data component.Record) string {
	if post.Category != nil && post.Category.Name != "" {
		return post.Category.Name
	}
	if cat, ok := data["category"].(map[string]any); ok {
		if name := component.Str(cat, "name"); name != "" {
			return name
		}
	}
	return fallbackCategory
}

func groupName(category string) string {
	return titleCase(strings.ToLower(strings.TrimSpace(category)))
}

// Casers are stateful, so each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

func homeCrumb() dto.Breadcrumb {
	return dto.Breadcrumb{Name: "Home", URL: "/"}
}

func categoryCrumb(name string) dto.Breadcrumb {
	return dto.Breadcrumb{Name: name, URL: "/category/" + url.PathEscape(name)}
}

func isSwap(card dto.ProductCard) bool {
	name := strings.ToLower(card.Name)
	return card.Price.Equal(decimal.Zero) || strings.Contains(name, "swap") || strings.Contains(name, "trade")
}
