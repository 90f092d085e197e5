package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"

	"tenant-storefront/internal/component"
	"tenant-storefront/internal/model"
	"tenant-storefront/internal/repository"
)

var errBackend = errors.New("backend unavailable")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRenderer() *component.Renderer {
	return component.NewRenderer(component.MustPartials())
}

type fakeBusinessRepo struct {
	businesses   []*model.Business
	err          error
	listStatuses []string
}

func (f *fakeBusinessRepo) Seed(context.Context) error { return nil }

func (f *fakeBusinessRepo) FindByDomain(_ context.Context, domain string) (*model.Business, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.businesses {
		if b.Domain == domain {
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBusinessRepo) FindByUserID(_ context.Context, userID string) (*model.Business, error) {
	for _, b := range f.businesses {
		if b.UserID == userID {
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBusinessRepo) FindMany(_ context.Context, ids []string) ([]*model.Business, error) {
	var out []*model.Business
	for _, b := range f.businesses {
		for _, id := range ids {
			if b.ID == id {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (f *fakeBusinessRepo) List(_ context.Context, statuses []string) ([]*model.Business, error) {
	f.listStatuses = statuses
	if f.err != nil {
		return nil, f.err
	}
	return f.businesses, nil
}

type fakeProductRepo struct {
	posts   []*model.Post // newest first
	err     error
	listErr error
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*model.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductRepo) FindMany(_ context.Context, ids []string) ([]*model.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.Post
	for _, p := range f.posts {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Exists(ctx context.Context, id string) (bool, error) {
	p, err := f.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return p != nil, err
}

func (f *fakeProductRepo) ListByBusiness(_ context.Context, businessID string, limit int) ([]*model.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*model.Post
	for _, p := range f.posts {
		if p.BusinessID == businessID {
			out = append(out, p)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListByCategory(_ context.Context, businessID, categoryID string) ([]*model.Post, error) {
	var out []*model.Post
	for _, p := range f.posts {
		if p.BusinessID == businessID && p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories []*model.Category
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range f.categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeReviewRepo struct {
	stats map[string]repository.ReviewStats
	err   error
}

func (f *fakeReviewRepo) Stats(_ context.Context, id string) (repository.ReviewStats, error) {
	if f.err != nil {
		return repository.ReviewStats{}, f.err
	}
	return f.stats[id], nil
}

type fakeUserRepo struct {
	users map[string]*model.NexusUser
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.NexusUser, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type fakeOrderRepo struct {
	orders    []*model.MarketOrder
	createErr error
}

func (f *fakeOrderRepo) Create(_ context.Context, o *model.MarketOrder) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id string) (*model.MarketOrder, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrderRepo) ListByBuyer(_ context.Context, buyerID string) ([]*model.MarketOrder, error) {
	var out []*model.MarketOrder
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeWishlistRepo struct {
	items map[string][]string
	err   error
}

func (f *fakeWishlistRepo) Contains(_ context.Context, userID, productID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, id := range f.items[userID] {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWishlistRepo) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	in, err := f.Contains(ctx, userID, productID)
	if err != nil {
		return false, err
	}
	if f.items == nil {
		f.items = map[string][]string{}
	}
	if in {
		var kept []string
		for _, id := range f.items[userID] {
			if id != productID {
				kept = append(kept, id)
			}
		}
		f.items[userID] = kept
		return false, nil
	}
	f.items[userID] = append(f.items[userID], productID)
	return true, nil
}

func (f *fakeWishlistRepo) ProductIDs(_ context.Context, userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items[userID], nil
}

type fakeContactRepo struct {
	saved []*model.ContactSubmission
	err   error
}

func (f *fakeContactRepo) Create(_ context.Context, s *model.ContactSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, s)
	return nil
}

func strPtr(s string) *string { return &s }
