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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const minPhoneLength = 10

type OrderService interface {
	OrderForm(ctx context.Context, slug, productID, userID string) (*dto.OrderFormPage, error)
	// PlaceOrder validates and stores a buyer's offer. Validation and storage problems are
	// reported on the returned page, not as errors.
	PlaceOrder(ctx context.Context, slug, productID, userID string, form dto.OrderForm) (*dto.OrderFormPage, error)
	Confirmation(ctx context.Context, slug, orderID, userID string) (*dto.ConfirmationPage, error)
}

type orderServiceImpl struct {
	shop      *shopServiceImpl
	orderRepo repository.OrderRepository
}

func NewOrderService(
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	renderer *component.Renderer,
	logger *slog.Logger,
) OrderService {
	return &orderServiceImpl{
		shop: &shopServiceImpl{
			assembler: assembler{
				businessRepo: businessRepo,
				reviewRepo:   reviewRepo,
				userRepo:     userRepo,
				renderer:     renderer,
				logger:       logger,
			},
			productRepo: productRepo,
		},
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) OrderForm(ctx context.Context, slug, productID, userID string) (*dto.OrderFormPage, error) {
	page, _, err := s.formPage(ctx, slug, productID, userID)
	return page, err
}

func (s *orderServiceImpl) formPage(ctx context.Context, slug, productID, userID string) (*dto.OrderFormPage, *model.Post, error) {
	tp, err := s.shop.loadTenant(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	post, err := s.shop.findProduct(ctx, tp, productID)
	if err != nil {
		return nil, nil, err
	}

	card, _ := s.shop.productCard(ctx, post)
	return &dto.OrderFormPage{
		Page: s.shop.page(ctx, tp, userID,
			homeCrumb(),
			dto.Breadcrumb{Name: card.Name, URL: "/product/" + post.ID},
			dto.Breadcrumb{Name: "Order", URL: "/product/" + post.ID + "/order"},
		),
		Product: card,
	}, post, nil
}

func (s *orderServiceImpl) PlaceOrder(ctx context.Context, slug, productID, userID string, form dto.OrderForm) (*dto.OrderFormPage, error) {
	page, post, err := s.formPage(ctx, slug, productID, userID)
	if err != nil {
		return nil, err
	}

	if userID == "" {
		page.Error = "Please log in to place an order"
		return page, nil
	}

	form = trimForm(form)
	price, errs := validateOrder(form, page.Product.Price)
	if len(errs) > 0 {
		page.Errors = errs
		page.Form = form
		return page, nil
	}

	order := &model.MarketOrder{
		ID:            uuid.NewString(),
		ProductID:     post.ID,
		BusinessID:    post.BusinessID,
		CategoryID:    post.CategoryID,
		BuyerID:       userID,
		OrderType:     model.OrderType(form.OrderType),
		OfferPrice:    price,
		BuyerPhone:    form.Phone,
		BuyerAddress:  form.Address,
		Note:          form.Note,
		Status:        model.OrderStatusPending,
		PaymentMethod: model.PaymentMethodCash,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.shop.logger.ErrorContext(ctx, "could not create order",
			"user_id", userID, "product_id", post.ID, "error", err)
		page.Error = "Unable to place order. Please try again."
		page.Form = form
		return page, nil
	}

	s.shop.logger.InfoContext(ctx, "order created",
		"order_id", order.ID, "user_id", userID, "product_id", post.ID, "type", order.OrderType)
	page.Success = true
	page.OrderID = order.ID
	return page, nil
}

func trimForm(form dto.OrderForm) dto.OrderForm {
	form.OrderType = strings.TrimSpace(form.OrderType)
	form.OfferPrice = strings.TrimSpace(form.OfferPrice)
	form.Phone = strings.TrimSpace(form.Phone)
	form.Address = strings.TrimSpace(form.Address)
	form.Note = strings.TrimSpace(form.Note)
	return form
}

// validateOrder checks a submitted order and returns the amount to record. FULL orders take the
// listed price; BID and DEPOSIT orders need a positive offer.
func validateOrder(form dto.OrderForm, listed decimal.Decimal) (decimal.Decimal, []string) {
	var errs []string
	orderType := model.OrderType(form.OrderType)

	if !orderType.Valid() {
		errs = append(errs, "Please select a valid order type")
	}

	switch {
	case form.Phone == "":
		errs = append(errs, "Phone number is required")
	case len(form.Phone) < minPhoneLength:
		errs = append(errs, "Please enter a valid phone number")
	}

	price := decimal.Zero
	switch orderType {
	case model.OrderTypeFull:
		price = listed
	case model.OrderTypeBid, model.OrderTypeDeposit:
		if form.OfferPrice == "" {
			errs = append(errs, "Please enter your offer price")
			break
		}
		offer, err := decimal.NewFromString(form.OfferPrice)
		if err != nil {
			errs = append(errs, "Invalid price format")
			break
		}
		if !offer.IsPositive() {
			errs = append(errs, "Offer price must be greater than zero")
			break
		}
		price = offer
	}

	return price, errs
}

func (s *orderServiceImpl) Confirmation(ctx context.Context, slug, orderID, userID string) (*dto.ConfirmationPage, error) {
	tp, err := s.shop.loadTenant(ctx, slug)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("load order %s: %w", orderID, err)
	}
	if order.BusinessID != tp.business.ID {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	page := &dto.ConfirmationPage{
		Page:      s.shop.page(ctx, tp, userID, homeCrumb(), dto.Breadcrumb{Name: "Order confirmation", URL: "/order/" + order.ID + "/confirmation"}),
		Order:     order,
		BuyerName: "Customer",
	}
	if page.Viewer != nil && page.Viewer.Name != "" {
		page.BuyerName = page.Viewer.Name
	}

	post, err := s.shop.productRepo.FindByID(ctx, order.ProductID)
	switch {
	case err == nil:
		card, _ := s.shop.productCard(ctx, post)
		page.Product = &card
	case !errors.Is(err, repository.ErrNotFound):
		s.shop.logger.WarnContext(ctx, "could not load ordered product",
			"order_id", order.ID, "product_id", order.ProductID, "error", err)
	}

	return page, nil
}
