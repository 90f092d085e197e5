package service

import (
	"context"
	"testing"
	"time"

	"tenant-storefront/internal/dto"
	"tenant-storefront/internal/model"
	"tenant-storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture() (OrderService, *fakeOrderRepo, *fakeProductRepo) {
	businesses := &fakeBusinessRepo{businesses: []*model.Business{
		{ID: "b1", Domain: "acme"},
		{ID: "b2", Domain: "other"},
	}}
	products := &fakeProductRepo{posts: []*model.Post{
		{ID: "p1", BusinessID: "b1", CategoryID: strPtr("c1"), Data: `{"productName":"Boot","productPrice":25000,"productCurrency":"KES"}`},
	}}
	orders := &fakeOrderRepo{}
	users := &fakeUserRepo{users: map[string]*model.NexusUser{"u1": {ID: "u1", Name: "Amina"}}}

	svc := NewOrderService(businesses, products, orders, &fakeReviewRepo{}, users, testRenderer(), discardLogger())
	return svc, orders, products
}

func TestValidateOrder(t *testing.T) {
	listed := decimal.NewFromInt(25000)
	tests := []struct {
		name      string
		form      dto.OrderForm
		wantPrice string
		wantErrs  []string
	}{
		{"bid", dto.OrderForm{OrderType: "BID", OfferPrice: "1200.50", Phone: "0700123456"}, "1200.5", nil},
		{"full takes listed price", dto.OrderForm{OrderType: "FULL", OfferPrice: "1", Phone: "0700123456"}, "25000", nil},
		{"deposit needs offer", dto.OrderForm{OrderType: "DEPOSIT", Phone: "0700123456"}, "0", []string{"Please enter your offer price"}},
		{"bad type", dto.OrderForm{OrderType: "SWAP", Phone: "0700123456"}, "0", []string{"Please select a valid order type"}},
		{"missing phone", dto.OrderForm{OrderType: "FULL"}, "25000", []string{"Phone number is required"}},
		{"short phone", dto.OrderForm{OrderType: "FULL", Phone: "12345"}, "25000", []string{"Please enter a valid phone number"}},
		{"zero offer", dto.OrderForm{OrderType: "BID", OfferPrice: "0", Phone: "0700123456"}, "0", []string{"Offer price must be greater than zero"}},
		{"negative offer", dto.OrderForm{OrderType: "BID", OfferPrice: "-5", Phone: "0700123456"}, "0", []string{"Offer price must be greater than zero"}},
		{"garbage offer", dto.OrderForm{OrderType: "BID", OfferPrice: "ten", Phone: "0700123456"}, "0", []string{"Invalid price format"}},
		{"everything wrong", dto.OrderForm{}, "0", []string{"Please select a valid order type", "Phone number is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, errs := validateOrder(tt.form, listed)
			assert.Equal(t, tt.wantErrs, errs)
			assert.True(t, price.Equal(decimal.RequireFromString(tt.wantPrice)), price.String())
		})
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	svc, orders, _ := newOrderFixture()

	page, err := svc.PlaceOrder(context.Background(), "acme", "p1", "u1", dto.OrderForm{
		OrderType:  "BID",
		OfferPrice: " 20000 ",
		Phone:      " 0700123456 ",
		Note:       "Can deliver Friday?",
	})
	require.NoError(t, err)
	assert.True(t, page.Success)
	assert.Empty(t, page.Errors)

	require.Len(t, orders.orders, 1)
	o := orders.orders[0]
	assert.Equal(t, page.OrderID, o.ID)
	_, parseErr := uuid.Parse(o.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	assert.Equal(t, model.PaymentMethodCash, o.PaymentMethod)
	assert.Equal(t, "b1", o.BusinessID)
	assert.Equal(t, "u1", o.BuyerID)
	assert.Equal(t, "0700123456", o.BuyerPhone)
	require.NotNil(t, o.CategoryID)
	assert.Equal(t, "c1", *o.CategoryID)
	assert.True(t, o.OfferPrice.Equal(decimal.NewFromInt(20000)))
}

func TestOrderService_PlaceOrder_Rejections(t *testing.T) {
	svc, orders, _ := newOrderFixture()
	ctx := context.Background()

	page, err := svc.PlaceOrder(ctx, "acme", "p1", "", dto.OrderForm{OrderType: "FULL", Phone: "0700123456"})
	require.NoError(t, err)
	assert.Equal(t, "Please log in to place an order", page.Error)
	assert.False(t, page.Success)

	page, err = svc.PlaceOrder(ctx, "acme", "p1", "u1", dto.OrderForm{OrderType: "BID", Phone: "07"})
	require.NoError(t, err)
	assert.Len(t, page.Errors, 2)
	assert.Equal(t, "07", page.Form.Phone)

	assert.Empty(t, orders.orders)

	orders.createErr = errBackend
	page, err = svc.PlaceOrder(ctx, "acme", "p1", "u1", dto.OrderForm{OrderType: "FULL", Phone: "0700123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, page.Error)
	assert.False(t, page.Success)

	_, err = svc.PlaceOrder(ctx, "other", "p1", "u1", dto.OrderForm{})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestOrderService_OrderForm(t *testing.T) {
	svc, _, _ := newOrderFixture()

	page, err := svc.OrderForm(context.Background(), "acme", "p1", "")
	require.NoError(t, err)
	assert.Equal(t, "Boot", page.Product.Name)
	assert.Equal(t, "KES", page.Product.Currency)
	assert.Equal(t, "25,000", page.Product.PriceText())
}

func TestOrderService_Confirmation(t *testing.T) {
	svc, orders, products := newOrderFixture()
	ctx := context.Background()
	orders.orders = []*model.MarketOrder{
		{ID: "o1", ProductID: "p1", BusinessID: "b1", BuyerID: "u1", OfferPrice: decimal.NewFromInt(1500), CreatedAt: time.Now()},
		{ID: "o2", ProductID: "gone", BusinessID: "b1", BuyerID: "u1"},
	}

	page, err := svc.Confirmation(ctx, "acme", "o1", "u1")
	require.NoError(t, err)
	require.NotNil(t, page.Product)
	assert.Equal(t, "Boot", page.Product.Name)
	assert.Equal(t, "Amina", page.BuyerName)
	assert.Equal(t, "1,500", page.OfferText())

	page, err = svc.Confirmation(ctx, "acme", "o2", "")
	require.NoError(t, err)
	assert.Nil(t, page.Product)
	assert.Equal(t, "Customer", page.BuyerName)

	_, err = svc.Confirmation(ctx, "acme", "missing", "")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.Confirmation(ctx, "other", "o1", "")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	products.err = errBackend
	page, err = svc.Confirmation(ctx, "acme", "o1", "")
	require.NoError(t, err)
	assert.Nil(t, page.Product)
}

func TestOrderService_Confirmation_UnknownTenant(t *testing.T) {
	svc, _, _ := newOrderFixture()

	_, err := svc.Confirmation(context.Background(), "ghost", "o1", "")
	assert.ErrorIs(t, err, ErrTenantNotFound)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}
