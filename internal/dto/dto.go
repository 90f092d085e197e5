package dto

import (
	"html/template"
	"time"

	"tenant-storefront/internal/component"
	"tenant-storefront/internal/model"

	"github.com/shopspring/decimal"
)

type Breadcrumb struct {
	Name string
	URL  string
}

type ReviewSummary struct {
	Count   int64
	Average float64
}

// Page is the shell every storefront page is drawn in.
type Page struct {
	Business    *model.Business // nil on the root site
	Theme       component.Theme
	Breadcrumbs []Breadcrumb
	Viewer      *model.NexusUser // nil when nobody is signed in
	CSRF        string           // form token; only set on pages that post forms
}

type ProductCard struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	ImageURL    string
	VideoURL    string
	Category    string
	Reviews     ReviewSummary
}

// PriceText is the price with thousands separators.
func (p ProductCard) PriceText() string {
	return component.FormatAmount(p.Price)
}

type CategoryGroup struct {
	Name     string
	Products []ProductCard
}

type HomePage struct {
	Page
	HeroHTML       template.HTML
	TabsHTML       template.HTML
	ComponentsHTML template.HTML
	Groups         []CategoryGroup
	SearchQuery    string
	Reviews        ReviewSummary
}

type LandingPage struct {
	Page
	Verified   []*model.Business
	Unverified []*model.Business
	Total      int
}

type ProductDetail struct {
	ProductCard
	Images         []string
	ComponentsHTML template.HTML
	Brand          string
	GTIN           string
	MPN            string
	IsSwap         bool
	CategoryID     *string
	CreatedAt      time.Time
}

type ProductPage struct {
	Page
	Product ProductDetail
	Related []ProductCard
}

type CategoryPage struct {
	Page
	CategoryName string
	Products     []ProductCard
}

// OrderForm holds the submitted order fields as typed by the buyer.
type OrderForm struct {
	OrderType  string `form:"order_type"`
	OfferPrice string `form:"offer_price"`
	Phone      string `form:"phone"`
	Address    string `form:"address"`
	Note       string `form:"note"`
}

type OrderFormPage struct {
	Page
	Product ProductCard
	Form    OrderForm
	Errors  []string
	Error   string
	Success bool
	OrderID string
}

type ConfirmationPage struct {
	Page
	Order     *model.MarketOrder
	Product   *ProductCard // nil when the product was removed
	BuyerName string
}

// OfferText is the order amount with thousands separators.
func (p ConfirmationPage) OfferText() string {
	if p.Order == nil {
		return ""
	}
	return component.FormatAmount(p.Order.OfferPrice)
}

type ProfileUser struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
}

type ProfileOrder struct {
	*model.MarketOrder
	ProductName     string
	ProductImage    string
	ProductCurrency string
	BusinessName    string
	BusinessLogo    string
}

func (o ProfileOrder) OfferText() string {
	return component.FormatAmount(o.OfferPrice)
}

type ProfilePage struct {
	Page
	User   ProfileUser
	Orders []ProfileOrder
	Wishes []ProductCard
}

type OpeningHour struct {
	Day   string
	Hours string
}

type ContactInfo struct {
	BusinessName string
	Description  string
	Phone        string
	Address      string
	Website      string
	Email        string
	Latitude     *float64
	Longitude    *float64
	OpeningHours []OpeningHour
	LogoURL      string
	PlaceName    string
}

type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

type ContactPage struct {
	Page
	Info   *ContactInfo // nil on the root site
	Form   ContactForm
	Errors []string
	Sent   bool
}

type WishlistToggleResponse struct {
	Success  bool   `json:"success"`
	Action   string `json:"action,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

type WishlistStatusResponse struct {
	InWishlist bool `json:"in_wishlist"`
}

type ErrorPage struct {
	Page
	Code    int
	Message string
}
