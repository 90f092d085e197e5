package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business is a tenant shop. Domain is the subdomain slug the shop is served on.
type Business struct {
	ID                  string `gorm:"primaryKey;size:64;not null"`
	Domain              string `gorm:"size:128;uniqueIndex;not null"`
	BusinessName        string `gorm:"size:255"`
	BusinessDescription string `gorm:"type:text"`
	LogoURL             string `gorm:"size:1024"`
	BusinessPhoneNumber string `gorm:"size:64"`
	BusinessAddress     string `gorm:"size:512"`
	WebsiteURL          string `gorm:"size:1024"`
	Email               string `gorm:"size:255"`
	Latitude            *float64
	Longitude           *float64
	OpeningHours        string `gorm:"type:text"` // JSON
	PlaceName           string `gorm:"size:255"`
	Components          string `gorm:"type:text"` // JSON list of page components
	Status              string `gorm:"size:32;index"`
	IsVerified          bool   `gorm:"not null;default:false"`
	UserID              string `gorm:"size:64;index"` // owner
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Business) TableName() string {
	return "business_profiles"
}

type Category struct {
	ID   string `gorm:"primaryKey;size:64;not null"`
	Name string `gorm:"size:128;index;not null"`
}

// Post is a product listing. Data holds the free-form attribute payload
// (productName, productPrice, productCurrency, images, components, ...).
type Post struct {
	ID         string    `gorm:"primaryKey;size:64;not null"`
	BusinessID string    `gorm:"size:64;index;not null"`
	CategoryID *string   `gorm:"size:64;index"`
	Category   *Category `gorm:"foreignKey:CategoryID"`
	Data       string    `gorm:"type:text"` // JSON
	CreatedAt  time.Time `gorm:"index"`
}

// Review ratings are keyed by product id; business-level reviews use the business id.
type Review struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID string `gorm:"size:64;index;not null"`
	Rating    int    `gorm:"not null"`
	CreatedAt time.Time
}

type OrderType string

const (
	OrderTypeBid     OrderType = "BID"
	OrderTypeDeposit OrderType = "DEPOSIT"
	OrderTypeFull    OrderType = "FULL"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeBid, OrderTypeDeposit, OrderTypeFull:
		return true
	}
	return false
}

const (
	OrderStatusPending = "PENDING"
	PaymentMethodCash  = "CASH"
)

// MarketOrder is a buyer's offer on a product. Payment happens offline.
type MarketOrder struct {
	ID            string          `gorm:"primaryKey;size:64;not null"`
	ProductID     string          `gorm:"size:64;index;not null"`
	BusinessID    string          `gorm:"size:64;index;not null"`
	CategoryID    *string         `gorm:"size:64"`
	BuyerID       string          `gorm:"size:64;index;not null"`
	OrderType     OrderType       `gorm:"size:16;not null"`
	OfferPrice    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	BuyerPhone    string          `gorm:"size:32;not null"`
	BuyerAddress  string          `gorm:"size:512"`
	Note          string          `gorm:"type:text"`
	Status        string          `gorm:"size:32;index;not null"` // PENDING, ACCEPTED, REJECTED, COMPLETED
	PaymentMethod string          `gorm:"size:16;not null"`
	CreatedAt     time.Time       `gorm:"index"`
	UpdatedAt     time.Time
}

type Wishlist struct {
	UserID    string `gorm:"primaryKey;size:64"`
	ProductID string `gorm:"primaryKey;size:64;index"`
	CreatedAt time.Time
}

// NexusUser is the account record of a signed-in buyer. Accounts are created by the auth provider.
type NexusUser struct {
	ID        string `gorm:"primaryKey;size:64;not null"`
	Name      string `gorm:"size:255"`
	Email     string `gorm:"size:255;index"`
	AvatarURL string `gorm:"size:1024"`
	CreatedAt time.Time
}

func (NexusUser) TableName() string {
	return "nexususers"
}

type ContactSubmission struct {
	ID         uint   `gorm:"primaryKey"`
	BusinessID string `gorm:"size:64;index"` // empty for the root site
	Name       string `gorm:"size:255;not null"`
	Email      string `gorm:"size:255;not null"`
	Subject    string `gorm:"size:255"`
	Message    string `gorm:"type:text;not null"`
	CreatedAt  time.Time
}
