package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
)

// QuoteOffer represents the quote_offers table - one live offer per seller per quote
type QuoteOffer struct {
	// ID is the canonical offer identifier; it changes when the seller re-bids
	ID         uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	QuoteID    uuid.UUID `gorm:"column:quote_id;not null;type:uuid;uniqueIndex:idx_quote_offers_quote_seller,priority:1"`
	SellerID   uuid.UUID `gorm:"column:seller_id;not null;type:uuid;uniqueIndex:idx_quote_offers_quote_seller,priority:2"`
	SellerName string    `gorm:"column:seller_name;not null;type:text;default:''"`
	// OfferedPrice is the seller's bid for the whole quote
	OfferedPrice decimal.Decimal    `gorm:"column:offered_price;not null;type:numeric(14,2)"`
	Message      *string            `gorm:"column:message;type:text"`
	Status       domain.OfferStatus `gorm:"column:status;not null;type:text;default:Pending"`
	// SubmittedAt orders offers oldest first
	SubmittedAt time.Time `gorm:"column:submitted_at;not null;default:now();type:timestamptz"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the QuoteOffer model
func (QuoteOffer) TableName() string {
	return "quote_offers"
}

// BeforeCreate assigns an identifier when the caller did not
func (o *QuoteOffer) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
