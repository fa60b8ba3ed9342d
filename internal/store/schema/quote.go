package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
)

// LineItem is one requested product in a quote
type LineItem struct {
	// CatalogEntryID is the catalog entry the buyer picked, if any
	CatalogEntryID *uuid.UUID      `json:"catalogEntryId,omitempty"`
	ProductName    string          `json:"productName"`
	Quantity       domain.Quantity `json:"quantity"`
	Unit           string          `json:"unit,omitempty"`
}

// MatchedSeller is a seller a broadcast quote was routed to
type MatchedSeller struct {
	SellerID   uuid.UUID `json:"sellerId"`
	SellerName string    `json:"sellerName"`
}

// Quote represents the quotes table - a buyer's request for quote
type Quote struct {
	// ID is the canonical quote identifier
	ID           uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	BuyerID      uuid.UUID `gorm:"column:buyer_id;not null;type:uuid;index:idx_quotes_buyer_id"`
	BuyerName    string    `gorm:"column:buyer_name;not null;type:text"`
	BuyerAddress *string   `gorm:"column:buyer_address;type:text"`
	BuyerPhone   *string   `gorm:"column:buyer_phone;type:text"`
	// Items is the list of requested line items
	Items datatypes.JSONSlice[LineItem] `gorm:"column:items;not null;type:jsonb;default:'[]'"`
	// ProductName is derived from the first item at creation
	ProductName string `gorm:"column:product_name;not null;type:text"`
	// RequestedQuantity is the sum of the numeric item quantities
	RequestedQuantity float64             `gorm:"column:requested_quantity;not null;default:0"`
	TargetPrice       decimal.NullDecimal `gorm:"column:target_price;type:numeric(14,2)"`
	DeliveryDate      *time.Time          `gorm:"column:delivery_date;type:timestamptz"`
	// IsBroadcast marks a quote fanned out to matched sellers
	IsBroadcast     bool                    `gorm:"column:is_broadcast;not null;default:false"`
	BroadcastStatus *domain.BroadcastStatus `gorm:"column:broadcast_status;type:text"`
	// SellerID is the bound seller, or the winning seller once accepted
	SellerID   *uuid.UUID `gorm:"column:seller_id;type:uuid;index:idx_quotes_seller_id"`
	SellerName string     `gorm:"column:seller_name;not null;type:text;default:''"`
	// MatchedSellers is the frozen snapshot computed at creation
	MatchedSellers datatypes.JSONSlice[MatchedSeller] `gorm:"column:matched_sellers;not null;type:jsonb;default:'[]'"`
	Status         domain.QuoteStatus                 `gorm:"column:status;not null;type:text;default:Pending"`
	// AcceptedOfferID and FinalPrice are set when the buyer accepts an offer
	AcceptedOfferID *uuid.UUID          `gorm:"column:accepted_offer_id;type:uuid"`
	FinalPrice      decimal.NullDecimal `gorm:"column:final_price;type:numeric(14,2)"`
	PaidAt          *time.Time          `gorm:"column:paid_at;type:timestamptz"`
	CreatedAt       time.Time           `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Offers []QuoteOffer `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// BeforeCreate assigns an identifier when the caller did not
func (q *Quote) BeforeCreate(*gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// FindOffer returns the offer with the given id, or nil
func (q *Quote) FindOffer(offerID uuid.UUID) *QuoteOffer {
	for i := range q.Offers {
		if q.Offers[i].ID == offerID {
			return &q.Offers[i]
		}
	}
	return nil
}
