package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/store"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

// AccountResponse is an account without its password hash
type AccountResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Username    string               `json:"username"`
	Role        domain.Role          `json:"role"`
	Status      domain.AccountStatus `json:"status"`
	Presence    domain.Presence      `json:"presence"`
	LastLoginAt *time.Time           `json:"lastLogin"`
	Description string               `json:"description"`
	Phone       string               `json:"phone,omitempty"`
	Address     string               `json:"address,omitempty"`
	Company     string               `json:"company,omitempty"`
	GSTIN       string               `json:"gstin,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// NewAccountResponse maps an account
func NewAccountResponse(a *schema.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Username:    a.Username,
		Role:        a.Role,
		Status:      a.Status,
		Presence:    a.Presence,
		LastLoginAt: a.LastLoginAt,
		Description: a.Description,
		Phone:       a.Phone,
		Address:     a.Address,
		Company:     a.Company,
		GSTIN:       a.GSTIN,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// NewAccountResponses maps a list of accounts, never returning nil
func NewAccountResponses(accounts []schema.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, *NewAccountResponse(&accounts[i]))
	}
	return out
}

// CatalogEntryResponse is a master entry or seller listing
type CatalogEntryResponse struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Category      string               `json:"category"`
	MetalType     string               `json:"metalType"`
	Brand         string               `json:"brand"`
	Grade         string               `json:"grade"`
	Finish        string               `json:"finish"`
	Size          string               `json:"size"`
	Variety       string               `json:"variety"`
	Type          string               `json:"type"`
	Description   string               `json:"description"`
	ImageURL      string               `json:"imageUrl"`
	Price         *decimal.Decimal     `json:"price"`
	Quantity      *decimal.Decimal     `json:"quantity"`
	Unit          string               `json:"unit"`
	IsMaster      bool                 `json:"isMaster"`
	MasterEntryID *uuid.UUID           `json:"masterEntryId"`
	Status        domain.CatalogStatus `json:"status"`
	SellerID      *uuid.UUID           `json:"sellerId"`
	SellerName    string               `json:"sellerName"`
	// ListingID is only set on the seller view of the master catalog
	ListingID *uuid.UUID `json:"listingId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewCatalogEntryResponse maps a catalog entry
func NewCatalogEntryResponse(e *schema.CatalogEntry) *CatalogEntryResponse {
	if e == nil {
		return nil
	}
	return &CatalogEntryResponse{
		ID:            e.ID,
		Name:          e.Name,
		Category:      e.Category,
		MetalType:     e.MetalType,
		Brand:         e.Brand,
		Grade:         e.Grade,
		Finish:        e.Finish,
		Size:          e.Size,
		Variety:       e.Variety,
		Type:          e.Type,
		Description:   e.Description,
		ImageURL:      e.ImageURL,
		Price:         decimalPtr(e.Price),
		Quantity:      decimalPtr(e.Quantity),
		Unit:          e.Unit,
		IsMaster:      e.IsMaster,
		MasterEntryID: e.MasterEntryID,
		Status:        e.Status,
		SellerID:      e.SellerID,
		SellerName:    e.SellerName,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// NewCatalogEntryResponses maps a list of catalog entries, never returning nil
func NewCatalogEntryResponses(entries []schema.CatalogEntry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *NewCatalogEntryResponse(&entries[i]))
	}
	return out
}

// NewSellerListingResponses maps master entries annotated for one seller.
// The status shown is the seller's listing status, not the master's.
func NewSellerListingResponses(views []schema.SellerListingView) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(views))
	for i := range views {
		resp := NewCatalogEntryResponse(&views[i].CatalogEntry)
		resp.Status = views[i].ListingStatus
		resp.ListingID = views[i].ListingID
		out = append(out, *resp)
	}
	return out
}

// OfferResponse is a seller's offer on a quote
type OfferResponse struct {
	ID           uuid.UUID          `json:"offerId"`
	SellerID     uuid.UUID          `json:"sellerId"`
	SellerName   string             `json:"sellerName"`
	OfferedPrice decimal.Decimal    `json:"offeredPrice"`
	Message      *string            `json:"message"`
	Status       domain.OfferStatus `json:"status"`
	Timestamp    time.Time          `json:"timestamp"`
}

// NewOfferResponse maps an offer
func NewOfferResponse(o *schema.QuoteOffer) *OfferResponse {
	if o == nil {
		return nil
	}
	return &OfferResponse{
		ID:           o.ID,
		SellerID:     o.SellerID,
		SellerName:   o.SellerName,
		OfferedPrice: o.OfferedPrice,
		Message:      o.Message,
		Status:       o.Status,
		Timestamp:    o.SubmittedAt,
	}
}

// QuoteResponse is a quote request with its offers
type QuoteResponse struct {
	ID                  uuid.UUID               `json:"id"`
	BuyerID             uuid.UUID               `json:"buyerId"`
	BuyerName           string                  `json:"buyerName"`
	BuyerAddress        *string                 `json:"buyerAddress"`
	BuyerPhone          *string                 `json:"buyerPhone"`
	Items               []schema.LineItem       `json:"items"`
	ProductName         string                  `json:"productName"`
	RequestedQuantity   float64                 `json:"requestedQuantity"`
	TargetPrice         *decimal.Decimal        `json:"targetPrice"`
	DeliveryDate        *time.Time              `json:"deliveryDate"`
	IsBroadcast         bool                    `json:"isBroadcast"`
	BroadcastStatus     *domain.BroadcastStatus `json:"broadcastStatus"`
	SellerID            *uuid.UUID              `json:"sellerId"`
	SellerName          string                  `json:"sellerName"`
	MatchedSellers      []schema.MatchedSeller  `json:"matchedSellers"`
	MatchedSellersCount int                     `json:"matchedSellersCount"`
	Offers              []OfferResponse         `json:"offers"`
	Status              domain.QuoteStatus      `json:"status"`
	AcceptedOfferID     *uuid.UUID              `json:"acceptedOfferId"`
	FinalPrice          *decimal.Decimal        `json:"finalPrice"`
	PaidAt              *time.Time              `json:"paidAt"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

// NewQuoteResponse maps a quote. Slices are never nil so clients always see arrays.
func NewQuoteResponse(q *schema.Quote) *QuoteResponse {
	if q == nil {
		return nil
	}

	items := make([]schema.LineItem, 0, len(q.Items))
	items = append(items, q.Items...)
	matched := make([]schema.MatchedSeller, 0, len(q.MatchedSellers))
	matched = append(matched, q.MatchedSellers...)
	offers := make([]OfferResponse, 0, len(q.Offers))
	for i := range q.Offers {
		offers = append(offers, *NewOfferResponse(&q.Offers[i]))
	}

	return &QuoteResponse{
		ID:                  q.ID,
		BuyerID:             q.BuyerID,
		BuyerName:           q.BuyerName,
		BuyerAddress:        q.BuyerAddress,
		BuyerPhone:          q.BuyerPhone,
		Items:               items,
		ProductName:         q.ProductName,
		RequestedQuantity:   q.RequestedQuantity,
		TargetPrice:         decimalPtr(q.TargetPrice),
		DeliveryDate:        q.DeliveryDate,
		IsBroadcast:         q.IsBroadcast,
		BroadcastStatus:     q.BroadcastStatus,
		SellerID:            q.SellerID,
		SellerName:          q.SellerName,
		MatchedSellers:      matched,
		MatchedSellersCount: len(matched),
		Offers:              offers,
		Status:              q.Status,
		AcceptedOfferID:     q.AcceptedOfferID,
		FinalPrice:          decimalPtr(q.FinalPrice),
		PaidAt:              q.PaidAt,
		CreatedAt:           q.CreatedAt,
		UpdatedAt:           q.UpdatedAt,
	}
}

// NewQuoteResponses maps a list of quotes, never returning nil
func NewQuoteResponses(quotes []schema.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, *NewQuoteResponse(&quotes[i]))
	}
	return out
}

// SeedStats is the outcome of a master catalog seed
type SeedStats struct {
	TotalAdded     int `json:"totalAdded"`
	TotalSkipped   int `json:"totalSkipped"`
	TotalProcessed int `json:"totalProcessed"`
}

// NewSeedStats maps a seed result
func NewSeedStats(r store.SeedResult) SeedStats {
	return SeedStats{
		TotalAdded:     r.Added,
		TotalSkipped:   r.Skipped,
		TotalProcessed: r.Processed,
	}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	OK       bool   `json:"ok"`
	Status   string `json:"status"`
	Database string `json:"database"`
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
