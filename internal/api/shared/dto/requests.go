package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/steel-suvidha/marketplace-api/internal/catalog"
	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/identity"
	"github.com/steel-suvidha/marketplace-api/internal/quote"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ToInput converts the request
func (r *LoginRequest) ToInput() identity.LoginInput {
	return identity.LoginInput{
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
	}
}

// RegisterRequest is the body of POST /buyers/register and POST /sellers
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Company     string `json:"company"`
	GSTIN       string `json:"gstin"`
	Description string `json:"description"`
}

// ToInput converts the request for the given role
func (r *RegisterRequest) ToInput(role domain.Role) identity.RegisterInput {
	return identity.RegisterInput{
		Role:        role,
		Name:        r.Name,
		Email:       r.Email,
		Username:    r.Username,
		Password:    r.Password,
		Phone:       r.Phone,
		Address:     r.Address,
		Company:     r.Company,
		GSTIN:       r.GSTIN,
		Description: r.Description,
	}
}

// CreateProductRequest is the body of POST /products
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	MetalType     string          `json:"metalType"`
	Brand         string          `json:"brand"`
	Grade         string          `json:"grade"`
	Finish        string          `json:"finish"`
	Size          string          `json:"size"`
	Variety       string          `json:"variety"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"imageUrl"`
	Price         domain.Amount   `json:"price"`
	Quantity      domain.Amount   `json:"quantity"`
	Unit          string          `json:"unit"`
	Status        string          `json:"status"`
	IsMaster      domain.FlexBool `json:"isMaster"`
	MasterEntryID string          `json:"masterEntryId"`
	// MasterProductID is the legacy name of MasterEntryID
	MasterProductID string `json:"masterProductId"`
	SellerID        string `json:"sellerId"`
	SellerName      string `json:"sellerName"`
}

// ToInput converts and validates the request
func (r *CreateProductRequest) ToInput() (catalog.CreateEntryInput, error) {
	price, err := r.Price.Decimal("price")
	if err != nil {
		return catalog.CreateEntryInput{}, err
	}
	quantity, err := r.Quantity.QuantityDecimal("quantity")
	if err != nil {
		return catalog.CreateEntryInput{}, err
	}
	masterID, err := domain.ParseOptionalID("master entry id", firstNonEmpty(r.MasterEntryID, r.MasterProductID))
	if err != nil {
		return catalog.CreateEntryInput{}, err
	}
	sellerID, err := domain.ParseOptionalID("seller id", r.SellerID)
	if err != nil {
		return catalog.CreateEntryInput{}, err
	}

	return catalog.CreateEntryInput{
		Name:          r.Name,
		Category:      r.Category,
		MetalType:     r.MetalType,
		Brand:         r.Brand,
		Grade:         r.Grade,
		Finish:        r.Finish,
		Size:          r.Size,
		Variety:       r.Variety,
		Type:          r.Type,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		Price:         price,
		Quantity:      quantity,
		Unit:          r.Unit,
		Status:        r.Status,
		IsMaster:      bool(r.IsMaster),
		MasterEntryID: masterID,
		SellerID:      sellerID,
		SellerName:    r.SellerName,
	}, nil
}

// UpdateProductRequest is the body of PUT /products/{id}. Absent fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string        `json:"name"`
	Category    *string        `json:"category"`
	MetalType   *string        `json:"metalType"`
	Brand       *string        `json:"brand"`
	Grade       *string        `json:"grade"`
	Finish      *string        `json:"finish"`
	Size        *string        `json:"size"`
	Variety     *string        `json:"variety"`
	Type        *string        `json:"type"`
	Description *string        `json:"description"`
	ImageURL    *string        `json:"imageUrl"`
	Price       *domain.Amount `json:"price"`
	Quantity    *domain.Amount `json:"quantity"`
	Unit        *string        `json:"unit"`
	Status      *string        `json:"status"`
}

// ToInput converts and validates the request
func (r *UpdateProductRequest) ToInput() (catalog.UpdateEntryInput, error) {
	price, err := optionalDecimal(r.Price, "price", domain.MoneyScale)
	if err != nil {
		return catalog.UpdateEntryInput{}, err
	}
	quantity, err := optionalDecimal(r.Quantity, "quantity", domain.QuantityScale)
	if err != nil {
		return catalog.UpdateEntryInput{}, err
	}

	return catalog.UpdateEntryInput{
		Name:        r.Name,
		Category:    r.Category,
		MetalType:   r.MetalType,
		Brand:       r.Brand,
		Grade:       r.Grade,
		Finish:      r.Finish,
		Size:        r.Size,
		Variety:     r.Variety,
		Type:        r.Type,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Price:       price,
		Quantity:    quantity,
		Unit:        r.Unit,
		Status:      r.Status,
	}, nil
}

// ToggleMasterRequest is the body of POST /products/toggle-master
type ToggleMasterRequest struct {
	MasterEntryID string `json:"masterEntryId"`
	// MasterProductID is the legacy name of MasterEntryID
	MasterProductID string `json:"masterProductId"`
	SellerID        string `json:"sellerId"`
	SellerName      string `json:"sellerName"`
	Status          string `json:"status"`
}

// ToInput converts and validates the request
func (r *ToggleMasterRequest) ToInput() (catalog.ToggleInput, error) {
	masterRaw := firstNonEmpty(r.MasterEntryID, r.MasterProductID)
	if strings.TrimSpace(masterRaw) == "" || strings.TrimSpace(r.SellerID) == "" {
		return catalog.ToggleInput{}, domain.NewValidationError("masterEntryId and sellerId are required")
	}
	masterID, err := domain.ParseID("master entry id", masterRaw)
	if err != nil {
		return catalog.ToggleInput{}, err
	}
	sellerID, err := domain.ParseID("seller id", r.SellerID)
	if err != nil {
		return catalog.ToggleInput{}, err
	}

	return catalog.ToggleInput{
		MasterEntryID: masterID,
		SellerID:      sellerID,
		SellerName:    r.SellerName,
		Status:        r.Status,
	}, nil
}

// LineItemRequest is one requested product
type LineItemRequest struct {
	CatalogEntryID string `json:"catalogEntryId"`
	// ProductID is the legacy name of CatalogEntryID
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    domain.Quantity `json:"quantity"`
	Unit        string          `json:"unit"`
}

// toLineItem converts the item. A reference that is not a valid id is dropped
// so matching falls back to the product name.
func (r *LineItemRequest) toLineItem() schema.LineItem {
	item := schema.LineItem{
		ProductName: strings.TrimSpace(r.ProductName),
		Quantity:    r.Quantity,
		Unit:        strings.TrimSpace(r.Unit),
	}
	if id, err := uuid.Parse(strings.TrimSpace(firstNonEmpty(r.CatalogEntryID, r.ProductID))); err == nil {
		item.CatalogEntryID = &id
	}
	return item
}

// CreateQuoteRequest is the body of POST /quotes
type CreateQuoteRequest struct {
	BuyerID      string            `json:"buyerId"`
	BuyerName    string            `json:"buyerName"`
	BuyerAddress *string           `json:"buyerAddress"`
	BuyerPhone   *string           `json:"buyerPhone"`
	Items        []LineItemRequest `json:"items"`
	// ProductID, ProductName and RequestedQuantity describe a single item
	// when Items is absent
	ProductID         string          `json:"productId"`
	ProductName       string          `json:"productName"`
	RequestedQuantity domain.Quantity `json:"requestedQuantity"`
	TargetPrice       domain.Amount   `json:"targetPrice"`
	// TargetedPrice is the legacy name of TargetPrice
	TargetedPrice domain.Amount   `json:"targetedPrice"`
	DeliveryDate  string          `json:"deliveryDate"`
	IsBroadcast   domain.FlexBool `json:"isBroadcast"`
	SellerID      string          `json:"sellerId"`
	SellerName    string          `json:"sellerName"`
}

// ToInput converts and validates the request
func (r *CreateQuoteRequest) ToInput() (quote.CreateInput, error) {
	if strings.TrimSpace(r.BuyerID) == "" || strings.TrimSpace(r.BuyerName) == "" {
		return quote.CreateInput{}, domain.NewValidationError("buyerId and buyerName are required")
	}
	buyerID, err := domain.ParseID("buyer id", r.BuyerID)
	if err != nil {
		return quote.CreateInput{}, err
	}
	deliveryDate, err := ParseDate("deliveryDate", r.DeliveryDate)
	if err != nil {
		return quote.CreateInput{}, err
	}

	requested := r.Items
	if requested == nil {
		requested = []LineItemRequest{{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.RequestedQuantity,
		}}
	}
	items := make([]schema.LineItem, 0, len(requested))
	for i := range requested {
		items = append(items, requested[i].toLineItem())
	}

	targetPrice := r.TargetPrice
	if targetPrice.IsZero() {
		targetPrice = r.TargetedPrice
	}

	return quote.CreateInput{
		BuyerID:      buyerID,
		BuyerName:    r.BuyerName,
		BuyerAddress: r.BuyerAddress,
		BuyerPhone:   r.BuyerPhone,
		Items:        items,
		ProductName:  r.ProductName,
		TargetPrice:  targetPrice,
		DeliveryDate: deliveryDate,
		IsBroadcast:  bool(r.IsBroadcast),
		SellerID:     r.SellerID,
		SellerName:   r.SellerName,
	}, nil
}

// SubmitOfferRequest is the body of POST /quotes/{id}/offer
type SubmitOfferRequest struct {
	SellerID     string        `json:"sellerId"`
	SellerName   string        `json:"sellerName"`
	OfferedPrice domain.Amount `json:"offeredPrice"`
	Message      *string       `json:"message"`
	// Timestamp is accepted from older clients and ignored; the server stamps offers
	Timestamp *string `json:"timestamp"`
}

// ToInput converts and validates the request
func (r *SubmitOfferRequest) ToInput(quoteID uuid.UUID) (quote.OfferInput, error) {
	sellerID, err := domain.ParseID("seller id", r.SellerID)
	if err != nil {
		return quote.OfferInput{}, err
	}
	return quote.OfferInput{
		QuoteID:    quoteID,
		SellerID:   sellerID,
		SellerName: r.SellerName,
		Price:      r.OfferedPrice,
		Message:    r.Message,
	}, nil
}

// AcceptOfferRequest is the body of POST /quotes/{id}/accept
type AcceptOfferRequest struct {
	OfferID  string `json:"offerId"`
	SellerID string `json:"sellerId"`
	// SellerName is accepted for compatibility; the name is copied from the offer
	SellerName string        `json:"sellerName"`
	FinalPrice domain.Amount `json:"finalPrice"`
}

// ToInput converts and validates the request
func (r *AcceptOfferRequest) ToInput(quoteID uuid.UUID) (quote.AcceptInput, error) {
	offerID, err := domain.ParseID("offer id", r.OfferID)
	if err != nil {
		return quote.AcceptInput{}, err
	}
	sellerID, err := domain.ParseOptionalID("seller id", r.SellerID)
	if err != nil {
		return quote.AcceptInput{}, err
	}
	return quote.AcceptInput{
		QuoteID:    quoteID,
		OfferID:    offerID,
		SellerID:   sellerID,
		FinalPrice: r.FinalPrice,
	}, nil
}

// UpdateQuoteRequest is the body of PUT /quotes/{id}. Absent fields are left unchanged.
type UpdateQuoteRequest struct {
	Status       *string        `json:"status"`
	TargetPrice  *domain.Amount `json:"targetPrice"`
	DeliveryDate *string        `json:"deliveryDate"`
	BuyerAddress *string        `json:"buyerAddress"`
	BuyerPhone   *string        `json:"buyerPhone"`
}

// ToInput converts and validates the request
func (r *UpdateQuoteRequest) ToInput() (quote.UpdateInput, error) {
	input := quote.UpdateInput{
		Status:       r.Status,
		TargetPrice:  r.TargetPrice,
		BuyerAddress: r.BuyerAddress,
		BuyerPhone:   r.BuyerPhone,
	}
	if r.DeliveryDate != nil {
		deliveryDate, err := ParseDate("deliveryDate", *r.DeliveryDate)
		if err != nil {
			return quote.UpdateInput{}, err
		}
		if deliveryDate == nil {
			return quote.UpdateInput{}, domain.NewValidationError("deliveryDate must be a valid date")
		}
		input.DeliveryDate = deliveryDate
	}
	return input, nil
}

// ParseDate parses an RFC 3339 timestamp or a plain YYYY-MM-DD date.
// An empty value returns nil.
func ParseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, domain.NewValidationError("%s must be a valid date", field)
}

func optionalDecimal(a *domain.Amount, field string, scale int32) (*decimal.Decimal, error) {
	if a == nil {
		return nil, nil
	}
	parse := a.Decimal
	if scale == domain.QuantityScale {
		parse = a.QuantityDecimal
	}
	d, err := parse(field)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.NewValidationError("%s must be a valid number", field)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
