package quote

//go:generate mockgen -source=engine.go -destination=../mocks/quote_engine.go -package=mocks -mock_names=Engine=MockQuoteEngine

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/steel-suvidha/marketplace-api/internal/adapter"
	"github.com/steel-suvidha/marketplace-api/internal/catalog"
	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
	"github.com/steel-suvidha/marketplace-api/internal/metrics"
	"github.com/steel-suvidha/marketplace-api/internal/notify"
	"github.com/steel-suvidha/marketplace-api/internal/store"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

// CreateInput is the input for Create
type CreateInput struct {
	BuyerID      uuid.UUID
	BuyerName    string
	BuyerAddress *string
	BuyerPhone   *string
	Items        []schema.LineItem
	// ProductName names the request when no item carries a name
	ProductName  string
	TargetPrice  domain.Amount
	DeliveryDate *time.Time
	IsBroadcast  bool
	// SellerID is the raw target: a seller id, or empty/BROADCAST/MULTIPLE to match sellers
	SellerID   string
	SellerName string
}

// OfferInput is the input for SubmitOffer
type OfferInput struct {
	QuoteID    uuid.UUID
	SellerID   uuid.UUID
	SellerName string
	Price      domain.Amount
	Message    *string
}

// AcceptInput is the input for AcceptOffer
type AcceptInput struct {
	QuoteID uuid.UUID
	OfferID uuid.UUID
	// SellerID and FinalPrice are optional; when given they must agree with the offer
	SellerID   *uuid.UUID
	FinalPrice domain.Amount
}

// UpdateInput holds the mutable fields of a quote. Nil fields are left unchanged.
type UpdateInput struct {
	Status       *string
	TargetPrice  *domain.Amount
	DeliveryDate *time.Time
	BuyerAddress *string
	BuyerPhone   *string
}

// Engine runs the request-for-quote lifecycle
type Engine interface {
	// Create records a quote request, matching sellers when it is a broadcast
	Create(ctx context.Context, input CreateInput) (*schema.Quote, error)
	// Get retrieves a quote with its offers
	Get(ctx context.Context, id uuid.UUID) (*schema.Quote, error)
	// SubmitOffer records or replaces a seller's offer and returns the updated quote
	SubmitOffer(ctx context.Context, input OfferInput) (*schema.Quote, error)
	// AcceptOffer accepts one offer and rejects the others
	AcceptOffer(ctx context.Context, input AcceptInput) (*schema.Quote, error)
	// MarkPaid moves an accepted quote to Processing
	MarkPaid(ctx context.Context, id uuid.UUID) (*schema.Quote, error)
	// ListAvailable lists broadcast quotes still open for offers
	ListAvailable(ctx context.Context) ([]schema.Quote, error)
	// ListForBuyer lists the buyer's quotes
	ListForBuyer(ctx context.Context, buyerID uuid.UUID) ([]schema.Quote, error)
	// ListForSeller lists quotes bound to the seller or broadcast to them
	ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]schema.Quote, error)
	// Update applies a patch to a quote
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*schema.Quote, error)
}

type engine struct {
	store    store.Store
	matcher  catalog.Matcher
	notifier notify.Notifier
	clock    adapter.Clock
}

// NewEngine creates a new quote engine
func NewEngine(st store.Store, matcher catalog.Matcher, notifier notify.Notifier, clock adapter.Clock) Engine {
	return &engine{
		store:    st,
		matcher:  matcher,
		notifier: notifier,
		clock:    clock,
	}
}

// Create records a quote request
func (e *engine) Create(ctx context.Context, input CreateInput) (*schema.Quote, error) {
	buyerName := strings.TrimSpace(input.BuyerName)
	if input.BuyerID == uuid.Nil || buyerName == "" {
		return nil, domain.NewValidationError("buyerId and buyerName are required")
	}

	targetPrice, err := input.TargetPrice.Decimal("targetPrice")
	if err != nil {
		return nil, err
	}

	items := normalizeItems(input.Items)
	quantities := make([]domain.Quantity, 0, len(items))
	for _, item := range items {
		quantities = append(quantities, item.Quantity)
	}

	now := e.clock.Now()
	quote := &schema.Quote{
		BuyerID:           input.BuyerID,
		BuyerName:         buyerName,
		BuyerAddress:      input.BuyerAddress,
		BuyerPhone:        input.BuyerPhone,
		Items:             items,
		ProductName:       productName(items, input.ProductName),
		RequestedQuantity: domain.SumQuantities(quantities...),
		TargetPrice:       nullDecimal(targetPrice),
		DeliveryDate:      input.DeliveryDate,
		MatchedSellers:    []schema.MatchedSeller{},
		Status:            domain.QuoteStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
		Offers:            []schema.QuoteOffer{},
	}

	if input.IsBroadcast || domain.IsBroadcastTarget(input.SellerID) {
		match, err := e.matcher.Match(ctx, items)
		if err != nil {
			return nil, domain.NewInternalError("Failed to create quote", err)
		}
		quote.IsBroadcast = true
		quote.BroadcastStatus = &match.Status
		quote.MatchedSellers = match.Sellers
	} else {
		sellerID, err := domain.ParseID("seller id", input.SellerID)
		if err != nil {
			return nil, err
		}
		quote.SellerID = &sellerID
		quote.SellerName = strings.TrimSpace(input.SellerName)
	}

	if err := e.store.CreateQuote(ctx, quote); err != nil {
		return nil, domain.NewInternalError("Failed to create quote", err)
	}

	var broadcastStatus string
	if quote.BroadcastStatus != nil {
		broadcastStatus = string(*quote.BroadcastStatus)
	}
	metrics.RecordQuoteCreated(broadcastStatus)

	logger.InfoCtx(ctx, "Created quote",
		zap.String("quoteId", quote.ID.String()),
		zap.String("buyerId", quote.BuyerID.String()),
		zap.String("broadcastStatus", broadcastStatus),
		zap.Int("matchedSellers", len(quote.MatchedSellers)))

	e.notifier.Notify(ctx, notify.QuoteCreatedEvents(quote, now)...)

	return quote, nil
}

// Get retrieves a quote
func (e *engine) Get(ctx context.Context, id uuid.UUID) (*schema.Quote, error) {
	quote, err := e.store.GetQuoteByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch quote", err)
	}
	if quote == nil {
		return nil, domain.NewNotFoundError("Quote not found")
	}
	return quote, nil
}

// SubmitOffer records a seller's offer
func (e *engine) SubmitOffer(ctx context.Context, input OfferInput) (*schema.Quote, error) {
	if input.SellerID == uuid.Nil || input.Price.IsZero() {
		return nil, domain.NewValidationError("sellerId and price are required")
	}
	price, err := input.Price.Decimal("price")
	if err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, domain.NewValidationError("price must be greater than zero")
	}

	offer, err := e.store.SubmitOffer(ctx, store.SubmitOfferInput{
		QuoteID:      input.QuoteID,
		SellerID:     input.SellerID,
		SellerName:   strings.TrimSpace(input.SellerName),
		OfferedPrice: *price,
		Message:      input.Message,
	})
	if err != nil {
		return nil, mapLifecycleError(err, "Quote is no longer accepting offers", "Failed to submit offer")
	}

	metrics.RecordOfferSubmitted()

	quote, err := e.Get(ctx, input.QuoteID)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Submitted offer",
		zap.String("quoteId", quote.ID.String()),
		zap.String("offerId", offer.ID.String()),
		zap.String("sellerId", offer.SellerID.String()))

	e.notifier.Notify(ctx, notify.OfferSubmittedEvent(quote, offer, e.clock.Now()))

	return quote, nil
}

// AcceptOffer accepts one offer of a quote
func (e *engine) AcceptOffer(ctx context.Context, input AcceptInput) (*schema.Quote, error) {
	if input.OfferID == uuid.Nil {
		return nil, domain.NewValidationError("offerId is required")
	}

	quote, err := e.Get(ctx, input.QuoteID)
	if err != nil {
		return nil, err
	}
	offer := quote.FindOffer(input.OfferID)
	if offer == nil {
		return nil, domain.NewNotFoundError("Offer not found")
	}

	if input.SellerID != nil && *input.SellerID != offer.SellerID {
		return nil, domain.NewValidationError("sellerId does not match the offer")
	}
	finalPrice := offer.OfferedPrice
	requested, err := input.FinalPrice.Decimal("finalPrice")
	if err != nil {
		return nil, err
	}
	if requested != nil && !requested.Equal(finalPrice) {
		return nil, domain.NewValidationError("finalPrice must match the offered price")
	}
	if !quote.Status.OpenForOffers() {
		return nil, domain.NewConflictError("Quote is no longer accepting offers")
	}

	accepted, err := e.store.AcceptOffer(ctx, store.AcceptOfferInput{
		QuoteID:    input.QuoteID,
		OfferID:    input.OfferID,
		FinalPrice: finalPrice,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return nil, domain.NewNotFoundError("Offer not found")
		}
		return nil, mapLifecycleError(err, "Quote is no longer accepting offers", "Failed to accept offer")
	}

	logger.InfoCtx(ctx, "Accepted offer",
		zap.String("quoteId", accepted.ID.String()),
		zap.String("offerId", input.OfferID.String()),
		zap.String("finalPrice", finalPrice.String()))

	if event := notify.OfferAcceptedEvent(accepted, e.clock.Now()); event != nil {
		e.notifier.Notify(ctx, event)
	}

	return accepted, nil
}

// MarkPaid moves an accepted quote to Processing
func (e *engine) MarkPaid(ctx context.Context, id uuid.UUID) (*schema.Quote, error) {
	quote, err := e.store.MarkQuotePaid(ctx, id, e.clock.Now())
	if err != nil {
		return nil, mapLifecycleError(err, "Only accepted quotes can be paid", "Failed to confirm payment")
	}

	logger.InfoCtx(ctx, "Quote paid", zap.String("quoteId", id.String()))
	return quote, nil
}

// ListAvailable lists broadcast quotes still open for offers
func (e *engine) ListAvailable(ctx context.Context) ([]schema.Quote, error) {
	return e.list(ctx, store.QuoteFilter{Available: true})
}

// ListForBuyer lists the buyer's quotes
func (e *engine) ListForBuyer(ctx context.Context, buyerID uuid.UUID) ([]schema.Quote, error) {
	return e.list(ctx, store.QuoteFilter{BuyerID: &buyerID})
}

// ListForSeller lists the seller's quotes
func (e *engine) ListForSeller(ctx context.Context, sellerID uuid.UUID) ([]schema.Quote, error) {
	return e.list(ctx, store.QuoteFilter{SellerID: &sellerID})
}

func (e *engine) list(ctx context.Context, filter store.QuoteFilter) ([]schema.Quote, error) {
	quotes, err := e.store.ListQuotes(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch quotes", err)
	}
	return quotes, nil
}

// Update applies a patch to a quote
func (e *engine) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*schema.Quote, error) {
	if input.Status == nil && input.TargetPrice == nil && input.DeliveryDate == nil &&
		input.BuyerAddress == nil && input.BuyerPhone == nil {
		return nil, domain.NewValidationError("No updatable fields provided")
	}

	patch := store.QuotePatch{
		DeliveryDate: input.DeliveryDate,
		BuyerAddress: input.BuyerAddress,
		BuyerPhone:   input.BuyerPhone,
	}
	if input.Status != nil {
		status, ok := domain.ParseQuoteStatus(*input.Status)
		if !ok {
			return nil, domain.NewValidationError("invalid status: %s", *input.Status)
		}
		patch.Status = &status
	}
	if input.TargetPrice != nil {
		price, err := input.TargetPrice.Decimal("targetPrice")
		if err != nil {
			return nil, err
		}
		if price == nil {
			return nil, domain.NewValidationError("targetPrice must be a valid number")
		}
		patch.TargetPrice = price
	}

	quote, err := e.store.UpdateQuote(ctx, id, patch)
	if err != nil {
		return nil, domain.NewInternalError("Failed to update quote", err)
	}
	if quote == nil {
		return nil, domain.NewNotFoundError("Quote not found")
	}
	return quote, nil
}

// mapLifecycleError maps the store's quote signals onto error kinds
func mapLifecycleError(err error, closedMessage, internalMessage string) error {
	switch {
	case errors.Is(err, domain.ErrQuoteNotFound):
		return domain.NewNotFoundError("Quote not found")
	case errors.Is(err, domain.ErrQuoteClosed):
		return domain.NewConflictError("%s", closedMessage)
	default:
		return domain.NewInternalError(internalMessage, err)
	}
}

// normalizeItems trims item names and drops items with neither a name nor a catalog reference
func normalizeItems(items []schema.LineItem) []schema.LineItem {
	out := make([]schema.LineItem, 0, len(items))
	for _, item := range items {
		item.ProductName = strings.TrimSpace(item.ProductName)
		item.Unit = strings.TrimSpace(item.Unit)
		if item.ProductName == "" && item.CatalogEntryID == nil {
			continue
		}
		out = append(out, item)
	}
	return out
}

// productName is the first item's name, then the request's name, then a generic label
func productName(items []schema.LineItem, fallback string) string {
	if len(items) > 0 && items[0].ProductName != "" {
		return items[0].ProductName
	}
	if name := strings.TrimSpace(fallback); name != "" {
		return name
	}
	return domain.DefaultProductName
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
