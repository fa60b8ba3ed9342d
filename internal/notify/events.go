package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

// QuoteCreatedEvents builds one event per seller the quote was routed to:
// the bound seller, or every matched seller of a broadcast
func QuoteCreatedEvents(quote *schema.Quote, now time.Time) []*domain.MarketEvent {
	var recipients []uuid.UUID
	if quote.SellerID != nil {
		recipients = append(recipients, *quote.SellerID)
	} else {
		for _, seller := range quote.MatchedSellers {
			recipients = append(recipients, seller.SellerID)
		}
	}

	events := make([]*domain.MarketEvent, 0, len(recipients))
	for _, sellerID := range recipients {
		event := baseEvent(quote, now)
		event.EventType = domain.EventTypeQuoteCreated
		event.RecipientRole = domain.RoleSeller
		event.RecipientID = sellerID
		if quote.BroadcastStatus != nil {
			event.BroadcastTo = *quote.BroadcastStatus
		}
		events = append(events, event)
	}
	return events
}

// OfferSubmittedEvent builds the event telling the buyer about a new bid
func OfferSubmittedEvent(quote *schema.Quote, offer *schema.QuoteOffer, now time.Time) *domain.MarketEvent {
	event := baseEvent(quote, now)
	event.EventType = domain.EventTypeOfferSubmitted
	event.RecipientRole = domain.RoleBuyer
	event.RecipientID = quote.BuyerID
	event.OfferID = &offer.ID
	price := offer.OfferedPrice.String()
	event.Price = &price
	return event
}

// OfferAcceptedEvent builds the event telling the winning seller, nil if the quote has no seller
func OfferAcceptedEvent(quote *schema.Quote, now time.Time) *domain.MarketEvent {
	if quote.SellerID == nil {
		return nil
	}

	event := baseEvent(quote, now)
	event.EventType = domain.EventTypeOfferAccepted
	event.RecipientRole = domain.RoleSeller
	event.RecipientID = *quote.SellerID
	event.OfferID = quote.AcceptedOfferID
	if quote.FinalPrice.Valid {
		price := quote.FinalPrice.Decimal.String()
		event.Price = &price
	}
	return event
}

func baseEvent(quote *schema.Quote, now time.Time) *domain.MarketEvent {
	return &domain.MarketEvent{
		QuoteID:     quote.ID,
		ProductName: quote.ProductName,
		Status:      quote.Status,
		Timestamp:   now,
	}
}
