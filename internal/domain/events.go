package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType is the type of a marketplace notification event
type EventType string

const (
	// EventTypeQuoteCreated is sent to each seller a new quote was routed to
	EventTypeQuoteCreated EventType = "quote.created"
	// EventTypeOfferSubmitted is sent to the buyer when a seller bids
	EventTypeOfferSubmitted EventType = "offer.submitted"
	// EventTypeOfferAccepted is sent to the seller whose offer won
	EventTypeOfferAccepted EventType = "offer.accepted"
)

// MarketEvent is the message published to the event bus
type MarketEvent struct {
	EventID       string          `json:"eventId"` // ULID
	EventType     EventType       `json:"eventType"`
	RecipientRole Role            `json:"recipientRole"`
	RecipientID   uuid.UUID       `json:"recipientId"`
	QuoteID       uuid.UUID       `json:"quoteId"`
	OfferID       *uuid.UUID      `json:"offerId,omitempty"`
	ProductName   string          `json:"productName,omitempty"`
	Price         *string         `json:"price,omitempty"`
	Status        QuoteStatus     `json:"status"`
	BroadcastTo   BroadcastStatus `json:"broadcastStatus,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}
