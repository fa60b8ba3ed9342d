package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role is the account role
type Role string

const (
	RoleBuyer  Role = "Buyer"
	RoleSeller Role = "Seller"
	RoleAdmin  Role = "Admin"
)

// ParseRole parses a role name case-insensitively
func ParseRole(s string) (Role, bool) {
	switch r := Role(canonical(s)); r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// AccountStatus is the administrative status of an account
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "Active"
	AccountStatusSuspended AccountStatus = "Suspended"
)

// Presence is the last known online state of an account
type Presence string

const (
	PresenceOnline  Presence = "Online"
	PresenceOffline Presence = "Offline"
)

// CatalogStatus is the status of a catalog entry
type CatalogStatus string

const (
	CatalogStatusActive   CatalogStatus = "Active"
	CatalogStatusInactive CatalogStatus = "Inactive"
)

// ParseCatalogStatus parses a catalog status case-insensitively
func ParseCatalogStatus(s string) (CatalogStatus, bool) {
	switch st := CatalogStatus(canonical(s)); st {
	case CatalogStatusActive, CatalogStatusInactive:
		return st, true
	default:
		return "", false
	}
}

// QuoteStatus is the lifecycle state of a quote request
type QuoteStatus string

const (
	QuoteStatusPending    QuoteStatus = "Pending"
	QuoteStatusQuoted     QuoteStatus = "Quoted"
	QuoteStatusAccepted   QuoteStatus = "Accepted"
	QuoteStatusProcessing QuoteStatus = "Processing"
	QuoteStatusRejected   QuoteStatus = "Rejected"
)

// ParseQuoteStatus parses a quote status case-insensitively.
// Legacy rows may carry lower-case values such as "pending".
func ParseQuoteStatus(s string) (QuoteStatus, bool) {
	switch st := QuoteStatus(canonical(s)); st {
	case QuoteStatusPending, QuoteStatusQuoted, QuoteStatusAccepted, QuoteStatusProcessing, QuoteStatusRejected:
		return st, true
	default:
		return "", false
	}
}

// OpenForOffers reports whether sellers may still bid
func (s QuoteStatus) OpenForOffers() bool {
	st, _ := ParseQuoteStatus(string(s))
	return st == QuoteStatusPending || st == QuoteStatusQuoted
}

// OpenQuoteStatuses returns the lower-cased statuses that accept offers,
// for case-insensitive comparison in queries
func OpenQuoteStatuses() []string {
	return []string{
		strings.ToLower(string(QuoteStatusPending)),
		strings.ToLower(string(QuoteStatusQuoted)),
	}
}

// BroadcastStatus is the outcome of seller matching for a broadcast quote
type BroadcastStatus string

const (
	BroadcastStatusBroadcasted      BroadcastStatus = "BROADCASTED"
	BroadcastStatusNoSellers        BroadcastStatus = "NO_SELLERS"
	BroadcastStatusGeneralBroadcast BroadcastStatus = "GENERAL_BROADCAST"
)

// OfferStatus is the state of a single seller offer
type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "Pending"
	OfferStatusAccepted OfferStatus = "Accepted"
	OfferStatusRejected OfferStatus = "Rejected"
)

const (
	// BroadcastTarget and MultipleTarget are sentinel seller ids meaning "match for me"
	BroadcastTarget = "BROADCAST"
	MultipleTarget  = "MULTIPLE"

	// DefaultProductName is used when a quote carries no named item
	DefaultProductName = "Steel Items"

	DefaultMetalType = "Steel"
	DefaultUnit      = "kg"

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 6
	// PasswordMaxLength is the most bytes bcrypt will hash
	PasswordMaxLength = 72
	// PasswordHashCost is the bcrypt cost factor
	PasswordHashCost = 10
)

// IsBroadcastTarget reports whether a requested seller id means broadcast
func IsBroadcastTarget(sellerID string) bool {
	s := strings.TrimSpace(sellerID)
	return s == "" || strings.EqualFold(s, BroadcastTarget) || strings.EqualFold(s, MultipleTarget)
}

// canonical title-cases an enum value ("pending" -> "Pending")
func canonical(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return cases.Title(language.Und).String(strings.ToLower(s))
}
