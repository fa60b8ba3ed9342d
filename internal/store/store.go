package store

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

// CatalogFilter narrows ListCatalogEntries. Nil fields are not applied.
type CatalogFilter struct {
	Category  *string
	MetalType *string
	Status    *domain.CatalogStatus
	IsMaster  *bool
	SellerID  *uuid.UUID
}

// CatalogEntryPatch holds the mutable fields of a catalog entry. Nil fields are left unchanged.
type CatalogEntryPatch struct {
	Name        *string
	Category    *string
	MetalType   *string
	Brand       *string
	Grade       *string
	Finish      *string
	Size        *string
	Variety     *string
	Type        *string
	Description *string
	ImageURL    *string
	Price       *decimal.Decimal
	Quantity    *decimal.Decimal
	Unit        *string
	Status      *domain.CatalogStatus
}

// ToggleListingInput is the input for ToggleSellerListing
type ToggleListingInput struct {
	MasterEntryID uuid.UUID
	SellerID      uuid.UUID
	SellerName    string
	Status        domain.CatalogStatus
}

// QuoteFilter narrows ListQuotes. At most one of BuyerID, SellerID and Available is expected.
type QuoteFilter struct {
	BuyerID *uuid.UUID
	// SellerID matches quotes bound to the seller and broadcasts the seller was matched to
	SellerID *uuid.UUID
	// Available selects broadcast-eligible quotes that still accept offers
	Available bool
}

// SubmitOfferInput is the input for SubmitOffer
type SubmitOfferInput struct {
	QuoteID      uuid.UUID
	SellerID     uuid.UUID
	SellerName   string
	OfferedPrice decimal.Decimal
	Message      *string
}

// AcceptOfferInput is the input for AcceptOffer
type AcceptOfferInput struct {
	QuoteID    uuid.UUID
	OfferID    uuid.UUID
	FinalPrice decimal.Decimal
}

// QuotePatch holds the mutable fields of a quote. Nil fields are left unchanged.
type QuotePatch struct {
	Status       *domain.QuoteStatus
	TargetPrice  *decimal.Decimal
	DeliveryDate *time.Time
	BuyerAddress *string
	BuyerPhone   *string
}

// SeedResult reports the outcome of SeedMasterEntries
type SeedResult struct {
	Added     int
	Skipped   int
	Processed int
}

// Store defines the interface for database operations
type Store interface {
	// Ping checks the database connection
	Ping(ctx context.Context) error
	// Close releases the connection; later calls return domain.ErrNotConnected
	Close() error

	// CreateAccount inserts an account. A unique violation returns *domain.DuplicateKeyError.
	CreateAccount(ctx context.Context, account *schema.Account) error
	// GetAccountByID retrieves an account, nil if absent
	GetAccountByID(ctx context.Context, id uuid.UUID) (*schema.Account, error)
	// GetAccountByUsername retrieves an account by username regardless of role, nil if absent
	GetAccountByUsername(ctx context.Context, username string) (*schema.Account, error)
	// GetAccountByUsernameAndRole retrieves an account for login, nil if absent
	GetAccountByUsernameAndRole(ctx context.Context, username string, role domain.Role) (*schema.Account, error)
	// GetAccountByEmailAndRole retrieves an account by email within a role, nil if absent
	GetAccountByEmailAndRole(ctx context.Context, email string, role domain.Role) (*schema.Account, error)
	// ListAccounts lists accounts newest first, optionally of one role
	ListAccounts(ctx context.Context, role *domain.Role) ([]schema.Account, error)
	// RecordLogin marks the account Online and stamps its last login
	RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// CreateCatalogEntry inserts a catalog entry
	CreateCatalogEntry(ctx context.Context, entry *schema.CatalogEntry) error
	// GetCatalogEntryByID retrieves any catalog entry, nil if absent
	GetCatalogEntryByID(ctx context.Context, id uuid.UUID) (*schema.CatalogEntry, error)
	// GetMasterEntryByID retrieves a master entry, nil if absent or not a master
	GetMasterEntryByID(ctx context.Context, id uuid.UUID) (*schema.CatalogEntry, error)
	// FindMasterEntryByName retrieves the oldest master entry with exactly this name, nil if none
	FindMasterEntryByName(ctx context.Context, name string) (*schema.CatalogEntry, error)
	// ListCatalogEntries lists entries newest first
	ListCatalogEntries(ctx context.Context, filter CatalogFilter) ([]schema.CatalogEntry, error)
	// ListMasterEntriesForSeller lists master entries annotated with the seller's listing state
	ListMasterEntriesForSeller(ctx context.Context, sellerID uuid.UUID, filter CatalogFilter) ([]schema.SellerListingView, error)
	// ListActiveSellerIDsForMasters returns the distinct sellers with an Active listing of any of the masters
	ListActiveSellerIDsForMasters(ctx context.Context, masterIDs []uuid.UUID) ([]uuid.UUID, error)
	// ToggleSellerListing sets the seller's listing status, cloning the master on first use.
	// It returns the listing and whether it was created. A missing master returns nil, false, nil.
	ToggleSellerListing(ctx context.Context, input ToggleListingInput) (*schema.CatalogEntry, bool, error)
	// UpdateCatalogEntry applies the patch, returning the updated entry or nil if absent
	UpdateCatalogEntry(ctx context.Context, id uuid.UUID, patch CatalogEntryPatch) (*schema.CatalogEntry, error)
	// DeleteCatalogEntry removes an entry, reporting whether it existed
	DeleteCatalogEntry(ctx context.Context, id uuid.UUID) (bool, error)
	// SeedMasterEntries inserts master entries, skipping duplicates of an existing attribute tuple
	SeedMasterEntries(ctx context.Context, entries []schema.CatalogEntry) (SeedResult, error)

	// CreateQuote inserts a quote request
	CreateQuote(ctx context.Context, quote *schema.Quote) error
	// GetQuoteByID retrieves a quote with its offers oldest first, nil if absent
	GetQuoteByID(ctx context.Context, id uuid.UUID) (*schema.Quote, error)
	// ListQuotes lists quotes newest first
	ListQuotes(ctx context.Context, filter QuoteFilter) ([]schema.Quote, error)
	// SubmitOffer replaces the seller's offer and marks the quote Quoted.
	// It returns domain.ErrQuoteNotFound or domain.ErrQuoteClosed.
	SubmitOffer(ctx context.Context, input SubmitOfferInput) (*schema.QuoteOffer, error)
	// AcceptOffer accepts one offer and rejects the rest in one transaction.
	// It returns domain.ErrQuoteNotFound, domain.ErrOfferNotFound or domain.ErrQuoteClosed.
	AcceptOffer(ctx context.Context, input AcceptOfferInput) (*schema.Quote, error)
	// MarkQuotePaid moves an Accepted quote to Processing.
	// It returns domain.ErrQuoteNotFound or domain.ErrQuoteClosed.
	MarkQuotePaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (*schema.Quote, error)
	// UpdateQuote applies the patch, returning the updated quote or nil if absent
	UpdateQuote(ctx context.Context, id uuid.UUID, patch QuotePatch) (*schema.Quote, error)
}
