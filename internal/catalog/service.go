package catalog

//go:generate mockgen -source=service.go -destination=../mocks/catalog_service.go -package=mocks -mock_names=Service=MockCatalogService

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
	"github.com/steel-suvidha/marketplace-api/internal/store"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

// CreateEntryInput is the input for CreateEntry
type CreateEntryInput struct {
	Name          string
	Category      string
	MetalType     string
	Brand         string
	Grade         string
	Finish        string
	Size          string
	Variety       string
	Type          string
	Description   string
	ImageURL      string
	Price         *decimal.Decimal
	Quantity      *decimal.Decimal
	Unit          string
	Status        string
	IsMaster      bool
	MasterEntryID *uuid.UUID
	SellerID      *uuid.UUID
	SellerName    string
}

// UpdateEntryInput holds the mutable fields of an entry. Nil fields are left unchanged.
type UpdateEntryInput struct {
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
	Status      *string
}

// ToggleInput is the input for ToggleMaster
type ToggleInput struct {
	MasterEntryID uuid.UUID
	SellerID      uuid.UUID
	SellerName    string
	Status        string
}

// ToggleResult reports the seller listing after a toggle
type ToggleResult struct {
	Listing *schema.CatalogEntry
	Created bool
}

// Message is the human readable outcome of the toggle
func (r *ToggleResult) Message() string {
	if r.Created {
		return "Product added to your inventory"
	}
	return fmt.Sprintf("Product marked as %s", r.Listing.Status)
}

// Service manages master catalog entries and seller listings
type Service interface {
	// CreateEntry creates a master entry, or a seller listing when MasterEntryID is set
	CreateEntry(ctx context.Context, input CreateEntryInput) (*schema.CatalogEntry, error)
	// ToggleMaster activates or deactivates a seller's listing of a master entry, cloning it on first use
	ToggleMaster(ctx context.Context, input ToggleInput) (*ToggleResult, error)
	// List lists catalog entries newest first
	List(ctx context.Context, filter store.CatalogFilter) ([]schema.CatalogEntry, error)
	// ListMastersForSeller lists master entries annotated with the seller's listing status
	ListMastersForSeller(ctx context.Context, sellerID uuid.UUID, filter store.CatalogFilter) ([]schema.SellerListingView, error)
	// ListBySeller lists the seller's listings newest first
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]schema.CatalogEntry, error)
	// Get retrieves one entry
	Get(ctx context.Context, id uuid.UUID) (*schema.CatalogEntry, error)
	// Update applies a patch to one entry
	Update(ctx context.Context, id uuid.UUID, input UpdateEntryInput) (*schema.CatalogEntry, error)
	// Delete removes one entry
	Delete(ctx context.Context, id uuid.UUID) error
	// SeedMaster inserts the static master catalog, skipping entries that already exist
	SeedMaster(ctx context.Context) (store.SeedResult, error)
}

type service struct {
	store store.Store
}

// NewService creates a new catalog service
func NewService(st store.Store) Service {
	return &service{store: st}
}

// CreateEntry creates a catalog entry
func (s *service) CreateEntry(ctx context.Context, input CreateEntryInput) (*schema.CatalogEntry, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" || category == "" {
		return nil, domain.NewValidationError("Name and category are required")
	}

	status, err := parseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	// Without an owner or a master to clone from, the entry is a template
	isMaster := input.IsMaster || (input.MasterEntryID == nil && input.SellerID == nil)
	if isMaster {
		if input.MasterEntryID != nil || input.SellerID != nil {
			return nil, domain.NewValidationError("Master entries cannot have a seller or a master entry")
		}
	} else {
		if input.MasterEntryID == nil {
			return nil, domain.NewValidationError("masterEntryId is required for seller listings")
		}
		if input.SellerID == nil {
			return nil, domain.NewValidationError("sellerId is required for seller listings")
		}
		master, err := s.store.GetMasterEntryByID(ctx, *input.MasterEntryID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to create product", err)
		}
		if master == nil {
			return nil, domain.NewNotFoundError("Master product not found")
		}
	}

	entry := &schema.CatalogEntry{
		Name:          name,
		Category:      category,
		MetalType:     orDefault(input.MetalType, domain.DefaultMetalType),
		Brand:         strings.TrimSpace(input.Brand),
		Grade:         strings.TrimSpace(input.Grade),
		Finish:        strings.TrimSpace(input.Finish),
		Size:          strings.TrimSpace(input.Size),
		Variety:       strings.TrimSpace(input.Variety),
		Type:          strings.TrimSpace(input.Type),
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		Price:         nullDecimal(input.Price),
		Quantity:      nullDecimal(input.Quantity),
		Unit:          orDefault(input.Unit, domain.DefaultUnit),
		IsMaster:      isMaster,
		MasterEntryID: input.MasterEntryID,
		Status:        status,
		SellerID:      input.SellerID,
		SellerName:    strings.TrimSpace(input.SellerName),
	}

	if err := s.store.CreateCatalogEntry(ctx, entry); err != nil {
		var dup *domain.DuplicateKeyError
		if errors.As(err, &dup) {
			if isMaster {
				return nil, domain.NewConflictError("A master product with these attributes already exists")
			}
			return nil, domain.NewConflictError("Seller already lists this master product")
		}
		return nil, domain.NewInternalError("Failed to create product", err)
	}

	return entry, nil
}

// ToggleMaster activates or deactivates a seller's listing of a master entry
func (s *service) ToggleMaster(ctx context.Context, input ToggleInput) (*ToggleResult, error) {
	if input.MasterEntryID == uuid.Nil || input.SellerID == uuid.Nil {
		return nil, domain.NewValidationError("masterEntryId and sellerId are required")
	}

	status, err := parseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	listing, created, err := s.store.ToggleSellerListing(ctx, store.ToggleListingInput{
		MasterEntryID: input.MasterEntryID,
		SellerID:      input.SellerID,
		SellerName:    strings.TrimSpace(input.SellerName),
		Status:        status,
	})
	if err != nil {
		return nil, domain.NewInternalError("Internal server error during toggle", err)
	}
	if listing == nil {
		return nil, domain.NewNotFoundError("Master product not found")
	}

	logger.InfoCtx(ctx, "Toggled seller listing",
		zap.String("masterEntryId", input.MasterEntryID.String()),
		zap.String("sellerId", input.SellerID.String()),
		zap.String("status", string(status)),
		zap.Bool("created", created))

	return &ToggleResult{Listing: listing, Created: created}, nil
}

// List lists catalog entries
func (s *service) List(ctx context.Context, filter store.CatalogFilter) ([]schema.CatalogEntry, error) {
	entries, err := s.store.ListCatalogEntries(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get products", err)
	}
	return entries, nil
}

// ListMastersForSeller lists master entries with the seller's listing status
func (s *service) ListMastersForSeller(ctx context.Context, sellerID uuid.UUID, filter store.CatalogFilter) ([]schema.SellerListingView, error) {
	views, err := s.store.ListMasterEntriesForSeller(ctx, sellerID, filter)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get products", err)
	}
	return views, nil
}

// ListBySeller lists the seller's listings
func (s *service) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]schema.CatalogEntry, error) {
	isMaster := false
	entries, err := s.store.ListCatalogEntries(ctx, store.CatalogFilter{
		SellerID: &sellerID,
		IsMaster: &isMaster,
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to get products", err)
	}
	return entries, nil
}

// Get retrieves one entry
func (s *service) Get(ctx context.Context, id uuid.UUID) (*schema.CatalogEntry, error) {
	entry, err := s.store.GetCatalogEntryByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get product", err)
	}
	if entry == nil {
		return nil, domain.NewNotFoundError("Product not found")
	}
	return entry, nil
}

// Update applies a patch to one entry
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateEntryInput) (*schema.CatalogEntry, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domain.NewValidationError("name cannot be empty")
	}
	if input.Category != nil && strings.TrimSpace(*input.Category) == "" {
		return nil, domain.NewValidationError("category cannot be empty")
	}

	patch := store.CatalogEntryPatch{
		Name:        input.Name,
		Category:    input.Category,
		MetalType:   input.MetalType,
		Brand:       input.Brand,
		Grade:       input.Grade,
		Finish:      input.Finish,
		Size:        input.Size,
		Variety:     input.Variety,
		Type:        input.Type,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
	}
	if input.Status != nil {
		status, ok := domain.ParseCatalogStatus(*input.Status)
		if !ok {
			return nil, domain.NewValidationError("invalid status: %s", *input.Status)
		}
		patch.Status = &status
	}

	entry, err := s.store.UpdateCatalogEntry(ctx, id, patch)
	if err != nil {
		var dup *domain.DuplicateKeyError
		if errors.As(err, &dup) {
			return nil, domain.NewConflictError("A master product with these attributes already exists")
		}
		return nil, domain.NewInternalError("Failed to update product", err)
	}
	if entry == nil {
		return nil, domain.NewNotFoundError("Product not found")
	}
	return entry, nil
}

// Delete removes one entry
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.store.DeleteCatalogEntry(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to delete product", err)
	}
	if !deleted {
		return domain.NewNotFoundError("Product not found")
	}
	return nil
}

// SeedMaster inserts the static master catalog
func (s *service) SeedMaster(ctx context.Context) (store.SeedResult, error) {
	entries := MasterCatalog()
	result, err := s.store.SeedMasterEntries(ctx, entries)
	if err != nil {
		return store.SeedResult{}, domain.NewInternalError("Failed to seed master catalog", err)
	}

	logger.InfoCtx(ctx, "Seeded master catalog",
		zap.Int("added", result.Added),
		zap.Int("skipped", result.Skipped),
		zap.Int("processed", result.Processed))

	return result, nil
}

// parseStatus parses a catalog status, treating empty as Active
func parseStatus(raw string) (domain.CatalogStatus, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.CatalogStatusActive, nil
	}
	status, ok := domain.ParseCatalogStatus(raw)
	if !ok {
		return "", domain.NewValidationError("invalid status: %s", raw)
	}
	return status, nil
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
