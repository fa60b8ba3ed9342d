package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

type pgStore struct {
	db     *gorm.DB
	closed atomic.Bool
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// database/sql treats MaxOpenConns=0 as "unlimited" and MaxIdleConns=0 as "no idle connections".
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays under
// PostgreSQL's limit of 65535 parameters per statement.
//
// Each record consumes one parameter per inserted column, and the ON CONFLICT
// clause and GORM bookkeeping add a fixed amount per batch, so a total headroom
// is reserved rather than a per-record overhead.
//
// Example with headroom of 1000:
//   - CatalogEntry: 22 fields → (65,535 - 1,000) / 22 = 2,933 records/batch
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// conn returns a session bound to ctx, or domain.ErrNotConnected
func (s *pgStore) conn(ctx context.Context) (*gorm.DB, error) {
	if s.db == nil || s.closed.Load() {
		return nil, domain.ErrNotConnected
	}
	return s.db.WithContext(ctx), nil
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func (s *pgStore) Close() error {
	if s.db == nil || !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// =============================================================================
// Accounts
// =============================================================================

// CreateAccount inserts an account
func (s *pgStore) CreateAccount(ctx context.Context, account *schema.Account) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(account).Error
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("failed to create account: %w", err)
	}

	// The translated error does not carry the constraint name
	field := "email"
	existing, lookupErr := s.GetAccountByUsername(ctx, account.Username)
	if lookupErr == nil && existing != nil {
		field = "username"
	}
	return &domain.DuplicateKeyError{Field: field, Err: err}
}

// GetAccountByID retrieves an account by its identifier
func (s *pgStore) GetAccountByID(ctx context.Context, id uuid.UUID) (*schema.Account, error) {
	return s.firstAccount(ctx, "id = ?", id)
}

// GetAccountByUsername retrieves an account by username across all roles
func (s *pgStore) GetAccountByUsername(ctx context.Context, username string) (*schema.Account, error) {
	return s.firstAccount(ctx, "username = ?", username)
}

// GetAccountByUsernameAndRole retrieves an account by username within a role
func (s *pgStore) GetAccountByUsernameAndRole(ctx context.Context, username string, role domain.Role) (*schema.Account, error) {
	return s.firstAccount(ctx, "username = ? AND role = ?", username, role)
}

// GetAccountByEmailAndRole retrieves an account by email within a role
func (s *pgStore) GetAccountByEmailAndRole(ctx context.Context, email string, role domain.Role) (*schema.Account, error) {
	return s.firstAccount(ctx, "email = ? AND role = ?", email, role)
}

func (s *pgStore) firstAccount(ctx context.Context, query string, args ...any) (*schema.Account, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var account schema.Account
	err = db.Where(query, args...).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// ListAccounts lists accounts newest first
func (s *pgStore) ListAccounts(ctx context.Context, role *domain.Role) ([]schema.Account, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&schema.Account{})
	if role != nil {
		query = query.Where("role = ?", *role)
	}

	accounts := []schema.Account{}
	if err := query.Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// RecordLogin marks the account Online and stamps its last login
func (s *pgStore) RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	err = db.Model(&schema.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"presence":      domain.PresenceOnline,
			"last_login_at": at,
			"updated_at":    at,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	return nil
}

// =============================================================================
// Catalog
// =============================================================================

// CreateCatalogEntry inserts a catalog entry
func (s *pgStore) CreateCatalogEntry(ctx context.Context, entry *schema.CatalogEntry) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			field := "masterEntryId"
			if entry.IsMaster {
				field = "attributes"
			}
			return &domain.DuplicateKeyError{Field: field, Err: err}
		}
		return fmt.Errorf("failed to create catalog entry: %w", err)
	}
	return nil
}

// GetCatalogEntryByID retrieves a catalog entry by its identifier
func (s *pgStore) GetCatalogEntryByID(ctx context.Context, id uuid.UUID) (*schema.CatalogEntry, error) {
	return s.firstCatalogEntry(ctx, "id = ?", id)
}

// GetMasterEntryByID retrieves a master entry by its identifier
func (s *pgStore) GetMasterEntryByID(ctx context.Context, id uuid.UUID) (*schema.CatalogEntry, error) {
	return s.firstCatalogEntry(ctx, "id = ? AND is_master = ?", id, true)
}

// FindMasterEntryByName retrieves the oldest master entry with the exact name
func (s *pgStore) FindMasterEntryByName(ctx context.Context, name string) (*schema.CatalogEntry, error) {
	return s.firstCatalogEntry(ctx, "name = ? AND is_master = ?", name, true)
}

func (s *pgStore) firstCatalogEntry(ctx context.Context, query string, args ...any) (*schema.CatalogEntry, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var entry schema.CatalogEntry
	err = db.Where(query, args...).Order("created_at ASC").First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog entry: %w", err)
	}
	return &entry, nil
}

// ListCatalogEntries lists catalog entries newest first
func (s *pgStore) ListCatalogEntries(ctx context.Context, filter CatalogFilter) ([]schema.CatalogEntry, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&schema.CatalogEntry{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.MetalType != nil {
		query = query.Where("metal_type = ?", *filter.MetalType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.IsMaster != nil {
		query = query.Where("is_master = ?", *filter.IsMaster)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}

	entries := []schema.CatalogEntry{}
	if err := query.Order("created_at DESC").Order("name ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	return entries, nil
}

// ListMasterEntriesForSeller lists master entries annotated with the seller's listing
// state. A Status filter applies to the listing state, not to the master.
func (s *pgStore) ListMasterEntriesForSeller(ctx context.Context, sellerID uuid.UUID, filter CatalogFilter) ([]schema.SellerListingView, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	listingStatus := fmt.Sprintf("COALESCE(l.status, '%s')", domain.CatalogStatusInactive)
	query := db.Table("catalog_entries AS m").
		Select("m.*, l.id AS listing_id, "+listingStatus+" AS listing_status").
		Joins("LEFT JOIN catalog_entries AS l ON l.master_entry_id = m.id AND l.seller_id = ?", sellerID).
		Where("m.is_master = ?", true)
	if filter.Category != nil {
		query = query.Where("m.category = ?", *filter.Category)
	}
	if filter.MetalType != nil {
		query = query.Where("m.metal_type = ?", *filter.MetalType)
	}
	if filter.Status != nil {
		query = query.Where(listingStatus+" = ?", *filter.Status)
	}

	views := []schema.SellerListingView{}
	if err := query.Order("m.created_at DESC").Order("m.name ASC").Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list master entries for seller: %w", err)
	}
	return views, nil
}

// ListActiveSellerIDsForMasters returns the distinct sellers with an Active listing of any master
func (s *pgStore) ListActiveSellerIDsForMasters(ctx context.Context, masterIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(masterIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	sellerIDs := []uuid.UUID{}
	err = db.Model(&schema.CatalogEntry{}).
		Distinct().
		Where("master_entry_id IN ? AND is_master = ? AND status = ? AND seller_id IS NOT NULL",
			masterIDs, false, domain.CatalogStatusActive).
		Pluck("seller_id", &sellerIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers for master entries: %w", err)
	}
	return sellerIDs, nil
}

// ToggleSellerListing sets the seller's listing status, cloning the master on first use
func (s *pgStore) ToggleSellerListing(ctx context.Context, input ToggleListingInput) (*schema.CatalogEntry, bool, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, false, err
	}

	var listing *schema.CatalogEntry
	var created bool
	err = db.Transaction(func(tx *gorm.DB) error {
		var master schema.CatalogEntry
		err := tx.Where("id = ? AND is_master = ?", input.MasterEntryID, true).First(&master).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get master entry: %w", err)
		}

		existing, err := lockListing(tx, input.MasterEntryID, input.SellerID)
		if err != nil {
			return err
		}

		if existing == nil {
			clone := master.CloneForSeller(input.SellerID, input.SellerName, input.Status)
			// The savepoint keeps the outer transaction usable if a concurrent toggle won the insert
			err = tx.Transaction(func(inner *gorm.DB) error {
				return inner.Create(clone).Error
			})
			if err == nil {
				listing = clone
				created = true
				return nil
			}
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("failed to create seller listing: %w", err)
			}

			existing, err = lockListing(tx, input.MasterEntryID, input.SellerID)
			if err != nil {
				return err
			}
			if existing == nil {
				return errors.New("failed to create seller listing: duplicate listing not found")
			}
		}

		updates := map[string]any{
			"status":     input.Status,
			"updated_at": time.Now(),
		}
		if input.SellerName != "" {
			updates["seller_name"] = input.SellerName
		}
		if err := tx.Model(existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update seller listing: %w", err)
		}
		existing.Status = input.Status
		if input.SellerName != "" {
			existing.SellerName = input.SellerName
		}
		listing = existing
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return listing, created, nil
}

// lockListing selects the seller's listing of a master FOR UPDATE, nil if absent
func lockListing(tx *gorm.DB, masterID, sellerID uuid.UUID) (*schema.CatalogEntry, error) {
	var listing schema.CatalogEntry
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("master_entry_id = ? AND seller_id = ?", masterID, sellerID).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock seller listing: %w", err)
	}
	return &listing, nil
}

// UpdateCatalogEntry applies the patch to a catalog entry
func (s *pgStore) UpdateCatalogEntry(ctx context.Context, id uuid.UUID, patch CatalogEntryPatch) (*schema.CatalogEntry, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now()}
	setIf(updates, "name", patch.Name)
	setIf(updates, "category", patch.Category)
	setIf(updates, "metal_type", patch.MetalType)
	setIf(updates, "brand", patch.Brand)
	setIf(updates, "grade", patch.Grade)
	setIf(updates, "finish", patch.Finish)
	setIf(updates, "size", patch.Size)
	setIf(updates, "variety", patch.Variety)
	setIf(updates, "type", patch.Type)
	setIf(updates, "description", patch.Description)
	setIf(updates, "image_url", patch.ImageURL)
	setIf(updates, "price", patch.Price)
	setIf(updates, "quantity", patch.Quantity)
	setIf(updates, "unit", patch.Unit)
	setIf(updates, "status", patch.Status)

	var result *gorm.DB
	err = db.Transaction(func(tx *gorm.DB) error {
		result = tx.Model(&schema.CatalogEntry{}).Where("id = ?", id).Updates(updates)
		return result.Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &domain.DuplicateKeyError{Field: "attributes", Err: err}
		}
		return nil, fmt.Errorf("failed to update catalog entry: %w", err)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return s.getCatalogEntryFromPrimary(ctx, id)
}

// getCatalogEntryFromPrimary reads an entry that was just written, bypassing replicas
func (s *pgStore) getCatalogEntryFromPrimary(ctx context.Context, id uuid.UUID) (*schema.CatalogEntry, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	if hasDBResolver(db) {
		db = db.Clauses(dbresolver.Write)
	}

	var entry schema.CatalogEntry
	if err := db.Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog entry: %w", err)
	}
	return &entry, nil
}

// DeleteCatalogEntry removes a catalog entry
func (s *pgStore) DeleteCatalogEntry(ctx context.Context, id uuid.UUID) (bool, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return false, err
	}

	result := db.Where("id = ?", id).Delete(&schema.CatalogEntry{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete catalog entry: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// SeedMasterEntries inserts master entries in batches, skipping any whose attribute
// tuple already exists
func (s *pgStore) SeedMasterEntries(ctx context.Context, entries []schema.CatalogEntry) (SeedResult, error) {
	if len(entries) == 0 {
		return SeedResult{}, nil
	}

	db, err := s.conn(ctx)
	if err != nil {
		return SeedResult{}, err
	}

	for i := range entries {
		entries[i].IsMaster = true
		entries[i].MasterEntryID = nil
		entries[i].SellerID = nil
		entries[i].SellerName = ""
	}

	const fieldsPerEntry = 22
	batchSize := calculateSafeBatchSize(len(entries), fieldsPerEntry)

	var added int64
	err = db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "category"}, {Name: "brand"}, {Name: "size"}, {Name: "grade"},
				{Name: "finish"}, {Name: "variety"}, {Name: "type"},
			},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "is_master"}}},
			DoNothing:   true,
		}).CreateInBatches(&entries, batchSize)
		if result.Error != nil {
			return result.Error
		}
		added = result.RowsAffected
		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("failed to seed master entries: %w", err)
	}

	return SeedResult{
		Added:     int(added),
		Skipped:   len(entries) - int(added),
		Processed: len(entries),
	}, nil
}

// =============================================================================
// Quotes
// =============================================================================

func preloadOffers(db *gorm.DB) *gorm.DB {
	return db.Preload("Offers", func(db *gorm.DB) *gorm.DB {
		return db.Order("submitted_at ASC").Order("id ASC")
	})
}

// CreateQuote inserts a quote request
func (s *pgStore) CreateQuote(ctx context.Context, quote *schema.Quote) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}

	if err := db.Omit("Offers").Create(quote).Error; err != nil {
		return fmt.Errorf("failed to create quote: %w", err)
	}
	return nil
}

// GetQuoteByID retrieves a quote with its offers
func (s *pgStore) GetQuoteByID(ctx context.Context, id uuid.UUID) (*schema.Quote, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	query := func(db *gorm.DB) (*schema.Quote, error) {
		var quote schema.Quote
		if err := preloadOffers(db).Where("id = ?", id).First(&quote).Error; err != nil {
			return nil, err
		}
		return &quote, nil
	}

	quote, err := query(db)
	if err == nil {
		return quote, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	if !hasDBResolver(db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	quote, err = query(db.Clauses(dbresolver.Write))
	if err == nil {
		return quote, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get quote: %w", err)
}

// ListQuotes lists quotes newest first
func (s *pgStore) ListQuotes(ctx context.Context, filter QuoteFilter) ([]schema.Quote, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	query := preloadOffers(db.Model(&schema.Quote{}))
	if filter.BuyerID != nil {
		query = query.Where("buyer_id = ?", *filter.BuyerID)
	}
	if filter.SellerID != nil {
		matched, err := json.Marshal([]map[string]string{{"sellerId": filter.SellerID.String()}})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal seller filter: %w", err)
		}
		query = query.Where("(seller_id = ? OR (seller_id IS NULL AND matched_sellers @> ?::jsonb))",
			*filter.SellerID, string(matched))
	}
	if filter.Available {
		query = query.
			Where("(is_broadcast = ? OR seller_id IS NULL OR broadcast_status IN ?)", true,
				[]domain.BroadcastStatus{domain.BroadcastStatusBroadcasted, domain.BroadcastStatusGeneralBroadcast}).
			Where("LOWER(status) IN ?", domain.OpenQuoteStatuses())
	}

	quotes := []schema.Quote{}
	if err := query.Order("created_at DESC").Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

// quoteClosedOrMissing resolves why a conditional quote update touched no row
func quoteClosedOrMissing(tx *gorm.DB, id uuid.UUID) error {
	var count int64
	if err := tx.Model(&schema.Quote{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check quote: %w", err)
	}
	if count == 0 {
		return domain.ErrQuoteNotFound
	}
	return domain.ErrQuoteClosed
}

// SubmitOffer replaces the seller's offer and marks the quote Quoted.
// The quote row is updated first so a concurrent accept is serialized behind it.
func (s *pgStore) SubmitOffer(ctx context.Context, input SubmitOfferInput) (*schema.QuoteOffer, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	offer := &schema.QuoteOffer{
		QuoteID:      input.QuoteID,
		SellerID:     input.SellerID,
		SellerName:   input.SellerName,
		OfferedPrice: input.OfferedPrice,
		Message:      input.Message,
		Status:       domain.OfferStatusPending,
		SubmittedAt:  now,
		UpdatedAt:    now,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Quote{}).
			Where("id = ? AND LOWER(status) IN ?", input.QuoteID, domain.OpenQuoteStatuses()).
			Updates(map[string]any{
				"status":     domain.QuoteStatusQuoted,
				"updated_at": now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update quote status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return quoteClosedOrMissing(tx, input.QuoteID)
		}

		// One live offer per seller: a re-bid replaces the row, including its id
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "quote_id"}, {Name: "seller_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"id", "seller_name", "offered_price", "message", "status", "submitted_at", "updated_at",
			}),
		}).Create(offer).Error
		if err != nil {
			return fmt.Errorf("failed to upsert offer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return offer, nil
}

// AcceptOffer accepts one offer and rejects the others
func (s *pgStore) AcceptOffer(ctx context.Context, input AcceptOfferInput) (*schema.Quote, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var accepted schema.Quote
	err = db.Transaction(func(tx *gorm.DB) error {
		var quote schema.Quote
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.QuoteID).
			First(&quote).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrQuoteNotFound
			}
			return fmt.Errorf("failed to lock quote: %w", err)
		}

		var offer schema.QuoteOffer
		err = tx.Where("id = ? AND quote_id = ?", input.OfferID, input.QuoteID).First(&offer).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOfferNotFound
			}
			return fmt.Errorf("failed to get offer: %w", err)
		}

		if !quote.Status.OpenForOffers() {
			return domain.ErrQuoteClosed
		}

		now := time.Now()
		err = tx.Model(&schema.QuoteOffer{}).
			Where("quote_id = ?", input.QuoteID).
			Updates(map[string]any{
				"status": gorm.Expr("CASE WHEN id = ? THEN ? ELSE ? END",
					input.OfferID, domain.OfferStatusAccepted, domain.OfferStatusRejected),
				"updated_at": now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update offer statuses: %w", err)
		}

		err = tx.Model(&schema.Quote{}).
			Where("id = ?", input.QuoteID).
			Updates(map[string]any{
				"status":            domain.QuoteStatusAccepted,
				"seller_id":         offer.SellerID,
				"seller_name":       offer.SellerName,
				"final_price":       input.FinalPrice,
				"accepted_offer_id": offer.ID,
				"updated_at":        now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to accept quote: %w", err)
		}

		return preloadOffers(tx).Where("id = ?", input.QuoteID).First(&accepted).Error
	})
	if err != nil {
		return nil, err
	}

	return &accepted, nil
}

// MarkQuotePaid moves an Accepted quote to Processing
func (s *pgStore) MarkQuotePaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (*schema.Quote, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var paid schema.Quote
	err = db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Quote{}).
			Where("id = ? AND LOWER(status) = ?", id, strings.ToLower(string(domain.QuoteStatusAccepted))).
			Updates(map[string]any{
				"status":     domain.QuoteStatusProcessing,
				"paid_at":    paidAt,
				"updated_at": paidAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to mark quote paid: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return quoteClosedOrMissing(tx, id)
		}

		return preloadOffers(tx).Where("id = ?", id).First(&paid).Error
	})
	if err != nil {
		return nil, err
	}

	return &paid, nil
}

// UpdateQuote applies the patch to a quote
func (s *pgStore) UpdateQuote(ctx context.Context, id uuid.UUID, patch QuotePatch) (*schema.Quote, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now()}
	setIf(updates, "status", patch.Status)
	setIf(updates, "target_price", patch.TargetPrice)
	setIf(updates, "delivery_date", patch.DeliveryDate)
	setIf(updates, "buyer_address", patch.BuyerAddress)
	setIf(updates, "buyer_phone", patch.BuyerPhone)

	result := db.Model(&schema.Quote{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update quote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	if hasDBResolver(db) {
		db = db.Clauses(dbresolver.Write)
	}
	var quote schema.Quote
	if err := preloadOffers(db).Where("id = ?", id).First(&quote).Error; err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return &quote, nil
}

// setIf adds the dereferenced value to updates when it is set
func setIf[T any](updates map[string]any, column string, value *T) {
	if value != nil {
		updates[column] = *value
	}
}
