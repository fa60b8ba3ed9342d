package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestAccount creates a test account
func buildTestAccount(role domain.Role, username, email string) *schema.Account {
	return &schema.Account{
		Name:         "Test " + username,
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         role,
		Status:       domain.AccountStatusActive,
		Presence:     domain.PresenceOffline,
	}
}

// buildTestMaster creates a master catalog entry
func buildTestMaster(name, category, brand, size string) *schema.CatalogEntry {
	return &schema.CatalogEntry{
		Name:      name,
		Category:  category,
		MetalType: domain.DefaultMetalType,
		Brand:     brand,
		Size:      size,
		Unit:      domain.DefaultUnit,
		IsMaster:  true,
		Status:    domain.CatalogStatusActive,
		Price:     decimal.NewNullDecimal(decimal.Zero),
		Quantity:  decimal.NewNullDecimal(decimal.Zero),
	}
}

// buildTestQuote creates a broadcast quote for the buyer
func buildTestQuote(buyerID uuid.UUID, productName string, createdAt time.Time) *schema.Quote {
	return &schema.Quote{
		BuyerID:   buyerID,
		BuyerName: "Test Buyer",
		Items: []schema.LineItem{
			{ProductName: productName, Quantity: "10", Unit: "kg"},
		},
		ProductName:       productName,
		RequestedQuantity: 10,
		IsBroadcast:       true,
		MatchedSellers:    []schema.MatchedSeller{},
		Status:            domain.QuoteStatusPending,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
}

func broadcastStatusPtr(s domain.BroadcastStatus) *domain.BroadcastStatus {
	return &s
}

func stringPtr(s string) *string {
	return &s
}

// createTestQuoteWithOffers creates a quote and one offer per seller
func createTestQuoteWithOffers(t *testing.T, store Store, sellers ...uuid.UUID) (*schema.Quote, []*schema.QuoteOffer) {
	t.Helper()
	ctx := context.Background()

	quote := buildTestQuote(uuid.New(), "TMT 500 D 12 mm", time.Now())
	require.NoError(t, store.CreateQuote(ctx, quote))

	offers := make([]*schema.QuoteOffer, 0, len(sellers))
	for i, sellerID := range sellers {
		offer, err := store.SubmitOffer(ctx, SubmitOfferInput{
			QuoteID:      quote.ID,
			SellerID:     sellerID,
			SellerName:   "Seller",
			OfferedPrice: decimal.NewFromInt(int64(45000 + i*1000)),
		})
		require.NoError(t, err)
		offers = append(offers, offer)
	}
	return quote, offers
}

// =============================================================================
// Accounts
// =============================================================================

func testAccounts(t *testing.T, store Store) {
	ctx := context.Background()

	buyer := buildTestAccount(domain.RoleBuyer, "ravi", "ravi@example.com")
	require.NoError(t, store.CreateAccount(ctx, buyer))
	require.NotEqual(t, uuid.Nil, buyer.ID)

	t.Run("get by id, username and role", func(t *testing.T) {
		got, err := store.GetAccountByID(ctx, buyer.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "ravi", got.Username)
		assert.Equal(t, domain.RoleBuyer, got.Role)

		got, err = store.GetAccountByUsernameAndRole(ctx, "ravi", domain.RoleBuyer)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, buyer.ID, got.ID)

		got, err = store.GetAccountByUsernameAndRole(ctx, "ravi", domain.RoleSeller)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = store.GetAccountByEmailAndRole(ctx, "ravi@example.com", domain.RoleBuyer)
		require.NoError(t, err)
		require.NotNil(t, got)

		got, err = store.GetAccountByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("username is unique across roles", func(t *testing.T) {
		seller := buildTestAccount(domain.RoleSeller, "ravi", "other@example.com")
		err := store.CreateAccount(ctx, seller)
		require.Error(t, err)

		var dup *domain.DuplicateKeyError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "username", dup.Field)
	})

	t.Run("email is unique within a role", func(t *testing.T) {
		other := buildTestAccount(domain.RoleBuyer, "ravi2", "ravi@example.com")
		err := store.CreateAccount(ctx, other)
		require.Error(t, err)

		var dup *domain.DuplicateKeyError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "email", dup.Field)
	})

	t.Run("same email under another role", func(t *testing.T) {
		seller := buildTestAccount(domain.RoleSeller, "ravi-steels", "ravi@example.com")
		require.NoError(t, store.CreateAccount(ctx, seller))

		sellers, err := store.ListAccounts(ctx, &seller.Role)
		require.NoError(t, err)
		require.Len(t, sellers, 1)
		assert.Equal(t, seller.ID, sellers[0].ID)

		all, err := store.ListAccounts(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("record login", func(t *testing.T) {
		at := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, store.RecordLogin(ctx, buyer.ID, at))

		got, err := store.GetAccountByID(ctx, buyer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PresenceOnline, got.Presence)
		require.NotNil(t, got.LastLoginAt)
		assert.True(t, at.Equal(*got.LastLoginAt))
	})
}

// =============================================================================
// Catalog
// =============================================================================

func testCatalogEntries(t *testing.T, store Store) {
	ctx := context.Background()

	master := buildTestMaster("TMT 500 D 12 mm", "TMT Rebars", "SAIL", "12 mm")
	master.Grade = "500 D"
	require.NoError(t, store.CreateCatalogEntry(ctx, master))

	t.Run("get master", func(t *testing.T) {
		got, err := store.GetMasterEntryByID(ctx, master.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.IsMaster)
		assert.Nil(t, got.SellerID)
		assert.Nil(t, got.MasterEntryID)

		byName, err := store.FindMasterEntryByName(ctx, "TMT 500 D 12 mm")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, master.ID, byName.ID)

		missing, err := store.FindMasterEntryByName(ctx, "TMT 500 D 13 mm")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate master attributes", func(t *testing.T) {
		clash := buildTestMaster("Another name", "TMT Rebars", "SAIL", "12 mm")
		clash.Grade = "500 D"
		err := store.CreateCatalogEntry(ctx, clash)

		var dup *domain.DuplicateKeyError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "attributes", dup.Field)
	})

	t.Run("listing is not a master", func(t *testing.T) {
		sellerID := uuid.New()
		listing := master.CloneForSeller(sellerID, "Patna Steels", domain.CatalogStatusActive)
		require.NoError(t, store.CreateCatalogEntry(ctx, listing))

		got, err := store.GetMasterEntryByID(ctx, listing.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = store.GetCatalogEntryByID(ctx, listing.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, &master.ID, got.MasterEntryID)
		assert.Equal(t, &sellerID, got.SellerID)

		dupListing := master.CloneForSeller(sellerID, "Patna Steels", domain.CatalogStatusInactive)
		err = store.CreateCatalogEntry(ctx, dupListing)
		var dup *domain.DuplicateKeyError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "masterEntryId", dup.Field)
	})

	t.Run("list with filters", func(t *testing.T) {
		angle := buildTestMaster("Angle A 40×5", "Angles", "SAIL", "A 40×5")
		angle.CreatedAt = time.Now().Add(time.Minute)
		require.NoError(t, store.CreateCatalogEntry(ctx, angle))

		isMaster := true
		masters, err := store.ListCatalogEntries(ctx, CatalogFilter{IsMaster: &isMaster})
		require.NoError(t, err)
		require.Len(t, masters, 2)
		assert.Equal(t, angle.ID, masters[0].ID, "newest first")

		category := "TMT Rebars"
		tmt, err := store.ListCatalogEntries(ctx, CatalogFilter{Category: &category})
		require.NoError(t, err)
		assert.Len(t, tmt, 2)

		inactive := domain.CatalogStatusInactive
		none, err := store.ListCatalogEntries(ctx, CatalogFilter{Status: &inactive})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("update", func(t *testing.T) {
		price := decimal.NewFromInt(52000)
		desc := "Fe 500 D rebar"
		updated, err := store.UpdateCatalogEntry(ctx, master.ID, CatalogEntryPatch{
			Price:       &price,
			Description: &desc,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, price.Equal(updated.Price.Decimal))
		assert.Equal(t, desc, updated.Description)
		assert.Equal(t, "TMT 500 D 12 mm", updated.Name)

		missing, err := store.UpdateCatalogEntry(ctx, uuid.New(), CatalogEntryPatch{Price: &price})
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("delete", func(t *testing.T) {
		extra := buildTestMaster("Flat 25×3", "Flats", "SAIL", "25×3")
		require.NoError(t, store.CreateCatalogEntry(ctx, extra))

		deleted, err := store.DeleteCatalogEntry(ctx, extra.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.DeleteCatalogEntry(ctx, extra.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("deleting a master keeps its listings", func(t *testing.T) {
		plate := buildTestMaster("Plate 10 mm", "Plates", "SAIL", "10 mm")
		require.NoError(t, store.CreateCatalogEntry(ctx, plate))
		listing := plate.CloneForSeller(uuid.New(), "Patna Steels", domain.CatalogStatusActive)
		require.NoError(t, store.CreateCatalogEntry(ctx, listing))

		deleted, err := store.DeleteCatalogEntry(ctx, plate.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := store.GetCatalogEntryByID(ctx, listing.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, &plate.ID, got.MasterEntryID)
	})
}

func testToggleSellerListing(t *testing.T, store Store) {
	ctx := context.Background()

	master := buildTestMaster("TMT 550 D 16 mm", "TMT Rebars", "JSW", "16 mm")
	require.NoError(t, store.CreateCatalogEntry(ctx, master))
	sellerID := uuid.New()

	t.Run("missing master", func(t *testing.T) {
		listing, created, err := store.ToggleSellerListing(ctx, ToggleListingInput{
			MasterEntryID: uuid.New(),
			SellerID:      sellerID,
			Status:        domain.CatalogStatusActive,
		})
		require.NoError(t, err)
		assert.Nil(t, listing)
		assert.False(t, created)
	})

	var listingID uuid.UUID
	t.Run("first toggle clones the master", func(t *testing.T) {
		listing, created, err := store.ToggleSellerListing(ctx, ToggleListingInput{
			MasterEntryID: master.ID,
			SellerID:      sellerID,
			SellerName:    "Patna Steels",
			Status:        domain.CatalogStatusActive,
		})
		require.NoError(t, err)
		require.NotNil(t, listing)
		assert.True(t, created)
		assert.False(t, listing.IsMaster)
		assert.Equal(t, master.Name, listing.Name)
		assert.Equal(t, "Patna Steels", listing.SellerName)
		assert.Equal(t, domain.CatalogStatusActive, listing.Status)
		listingID = listing.ID
	})

	t.Run("later toggles flip the same row", func(t *testing.T) {
		for _, status := range []domain.CatalogStatus{domain.CatalogStatusInactive, domain.CatalogStatusInactive, domain.CatalogStatusActive} {
			listing, created, err := store.ToggleSellerListing(ctx, ToggleListingInput{
				MasterEntryID: master.ID,
				SellerID:      sellerID,
				Status:        status,
			})
			require.NoError(t, err)
			assert.False(t, created)
			assert.Equal(t, listingID, listing.ID)
			assert.Equal(t, status, listing.Status)
			assert.Equal(t, "Patna Steels", listing.SellerName)
		}

		isMaster := false
		listings, err := store.ListCatalogEntries(ctx, CatalogFilter{SellerID: &sellerID, IsMaster: &isMaster})
		require.NoError(t, err)
		assert.Len(t, listings, 1)
	})

	t.Run("active sellers for masters", func(t *testing.T) {
		inactiveSeller := uuid.New()
		_, _, err := store.ToggleSellerListing(ctx, ToggleListingInput{
			MasterEntryID: master.ID,
			SellerID:      inactiveSeller,
			Status:        domain.CatalogStatusInactive,
		})
		require.NoError(t, err)

		ids, err := store.ListActiveSellerIDsForMasters(ctx, []uuid.UUID{master.ID, uuid.New()})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{sellerID}, ids)

		ids, err = store.ListActiveSellerIDsForMasters(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("masters annotated for a seller", func(t *testing.T) {
		unlisted := buildTestMaster("TMT 600 D 20 mm", "TMT Rebars", "JSW", "20 mm")
		require.NoError(t, store.CreateCatalogEntry(ctx, unlisted))

		views, err := store.ListMasterEntriesForSeller(ctx, sellerID, CatalogFilter{})
		require.NoError(t, err)
		require.Len(t, views, 2)

		byID := make(map[uuid.UUID]schema.SellerListingView, len(views))
		for _, v := range views {
			byID[v.ID] = v
		}
		assert.Equal(t, domain.CatalogStatusActive, byID[master.ID].ListingStatus)
		require.NotNil(t, byID[master.ID].ListingID)
		assert.Equal(t, listingID, *byID[master.ID].ListingID)
		assert.Equal(t, domain.CatalogStatusInactive, byID[unlisted.ID].ListingStatus)
		assert.Nil(t, byID[unlisted.ID].ListingID)

		active := domain.CatalogStatusActive
		views, err = store.ListMasterEntriesForSeller(ctx, sellerID, CatalogFilter{Status: &active})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, master.ID, views[0].ID)
	})
}

func testSeedMasterEntries(t *testing.T, store Store) {
	ctx := context.Background()

	entries := func() []schema.CatalogEntry {
		return []schema.CatalogEntry{
			*buildTestMaster("Plate 5 mm", "Plates", "SAIL", "5 mm"),
			*buildTestMaster("Plate 6 mm", "Plates", "SAIL", "6 mm"),
			*buildTestMaster("Plate 6 mm", "Plates", "JSPL", "6 mm"),
		}
	}

	result, err := store.SeedMasterEntries(ctx, entries())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Added: 3, Skipped: 0, Processed: 3}, result)

	result, err = store.SeedMasterEntries(ctx, entries())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Added: 0, Skipped: 3, Processed: 3}, result)

	more := append(entries(), *buildTestMaster("Plate 8 mm", "Plates", "SAIL", "8 mm"))
	result, err = store.SeedMasterEntries(ctx, more)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 3, result.Skipped)

	result, err = store.SeedMasterEntries(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, result)
}

// =============================================================================
// Quotes
// =============================================================================

func testQuotes(t *testing.T, store Store) {
	ctx := context.Background()
	buyerID := uuid.New()
	sellerID := uuid.New()
	now := time.Now()

	broadcast := buildTestQuote(buyerID, "TMT 500 D 12 mm", now.Add(-3*time.Minute))
	broadcast.BroadcastStatus = broadcastStatusPtr(domain.BroadcastStatusBroadcasted)
	broadcast.MatchedSellers = []schema.MatchedSeller{{SellerID: sellerID, SellerName: "Patna Steels"}}
	require.NoError(t, store.CreateQuote(ctx, broadcast))

	bound := buildTestQuote(buyerID, "Angle A 40×5", now.Add(-2*time.Minute))
	bound.IsBroadcast = false
	bound.SellerID = &sellerID
	bound.SellerName = "Patna Steels"
	require.NoError(t, store.CreateQuote(ctx, bound))

	otherBound := buildTestQuote(uuid.New(), "Flat 25×3", now.Add(-time.Minute))
	otherBound.IsBroadcast = false
	otherSeller := uuid.New()
	otherBound.SellerID = &otherSeller
	require.NoError(t, store.CreateQuote(ctx, otherBound))

	legacy := buildTestQuote(uuid.New(), "Legacy", now)
	legacy.Status = domain.QuoteStatus("pending")
	legacy.BroadcastStatus = broadcastStatusPtr(domain.BroadcastStatusGeneralBroadcast)
	require.NoError(t, store.CreateQuote(ctx, legacy))

	t.Run("get with items", func(t *testing.T) {
		got, err := store.GetQuoteByID(ctx, broadcast.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got.Items, 1)
		assert.Equal(t, domain.Quantity("10"), got.Items[0].Quantity)
		assert.Equal(t, 10.0, got.RequestedQuantity)
		require.Len(t, got.MatchedSellers, 1)
		assert.Equal(t, sellerID, got.MatchedSellers[0].SellerID)
		assert.Empty(t, got.Offers)

		missing, err := store.GetQuoteByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("list for buyer", func(t *testing.T) {
		quotes, err := store.ListQuotes(ctx, QuoteFilter{BuyerID: &buyerID})
		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.Equal(t, bound.ID, quotes[0].ID, "newest first")
		assert.Equal(t, broadcast.ID, quotes[1].ID)
	})

	t.Run("list for seller", func(t *testing.T) {
		quotes, err := store.ListQuotes(ctx, QuoteFilter{SellerID: &sellerID})
		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.Equal(t, bound.ID, quotes[0].ID)
		assert.Equal(t, broadcast.ID, quotes[1].ID)

		stranger := uuid.New()
		quotes, err = store.ListQuotes(ctx, QuoteFilter{SellerID: &stranger})
		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("list available", func(t *testing.T) {
		quotes, err := store.ListQuotes(ctx, QuoteFilter{Available: true})
		require.NoError(t, err)

		ids := make([]uuid.UUID, 0, len(quotes))
		for _, q := range quotes {
			ids = append(ids, q.ID)
		}
		assert.Equal(t, []uuid.UUID{legacy.ID, broadcast.ID}, ids)
	})

	t.Run("update", func(t *testing.T) {
		target := decimal.NewFromInt(44000)
		status := domain.QuoteStatusRejected
		updated, err := store.UpdateQuote(ctx, otherBound.ID, QuotePatch{
			TargetPrice: &target,
			BuyerPhone:  stringPtr("9876543210"),
			Status:      &status,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, target.Equal(updated.TargetPrice.Decimal))
		assert.Equal(t, "9876543210", *updated.BuyerPhone)
		assert.Equal(t, domain.QuoteStatusRejected, updated.Status)

		missing, err := store.UpdateQuote(ctx, uuid.New(), QuotePatch{Status: &status})
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func testSubmitOffer(t *testing.T, store Store) {
	ctx := context.Background()
	sellerID := uuid.New()
	quote, _ := createTestQuoteWithOffers(t, store)

	t.Run("first offer marks the quote quoted", func(t *testing.T) {
		offer, err := store.SubmitOffer(ctx, SubmitOfferInput{
			QuoteID:      quote.ID,
			SellerID:     sellerID,
			SellerName:   "Patna Steels",
			OfferedPrice: decimal.NewFromInt(45000),
			Message:      stringPtr("Delivery in 3 days"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusPending, offer.Status)

		got, err := store.GetQuoteByID(ctx, quote.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusQuoted, got.Status)
		require.Len(t, got.Offers, 1)
		assert.True(t, decimal.NewFromInt(45000).Equal(got.Offers[0].OfferedPrice))
	})

	t.Run("re-bid replaces the offer", func(t *testing.T) {
		offer, err := store.SubmitOffer(ctx, SubmitOfferInput{
			QuoteID:      quote.ID,
			SellerID:     sellerID,
			SellerName:   "Patna Steels",
			OfferedPrice: decimal.NewFromInt(43500),
		})
		require.NoError(t, err)

		got, err := store.GetQuoteByID(ctx, quote.ID)
		require.NoError(t, err)
		require.Len(t, got.Offers, 1)
		assert.Equal(t, offer.ID, got.Offers[0].ID)
		assert.True(t, decimal.NewFromInt(43500).Equal(got.Offers[0].OfferedPrice))
		assert.Nil(t, got.Offers[0].Message)
	})

	t.Run("offers keep submission order", func(t *testing.T) {
		second := uuid.New()
		_, err := store.SubmitOffer(ctx, SubmitOfferInput{
			QuoteID:      quote.ID,
			SellerID:     second,
			SellerName:   "Bihar Metals",
			OfferedPrice: decimal.NewFromInt(44000),
		})
		require.NoError(t, err)

		got, err := store.GetQuoteByID(ctx, quote.ID)
		require.NoError(t, err)
		require.Len(t, got.Offers, 2)
		assert.Equal(t, sellerID, got.Offers[0].SellerID)
		assert.Equal(t, second, got.Offers[1].SellerID)
	})

	t.Run("missing quote", func(t *testing.T) {
		_, err := store.SubmitOffer(ctx, SubmitOfferInput{
			QuoteID:      uuid.New(),
			SellerID:     sellerID,
			OfferedPrice: decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
	})
}

func testAcceptOffer(t *testing.T, store Store) {
	ctx := context.Background()
	winner := uuid.New()
	loser := uuid.New()
	quote, offers := createTestQuoteWithOffers(t, store, winner, loser)

	t.Run("unknown offer", func(t *testing.T) {
		_, err := store.AcceptOffer(ctx, AcceptOfferInput{
			QuoteID:    quote.ID,
			OfferID:    uuid.New(),
			FinalPrice: decimal.NewFromInt(45000),
		})
		assert.ErrorIs(t, err, domain.ErrOfferNotFound)
	})

	t.Run("unknown quote", func(t *testing.T) {
		_, err := store.AcceptOffer(ctx, AcceptOfferInput{
			QuoteID: uuid.New(),
			OfferID: offers[0].ID,
		})
		assert.ErrorIs(t, err, domain.ErrQuoteNotFound)
	})

	t.Run("accept flips every offer", func(t *testing.T) {
		accepted, err := store.AcceptOffer(ctx, AcceptOfferInput{
			QuoteID:    quote.ID,
			OfferID:    offers[0].ID,
			FinalPrice: offers[0].OfferedPrice,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.QuoteStatusAccepted, accepted.Status)
		require.NotNil(t, accepted.SellerID)
		assert.Equal(t, winner, *accepted.SellerID)
		assert.Equal(t, offers[0].SellerName, accepted.SellerName)
		require.NotNil(t, accepted.AcceptedOfferID)
		assert.Equal(t, offers[0].ID, *accepted.AcceptedOfferID)
		assert.True(t, offers[0].OfferedPrice.Equal(accepted.FinalPrice.Decimal))

		require.Len(t, accepted.Offers, 2)
		for _, o := range accepted.Offers {
			if o.ID == offers[0].ID {
				assert.Equal(t, domain.OfferStatusAccepted, o.Status)
			} else {
				assert.Equal(t, domain.OfferStatusRejected, o.Status)
			}
		}
	})

	t.Run("closed after accept", func(t *testing.T) {
		_, err := store.AcceptOffer(ctx, AcceptOfferInput{
			QuoteID: quote.ID,
			OfferID: offers[1].ID,
		})
		assert.ErrorIs(t, err, domain.ErrQuoteClosed)

		_, err = store.SubmitOffer(ctx, SubmitOfferInput{
			QuoteID:      quote.ID,
			SellerID:     loser,
			OfferedPrice: decimal.NewFromInt(40000),
		})
		assert.ErrorIs(t, err, domain.ErrQuoteClosed)
	})
}

func testMarkQuotePaid(t *testing.T, store Store) {
	ctx := context.Background()
	sellerID := uuid.New()
	quote, offers := createTestQuoteWithOffers(t, store, sellerID)
	paidAt := time.Now().UTC().Truncate(time.Second)

	_, err := store.MarkQuotePaid(ctx, quote.ID, paidAt)
	assert.ErrorIs(t, err, domain.ErrQuoteClosed, "a quoted request cannot be paid")

	_, err = store.MarkQuotePaid(ctx, uuid.New(), paidAt)
	assert.ErrorIs(t, err, domain.ErrQuoteNotFound)

	_, err = store.AcceptOffer(ctx, AcceptOfferInput{
		QuoteID:    quote.ID,
		OfferID:    offers[0].ID,
		FinalPrice: offers[0].OfferedPrice,
	})
	require.NoError(t, err)

	paid, err := store.MarkQuotePaid(ctx, quote.ID, paidAt)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteStatusProcessing, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.True(t, paidAt.Equal(*paid.PaidAt))

	_, err = store.MarkQuotePaid(ctx, quote.ID, paidAt)
	assert.ErrorIs(t, err, domain.ErrQuoteClosed)
}

// RunStoreTests runs all store tests
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Accounts", testAccounts},
		{"CatalogEntries", testCatalogEntries},
		{"ToggleSellerListing", testToggleSellerListing},
		{"SeedMasterEntries", testSeedMasterEntries},
		{"Quotes", testQuotes},
		{"SubmitOffer", testSubmitOffer},
		{"AcceptOffer", testAcceptOffer},
		{"MarkQuotePaid", testMarkQuotePaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
