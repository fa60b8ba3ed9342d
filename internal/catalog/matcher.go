package catalog

//go:generate mockgen -source=matcher.go -destination=../mocks/catalog_matcher.go -package=mocks -mock_names=Matcher=MockMatcher

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
	"github.com/steel-suvidha/marketplace-api/internal/store"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

// MatchResult is the frozen outcome of matching a quote against the catalog
type MatchResult struct {
	Sellers []schema.MatchedSeller
	Status  domain.BroadcastStatus
}

// Matcher resolves the sellers that stock the products a buyer asked for
type Matcher interface {
	// Match resolves line items to master entries and returns the sellers
	// with an Active listing of any of them
	Match(ctx context.Context, items []schema.LineItem) (*MatchResult, error)
}

type matcher struct {
	store store.Store
}

// NewMatcher creates a new catalog matcher
func NewMatcher(st store.Store) Matcher {
	return &matcher{store: st}
}

// Match resolves the sellers for the line items
func (m *matcher) Match(ctx context.Context, items []schema.LineItem) (*MatchResult, error) {
	masterIDs, err := m.resolveMasters(ctx, items)
	if err != nil {
		return nil, err
	}
	if len(masterIDs) == 0 {
		return &MatchResult{
			Sellers: []schema.MatchedSeller{},
			Status:  domain.BroadcastStatusGeneralBroadcast,
		}, nil
	}

	sellerIDs, err := m.store.ListActiveSellerIDsForMasters(ctx, masterIDs)
	if err != nil {
		return nil, err
	}

	sellers := make([]schema.MatchedSeller, 0, len(sellerIDs))
	for _, id := range sellerIDs {
		account, err := m.store.GetAccountByID(ctx, id)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to look up matched seller",
				zap.String("sellerId", id.String()),
				zap.Error(err))
			continue
		}
		if account == nil || account.Role != domain.RoleSeller {
			continue
		}

		name := account.Name
		if name == "" {
			name = "Unknown Seller"
		}
		sellers = append(sellers, schema.MatchedSeller{SellerID: id, SellerName: name})
	}

	status := domain.BroadcastStatusNoSellers
	if len(sellers) > 0 {
		status = domain.BroadcastStatusBroadcasted
	}
	return &MatchResult{Sellers: sellers, Status: status}, nil
}

// resolveMasters maps items to distinct master entry ids, by id first and then by exact name.
// Items that resolve to nothing are skipped.
func (m *matcher) resolveMasters(ctx context.Context, items []schema.LineItem) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))

	for _, item := range items {
		var master *schema.CatalogEntry
		var err error

		if item.CatalogEntryID != nil {
			master, err = m.store.GetMasterEntryByID(ctx, *item.CatalogEntryID)
			if err != nil {
				return nil, err
			}
		}
		if master == nil {
			if name := strings.TrimSpace(item.ProductName); name != "" {
				master, err = m.store.FindMasterEntryByName(ctx, name)
				if err != nil {
					return nil, err
				}
			}
		}
		if master == nil {
			continue
		}

		if _, ok := seen[master.ID]; !ok {
			seen[master.ID] = struct{}{}
			ids = append(ids, master.ID)
		}
	}

	return ids, nil
}
