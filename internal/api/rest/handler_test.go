package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steel-suvidha/marketplace-api/internal/api/middleware"
	"github.com/steel-suvidha/marketplace-api/internal/api/rest"
	"github.com/steel-suvidha/marketplace-api/internal/catalog"
	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/identity"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
	"github.com/steel-suvidha/marketplace-api/internal/mocks"
	"github.com/steel-suvidha/marketplace-api/internal/quote"
	"github.com/steel-suvidha/marketplace-api/internal/store"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// testHandlerMocks contains all the mocks behind the router
type testHandlerMocks struct {
	ctrl     *gomock.Controller
	identity *mocks.MockIdentityService
	catalog  *mocks.MockCatalogService
	quotes   *mocks.MockQuoteEngine
	store    *mocks.MockStore
	limiter  *mocks.MockLimiter
	tokens   *identity.TokenIssuer
	router   *gin.Engine
}

func setupTestRouter(t *testing.T, apiKeys ...string) *testHandlerMocks {
	ctrl := gomock.NewController(t)
	tm := &testHandlerMocks{
		ctrl:     ctrl,
		identity: mocks.NewMockIdentityService(ctrl),
		catalog:  mocks.NewMockCatalogService(ctrl),
		quotes:   mocks.NewMockQuoteEngine(ctrl),
		store:    mocks.NewMockStore(ctrl),
		limiter:  mocks.NewMockLimiter(ctrl),
		tokens:   identity.NewTokenIssuer("test-secret", time.Hour),
	}

	handler := rest.NewHandler(false, tm.identity, tm.catalog, tm.quotes, tm.store)
	tm.router = gin.New()
	rest.SetupRoutes(tm.router, handler, rest.RouteConfig{
		BasePath:     "/api",
		Auth:         middleware.AuthConfig{Tokens: tm.tokens, APIKeys: apiKeys},
		LoginLimiter: tm.limiter,
	})
	return tm
}

func (tm *testHandlerMocks) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, code, message string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, code, body["code"])
	assert.Equal(t, message, body["error"])
	assert.NotContains(t, body, "details")
}

func testAccount(role domain.Role) *schema.Account {
	return &schema.Account{
		ID:           uuid.New(),
		Name:         "Asha Traders",
		Email:        "asha@example.com",
		Username:     "asha",
		PasswordHash: "$2a$10$secret",
		Role:         role,
		Status:       domain.AccountStatusActive,
		Presence:     domain.PresenceOffline,
	}
}

func TestHandler_Housekeeping(t *testing.T) {
	tm := setupTestRouter(t)

	w := tm.do(http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	tm.store.EXPECT().Ping(gomock.Any()).Return(nil)
	w = tm.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"status":"Online","database":"Connected"}`, w.Body.String())

	tm.store.EXPECT().Ping(gomock.Any()).Return(domain.ErrNotConnected)
	w = tm.do(http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"ok":true,"status":"Online","database":"Disconnected"}`, w.Body.String())

	w = tm.do(http.MethodGet, "/api/nowhere", "")
	assertError(t, w, http.StatusNotFound, "not_found", "Route not found")

	w = tm.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Login(t *testing.T) {
	account := testAccount(domain.RoleSeller)
	expiresAt := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, time.Duration(0))
		tm.identity.EXPECT().
			Login(gomock.Any(), identity.LoginInput{Username: "asha", Password: "secret1", Role: "Seller"}).
			Return(&identity.LoginResult{Account: account, Token: "signed", ExpiresAt: expiresAt}, nil)

		w := tm.do(http.MethodPost, "/api/login", `{"username":"asha","password":"secret1","role":"Seller"}`)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "signed", body["token"])
		user := body["user"].(map[string]any)
		assert.Equal(t, account.ID.String(), user["id"])
		assert.NotContains(t, user, "passwordHash")
		assert.NotContains(t, w.Body.String(), account.PasswordHash)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, time.Duration(0))
		tm.identity.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, domain.NewUnauthorizedError("Invalid credentials"))

		w := tm.do(http.MethodPost, "/api/login", `{"username":"asha","password":"nope","role":"Buyer"}`)
		assertError(t, w, http.StatusUnauthorized, "unauthorized", "Invalid credentials")
	})

	t.Run("throttled", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, 30*time.Second)

		w := tm.do(http.MethodPost, "/api/login", `{"username":"asha","password":"nope","role":"Buyer"}`)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "30", w.Header().Get("Retry-After"))
	})

	t.Run("unknown field", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, time.Duration(0))

		w := tm.do(http.MethodPost, "/api/login", `{"username":"asha","password":"x","role":"Buyer","admin":true}`)
		assertError(t, w, http.StatusBadRequest, "validation_failed", `Invalid request body: unknown field "admin"`)
	})

	t.Run("empty body", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, time.Duration(0))

		w := tm.do(http.MethodPost, "/api/login", "")
		assertError(t, w, http.StatusBadRequest, "validation_failed", "Request body is required")
	})

	t.Run("auth path", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, time.Duration(0))
		tm.identity.EXPECT().
			Login(gomock.Any(), identity.LoginInput{Username: "asha", Password: "secret1", Role: "Seller"}).
			Return(&identity.LoginResult{Account: account, Token: "signed", ExpiresAt: expiresAt}, nil)

		w := tm.do(http.MethodPost, "/api/auth/login", `{"username":"asha","password":"secret1","role":"Seller"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "signed", decodeBody(t, w)["token"])
	})

	t.Run("auth path is throttled too", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, 10*time.Second)

		w := tm.do(http.MethodPost, "/api/auth/login", `{"username":"asha","password":"nope","role":"Buyer"}`)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}

func TestHandler_Profiles(t *testing.T) {
	buyer := testAccount(domain.RoleBuyer)

	t.Run("get profile", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.identity.EXPECT().GetProfile(gomock.Any(), buyer.ID).Return(buyer, nil)

		w := tm.do(http.MethodGet, "/api/profile/"+buyer.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Buyer", decodeBody(t, w)["user"].(map[string]any)["role"])
	})

	t.Run("get profile under auth", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.identity.EXPECT().GetProfile(gomock.Any(), buyer.ID).Return(buyer, nil)

		w := tm.do(http.MethodGet, "/api/auth/profile/"+buyer.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, buyer.ID.String(), decodeBody(t, w)["user"].(map[string]any)["id"])
	})

	t.Run("malformed id", func(t *testing.T) {
		tm := setupTestRouter(t)
		w := tm.do(http.MethodGet, "/api/profile/64b7f0c2e4b0a1a2b3c4d5e6", "")
		assertError(t, w, http.StatusBadRequest, "validation_failed", "invalid user id")
	})

	t.Run("my profile", func(t *testing.T) {
		tm := setupTestRouter(t)
		token, _, err := tm.tokens.Issue(buyer.ID, buyer.Role, time.Now())
		require.NoError(t, err)
		tm.identity.EXPECT().GetProfile(gomock.Any(), buyer.ID).Return(buyer, nil)

		w := tm.do(http.MethodGet, "/api/profile/me", "", "Authorization", "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, buyer.ID.String(), decodeBody(t, w)["user"].(map[string]any)["id"])
	})

	t.Run("my profile without token", func(t *testing.T) {
		tm := setupTestRouter(t)
		w := tm.do(http.MethodGet, "/api/profile/me", "")
		assertError(t, w, http.StatusUnauthorized, "unauthorized", "Authentication failed")
	})

	t.Run("seller lookup of a buyer", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.identity.EXPECT().GetByID(gomock.Any(), buyer.ID, domain.RoleSeller).Return(nil, domain.NewNotFoundError("Seller not found"))

		w := tm.do(http.MethodGet, "/api/sellers/"+buyer.ID.String(), "")
		assertError(t, w, http.StatusNotFound, "not_found", "Seller not found")
	})

	t.Run("get buyer", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.identity.EXPECT().GetByID(gomock.Any(), buyer.ID, domain.RoleBuyer).Return(buyer, nil)

		w := tm.do(http.MethodGet, "/api/buyers/"+buyer.ID.String(), "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	t.Run("buyer", func(t *testing.T) {
		tm := setupTestRouter(t)
		account := testAccount(domain.RoleBuyer)
		tm.identity.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input identity.RegisterInput) (*schema.Account, error) {
				assert.Equal(t, domain.RoleBuyer, input.Role)
				assert.Equal(t, "Asha Traders", input.Name)
				assert.Equal(t, "Pune", input.Address)
				return account, nil
			})

		w := tm.do(http.MethodPost, "/api/buyers/register",
			`{"name":"Asha Traders","email":"asha@example.com","username":"asha","password":"secret1","address":"Pune"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Buyer registered successfully", body["message"])
	})

	t.Run("seller username conflict", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.identity.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewConflictError("Username already exists"))

		w := tm.do(http.MethodPost, "/api/sellers",
			`{"name":"Kiran Steel","email":"kiran@example.com","username":"asha","password":"secret1"}`)
		assertError(t, w, http.StatusConflict, "conflict", "Username already exists")
	})

	t.Run("internal error is generic", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.identity.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewInternalError("Failed to register account", errors.New("pq: too many connections")))

		w := tm.do(http.MethodPost, "/api/sellers",
			`{"name":"Kiran Steel","email":"kiran@example.com","username":"kiran","password":"secret1"}`)
		assertError(t, w, http.StatusInternalServerError, "internal_error", "Failed to register account")
		assert.NotContains(t, w.Body.String(), "pq:")
	})
}

func TestHandler_ListAccounts(t *testing.T) {
	tm := setupTestRouter(t)
	role := domain.RoleSeller
	tm.identity.EXPECT().ListAccounts(gomock.Any(), &role).Return([]schema.Account{*testAccount(domain.RoleSeller)}, nil)
	tm.identity.EXPECT().ListAccounts(gomock.Any(), nil).Return(nil, nil)

	w := tm.do(http.MethodGet, "/api/sellers", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
	assert.Len(t, body["sellers"], 1)

	w = tm.do(http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"users":[]}`, w.Body.String())
}

func TestHandler_Products(t *testing.T) {
	masterID := uuid.New()
	sellerID := uuid.New()
	master := &schema.CatalogEntry{
		ID:       masterID,
		Name:     "TMT 500 D 12mm",
		Category: "TMT Rebars",
		IsMaster: true,
		Status:   domain.CatalogStatusActive,
		Price:    decimal.NewNullDecimal(decimal.NewFromInt(52000)),
	}

	t.Run("create", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.catalog.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input catalog.CreateEntryInput) (*schema.CatalogEntry, error) {
				assert.True(t, input.IsMaster)
				require.NotNil(t, input.Price)
				assert.Equal(t, "52000", input.Price.String())
				return master, nil
			})

		w := tm.do(http.MethodPost, "/api/products", `{"name":"TMT 500 D 12mm","category":"TMT Rebars","price":"52000","isMaster":true}`)
		require.Equal(t, http.StatusCreated, w.Code)
		product := decodeBody(t, w)["product"].(map[string]any)
		assert.Equal(t, float64(52000), product["price"])
		assert.Nil(t, product["quantity"])
	})

	t.Run("toggle", func(t *testing.T) {
		tm := setupTestRouter(t)
		listing := master.CloneForSeller(sellerID, "Kiran Steel", domain.CatalogStatusActive)
		tm.catalog.EXPECT().
			ToggleMaster(gomock.Any(), catalog.ToggleInput{MasterEntryID: masterID, SellerID: sellerID, SellerName: "Kiran Steel", Status: "Active"}).
			Return(&catalog.ToggleResult{Listing: listing, Created: true}, nil)

		w := tm.do(http.MethodPost, "/api/products/toggle-master",
			`{"masterEntryId":"`+masterID.String()+`","sellerId":"`+sellerID.String()+`","sellerName":"Kiran Steel","status":"Active"}`)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Product added to your inventory", body["message"])
		assert.Equal(t, true, body["created"])
	})

	t.Run("toggle missing master", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.catalog.EXPECT().ToggleMaster(gomock.Any(), gomock.Any()).Return(nil, domain.NewNotFoundError("Master product not found"))

		w := tm.do(http.MethodPost, "/api/products/toggle-master",
			`{"masterProductId":"`+masterID.String()+`","sellerId":"`+sellerID.String()+`"}`)
		assertError(t, w, http.StatusNotFound, "not_found", "Master product not found")
	})

	t.Run("list with filters", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.catalog.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter store.CatalogFilter) ([]schema.CatalogEntry, error) {
				require.NotNil(t, filter.Category)
				assert.Equal(t, "TMT Rebars", *filter.Category)
				require.NotNil(t, filter.Status)
				assert.Equal(t, domain.CatalogStatusInactive, *filter.Status)
				require.NotNil(t, filter.IsMaster)
				assert.False(t, *filter.IsMaster)
				require.NotNil(t, filter.SellerID)
				assert.Equal(t, sellerID, *filter.SellerID)
				return []schema.CatalogEntry{}, nil
			})

		w := tm.do(http.MethodGet, "/api/products?category=TMT%20Rebars&status=inactive&isMaster=false&sellerId="+sellerID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"count":0,"products":[]}`, w.Body.String())
	})

	t.Run("seller view of masters", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.catalog.EXPECT().
			ListMastersForSeller(gomock.Any(), sellerID, gomock.Any()).
			Return([]schema.SellerListingView{{CatalogEntry: *master, ListingStatus: domain.CatalogStatusInactive}}, nil)

		w := tm.do(http.MethodGet, "/api/products?isMaster=true&sellerId="+sellerID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		products := decodeBody(t, w)["products"].([]any)
		require.Len(t, products, 1)
		assert.Equal(t, "Inactive", products[0].(map[string]any)["status"])
	})

	t.Run("list with bad status", func(t *testing.T) {
		tm := setupTestRouter(t)
		w := tm.do(http.MethodGet, "/api/products?status=archived", "")
		assertError(t, w, http.StatusBadRequest, "validation_failed", "invalid status: archived")
	})

	t.Run("get update delete", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.catalog.EXPECT().Get(gomock.Any(), masterID).Return(master, nil)
		tm.catalog.EXPECT().
			Update(gomock.Any(), masterID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, input catalog.UpdateEntryInput) (*schema.CatalogEntry, error) {
				require.NotNil(t, input.Grade)
				assert.Equal(t, "Fe 550", *input.Grade)
				assert.Nil(t, input.Name)
				return master, nil
			})
		tm.catalog.EXPECT().Delete(gomock.Any(), masterID).Return(domain.NewNotFoundError("Product not found"))

		w := tm.do(http.MethodGet, "/api/products/"+masterID.String(), "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = tm.do(http.MethodPut, "/api/products/"+masterID.String(), `{"grade":"Fe 550"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		w = tm.do(http.MethodPut, "/api/products/"+masterID.String(), `{"isMaster":false}`)
		assertError(t, w, http.StatusBadRequest, "validation_failed", `Invalid request body: unknown field "isMaster"`)

		w = tm.do(http.MethodDelete, "/api/products/"+masterID.String(), "")
		assertError(t, w, http.StatusNotFound, "not_found", "Product not found")
	})

	t.Run("seller products", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.catalog.EXPECT().ListBySeller(gomock.Any(), sellerID).Return(nil, nil)

		w := tm.do(http.MethodGet, "/api/products/seller/"+sellerID.String(), "")
		assert.JSONEq(t, `{"success":true,"count":0,"products":[]}`, w.Body.String())
	})
}

func TestHandler_SeedMasterCatalog(t *testing.T) {
	t.Run("open when no api keys", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.catalog.EXPECT().SeedMaster(gomock.Any()).Return(store.SeedResult{Added: 10, Skipped: 2, Processed: 12}, nil)

		w := tm.do(http.MethodPost, "/api/products/seed-master-catalog", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"message": "Master catalog seeding completed",
			"stats": {"totalAdded": 10, "totalSkipped": 2, "totalProcessed": 12}
		}`, w.Body.String())
	})

	t.Run("api key required when configured", func(t *testing.T) {
		tm := setupTestRouter(t, "ops-key")

		w := tm.do(http.MethodPost, "/api/products/seed-master-catalog", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		tm.catalog.EXPECT().SeedMaster(gomock.Any()).Return(store.SeedResult{Skipped: 12, Processed: 12}, nil)
		w = tm.do(http.MethodPost, "/api/products/seed-master-catalog", "", "Authorization", "ApiKey ops-key")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func testQuote(buyerID uuid.UUID) *schema.Quote {
	status := domain.BroadcastStatusBroadcasted
	sellerA, sellerB := uuid.New(), uuid.New()
	return &schema.Quote{
		ID:                uuid.New(),
		BuyerID:           buyerID,
		BuyerName:         "Asha Traders",
		Items:             []schema.LineItem{{ProductName: "TMT 500 D 12mm", Quantity: "12.5"}},
		ProductName:       "TMT 500 D 12mm",
		RequestedQuantity: 12.5,
		IsBroadcast:       true,
		BroadcastStatus:   &status,
		MatchedSellers: []schema.MatchedSeller{
			{SellerID: sellerA, SellerName: "Kiran Steel"},
			{SellerID: sellerB, SellerName: "Mehta Metals"},
		},
		Status: domain.QuoteStatusPending,
	}
}

func TestHandler_CreateQuote(t *testing.T) {
	buyerID := uuid.New()

	t.Run("broadcast", func(t *testing.T) {
		tm := setupTestRouter(t)
		q := testQuote(buyerID)
		tm.quotes.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input quote.CreateInput) (*schema.Quote, error) {
				assert.Equal(t, buyerID, input.BuyerID)
				assert.True(t, input.IsBroadcast)
				require.Len(t, input.Items, 1)
				assert.Equal(t, domain.Quantity("12.5"), input.Items[0].Quantity)
				return q, nil
			})

		w := tm.do(http.MethodPost, "/api/quotes",
			`{"buyerId":"`+buyerID.String()+`","buyerName":"Asha Traders","items":[{"productName":"TMT 500 D 12mm","quantity":12.5}],"isBroadcast":true}`)
		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Quote created and broadcasted to 2 seller(s)", body["message"])
		created := body["quote"].(map[string]any)
		assert.Equal(t, float64(2), created["matchedSellersCount"])
		assert.Equal(t, []any{}, created["offers"])
		assert.Equal(t, 12.5, created["requestedQuantity"])
	})

	t.Run("general broadcast", func(t *testing.T) {
		tm := setupTestRouter(t)
		q := testQuote(buyerID)
		status := domain.BroadcastStatusGeneralBroadcast
		q.BroadcastStatus = &status
		q.MatchedSellers = nil
		tm.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(q, nil)

		w := tm.do(http.MethodPost, "/api/quotes",
			`{"buyerId":"`+buyerID.String()+`","buyerName":"Asha Traders","productName":"Custom fabrication","requestedQuantity":"3"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Quote created successfully", decodeBody(t, w)["message"])
	})

	t.Run("missing buyer", func(t *testing.T) {
		tm := setupTestRouter(t)
		w := tm.do(http.MethodPost, "/api/quotes", `{"buyerName":"Asha Traders"}`)
		assertError(t, w, http.StatusBadRequest, "validation_failed", "buyerId and buyerName are required")
	})
}

func TestHandler_QuoteLifecycle(t *testing.T) {
	buyerID := uuid.New()
	sellerID := uuid.New()

	t.Run("submit offer", func(t *testing.T) {
		tm := setupTestRouter(t)
		q := testQuote(buyerID)
		q.Status = domain.QuoteStatusQuoted
		q.Offers = []schema.QuoteOffer{{
			ID:           uuid.New(),
			QuoteID:      q.ID,
			SellerID:     sellerID,
			SellerName:   "Kiran Steel",
			OfferedPrice: decimal.NewFromInt(45000),
			Status:       domain.OfferStatusPending,
		}}
		tm.quotes.EXPECT().
			SubmitOffer(gomock.Any(), quote.OfferInput{QuoteID: q.ID, SellerID: sellerID, SellerName: "Kiran Steel", Price: "45000"}).
			Return(q, nil)

		w := tm.do(http.MethodPost, "/api/quotes/"+q.ID.String()+"/offer",
			`{"sellerId":"`+sellerID.String()+`","sellerName":"Kiran Steel","offeredPrice":45000,"timestamp":"2026-10-17T08:00:00Z"}`)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		offer := body["offer"].(map[string]any)
		assert.Equal(t, float64(45000), offer["offeredPrice"])
		assert.Equal(t, q.Offers[0].ID.String(), offer["offerId"])
		assert.Equal(t, "Quoted", body["quote"].(map[string]any)["status"])
	})

	t.Run("submit offer on closed quote", func(t *testing.T) {
		tm := setupTestRouter(t)
		quoteID := uuid.New()
		tm.quotes.EXPECT().SubmitOffer(gomock.Any(), gomock.Any()).Return(nil, domain.NewConflictError("Quote is no longer accepting offers"))

		w := tm.do(http.MethodPost, "/api/quotes/"+quoteID.String()+"/offer",
			`{"sellerId":"`+sellerID.String()+`","offeredPrice":"45000"}`)
		assertError(t, w, http.StatusConflict, "conflict", "Quote is no longer accepting offers")
	})

	t.Run("accept", func(t *testing.T) {
		tm := setupTestRouter(t)
		q := testQuote(buyerID)
		offerID := uuid.New()
		q.Status = domain.QuoteStatusAccepted
		q.SellerID = &sellerID
		tm.quotes.EXPECT().
			AcceptOffer(gomock.Any(), quote.AcceptInput{QuoteID: q.ID, OfferID: offerID, SellerID: &sellerID, FinalPrice: "45000"}).
			Return(q, nil)

		w := tm.do(http.MethodPost, "/api/quotes/"+q.ID.String()+"/accept",
			`{"offerId":"`+offerID.String()+`","sellerId":"`+sellerID.String()+`","sellerName":"Kiran Steel","finalPrice":45000}`)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Offer accepted. Proceeding to payment.", body["message"])
		assert.Equal(t, sellerID.String(), body["quote"].(map[string]any)["sellerId"])
	})

	t.Run("accept unknown offer", func(t *testing.T) {
		tm := setupTestRouter(t)
		quoteID := uuid.New()
		tm.quotes.EXPECT().AcceptOffer(gomock.Any(), gomock.Any()).Return(nil, domain.NewNotFoundError("Offer not found"))

		w := tm.do(http.MethodPost, "/api/quotes/"+quoteID.String()+"/accept", `{"offerId":"`+uuid.NewString()+`"}`)
		assertError(t, w, http.StatusNotFound, "not_found", "Offer not found")
	})

	t.Run("pay", func(t *testing.T) {
		tm := setupTestRouter(t)
		q := testQuote(buyerID)
		q.Status = domain.QuoteStatusProcessing
		tm.quotes.EXPECT().MarkPaid(gomock.Any(), q.ID).Return(q, nil)

		w := tm.do(http.MethodPost, "/api/quotes/"+q.ID.String()+"/pay", "")
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Payment confirmed. Order moved to Processing.", body["message"])
		assert.Equal(t, "Processing", body["quote"].(map[string]any)["status"])
	})

	t.Run("update", func(t *testing.T) {
		tm := setupTestRouter(t)
		q := testQuote(buyerID)
		tm.quotes.EXPECT().
			Update(gomock.Any(), q.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, input quote.UpdateInput) (*schema.Quote, error) {
				require.NotNil(t, input.Status)
				assert.Equal(t, "rejected", *input.Status)
				assert.Nil(t, input.TargetPrice)
				return q, nil
			})

		w := tm.do(http.MethodPut, "/api/quotes/"+q.ID.String(), `{"status":"rejected"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		w = tm.do(http.MethodPut, "/api/quotes/"+q.ID.String(), `{"offers":[]}`)
		assertError(t, w, http.StatusBadRequest, "validation_failed", `Invalid request body: unknown field "offers"`)
	})

	t.Run("status patch", func(t *testing.T) {
		tm := setupTestRouter(t)
		q := testQuote(buyerID)
		q.Status = domain.QuoteStatusRejected
		tm.quotes.EXPECT().
			Update(gomock.Any(), q.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, input quote.UpdateInput) (*schema.Quote, error) {
				require.NotNil(t, input.Status)
				assert.Equal(t, "Rejected", *input.Status)
				return q, nil
			})

		w := tm.do(http.MethodPatch, "/api/quotes/"+q.ID.String()+"/status", `{"status":"Rejected"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Rejected", decodeBody(t, w)["quote"].(map[string]any)["status"])
	})

	t.Run("get and lists", func(t *testing.T) {
		tm := setupTestRouter(t)
		q := testQuote(buyerID)
		tm.quotes.EXPECT().Get(gomock.Any(), q.ID).Return(q, nil)
		tm.quotes.EXPECT().ListAvailable(gomock.Any()).Return([]schema.Quote{*q}, nil)
		tm.quotes.EXPECT().ListForBuyer(gomock.Any(), buyerID).Return([]schema.Quote{*q}, nil)
		tm.quotes.EXPECT().ListForSeller(gomock.Any(), sellerID).Return(nil, domain.NewInternalError("Failed to fetch quotes", errors.New("timeout")))

		w := tm.do(http.MethodGet, "/api/quotes/"+q.ID.String(), "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = tm.do(http.MethodGet, "/api/quotes/available", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), decodeBody(t, w)["count"])

		w = tm.do(http.MethodGet, "/api/quotes/buyer/"+buyerID.String(), "")
		assert.Len(t, decodeBody(t, w)["quotes"], 1)

		w = tm.do(http.MethodGet, "/api/quotes/seller/"+sellerID.String(), "")
		assertError(t, w, http.StatusInternalServerError, "internal_error", "Failed to fetch quotes")
	})

	t.Run("malformed quote id", func(t *testing.T) {
		tm := setupTestRouter(t)
		w := tm.do(http.MethodGet, "/api/quotes/64b7f0c2e4b0a1a2b3c4d5e6", "")
		assertError(t, w, http.StatusBadRequest, "validation_failed", "invalid quote id")
	})
}
