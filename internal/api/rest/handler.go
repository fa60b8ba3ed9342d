package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/steel-suvidha/marketplace-api/internal/api/middleware"
	"github.com/steel-suvidha/marketplace-api/internal/api/shared/dto"
	"github.com/steel-suvidha/marketplace-api/internal/catalog"
	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/identity"
	"github.com/steel-suvidha/marketplace-api/internal/metrics"
	"github.com/steel-suvidha/marketplace-api/internal/quote"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// Login verifies credentials for a role and returns the account with an access token
	// POST /login
	Login(c *gin.Context)

	// GetProfile retrieves any account
	// GET /profile/:id
	GetProfile(c *gin.Context)

	// GetMyProfile retrieves the account of the bearer token
	// GET /profile/me
	GetMyProfile(c *gin.Context)

	// RegisterBuyer registers a buyer account
	// POST /buyers/register
	RegisterBuyer(c *gin.Context)

	// GetBuyer retrieves a buyer account
	// GET /buyers/:id
	GetBuyer(c *gin.Context)

	// CreateSeller registers a seller account
	// POST /sellers
	CreateSeller(c *gin.Context)

	// ListSellers lists seller accounts
	// GET /sellers
	ListSellers(c *gin.Context)

	// GetSeller retrieves a seller account
	// GET /sellers/:id
	GetSeller(c *gin.Context)

	// ListUsers lists all accounts
	// GET /users
	ListUsers(c *gin.Context)

	// CreateProduct creates a master entry or a seller listing
	// POST /products
	CreateProduct(c *gin.Context)

	// ToggleMasterProduct activates or deactivates a master entry in a seller's inventory
	// POST /products/toggle-master
	ToggleMasterProduct(c *gin.Context)

	// ListProducts lists catalog entries
	// GET /products?category=<category>&metalType=<type>&status=<status>&isMaster=<bool>&sellerId=<id>
	// With isMaster=true and sellerId the masters are annotated with that seller's listing status
	ListProducts(c *gin.Context)

	// ListSellerProducts lists a seller's listings
	// GET /products/seller/:sellerId
	ListSellerProducts(c *gin.Context)

	// GetProduct retrieves one catalog entry
	// GET /products/:id
	GetProduct(c *gin.Context)

	// UpdateProduct applies a patch to a catalog entry
	// PUT /products/:id
	UpdateProduct(c *gin.Context)

	// DeleteProduct removes a catalog entry
	// DELETE /products/:id
	DeleteProduct(c *gin.Context)

	// SeedMasterCatalog inserts the static master catalog
	// POST /products/seed-master-catalog
	SeedMasterCatalog(c *gin.Context)

	// CreateQuote records a request for quote, broadcasting it to matched sellers
	// POST /quotes
	CreateQuote(c *gin.Context)

	// ListAvailableQuotes lists broadcast quotes still open for offers
	// GET /quotes/available
	ListAvailableQuotes(c *gin.Context)

	// GetQuote retrieves a quote with its offers
	// GET /quotes/:id
	GetQuote(c *gin.Context)

	// ListBuyerQuotes lists a buyer's quotes
	// GET /quotes/buyer/:buyerId
	ListBuyerQuotes(c *gin.Context)

	// ListSellerQuotes lists quotes bound or broadcast to a seller
	// GET /quotes/seller/:sellerId
	ListSellerQuotes(c *gin.Context)

	// SubmitOffer records or replaces a seller's offer
	// POST /quotes/:id/offer
	SubmitOffer(c *gin.Context)

	// AcceptOffer accepts one offer on a quote
	// POST /quotes/:id/accept
	AcceptOffer(c *gin.Context)

	// MarkPaid confirms payment of an accepted quote
	// POST /quotes/:id/pay
	MarkPaid(c *gin.Context)

	// UpdateQuote applies a patch to a quote
	// PUT /quotes/:id
	UpdateQuote(c *gin.Context)

	// Ping answers pong
	// GET /ping
	Ping(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// Pinger checks the database connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	identity identity.Service
	catalog  catalog.Service
	quotes   quote.Engine
	db       Pinger
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, identitySvc identity.Service, catalogSvc catalog.Service, engine quote.Engine, db Pinger) Handler {
	return &handler{
		debug:    debug,
		identity: identitySvc,
		catalog:  catalogSvc,
		quotes:   engine,
		db:       db,
	}
}

// Login verifies credentials and issues an access token
func (h *handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.identity.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		if domain.KindOf(err) == domain.KindUnauthorized {
			metrics.RecordLoginAttempt(metrics.LoginFailure)
		}
		h.respondError(c, err)
		return
	}
	metrics.RecordLoginAttempt(metrics.LoginSuccess)

	resp := gin.H{
		"success": true,
		"user":    dto.NewAccountResponse(result.Account),
	}
	if result.Token != "" {
		resp["token"] = result.Token
		resp["expiresAt"] = result.ExpiresAt
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfile retrieves any account
func (h *handler) GetProfile(c *gin.Context) {
	id, err := domain.ParseID("user id", c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondProfile(c, id)
}

// GetMyProfile retrieves the account of the bearer token
func (h *handler) GetMyProfile(c *gin.Context) {
	id, _, ok := middleware.AuthenticatedAccount(c)
	if !ok {
		h.respondError(c, domain.NewUnauthorizedError("Authentication failed"))
		return
	}
	h.respondProfile(c, id)
}

func (h *handler) respondProfile(c *gin.Context, id uuid.UUID) {
	account, err := h.identity.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.NewAccountResponse(account),
	})
}

// RegisterBuyer registers a buyer account
func (h *handler) RegisterBuyer(c *gin.Context) {
	h.register(c, domain.RoleBuyer, "Buyer registered successfully")
}

// CreateSeller registers a seller account
func (h *handler) CreateSeller(c *gin.Context) {
	h.register(c, domain.RoleSeller, "Seller created successfully")
}

func (h *handler) register(c *gin.Context, role domain.Role, message string) {
	var req dto.RegisterRequest
	if !h.bindJSON(c, &req) {
		return
	}

	account, err := h.identity.Register(c.Request.Context(), req.ToInput(role))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"user":    dto.NewAccountResponse(account),
	})
}

// GetBuyer retrieves a buyer account
func (h *handler) GetBuyer(c *gin.Context) {
	h.getAccount(c, domain.RoleBuyer, "buyer id")
}

// GetSeller retrieves a seller account
func (h *handler) GetSeller(c *gin.Context) {
	h.getAccount(c, domain.RoleSeller, "seller id")
}

func (h *handler) getAccount(c *gin.Context, role domain.Role, field string) {
	id, err := domain.ParseID(field, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	account, err := h.identity.GetByID(c.Request.Context(), id, role)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.NewAccountResponse(account),
	})
}

// ListSellers lists seller accounts
func (h *handler) ListSellers(c *gin.Context) {
	role := domain.RoleSeller
	h.listAccounts(c, &role, "sellers")
}

// ListUsers lists all accounts
func (h *handler) ListUsers(c *gin.Context) {
	h.listAccounts(c, nil, "users")
}

func (h *handler) listAccounts(c *gin.Context, role *domain.Role, key string) {
	accounts, err := h.identity.ListAccounts(c.Request.Context(), role)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(accounts),
		key:       dto.NewAccountResponses(accounts),
	})
}

// CreateProduct creates a master entry or a seller listing
func (h *handler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		h.respondError(c, err)
		return
	}

	entry, err := h.catalog.CreateEntry(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully",
		"product": dto.NewCatalogEntryResponse(entry),
	})
}

// ToggleMasterProduct activates or deactivates a master entry for a seller
func (h *handler) ToggleMasterProduct(c *gin.Context) {
	var req dto.ToggleMasterRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.catalog.ToggleMaster(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Message(),
		"created": result.Created,
		"product": dto.NewCatalogEntryResponse(result.Listing),
	})
}

// ListProducts lists catalog entries
func (h *handler) ListProducts(c *gin.Context) {
	query, err := ParseListProductsQuery(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var products []dto.CatalogEntryResponse
	if query.SellerView {
		views, err := h.catalog.ListMastersForSeller(c.Request.Context(), query.SellerID, query.Filter)
		if err != nil {
			h.respondError(c, err)
			return
		}
		products = dto.NewSellerListingResponses(views)
	} else {
		entries, err := h.catalog.List(c.Request.Context(), query.Filter)
		if err != nil {
			h.respondError(c, err)
			return
		}
		products = dto.NewCatalogEntryResponses(entries)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

// ListSellerProducts lists a seller's listings
func (h *handler) ListSellerProducts(c *gin.Context) {
	sellerID, err := domain.ParseID("seller id", c.Param("sellerId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	entries, err := h.catalog.ListBySeller(c.Request.Context(), sellerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(entries),
		"products": dto.NewCatalogEntryResponses(entries),
	})
}

// GetProduct retrieves one catalog entry
func (h *handler) GetProduct(c *gin.Context) {
	id, err := domain.ParseID("product id", c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	entry, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": dto.NewCatalogEntryResponse(entry),
	})
}

// UpdateProduct applies a patch to a catalog entry
func (h *handler) UpdateProduct(c *gin.Context) {
	id, err := domain.ParseID("product id", c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req dto.UpdateProductRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		h.respondError(c, err)
		return
	}

	entry, err := h.catalog.Update(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": dto.NewCatalogEntryResponse(entry),
	})
}

// DeleteProduct removes a catalog entry
func (h *handler) DeleteProduct(c *gin.Context) {
	id, err := domain.ParseID("product id", c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// SeedMasterCatalog inserts the static master catalog
func (h *handler) SeedMasterCatalog(c *gin.Context) {
	result, err := h.catalog.SeedMaster(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Master catalog seeding completed",
		"stats":   dto.NewSeedStats(result),
	})
}

// CreateQuote records a request for quote
func (h *handler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		h.respondError(c, err)
		return
	}

	q, err := h.quotes.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	message := "Quote created successfully"
	if q.BroadcastStatus != nil && *q.BroadcastStatus == domain.BroadcastStatusBroadcasted {
		message = fmt.Sprintf("Quote created and broadcasted to %d seller(s)", len(q.MatchedSellers))
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"quote":   dto.NewQuoteResponse(q),
	})
}

// ListAvailableQuotes lists broadcast quotes still open for offers
func (h *handler) ListAvailableQuotes(c *gin.Context) {
	quotes, err := h.quotes.ListAvailable(c.Request.Context())
	h.respondQuotes(c, quotes, err)
}

// ListBuyerQuotes lists a buyer's quotes
func (h *handler) ListBuyerQuotes(c *gin.Context) {
	buyerID, err := domain.ParseID("buyer id", c.Param("buyerId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	quotes, err := h.quotes.ListForBuyer(c.Request.Context(), buyerID)
	h.respondQuotes(c, quotes, err)
}

// ListSellerQuotes lists quotes bound or broadcast to a seller
func (h *handler) ListSellerQuotes(c *gin.Context) {
	sellerID, err := domain.ParseID("seller id", c.Param("sellerId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	quotes, err := h.quotes.ListForSeller(c.Request.Context(), sellerID)
	h.respondQuotes(c, quotes, err)
}

func (h *handler) respondQuotes(c *gin.Context, quotes []schema.Quote, err error) {
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(quotes),
		"quotes":  dto.NewQuoteResponses(quotes),
	})
}

// GetQuote retrieves a quote with its offers
func (h *handler) GetQuote(c *gin.Context) {
	id, err := domain.ParseID("quote id", c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	q, err := h.quotes.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"quote":   dto.NewQuoteResponse(q),
	})
}

// SubmitOffer records or replaces a seller's offer
func (h *handler) SubmitOffer(c *gin.Context) {
	id, err := domain.ParseID("quote id", c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req dto.SubmitOfferRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	q, err := h.quotes.SubmitOffer(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var offer *dto.OfferResponse
	for i := range q.Offers {
		if q.Offers[i].SellerID == input.SellerID {
			offer = dto.NewOfferResponse(&q.Offers[i])
			break
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"offer":   offer,
		"quote":   dto.NewQuoteResponse(q),
	})
}

// AcceptOffer accepts one offer on a quote
func (h *handler) AcceptOffer(c *gin.Context) {
	id, err := domain.ParseID("quote id", c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req dto.AcceptOfferRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	q, err := h.quotes.AcceptOffer(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Offer accepted. Proceeding to payment.",
		"quote":   dto.NewQuoteResponse(q),
	})
}

// MarkPaid confirms payment of an accepted quote
func (h *handler) MarkPaid(c *gin.Context) {
	id, err := domain.ParseID("quote id", c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	q, err := h.quotes.MarkPaid(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment confirmed. Order moved to Processing.",
		"quote":   dto.NewQuoteResponse(q),
	})
}

// UpdateQuote applies a patch to a quote
func (h *handler) UpdateQuote(c *gin.Context) {
	id, err := domain.ParseID("quote id", c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	var req dto.UpdateQuoteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		h.respondError(c, err)
		return
	}

	q, err := h.quotes.Update(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"quote":   dto.NewQuoteResponse(q),
	})
}

// Ping answers pong
func (h *handler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// HealthCheck reports liveness and the database connection state
func (h *handler) HealthCheck(c *gin.Context) {
	database := "Connected"
	if err := h.db.Ping(c.Request.Context()); err != nil {
		database = "Disconnected"
	}
	c.JSON(http.StatusOK, dto.HealthResponse{
		OK:       true,
		Status:   "Online",
		Database: database,
	})
}
