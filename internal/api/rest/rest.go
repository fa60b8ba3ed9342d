package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/steel-suvidha/marketplace-api/internal/api/middleware"
	apierrors "github.com/steel-suvidha/marketplace-api/internal/api/shared/errors"
	"github.com/steel-suvidha/marketplace-api/internal/metrics"
	"github.com/steel-suvidha/marketplace-api/internal/ratelimit"
)

func init() {
	// Request bodies are typed; unknown fields are rejected rather than merged
	binding.EnableDecoderDisallowUnknownFields = true
}

// RouteConfig holds what SetupRoutes needs besides the handler
type RouteConfig struct {
	BasePath     string
	Auth         middleware.AuthConfig
	LoginLimiter ratelimit.Limiter
}

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, cfg RouteConfig) {
	// Health check and metrics (no auth, no base path)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError("Route not found"))
	})

	api := router.Group(cfg.BasePath)
	{
		api.GET("/ping", handler.Ping)

		// Identity, also mounted under /auth for older clients
		login := []gin.HandlerFunc{handler.Login}
		if cfg.LoginLimiter != nil {
			login = append([]gin.HandlerFunc{middleware.LoginRateLimit(cfg.LoginLimiter)}, login...)
		}
		api.POST("/login", login...)
		api.POST("/auth/login", login...)
		api.GET("/profile/me", middleware.BearerAuth(cfg.Auth), handler.GetMyProfile)
		api.GET("/profile/:id", handler.GetProfile)
		api.GET("/auth/profile/:id", handler.GetProfile)
		api.GET("/users", handler.ListUsers)

		// Buyer and seller onboarding
		api.POST("/buyers/register", handler.RegisterBuyer)
		api.GET("/buyers/:id", handler.GetBuyer)
		api.POST("/sellers", handler.CreateSeller)
		api.GET("/sellers", handler.ListSellers)
		api.GET("/sellers/:id", handler.GetSeller)

		// Catalog
		api.POST("/products", handler.CreateProduct)
		api.POST("/products/toggle-master", handler.ToggleMasterProduct)
		if hasAPIKeys(cfg.Auth) {
			api.POST("/products/seed-master-catalog", middleware.APIKeyAuth(cfg.Auth), handler.SeedMasterCatalog)
		} else {
			api.POST("/products/seed-master-catalog", handler.SeedMasterCatalog)
		}
		api.GET("/products", handler.ListProducts)
		api.GET("/products/seller/:sellerId", handler.ListSellerProducts)
		api.GET("/products/:id", handler.GetProduct)
		api.PUT("/products/:id", handler.UpdateProduct)
		api.DELETE("/products/:id", handler.DeleteProduct)

		// Quotes
		api.POST("/quotes", handler.CreateQuote)
		api.GET("/quotes/available", handler.ListAvailableQuotes)
		api.GET("/quotes/buyer/:buyerId", handler.ListBuyerQuotes)
		api.GET("/quotes/seller/:sellerId", handler.ListSellerQuotes)
		api.GET("/quotes/:id", handler.GetQuote)
		api.PUT("/quotes/:id", handler.UpdateQuote)
		api.PATCH("/quotes/:id/status", handler.UpdateQuote)
		api.POST("/quotes/:id/offer", handler.SubmitOffer)
		api.POST("/quotes/:id/accept", handler.AcceptOffer)
		api.POST("/quotes/:id/pay", handler.MarkPaid)
	}
}

func hasAPIKeys(cfg middleware.AuthConfig) bool {
	for _, key := range cfg.APIKeys {
		if key != "" {
			return true
		}
	}
	return false
}
