package rest

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/store"
)

// ListProductsQueryParams holds query parameters for GET /products
type ListProductsQueryParams struct {
	Category  string `form:"category"`
	MetalType string `form:"metalType"`
	Status    string `form:"status"`
	IsMaster  string `form:"isMaster"`
	SellerID  string `form:"sellerId"`
}

// ProductsQuery is the parsed form of ListProductsQueryParams
type ProductsQuery struct {
	Filter store.CatalogFilter
	// SellerView asks for the master catalog annotated with one seller's listings
	SellerView bool
	SellerID   uuid.UUID
}

// ParseListProductsQuery parses query parameters for GET /products
func ParseListProductsQuery(c *gin.Context) (*ProductsQuery, error) {
	var params ListProductsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, domain.NewValidationError("invalid query parameters")
	}

	var query ProductsQuery
	if v := strings.TrimSpace(params.Category); v != "" {
		query.Filter.Category = &v
	}
	if v := strings.TrimSpace(params.MetalType); v != "" {
		query.Filter.MetalType = &v
	}
	if v := strings.TrimSpace(params.Status); v != "" {
		status, ok := domain.ParseCatalogStatus(v)
		if !ok {
			return nil, domain.NewValidationError("invalid status: %s", v)
		}
		query.Filter.Status = &status
	}
	if v := strings.TrimSpace(params.IsMaster); v != "" {
		isMaster, err := strconv.ParseBool(v)
		if err != nil {
			return nil, domain.NewValidationError("isMaster must be true or false")
		}
		query.Filter.IsMaster = &isMaster
	}
	sellerID, err := domain.ParseOptionalID("seller id", params.SellerID)
	if err != nil {
		return nil, err
	}

	// The seller's view of the master catalog replaces the listing filters
	if sellerID != nil && query.Filter.IsMaster != nil && *query.Filter.IsMaster {
		query.SellerView = true
		query.SellerID = *sellerID
		query.Filter.Status = nil
		return &query, nil
	}

	query.Filter.SellerID = sellerID
	return &query, nil
}
