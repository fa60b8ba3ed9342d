package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
)

// CatalogEntry represents the catalog_entries table - master templates and the
// seller listings cloned from them
type CatalogEntry struct {
	// ID is the canonical entry identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// Name is the product name shown to buyers (e.g. "TMT 500 D 12mm")
	Name string `gorm:"column:name;not null;type:text"`
	// Category is the product family (e.g. "TMT Rebars", "Angles")
	Category  string `gorm:"column:category;not null;type:text"`
	MetalType string `gorm:"column:metal_type;not null;type:text;default:Steel"`
	// Brand, Grade, Finish, Size, Variety and Type are the master attribute tuple.
	// Empty string means "not applicable" so the master uniqueness index sees it.
	Brand       string `gorm:"column:brand;not null;type:text;default:''"`
	Grade       string `gorm:"column:grade;not null;type:text;default:''"`
	Finish      string `gorm:"column:finish;not null;type:text;default:''"`
	Size        string `gorm:"column:size;not null;type:text;default:''"`
	Variety     string `gorm:"column:variety;not null;type:text;default:''"`
	Type        string `gorm:"column:type;not null;type:text;default:''"`
	Description string `gorm:"column:description;not null;type:text;default:''"`
	ImageURL    string `gorm:"column:image_url;not null;type:text;default:''"`
	// Price is the seller's listed price per unit, if any
	Price decimal.NullDecimal `gorm:"column:price;type:numeric(14,2)"`
	// Quantity is the stock on hand, if advertised
	Quantity decimal.NullDecimal `gorm:"column:quantity;type:numeric(14,3)"`
	Unit     string              `gorm:"column:unit;not null;type:text;default:kg"`
	// IsMaster marks a template entry; listings are cloned from masters
	IsMaster bool `gorm:"column:is_master;not null;default:false"`
	// MasterEntryID references the master a listing was cloned from (nil for masters)
	MasterEntryID *uuid.UUID `gorm:"column:master_entry_id;type:uuid;uniqueIndex:idx_catalog_entries_master_seller,priority:1"`
	// Status is Active or Inactive; deactivation never removes the row
	Status domain.CatalogStatus `gorm:"column:status;not null;type:text;default:Active"`
	// SellerID owns a listing (nil for masters)
	SellerID   *uuid.UUID `gorm:"column:seller_id;type:uuid;uniqueIndex:idx_catalog_entries_master_seller,priority:2"`
	SellerName string     `gorm:"column:seller_name;not null;type:text;default:''"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CatalogEntry model
func (CatalogEntry) TableName() string {
	return "catalog_entries"
}

// BeforeCreate assigns an identifier when the caller did not
func (e *CatalogEntry) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// CloneForSeller returns a new Active listing of the master entry owned by the seller
func (e *CatalogEntry) CloneForSeller(sellerID uuid.UUID, sellerName string, status domain.CatalogStatus) *CatalogEntry {
	masterID := e.ID
	return &CatalogEntry{
		Name:          e.Name,
		Category:      e.Category,
		MetalType:     e.MetalType,
		Brand:         e.Brand,
		Grade:         e.Grade,
		Finish:        e.Finish,
		Size:          e.Size,
		Variety:       e.Variety,
		Type:          e.Type,
		Description:   e.Description,
		ImageURL:      e.ImageURL,
		Price:         e.Price,
		Quantity:      e.Quantity,
		Unit:          e.Unit,
		IsMaster:      false,
		MasterEntryID: &masterID,
		Status:        status,
		SellerID:      &sellerID,
		SellerName:    sellerName,
	}
}

// SellerListingView is a master entry annotated with one seller's listing state
type SellerListingView struct {
	CatalogEntry
	// ListingID is the seller's listing of this master, nil if never toggled
	ListingID *uuid.UUID `gorm:"column:listing_id"`
	// ListingStatus is the listing's status, Inactive if never toggled
	ListingStatus domain.CatalogStatus `gorm:"column:listing_status"`
}
