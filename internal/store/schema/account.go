package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
)

// Account represents the accounts table - buyers, sellers and admins
type Account struct {
	// ID is the canonical account identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// Name is the display name of the person or business
	Name string `gorm:"column:name;not null;type:text"`
	// Email is stored lower-cased; unique within a role
	Email string `gorm:"column:email;not null;type:text;uniqueIndex:idx_accounts_email_role,priority:1"`
	// Username is stored lower-cased; unique across all roles
	Username string `gorm:"column:username;not null;type:text;uniqueIndex:idx_accounts_username"`
	// PasswordHash is the bcrypt hash of the password. It never leaves the service layer.
	PasswordHash string `gorm:"column:password_hash;not null;type:text"`
	// Role is Buyer, Seller or Admin
	Role domain.Role `gorm:"column:role;not null;type:text;uniqueIndex:idx_accounts_email_role,priority:2"`
	// Status is the administrative status of the account
	Status domain.AccountStatus `gorm:"column:status;not null;type:text;default:Active"`
	// Presence is Online after a successful login
	Presence domain.Presence `gorm:"column:presence;not null;type:text;default:Offline"`
	// LastLoginAt is the time of the most recent successful login
	LastLoginAt *time.Time `gorm:"column:last_login_at;type:timestamptz"`
	Description string     `gorm:"column:description;not null;type:text;default:''"`
	Phone       string     `gorm:"column:phone;not null;type:text;default:''"`
	Address     string     `gorm:"column:address;not null;type:text;default:''"`
	Company     string     `gorm:"column:company;not null;type:text;default:''"`
	// GSTIN is the seller's tax registration number
	GSTIN     string    `gorm:"column:gstin;not null;type:text;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate assigns an identifier when the caller did not
func (a *Account) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
