package identity

//go:generate mockgen -source=service.go -destination=../mocks/identity_service.go -package=mocks -mock_names=Service=MockIdentityService

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/steel-suvidha/marketplace-api/internal/adapter"
	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
	"github.com/steel-suvidha/marketplace-api/internal/store"
	"github.com/steel-suvidha/marketplace-api/internal/store/schema"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterInput is the input for Register
type RegisterInput struct {
	Role        domain.Role
	Name        string
	Email       string
	Username    string
	Password    string
	Phone       string
	Address     string
	Company     string
	GSTIN       string
	Description string
}

// LoginInput is the input for Login
type LoginInput struct {
	Username string
	Password string
	Role     string
}

// LoginResult is a successful login
type LoginResult struct {
	Account   *schema.Account
	Token     string
	ExpiresAt time.Time
}

// Service manages accounts and their credentials
type Service interface {
	// Register creates an account with a hashed password
	Register(ctx context.Context, input RegisterInput) (*schema.Account, error)
	// Login verifies credentials for a role and issues an access token
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	// GetProfile retrieves any account
	GetProfile(ctx context.Context, id uuid.UUID) (*schema.Account, error)
	// GetByID retrieves an account that must have the given role
	GetByID(ctx context.Context, id uuid.UUID, role domain.Role) (*schema.Account, error)
	// ListAccounts lists accounts newest first, optionally of one role
	ListAccounts(ctx context.Context, role *domain.Role) ([]schema.Account, error)
}

type service struct {
	store  store.Store
	clock  adapter.Clock
	tokens *TokenIssuer
}

// NewService creates a new identity service
func NewService(st store.Store, clock adapter.Clock, tokens *TokenIssuer) Service {
	return &service{
		store:  st,
		clock:  clock,
		tokens: tokens,
	}
}

// Register creates an account
func (s *service) Register(ctx context.Context, input RegisterInput) (*schema.Account, error) {
	role, ok := domain.ParseRole(string(input.Role))
	if !ok {
		return nil, domain.NewValidationError("invalid role: %s", input.Role)
	}

	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.ToLower(strings.TrimSpace(input.Username))
	if name == "" || email == "" || username == "" || input.Password == "" {
		return nil, domain.NewValidationError("Name, email, username, and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.NewValidationError("Invalid email format")
	}
	if len(input.Password) < domain.PasswordMinLength {
		return nil, domain.NewValidationError("Password must be at least %d characters long", domain.PasswordMinLength)
	}
	if len(input.Password) > domain.PasswordMaxLength {
		return nil, domain.NewValidationError("Password must be at most %d bytes long", domain.PasswordMaxLength)
	}

	existing, err := s.store.GetAccountByEmailAndRole(ctx, email, role)
	if err != nil {
		return nil, domain.NewInternalError("Failed to register account", err)
	}
	if existing != nil {
		return nil, emailConflict(role)
	}

	existing, err = s.store.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, domain.NewInternalError("Failed to register account", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), domain.PasswordHashCost)
	if err != nil {
		return nil, domain.NewInternalError("Failed to register account", fmt.Errorf("failed to hash password: %w", err))
	}

	now := s.clock.Now()
	account := &schema.Account{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       domain.AccountStatusActive,
		Presence:     domain.PresenceOffline,
		Description:  strings.TrimSpace(input.Description),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		Company:      strings.TrimSpace(input.Company),
		GSTIN:        strings.ToUpper(strings.TrimSpace(input.GSTIN)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		// A concurrent registration can pass the pre-checks
		var dup *domain.DuplicateKeyError
		if errors.As(err, &dup) {
			if dup.Field == "username" {
				return nil, domain.NewConflictError("Username already exists")
			}
			return nil, emailConflict(role)
		}
		return nil, domain.NewInternalError("Failed to register account", err)
	}

	logger.InfoCtx(ctx, "Registered account",
		zap.String("accountId", account.ID.String()),
		zap.String("role", string(role)))

	return account, nil
}

func emailConflict(role domain.Role) error {
	return domain.NewConflictError("Email already registered as %s", role)
}

// Login verifies credentials and issues an access token
func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	if username == "" || input.Password == "" || strings.TrimSpace(input.Role) == "" {
		return nil, domain.NewValidationError("Username, password, and role are required")
	}

	role, ok := domain.ParseRole(input.Role)
	if !ok {
		return nil, domain.NewUnauthorizedError("Invalid credentials")
	}

	account, err := s.store.GetAccountByUsernameAndRole(ctx, username, role)
	if err != nil {
		return nil, domain.NewInternalError("Failed to login", err)
	}
	if account == nil {
		return nil, domain.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.NewUnauthorizedError("Invalid credentials")
	}

	now := s.clock.Now()
	if err := s.store.RecordLogin(ctx, account.ID, now); err != nil {
		return nil, domain.NewInternalError("Failed to login", err)
	}
	account.Presence = domain.PresenceOnline
	account.LastLoginAt = &now
	account.UpdatedAt = now

	result := &LoginResult{Account: account}
	if s.tokens.Enabled() {
		token, expiresAt, err := s.tokens.Issue(account.ID, account.Role, now)
		if err != nil {
			return nil, domain.NewInternalError("Failed to login", err)
		}
		result.Token = token
		result.ExpiresAt = expiresAt
	}

	return result, nil
}

// GetProfile retrieves any account
func (s *service) GetProfile(ctx context.Context, id uuid.UUID) (*schema.Account, error) {
	account, err := s.store.GetAccountByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get profile", err)
	}
	if account == nil {
		return nil, domain.NewNotFoundError("User not found")
	}
	return account, nil
}

// GetByID retrieves an account of the given role
func (s *service) GetByID(ctx context.Context, id uuid.UUID, role domain.Role) (*schema.Account, error) {
	account, err := s.store.GetAccountByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("Failed to get %s", strings.ToLower(string(role))), err)
	}
	if account == nil || account.Role != role {
		return nil, domain.NewNotFoundError("%s not found", role)
	}
	return account, nil
}

// ListAccounts lists accounts
func (s *service) ListAccounts(ctx context.Context, role *domain.Role) ([]schema.Account, error) {
	accounts, err := s.store.ListAccounts(ctx, role)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch users", err)
	}
	return accounts, nil
}
