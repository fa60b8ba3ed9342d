package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
)

const tokenIssuer = "steel-marketplace"

// Claims are the access token claims
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// AccountID returns the subject as an account identifier
func (c *Claims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenIssuer signs and verifies HS256 access tokens
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer. An empty secret disables issuing.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Enabled reports whether a signing secret is configured
func (i *TokenIssuer) Enabled() bool {
	return i != nil && len(i.secret) > 0
}

// Issue signs a token for the account, returning it with its expiry
func (i *TokenIssuer) Issue(accountID uuid.UUID, role domain.Role, now time.Time) (string, time.Time, error) {
	if !i.Enabled() {
		return "", time.Time{}, errors.New("JWT secret not configured")
	}

	expiresAt := now.Add(i.ttl)
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature and standard claims of a token
func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	if !i.Enabled() {
		return nil, errors.New("JWT secret not configured")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if _, err := claims.AccountID(); err != nil {
		return nil, errors.New("invalid token subject")
	}
	return claims, nil
}
