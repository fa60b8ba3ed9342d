package middleware

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/steel-suvidha/marketplace-api/internal/api/shared/errors"
	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/identity"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	AUTH_ROLE_KEY    contextKey = "auth_role"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	AuthTypeJWT    = "jwt"
	AuthTypeAPIKey = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	Tokens  *identity.TokenIssuer
	APIKeys []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string // "jwt" or "apikey"
	Claims      *identity.Claims
	AuthSubject string
	Error       error
}

// Authenticate validates the Authorization header and returns the authentication result.
// Bearer tokens are account access tokens; "ApiKey <key>" is for operators.
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	authType := strings.ToLower(parts[0])
	credentials := strings.TrimSpace(parts[1])

	switch authType {
	case "bearer":
		claims, err := cfg.Tokens.Parse(credentials)
		if err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AuthTypeJWT
		result.Claims = claims
		result.AuthSubject = claims.Subject

	case "apikey":
		if err := validateAPIKey(credentials, cfg.APIKeys); err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AuthTypeAPIKey

	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", authType)
		return result
	}

	return result
}

// Auth returns a gin middleware accepting either a bearer token or an API key
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return authenticate(cfg, AuthTypeJWT, AuthTypeAPIKey)
}

// BearerAuth returns a gin middleware that requires an account access token
func BearerAuth(cfg AuthConfig) gin.HandlerFunc {
	return authenticate(cfg, AuthTypeJWT)
}

// APIKeyAuth returns a gin middleware that requires an API key
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	return authenticate(cfg, AuthTypeAPIKey)
}

func authenticate(cfg AuthConfig, allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		result := Authenticate(c.GetHeader("Authorization"), cfg)
		if result.Success && !slices.Contains(allowed, result.AuthType) {
			result.Success = false
			result.Error = fmt.Errorf("%s authentication is not accepted here", result.AuthType)
		}

		if !result.Success {
			logger.WarnCtx(ctx, "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed")
			c.AbortWithStatusJSON(apierrors.StatusOf(apiErr.Code), apiErr)
			return
		}

		// Store authentication info in context
		c.Set(AUTH_TYPE_KEY, result.AuthType)
		if result.Claims != nil {
			c.Set(JWT_CLAIMS_KEY, result.Claims)
			c.Set(AUTH_SUBJECT_KEY, result.AuthSubject)
			c.Set(AUTH_ROLE_KEY, result.Claims.Role)
			logger.DebugCtx(ctx, "JWT authentication successful",
				zap.String("path", c.Request.URL.Path),
				zap.String("subject", result.AuthSubject),
			)
		} else {
			logger.DebugCtx(ctx, "API Key authentication successful",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
		}

		c.Next()
	}
}

// AuthenticatedAccount returns the account id and role of the bearer token, if any
func AuthenticatedAccount(c *gin.Context) (uuid.UUID, domain.Role, bool) {
	value, ok := c.Get(JWT_CLAIMS_KEY)
	if !ok {
		return uuid.Nil, "", false
	}
	claims, ok := value.(*identity.Claims)
	if !ok {
		return uuid.Nil, "", false
	}
	id, err := claims.AccountID()
	if err != nil {
		return uuid.Nil, "", false
	}
	return id, claims.Role, true
}

// validateAPIKey validates an API key
func validateAPIKey(apiKey string, validKeys []string) error {
	configured := false
	for _, key := range validKeys {
		if key == "" {
			continue
		}
		configured = true
		if key == apiKey {
			return nil
		}
	}

	if !configured {
		return errors.New("no API keys configured")
	}
	return errors.New("invalid API key")
}
