package middleware

import (
	"net/http"
	"strings"

	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"
	"humancapital-api/pkg/auth"
	"humancapital-api/pkg/security"

	"github.com/gin-gonic/gin"
)

// TokenParser is satisfied by *auth.TokenManager
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

// Authenticate requires a valid bearer token and stores the caller's identity.
func Authenticate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			logUnauthorized(c, "missing_token")
			response.Error(c, http.StatusUnauthorized, "Authorization token required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			logUnauthorized(c, "invalid_token")
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(domain.KeyIdentity, domain.Identity{
			UserID: claims.ID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Next()
	}
}

// Authorize must run after Authenticate.
func Authorize(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authorization token required", nil)
			c.Abort()
			return
		}
		if identity.Role != role {
			security.DefaultLogger().LogForbidden(c.Request.Context(), identity.UserID, identity.Role,
				c.ClientIP(), response.RequestID(c), c.Request.URL.Path)
			response.Error(c, http.StatusForbidden, "Access denied", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth never rejects. A valid token attaches the identity,
// anything else leaves the request anonymous.
func OptionalAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := tokens.Parse(tokenString); err == nil {
				c.Set(domain.KeyIdentity, domain.Identity{
					UserID: claims.ID,
					Email:  claims.Email,
					Role:   claims.Role,
				})
			}
		}
		c.Next()
	}
}

// IdentityFrom returns the identity set by Authenticate.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(domain.KeyIdentity)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

// OptionalIdentity returns nil for anonymous callers.
func OptionalIdentity(c *gin.Context) *domain.Identity {
	identity, ok := IdentityFrom(c)
	if !ok {
		return nil
	}
	return &identity
}

func logUnauthorized(c *gin.Context, reason string) {
	security.DefaultLogger().LogUnauthorized(c.Request.Context(), c.ClientIP(),
		response.RequestID(c), c.Request.URL.Path, reason)
}
