package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mshiina/course-catalog-api/internal/auth"
	"github.com/mshiina/course-catalog-api/internal/constants"
	"github.com/mshiina/course-catalog-api/internal/response"
)

// RequireAuth verifies the bearer token and enforces the route's access
// requirement. For Public routes a missing or bad token is not an error; the
// request simply proceeds anonymously. Verified claims are stored on the
// context for handlers that need the caller's identity.
func RequireAuth(issuer *auth.TokenIssuer, req auth.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromHeader(c, issuer)
		if err != nil && req != auth.Public {
			if errors.Is(err, auth.ErrTokenExpired) {
				response.Unauthorized(c, "Token expired")
			} else {
				response.Unauthorized(c, "Invalid or missing token")
			}
			c.Abort()
			return
		}

		if err := auth.Authorize(claims, req); err != nil {
			if errors.Is(err, auth.ErrForbidden) {
				response.Forbidden(c, "Admin role required")
			} else {
				response.Unauthorized(c, "Authentication required")
			}
			c.Abort()
			return
		}

		if claims != nil {
			c.Set(constants.ContextKeyClaims, claims)
		}
		c.Next()
	}
}

// claimsFromHeader extracts and verifies the Authorization bearer token.
func claimsFromHeader(c *gin.Context, issuer *auth.TokenIssuer) (*auth.Claims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, auth.ErrUnauthorized
	}

	tokenStr, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenStr == "" {
		return nil, auth.ErrUnauthorized
	}

	return issuer.Parse(tokenStr)
}

// GetClaims returns the verified claims stored by RequireAuth, or nil if the
// request is anonymous.
func GetClaims(c *gin.Context) *auth.Claims {
	value, exists := c.Get(constants.ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
