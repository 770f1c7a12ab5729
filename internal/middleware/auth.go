package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/riftcup/gateway/pkg/token"
	"github.com/gin-gonic/gin"
)

const (
	AuthClaimsKey = "auth_claims"
)

// SessionMiddleware requires a valid Bearer session token and stores the
// parsed claims in the context.
func SessionMiddleware(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromHeader(c, sessionSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// OptionalSessionMiddleware parses a session token when one is present but
// lets anonymous requests through. Used on routes with a password fallback,
// where the capability check decides per request.
func OptionalSessionMiddleware(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		claims, err := claimsFromHeader(c, sessionSecret)
		if err != nil {
			// A present but broken token is still an error; silently treating
			// it as anonymous would mask expired admin sessions.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context, sessionSecret string) (*token.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("Authorization header is required")
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
		return nil, errors.New("Invalid Authorization header format. Expected: Bearer <token>")
	}

	claims, err := token.ValidateSession(bearerToken[1], sessionSecret)
	if err != nil {
		return nil, fmt.Errorf("Invalid or expired session: %w", err)
	}
	return claims, nil
}

// GetClaims extracts the session claims from the context.
func GetClaims(c *gin.Context) (*token.Claims, error) {
	claimsVal, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil, errors.New("session claims not found in context")
	}

	claims, ok := claimsVal.(*token.Claims)
	if !ok {
		return nil, fmt.Errorf("session claims have unexpected type: %T", claimsVal)
	}

	return claims, nil
}

// MaybeClaims returns the claims when a session was parsed, nil otherwise.
func MaybeClaims(c *gin.Context) *token.Claims {
	claims, err := GetClaims(c)
	if err != nil {
		return nil
	}
	return claims
}
