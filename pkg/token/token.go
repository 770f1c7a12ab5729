// pkg/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5" // Using v5
)

// Role values carried in a session token. The backend distinguishes admin
// roles server-side; user roles come from the user-auth endpoint.
const (
	RoleAdmin       = "admin"
	RoleSuperAdmin  = "super_admin"
	RoleTeamCaptain = "team_captain"
	RolePlayer      = "individual_player"
)

// Claims defines the structure of the JWT claims your application uses.
// BackendToken is the opaque session token issued by the remote backend; it is
// replayed on privileged upstream calls and never interpreted locally.
type Claims struct {
	Username     string `json:"username"`
	Role         string `json:"role"`
	BackendToken string `json:"backend_token"`
	TeamID       *int   `json:"team_id,omitempty"` // set for team captains only
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims belong to an admin or super-admin session.
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}

// ValidateSession parses, validates, and returns claims from a JWT string.
func ValidateSession(tokenString string, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}
	if secretKey == "" {
		return nil, errors.New("session secret key is empty")
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("session has expired")
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, errors.New("session is not yet valid")
		}
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("session signature is invalid")
		}
		return nil, fmt.Errorf("could not parse session token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("session token is invalid")
	}

	if claims.Role == "" {
		return nil, errors.New("role claim is missing")
	}
	if claims.BackendToken == "" {
		return nil, errors.New("backend_token claim is missing")
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("session has expired (checked manually)")
	}

	return claims, nil
}

// GenerateSession signs a session token wrapping a backend-issued token.
func GenerateSession(username, role, backendToken string, teamID *int, secretKey string, expiryMinutes int) (string, error) {
	expirationTime := time.Now().Add(time.Duration(expiryMinutes) * time.Minute)
	claims := &Claims{
		Username:     username,
		Role:         role,
		BackendToken: backendToken,
		TeamID:       teamID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "riftcup-gateway",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
