package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/riftcup/gateway/internal/middleware"
	"github.com/riftcup/gateway/pkg/token"

	"github.com/gin-gonic/gin"
)

func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := middleware.GetClaims(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		// Roles live in the session claims; the backend re-checks its own
		// token on every privileged call, so this is a front gate only.
		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(claims.Role, requiredRole) {
				hasRequiredRole = true
				break
			}
		}

		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Forbidden",
				"message":   "You don't have permission to access this resource",
				"required":  requiredRoles,
				"user_role": claims.Role,
			})
			return
		}

		c.Next()
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(token.RoleAdmin, token.RoleSuperAdmin)
}

// SuperAdminMiddleware guards the destructive super-admin panel.
func SuperAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(token.RoleSuperAdmin)
}
