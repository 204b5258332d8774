package middleware

import (
	"net/http"

	"adconnect/internal/domain"
	"adconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the specified role
func RequireRole(requiredRole domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != string(requiredRole) {
			response.CustomError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires the Admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

// SponsorOnly middleware requires the Sponsor role
func SponsorOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSponsor)
}

// InfluencerOnly middleware requires the Influencer role
func InfluencerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleInfluencer)
}
