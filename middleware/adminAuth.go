package middleware

import (
	"net/http"

	"infinity8/services/identity"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates a route group behind the admin role. It must
// run after AuthMiddleware so the principal is already resolved.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := identity.PrincipalFromContext(c.Request.Context())
		if p == nil || p.User == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !p.User.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
