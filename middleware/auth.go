package middleware

import (
	"net/http"
	"strings"

	"infinity8/gateway"
	"infinity8/services/identity"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// attachPrincipal puts the resolved principal and the raw token on the
// request context so downstream services and gateway calls see them.
func attachPrincipal(c *gin.Context, p *identity.Principal) {
	ctx := identity.WithPrincipal(c.Request.Context(), p)
	ctx = gateway.WithToken(ctx, p.Token)
	c.Request = c.Request.WithContext(ctx)
}

// AuthMiddleware requires a valid bearer token and resolves the caller.
func AuthMiddleware(resolver *identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		attachPrincipal(c, &identity.Principal{User: user, Token: tokenString})
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a bearer token is
// present but lets anonymous requests through. Used on routes that adapt
// to the signed-in state instead of requiring it.
func OptionalAuthMiddleware(resolver *identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			// A bad token on an optional route degrades to anonymous.
			c.Next()
			return
		}

		attachPrincipal(c, &identity.Principal{User: user, Token: tokenString})
		c.Next()
	}
}
