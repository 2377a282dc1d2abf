package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser returns the resolved profile of the caller.
func (h *HandlerBundle) GetCurrentUser(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p.User)
}

// SyncUser provisions (or fetches) the application profile for a freshly
// signed-in identity. Called once after the provider redirect completes.
func (h *HandlerBundle) SyncUser(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	var input struct {
		Email    string `json:"email" binding:"required,email"`
		FullName string `json:"full_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	user, err := h.Identity.Sync(c.Request.Context(), token, input.Email, input.FullName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
