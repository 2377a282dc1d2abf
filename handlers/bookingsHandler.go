package handlers

import (
	"net/http"

	"infinity8/models"
	"infinity8/services/identity"

	"github.com/gin-gonic/gin"
)

func requirePrincipal(c *gin.Context) (*identity.Principal, bool) {
	p := identity.PrincipalFromContext(c.Request.Context())
	if p == nil || p.User == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	return p, true
}

// ListMyBookings returns the caller's bookings.
func (h *HandlerBundle) ListMyBookings(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}

	filter := models.BookingFilter{
		Status:       c.Query("status"),
		UpcomingOnly: c.Query("upcoming_only") == "true",
	}
	bookings, err := h.Bookings.Mine(c.Request.Context(), p.User.ID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one of the caller's bookings. Ownership is enforced
// by the core API.
func (h *HandlerBundle) GetBooking(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	booking, err := h.Bookings.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking cancels one of the caller's bookings.
func (h *HandlerBundle) CancelBooking(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Bookings.Cancel(c.Request.Context(), p.User.ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
