package handlers

import (
	"net/http"
	"strconv"

	"infinity8/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats proxies the admin dashboard aggregates.
func (h *HandlerBundle) GetDashboardStats(c *gin.Context) {
	stats, err := h.Admin.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListAllBookings returns bookings across all users, filtered.
func (h *HandlerBundle) ListAllBookings(c *gin.Context) {
	filter := models.AdminBookingFilter{
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}
	if v := c.Query("space_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.SpaceID = id
		}
	}
	if v := c.Query("user_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.UserID = id
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	bookings, err := h.Admin.Bookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListUsers returns user accounts for the admin panel.
func (h *HandlerBundle) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	users, err := h.Admin.Users(c.Request.Context(), c.Query("role"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUserRole promotes or demotes a user.
func (h *HandlerBundle) UpdateUserRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	role := c.Query("role")
	if role != models.RoleUser && role != models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be user or admin"})
		return
	}
	if err := h.Admin.UpdateUserRole(c.Request.Context(), id, role); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
