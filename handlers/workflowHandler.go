package handlers

import (
	"errors"
	"io"
	"net/http"

	"infinity8/services/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateWorkflowSession opens a booking panel for a space and returns the
// session id plus the initial state (today's availability).
func (h *HandlerBundle) CreateWorkflowSession(c *gin.Context) {
	var input struct {
		SpaceID int64 `json:"space_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	space, err := h.Spaces.Get(c.Request.Context(), input.SpaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	sessionID, controller, err := h.Sessions.Create(c.Request.Context(), *space)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sessionID,
		"state":      controller.State(),
	})
}

// GetWorkflowState returns the current panel state for a session.
func (h *HandlerBundle) GetWorkflowState(c *gin.Context) {
	controller, err := h.Sessions.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": controller.State()})
}

// SetWorkflowDate switches the session's viewing date and reloads
// availability. The response carries the resulting state even when the
// availability fetch failed, so the panel can render the failed grid.
func (h *HandlerBundle) SetWorkflowDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID := c.Param("sessionID")
	controller, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	fetchErr := controller.SetDate(c.Request.Context(), input.Date)
	h.saveSession(c, sessionID)

	if fetchErr != nil {
		respondError(c, fetchErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": controller.State()})
}

// ToggleWorkflowSlot flips one slot in or out of the selection. Unknown
// and unavailable slots are no-ops, not errors; the state shows the
// outcome either way.
func (h *HandlerBundle) ToggleWorkflowSlot(c *gin.Context) {
	var input struct {
		Start string `json:"start" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID := c.Param("sessionID")
	controller, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	controller.ToggleSlot(input.Start)
	h.saveSession(c, sessionID)
	c.JSON(http.StatusOK, gin.H{"state": controller.State()})
}

// RefreshWorkflowAvailability re-fetches the grid for the selected date.
func (h *HandlerBundle) RefreshWorkflowAvailability(c *gin.Context) {
	sessionID := c.Param("sessionID")
	controller, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	fetchErr := controller.Refresh(c.Request.Context())
	h.saveSession(c, sessionID)

	if fetchErr != nil {
		respondError(c, fetchErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": controller.State()})
}

// SubmitWorkflowBooking submits the current selection as a booking.
// Requires an authenticated caller; the route is behind auth middleware
// and the controller checks the principal again.
func (h *HandlerBundle) SubmitWorkflowBooking(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	// An empty body means no notes.
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID := c.Param("sessionID")
	controller, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	booking, err := controller.Submit(c.Request.Context(), input.Notes)
	h.saveSession(c, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	if p := identity.PrincipalFromContext(c.Request.Context()); p != nil && p.User != nil {
		h.Bookings.InvalidateView(c.Request.Context(), p.User.ID)
	}
	c.JSON(http.StatusCreated, gin.H{
		"booking": booking,
		"state":   controller.State(),
	})
}

// DeleteWorkflowSession ends the session.
func (h *HandlerBundle) DeleteWorkflowSession(c *gin.Context) {
	if err := h.Sessions.Delete(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HandlerBundle) saveSession(c *gin.Context, sessionID string) {
	controller, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		return
	}
	if err := h.Sessions.Save(c.Request.Context(), sessionID, controller); err != nil {
		zap.L().Warn("failed to save workflow session", zap.String("sessionID", sessionID), zap.Error(err))
	}
}
