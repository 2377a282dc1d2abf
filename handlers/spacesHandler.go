package handlers

import (
	"net/http"
	"strconv"

	"infinity8/models"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// ListSpaces returns the space catalog, optionally filtered.
func (h *HandlerBundle) ListSpaces(c *gin.Context) {
	filter := models.SpaceFilter{
		Type:     c.Query("type"),
		Location: c.Query("location"),
	}
	if v := c.Query("min_capacity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MinCapacity = n
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = f
		}
	}

	spaces, err := h.Spaces.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spaces)
}

// GetSpace returns one space.
func (h *HandlerBundle) GetSpace(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	space, err := h.Spaces.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, space)
}

// GetSpaceAvailability returns the slot grid for one space and day.
func (h *HandlerBundle) GetSpaceAvailability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	availability, err := h.Spaces.Availability(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// CreateSpace adds a space. Admin only.
func (h *HandlerBundle) CreateSpace(c *gin.Context) {
	var input models.SpaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	space, err := h.Spaces.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, space)
}

// UpdateSpace patches a space. Admin only. The body is passed through as
// a partial update; the core API validates field values.
func (h *HandlerBundle) UpdateSpace(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	space, err := h.Spaces.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, space)
}

// DeleteSpace removes a space. Admin only.
func (h *HandlerBundle) DeleteSpace(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Spaces.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
