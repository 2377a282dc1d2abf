package handlers

import (
	"errors"
	"net/http"

	"infinity8/gateway"
	"infinity8/services/workflow"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to an HTTP response. Upstream
// rejections keep their status and message verbatim; transport failures
// collapse to a generic 502 so upstream internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workflow.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	case errors.Is(err, workflow.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, workflow.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var validation *workflow.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Reason})
		return
	}
	var rejection *workflow.RejectionError
	if errors.As(err, &rejection) {
		c.JSON(rejection.Status, gin.H{"error": rejection.Message})
		return
	}
	var upstream *gateway.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(upstream.Status, gin.H{"error": upstream.Detail})
		return
	}

	var wfTransport *workflow.TransportError
	var gwTransport *gateway.TransportError
	if errors.As(err, &wfTransport) || errors.As(err, &gwTransport) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream service unavailable. Please try again."})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
