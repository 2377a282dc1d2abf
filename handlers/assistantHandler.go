package handlers

import (
	"fmt"
	"net/http"

	"infinity8/models"
	"infinity8/services/identity"

	"github.com/gin-gonic/gin"
)

// conversationKey picks the continuity key for the assistant: the user id
// when signed in, otherwise a client-chosen conversation id. Anonymous
// callers without an id get no server-side continuity and must carry their
// own history.
func conversationKey(c *gin.Context) string {
	if p := identity.PrincipalFromContext(c.Request.Context()); p != nil && p.User != nil {
		return fmt.Sprintf("user:%d", p.User.ID)
	}
	if id := c.GetHeader("X-Conversation-Id"); id != "" {
		return "anon:" + id
	}
	return ""
}

// ChatWithAssistant relays one message to the booking agent.
func (h *HandlerBundle) ChatWithAssistant(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	resp, err := h.Assistant.Chat(c.Request.Context(), conversationKey(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAssistantStatus reports whether the agent is reachable. Never errors:
// an unreachable agent reads as status "unavailable".
func (h *HandlerBundle) GetAssistantStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.Assistant.Status(c.Request.Context()))
}

// ResetAssistantConversation drops the stored conversation context.
func (h *HandlerBundle) ResetAssistantConversation(c *gin.Context) {
	key := conversationKey(c)
	if key == "" {
		c.Status(http.StatusNoContent)
		return
	}
	if err := h.Assistant.Reset(c.Request.Context(), key); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
