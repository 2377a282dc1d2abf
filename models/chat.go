package models

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload forwarded to the agent endpoint.
type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}

// ChatResponse is the agent endpoint's reply.
type ChatResponse struct {
	Response            string        `json:"response"`
	ConversationHistory []ChatMessage `json:"conversation_history"`
}

// AgentStatus reports whether the upstream agent is reachable.
type AgentStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
