package gateway

import (
	"context"
	"net/http"

	"infinity8/models"
)

// AgentAPI is the conversational assistant endpoint. The agent itself
// (model, tools, booking actions) runs upstream; this is a pure proxy
// surface.
type AgentAPI interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	Status(ctx context.Context) (*models.AgentStatus, error)
}

// AgentClient implements AgentAPI.
type AgentClient struct {
	*Client
}

func NewAgentClient(c *Client) *AgentClient {
	return &AgentClient{Client: c}
}

func (a *AgentClient) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	var resp models.ChatResponse
	if err := a.do(ctx, http.MethodPost, "/agent/chat", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AgentClient) Status(ctx context.Context) (*models.AgentStatus, error) {
	var status models.AgentStatus
	if err := a.do(ctx, http.MethodGet, "/agent/status", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
