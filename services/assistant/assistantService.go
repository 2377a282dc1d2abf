// Package assistant proxies the conversational booking agent. The model
// and its tools live upstream; this service adds conversation continuity
// by keeping recent history in Redis per conversation key.
package assistant

import (
	"context"
	"errors"

	"infinity8/gateway"
	"infinity8/models"

	"go.uber.org/zap"
)

// keepHistoryTurns caps how much context is replayed to the agent.
const keepHistoryTurns = 20

type Service struct {
	api   gateway.AgentAPI
	store ContextStore
}

func NewService(api gateway.AgentAPI, store ContextStore) *Service {
	return &Service{api: api, store: store}
}

// Chat sends one message to the agent. When the client carries its own
// history it wins; otherwise the stored conversation is replayed. The
// returned history is persisted, trimmed to the most recent turns. An
// empty conversation key means no continuity: the store is never touched,
// so keyless callers cannot bleed into each other.
func (s *Service) Chat(ctx context.Context, conversationKey string, req models.ChatRequest) (*models.ChatResponse, error) {
	if len(req.ConversationHistory) == 0 && conversationKey != "" && s.store != nil {
		history, err := s.store.Load(ctx, conversationKey)
		if err != nil && !errors.Is(err, ErrNoContext) {
			zap.L().Warn("failed to load assistant context",
				zap.String("conversation", conversationKey), zap.Error(err))
		}
		req.ConversationHistory = history
	}

	resp, err := s.api.Chat(ctx, req)
	if err != nil {
		return nil, err
	}

	if conversationKey != "" && s.store != nil {
		history := resp.ConversationHistory
		if len(history) > keepHistoryTurns {
			history = history[len(history)-keepHistoryTurns:]
		}
		if err := s.store.Save(ctx, conversationKey, history); err != nil {
			zap.L().Warn("failed to persist assistant context",
				zap.String("conversation", conversationKey), zap.Error(err))
		}
	}
	return resp, nil
}

// Status probes the agent. A transport failure degrades to an explicit
// unavailable status instead of an error so the widget can render a
// disabled state.
func (s *Service) Status(ctx context.Context) *models.AgentStatus {
	status, err := s.api.Status(ctx)
	if err != nil {
		zap.L().Warn("agent status probe failed", zap.Error(err))
		return &models.AgentStatus{
			Status:  "unavailable",
			Message: "The assistant is currently unavailable.",
		}
	}
	return status
}

// Reset drops the stored conversation.
func (s *Service) Reset(ctx context.Context, conversationKey string) error {
	if s.store == nil || conversationKey == "" {
		return nil
	}
	return s.store.Delete(ctx, conversationKey)
}
