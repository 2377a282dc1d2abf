package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"infinity8/models"
	"infinity8/utils"

	"github.com/go-redis/redis/v8"
)

// ErrNoContext means no conversation is stored under the key.
var ErrNoContext = errors.New("no stored conversation context")

const contextTTL = 30 * time.Minute

// ContextStore holds recent conversation turns keyed by conversation id.
type ContextStore interface {
	Load(ctx context.Context, conversationKey string) ([]models.ChatMessage, error)
	Save(ctx context.Context, conversationKey string, history []models.ChatMessage) error
	Delete(ctx context.Context, conversationKey string) error
}

// RedisContextStore keeps conversations in Redis with a sliding TTL so
// idle conversations expire.
type RedisContextStore struct {
	client *redis.Client
}

func NewRedisContextStore(client *redis.Client) *RedisContextStore {
	return &RedisContextStore{client: client}
}

func (s *RedisContextStore) Load(ctx context.Context, conversationKey string) ([]models.ChatMessage, error) {
	data, err := s.client.Get(ctx, utils.AssistantContextPrefix+conversationKey).Result()
	if err == redis.Nil {
		return nil, ErrNoContext
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation context: %w", err)
	}
	var history []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, fmt.Errorf("failed to parse conversation context: %w", err)
	}
	return history, nil
}

func (s *RedisContextStore) Save(ctx context.Context, conversationKey string, history []models.ChatMessage) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation context: %w", err)
	}
	if err := s.client.Set(ctx, utils.AssistantContextPrefix+conversationKey, data, contextTTL).Err(); err != nil {
		return fmt.Errorf("failed to store conversation context: %w", err)
	}
	return nil
}

func (s *RedisContextStore) Delete(ctx context.Context, conversationKey string) error {
	return s.client.Del(ctx, utils.AssistantContextPrefix+conversationKey).Err()
}
