package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"infinity8/models"
	"infinity8/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const bookingsViewTTL = 5 * time.Minute

// ViewStore persists a user's cached bookings list between requests. Load
// and Save are best-effort: a missing or unreadable view just means the
// next listing hits the core API.
type ViewStore interface {
	Load(ctx context.Context, userID int64) ([]models.Booking, bool)
	Save(ctx context.Context, userID int64, bookings []models.Booking)
	Delete(ctx context.Context, userID int64)
}

// RedisViewStore stores JSON views in Redis with a short TTL.
type RedisViewStore struct {
	client *redis.Client
}

func NewRedisViewStore(client *redis.Client) *RedisViewStore {
	return &RedisViewStore{client: client}
}

func (s *RedisViewStore) key(userID int64) string {
	return fmt.Sprintf("%s%d", utils.BookingsViewPrefix, userID)
}

func (s *RedisViewStore) Load(ctx context.Context, userID int64) ([]models.Booking, bool) {
	data, err := s.client.Get(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, false
	}
	var bookings []models.Booking
	if err := json.Unmarshal([]byte(data), &bookings); err != nil {
		return nil, false
	}
	return bookings, true
}

func (s *RedisViewStore) Save(ctx context.Context, userID int64, bookings []models.Booking) {
	data, err := json.Marshal(bookings)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, s.key(userID), data, bookingsViewTTL).Err(); err != nil {
		zap.L().Warn("failed to cache bookings view", zap.Int64("userID", userID), zap.Error(err))
	}
}

func (s *RedisViewStore) Delete(ctx context.Context, userID int64) {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		zap.L().Warn("failed to invalidate bookings view", zap.Int64("userID", userID), zap.Error(err))
	}
}
