// Package spaces fronts the core API's space catalog with a short-lived
// Redis cache for detail lookups. Availability is never cached here: the
// grid must reflect the core API at the moment of the request.
package spaces

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"infinity8/gateway"
	"infinity8/models"
	"infinity8/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const spaceDetailTTL = 60 * time.Second

type Service struct {
	api   gateway.SpacesAPI
	cache *redis.Client
}

func NewService(api gateway.SpacesAPI, cache *redis.Client) *Service {
	return &Service{api: api, cache: cache}
}

// List passes the filter straight through to the core API. Listings change
// with admin edits and are cheap upstream, so they are not cached.
func (s *Service) List(ctx context.Context, filter models.SpaceFilter) ([]models.Space, error) {
	return s.api.List(ctx, filter)
}

// Get returns a single space, serving a cached copy when one is fresh.
func (s *Service) Get(ctx context.Context, id int64) (*models.Space, error) {
	cacheKey := fmt.Sprintf("%s%d", utils.SpaceCachePrefix, id)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var space models.Space
			if err := json.Unmarshal([]byte(data), &space); err == nil {
				return &space, nil
			}
		}
	}

	space, err := s.api.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(space); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, spaceDetailTTL).Err(); err != nil {
				zap.L().Warn("failed to cache space", zap.Int64("spaceID", id), zap.Error(err))
			}
		}
	}
	return space, nil
}

// Availability fetches the slot grid for one space and day. Always a live
// read.
func (s *Service) Availability(ctx context.Context, id int64, date string) (*models.SpaceAvailability, error) {
	return s.api.Availability(ctx, id, date)
}

// Create adds a space through the core API. Admin only, enforced at the
// route layer.
func (s *Service) Create(ctx context.Context, input models.SpaceInput) (*models.Space, error) {
	return s.api.Create(ctx, input)
}

// Update patches a space and drops its cached detail.
func (s *Service) Update(ctx context.Context, id int64, patch map[string]interface{}) (*models.Space, error) {
	space, err := s.api.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return space, nil
}

// Delete removes a space and drops its cached detail.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *Service) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	key := fmt.Sprintf("%s%d", utils.SpaceCachePrefix, id)
	if err := s.cache.Del(ctx, key).Err(); err != nil {
		zap.L().Warn("failed to invalidate space cache", zap.Int64("spaceID", id), zap.Error(err))
	}
}
