package identity

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

const resolvedUserTTL = 5 * time.Minute

// Resolver turns a verified access token into the application user behind
// it, caching the resolution so hot paths skip the /auth/me round trip.
type Resolver struct {
	API   gateway.IdentityAPI
	Cache *redis.Client
}

func NewResolver(api gateway.IdentityAPI, cache *redis.Client) *Resolver {
	return &Resolver{API: api, Cache: cache}
}

// Resolve verifies the token locally, then resolves the profile via the
// core API. The cache key is the token hash so raw tokens never reach
// Redis; the entry's TTL bounds how long a revoked token can still
// resolve.
func (r *Resolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	if _, err := utils.ExtractClaims(token); err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	if r.Cache != nil {
		if data, err := r.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(data), &user); err == nil {
				return &user, nil
			}
		}
	}

	user, err := r.API.Me(gateway.WithToken(ctx, token))
	if err != nil {
		return nil, err
	}

	if r.Cache != nil {
		if data, err := json.Marshal(user); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, resolvedUserTTL).Err(); err != nil {
				zap.L().Warn("failed to cache resolved principal", zap.Error(err))
			}
		}
	}
	return user, nil
}

// Sync provisions or fetches the application profile for a fresh identity.
func (r *Resolver) Sync(ctx context.Context, token, email, fullName string) (*models.User, error) {
	if _, err := utils.ExtractClaims(token); err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}
	user, err := r.API.Sync(gateway.WithToken(ctx, token), email, fullName)
	if err != nil {
		return nil, err
	}
	// A sync can change the profile; drop any stale cached resolution.
	if r.Cache != nil {
		_ = r.Cache.Del(ctx, utils.AuthCachePrefix+utils.HashToken(token)).Err()
	}
	return user, nil
}
