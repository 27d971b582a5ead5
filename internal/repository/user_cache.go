package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/account-service/internal/domain"
)

// cachedUser is the redis serialization of a user record. The password hash
// stays out of the cache entirely.
type cachedUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserCache is a read-through cache of user projections keyed by id. All
// methods are nil-safe so the service degrades to store-only when redis is
// not configured.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache wraps a redis client. ttlSeconds non-positive falls back to
// one minute.
func NewUserCache(client *redis.Client, ttlSeconds int) *UserCache {
	if ttlSeconds <= 0 {
		ttlSeconds = 60
	}
	return &UserCache{client: client, ttl: time.Duration(ttlSeconds) * time.Second}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// Get fetches a cached user projection. Misses and decode failures both
// report a miss.
func (c *UserCache) Get(ctx context.Context, id int64) (*domain.User, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var cached cachedUser
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false
	}
	return &domain.User{
		ID:        cached.ID,
		Name:      cached.Name,
		Email:     cached.Email,
		BirthDate: cached.BirthDate,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}, true
}

// Set stores a user projection. Failures are ignored; the cache is an
// optimization, never a source of truth.
func (c *UserCache) Set(ctx context.Context, user *domain.User) {
	if c == nil || c.client == nil || user == nil {
		return
	}
	raw, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		BirthDate: user.BirthDate,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, cacheKey(user.ID), raw, c.ttl).Err()
}
