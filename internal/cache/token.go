package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/steelerp/erpclient/internal/session"
)

// DefaultKeyPrefix namespaces client storage keys in Redis.
const DefaultKeyPrefix = "erp:storage:"

// TokenStore keeps the auth token under a single Redis key. It implements
// session.Store and, through For, session.Provider.
type TokenStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// TokenStore returns a token store on this cache. An empty prefix selects
// DefaultKeyPrefix; a zero ttl keeps the token until it is cleared.
func (c *Cache) TokenStore(prefix string, ttl time.Duration) *TokenStore {
	return &TokenStore{
		client: c.client,
		key:    tokenKey(prefix),
		ttl:    ttl,
	}
}

func tokenKey(prefix string) string {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return prefix + session.TokenKey
}

// For returns the store of one session under "<key>:<sessionID>", sharing
// the client and TTL.
func (s *TokenStore) For(sessionID string) session.Store {
	return &TokenStore{client: s.client, key: s.key + ":" + sessionID, ttl: s.ttl}
}

// Key returns the Redis key holding the token.
func (s *TokenStore) Key() string {
	return s.key
}

// Token returns the stored token or session.ErrNoToken.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", session.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return token, nil
}

// SetToken stores token, refreshing the TTL.
func (s *TokenStore) SetToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Clear deletes the token. Deleting a missing key is not an error, so
// concurrent clears are harmless.
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

// Ping checks Redis connectivity.
func (s *TokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
