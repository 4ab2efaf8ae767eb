package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionCache es un lookaside token -> user id con TTL. Solo acelera la
// validacion; la tabla de sesiones sigue siendo la fuente de verdad.
type SessionCache interface {
	Put(token, userID string, ttl time.Duration) error
	Get(token string) (string, bool, error)
	Drop(token string) error
}

type memorySessionCache struct {
	mu    sync.Mutex
	items map[string]cachedSession
}

type cachedSession struct {
	userID    string
	expiresAt time.Time
}

func NewMemorySessionCache() SessionCache {
	return &memorySessionCache{
		items: make(map[string]cachedSession),
	}
}

func (c *memorySessionCache) Put(token, userID string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if strings.TrimSpace(token) == "" || ttl <= 0 {
		return nil
	}
	c.items[token] = cachedSession{
		userID:    userID,
		expiresAt: time.Now().UTC().Add(ttl),
	}
	return nil
}

func (c *memorySessionCache) Get(token string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.items[token]
	if !ok {
		return "", false, nil
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(c.items, token)
		return "", false, nil
	}
	return entry.userID, true, nil
}

func (c *memorySessionCache) Drop(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, token)
	return nil
}

type redisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisSessionCache struct {
	client redisKV
	prefix string
}

func NewRedisSessionCache(client *redis.Client) SessionCache {
	if client == nil {
		return nil
	}
	return &redisSessionCache{
		client: client,
		prefix: "auth:session:",
	}
}

func (c *redisSessionCache) Put(token, userID string, ttl time.Duration) error {
	if strings.TrimSpace(token) == "" || ttl <= 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+token, userID, ttl).Err()
}

func (c *redisSessionCache) Get(token string) (string, bool, error) {
	if strings.TrimSpace(token) == "" {
		return "", false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	userID, err := c.client.Get(ctx, c.prefix+token).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return userID, true, nil
}

func (c *redisSessionCache) Drop(token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return c.client.Del(ctx, c.prefix+token).Err()
}
