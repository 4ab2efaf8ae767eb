package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemorySessionCache_PutGetDrop(t *testing.T) {
	cache := NewMemorySessionCache()

	if err := cache.Put("tok", "u1", time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	userID, ok, err := cache.Get("tok")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok || userID != "u1" {
		t.Fatalf("expected hit u1, got %q,%v", userID, ok)
	}

	if err := cache.Drop("tok"); err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	_, ok, err = cache.Get("tok")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatalf("expected miss after drop")
	}
}

func TestMemorySessionCache_TTL(t *testing.T) {
	cache := NewMemorySessionCache()

	if err := cache.Put("tok", "u1", time.Nanosecond); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	_, ok, err := cache.Get("tok")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestMemorySessionCache_IgnoresEmptyToken(t *testing.T) {
	cache := NewMemorySessionCache()

	if err := cache.Put("  ", "u1", time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	_, ok, err := cache.Get("  ")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatalf("blank token should never be cached")
	}
}

type mockRedisKV struct {
	values  map[string]string
	setKeys []string
	delKeys []string
}

func newMockRedisKV() *mockRedisKV {
	return &mockRedisKV{values: make(map[string]string)}
}

func (m *mockRedisKV) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	m.setKeys = append(m.setKeys, key)
	m.values[key] = value.(string)
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (m *mockRedisKV) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	value, ok := m.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(value)
	return cmd
}

func (m *mockRedisKV) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	var deleted int64
	for _, key := range keys {
		m.delKeys = append(m.delKeys, key)
		if _, ok := m.values[key]; ok {
			delete(m.values, key)
			deleted++
		}
	}
	cmd.SetVal(deleted)
	return cmd
}

func TestRedisSessionCache_RoundTrip(t *testing.T) {
	client := newMockRedisKV()
	cache := &redisSessionCache{client: client, prefix: "auth:session:"}

	if err := cache.Put("tok", "u1", time.Minute); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if len(client.setKeys) != 1 || client.setKeys[0] != "auth:session:tok" {
		t.Fatalf("expected prefixed key, got %v", client.setKeys)
	}

	userID, ok, err := cache.Get("tok")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok || userID != "u1" {
		t.Fatalf("expected hit u1, got %q,%v", userID, ok)
	}

	if err := cache.Drop("tok"); err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	_, ok, err = cache.Get("tok")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatalf("expected miss after drop")
	}
}

func TestRedisSessionCache_MissIsNotAnError(t *testing.T) {
	cache := &redisSessionCache{client: newMockRedisKV(), prefix: "auth:session:"}

	userID, ok, err := cache.Get("absent")
	if err != nil {
		t.Fatalf("redis.Nil should map to a clean miss, got %v", err)
	}
	if ok || userID != "" {
		t.Fatalf("expected miss, got %q,%v", userID, ok)
	}
}
