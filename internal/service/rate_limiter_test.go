package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestSlidingWindowLimiter(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 2)

	if !limiter.Allow("a@b.com") {
		t.Fatalf("first hit should pass")
	}
	if !limiter.Allow("a@b.com") {
		t.Fatalf("second hit should pass")
	}
	if limiter.Allow("a@b.com") {
		t.Fatalf("third hit inside the window should be blocked")
	}
	// Otra clave tiene su propio presupuesto.
	if !limiter.Allow("other@b.com") {
		t.Fatalf("different key should pass")
	}
}

func TestSlidingWindowLimiter_WindowSlides(t *testing.T) {
	limiter := NewRateLimiter(20*time.Millisecond, 1)

	if !limiter.Allow("a@b.com") {
		t.Fatalf("first hit should pass")
	}
	if limiter.Allow("a@b.com") {
		t.Fatalf("second hit should be blocked")
	}
	time.Sleep(30 * time.Millisecond)
	if !limiter.Allow("a@b.com") {
		t.Fatalf("hit after the window should pass")
	}
}

func TestSlidingWindowLimiter_KeyNormalization(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 1)

	if !limiter.Allow("  A@B.com ") {
		t.Fatalf("first hit should pass")
	}
	if limiter.Allow("a@b.com") {
		t.Fatalf("normalized key should share the budget")
	}
	if limiter.Allow("   ") {
		t.Fatalf("blank key should be rejected")
	}
}

type mockRedisEvaler struct {
	count int64
	err   error
	keys  []string
}

func (m *mockRedisEvaler) Eval(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	m.keys = append(m.keys, keys...)
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	m.count++
	cmd.SetVal(m.count)
	return cmd
}

func TestRedisRateLimiter(t *testing.T) {
	client := &mockRedisEvaler{}
	limiter := &redisRateLimiter{client: client, window: time.Minute, max: 2, prefix: "contact:rl:"}

	if !limiter.Allow("a@b.com") {
		t.Fatalf("first hit should pass")
	}
	if !limiter.Allow("a@b.com") {
		t.Fatalf("second hit should pass")
	}
	if limiter.Allow("a@b.com") {
		t.Fatalf("third hit should be blocked")
	}
	if len(client.keys) == 0 || client.keys[0] != "contact:rl:a@b.com" {
		t.Fatalf("expected prefixed key, got %v", client.keys)
	}
}

func TestRedisRateLimiter_FailsOpen(t *testing.T) {
	client := &mockRedisEvaler{err: errors.New("connection refused")}
	limiter := &redisRateLimiter{client: client, window: time.Minute, max: 1, prefix: "contact:rl:"}

	if !limiter.Allow("a@b.com") {
		t.Fatalf("redis errors should not block legitimate submissions")
	}
}
