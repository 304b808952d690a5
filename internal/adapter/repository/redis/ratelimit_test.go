package redis

import (
	"context"
	"testing"
	"time"
)

func TestRateLimitStoreAllowsUnderLimit(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow(ctx, "10.0.0.1", 3, time.Minute)
		if err != nil {
			t.Fatalf("allow failed: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be under the limit", i+1)
		}
	}
}

func TestRateLimitStoreBlocksOverLimit(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := store.Allow(ctx, "10.0.0.1", 2, time.Minute); err != nil {
			t.Fatalf("allow failed: %v", err)
		}
	}

	allowed, err := store.Allow(ctx, "10.0.0.1", 2, time.Minute)
	if err != nil {
		t.Fatalf("allow failed: %v", err)
	}
	if allowed {
		t.Fatal("expected the third request to be blocked")
	}
}

func TestRateLimitStoreWindowExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewRateLimitStore(client)
	ctx := context.Background()

	if _, err := store.Allow(ctx, "10.0.0.1", 1, time.Minute); err != nil {
		t.Fatalf("allow failed: %v", err)
	}

	allowed, _ := store.Allow(ctx, "10.0.0.1", 1, time.Minute)
	if allowed {
		t.Fatal("expected the second request to be blocked")
	}

	mr.FastForward(time.Minute + time.Second)

	allowed, err := store.Allow(ctx, "10.0.0.1", 1, time.Minute)
	if err != nil {
		t.Fatalf("allow failed: %v", err)
	}
	if !allowed {
		t.Fatal("expected a fresh window after expiry")
	}
}

func TestRateLimitStoreKeysAreIndependent(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewRateLimitStore(client)
	ctx := context.Background()

	if _, err := store.Allow(ctx, "10.0.0.1", 1, time.Minute); err != nil {
		t.Fatalf("allow failed: %v", err)
	}

	allowed, err := store.Allow(ctx, "10.0.0.2", 1, time.Minute)
	if err != nil {
		t.Fatalf("allow failed: %v", err)
	}
	if !allowed {
		t.Fatal("expected a different client to have its own counter")
	}
}
