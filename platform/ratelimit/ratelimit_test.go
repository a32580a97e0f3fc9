package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryAllowsUpToLimit(t *testing.T) {
	lim := NewMemory(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := lim.Allow(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("submission %d should be allowed", i+1)
		}
	}

	ok, err := lim.Allow(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("fourth submission within window should be denied")
	}
}

func TestMemoryKeysAreIndependent(t *testing.T) {
	lim := NewMemory(1, time.Hour)
	ctx := context.Background()

	if ok, _ := lim.Allow(ctx, "first@example.com"); !ok {
		t.Fatal("first key should be allowed")
	}
	if ok, _ := lim.Allow(ctx, "second@example.com"); !ok {
		t.Error("second key should not share the first key's budget")
	}
	if ok, _ := lim.Allow(ctx, "first@example.com"); ok {
		t.Error("first key should be exhausted")
	}
}

func TestRedisAllowsUpToLimit(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	lim := NewRedis(client, "quotes", 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := lim.Allow(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("submission %d should be allowed", i+1)
		}
	}

	ok, err := lim.Allow(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("third submission within window should be denied")
	}

	// A different identity still has budget.
	if ok, _ := lim.Allow(ctx, "bruno@example.com"); !ok {
		t.Error("different key should be allowed")
	}
}

func TestRedisWindowExpires(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	lim := NewRedis(client, "quotes", 1, time.Minute)
	ctx := context.Background()

	if ok, _ := lim.Allow(ctx, "ana@example.com"); !ok {
		t.Fatal("first submission should be allowed")
	}
	if ok, _ := lim.Allow(ctx, "ana@example.com"); ok {
		t.Fatal("second submission should be denied")
	}

	// Advance past the window; the counter key rolls over and expires.
	srv.FastForward(2 * time.Minute)

	if ok, err := lim.Allow(ctx, "ana@example.com"); err != nil || !ok {
		t.Errorf("submission after window should be allowed, got ok=%v err=%v", ok, err)
	}
}

func TestRedisErrorSurfaced(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	lim := NewRedis(client, "quotes", 1, time.Minute)

	srv.Close()
	_ = client.Close()

	if _, err := lim.Allow(context.Background(), "ana@example.com"); err == nil {
		t.Error("expected error when redis is unavailable")
	}
}
