package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestThrottle(t *testing.T, max int, lockout time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginThrottle(client, max, lockout), mr
}

func TestLoginThrottle_LocksAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	th, _ := newTestThrottle(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, err := th.Allow(ctx, "alice")
		if err != nil || !ok {
			t.Fatalf("attempt %d: expected allowed, got %v %v", i, ok, err)
		}
		if err := th.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("record failure: %v", err)
		}
	}

	ok, err := th.Allow(ctx, "alice")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if ok {
		t.Fatalf("expected lockout after 3 failures")
	}

	if ok, _ := th.Allow(ctx, "bob"); !ok {
		t.Fatalf("expected other usernames to be unaffected")
	}
}

func TestLoginThrottle_ExpiresAfterLockout(t *testing.T) {
	ctx := context.Background()
	th, mr := newTestThrottle(t, 1, time.Minute)

	_ = th.RecordFailure(ctx, "alice")
	if ok, _ := th.Allow(ctx, "alice"); ok {
		t.Fatalf("expected lockout")
	}
	if ttl := mr.TTL("login:failures:alice"); ttl != time.Minute {
		t.Fatalf("expected ttl of one minute, got %s", ttl)
	}

	mr.FastForward(time.Minute + time.Second)
	if ok, _ := th.Allow(ctx, "alice"); !ok {
		t.Fatalf("expected lockout to expire")
	}
}

func TestLoginThrottle_ResetAndCaseFolding(t *testing.T) {
	ctx := context.Background()
	th, _ := newTestThrottle(t, 1, time.Minute)

	_ = th.RecordFailure(ctx, "Alice")
	if ok, _ := th.Allow(ctx, "alice"); ok {
		t.Fatalf("expected usernames to share a counter regardless of case")
	}
	if err := th.Reset(ctx, "ALICE"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if ok, _ := th.Allow(ctx, "alice"); !ok {
		t.Fatalf("expected reset to clear the counter")
	}
}

func TestLoginThrottle_ErrorsWhenUnavailable(t *testing.T) {
	th, mr := newTestThrottle(t, 1, time.Minute)
	mr.Close()

	if _, err := th.Allow(context.Background(), "alice"); err == nil {
		t.Fatalf("expected error when redis is down")
	}
}
