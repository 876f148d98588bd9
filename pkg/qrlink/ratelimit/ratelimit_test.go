package ratelimit

import (
	"testing"
	"time"
)

func TestGuardAllowsUnderLimit(t *testing.T) {
	guard := NewGuard(10)

	for i := 0; i < 10; i++ {
		if ok, _ := guard.Allow("127.0.0.1"); !ok {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}
}

func TestGuardDeniesOverLimit(t *testing.T) {
	guard := NewGuard(5)

	for i := 0; i < 5; i++ {
		guard.Allow("127.0.0.1")
	}

	ok, retryAfter := guard.Allow("127.0.0.1")
	if ok {
		t.Fatal("Request over the ceiling should be denied")
	}
	if retryAfter <= 0 {
		t.Errorf("Expected positive retry-after, got %v", retryAfter)
	}
}

func TestGuardSixtyPerMinute(t *testing.T) {
	guard := NewGuard(60)

	for i := 1; i <= 60; i++ {
		if ok, _ := guard.Allow("127.0.0.1"); !ok {
			t.Fatalf("Request %d should succeed", i)
		}
	}

	ok, retryAfter := guard.Allow("127.0.0.1")
	if ok {
		t.Fatal("Request 61 should be rate limited")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("Expected retry-after within (0, 60s], got %v", retryAfter)
	}
}

func TestGuardKeysIndependent(t *testing.T) {
	guard := NewGuard(2)

	guard.Allow("127.0.0.1")
	guard.Allow("127.0.0.1")

	if ok, _ := guard.Allow("127.0.0.1"); ok {
		t.Error("First client should be blocked")
	}
	if ok, _ := guard.Allow("192.168.1.1"); !ok {
		t.Error("Second client should be unaffected")
	}
}

func TestGuardCleanupEvictsIdleKeys(t *testing.T) {
	guard := NewGuard(10)
	guard.idleTTL = 0

	guard.Allow("127.0.0.1")
	guard.Allow("192.168.1.1")

	time.Sleep(time.Millisecond)
	guard.Cleanup()

	guard.mu.Lock()
	remaining := len(guard.entries)
	guard.mu.Unlock()

	if remaining != 0 {
		t.Errorf("Expected all idle keys evicted, %d remain", remaining)
	}
}

func TestGuardCleanupKeepsActiveKeys(t *testing.T) {
	guard := NewGuard(10)

	guard.Allow("127.0.0.1")
	guard.Cleanup()

	guard.mu.Lock()
	remaining := len(guard.entries)
	guard.mu.Unlock()

	if remaining != 1 {
		t.Errorf("Expected the active key to survive, got %d entries", remaining)
	}
}
