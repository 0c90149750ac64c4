package ratelimiter

import (
	"testing"
	"time"
)

func TestFixedWindowLimiter(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if allow, _ := rl.Allow("10.0.0.1"); !allow {
			t.Fatalf("request %d unexpectedly denied", i+1)
		}
	}

	allow, retryAfter := rl.Allow("10.0.0.1")
	if allow {
		t.Error("request over the limit was allowed")
	}
	if retryAfter != time.Minute {
		t.Errorf("got retry-after %v, want %v", retryAfter, time.Minute)
	}

	// other clients have their own budget
	if allow, _ := rl.Allow("10.0.0.2"); !allow {
		t.Error("separate client was denied")
	}
}
