package client

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRetryEligible_Reads(t *testing.T) {
	t.Parallel()

	c := New(nil)

	for _, method := range []string{"GET", "get", " GET ", "HEAD", "OPTIONS"} {
		if !c.retryEligible(method, "/order/create") {
			t.Errorf("expected %s to be eligible regardless of path", method)
		}
	}
}

func TestRetryEligible_Writes(t *testing.T) {
	t.Parallel()

	c := New(nil)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"allow-listed exact", "/price/quote", true},
		{"allow-listed prefix", "/catalog/list/featured", true},
		{"not listed", "/order/create", false},
		{"prefix of an entry is not a match", "/price", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := c.retryEligible("POST", tt.path); got != tt.want {
				t.Errorf("expected eligible=%v for %s, got %v", tt.want, tt.path, got)
			}
		})
	}
}

func TestRetryEligible_CustomWritePaths(t *testing.T) {
	t.Parallel()

	c := New(nil, WithRetryableWritePaths("/cart/sync"))

	if !c.retryEligible("POST", "/cart/sync") {
		t.Error("expected configured path to be eligible")
	}

	if c.retryEligible("POST", "/price/quote") {
		t.Error("expected default paths to be replaced, not extended")
	}
}

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []int{408, 429, 500, 502, 503, 504} {
		if !retryableStatus(status) {
			t.Errorf("expected status %d to be retryable", status)
		}
	}

	for _, status := range []int{200, 201, 301, 400, 401, 403, 404, 409, 422, 501} {
		if retryableStatus(status) {
			t.Errorf("expected status %d to be terminal", status)
		}
	}
}

type fakeNetError struct {
	timeout bool
}

func (e *fakeNetError) Error() string   { return "dial tcp 10.0.0.1:443: handshake problem" }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

func TestRetryableTransportError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"context cancelled", context.Canceled, true},
		{"context deadline", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("do request: %w", context.DeadlineExceeded), true},
		{"net timeout", &fakeNetError{timeout: true}, true},
		{"net non-timeout without vocabulary", &fakeNetError{timeout: false}, false},
		{"timeout in text", errors.New("TLS handshake timeout"), true},
		{"network in text", errors.New("Network is unreachable"), true},
		{"socket in text", errors.New("Socket hang up"), true},
		{"fetch in text", errors.New("failed to fetch"), true},
		{"unrelated error", errors.New("no route to host"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := retryableTransportError(tt.err); got != tt.want {
				t.Errorf("expected retryable=%v for %v, got %v", tt.want, tt.err, got)
			}
		})
	}
}

func TestBackoffDelay_GrowsAndStaysBounded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attempt int
		min     time.Duration
		max     time.Duration
	}{
		{1, 220 * time.Millisecond, 340 * time.Millisecond},
		{2, 440 * time.Millisecond, 560 * time.Millisecond},
		{3, 880 * time.Millisecond, 1000 * time.Millisecond},
		{4, 1760 * time.Millisecond, 1880 * time.Millisecond},
		{5, 2 * time.Second, 2 * time.Second},
		{9, 2 * time.Second, 2 * time.Second},
	}

	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			got := backoffDelay(tt.attempt)
			if got < tt.min || got > tt.max {
				t.Fatalf("attempt %d: expected delay in [%s, %s], got %s", tt.attempt, tt.min, tt.max, got)
			}
		}
	}
}

func TestBackoffDelay_Jitters(t *testing.T) {
	t.Parallel()

	seen := map[time.Duration]bool{}
	for i := 0; i < 50; i++ {
		seen[backoffDelay(1)] = true
	}

	if len(seen) < 2 {
		t.Error("expected jitter to vary the delay")
	}
}

func TestSleep_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := sleep(ctx, 5*time.Second)

	if err == nil {
		t.Error("expected context error")
	}

	if time.Since(start) > time.Second {
		t.Error("expected sleep to return promptly on cancellation")
	}
}

func TestSleep_NonPositive(t *testing.T) {
	t.Parallel()

	if err := sleep(context.Background(), 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
