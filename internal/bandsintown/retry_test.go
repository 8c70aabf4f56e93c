// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package bandsintown

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want failureClass
	}{
		{"rate limited 429", &apiError{StatusCode: 429}, classRateLimited},
		{"forbidden 403", &apiError{StatusCode: 403}, classRateLimited},
		{"not found 404", &apiError{StatusCode: 404}, classNotFound},
		{"server error 500", &apiError{StatusCode: 500}, classTransient},
		{"bad gateway 502", &apiError{StatusCode: 502}, classTransient},
		{"transport error", errors.New("connection refused"), classTransient},
		{"wrapped api error", fmt.Errorf("attempt 2: %w", &apiError{StatusCode: 429}), classRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := classify(tt.err); got != tt.want {
				t.Errorf("classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryPolicyDelay(t *testing.T) {
	t.Parallel()

	policy := RetryPolicy{MaxRetries: 3, BaseDelay: time.Second}

	tests := []struct {
		name  string
		class failureClass
		retry int
		want  time.Duration
	}{
		{"rate limited retry 1", classRateLimited, 1, 3 * time.Second},
		{"rate limited retry 2", classRateLimited, 2, 9 * time.Second},
		{"rate limited retry 3", classRateLimited, 3, 27 * time.Second},
		{"transient retry 1", classTransient, 1, time.Second},
		{"transient retry 2", classTransient, 2, 2 * time.Second},
		{"transient retry 3", classTransient, 3, 3 * time.Second},
		{"retry clamped to 1", classTransient, 0, time.Second},
		{"negative retry clamped", classRateLimited, -2, 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := policy.Delay(tt.class, tt.retry); got != tt.want {
				t.Errorf("Delay(%v, %d) = %v, want %v", tt.class, tt.retry, got, tt.want)
			}
		})
	}
}

func TestRetryPolicyDelayRateLimitedGrowsFaster(t *testing.T) {
	t.Parallel()

	policy := RetryPolicy{BaseDelay: 100 * time.Millisecond}
	for retry := 1; retry <= 4; retry++ {
		limited := policy.Delay(classRateLimited, retry)
		transient := policy.Delay(classTransient, retry)
		if limited <= transient {
			t.Errorf("retry %d: rate-limited delay %v not greater than transient %v", retry, limited, transient)
		}
	}
}

func TestSleepCtx(t *testing.T) {
	t.Parallel()

	t.Run("zero duration returns immediately", func(t *testing.T) {
		t.Parallel()
		if err := sleepCtx(context.Background(), 0); err != nil {
			t.Errorf("sleepCtx(ctx, 0) = %v, want nil", err)
		}
	})

	t.Run("canceled context aborts the sleep", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		start := time.Now()
		err := sleepCtx(ctx, 10*time.Second)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("sleepCtx on canceled context = %v, want context.Canceled", err)
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("sleepCtx took %v, expected immediate return", elapsed)
		}
	})

	t.Run("short sleep completes", func(t *testing.T) {
		t.Parallel()
		if err := sleepCtx(context.Background(), time.Millisecond); err != nil {
			t.Errorf("sleepCtx(ctx, 1ms) = %v, want nil", err)
		}
	})
}
