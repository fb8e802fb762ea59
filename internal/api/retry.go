// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// RetryPolicy bounds how a RetryDoer retries.
type RetryPolicy struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int

	// BaseDelay is the backoff ceiling for the first retry. It doubles per
	// attempt up to MaxDelay.
	BaseDelay time.Duration
	MaxDelay  time.Duration

	// RatePerSecond caps outgoing attempts. Zero disables pacing.
	RatePerSecond float64

	// RetryUnsafe also retries POST requests. Off by default since a
	// retried send may create a duplicate message.
	RetryUnsafe bool
}

// DefaultRetryPolicy returns the policy used when retry is enabled without
// explicit settings.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   3,
		BaseDelay:     500 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		RatePerSecond: 2,
	}
}

// RetryDoer decorates a Doer with bounded retries, exponential backoff with
// full jitter and attempt pacing.
type RetryDoer struct {
	inner   Doer
	policy  RetryPolicy
	limiter *rate.Limiter

	// sleep and jitter are replaceable in tests.
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func(max time.Duration) time.Duration
}

// NewRetryDoer wraps inner with policy.
func NewRetryDoer(inner Doer, policy RetryPolicy) *RetryDoer {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.BaseDelay <= 0 {
		policy.BaseDelay = DefaultRetryPolicy().BaseDelay
	}
	if policy.MaxDelay < policy.BaseDelay {
		policy.MaxDelay = policy.BaseDelay
	}

	limit := rate.Inf
	if policy.RatePerSecond > 0 {
		limit = rate.Limit(policy.RatePerSecond)
	}

	return &RetryDoer{
		inner:   inner,
		policy:  policy,
		limiter: rate.NewLimiter(limit, 1),
		sleep:   sleepContext,
		jitter:  fullJitter,
	}
}

// Policy returns the effective policy.
func (r *RetryDoer) Policy() RetryPolicy {
	return r.policy
}

// Do implements Doer.
func (r *RetryDoer) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	attempts := r.policy.MaxAttempts
	if !r.policy.RetryUnsafe && !idempotent(req.Method) {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		if attempt > 1 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, fmt.Errorf("rewinding request body: %w", err)
			}
			req.Body = body
		}

		resp, err := r.inner.Do(req)
		if attempt >= attempts || !retryable(resp, err) || ctx.Err() != nil {
			return resp, err
		}

		if resp != nil {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseSize))
			resp.Body.Close()
		}

		if err := r.sleep(ctx, r.backoff(attempt)); err != nil {
			return nil, err
		}
	}
}

// backoff returns the delay before retry number attempt (1-based).
func (r *RetryDoer) backoff(attempt int) time.Duration {
	ceiling := r.policy.BaseDelay << (attempt - 1)
	if ceiling <= 0 || ceiling > r.policy.MaxDelay {
		ceiling = r.policy.MaxDelay
	}
	return r.jitter(ceiling)
}

func retryable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	switch resp.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodDelete, http.MethodPut:
		return true
	}
	return false
}

func fullJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(max) + 1))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
