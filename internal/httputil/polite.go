// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the request helper shared by API clients.
package httputil

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the request rate used when none is configured. It sits
// well under the Crossref polite-pool allowance.
const DefaultRateLimit = 5.0

// NewLimiter returns a limiter allowing perSecond requests per second with
// a burst of one. A non-positive rate falls back to DefaultRateLimit.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		perSecond = DefaultRateLimit
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

// Do waits for a limiter token, sets the User-Agent header, and executes
// the request exactly once. There is no retry: a failed call is returned
// to the caller as-is. A nil limiter disables waiting.
func Do(ctx context.Context, client *http.Client, limiter *rate.Limiter, req *http.Request, userAgent string) (*http.Response, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}
	req = req.Clone(ctx)
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	req.Header.Set("Accept", "application/json")
	return client.Do(req)
}
