// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestDo_SetsHeaders(t *testing.T) {
	var gotUA, gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := Do(context.Background(), ts.Client(), nil, req, "affilscan-test/1.0")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "affilscan-test/1.0", gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestDo_NoRetryOnServerError(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := Do(context.Background(), ts.Client(), NewLimiter(100), req, "")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDo_ContextCancelledWhileWaiting(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	// One token per minute: the second call must wait and hits the deadline.
	limiter := rate.NewLimiter(rate.Every(time.Minute), 1)

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := Do(context.Background(), ts.Client(), limiter, req, "")
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = Do(ctx, ts.Client(), limiter, req, "")
	assert.Error(t, err)
}

func TestNewLimiterDefault(t *testing.T) {
	assert.Equal(t, rate.Limit(DefaultRateLimit), NewLimiter(0).Limit())
	assert.Equal(t, rate.Limit(2), NewLimiter(2).Limit())
	assert.Equal(t, 1, NewLimiter(2).Burst())
}
