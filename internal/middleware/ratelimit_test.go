package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/middleware"
)

// memCounter is an in-memory middleware.Counter.
type memCounter struct {
	counts map[string]int64
	err    error
}

func (m *memCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.counts[key]++
	return m.counts[key], nil
}

var _ middleware.Counter = (*memCounter)(nil)

func serveAs(h http.Handler, subject string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/users/search", nil)
	if subject != "" {
		req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{Subject: subject}))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	c := &memCounter{counts: map[string]int64{}}
	h := middleware.NewRateLimiter(c, 2, time.Hour, discardLog)(trivialHandler)

	first := serveAs(h, "u1")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	require.Equal(t, http.StatusOK, serveAs(h, "u1").Code)

	third := serveAs(h, "u1")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
	assert.Contains(t, third.Body.String(), `"code":"rate_limited"`)
}

func TestRateLimiter_KeysPerCaller(t *testing.T) {
	c := &memCounter{counts: map[string]int64{}}
	h := middleware.NewRateLimiter(c, 1, time.Hour, discardLog)(trivialHandler)

	require.Equal(t, http.StatusOK, serveAs(h, "u1").Code)
	assert.Equal(t, http.StatusOK, serveAs(h, "u2").Code, "another subject has its own budget")
	assert.Equal(t, http.StatusOK, serveAs(h, "").Code, "anonymous callers are keyed by address")
	assert.Equal(t, http.StatusTooManyRequests, serveAs(h, "u1").Code)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	c := &memCounter{err: errors.New("redis down")}
	h := middleware.NewRateLimiter(c, 1, time.Hour, discardLog)(trivialHandler)

	assert.Equal(t, http.StatusOK, serveAs(h, "u1").Code)
	assert.Equal(t, http.StatusOK, serveAs(h, "u1").Code)
}
