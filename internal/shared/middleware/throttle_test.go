package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeThrottleStore struct {
	counts map[string]int64
	err    error
	window time.Duration
}

func newFakeThrottleStore() *fakeThrottleStore {
	return &fakeThrottleStore{counts: make(map[string]int64)}
}

func (s *fakeThrottleStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.window = window
	s.counts[key]++
	return s.counts[key], nil
}

func throttledRouter(store ThrottleStore, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/contact", Throttle(store, "contact", limit), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func TestThrottleAllowsUpToLimit(t *testing.T) {
	store := newFakeThrottleStore()
	router := throttledRouter(store, 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))
}

func TestThrottleUsesFixedHourWindow(t *testing.T) {
	store := newFakeThrottleStore()
	router := throttledRouter(store, 10)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))

	assert.Equal(t, time.Hour, store.window)
}

func TestThrottleKeyedByScopeAndIP(t *testing.T) {
	store := newFakeThrottleStore()
	router := throttledRouter(store, 1)

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, store.counts, "throttle:contact:10.0.0.1")

	// A different client IP gets its own counter.
	req2 := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req2.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req2)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestThrottleFailsOpenOnStoreOutage(t *testing.T) {
	store := newFakeThrottleStore()
	store.err = errors.New("connection refused")
	router := throttledRouter(store, 1)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}
