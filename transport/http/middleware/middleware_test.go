package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todoapi/config"
	"todoapi/infras/otel/mocks"
	cacheMocks "todoapi/shared/cache/mocks"
	"todoapi/shared/constant"
	"todoapi/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLimitedRouter(mw middleware.AppMiddleware) http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.RealIP)
	router.Use(mw.RateLimit())
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	return router
}

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		count         int64
		cacheErr      error
		wantCode      int
		wantRemaining string
	}{
		{name: "under limit", count: 1, wantCode: http.StatusOK, wantRemaining: "1"},
		{name: "at limit", count: 2, wantCode: http.StatusOK, wantRemaining: "0"},
		{name: "over limit", count: 3, wantCode: http.StatusTooManyRequests, wantRemaining: "0"},
		{name: "cache down", cacheErr: errors.New("connection refused"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)

			mockCache.EXPECT().
				Increment(gomock.Any(), "limiter:203.0.113.7:test-agent", 60).
				Return(tt.count, tt.cacheErr)

			router := newLimitedRouter(middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), mockCache))

			request := httptest.NewRequest(http.MethodGet, "/ping", nil)
			request.Header.Set("X-Real-IP", "203.0.113.7")
			request.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, request)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))

			if tt.wantCode == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"status":"fail","data":{"message":"REQUEST LIMIT EXCEEDED"}}`, rec.Body.String())
			}
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	router := newLimitedRouter(middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(false), mockCache))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}

func TestRateLimit_NilCache(t *testing.T) {
	router := newLimitedRouter(middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetrics(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	router := chi.NewRouter()
	router.Use(mw.Tracing, mw.Logger, mw.Metrics)
	router.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, path := range []string{"/items/1", "/items/2"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec := httptest.NewRecorder()
	middleware.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",route="/items/{id}",status="204"} 2`), body)
}
