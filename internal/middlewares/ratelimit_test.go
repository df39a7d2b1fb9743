package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		count        int64
		storeErr     error
		expectedCode int
		nextCalled   bool
	}{
		{
			name:         "under limit",
			count:        5,
			expectedCode: http.StatusOK,
			nextCalled:   true,
		},
		{
			name:         "at limit",
			count:        10,
			expectedCode: http.StatusOK,
			nextCalled:   true,
		},
		{
			name:         "over limit",
			count:        11,
			expectedCode: http.StatusTooManyRequests,
		},
		{
			name:         "store outage fails open",
			storeErr:     errors.New("connection refused"),
			expectedCode: http.StatusOK,
			nextCalled:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := NewMockRateLimitStore(ctrl)
			mockStore.EXPECT().
				Incr(gomock.Any(), "ratelimit:login:192.0.2.1", time.Minute).
				Return(tt.count, tt.storeErr)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RateLimitMiddleware(mockStore, "login", 10, time.Minute, "Too many requests")(next)

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.RemoteAddr = "192.0.2.1:51234"
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.expectedCode == http.StatusTooManyRequests {
				assert.Contains(t, rr.Body.String(), "Too many requests")
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		realIP     string
		forwarded  string
		remoteAddr string
		expected   string
	}{
		{"remote addr", "", "", "192.0.2.1:51234", "192.0.2.1"},
		{"x-real-ip wins", "203.0.113.9", "198.51.100.2", "192.0.2.1:51234", "203.0.113.9"},
		{"forwarded single", "", "198.51.100.2", "192.0.2.1:51234", "198.51.100.2"},
		{"forwarded chain takes first", "", "198.51.100.2, 203.0.113.9", "192.0.2.1:51234", "198.51.100.2"},
		{"no port", "", "", "192.0.2.1", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			assert.Equal(t, tt.expected, clientIP(req))
		})
	}
}
