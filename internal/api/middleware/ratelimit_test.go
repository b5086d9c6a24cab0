package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func authedRequest(userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sections", nil)
	return req.WithContext(context.WithValue(req.Context(), UserIDKey, userID))
}

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("requests beyond the burst are 429 with the envelope", func(t *testing.T) {
		handler := RateLimit(0, 2)(next)
		userID := uuid.New()

		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, authedRequest(userID))
			require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(userID))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code    string         `json:"code"`
				Details map[string]any `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.False(t, body.Success)
		require.Equal(t, "rate_limited", body.Error.Code)
		require.EqualValues(t, 1, body.Error.Details["retry_after_seconds"])
	})

	t.Run("buckets are per user", func(t *testing.T) {
		handler := RateLimit(0, 1)(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(uuid.New()))
		require.Equal(t, http.StatusOK, rec.Code)

		// A different user still has a full bucket.
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, authedRequest(uuid.New()))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
