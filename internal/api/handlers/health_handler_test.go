package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	h := NewHealthHandler()

	for _, tc := range []struct {
		name    string
		handler http.HandlerFunc
		status  string
	}{
		{"liveness", h.Liveness, "ok"},
		{"readiness", h.Readiness, "ready"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			tc.handler(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var body struct {
				Success bool              `json:"success"`
				Data    map[string]string `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.True(t, body.Success)
			require.Equal(t, tc.status, body.Data["status"])
		})
	}
}
