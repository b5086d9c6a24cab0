package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/folioforge/engine/internal/models"
	appErr "github.com/folioforge/engine/pkg/errors"
)

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Run("valid body is 201", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)
		svc.On("Register", mock.Anything, "jane@example.com", "hunter2hunter2", "Jane").
			Return(&models.User{ID: uuid.New(), Email: "jane@example.com", Name: "Jane"}, nil)

		rec := postJSON(t, h.Register, "/api/v1/auth/register",
			`{"email":"jane@example.com","password":"hunter2hunter2","name":"Jane"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Success bool           `json:"success"`
			Data    map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.True(t, body.Success)
		require.Equal(t, "jane@example.com", body.Data["email"])
		require.NotContains(t, rec.Body.String(), "hunter2hunter2")
	})

	t.Run("short password is 400", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		rec := postJSON(t, h.Register, "/api/v1/auth/register",
			`{"email":"jane@example.com","password":"short","name":"Jane"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)
		svc.On("Register", mock.Anything, "jane@example.com", "hunter2hunter2", "Jane").
			Return(nil, appErr.New(appErr.CodeConflict, "email already registered"))

		rec := postJSON(t, h.Register, "/api/v1/auth/register",
			`{"email":"jane@example.com","password":"hunter2hunter2","name":"Jane"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)
		user := &models.User{ID: uuid.New(), Email: "jane@example.com", Name: "Jane"}
		svc.On("Login", mock.Anything, "jane@example.com", "hunter2hunter2").Return("tok-123", user, nil)

		rec := postJSON(t, h.Login, "/api/v1/auth/login",
			`{"email":"jane@example.com","password":"hunter2hunter2"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data struct {
				AccessToken string  `json:"access_token"`
				TokenType   string  `json:"token_type"`
				ExpiresIn   float64 `json:"expires_in"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "tok-123", body.Data.AccessToken)
		require.Equal(t, "Bearer", body.Data.TokenType)
		require.EqualValues(t, 86400, body.Data.ExpiresIn)
	})

	t.Run("bad credentials are 401", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)
		svc.On("Login", mock.Anything, "jane@example.com", "wrong").
			Return("", nil, appErr.New(appErr.CodeUnauthorized, "invalid credentials"))

		rec := postJSON(t, h.Login, "/api/v1/auth/login",
			`{"email":"jane@example.com","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
