package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/folioforge/engine/internal/models"
	appErr "github.com/folioforge/engine/pkg/errors"
)

var testSecret = []byte("test-secret")

func TestRegister(t *testing.T) {
	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewAuthService(users, testSecret)

		users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "jane@example.com" &&
				u.PasswordHash != "hunter2hunter2" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2hunter2")) == nil
		})).Return(nil)

		u, err := svc.Register(context.Background(), "jane@example.com", "hunter2hunter2", "Jane")
		require.NoError(t, err)
		require.Equal(t, "Jane", u.Name)
		users.AssertExpectations(t)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewAuthService(users, testSecret)

		users.On("Create", mock.Anything, mock.Anything).
			Return(appErr.New(appErr.CodeInternal, "create entity failed"))

		_, err := svc.Register(context.Background(), "jane@example.com", "hunter2hunter2", "Jane")
		require.True(t, appErr.IsCode(err, appErr.CodeConflict))
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	account := models.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: string(hash), Name: "Jane"}

	t.Run("issues a token the middleware secret verifies", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewAuthService(users, testSecret)
		users.On("GetByEmail", mock.Anything, "jane@example.com", mock.Anything).Return(nil, &account)

		tokenString, u, err := svc.Login(context.Background(), "jane@example.com", "hunter2hunter2")
		require.NoError(t, err)
		require.Equal(t, account.ID, u.ID)

		parsed, err := jwt.Parse(tokenString, func(tok *jwt.Token) (any, error) {
			return testSecret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		require.NoError(t, err)
		sub, err := parsed.Claims.GetSubject()
		require.NoError(t, err)
		require.Equal(t, account.ID.String(), sub)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewAuthService(users, testSecret)
		users.On("GetByEmail", mock.Anything, "jane@example.com", mock.Anything).Return(nil, &account)

		_, _, err := svc.Login(context.Background(), "jane@example.com", "wrong")
		require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
	})

	t.Run("unknown email is unauthorized, not not-found", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewAuthService(users, testSecret)
		users.On("GetByEmail", mock.Anything, "ghost@example.com", mock.Anything).
			Return(appErr.New(appErr.CodeNotFound, "entity not found"), nil)

		_, _, err := svc.Login(context.Background(), "ghost@example.com", "hunter2hunter2")
		require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
	})

	t.Run("accounts without a password hash cannot log in", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewAuthService(users, testSecret)
		oauthOnly := models.User{ID: uuid.New(), Email: "sso@example.com"}
		users.On("GetByEmail", mock.Anything, "sso@example.com", mock.Anything).Return(nil, &oauthOnly)

		_, _, err := svc.Login(context.Background(), "sso@example.com", "")
		require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
	})
}
