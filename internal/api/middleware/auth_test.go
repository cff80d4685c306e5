package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cramdeck/cramdeck-api/internal/api/middleware"
	"github.com/cramdeck/cramdeck-api/internal/mocks"
	"github.com/cramdeck/cramdeck-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	// Handler that records whether it ran and what user ID it saw.
	newProtected := func(gotUser *uuid.UUID, called *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*called = true
			if id, ok := middleware.GetUserID(r); ok {
				*gotUser = id
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: userID, TokenType: "access"},
		}
		mw := middleware.NewAuthMiddleware(jwtService)

		var gotUser uuid.UUID
		var called bool
		handler := mw.Authenticate(newProtected(&gotUser, &called))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-valid-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.True(t, called)
		assert.Equal(t, userID, gotUser)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()
		mw := middleware.NewAuthMiddleware(&mocks.MockJWTService{})

		var gotUser uuid.UUID
		var called bool
		handler := mw.Authenticate(newProtected(&gotUser, &called))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called)
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Parallel()
		mw := middleware.NewAuthMiddleware(&mocks.MockJWTService{})

		var gotUser uuid.UUID
		var called bool
		handler := mw.Authenticate(newProtected(&gotUser, &called))

		for _, header := range []string{"some-token", "Basic abc123", "Bearer a b"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", header)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		}
		assert.False(t, called)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		mw := middleware.NewAuthMiddleware(jwtService)

		var gotUser uuid.UUID
		var called bool
		handler := mw.Authenticate(newProtected(&gotUser, &called))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
		assert.False(t, called)
	})

	t.Run("refresh token rejected on protected route", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrWrongTokenType}
		mw := middleware.NewAuthMiddleware(jwtService)

		var gotUser uuid.UUID
		var called bool
		handler := mw.Authenticate(newProtected(&gotUser, &called))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer refresh-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
		assert.False(t, called)
	})
}
