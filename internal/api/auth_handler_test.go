package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cramdeck/cramdeck-api/internal/domain"
	"github.com/cramdeck/cramdeck-api/internal/mocks"
	"github.com/cramdeck/cramdeck-api/internal/service/auth"
)

func postJSON(t *testing.T, handler http.HandlerFunc, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantToken  bool
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusCreated,
			wantToken:  true,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"email":    "invalid-email",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"email":    "test2@example.com",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "test3@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			jwtService := &mocks.MockJWTService{
				Token:        "test-token",
				RefreshToken: "test-refresh-token",
			}
			handler := NewAuthHandler(
				userStore, jwtService, &mocks.MockPasswordVerifier{ShouldSucceed: true}, time.Hour)

			w := postJSON(t, handler.Register, tt.payload)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantToken {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "test-token", resp.AccessToken)
				assert.Equal(t, "test-refresh-token", resp.RefreshToken)
				assert.NotEqual(t, uuid.Nil, resp.UserID)
				assert.NotEmpty(t, resp.ExpiresAt)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	existing, err := domain.NewUser("taken@example.com", "password1234567")
	require.NoError(t, err)
	require.NoError(t, userStore.Create(context.Background(), existing))

	handler := NewAuthHandler(
		userStore,
		&mocks.MockJWTService{Token: "t", RefreshToken: "r"},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
		time.Hour,
	)

	w := postJSON(t, handler.Register, map[string]interface{}{
		"email":    "taken@example.com",
		"password": "password1234567",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	setupStore := func(t *testing.T) *mocks.MockUserStore {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		userStore.Users["known@example.com"] = &domain.User{
			ID:             uuid.New(),
			Email:          "known@example.com",
			HashedPassword: "hashed",
		}
		return userStore
	}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(
			setupStore(t),
			&mocks.MockJWTService{Token: "t", RefreshToken: "r"},
			&mocks.MockPasswordVerifier{ShouldSucceed: true},
			time.Hour,
		)

		w := postJSON(t, handler.Login, map[string]interface{}{
			"email":    "known@example.com",
			"password": "whatever-password",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp AuthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "t", resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(
			setupStore(t),
			&mocks.MockJWTService{Token: "t", RefreshToken: "r"},
			&mocks.MockPasswordVerifier{ShouldSucceed: false},
			time.Hour,
		)

		w := postJSON(t, handler.Login, map[string]interface{}{
			"email":    "known@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email gets identical response", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(
			setupStore(t),
			&mocks.MockJWTService{Token: "t", RefreshToken: "r"},
			&mocks.MockPasswordVerifier{ShouldSucceed: true},
			time.Hour,
		)

		w := postJSON(t, handler.Login, map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "whatever-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Invalid credentials", resp["error"])
	})
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid refresh token", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{
			Token:        "new-access",
			RefreshToken: "new-refresh",
			Claims:       &auth.Claims{UserID: userID, TokenType: "refresh"},
		}
		handler := NewAuthHandler(
			mocks.NewMockUserStore(), jwtService,
			&mocks.MockPasswordVerifier{ShouldSucceed: true}, time.Hour)

		w := postJSON(t, handler.RefreshToken, map[string]interface{}{
			"refresh_token": "some-refresh-token",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp RefreshTokenResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "new-access", resp.AccessToken)
		assert.Equal(t, "new-refresh", resp.RefreshToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{
			ValidateErr: auth.ErrInvalidRefreshToken,
		}
		handler := NewAuthHandler(
			mocks.NewMockUserStore(), jwtService,
			&mocks.MockPasswordVerifier{ShouldSucceed: true}, time.Hour)

		w := postJSON(t, handler.RefreshToken, map[string]interface{}{
			"refresh_token": "garbage",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing refresh token", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(
			mocks.NewMockUserStore(), &mocks.MockJWTService{},
			&mocks.MockPasswordVerifier{ShouldSucceed: true}, time.Hour)

		w := postJSON(t, handler.RefreshToken, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(
		mocks.NewMockUserStore(), &mocks.MockJWTService{},
		&mocks.MockPasswordVerifier{ShouldSucceed: true}, time.Hour)

	t.Run("authenticated", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = requestWithUser(req, uuid.New())
		w := httptest.NewRecorder()
		handler.Logout(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing user in context", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		w := httptest.NewRecorder()
		handler.Logout(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
