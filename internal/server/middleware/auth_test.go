package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholaredit/scholaredit/internal/auth"
	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/handlers"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTokens(t *testing.T) (*auth.TokenService, *auth.Gate) {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	return tokens, auth.NewGate(tokens)
}

func issueToken(t *testing.T, tokens *auth.TokenService, role models.Role) string {
	t.Helper()
	token, err := tokens.IssueToken(&models.User{
		ID:    "user-123",
		Email: "a@x.com",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	tokens, gate := setupTokens(t)

	// next фиксирует, что caller попал в контекст
	var gotCaller *auth.Caller
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCaller, _ = handlers.GetCaller(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(newTestLogger(), gate)(next)

	t.Run("valid token passes and sets caller", func(t *testing.T) {
		gotCaller = nil

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, models.RoleUser))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotCaller)
		assert.Equal(t, "user-123", gotCaller.ID)
		assert.Equal(t, models.RoleUser, gotCaller.Role)
	})

	unauthorized := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tt := range unauthorized {
		t.Run(tt.name, func(t *testing.T) {
			gotCaller = nil

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Nil(t, gotCaller)
		})
	}

	t.Run("expired token rejected", func(t *testing.T) {
		expiredService, err := auth.NewTokenService("test-secret", time.Millisecond)
		require.NoError(t, err)
		token := issueToken(t, expiredService, models.RoleUser)
		time.Sleep(5 * time.Millisecond)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRoleMiddleware(t *testing.T) {
	tokens, gate := setupTokens(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := RequireRoleMiddleware(newTestLogger(), gate, models.RoleAdmin)(next)

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, models.RoleAdmin))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid user token gets 403, not 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, models.RoleUser))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no token gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin", nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
