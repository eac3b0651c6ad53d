package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/scholaredit/scholaredit/internal/auth"
	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки bearer токена.
// Отсутствующий, битый или истекший токен — единый ответ 401,
// причину отказа клиенту не раскрываем.
func AuthMiddleware(logger *slog.Logger, gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := gate.RequireCaller(r)
			if err != nil {
				logger.Warn("unauthorized request",
					"method", r.Method,
					"path", r.URL.Path)
				http.Error(w, "Unauthorized: missing or invalid token", http.StatusUnauthorized)
				return
			}

			// Добавляем аутентифицированного пользователя в контекст
			ctx := handlers.WithCaller(r.Context(), caller)

			logger.Debug("user authenticated",
				"user_id", caller.ID,
				"role", string(caller.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoleMiddleware создает middleware для ролевого гейта.
// 401 без валидного токена, 403 при валидном токене с другой ролью —
// различие обязательное, по нему клиент понимает "войти" или "нет прав".
func RequireRoleMiddleware(logger *slog.Logger, gate *auth.Gate, role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := gate.RequireRole(r, role)
			if err != nil {
				if errors.Is(err, auth.ErrForbidden) {
					logger.Warn("forbidden request",
						"method", r.Method,
						"path", r.URL.Path,
						"required_role", string(role))
					http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
					return
				}
				logger.Warn("unauthorized request",
					"method", r.Method,
					"path", r.URL.Path)
				http.Error(w, "Unauthorized: missing or invalid token", http.StatusUnauthorized)
				return
			}

			ctx := handlers.WithCaller(r.Context(), caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
