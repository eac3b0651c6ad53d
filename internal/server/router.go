package server

import (
	"log/slog"
	"net/http"

	"github.com/scholaredit/scholaredit/internal/auth"
	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/handlers"
	"github.com/scholaredit/scholaredit/internal/server/middleware"
)

// NewRouter собирает HTTP роутер: маршруты API + цепочка middleware.
// Публичные маршруты (каталог, блог, FAQ, register/login) идут без гейта,
// профиль и заявки за AuthMiddleware, управление контентом за админским гейтом.
func NewRouter(
	logger *slog.Logger,
	gate *auth.Gate,
	authHandler *handlers.AuthHandler,
	catalog *handlers.CatalogHandler,
	requests *handlers.RequestsHandler,
	health *handlers.HealthHandler,
) http.Handler {
	mux := http.NewServeMux()

	requireAuth := middleware.AuthMiddleware(logger, gate)
	requireAdmin := middleware.RequireRoleMiddleware(logger, gate, models.RoleAdmin)

	// Авторизация
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("GET /api/v1/auth/profile", requireAuth(http.HandlerFunc(authHandler.Profile)))

	// Публичный контент
	mux.HandleFunc("GET /api/v1/services", catalog.ListServices)
	mux.HandleFunc("GET /api/v1/blogs", catalog.ListBlogs)
	mux.HandleFunc("GET /api/v1/blogs/{id}", catalog.GetBlog)
	mux.HandleFunc("GET /api/v1/faq", catalog.ListFAQs)

	// Управление контентом (только admin)
	mux.Handle("POST /api/v1/blogs", requireAdmin(http.HandlerFunc(catalog.CreateBlog)))

	// Заявки на услуги
	mux.Handle("POST /api/v1/requests", requireAuth(http.HandlerFunc(requests.Create)))
	mux.Handle("GET /api/v1/requests", requireAuth(http.HandlerFunc(requests.List)))
	mux.Handle("PATCH /api/v1/requests/{id}", requireAdmin(http.HandlerFunc(requests.UpdateStatus)))

	// Мониторинг
	mux.HandleFunc("GET /api/v1/health", health.Health)

	// Внешние middleware: recovery снаружи, чтобы ловить паники и в логировании
	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}
