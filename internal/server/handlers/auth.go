package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scholaredit/scholaredit/internal/auth"
	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/storage"
	"github.com/scholaredit/scholaredit/internal/validation"
	"github.com/scholaredit/scholaredit/pkg/api"
)

// AuthHandler обрабатывает запросы регистрации и аутентификации
type AuthHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
	tokens *auth.TokenService
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		users:  users,
		tokens: tokens,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя: валидация, хеширование пароля, вставка,
// выпуск токена. Уникальность email гарантирует UNIQUE constraint в БД,
// поэтому при гонке двух регистраций проигравший всегда получает 409.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация до любого обращения к хранилищу
	if err := validation.ValidateEmail(req.Email); err != nil {
		h.logger.WarnContext(ctx, "invalid email", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateName(req.Name); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Хешируем пароль
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Создаем пользователя
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}

	// Сохраняем в БД
	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("email", req.Email))
			sendError(h.logger, w, "user already exists", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Выпускаем токен
	token, err := h.tokens.IssueToken(user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("email", req.Email),
		slog.String("user_id", user.ID))

	sendData(h.logger, w, api.AuthData{
		User:  userSummary(user),
		Token: token,
	}, http.StatusOK)
}

// Login обрабатывает POST /api/v1/auth/login
// Несуществующий email и неверный пароль дают одинаковый ответ
// "invalid credentials": не раскрываем, какая половина не совпала.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация формы запроса
	if err := validation.ValidateEmail(req.Email); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		sendError(h.logger, w, "password cannot be empty", http.StatusBadRequest)
		return
	}

	// Получаем пользователя из БД
	user, err := h.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("email", req.Email))
			sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Проверяем пароль
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("email", req.Email))
		sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	// Выпускаем токен
	token, err := h.tokens.IssueToken(user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("email", req.Email),
		slog.String("user_id", user.ID))

	sendData(h.logger, w, api.AuthData{
		User:  userSummary(user),
		Token: token,
	}, http.StatusOK)
}

// Profile обрабатывает GET /api/v1/auth/profile
// Перечитывает пользователя из БД: профиль отдает актуальные данные,
// а не снимок из claims.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := GetCaller(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetUserByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "profile: user not found", slog.String("user_id", caller.ID))
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendData(h.logger, w, userSummary(user), http.StatusOK)
}

// userSummary строит публичное описание пользователя (без хеша пароля)
func userSummary(user *models.User) api.UserSummary {
	return api.UserSummary{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
