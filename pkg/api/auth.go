package api

import "time"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`    // email пользователя (уникальный идентификатор)
	Password string `json:"password"` // пароль в открытом виде (передается только по TLS)
	Name     string `json:"name"`     // отображаемое имя
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary представляет публичное описание пользователя (без хеша пароля)
type UserSummary struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthData представляет полезную нагрузку успешного register/login
type AuthData struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"` // подписанный bearer токен
}

// Response оборачивает успешный ответ API
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
