package models

import "time"

// Role определяет роль пользователя в системе (закрытый enum)
type Role string

const (
	// RoleUser обычный пользователь (клиент сервиса)
	RoleUser Role = "user"
	// RoleAdmin администратор (управление контентом и заявками)
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User представляет аккаунт пользователя в системе
type User struct {
	ID           string    `json:"id"`         // UUID пользователя
	Email        string    `json:"email"`      // уникальный email (идентификатор для входа)
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, наружу не отдается
	Name         string    `json:"name"`       // отображаемое имя
	Role         Role      `json:"role"`       // роль: user или admin
	CreatedAt    time.Time `json:"created_at"` // время создания
}
