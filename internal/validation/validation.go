package validation

import (
	"fmt"
	"net/mail"
	"strings"
)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxNameLen максимальная длина отображаемого имени
	MaxNameLen = 100
)

// ValidateEmail проверяет, что email синтаксически корректен.
// Разрешаем только голый адрес, без display name ("User <u@x.com>" не подходит)
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email is not a valid address")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateName проверяет отображаемое имя пользователя
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	return nil
}
