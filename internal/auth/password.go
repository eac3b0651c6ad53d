package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost фиксированная стоимость хеширования паролей.
// 10 достаточно дорого для перебора и приемлемо для интерактивного логина.
const bcryptCost = 10

// HashPassword хеширует пароль через bcrypt со случайной солью.
// Два вызова для одного пароля дают разные хеши.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword проверяет пароль против сохраненного bcrypt хеша.
// Несовпадение и некорректный хеш это обычный false, не ошибка.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
