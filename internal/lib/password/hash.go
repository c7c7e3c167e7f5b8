// Package password хэширует пароли пользователей через bcrypt.
//
// GetHash создает хэш для хранения, CompareHash проверяет пароль по хэшу.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/magabrotheeeer/subscription-tracker/internal/lib/apperror"
)

// MaxBytes задаёт предел длины пароля, который учитывает bcrypt.
const MaxBytes = 72

// ErrTooLong возвращается для паролей длиннее MaxBytes байт.
var ErrTooLong = apperror.ValidationErrors{
	{Field: "password", Message: fmt.Sprintf("Password must be at most %d bytes", MaxBytes)},
}

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	if len(password) > MaxBytes {
		return "", fmt.Errorf("%s: %w", op, ErrTooLong)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе ошибку.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
