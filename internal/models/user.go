// Package models содержит доменные структуры пользователя и подписки,
// перечисления допустимых значений и правила жизненного цикла подписки.
package models

import "time"

// User представляет учётную запись пользователя в хранилище.
// Пароль хранится только в виде bcrypt-хэша и никогда не сериализуется.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser представляет пользователя в HTTP-ответах, без пароля.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public возвращает копию пользователя без пароля.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// RegisterUserRequest используется для приёма данных регистрации из JSON-запроса.
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,basicemail"`
	Password string `json:"password" validate:"required,min=6"`
}
