// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя, назначается хранилищем
	Name         string    // Имя пользователя
	Email        string    // Электронная почта (уникальная, используется для входа)
	PasswordHash string    // Хэш пароля пользователя, никогда не попадает в ответы API
	CreatedAt    time.Time // Дата создания учётной записи
}

// PublicUser — представление пользователя для ответов API, без хэша пароля.
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public возвращает представление пользователя без чувствительных полей.
func (u *User) Public() PublicUser {
	return PublicUser{
		Name:  u.Name,
		Email: u.Email,
	}
}
