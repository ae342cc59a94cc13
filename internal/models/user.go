package models

import "time"

// User представляет зарегистрированного пользователя магазина.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	ID           int64     // Уникальный идентификатор
	Username     string    // Имя пользователя
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // bcrypt-хэш пароля
	CreatedAt    time.Time // Дата регистрации
}
