// models содержит доменные сущности relief-board.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// AnonymousName — имя профиля, если отправитель его не указал.
	AnonymousName = "Anonymous User"
	// RoleUser — роль по умолчанию.
	RoleUser = "user"
)

// Profile — запись, к которой привязываются объявления.
//
// Особенности:
//   - Email/Phone пусты, если контакт не указан (в БД хранится NULL);
//   - профиль может не соответствовать учётной записи (анонимная отправка).
type Profile struct {
	ID          uuid.UUID
	FullName    string
	Email       string
	Phone       string
	AvatarURL   string
	Bio         string
	Location    string
	SocialLinks map[string]string
	Role        string
	CreatedAt   time.Time
}

// Session — аутентифицированный пользователь текущего запроса.
// Передаётся в сервисный слой явно; nil означает анонимный запрос.
type Session struct {
	UserID uuid.UUID
	Email  string
}
