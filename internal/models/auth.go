package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPChallenge — выданный одноразовый код входа.
// Код хранится только в виде bcrypt-хэша.
type OTPChallenge struct {
	Email     string
	CodeHash  string
	Attempts  int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// AuthSession — результат успешной проверки кода.
type AuthSession struct {
	Token     string
	ExpiresAt time.Time
	UserID    uuid.UUID
	Email     string
}
