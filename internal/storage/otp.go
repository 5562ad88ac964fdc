package storage

import (
	"context"

	"github.com/Coullax/disaster-relief-management/internal/models"
)

// OTP — контракт хранилища одноразовых кодов. Ключ — нормализованный e-mail.
type OTP interface {
	// SaveChallenge создаёт или заменяет челлендж для e-mail (attempts сбрасываются).
	SaveChallenge(ctx context.Context, challenge models.OTPChallenge) error
	// ChallengeByEmail возвращает действующий челлендж или ErrNotFound.
	ChallengeByEmail(ctx context.Context, email string) (*models.OTPChallenge, error)
	// TakeAttempt атомарно расходует одну попытку проверки кода и возвращает
	// челлендж уже с увеличенным attempts. ErrNotFound, если челленджа нет,
	// он истёк или попыток было уже maxAttempts.
	TakeAttempt(ctx context.Context, email string, maxAttempts int) (*models.OTPChallenge, error)
	// ConsumeChallenge удаляет челлендж с данным хэшем кода. ErrNotFound, если его
	// уже удалил другой запрос или код был перевыпущен: сессию открывает только один вызов.
	ConsumeChallenge(ctx context.Context, email, codeHash string) error
	// DeleteChallenge удаляет челлендж (идемпотентно).
	DeleteChallenge(ctx context.Context, email string) error
}

// OTPStorage — верхнеуровневый интерфейс хранилища кодов.
type OTPStorage interface {
	OTP
}
