package storage

import (
	"context"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/google/uuid"
)

// ProfileMatch — контактные данные анонимного отправителя.
// Пустые Email/Phone в поиске не участвуют и сохраняются как NULL.
type ProfileMatch struct {
	Email    string
	Phone    string
	FullName string
}

// Profiles — контракт репозитория профилей.
type Profiles interface {
	// ResolveAnonymousProfile находит профиль по email ИЛИ phone и перезаписывает его имя,
	// либо создаёт новый. Выполняется атомарно относительно конкурентных вызовов.
	ResolveAnonymousProfile(ctx context.Context, match ProfileMatch) (uuid.UUID, error)
	// UpdateDisplayName перезаписывает full_name профиля.
	UpdateDisplayName(ctx context.Context, id uuid.UUID, fullName string) error
	// UpsertAccountProfile возвращает профиль учётной записи по e-mail, создавая его при необходимости.
	UpsertAccountProfile(ctx context.Context, email string) (*models.Profile, error)
	// ProfileByID возвращает профиль по идентификатору.
	ProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// ProfilesStorage — верхнеуровневый интерфейс хранилища профилей.
type ProfilesStorage interface {
	Profiles
}
