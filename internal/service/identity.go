package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"github.com/Coullax/disaster-relief-management/internal/pkg/redact"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	"github.com/google/uuid"
)

// IdentityInput — данные для определения профиля, к которому привязывается объявление.
type IdentityInput struct {
	Session      *models.Session
	ContactEmail string
	ContactPhone string
	DisplayName  string
}

// ResolveProfile возвращает идентификатор профиля отправителя.
//
// Правила:
//   - есть сессия: профиль = пользователь сессии; непустое DisplayName
//     перезаписывает full_name;
//   - анонимно: поиск по email ИЛИ phone (пустые значения не участвуют),
//     при совпадении имя перезаписывается, иначе создаётся новый профиль
//     (без имени — "Anonymous User").
//
// Любая ошибка записи — ErrProfileCreate; повторов на этом уровне нет.
func (s *Service) ResolveProfile(ctx context.Context, in IdentityInput) (uuid.UUID, error) {
	const op = "service/identity/ResolveProfile"

	lg := log.From(ctx).With("op", op)

	name := strings.TrimSpace(in.DisplayName)

	if in.Session != nil {
		if name == "" {
			return in.Session.UserID, nil
		}

		if err := s.profiles.UpdateDisplayName(ctx, in.Session.UserID, name); err != nil {
			lg.Error("profile_name_update_failed",
				slog.String("user_id", in.Session.UserID.String()),
				slog.String("err", err.Error()),
			)
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrProfileCreate)
		}

		return in.Session.UserID, nil
	}

	match := storage.ProfileMatch{
		Email:    normalizeEmail(in.ContactEmail),
		Phone:    strings.TrimSpace(in.ContactPhone),
		FullName: name,
	}

	id, err := s.profiles.ResolveAnonymousProfile(ctx, match)
	if err != nil {
		lg.Error("profile_resolve_failed",
			slog.String("email", redact.Email(match.Email)),
			slog.String("phone", redact.Phone(match.Phone)),
			slog.String("err", err.Error()),
		)
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrProfileCreate)
	}

	return id, nil
}

// normalizeEmail обрезает пробелы и приводит e-mail к нижнему регистру.
func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
