package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// profileColumns — единый список колонок таблицы profiles,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const profileColumns = `
id, COALESCE(full_name, ''), COALESCE(email, ''), COALESCE(phone, ''),
COALESCE(avatar_url, ''), COALESCE(bio, ''), COALESCE(location, ''),
social_links, role, created_at
`

// resolveAttempts — сколько раз повторять поиск-или-вставку,
// если конкурентная транзакция успела вставить профиль с теми же контактами.
const resolveAttempts = 3

// resolveAnonymousQuery находит первый (без гарантированного порядка) профиль
// по email ИЛИ phone и перезаписывает его имя; если совпадений нет — вставляет новый.
// ON CONFLICT DO NOTHING срабатывает, когда параллельная вставка выиграла гонку:
// тогда запрос не возвращает строк и повторяется.
const resolveAnonymousQuery = `
WITH found AS (
	SELECT id FROM profiles
	WHERE ($1::text IS NOT NULL AND email = $1::text)
	   OR ($2::text IS NOT NULL AND phone = $2::text)
	LIMIT 1
),
updated AS (
	UPDATE profiles p
	SET full_name = $3::text
	FROM found f
	WHERE p.id = f.id
	RETURNING p.id
),
inserted AS (
	INSERT INTO profiles (email, phone, full_name)
	SELECT $1::text, $2::text, COALESCE($3::text, $4::text)
	WHERE NOT EXISTS (SELECT 1 FROM found)
	ON CONFLICT DO NOTHING
	RETURNING id
)
SELECT id FROM updated
UNION ALL
SELECT id FROM inserted
`

// scanProfile сканирует одну строку профиля из результата запроса в доменную модель.
func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	var links map[string]string

	if err := row.Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.Phone,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.Location,
		&links,
		&profile.Role,
		&profile.CreatedAt,
	); err != nil {
		return nil, err
	}

	if links == nil {
		links = map[string]string{}
	}
	profile.SocialLinks = links

	return &profile, nil
}

// ResolveAnonymousProfile возвращает идентификатор профиля для анонимной отправки.
// Пустые Email/Phone в поиске не участвуют; без обоих контактов всегда создаётся новый профиль.
// Ошибки: storage.ErrConflict, если гонка вставок не разрешилась за resolveAttempts попыток.
func (s *Storage) ResolveAnonymousProfile(ctx context.Context, match storage.ProfileMatch) (uuid.UUID, error) {
	const op = "storage/postgres/profiles/ResolveAnonymousProfile"

	for attempt := 0; attempt < resolveAttempts; attempt++ {
		var id uuid.UUID

		err := s.db.QueryRow(ctx, resolveAnonymousQuery,
			nullIfEmpty(match.Email),
			nullIfEmpty(match.Phone),
			nullIfEmpty(match.FullName),
			models.AnonymousName,
		).Scan(&id)

		if err == nil {
			return id, nil
		}

		if errors.Is(err, pgx.ErrNoRows) {
			// Параллельная вставка выиграла гонку — следующая попытка найдёт её профиль.
			continue
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, mapPgError(err))
	}

	return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
}

// UpdateDisplayName перезаписывает full_name (last-write-wins).
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) UpdateDisplayName(ctx context.Context, id uuid.UUID, fullName string) error {
	const op = "storage/postgres/profiles/UpdateDisplayName"

	tag, err := s.db.Exec(ctx, `UPDATE profiles SET full_name = $2 WHERE id = $1`, id, nullIfEmpty(fullName))
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapPgError(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// UpsertAccountProfile возвращает профиль по e-mail, создавая его при первом входе.
// Существующий анонимный профиль с тем же e-mail становится профилем учётной записи.
func (s *Storage) UpsertAccountProfile(ctx context.Context, email string) (*models.Profile, error) {
	const op = "storage/postgres/profiles/UpsertAccountProfile"

	q := `
	INSERT INTO profiles (email, role)
	VALUES ($1, $2)
	ON CONFLICT (email) WHERE email IS NOT NULL
	DO UPDATE SET email = EXCLUDED.email
	RETURNING
	` + profileColumns

	result, err := scanProfile(s.db.QueryRow(ctx, q, email, models.RoleUser))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapPgError(err))
	}

	return result, nil
}

// ProfileByID возвращает профиль по id.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) ProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	const op = "storage/postgres/profiles/ProfileByID"

	q := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	result, err := scanProfile(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
