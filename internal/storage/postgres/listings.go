package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// listingColumns — колонки объявления в порядке сканирования scanListing.
// Алиас таблицы — l.
const listingColumns = `
l.id, l.user_id, l.title, l.description, l.type, l.category, l.location,
l.latitude, l.longitude, COALESCE(l.district, ''), COALESCE(l.city, ''),
l.media_urls, COALESCE(l.contact_email, ''), COALESCE(l.contact_phone, ''),
COALESCE(l.contact_whatsapp, ''), l.status, l.view_count, l.created_at
`

// feedOrder — порядок публичной ленты: реже просмотренные выше, затем новые.
// l.id добавлен для детерминированной пагинации при полном совпадении ключей.
const feedOrder = `ORDER BY l.view_count ASC, l.created_at DESC, l.id ASC`

// listingDest возвращает адреса полей для Scan в порядке listingColumns.
func listingDest(l *models.Listing, typ, status *string) []any {
	return []any{
		&l.ID,
		&l.UserID,
		&l.Title,
		&l.Description,
		typ,
		&l.Category,
		&l.Location,
		&l.Latitude,
		&l.Longitude,
		&l.District,
		&l.City,
		&l.MediaURLs,
		&l.ContactEmail,
		&l.ContactPhone,
		&l.ContactWhatsapp,
		status,
		&l.ViewCount,
		&l.CreatedAt,
	}
}

func scanListing(row pgx.Row) (*models.Listing, error) {
	var listing models.Listing
	var typ, status string

	if err := row.Scan(listingDest(&listing, &typ, &status)...); err != nil {
		return nil, err
	}

	listing.Type = models.ListingType(typ)
	listing.Status = models.ListingStatus(status)

	if listing.MediaURLs == nil {
		listing.MediaURLs = []string{}
	}

	return &listing, nil
}

// CreateListing вставляет объявление одним запросом.
// Ошибки: storage.ErrNotFound (нет профиля-владельца), storage.ErrInvalidArgument (CHECK).
func (s *Storage) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	const op = "storage/postgres/listings/CreateListing"

	media := listing.MediaURLs
	if media == nil {
		media = []string{}
	}

	q := `
	INSERT INTO listings AS l (
		user_id, title, description, type, category, location,
		latitude, longitude, district, city, media_urls,
		contact_email, contact_phone, contact_whatsapp, status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING
	` + listingColumns

	row := s.db.QueryRow(ctx, q,
		listing.UserID,
		listing.Title,
		listing.Description,
		string(listing.Type),
		listing.Category,
		listing.Location,
		listing.Latitude,
		listing.Longitude,
		nullIfEmpty(listing.District),
		nullIfEmpty(listing.City),
		media,
		nullIfEmpty(listing.ContactEmail),
		nullIfEmpty(listing.ContactPhone),
		nullIfEmpty(listing.ContactWhatsapp),
		string(listing.Status),
	)

	result, err := scanListing(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapPgError(err))
	}

	return result, nil
}

// CountListingsByUser считает объявления профиля независимо от статуса.
func (s *Storage) CountListingsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "storage/postgres/listings/CountListingsByUser"

	var count int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM listings WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// ListListings возвращает страницу активных объявлений.
//
// Фильтры применяются, только если значение непустое и не равно "all":
//   - Search — ILIKE по title;
//   - Category/Type — точное совпадение;
//   - Location — ILIKE по location.
//
// Страница и общий счётчик читаются из одного снимка (REPEATABLE READ, read-only).
func (s *Storage) ListListings(ctx context.Context, filter models.ListingFilter) (*models.ListingPage, error) {
	const op = "storage/postgres/listings/ListListings"

	where, args := buildFeedWhere(filter)

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var total int64
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM listings l WHERE `+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("%s: count: %w", op, err)
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	q := fmt.Sprintf(`SELECT %s FROM listings l WHERE %s %s LIMIT $%d OFFSET $%d`,
		listingColumns, where, feedOrder, limitArg, offsetArg)

	rows, err := tx.Query(ctx, q, append(args, filter.Limit, filter.Offset())...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}

	listings, err := collectListings(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: scan: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return &models.ListingPage{Listings: listings, TotalCount: total}, nil
}

// ListingByID возвращает объявление в любом статусе вместе с владельцем.
// Ошибки: storage.ErrNotFound.
func (s *Storage) ListingByID(ctx context.Context, id uuid.UUID) (*models.ListingDetails, error) {
	const op = "storage/postgres/listings/ListingByID"

	q := `
	SELECT ` + listingColumns + `,
		COALESCE(p.full_name, $2), COALESCE(p.avatar_url, '')
	FROM listings l
	JOIN profiles p ON p.id = l.user_id
	WHERE l.id = $1`

	var details models.ListingDetails
	var typ, status string

	dest := append(listingDest(&details.Listing, &typ, &status), &details.Owner.FullName, &details.Owner.AvatarURL)

	if err := s.db.QueryRow(ctx, q, id, models.AnonymousName).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	details.Type = models.ListingType(typ)
	details.Status = models.ListingStatus(status)

	if details.MediaURLs == nil {
		details.MediaURLs = []string{}
	}

	return &details, nil
}

// ListingsByUser возвращает объявления профиля (любой статус), новые первыми.
func (s *Storage) ListingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Listing, error) {
	const op = "storage/postgres/listings/ListingsByUser"

	q := `SELECT ` + listingColumns + ` FROM listings l WHERE l.user_id = $1 ORDER BY l.created_at DESC, l.id ASC`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	listings, err := collectListings(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return listings, nil
}

// IncrementViewCount выполняет инкремент на стороне БД одним UPDATE,
// без чтения текущего значения клиентом.
// Ошибки: storage.ErrNotFound при отсутствии объявления.
func (s *Storage) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	const op = "storage/postgres/listings/IncrementViewCount"

	tag, err := s.db.Exec(ctx, `UPDATE listings SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// buildFeedWhere собирает WHERE ленты и аргументы с нумерацией $1..$n.
func buildFeedWhere(filter models.ListingFilter) (string, []any) {
	conds := []string{"l.status = 'active'"}
	args := make([]any, 0, 4)

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if v, ok := filterValue(filter.Search); ok {
		add("l.title ILIKE $%d", "%"+escapeLike(v)+"%")
	}

	if v, ok := filterValue(filter.Category); ok {
		add("l.category = $%d", v)
	}

	if v, ok := filterValue(filter.Location); ok {
		add("l.location ILIKE $%d", "%"+escapeLike(v)+"%")
	}

	if v, ok := filterValue(filter.Type); ok {
		add("l.type = $%d", v)
	}

	return strings.Join(conds, " AND "), args
}

// filterValue возвращает значение фильтра и признак его применения.
func filterValue(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, models.FilterAll) {
		return "", false
	}

	return v, true
}

// escapeLike экранирует спецсимволы LIKE, чтобы поиск был подстрочным, а не шаблонным.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func collectListings(rows pgx.Rows) ([]models.Listing, error) {
	defer rows.Close()

	listings := make([]models.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}

		listings = append(listings, *listing)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
