package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"

	"github.com/Coullax/disaster-relief-management/internal/geo"
	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"github.com/google/uuid"
)

// CreateListingInput — поля формы публикации.
// Session == nil — анонимная отправка.
type CreateListingInput struct {
	Session *models.Session

	FullName    string
	Title       string
	Description string
	Type        string
	Category    string

	Location  string
	District  string
	City      string
	Latitude  *float64
	Longitude *float64

	MediaURLs []string

	ContactEmail    string
	ContactPhone    string
	ContactWhatsapp string
}

// CreateListing — публикация объявления.
//
// Порядок:
//  1. нормализация и валидация полей (до любых обращений к БД);
//  2. пустой контактный e-mail при наличии сессии берётся из сессии;
//  3. определение места (текст, "район, город", геокодер, координаты);
//  4. определение профиля (ResolveProfile);
//  5. статус: active для первого объявления профиля, иначе pending;
//  6. вставка и инвалидация кэша ленты.
//
// Ошибки: ErrInvalidArgument, ErrProfileCreate, ErrListingCreate.
func (s *Service) CreateListing(ctx context.Context, in CreateListingInput) (*models.Listing, error) {
	const op = "service/listings/CreateListing"

	lg := log.From(ctx).With("op", op)

	listing, err := s.validateListing(in)
	if err != nil {
		lg.Warn("invalid argument", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if listing.ContactEmail == "" && in.Session != nil {
		listing.ContactEmail = normalizeEmail(in.Session.Email)
	}

	s.resolveLocation(ctx, listing)

	userID, err := s.ResolveProfile(ctx, IdentityInput{
		Session:      in.Session,
		ContactEmail: listing.ContactEmail,
		ContactPhone: listing.ContactPhone,
		DisplayName:  in.FullName,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	listing.UserID = userID

	status, err := s.assignStatus(ctx, userID)
	if err != nil {
		lg.Error("listing_status_failed",
			slog.String("user_id", userID.String()),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrListingCreate)
	}
	listing.Status = status

	created, err := s.listings.CreateListing(ctx, listing)
	if err != nil {
		lg.Error("listing_create_failed",
			slog.String("user_id", userID.String()),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrListingCreate)
	}

	s.metrics.ListingsCreated.WithLabelValues(string(created.Status)).Inc()
	s.invalidateFeed(ctx)

	lg.Info("listing_created",
		slog.String("listing_id", created.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("status", string(created.Status)),
	)

	return created, nil
}

// assignStatus: ноль объявлений у профиля — active, иначе pending.
// Подсчёт и вставка не атомарны: конкурентные первые отправки одного профиля
// могут обе получить active.
func (s *Service) assignStatus(ctx context.Context, userID uuid.UUID) (models.ListingStatus, error) {
	n, err := s.listings.CountListingsByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	if n == 0 {
		return models.ListingStatusActive, nil
	}

	return models.ListingStatusPending, nil
}

// validateListing нормализует вход и собирает модель объявления без UserID/Status.
func (s *Service) validateListing(in CreateListingInput) (*models.Listing, error) {
	l := &models.Listing{
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		Type:            models.ListingType(strings.ToLower(strings.TrimSpace(in.Type))),
		Category:        strings.ToLower(strings.TrimSpace(in.Category)),
		Location:        strings.TrimSpace(in.Location),
		District:        strings.TrimSpace(in.District),
		City:            strings.TrimSpace(in.City),
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		ContactEmail:    normalizeEmail(in.ContactEmail),
		ContactPhone:    strings.TrimSpace(in.ContactPhone),
		ContactWhatsapp: strings.TrimSpace(in.ContactWhatsapp),
		MediaURLs:       []string{},
	}

	switch {
	case l.Title == "":
		return nil, fmt.Errorf("empty title")
	case l.Description == "":
		return nil, fmt.Errorf("empty description")
	case !l.Type.Valid():
		return nil, fmt.Errorf("invalid type %q", l.Type)
	case l.Category == "":
		return nil, fmt.Errorf("empty category")
	case !s.cfg.Listings.HasCategory(l.Category):
		return nil, fmt.Errorf("unknown category %q", l.Category)
	}

	if (l.Latitude == nil) != (l.Longitude == nil) {
		return nil, fmt.Errorf("latitude and longitude must be set together")
	}

	hasCoords := l.Latitude != nil
	if hasCoords && !geo.ValidCoordinates(*l.Latitude, *l.Longitude) {
		return nil, fmt.Errorf("coordinates out of range")
	}

	if l.Location == "" && l.District == "" && l.City == "" && !hasCoords {
		return nil, fmt.Errorf("empty location")
	}

	if l.ContactEmail != "" {
		if _, err := mail.ParseAddress(l.ContactEmail); err != nil {
			return nil, fmt.Errorf("invalid contact email")
		}
	}

	if len(in.MediaURLs) > s.cfg.Media.MaxFiles {
		return nil, fmt.Errorf("too many media urls")
	}

	for _, raw := range in.MediaURLs {
		raw = strings.TrimSpace(raw)
		if !isAbsoluteHTTPURL(raw) {
			return nil, fmt.Errorf("invalid media url")
		}

		l.MediaURLs = append(l.MediaURLs, raw)
	}

	return l, nil
}

// resolveLocation заполняет текстовое место по приоритету:
// явный текст -> "район, город" -> обратное геокодирование -> координаты.
// Ошибки геокодера не прерывают публикацию.
func (s *Service) resolveLocation(ctx context.Context, l *models.Listing) {
	if l.Location != "" {
		return
	}

	if place := geo.JoinPlace(l.District, l.City); place != "" {
		l.Location = place
		return
	}

	// Валидация гарантирует наличие координат на этом шаге.
	resolved := s.reverse(ctx, *l.Latitude, *l.Longitude)

	l.Location = resolved.Location
	if l.District == "" {
		l.District = resolved.District
	}

	if l.City == "" {
		l.City = resolved.City
	}
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// invalidateFeed сбрасывает кэш ленты; ошибка кэша только логируется.
func (s *Service) invalidateFeed(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		log.From(ctx).Warn("feed_cache_invalidate_failed", slog.String("err", err.Error()))
	}
}
