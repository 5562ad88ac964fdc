package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Coullax/disaster-relief-management/internal/metrics"
	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"github.com/Coullax/disaster-relief-management/internal/storage"
	"github.com/google/uuid"
)

// ListListings — публичная лента активных объявлений.
//
// Нормализация:
//   - Page < 1 -> 1;
//   - Limit <= 0 -> listings.default_limit, Limit > listings.max_limit -> max_limit;
//   - category/type приводятся к нижнему регистру, значения обрезаются.
//
// Кэш (если сконфигурирован) используется сквозным образом; его ошибки
// только логируются, а после ошибки Get страница в кэш не пишется. Ошибка хранилища — ErrInternal, не пустая страница.
func (s *Service) ListListings(ctx context.Context, filter models.ListingFilter) (*models.ListingPage, error) {
	const op = "service/queries/ListListings"

	lg := log.From(ctx).With("op", op)

	filter = s.NormalizeFilter(filter)

	// cacheable — поколение кэша прочитано до запроса в БД; без него страницу
	// не сохраняем, иначе она может пережить Invalidate после новой публикации.
	var (
		gen       int64
		cacheable bool
	)
	if s.cache != nil {
		page, g, ok, err := s.cache.Get(ctx, filter)
		switch {
		case err != nil:
			lg.Warn("feed_cache_get_failed", slog.String("err", err.Error()))
		case ok:
			s.metrics.FeedCache.WithLabelValues(metrics.ResultHit).Inc()
			return page, nil
		default:
			s.metrics.FeedCache.WithLabelValues(metrics.ResultMiss).Inc()
			gen, cacheable = g, true
		}
	}

	page, err := s.listings.ListListings(ctx, filter)
	if err != nil {
		lg.Error("list_listings_failed", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if cacheable {
		if err := s.cache.Set(ctx, gen, filter, page, s.cfg.Cache.FeedTTL); err != nil {
			lg.Warn("feed_cache_set_failed", slog.String("err", err.Error()))
		}
	}

	return page, nil
}

// NormalizeFilter приводит параметры ленты к допустимым значениям.
func (s *Service) NormalizeFilter(f models.ListingFilter) models.ListingFilter {
	if f.Page < 1 {
		f.Page = 1
	}

	if f.Limit <= 0 {
		f.Limit = s.cfg.Listings.DefaultLimit
	}

	if f.Limit > s.cfg.Listings.MaxLimit {
		f.Limit = s.cfg.Listings.MaxLimit
	}

	f.Search = strings.TrimSpace(f.Search)
	f.Location = strings.TrimSpace(f.Location)
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	f.Type = strings.ToLower(strings.TrimSpace(f.Type))

	return f
}

// ListingByID — карточка объявления (в любом статусе) с владельцем.
// Просмотр засчитывается в фоне и не влияет на результат.
// Ошибки: ErrInvalidArgument (uuid.Nil), ErrNotFound, ErrInternal.
func (s *Service) ListingByID(ctx context.Context, id uuid.UUID) (*models.ListingDetails, error) {
	const op = "service/queries/ListingByID"

	lg := log.From(ctx).With("op", op, "listing_id", id.String())

	if id == uuid.Nil {
		lg.Warn("invalid argument: empty listing_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	details, err := s.listings.ListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("listing_get_failed", slog.String("err", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.RecordView(ctx, id)

	return details, nil
}

// MyListings — все объявления пользователя сессии, новые первыми.
func (s *Service) MyListings(ctx context.Context, session *models.Session) ([]models.Listing, error) {
	const op = "service/queries/MyListings"

	if session == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	listings, err := s.listings.ListingsByUser(ctx, session.UserID)
	if err != nil {
		log.From(ctx).Error("my_listings_failed",
			slog.String("op", op),
			slog.String("user_id", session.UserID.String()),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return listings, nil
}

// Profile — профиль пользователя сессии.
func (s *Service) Profile(ctx context.Context, session *models.Session) (*models.Profile, error) {
	const op = "service/queries/Profile"

	if session == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	p, err := s.profiles.ProfileByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.From(ctx).Error("profile_get_failed",
			slog.String("op", op),
			slog.String("user_id", session.UserID.String()),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return p, nil
}

// Categories возвращает копию allow-list категорий.
func (s *Service) Categories() []string {
	out := make([]string, len(s.cfg.Listings.Categories))
	copy(out, s.cfg.Listings.Categories)

	return out
}
