package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Coullax/disaster-relief-management/internal/geo"
	"github.com/Coullax/disaster-relief-management/internal/models"
	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
)

// ReverseGeocode возвращает место по координатам.
// Неудача геокодера (или его отсутствие) — не ошибка: возвращаются
// отформатированные координаты с Fallback=true.
// Ошибки: ErrInvalidArgument для координат вне диапазона.
func (s *Service) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.GeoLocation, error) {
	const op = "service/geocode/ReverseGeocode"

	if !geo.ValidCoordinates(lat, lng) {
		log.From(ctx).Warn("invalid argument: coordinates out of range",
			slog.String("op", op),
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return s.reverse(ctx, lat, lng), nil
}

// reverse вызывает геокодер с собственным таймаутом и при любой ошибке
// откатывается на координаты.
func (s *Service) reverse(ctx context.Context, lat, lng float64) *models.GeoLocation {
	if s.geo == nil {
		return geo.Fallback(lat, lng)
	}

	gctx, cancel := context.WithTimeout(ctx, s.cfg.Geo.Timeout)
	defer cancel()

	loc, err := s.geo.Reverse(gctx, lat, lng)
	if err != nil {
		log.From(ctx).Warn("reverse_geocode_failed", slog.String("err", err.Error()))
		return geo.Fallback(lat, lng)
	}

	return loc
}
