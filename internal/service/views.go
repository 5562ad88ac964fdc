package service

import (
	"context"
	"log/slog"

	"github.com/Coullax/disaster-relief-management/internal/metrics"
	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"github.com/google/uuid"
)

// RecordView запускает инкремент счётчика просмотров и не ждёт его.
//
// Инкремент выполняется в отдельной горутине на контексте, отвязанном от
// запроса (отмена запроса его не прерывает), с собственным таймаутом
// listings.view_timeout. Ошибки логируются и не возвращаются.
func (s *Service) RecordView(ctx context.Context, id uuid.UUID) {
	const op = "service/views/RecordView"

	bg := log.Detached(ctx)

	s.views.Add(1)
	go func() {
		defer s.views.Done()

		vctx, cancel := context.WithTimeout(bg, s.cfg.Listings.ViewTimeout)
		defer cancel()

		if err := s.listings.IncrementViewCount(vctx, id); err != nil {
			s.metrics.ListingViews.WithLabelValues(metrics.ResultError).Inc()
			log.From(bg).Warn("view_increment_failed",
				slog.String("op", op),
				slog.String("listing_id", id.String()),
				slog.String("err", err.Error()),
			)
			return
		}

		s.metrics.ListingViews.WithLabelValues(metrics.ResultOK).Inc()
	}()
}
