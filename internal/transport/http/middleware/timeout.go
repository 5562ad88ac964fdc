package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	apierrors "github.com/Coullax/disaster-relief-management/internal/transport/http/errors"
)

// Timeout навешивает дедлайн d на запрос, если его ещё нет (<=0 — no-op).
// Если дедлайн истёк, а обработчик так ничего и не ответил, клиент
// получает 504 deadline_exceeded.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Deadline(); ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			log.From(ctx).Warn("request_timeout",
				slog.String("method", r.Method),
				slog.String("route", routeOf(r)),
				slog.Duration("timeout", d),
			)

			if sw.status == 0 {
				apierrors.WriteError(sw, r, context.DeadlineExceeded)
			}
		})
	}
}
