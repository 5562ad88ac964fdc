package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"github.com/Coullax/disaster-relief-management/internal/service"
	apierrors "github.com/Coullax/disaster-relief-management/internal/transport/http/errors"
	"github.com/go-chi/chi/v5"
)

// Recover перехватывает panic обработчика и отвечает 500/internal.
// Если обработчик уже начал ответ, тело не дописывается: клиент получит
// оборванный ответ, а паника останется в логе. Детали паники наружу не уходят.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				// http.ErrAbortHandler — штатный способ оборвать ответ.
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				// Recover стоит снаружи RequestID: id читается из заголовка,
				// который RequestID выставляет и во входящем запросе.
				log.From(r.Context()).Error("panic_recovered",
					slog.String("method", r.Method),
					slog.String("route", routeOf(r)),
					slog.String("request_id", r.Header.Get("X-Request-Id")),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)

				if sw.status != 0 {
					return
				}

				apierrors.WriteError(sw, r, service.ErrInternal)
			}()

			next.ServeHTTP(sw, r)
		})
	}
}

// routeOf возвращает шаблон маршрута chi или путь, если маршрут не сопоставлен.
func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}

	return r.URL.Path
}
