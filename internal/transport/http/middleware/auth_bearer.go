package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Coullax/disaster-relief-management/internal/models"
	apierrors "github.com/Coullax/disaster-relief-management/internal/transport/http/errors"
)

// Authenticator проверяет сессионный токен.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

// AuthBearer извлекает Bearer-токен из Authorization и кладёт сессию в контекст.
//
// Поведение:
//   - заголовка нет или схема не Bearer — запрос анонимный;
//   - токен недействителен — 401 без вызова обработчика.
func AuthBearer(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "

			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, prefix) {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimSpace(h[len(prefix):])
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
