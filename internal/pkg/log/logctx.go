// log хранит request-scoped *slog.Logger в context.Context.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста (или возвращает slog.Default()).
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

// Detached возвращает новый фоновый контекст с логгером из ctx.
// Отмена и дедлайн родителя не наследуются: используется для
// fire-and-forget операций, которые должны пережить запрос.
func Detached(ctx context.Context) context.Context {
	return Into(context.Background(), From(ctx))
}
