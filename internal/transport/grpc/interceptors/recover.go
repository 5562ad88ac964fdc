// interceptors — серверные unary-интерсепторы gRPC-сервера relief-board
// (health-проверки): перехват паник, логирование, таймаут.
package interceptors

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Recover перехватывает паники в обработчиках, логирует метод и стек
// и отвечает нейтральной ошибкой codes.Internal.
// Логгер берётся из контекста (pkg/log), иначе base, иначе slog.Default().
func Recover(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		l := log.From(ctx)
		if l == slog.Default() && base != nil {
			l = base
		}

		defer func() {
			if r := recover(); r != nil {
				l.Error("panic_recovered",
					slog.String("method", info.FullMethod),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)

				err = status.Error(codes.Internal, "internal server error")
				resp = nil
			}
		}()

		return handler(ctx, req)
	}
}
