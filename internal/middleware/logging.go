package middleware

import (
	"context"
	"log/slog"
	"time"
)

func Logging(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, cmd Command) error {
			start := time.Now()

			err := next.Handle(ctx, cmd)

			attrs := []any{
				slog.String("command", cmd.Name),
				slog.Any("args", cmd.Args),
				slog.Any("duration (ms)", int64(time.Since(start)/time.Millisecond)),
			}
			if id, ok := GameID(ctx); ok {
				attrs = append(attrs, slog.String("game", id.String()))
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.Debug("handled command", attrs...)

			return err
		})
	}
}
