package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Recover turns a panic inside a command into an error so that one bad
// command cannot end the session.
func Recover(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, cmd Command) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error(
						"command panicked",
						slog.String("command", cmd.String()),
						slog.Any("panic", r),
						slog.String("stack", string(debug.Stack())),
					)
					err = fmt.Errorf("%s: internal error: %v", cmd.Name, r)
				}
			}()
			return next.Handle(ctx, cmd)
		})
	}
}
