package middleware

import (
	"context"

	"github.com/google/uuid"
)

type CtxKey int

const (
	CtxGameID CtxKey = iota
)

// WithGameID tags ctx with the id of the game a command runs against.
func WithGameID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, CtxGameID, id)
}

func GameID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(CtxGameID).(uuid.UUID)
	return id, ok
}
