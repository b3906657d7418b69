package middleware

import (
	"context"
	"strings"
)

// Command is one parsed shell line.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

type Handler interface {
	Handle(ctx context.Context, cmd Command) error
}

type HandlerFunc func(ctx context.Context, cmd Command) error

func (f HandlerFunc) Handle(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}

type Middleware func(Handler) Handler

// Wrap applies mws so that the last one is outermost.
func Wrap(h Handler, mws ...Middleware) Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
