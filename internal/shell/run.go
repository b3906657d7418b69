package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Run reads commands from in until quit, end of input, or ctx is done.
// Rejected commands are reported and the loop goes on. Every command runs
// on the same goroutine.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	// Reads block, so the reader lives outside the group and is left
	// behind if the context ends first.
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			if s.prompt != "" {
				fmt.Fprint(s.out, s.prompt)
			}
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case line, ok := <-lines:
				if !ok {
					select {
					case err := <-readErr:
						if err != nil {
							return fmt.Errorf("read commands: %w", err)
						}
					default:
					}
					return io.EOF
				}
				err := s.Execute(gCtx, line)
				if errors.Is(err, ErrQuit) {
					return err
				}
				if err != nil {
					fmt.Fprintf(s.out, "error: %v\n", err)
				}
			}
		}
	})
	g.Go(func() error {
		<-gCtx.Done()
		if ctx.Err() != nil {
			s.log.Info("interrupted", slog.Any("reason", context.Cause(ctx)))
		}
		return nil
	})

	err := g.Wait()
	switch {
	case errors.Is(err, ErrQuit), errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		return nil
	default:
		return err
	}
}
