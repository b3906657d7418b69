package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfBounds          = errors.New("out of bounds")
)

type InvalidConfigurationError struct {
	Params GameParams
	Reason string
}

// [InvalidConfigurationError] implements [error]
func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf(
		"invalid configuration %dx%d with %d mines: %s",
		e.Params.Width, e.Params.Height, e.Params.MineCount, e.Reason,
	)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

// [OutOfBoundsError] implements [error]
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"cell (%d, %d) is outside of the %dx%d board",
		e.X, e.Y, e.Width, e.Height,
	)
}

func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
