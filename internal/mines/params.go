package mines

import (
	"fmt"
	"strings"
)

// MaxDimension caps either side of a board. A flood fill runs to completion
// inside a single call, so the grid has to stay small enough for that.
const MaxDimension = 500

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) invalid(format string, args ...any) error {
	return &InvalidConfigurationError{Params: p, Reason: fmt.Sprintf(format, args...)}
}

func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0:
		return p.invalid("width must be positive")
	case p.Height <= 0:
		return p.invalid("height must be positive")
	case p.Width > MaxDimension:
		return p.invalid("width must not exceed %d", MaxDimension)
	case p.Height > MaxDimension:
		return p.invalid("height must not exceed %d", MaxDimension)
	case p.MineCount <= 0:
		return p.invalid("mine count must be positive")
	case p.MineCount >= p.Width*p.Height:
		return p.invalid("mine count must be less than %d", p.Width*p.Height)
	}
	return nil
}

func (p GameParams) InBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (GameParams, error) {
	var p GameParams
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return GameParams{}, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	return p, nil
}
