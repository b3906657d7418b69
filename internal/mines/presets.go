package mines

import (
	"fmt"
	"strings"
)

// Difficulty level d plays on a 10d x 10d board with 10d mines.
var (
	Easy         = GameParams{Width: 10, Height: 10, MineCount: 10}
	Intermediate = GameParams{Width: 20, Height: 20, MineCount: 20}
	Hard         = GameParams{Width: 30, Height: 30, MineCount: 30}
)

type Difficulty struct {
	Name string
	GameParams
}

var difficulties = []Difficulty{
	{"easy", Easy},
	{"intermediate", Intermediate},
	{"hard", Hard},
}

// Presets lists the named difficulties from easiest to hardest.
func Presets() []Difficulty {
	presets := make([]Difficulty, len(difficulties))
	copy(presets, difficulties)
	return presets
}

func Preset(name string) (GameParams, error) {
	for _, d := range difficulties {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d.GameParams, nil
		}
	}
	return GameParams{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, name)
}
