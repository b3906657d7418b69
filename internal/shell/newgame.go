package shell

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

var decoder = schema.NewDecoder()

type NewGameDTO struct {
	Width     int     `schema:"width,required"`
	Height    int     `schema:"height,required"`
	MineCount int     `schema:"mine_count,required"`
	Seed      *uint64 `schema:"seed"`
}

func (dto NewGameDTO) Params() mines.GameParams {
	return mines.GameParams{Width: dto.Width, Height: dto.Height, MineCount: dto.MineCount}
}

// ParseNewGameDTO decodes key=value arguments. Unknown keys are an error.
func ParseNewGameDTO(args []string) (NewGameDTO, error) {
	src := url.Values{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return NewGameDTO{}, fmt.Errorf("expected key=value, got %q", arg)
		}
		src.Add(key, value)
	}
	var dto NewGameDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return NewGameDTO{}, err
	}
	return dto, nil
}

func parsePositional(args []string) (NewGameDTO, error) {
	if len(args) < 3 {
		return NewGameDTO{}, errors.New("expected width, height and mine count")
	}
	var (
		dto NewGameDTO
		err error
	)
	if dto.Width, err = strconv.Atoi(args[0]); err != nil {
		return dto, errors.New("width must be an int")
	}
	if dto.Height, err = strconv.Atoi(args[1]); err != nil {
		return dto, errors.New("height must be an int")
	}
	if dto.MineCount, err = strconv.Atoi(args[2]); err != nil {
		return dto, errors.New("mine count must be an int")
	}
	if len(args) == 4 {
		seed, err := strconv.ParseUint(args[3], 10, 64)
		if err != nil {
			return dto, errors.New("seed must be a non-negative int")
		}
		dto.Seed = &seed
	}
	return dto, nil
}

func (s *Session) newGame(args []string) error {
	switch {
	case len(args) == 0:
		// same board again
		params, preset := mines.Easy, "easy"
		if s.board != nil {
			params, preset = s.board.Params(), s.preset
		}
		return s.NewGame(params, preset, nil)

	case len(args) == 1 && !strings.Contains(args[0], "="):
		params, err := mines.Preset(args[0])
		if err != nil {
			return err
		}
		return s.NewGame(params, strings.ToLower(args[0]), nil)

	case strings.Contains(args[0], "="):
		dto, err := ParseNewGameDTO(args)
		if err != nil {
			return err
		}
		return s.NewGame(dto.Params(), "", dto.Seed)

	default:
		dto, err := parsePositional(args)
		if err != nil {
			return err
		}
		return s.NewGame(dto.Params(), "", dto.Seed)
	}
}
