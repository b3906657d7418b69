package view

import (
	"encoding/json"
	"io"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/vancomm/minesweeper/internal/mines"
)

type CellState string

const (
	Hidden      CellState = "hidden"
	Flagged     CellState = "flag"
	Maybe       CellState = "maybe"
	Open        CellState = "open"
	Mine        CellState = "mine"
	Exploded    CellState = "exploded"
	WrongFlag   CellState = "wrong_flag"
	CorrectFlag CellState = "correct_flag"
)

type CellView struct {
	State CellState `json:"state"`
	Count int       `json:"count,omitempty"`
}

// GameView is everything a presentation needs to draw a board. Cells is
// indexed [y][x] so that rows come out in print order.
type GameView struct {
	Width          int          `json:"width"`
	Height         int          `json:"height"`
	MineCount      int          `json:"mine_count"`
	MinesRemaining int          `json:"mines_remaining"`
	Outcome        string       `json:"outcome"`
	Started        bool         `json:"started"`
	ElapsedSeconds int64        `json:"elapsed_seconds"`
	Cells          [][]CellView `json:"cells"`
}

// New builds the view of b. Mine positions only show up once the game is
// over: hidden mines, the detonated mine and right or wrong flags each get
// their own state.
func New(b *mines.Board, elapsed time.Duration) *GameView {
	v := &GameView{
		Width:          b.Width(),
		Height:         b.Height(),
		MineCount:      b.MineCount(),
		MinesRemaining: b.MinesRemaining(),
		Outcome:        b.Outcome().String(),
		Started:        b.Started(),
		ElapsedSeconds: int64(elapsed / time.Second),
		Cells:          make([][]CellView, b.Height()),
	}

	terminal := b.Outcome().Terminal()
	mined := mapset.New[mines.Point]()
	if terminal {
		for _, p := range b.Mines() {
			mined.Put(p)
		}
	}
	detonated, lost := b.Detonated()

	for y := range v.Cells {
		v.Cells[y] = make([]CellView, b.Width())
		for x := range v.Cells[y] {
			info, _ := b.Cell(x, y)
			p := mines.Point{X: x, Y: y}
			c := &v.Cells[y][x]

			switch {
			case lost && p == detonated:
				c.State = Exploded
			case info.Revealed:
				c.State = Open
				c.Count, _ = info.Count()
			case terminal && info.Mark == mines.Flag && mined.Has(p):
				c.State = CorrectFlag
			case terminal && info.Mark == mines.Flag:
				c.State = WrongFlag
			case terminal && mined.Has(p):
				c.State = Mine
			case info.Mark == mines.Flag:
				c.State = Flagged
			case info.Mark == mines.Maybe:
				c.State = Maybe
			default:
				c.State = Hidden
			}
		}
	}
	return v
}

func JSON(w io.Writer, v *GameView) error {
	return json.NewEncoder(w).Encode(v)
}
