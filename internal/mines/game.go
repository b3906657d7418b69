package mines

import (
	"cmp"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

var Log *slog.Logger = slog.Default()

type Outcome uint8

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

// Board is a single game. A reset builds a new Board; a Board is never
// cleared in place.
type Board struct {
	width, height, mineCount int

	cells   [][]Cell // [x][y]
	mines   mapset.Set[Point]
	flagged mapset.Set[Point]

	minesRemaining int
	started        bool
	outcome        Outcome
	detonated      *Point
}

// New places params.MineCount mines uniformly at random without replacement.
// A nil r falls back to a randomly seeded source.
func New(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	width, height, mineCount := params.Unpack()

	/*
	 * Write down the list of possible mine locations, then pick n off
	 * the list at random.
	 */
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}
	layout := make([]Point, 0, mineCount)
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		c := candidates[i]
		layout = append(layout, Point{c % width, c / width})
		k--
		candidates[i] = candidates[k]
	}

	b := newBoard(width, height, layout)
	Log.Debug("placed mines", slog.String("params", params.Seed()))
	return b, nil
}

// NewWithMines builds a board with a fixed mine layout.
func NewWithMines(width, height int, layout []Point) (*Board, error) {
	params := GameParams{Width: width, Height: height, MineCount: len(layout)}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	seen := mapset.New[Point]()
	for _, p := range layout {
		if !params.InBounds(p.X, p.Y) {
			return nil, params.invalid("mine %s is outside of the board", p)
		}
		if seen.Has(p) {
			return nil, params.invalid("mine %s is placed twice", p)
		}
		seen.Put(p)
	}
	return newBoard(width, height, layout), nil
}

func newBoard(width, height int, layout []Point) *Board {
	cells := make([][]Cell, width)
	for x := range cells {
		cells[x] = make([]Cell, height)
	}

	b := &Board{
		width:          width,
		height:         height,
		mineCount:      len(layout),
		cells:          cells,
		mines:          mapset.New[Point](),
		flagged:        mapset.New[Point](),
		minesRemaining: len(layout),
	}

	for _, p := range layout {
		b.mines.Put(p)
		b.cells[p.X][p.Y].adjacent = mine
	}
	for _, p := range layout {
		for n := range b.Neighbors(p) {
			if c := &b.cells[n.X][n.Y]; c.adjacent != mine {
				c.adjacent++
			}
		}
	}

	return b
}

func (b *Board) Width() int          { return b.width }
func (b *Board) Height() int         { return b.height }
func (b *Board) MineCount() int      { return b.mineCount }
func (b *Board) MinesRemaining() int { return b.minesRemaining }
func (b *Board) Started() bool       { return b.started }
func (b *Board) Outcome() Outcome    { return b.outcome }

func (b *Board) Params() GameParams {
	return GameParams{Width: b.width, Height: b.height, MineCount: b.mineCount}
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) checkBounds(x, y int) error {
	if !b.InBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return nil
}

func (b *Board) Cell(x, y int) (CellInfo, error) {
	if err := b.checkBounds(x, y); err != nil {
		return CellInfo{}, err
	}
	c := b.cells[x][y]
	info := CellInfo{Revealed: c.revealed, Mark: c.mark}
	if c.revealed {
		info.count = int(c.adjacent)
	}
	return info, nil
}

// Detonated reports the mine that lost the game.
func (b *Board) Detonated() (Point, bool) {
	if b.detonated == nil {
		return Point{}, false
	}
	return *b.detonated, true
}

func sortedPoints(s mapset.Set[Point]) []Point {
	points := make([]Point, 0, s.Size())
	s.Each(func(p Point) {
		points = append(points, p)
	})
	slices.SortFunc(points, func(a, b Point) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	return points
}

// Mines lists the mine positions in row-major order. It exists for
// post-game rendering; a presentation must not show it mid-game.
func (b *Board) Mines() []Point {
	return sortedPoints(b.mines)
}

// Flagged lists the Flag-marked positions in row-major order.
func (b *Board) Flagged() []Point {
	return sortedPoints(b.flagged)
}

// CheckWin declares the game won iff the flagged set equals the mine set
// and the remaining-mines counter is exactly zero. Both conditions are
// required.
func (b *Board) CheckWin() bool {
	if b.outcome.Terminal() {
		return b.outcome == Won
	}
	if b.minesRemaining != 0 || b.flagged.Size() != b.mines.Size() {
		return false
	}
	equal := true
	b.mines.Each(func(p Point) {
		if !b.flagged.Has(p) {
			equal = false
		}
	})
	if !equal {
		return false
	}
	b.outcome = Won
	Log.Debug("board won", slog.String("params", b.Params().Seed()))
	return true
}

// String renders the player's view of the board, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			info, _ := b.Cell(x, y)
			fmt.Fprint(&sb, info.String()+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
