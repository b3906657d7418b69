package mines

import (
	"log/slog"

	"github.com/gammazero/deque"
)

type RevealOutcome uint8

const (
	RevealNoOp RevealOutcome = iota
	RevealContinuing
	RevealLost
	RevealWon
)

func (o RevealOutcome) String() string {
	switch o {
	case RevealNoOp:
		return "noop"
	case RevealContinuing:
		return "continuing"
	case RevealLost:
		return "lost"
	case RevealWon:
		return "won"
	default:
		return "RevealOutcome(?)"
	}
}

// Reveal opens the cell at x, y. Marked cells, revealed cells and finished
// boards are left alone. Opening a cell with no mined neighbours cascades
// over the connected zero region and its border.
func (b *Board) Reveal(x, y int) (RevealOutcome, error) {
	if err := b.checkBounds(x, y); err != nil {
		return RevealNoOp, err
	}
	if b.outcome.Terminal() {
		return RevealNoOp, nil
	}

	c := &b.cells[x][y]
	if c.mark != None || c.revealed {
		return RevealNoOp, nil
	}

	b.started = true

	c.revealed = true
	if c.adjacent == mine {
		/*
		 * The player has landed on a mine. Expose the mine that
		 * killed them, but not the rest.
		 */
		b.outcome = Lost
		b.detonated = &Point{x, y}
		Log.Debug("mine detonated", slog.Int("x", x), slog.Int("y", y))
		return RevealLost, nil
	}

	if c.adjacent == 0 {
		b.flood(Point{x, y})
	}

	if b.CheckWin() {
		return RevealWon, nil
	}
	return RevealContinuing, nil
}

// flood opens everything reachable from origin through zero cells. A cell
// is marked revealed before it is queued, so it is queued at most once.
// Marked cells act as walls.
func (b *Board) flood(origin Point) {
	var todo deque.Deque[Point]
	todo.PushBack(origin)

	for todo.Len() != 0 {
		p := todo.PopFront()
		for n := range b.Neighbors(p) {
			c := &b.cells[n.X][n.Y]
			if c.revealed || c.mark != None {
				continue
			}
			c.revealed = true
			if c.adjacent == 0 {
				todo.PushBack(n)
			}
		}
	}
}
