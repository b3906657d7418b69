package mines

import (
	"fmt"
	"iter"
	"strconv"
)

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Mark is the player's annotation of an unrevealed cell. Marks cycle
// None -> Flag -> Maybe -> None.
type Mark uint8

const (
	None Mark = iota
	Flag
	Maybe
)

func (m Mark) String() string {
	switch m {
	case None:
		return "none"
	case Flag:
		return "flag"
	case Maybe:
		return "maybe"
	default:
		return "Mark(" + strconv.Itoa(int(m)) + ")"
	}
}

const mine int8 = -1

type Cell struct {
	adjacent int8 // -1 for a mine, otherwise 0..8 mined neighbours
	mark     Mark
	revealed bool
}

// CellInfo is what the player is allowed to know about a cell: the
// adjacency count stays hidden until the cell is revealed.
type CellInfo struct {
	Revealed bool
	Mark     Mark
	count    int
}

// Count reports the adjacency count of a revealed cell; -1 is a revealed mine.
func (c CellInfo) Count() (int, bool) {
	if !c.Revealed {
		return 0, false
	}
	return c.count, true
}

func (c CellInfo) String() string {
	switch {
	case c.Revealed && c.count == int(mine):
		return "*"
	case c.Revealed && c.count == 0:
		return "."
	case c.Revealed:
		return strconv.Itoa(c.count)
	case c.Mark == Flag:
		return "F"
	case c.Mark == Maybe:
		return "?"
	default:
		return "#"
	}
}

// Neighbors yields the in-bounds king-move neighbours of p.
func (b *Board) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := Point{p.X + dx, p.Y + dy}
				if !b.InBounds(n.X, n.Y) {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}
