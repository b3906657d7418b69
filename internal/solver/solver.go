package solver

import (
	"fmt"
	"iter"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/vancomm/minesweeper/internal/mines"
)

var Log = logrus.New()

// Hint is a single deduction drawn from what the player can see.
type Hint struct {
	mines.Point
	Mine   bool
	Reason string
}

func (h Hint) String() string {
	action := "reveal"
	if h.Mine {
		action = "flag"
	}
	return fmt.Sprintf("%s %s: %s", action, h.Point, h.Reason)
}

// Solver looks for hints on a board. It only reads revealed counts and Flag
// marks, and flags are trusted to be correct.
type Solver struct {
	board        *mines.Board
	inspectQueue deque.Deque[mines.Point]
	queued       mapset.Set[mines.Point]
}

func New(b *mines.Board) *Solver {
	s := &Solver{board: b, queued: mapset.New[mines.Point]()}
	s.fill()
	return s
}

// Next returns one hint, or false when nothing can be deduced.
func Next(b *mines.Board) (Hint, bool) {
	return New(b).Next()
}

func (s *Solver) push(p mines.Point) {
	if s.queued.Has(p) {
		return
	}
	s.queued.Put(p)
	s.inspectQueue.PushBack(p)
}

func (s *Solver) fill() {
	for y := range s.board.Height() {
		for x := range s.board.Width() {
			if _, ok := s.constraint(mines.Point{X: x, Y: y}); ok {
				s.push(mines.Point{X: x, Y: y})
			}
		}
	}
}

// pushAround queues every revealed cell within two steps of p, p included.
func (s *Solver) pushAround(p mines.Point) {
	for q := range s.extended(p) {
		s.push(q)
	}
	s.push(p)
}

type constraint struct {
	untouched []mines.Point
	remaining int
}

// constraint describes a revealed numbered cell: its closed unflagged
// neighbours and how many mines they still hold. Cells whose flags already
// exceed the count say nothing useful and are skipped.
func (s *Solver) constraint(p mines.Point) (constraint, bool) {
	info, err := s.board.Cell(p.X, p.Y)
	if err != nil {
		return constraint{}, false
	}
	count, ok := info.Count()
	if !ok || count <= 0 {
		return constraint{}, false
	}

	var c constraint
	flagged := 0
	for n := range s.board.Neighbors(p) {
		ni, _ := s.board.Cell(n.X, n.Y)
		switch {
		case ni.Revealed:
		case ni.Mark == mines.Flag:
			flagged++
		default:
			c.untouched = append(c.untouched, n)
		}
	}
	c.remaining = count - flagged
	if len(c.untouched) == 0 || c.remaining < 0 || c.remaining > len(c.untouched) {
		return constraint{}, false
	}
	return c, true
}

func (s *Solver) extended(p mines.Point) iter.Seq[mines.Point] {
	return func(yield func(mines.Point) bool) {
		for dx := -2; dx <= 2; dx++ {
			for dy := -2; dy <= 2; dy++ {
				q := mines.Point{X: p.X + dx, Y: p.Y + dy}
				if q == p || !s.board.InBounds(q.X, q.Y) {
					continue
				}
				if info, _ := s.board.Cell(q.X, q.Y); !info.Revealed {
					continue
				}
				if !yield(q) {
					return
				}
			}
		}
	}
}

func (s *Solver) inspectCell(p mines.Point) (Hint, bool) {
	a, ok := s.constraint(p)
	if !ok {
		return Hint{}, false
	}
	info, _ := s.board.Cell(p.X, p.Y)
	count, _ := info.Count()

	if a.remaining == 0 {
		return Hint{
			Point:  a.untouched[0],
			Reason: fmt.Sprintf("%s shows %d and all of its mines are flagged", p, count),
		}, true
	}
	if a.remaining == len(a.untouched) {
		return Hint{
			Point:  a.untouched[0],
			Mine:   true,
			Reason: fmt.Sprintf("%s shows %d and has exactly %d closed neighbours left", p, count, a.remaining),
		}, true
	}

	// compare with every revealed cell in the 5x5 square around p
	for q := range s.extended(p) {
		b, ok := s.constraint(q)
		if !ok {
			continue
		}
		if h, ok := pair(p, a, q, b); ok {
			return h, true
		}
		if h, ok := pair(q, b, p, a); ok {
			return h, true
		}
	}
	return Hint{}, false
}

// pair applies the two-cell rule. If A holds rem(A)-rem(B) more mines than
// B and that equals the number of cells only A sees, those cells are all
// mines and the cells only B sees are all safe. A subset B with equal
// remainders is the special case where only B's extra cells are left.
func pair(pa mines.Point, a constraint, pb mines.Point, b constraint) (Hint, bool) {
	inA := mapset.New[mines.Point]()
	for _, p := range a.untouched {
		inA.Put(p)
	}
	inB := mapset.New[mines.Point]()
	for _, p := range b.untouched {
		inB.Put(p)
	}
	onlyA := Complement(a.untouched, inB)
	onlyB := Complement(b.untouched, inA)
	if len(onlyA)+len(onlyB) == 0 || a.remaining-b.remaining != len(onlyA) {
		return Hint{}, false
	}

	reason := fmt.Sprintf("%s and %s share closed neighbours", pa, pb)
	if len(onlyA) == 0 {
		reason = fmt.Sprintf("closed neighbours of %s are a subset of those of %s", pa, pb)
	}
	if len(onlyB) != 0 {
		return Hint{Point: onlyB[0], Reason: reason}, true
	}
	return Hint{Point: onlyA[0], Mine: true, Reason: reason}, true
}

// Next pops cells off the inspect queue until one of them yields a hint.
// That cell goes back to the front, since it may have more to give once the
// hint is applied.
func (s *Solver) Next() (Hint, bool) {
	if s.board.Outcome().Terminal() {
		return Hint{}, false
	}
	for s.inspectQueue.Len() != 0 {
		p := s.inspectQueue.PopFront()
		s.queued.Remove(p)
		if h, ok := s.inspectCell(p); ok {
			s.queued.Put(p)
			s.inspectQueue.PushFront(p)
			return h, true
		}
	}
	return Hint{}, false
}

// Apply plays a hint on the board: safe cells lose any mark and are
// revealed, mines are cycled until they carry a Flag.
func (s *Solver) Apply(h Hint) error {
	info, err := s.board.Cell(h.X, h.Y)
	if err != nil {
		return err
	}

	if h.Mine {
		for info.Mark != mines.Flag {
			change, err := s.board.CycleMark(h.X, h.Y)
			if err != nil {
				return err
			}
			if !change.Applied {
				return nil
			}
			info.Mark = change.Mark
		}
		Log.WithField("cell", h.Point.String()).Debug("flagged")
		s.pushAround(h.Point)
		return nil
	}

	for info.Mark != mines.None {
		change, err := s.board.CycleMark(h.X, h.Y)
		if err != nil {
			return err
		}
		if !change.Applied {
			return nil
		}
		info.Mark = change.Mark
	}
	res, err := s.board.Reveal(h.X, h.Y)
	if err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{
		"cell":   h.Point.String(),
		"result": res.String(),
	}).Debug("revealed")

	if revealed, _ := s.board.Cell(h.X, h.Y); revealed.Revealed {
		if count, _ := revealed.Count(); count == 0 {
			// a cascade may have opened cells anywhere
			s.fill()
		}
	}
	s.pushAround(h.Point)
	return nil
}

// Solve applies hints until none is left or the game is over. It returns
// the number of hints applied.
func Solve(b *mines.Board) (moves int, err error) {
	s := New(b)
	for {
		h, ok := s.Next()
		if !ok {
			return moves, nil
		}
		if err := s.Apply(h); err != nil {
			return moves, fmt.Errorf("apply hint %s: %w", h, err)
		}
		moves++
	}
}
