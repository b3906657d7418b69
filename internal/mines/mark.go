package mines

type MarkChange struct {
	Mark    Mark // the cell's mark after the call
	Delta   int  // change applied to the remaining-mines counter
	Applied bool
}

// CycleMark advances the mark of an unrevealed cell and returns the change
// to the remaining-mines counter: -1 into Flag, +1 out of Flag, 0 from Maybe
// back to None. The counter is a display value and is never clamped.
func (b *Board) CycleMark(x, y int) (MarkChange, error) {
	if err := b.checkBounds(x, y); err != nil {
		return MarkChange{}, err
	}

	c := &b.cells[x][y]
	if b.outcome.Terminal() || c.revealed {
		return MarkChange{Mark: c.mark}, nil
	}

	p := Point{x, y}
	delta := 0
	switch c.mark {
	case None:
		c.mark = Flag
		b.flagged.Put(p)
		delta = -1
	case Flag:
		c.mark = Maybe
		b.flagged.Remove(p)
		delta = +1
	case Maybe:
		c.mark = None
	}
	b.minesRemaining += delta

	b.CheckWin()

	return MarkChange{Mark: c.mark, Delta: delta, Applied: true}, nil
}
