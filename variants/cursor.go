package variants

import "github.com/goose-lang/multisum"

// Cursor walks the positive integers. Advance moves to the next one and Value
// reads the sum of the multiples passed so far; reading never moves the
// cursor.
type Cursor struct {
	bases []uint64
	pos   uint64
	sum   uint64
}

func NewCursor(bases []uint64) *Cursor {
	return &Cursor{bases: bases}
}

func (c *Cursor) Advance() {
	c.pos++
	if multisum.DivisibleByAny(c.pos, c.bases) {
		c.sum += c.pos
	}
}

// Pos is the last integer the cursor has passed (0 before the first Advance).
func (c *Cursor) Pos() uint64 {
	return c.pos
}

func (c *Cursor) Value() uint64 {
	return c.sum
}

func cursorSum(bases []uint64, limit uint64) uint64 {
	c := NewCursor(bases)
	for c.Pos()+1 < limit {
		c.Advance()
	}
	return c.Value()
}
