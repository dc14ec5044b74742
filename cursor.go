package bitcursor

import (
	"runtime"
)

// Cursor is a forward-only reader producing a set's values in ascending order.
//
// A Cursor borrows its Set until Close. It is not safe for concurrent use.
//
//	c := s.Cursor()
//	defer c.Close()
//	for v, ok := c.Next(); ok; v, ok = c.Next() {
//	    ...
//	}
type Cursor struct {
	l       *lease
	cleanup runtime.Cleanup
	current uint32
	has     bool
}

// Cursor opens a Cursor positioned on the smallest value.
// It panics with ErrSetReleased if the set was closed.
func (s *Set) Cursor() *Cursor {
	l := s.lend(KindCursor)

	c := &Cursor{l: l}
	c.current, c.has = l.it.CurrentValue()
	c.cleanup = runtime.AddCleanup(c, reclaim, l)
	return c
}

// CurrentValue returns the value under the cursor. ok is false once the
// cursor is exhausted.
func (c *Cursor) CurrentValue() (v uint32, ok bool) {
	c.l.mustBeOpen()
	return c.current, c.has
}

// Advance moves to the next value and reports whether there is one.
// Past exhaustion it returns false without consulting the engine.
func (c *Cursor) Advance() bool {
	c.l.mustBeOpen()
	if !c.has {
		return false
	}

	if c.l.it.Advance() {
		c.current, c.has = c.l.it.CurrentValue()
	} else {
		c.current, c.has = 0, false
	}
	return c.has
}

// Next returns the current value and advances past it.
// ok is false once the cursor is exhausted, on every subsequent call too.
func (c *Cursor) Next() (v uint32, ok bool) {
	v, ok = c.CurrentValue()
	if ok {
		c.Advance()
	}
	return v, ok
}

// Close releases the cursor and its borrow of the set.
// A second Close returns ErrCursorClosed; any other use after Close panics.
func (c *Cursor) Close() error {
	c.cleanup.Stop()
	return c.l.close()
}
