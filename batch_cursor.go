package bitcursor

import (
	"runtime"
)

// BatchSize is the capacity of a BatchCursor fill.
const BatchSize = 32

type batchState uint8

const (
	batchActive batchState = iota
	batchDone
)

// BatchCursor reads a set's values in ascending order, up to BatchSize per
// Fill. A Fill shorter than BatchSize is the last one that reaches the
// engine; every later Fill is empty. When the cardinality is a multiple of
// BatchSize the final full Fill is followed by one empty Fill.
//
// A BatchCursor borrows its Set until Close. It is not safe for concurrent use.
type BatchCursor struct {
	l       *lease
	cleanup runtime.Cleanup
	buf     [BatchSize]uint32
	n       int
	state   batchState
}

// BatchCursor opens a BatchCursor at the smallest value.
// It panics with ErrSetReleased if the set was closed.
func (s *Set) BatchCursor() *BatchCursor {
	l := s.lend(KindBatch)

	b := &BatchCursor{l: l}
	b.cleanup = runtime.AddCleanup(b, reclaim, l)
	return b
}

// Fill reads the next values and returns them. An empty result means the
// set is exhausted; it is never an error.
//
// The returned slice aliases the cursor's buffer and is valid until the
// next Fill or Close. Its capacity equals its length.
func (b *BatchCursor) Fill() []uint32 {
	b.l.mustBeOpen()
	if b.state == batchDone {
		b.n = 0
		return b.buf[:0:0]
	}

	b.n = b.l.it.ReadBatch(b.buf[:])
	if b.n < BatchSize {
		b.state = batchDone
	}
	b.l.set.opts.metricsCollector.RecordFill(b.n)
	return b.buf[:b.n:b.n]
}

// Len returns the number of values produced by the last Fill.
func (b *BatchCursor) Len() int {
	b.l.mustBeOpen()
	return b.n
}

// Done reports whether the cursor is exhausted. Done may still be false
// after the last value was read when that value completed a full batch.
func (b *BatchCursor) Done() bool {
	b.l.mustBeOpen()
	return b.state == batchDone
}

// Close releases the cursor and its borrow of the set.
// A second Close returns ErrCursorClosed; any other use after Close panics.
func (b *BatchCursor) Close() error {
	b.cleanup.Stop()
	return b.l.close()
}
