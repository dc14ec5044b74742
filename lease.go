package bitcursor

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/bitcursor/internal/native"
)

// CursorKind distinguishes single-value cursors from batch cursors in logs
// and metrics.
type CursorKind uint8

const (
	// KindCursor is a Cursor.
	KindCursor CursorKind = iota
	// KindBatch is a BatchCursor.
	KindBatch
)

func (k CursorKind) String() string {
	switch k {
	case KindCursor:
		return "cursor"
	case KindBatch:
		return "batch"
	default:
		return fmt.Sprintf("CursorKind(%d)", uint8(k))
	}
}

// lease is a cursor's borrow of a set together with the engine handle it
// owns. It never points back at the cursor so that a runtime cleanup
// attached to the cursor can still reach it.
type lease struct {
	set      *Set
	it       native.Iterator
	kind     CursorKind
	released atomic.Bool
}

func (s *Set) lend(kind CursorKind) *lease {
	s.rlock("open " + kind.String())
	s.open.Add(1)

	l := &lease{
		set:  s,
		it:   s.opts.engine.CreateIterator(s.rb),
		kind: kind,
	}
	s.opts.metricsCollector.RecordCursorOpen(kind)
	return l
}

// release frees the handle and returns the borrow. Only the first call
// does anything; it reports whether it was that call.
func (l *lease) release() bool {
	if !l.released.CompareAndSwap(false, true) {
		return false
	}

	l.it.Free()
	l.set.open.Add(-1)
	l.set.mu.RUnlock()
	l.set.opts.metricsCollector.RecordCursorClose(l.kind)
	return true
}

func (l *lease) mustBeOpen() {
	if l.released.Load() {
		panic(fmt.Errorf("%s: %w", l.kind, ErrCursorClosed))
	}
}

func (l *lease) close() error {
	if !l.release() {
		return fmt.Errorf("close %s: %w", l.kind, ErrCursorClosed)
	}
	return nil
}

// reclaim runs when a cursor becomes unreachable while still open.
func reclaim(l *lease) {
	if l.release() {
		o := l.set.opts
		o.logger.LogLeak(context.Background(), l.kind)
		o.metricsCollector.RecordLeak(l.kind)
	}
}
