package bitcursor

import (
	"iter"
)

// Values returns the set's values in ascending order.
//
// Each range opens its own Cursor and closes it when the loop ends, including
// on break or panic, so the set is borrowed only for the duration of the loop.
func (s *Set) Values() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		c := s.Cursor()
		defer c.Close()

		for v, ok := c.Next(); ok; v, ok = c.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Batches returns the set's values in ascending, non-empty chunks of at most
// BatchSize values.
//
// A yielded chunk is only valid during its loop iteration; copy it to keep it.
func (s *Set) Batches() iter.Seq[[]uint32] {
	return func(yield func([]uint32) bool) {
		b := s.BatchCursor()
		defer b.Close()

		for {
			batch := b.Fill()
			if len(batch) == 0 {
				return
			}
			if !yield(batch) {
				return
			}
		}
	}
}
