package bitcursor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a compressed, ordered set of uint32 values.
//
// Values are read through a Cursor or BatchCursor, or the Values and Batches
// range functions built on them. Opening a cursor borrows the set: until
// every cursor is closed, Add, Remove, Clear and Close fail with a
// *BorrowError instead of invalidating the traversal. Any number of cursors
// may read the same set concurrently.
//
// A Set must be released with Close exactly once.
type Set struct {
	// mu is held shared by every open cursor and exclusively, via TryLock,
	// by mutations. Mutations never wait.
	mu       sync.RWMutex
	rb       *roaring.Bitmap
	released bool
	open     atomic.Int64
	opts     *options
	free     func()
}

func newSet(rb *roaring.Bitmap, o *options, free func()) *Set {
	return &Set{
		rb:   rb,
		opts: o,
		free: free,
	}
}

// rlock takes the shared side of the lock and fails loudly on a released set.
func (s *Set) rlock(op string) {
	s.mu.RLock()
	if s.released {
		s.mu.RUnlock()
		panic(fmt.Errorf("%s: %w", op, ErrSetReleased))
	}
}

// lock takes the exclusive side without waiting.
func (s *Set) lock(op string) error {
	if !s.mu.TryLock() {
		open := s.open.Load()
		s.opts.logger.LogBorrowRefused(context.Background(), op, open)
		return &BorrowError{Op: op, Open: open}
	}
	if s.released {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrSetReleased)
	}
	return nil
}

// Add inserts values into the set.
func (s *Set) Add(values ...uint32) error {
	if err := s.lock("add"); err != nil {
		return err
	}
	defer s.mu.Unlock()

	s.rb.AddMany(values)
	return nil
}

// Remove deletes values from the set. Absent values are ignored.
func (s *Set) Remove(values ...uint32) error {
	if err := s.lock("remove"); err != nil {
		return err
	}
	defer s.mu.Unlock()

	for _, v := range values {
		s.rb.Remove(v)
	}
	return nil
}

// Clear removes every value from the set.
func (s *Set) Clear() error {
	if err := s.lock("clear"); err != nil {
		return err
	}
	defer s.mu.Unlock()

	s.rb.Clear()
	return nil
}

// Close releases the set. It fails with a *BorrowError while cursors are
// open and with ErrSetReleased when called again.
func (s *Set) Close() error {
	if err := s.lock("close"); err != nil {
		return err
	}
	defer s.mu.Unlock()

	s.released = true
	s.opts.engine.Release(s.rb)
	s.rb = nil
	if s.free != nil {
		s.free()
	}
	return nil
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v uint32) bool {
	s.rlock("contains")
	defer s.mu.RUnlock()

	return s.rb.Contains(v)
}

// Cardinality returns the number of values in the set.
func (s *Set) Cardinality() uint64 {
	s.rlock("cardinality")
	defer s.mu.RUnlock()

	return s.rb.GetCardinality()
}

// IsEmpty returns true if the set has no values.
func (s *Set) IsEmpty() bool {
	s.rlock("is empty")
	defer s.mu.RUnlock()

	return s.rb.IsEmpty()
}

// Minimum returns the smallest value. ok is false for an empty set.
func (s *Set) Minimum() (v uint32, ok bool) {
	s.rlock("minimum")
	defer s.mu.RUnlock()

	if s.rb.IsEmpty() {
		return 0, false
	}
	return s.rb.Minimum(), true
}

// Maximum returns the largest value. ok is false for an empty set.
func (s *Set) Maximum() (v uint32, ok bool) {
	s.rlock("maximum")
	defer s.mu.RUnlock()

	if s.rb.IsEmpty() {
		return 0, false
	}
	return s.rb.Maximum(), true
}

// SizeInBytes returns the engine's estimate of the set's in-memory size.
func (s *Set) SizeInBytes() uint64 {
	s.rlock("size")
	defer s.mu.RUnlock()

	return s.rb.GetSizeInBytes()
}

// Clone returns an independent copy sharing the receiver's options.
// The copy must be closed separately.
func (s *Set) Clone() *Set {
	s.rlock("clone")
	defer s.mu.RUnlock()

	return track(s.rb.Clone(), s.opts)
}

// ToArray returns the values in ascending order.
func (s *Set) ToArray() []uint32 {
	out := make([]uint32, 0, s.Cardinality())
	for batch := range s.Batches() {
		out = append(out, batch...)
	}
	return out
}

// Iterate calls fn for each value in ascending order until fn returns false.
func (s *Set) Iterate(fn func(v uint32) bool) {
	for v := range s.Values() {
		if !fn(v) {
			return
		}
	}
}
