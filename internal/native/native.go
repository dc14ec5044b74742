package native

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrIteratorFreed is the panic value wrapped when a freed Iterator is used.
var ErrIteratorFreed = errors.New("native: iterator used after free")

// Iterator is a forward-only traversal handle over one bitmap.
//
// A fresh handle is positioned on the smallest value. Handles are not safe
// for concurrent use and must be freed exactly once.
type Iterator interface {
	// CurrentValue returns the value under the handle.
	// ok is false once the traversal is exhausted.
	CurrentValue() (v uint32, ok bool)

	// Advance moves to the next ascending value and reports whether there is one.
	Advance() bool

	// ReadBatch copies the current value and its successors into buf and
	// positions the handle after the last value written. It returns the
	// number of values written; fewer than len(buf) means exhausted.
	ReadBatch(buf []uint32) int

	// Free releases the handle.
	Free()
}

// Engine builds bitmaps and hands out traversal handles over them.
type Engine interface {
	// CreateIterator returns a handle positioned on the smallest value of rb.
	// rb must not be mutated while the handle is live.
	CreateIterator(rb *roaring.Bitmap) Iterator

	// Build returns a new bitmap holding the distinct values of values.
	// Order and duplicates in values are irrelevant.
	Build(values []uint32) *roaring.Bitmap

	// Release hands a bitmap that is no longer referenced back to the engine.
	Release(rb *roaring.Bitmap)
}
