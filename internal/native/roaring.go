package native

import (
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// RoaringOptions configures the roaring engine.
type RoaringOptions struct {
	// RunOptimize converts eligible containers to run containers after Build.
	RunOptimize bool
}

// Roaring is the Engine backed by github.com/RoaringBitmap/roaring/v2.
// Released bitmaps are recycled through a sync.Pool.
type Roaring struct {
	opts RoaringOptions
	pool sync.Pool
}

var _ Engine = (*Roaring)(nil)

// NewRoaring creates a roaring engine.
func NewRoaring(optFns ...func(o *RoaringOptions)) *Roaring {
	var opts RoaringOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Roaring{
		opts: opts,
		pool: sync.Pool{
			New: func() any {
				return roaring.New()
			},
		},
	}
}

// Build implements Engine.
func (e *Roaring) Build(values []uint32) *roaring.Bitmap {
	rb := e.pool.Get().(*roaring.Bitmap)
	rb.Clear()
	// AddMany tolerates unsorted input and duplicates.
	rb.AddMany(values)
	if e.opts.RunOptimize {
		rb.RunOptimize()
	}
	return rb
}

// Release implements Engine.
func (e *Roaring) Release(rb *roaring.Bitmap) {
	if rb == nil {
		return
	}
	// Clear before returning to pool to release container memory
	rb.Clear()
	e.pool.Put(rb)
}

// CreateIterator implements Engine.
func (e *Roaring) CreateIterator(rb *roaring.Bitmap) Iterator {
	it := &roaringIterator{
		many: rb.ManyIterator(),
	}
	it.step()
	return it
}

// roaringIterator keeps a one-value lookahead on top of roaring's many
// iterator, so that both single steps and batches drain the same cursor.
type roaringIterator struct {
	many    roaring.ManyIntIterable
	one     [1]uint32
	current uint32
	has     bool
	freed   bool
}

func (it *roaringIterator) step() {
	if it.many.NextMany(it.one[:]) == 1 {
		it.current = it.one[0]
		it.has = true
		return
	}
	it.current = 0
	it.has = false
}

func (it *roaringIterator) mustBeLive() {
	if it.freed {
		panic(fmt.Errorf("%w", ErrIteratorFreed))
	}
}

func (it *roaringIterator) CurrentValue() (uint32, bool) {
	it.mustBeLive()
	return it.current, it.has
}

func (it *roaringIterator) Advance() bool {
	it.mustBeLive()
	if !it.has {
		return false
	}
	it.step()
	return it.has
}

func (it *roaringIterator) ReadBatch(buf []uint32) int {
	it.mustBeLive()
	if !it.has || len(buf) == 0 {
		return 0
	}

	buf[0] = it.current
	n := 1 + it.many.NextMany(buf[1:])
	if n < len(buf) {
		// A short read from NextMany means every container is drained.
		it.current = 0
		it.has = false
		return n
	}
	it.step()
	return n
}

func (it *roaringIterator) Free() {
	it.mustBeLive()
	it.freed = true
	it.many = nil
	it.has = false
}
