package bitcursor

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
)

// ctxCheckInterval is how many values an ingest worker materializes between
// context checks.
const ctxCheckInterval = 4096

// New returns an empty set.
func New(opts ...Option) *Set {
	return build(nil, applyOptions(opts))
}

// Of returns a set holding the distinct values given.
func Of(values ...uint32) *Set {
	return build(values, applyOptions(nil))
}

// FromSeq returns a set holding the distinct values of seq.
//
// seq is materialized in full and handed to the engine in one call. Order
// and duplicates do not matter: ranging over the result yields each distinct
// value once, ascending.
func FromSeq(seq iter.Seq[uint32], opts ...Option) *Set {
	return build(slices.Collect(seq), applyOptions(opts))
}

// Ingest materializes several sources concurrently and builds one set from
// all of their values.
//
// At most WithIngestWorkers sources are drained at once, further limited by
// the worker slots of a configured resource controller. The finished set's
// memory is reserved against the controller's limit, waiting if necessary.
// Ingest returns early with the context's error when ctx is done.
func Ingest(ctx context.Context, sources []iter.Seq[uint32], opts ...Option) (*Set, error) {
	o := applyOptions(opts)

	parts := make([][]uint32, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.ingestWorkers)

	for i, seq := range sources {
		g.Go(func() error {
			if err := o.resources.AcquireBackground(gctx); err != nil {
				return err
			}
			defer o.resources.ReleaseBackground()

			var part []uint32
			for v := range seq {
				part = append(part, v)
				if len(part)%ctxCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
			}
			parts[i] = part
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.logger.LogIngest(ctx, len(sources), 0, err)
		return nil, fmt.Errorf("ingest: %w", err)
	}

	start := time.Now()
	values := slices.Concat(parts...)
	rb := o.engine.Build(values)

	bytes := int64(rb.GetSizeInBytes()) //nolint:gosec // bounded by the bitmap size
	if err := o.resources.AcquireMemory(ctx, bytes); err != nil {
		o.engine.Release(rb)
		o.logger.LogIngest(ctx, len(sources), 0, err)
		return nil, fmt.Errorf("ingest: %w", err)
	}

	s := newSet(rb, o, func() {
		o.resources.ReleaseMemory(bytes)
	})

	cardinality := rb.GetCardinality()
	o.metricsCollector.RecordBuild(len(values), cardinality, time.Since(start))
	o.logger.LogIngest(ctx, len(sources), cardinality, nil)
	return s, nil
}

func build(values []uint32, o *options) *Set {
	start := time.Now()
	rb := o.engine.Build(values)
	s := track(rb, o)

	cardinality := rb.GetCardinality()
	o.metricsCollector.RecordBuild(len(values), cardinality, time.Since(start))
	o.logger.LogBuild(context.Background(), len(values), cardinality)
	return s
}

// track wraps rb in a Set whose memory is tracked, but not limited, by the
// configured resource controller.
func track(rb *roaring.Bitmap, o *options) *Set {
	if o.resources == nil {
		return newSet(rb, o, nil)
	}

	bytes := int64(rb.GetSizeInBytes()) //nolint:gosec // bounded by the bitmap size
	o.resources.TrackMemory(bytes)
	return newSet(rb, o, func() {
		o.resources.UntrackMemory(bytes)
	})
}
