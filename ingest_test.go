package bitcursor

import (
	"context"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hupe1980/bitcursor/resource"
	"github.com/hupe1980/bitcursor/testutil"
)

func TestFromSeq_Inverse(t *testing.T) {
	s := FromSeq(slices.Values([]uint32{4, 3, 2, 4, 2}))
	defer s.Close()

	assert.Equal(t, []uint32{2, 3, 4}, slices.Collect(s.Values()))
}

func TestFromSeq_Empty(t *testing.T) {
	s := FromSeq(slices.Values[[]uint32](nil))
	defer s.Close()

	assert.True(t, s.IsEmpty())

	c := s.Cursor()
	defer c.Close()
	_, ok := c.Next()
	assert.False(t, ok)

	b := s.BatchCursor()
	defer b.Close()
	assert.Empty(t, b.Fill())
}

func TestFromSeq_Skewed(t *testing.T) {
	rng := testutil.NewRNG(1)
	values := rng.ZipfValues(20_000, 50, 1.5)

	s := FromSeq(slices.Values(values))
	defer s.Close()

	assert.Equal(t, testutil.Distinct(values), s.ToArray())
}

func TestFromSeq_TracksMemory(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1})

	// FromSeq never waits for the limit; it is only tracked.
	s := FromSeq(slices.Values(testutil.Range(0, 10_000)), WithResourceController(rc))
	assert.Equal(t, int64(s.SizeInBytes()), rc.MemoryUsage())

	require.NoError(t, s.Close())
	assert.Zero(t, rc.MemoryUsage())
}

func TestIngest(t *testing.T) {
	defer goleak.VerifyNone(t)

	rng := testutil.NewRNG(99)
	var (
		sources []iter.Seq[uint32]
		all     []uint32
	)
	for range 10 {
		part := rng.Values(3000, 1<<18)
		all = append(all, part...)
		sources = append(sources, slices.Values(part))
	}

	rc := resource.NewController(resource.Config{MaxBackgroundWorkers: 2})
	s, err := Ingest(context.Background(), sources,
		WithIngestWorkers(3),
		WithResourceController(rc),
	)
	require.NoError(t, err)

	assert.Equal(t, testutil.Distinct(all), s.ToArray())
	assert.Equal(t, int64(s.SizeInBytes()), rc.MemoryUsage())

	require.NoError(t, s.Close())
	assert.Zero(t, rc.MemoryUsage())
	// All worker slots were returned.
	assert.True(t, rc.TryAcquireBackground())
	assert.True(t, rc.TryAcquireBackground())
}

func TestIngest_NoSources(t *testing.T) {
	s, err := Ingest(context.Background(), nil)
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.IsEmpty())
}

func TestIngest_Canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	endless := func(yield func(uint32) bool) {
		for v := uint32(0); ; v++ {
			if !yield(v) {
				return
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := Ingest(ctx, []iter.Seq[uint32]{endless, endless})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, s)
}

func TestIngest_MemoryLimit(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 8})

	s, err := Ingest(context.Background(),
		[]iter.Seq[uint32]{slices.Values(testutil.Range(0, 100_000))},
		WithResourceController(rc),
	)
	assert.ErrorIs(t, err, resource.ErrExceedsLimit)
	assert.Nil(t, s)
	assert.Zero(t, rc.MemoryUsage())
}
