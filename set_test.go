package bitcursor

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Mutations(t *testing.T) {
	s := New()
	defer s.Close()

	assert.True(t, s.IsEmpty())

	require.NoError(t, s.Add(5, 1, 5, 70000))
	assert.Equal(t, uint64(3), s.Cardinality())
	assert.True(t, s.Contains(70000))
	assert.False(t, s.Contains(2))

	require.NoError(t, s.Remove(5, 6))
	assert.Equal(t, []uint32{1, 70000}, s.ToArray())

	require.NoError(t, s.Clear())
	assert.True(t, s.IsEmpty())
}

func TestSet_MinimumMaximum(t *testing.T) {
	s := Of(9, 1<<20, 3)
	defer s.Close()

	v, ok := s.Minimum()
	require.True(t, ok)
	assert.Equal(t, uint32(3), v)

	v, ok = s.Maximum()
	require.True(t, ok)
	assert.Equal(t, uint32(1<<20), v)

	empty := New()
	defer empty.Close()

	_, ok = empty.Minimum()
	assert.False(t, ok)
	_, ok = empty.Maximum()
	assert.False(t, ok)
}

func TestSet_Clone(t *testing.T) {
	s := Of(1, 2, 3)
	defer s.Close()

	c := s.Clone()
	require.NoError(t, c.Add(4))

	assert.Equal(t, []uint32{1, 2, 3}, s.ToArray())
	assert.Equal(t, []uint32{1, 2, 3, 4}, c.ToArray())
	require.NoError(t, c.Close())

	// The original is unaffected by releasing the clone.
	assert.Equal(t, uint64(3), s.Cardinality())
}

func TestSet_Iterate(t *testing.T) {
	s := Of(5, 4, 3, 2, 1)
	defer s.Close()

	var got []uint32
	s.Iterate(func(v uint32) bool {
		got = append(got, v)
		return v < 3
	})
	assert.Equal(t, []uint32{1, 2, 3}, got)

	// Iterate closed its cursor.
	require.NoError(t, s.Add(6))
}

func TestSet_CloseOnce(t *testing.T) {
	s := Of(1)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Close(), ErrSetReleased)
	assert.ErrorIs(t, s.Add(1), ErrSetReleased)
	assert.ErrorIs(t, s.Remove(1), ErrSetReleased)
	assert.ErrorIs(t, s.Clear(), ErrSetReleased)

	assert.PanicsWithError(t, "contains: set already released", func() { s.Contains(1) })
	assert.PanicsWithError(t, "cardinality: set already released", func() { s.Cardinality() })
}

func TestSet_SizeInBytes(t *testing.T) {
	s := Of(1, 2, 3)
	defer s.Close()

	assert.Positive(t, s.SizeInBytes())
}

func TestSet_SharedReadsDuringIteration(t *testing.T) {
	s := Of(1, 2, 3)
	defer s.Close()

	// Nested reads take the shared lock again and must not deadlock.
	var got []uint32
	for v := range s.Values() {
		if s.Contains(v) {
			got = append(got, slices.Collect(s.Values())...)
		}
	}
	assert.Len(t, got, 9)
}
