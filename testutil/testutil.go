package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Values returns n unsorted values in [0, maxVal), duplicates included.
// maxVal of 0 means the full uint32 range.
func (r *RNG) Values(n int, maxVal uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, n)
	for i := range out {
		if maxVal == 0 {
			out[i] = r.rand.Uint32()
		} else {
			out[i] = uint32(r.rand.Int63n(int64(maxVal)))
		}
	}
	return out
}

// ContainerMix returns shuffled values spread over keys high-16-bit keys,
// cycling through the shapes that select each container kind: a sparse
// array (< 4096 values), a dense bitmap (> 4096 scattered values) and a
// long run. Every value appears twice.
func (r *RNG) ContainerMix(keys int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []uint32
	for k := range keys {
		base := uint32(k) << 16
		switch k % 3 {
		case 0:
			for range 100 {
				out = append(out, base|uint32(r.rand.Intn(1<<16)))
			}
		case 1:
			for i := uint32(0); i < 1<<16; i += 3 {
				out = append(out, base|i)
			}
		case 2:
			start := uint32(r.rand.Intn(1 << 12))
			for i := start; i < start+20000; i++ {
				out = append(out, base|i)
			}
		}
	}

	out = append(out, out...)
	r.rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfValues returns n values drawn from distinct values with a Zipfian
// skew, so a few values repeat many times.
func (r *RNG) ZipfValues(n, distinct int, s float64) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(r.zipfLocked(distinct, s)) * 17 //nolint:gosec // distinct is small
	}
	return out
}

// Distinct returns the ascending, duplicate-free values of values.
// values is not modified.
func Distinct(values []uint32) []uint32 {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// Range returns the values [start, end).
func Range(start, end uint32) []uint32 {
	if end <= start {
		return nil
	}
	out := make([]uint32, 0, end-start)
	for v := start; v < end; v++ {
		out = append(out, v)
	}
	return out
}
