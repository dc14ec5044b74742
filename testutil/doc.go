// Package testutil provides testing utilities for bitcursor.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for uint32 inputs shaped like the three
// container kinds, and a reference model of what a set must contain.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Values(10_000, 1<<20)  // unsorted, with duplicates
//	mixed := rng.ContainerMix(4)          // arrays, bitmaps and runs
//
// # Reference Model
//
//	want := testutil.Distinct(values)     // ascending, duplicate-free
package testutil
