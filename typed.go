package bitcursor

import (
	"iter"
)

// ValuesOf ranges over s as values of a named uint32 type, such as a row or
// piece index.
func ValuesOf[T ~uint32](s *Set) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.Values() {
			if !yield(T(v)) {
				return
			}
		}
	}
}

// FromValues is FromSeq for named uint32 types.
func FromValues[T ~uint32](seq iter.Seq[T], opts ...Option) *Set {
	return FromSeq(func(yield func(uint32) bool) {
		for v := range seq {
			if !yield(uint32(v)) {
				return
			}
		}
	}, opts...)
}
