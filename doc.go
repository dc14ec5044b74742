// Package bitcursor provides cursors over compressed sets of uint32 values
// (Roaring bitmaps) and bulk construction of such sets.
//
// # Quick Start
//
//	s := bitcursor.FromSeq(slices.Values([]uint32{4, 3, 2, 4, 2}))
//	defer s.Close()
//
//	for v := range s.Values() {
//	    fmt.Println(v) // 2, 3, 4
//	}
//
// # Reading
//
// A set is read through one of two cursors:
//
//	Cursor       one value per Next, ascending
//	BatchCursor  up to BatchSize (32) values per Fill, ascending
//
// Both walk the set's containers in key order and each container in value
// order, so the stream is strictly increasing without any sorting. Batching
// decodes a container's values in bulk and is the faster choice for large
// sets. Values and Batches wrap the cursors in range functions.
//
// # Borrowing
//
// An open cursor borrows its set. While any cursor is open, Add, Remove,
// Clear and Close return a *BorrowError instead of changing the set under
// the traversal. Reads, including other cursors, are unaffected:
//
//	c := s.Cursor()
//	err := s.Add(7)   // errors.Is(err, bitcursor.ErrSetBorrowed)
//	c.Close()
//	err = s.Add(7)    // nil
//
// Every cursor must be closed exactly once. A cursor that is dropped without
// Close is reclaimed by the garbage collector, which returns the borrow and
// logs a warning; until then the set stays borrowed. Reading a closed cursor
// or opening a cursor on a closed set panics.
//
// # Construction
//
// New, Of and FromSeq build a set from values in any order, with duplicates.
// Ingest drains several sources concurrently under a context and an optional
// resource.Controller.
package bitcursor
