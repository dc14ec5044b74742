// Package native is the narrow boundary between bitcursor and the compressed
// set engine.
//
// Everything above this package sees a compressed set as an opaque
// *roaring.Bitmap plus an Iterator handle with five operations:
//
//	CreateIterator  positions a new handle on the smallest value
//	CurrentValue    value under the handle, ok=false once exhausted
//	Advance         move to the next ascending value
//	ReadBatch       copy up to len(buf) values and move past them
//	Free            release the handle
//
// Container selection, run compression and set algebra stay inside
// github.com/RoaringBitmap/roaring/v2.
package native
