package bitcursor

import (
	"errors"
	"fmt"
)

var (
	// ErrSetReleased is returned (or panicked with) when a Set is used after Close.
	ErrSetReleased = errors.New("set already released")

	// ErrSetBorrowed is returned when a Set is mutated or released while a
	// cursor over it is still open.
	ErrSetBorrowed = errors.New("set is borrowed by an open cursor")

	// ErrCursorClosed is returned by a second Close and panicked with when a
	// closed Cursor or BatchCursor is read.
	ErrCursorClosed = errors.New("cursor is closed")
)

// BorrowError reports a mutation refused because cursors were open.
//
// It unwraps to ErrSetBorrowed.
type BorrowError struct {
	// Op is the refused operation ("add", "remove", "clear", "close").
	Op string
	// Open is the number of cursors open at the time of the refusal.
	Open int64
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("%s: %v (%d open)", e.Op, ErrSetBorrowed, e.Open)
}

func (e *BorrowError) Unwrap() error { return ErrSetBorrowed }
