package dtm

import (
	"errors"
	"fmt"
	"io"
)

// Sentinels for errors.Is. The concrete errors carry the details.
var (
	ErrInvalidMagic   = errors.New("dtm: invalid magic")
	ErrTruncatedInput = errors.New("dtm: truncated input")
)

// InvalidMagicError is returned when the first four bytes are not Magic.
type InvalidMagicError struct {
	Magic [MagicSize]byte
}

// Error returns the error message for InvalidMagicError.
func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("dtm: invalid magic % X, want % X", e.Magic[:], Magic[:])
}

// Is reports a match against ErrInvalidMagic.
func (e *InvalidMagicError) Is(target error) bool {
	return target == ErrInvalidMagic
}

// TruncatedInputError is returned when the stream ends inside a field.
type TruncatedInputError struct {
	Field  string // field being read when the stream ended
	Offset int    // offset of that field from the start of the header
	Want   int    // field width
	Got    int    // bytes of the field that were available
}

// Error returns the error message for TruncatedInputError.
func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("dtm: truncated input reading %s at offset %d: got %d of %d bytes",
		e.Field, e.Offset, e.Got, e.Want)
}

// Is reports a match against ErrTruncatedInput.
func (e *TruncatedInputError) Is(target error) bool {
	return target == ErrTruncatedInput
}

// Unwrap exposes io.ErrUnexpectedEOF.
func (e *TruncatedInputError) Unwrap() error {
	return io.ErrUnexpectedEOF
}
