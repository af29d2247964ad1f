package bitbuf

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength    = errors.New("bitbuf: invalid length")
	ErrOutOfBounds      = errors.New("bitbuf: out of bounds")
	ErrInvalidCharacter = errors.New("bitbuf: invalid character")
	ErrDecode           = errors.New("bitbuf: decode failure")
	ErrLengthMismatch   = errors.New("bitbuf: length mismatch")
)

// InvalidLengthError is returned when an offset and length pair does not fit
// in the available storage.
type InvalidLengthError struct {
	End      uint64
	Capacity uint64
}

func (err InvalidLengthError) Error() string {
	return fmt.Sprintf("bitbuf: offset + length (%d bits) is greater than data length (%d bits)",
		err.End, err.Capacity)
}

func (err InvalidLengthError) Unwrap() error { return ErrInvalidLength }

// RadixLengthError is returned when a radix conversion is attempted on a length
// that is not a whole number of digit groups.
type RadixLengthError struct {
	Radix  string
	Length uint64
	Group  uint64
}

func (err RadixLengthError) Error() string {
	return fmt.Sprintf("bitbuf: cannot convert %d bits to %s; expected: a multiple of %d",
		err.Length, err.Radix, err.Group)
}

func (err RadixLengthError) Unwrap() error { return ErrInvalidLength }

type OutOfBoundsError struct {
	Index  uint64
	Length uint64
}

func (err OutOfBoundsError) Error() string {
	return fmt.Sprintf("bitbuf: bit index %d is out of range for length %d", err.Index, err.Length)
}

func (err OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (err InvalidCharacterError) Error() string {
	return fmt.Sprintf("bitbuf: invalid character %q at position %d", err.Char, err.Pos)
}

func (err InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// DecodeError wraps the hex codec's own error, so both ErrDecode and the
// codec's error match with errors.Is.
type DecodeError struct {
	Err error
}

func (err DecodeError) Error() string {
	return fmt.Sprintf("bitbuf: hex decode failure: %v", err.Err)
}

func (err DecodeError) Unwrap() []error { return []error{ErrDecode, err.Err} }

type LengthMismatchError struct {
	Left  uint64
	Right uint64
}

func (err LengthMismatchError) Error() string {
	return fmt.Sprintf("bitbuf: length mismatch; left: %d bits, right: %d bits", err.Left, err.Right)
}

func (err LengthMismatchError) Unwrap() error { return ErrLengthMismatch }
