// Package bitstream wraps io.Writer and io.Reader with bit-granular access.
// Bits are written and read most-significant first, so a stream of bits
// b0 b1 ... b7 packs into the byte b0<<7 | b1<<6 | ... | b7.
package bitstream

import "io"

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// mask selects bit i of a byte, counted from the MS bit.
func mask(i uint8) byte {
	return 0x80 >> i
}

func writeFull(w io.Writer, b byte) error {
	n, err := w.Write([]byte{b})
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}
	return err
}
