package bitstream

import (
	"errors"
	"io"
)

// Reader unpacks bits from the bytes of an io.Reader.
type Reader struct {
	r    io.Reader
	cur  [1]byte
	left uint8 // unread bits of cur
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) fill() error {
	_, err := io.ReadFull(r.r, r.cur[:])
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}
	if err != nil {
		return err
	}
	r.left = 8
	return nil
}

// ReadBit returns the next bit.
func (r *Reader) ReadBit() (Bit, error) {
	if r.left == 0 {
		if err := r.fill(); err != nil {
			return Zero, err
		}
	}
	r.left--
	return r.cur[0]&mask(7-r.left) != 0, nil
}

// ReadByte returns the next 8 bits, whatever the alignment.
func (r *Reader) ReadByte() (byte, error) {
	if r.left == 0 {
		if err := r.fill(); err != nil {
			return 0, err
		}
		r.left = 0
		return r.cur[0], nil
	}

	// The unread LS bits of the current byte become the MS bits of the
	// result; the MS bits of the next byte complete it.
	left := r.left
	hi := r.cur[0] << (8 - left)
	if err := r.fill(); err != nil {
		return 0, err
	}
	r.left = left
	return hi | r.cur[0]>>left, nil
}

// ReadBits returns the next n bits as the LS bits of an unsigned value, MS
// bit first. n must be at most 64.
func (r *Reader) ReadBits(n uint) (uint64, error) {
	var val uint64
	for ; n >= 8; n -= 8 {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		val = val<<8 | uint64(b)
	}
	for ; n > 0; n-- {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		val <<= 1
		if bit {
			val |= 1
		}
	}
	return val, nil
}
