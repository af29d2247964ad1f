package bitstream

import (
	"io"
)

// Writer packs bits into bytes and writes each byte once it is complete.
type Writer struct {
	w       io.Writer
	acc     byte
	used    uint8 // bits of acc already filled
	written uint64
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(bit Bit) error {
	if bit {
		w.acc |= mask(w.used)
	}
	w.used++
	w.written++
	if w.used < 8 {
		return nil
	}
	return w.emit()
}

// WriteByte appends 8 bits. When the stream is not byte-aligned the MS bits
// of b complete the pending byte and its LS bits start the next one.
func (w *Writer) WriteByte(b byte) error {
	if w.used == 0 {
		w.written += 8
		return writeFull(w.w, b)
	}
	w.acc |= b >> w.used
	rest := b << (8 - w.used)
	used := w.used
	if err := w.emit(); err != nil {
		return err
	}
	w.acc, w.used = rest, used
	w.written += 8
	return nil
}

// WriteBits appends the n LS bits of val, MS bit first. n must be at most 64.
func (w *Writer) WriteBits(val uint64, n uint) error {
	for ; n >= 8; n -= 8 {
		if err := w.WriteByte(byte(val >> (n - 8))); err != nil {
			return err
		}
	}
	for ; n > 0; n-- {
		if err := w.WriteBit(val>>(n-1)&1 == 1); err != nil {
			return err
		}
	}
	return nil
}

// Written returns the number of bits appended so far. Flush padding is not
// counted.
func (w *Writer) Written() uint64 {
	return w.written
}

// Flush completes a pending partial byte with pad bits and writes it.
func (w *Writer) Flush(pad Bit) error {
	if w.used == 0 {
		return nil
	}
	if pad {
		w.acc |= 0xff >> w.used
	}
	return w.emit()
}

func (w *Writer) emit() error {
	b := w.acc
	w.acc, w.used = 0, 0
	return writeFull(w.w, b)
}
