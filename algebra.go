package bitbuf

import (
	"math/bits"
)

// And returns the bitwise AND of two Buffers of equal length.
func (b Buffer) And(other Buffer) (Buffer, error) {
	return b.combine(other, func(x, y byte) byte { return x & y })
}

// Or returns the bitwise OR of two Buffers of equal length.
func (b Buffer) Or(other Buffer) (Buffer, error) {
	return b.combine(other, func(x, y byte) byte { return x | y })
}

// Xor returns the bitwise XOR of two Buffers of equal length.
func (b Buffer) Xor(other Buffer) (Buffer, error) {
	return b.combine(other, func(x, y byte) byte { return x ^ y })
}

// combine aligns other to b's sub-byte offset and applies op byte by byte.
func (b Buffer) combine(other Buffer, op func(x, y byte) byte) (Buffer, error) {
	if b.length != other.length {
		return Buffer{}, LengthMismatchError{Left: b.length, Right: other.length}
	}
	if b.length == 0 {
		return Buffer{}, nil
	}

	head := b.offset % 8
	left := b.span()
	right := other.rebase(head).data
	out := make([]byte, len(left))
	for i := range left {
		out[i] = op(left[i], right[i])
	}
	clean(out, head, b.length)
	return Buffer{data: out, offset: head, length: b.length}, nil
}

// CountOnes returns the number of set bits.
func (b Buffer) CountOnes() uint64 {
	if b.length == 0 {
		return 0
	}
	span := b.span()
	head := b.offset % 8
	tail := tailMask((head + b.length) % 8)

	var count int
	for i, x := range span {
		if i == 0 {
			x &= headMask(head)
		}
		if i == len(span)-1 {
			x &= tail
		}
		count += bits.OnesCount8(x)
	}
	return uint64(count)
}

// CountZeros returns the number of unset bits.
func (b Buffer) CountZeros() uint64 {
	return b.length - b.CountOnes()
}

// All reports whether every bit is set. It is true for an empty Buffer.
func (b Buffer) All() bool {
	return b.CountOnes() == b.length
}

// Any reports whether at least one bit is set.
func (b Buffer) Any() bool {
	return b.CountOnes() > 0
}

// Reverse returns a Buffer with the bit order of every spanned byte
// reversed. The bytes themselves stay in order, so only a Buffer within a
// single byte comes back fully reversed. The bits past the end of the
// logical range now lead the first byte and set the new offset, which makes
// Reverse its own inverse.
func (b Buffer) Reverse() Buffer {
	if b.length == 0 {
		return Buffer{}
	}
	span := b.span()
	data := make([]byte, len(span))
	for i, x := range span {
		data[i] = bits.Reverse8(x)
	}
	return Buffer{
		data:   data,
		offset: (8 - (b.offset+b.length)%8) % 8,
		length: b.length,
	}
}

// Invert returns a Buffer with every bit flipped.
func (b Buffer) Invert() Buffer {
	span := b.span()
	data := make([]byte, len(span))
	for i, x := range span {
		data[i] = x ^ 0xff
	}
	return Buffer{data: data, offset: b.offset % 8, length: b.length}
}

// InvertBit returns a Buffer with the bit at index i flipped.
func (b Buffer) InvertBit(i uint64) (Buffer, error) {
	if i >= b.length {
		return Buffer{}, OutOfBoundsError{Index: i, Length: b.length}
	}
	out := b.private()
	p := i + out.offset
	out.data[p/8] ^= 0x80 >> (p % 8)
	return out, nil
}

// Set returns a Buffer with the bit at index i set to value.
func (b Buffer) Set(i uint64, value bool) (Buffer, error) {
	if i >= b.length {
		return Buffer{}, OutOfBoundsError{Index: i, Length: b.length}
	}
	out := b.private()
	p := i + out.offset
	if value {
		out.data[p/8] |= 0x80 >> (p % 8)
	} else {
		out.data[p/8] &^= 0x80 >> (p % 8)
	}
	return out, nil
}

// private returns b over a copy of its spanned bytes.
func (b Buffer) private() Buffer {
	return Buffer{
		data:   b.data.clip(b.startByte(), b.endByte()),
		offset: b.offset % 8,
		length: b.length,
	}
}
