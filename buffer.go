package bitbuf

import (
	"fmt"
	"math"
)

// maxDebugBits bounds the number of bits rendered by String.
const maxDebugBits = 100

// Buffer holds an arbitrary amount of binary data. The data lives in a shared
// byte store and does not need to be a multiple of 8 bits: a bit offset into
// the first stored byte and a bit length select the logical bits.
//
// The zero value is an empty Buffer.
type Buffer struct {
	data   store
	offset uint64
	length uint64
}

// New returns a Buffer over length bits of data starting at bit offset.
// Only the bytes spanned by the bits are kept, and the offset is reduced
// to the first spanned byte. data is copied.
func New(data []byte, offset, length uint64) (Buffer, error) {
	capacity := store(data).bits()
	if length > math.MaxUint64-offset || offset+length > capacity {
		end := offset + length
		if length > math.MaxUint64-offset {
			end = math.MaxUint64
		}
		return Buffer{}, InvalidLengthError{End: end, Capacity: capacity}
	}

	b := Buffer{data: store(data), offset: offset, length: length}
	return b.private(), nil
}

// FromBytes returns a Buffer over all bits of data. data is copied.
func FromBytes(data []byte) Buffer {
	s := make(store, len(data))
	copy(s, data)
	return Buffer{data: s, length: s.bits()}
}

// MaxLen is the largest bit length FromZeros and FromOnes accept: longer
// lengths cannot be rounded up to whole bytes in a uint64.
const MaxLen = math.MaxUint64 - 7

// FromZeros returns a Buffer of length unset bits.
func FromZeros(length uint64) (Buffer, error) {
	if length > MaxLen {
		return Buffer{}, InvalidLengthError{End: length, Capacity: MaxLen}
	}
	return Buffer{data: make(store, (length+7)/8), length: length}, nil
}

// FromOnes returns a Buffer of length set bits.
func FromOnes(length uint64) (Buffer, error) {
	if length > MaxLen {
		return Buffer{}, InvalidLengthError{End: length, Capacity: MaxLen}
	}
	s := make(store, (length+7)/8)
	for i := range s {
		s[i] = 0xff
	}
	return Buffer{data: s, length: length}, nil
}

// Len returns the length of the Buffer in bits.
func (b Buffer) Len() uint64 {
	return b.length
}

// Offset returns the bit offset of the logical data within the stored bytes.
func (b Buffer) Offset() uint64 {
	return b.offset
}

// Data returns a copy of the raw stored bytes. The offset and length
// govern which of these bits are the actual binary data.
func (b Buffer) Data() []byte {
	return b.data.clip(0, uint64(len(b.data)))
}

// Index returns the bit at bit index i.
func (b Buffer) Index(i uint64) (bool, error) {
	if i >= b.length {
		return false, OutOfBoundsError{Index: i, Length: b.length}
	}
	p := i + b.offset
	return b.data[p/8]&(0x80>>(p%8)) != 0, nil
}

// Slice returns a view of the bits [start, end). The view shares the
// stored bytes.
func (b Buffer) Slice(start, end uint64) (Buffer, error) {
	if end > b.length {
		return Buffer{}, OutOfBoundsError{Index: end, Length: b.length}
	}
	if start > end {
		return Buffer{}, OutOfBoundsError{Index: start, Length: b.length}
	}
	return b.view(start, end), nil
}

func (b Buffer) view(start, end uint64) Buffer {
	return Buffer{data: b.data, offset: b.offset + start, length: end - start}
}

// Trim returns a Buffer with any stored bytes outside the logical bits
// released. Use it to stop a small slice from pinning a large store.
func (b Buffer) Trim() Buffer {
	if b.offset < 8 && b.endByte() == uint64(len(b.data)) {
		return b
	}
	return b.private()
}

// Equal reports whether b and other hold the same bits, regardless of how
// they are stored.
func (b Buffer) Equal(other Buffer) bool {
	if b.length != other.length {
		return false
	}
	if b.length == 0 {
		return true
	}
	head := b.offset % 8
	right := other.span()
	if other.offset%8 != head {
		right = other.rebase(head).data
	}
	return spanEqual(b.span(), right, head, b.length)
}

// String renders the Buffer for debugging: hex when the length is a whole
// number of nibbles, binary otherwise, clipped to the first 100 bits.
func (b Buffer) String() string {
	if b.length > maxDebugBits {
		h, _ := b.view(0, maxDebugBits).ToHex()
		return fmt.Sprintf("Buffer{hex: %q, length: %d}", h, b.length)
	}
	if b.length%4 == 0 {
		h, _ := b.ToHex()
		return fmt.Sprintf("Buffer{hex: %q, length: %d}", h, b.length)
	}
	return fmt.Sprintf("Buffer{bin: %q, length: %d}", b.ToBin(), b.length)
}

// startByte returns the index of the first stored byte holding logical bits.
func (b Buffer) startByte() uint64 {
	return b.offset / 8
}

// endByte returns the index one past the last stored byte holding logical bits.
func (b Buffer) endByte() uint64 {
	return (b.offset + b.length + 7) / 8
}

// span returns the stored bytes holding logical bits, without copying.
func (b Buffer) span() []byte {
	return b.data[b.startByte():b.endByte()]
}

// spanEqual compares two spans that start at the same sub-byte offset head,
// ignoring bits outside the length logical bits.
func spanEqual(left, right []byte, head, length uint64) bool {
	last := len(left) - 1
	tail := tailMask((head + length) % 8)
	for i := range left {
		x, y := left[i], right[i]
		if i == 0 {
			x &= headMask(head)
			y &= headMask(head)
		}
		if i == last {
			x &= tail
			y &= tail
		}
		if x != y {
			return false
		}
	}
	return true
}
