package bitbuf

// store is the byte array behind one or more Buffers. Stores are never
// written after construction; the garbage collector releases one when the
// last Buffer viewing it is dropped.
type store []byte

// clip returns a private copy of data[from:to].
func (s store) clip(from, to uint64) store {
	out := make(store, to-from)
	copy(out, s[from:to])
	return out
}

func (s store) bits() uint64 {
	return uint64(len(s)) * 8
}

// headMask keeps the bits of the first byte at or after bit offset head.
func headMask(head uint64) byte {
	return 0xff >> head
}

// tailMask keeps the bits of the last byte before bit position tail
// (0 meaning the whole byte is used).
func tailMask(tail uint64) byte {
	if tail == 0 {
		return 0xff
	}
	return 0xff << (8 - tail)
}

// clean clears every bit outside [head, head+length) of a span that starts at
// sub-byte offset head.
func clean(span []byte, head, length uint64) {
	if len(span) == 0 {
		return
	}
	span[0] &= headMask(head)
	span[len(span)-1] &= tailMask((head + length) % 8)
}
