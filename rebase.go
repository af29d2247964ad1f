package bitbuf

import (
	"fmt"
)

// rebase returns a copy of b with the same bits, shifted so that the first
// logical bit sits at bit newOffset of the first byte. Only the spanned bytes
// are kept, and bits outside the logical range are cleared.
//
// The output is always ceil((length + newOffset) / 8) bytes long. Every shift
// below is within [1,7]: equal offsets take the copy path.
func (b Buffer) rebase(newOffset uint64) Buffer {
	if newOffset >= 8 {
		panic(fmt.Sprintf("bitbuf: rebase offset %d is not a sub-byte offset", newOffset))
	}
	if b.length == 0 {
		return Buffer{}
	}

	src := b.span()
	head := b.offset % 8
	n := (b.length + newOffset + 7) / 8
	out := make([]byte, n)

	switch {
	case newOffset == head:
		copy(out, src)

	case newOffset < head:
		// src is n or n+1 bytes long.
		shift := head - newOffset
		for i := uint64(0); i < n-1; i++ {
			out[i] = src[i]<<shift | src[i+1]>>(8-shift)
		}
		out[n-1] = src[n-1] << shift
		if uint64(len(src)) > n {
			out[n-1] |= src[n] >> (8 - shift)
		}

	default:
		// src is n or n-1 bytes long.
		shift := newOffset - head
		out[0] = src[0] >> shift
		for i := 1; i < len(src); i++ {
			out[i] = src[i]>>shift | src[i-1]<<(8-shift)
		}
		if n > uint64(len(src)) {
			out[n-1] = src[len(src)-1] << (8 - shift)
		}
	}

	clean(out, newOffset, b.length)
	return Buffer{data: out, offset: newOffset, length: b.length}
}
