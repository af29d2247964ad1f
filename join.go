package bitbuf

// Join returns the concatenation of bufs as a single Buffer backed by a new
// store. Joining nothing gives an empty Buffer, equal to FromZeros(0), and
// joining a single Buffer returns it unchanged.
func Join(bufs ...Buffer) Buffer {
	switch len(bufs) {
	case 0:
		return Buffer{}
	case 1:
		return bufs[0]
	}

	first := bufs[0].rebase(bufs[0].offset % 8)
	offset := first.offset
	length := first.length

	total := offset
	for _, b := range bufs {
		total += b.length
	}
	data := make([]byte, 0, (total+7)/8)
	data = append(data, first.data...)

	// Each following Buffer is shifted to start where the previous one ends
	// within its final byte.
	for _, b := range bufs[1:] {
		if b.length == 0 {
			continue
		}
		extraBits := (length + offset) % 8
		shifted := b.rebase(extraBits)
		if extraBits == 0 {
			data = append(data, shifted.data...)
		} else {
			// The first extraBits come from the last byte of data, the rest
			// from the first byte of shifted.
			last := len(data) - 1
			data[last] = data[last]&^(0xff>>extraBits) | shifted.data[0]&(0xff>>extraBits)
			data = append(data, shifted.data[1:]...)
		}
		length += b.length
	}

	return Buffer{data: data, offset: offset, length: length}
}
