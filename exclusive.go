package bitbuf

// Exclusive is the single mutable form of a Buffer, used to flip individual
// bits. It copies the data before the first write, so the Buffer it came from
// is never modified. It cannot be sliced; call Freeze to get a Buffer back.
//
// An Exclusive must not be used from more than one goroutine at a time.
type Exclusive struct {
	data   store
	offset uint64
	length uint64
	owned  bool
}

// Exclusive returns a mutable copy-on-write handle over b's bits.
func (b Buffer) Exclusive() *Exclusive {
	return &Exclusive{data: b.data, offset: b.offset, length: b.length}
}

func (e *Exclusive) Len() uint64 {
	return e.length
}

func (e *Exclusive) Index(i uint64) (bool, error) {
	return e.buffer().Index(i)
}

// Set sets the bit at index i to value.
func (e *Exclusive) Set(i uint64, value bool) error {
	if i >= e.length {
		return OutOfBoundsError{Index: i, Length: e.length}
	}
	e.own()
	p := i + e.offset
	if value {
		e.data[p/8] |= 0x80 >> (p % 8)
	} else {
		e.data[p/8] &^= 0x80 >> (p % 8)
	}
	return nil
}

// Invert flips the bit at index i.
func (e *Exclusive) Invert(i uint64) error {
	if i >= e.length {
		return OutOfBoundsError{Index: i, Length: e.length}
	}
	e.own()
	p := i + e.offset
	e.data[p/8] ^= 0x80 >> (p % 8)
	return nil
}

// Freeze returns the current bits as an immutable Buffer. Later writes to e
// copy the data again and do not show through the returned Buffer.
func (e *Exclusive) Freeze() Buffer {
	e.owned = false
	return e.buffer()
}

func (e *Exclusive) buffer() Buffer {
	return Buffer{data: e.data, offset: e.offset, length: e.length}
}

// own replaces the shared store with a private copy of the spanned bytes.
func (e *Exclusive) own() {
	if e.owned {
		return
	}
	b := e.buffer().private()
	e.data, e.offset, e.owned = b.data, b.offset, true
}
