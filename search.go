package bitbuf

// matcher compares a needle against candidate positions of a haystack. The
// needle is rebased once per sub-byte offset, so each comparison is a plain
// byte compare.
type matcher struct {
	needle  Buffer
	shifted [8][]byte
	ready   [8]bool
}

func newMatcher(needle Buffer) *matcher {
	return &matcher{needle: needle}
}

func (m *matcher) matchAt(haystack Buffer, pos uint64) bool {
	if m.needle.length == 0 {
		return true
	}
	candidate := haystack.view(pos, pos+m.needle.length)
	head := candidate.offset % 8
	if !m.ready[head] {
		m.shifted[head] = m.needle.rebase(head).data
		m.ready[head] = true
	}
	return spanEqual(candidate.span(), m.shifted[head], head, m.needle.length)
}

// findFrom returns the first match at or after start. Aligned searches only
// consider positions that are multiples of 8.
func (b Buffer) findFrom(m *matcher, start uint64, aligned bool) (uint64, bool) {
	if m.needle.length > b.length {
		return 0, false
	}
	step := uint64(1)
	if aligned {
		step = 8
		start = (start + 7) / 8 * 8
	}
	last := b.length - m.needle.length
	for pos := start; pos <= last; pos += step {
		if m.matchAt(b, pos) {
			return pos, true
		}
	}
	return 0, false
}

// Find returns the bit position of the first occurrence of needle.
// If aligned is set only byte-aligned positions are considered.
func (b Buffer) Find(needle Buffer, aligned bool) (uint64, bool) {
	return b.findFrom(newMatcher(needle), 0, aligned)
}

// RFind returns the bit position of the last occurrence of needle.
// If aligned is set only byte-aligned positions are considered.
func (b Buffer) RFind(needle Buffer, aligned bool) (uint64, bool) {
	if needle.length > b.length {
		return 0, false
	}
	m := newMatcher(needle)
	step := uint64(1)
	pos := b.length - needle.length
	if aligned {
		step = 8
		pos -= pos % 8
	}
	for {
		if m.matchAt(b, pos) {
			return pos, true
		}
		if pos < step {
			return 0, false
		}
		pos -= step
	}
}

// FindAll returns an iterator over the start positions of needle in b, in
// increasing order. After each match the search resumes one bit past the
// match start, so overlapping occurrences are reported.
func (b Buffer) FindAll(needle Buffer, aligned bool) *Matches {
	return &Matches{
		haystack: b,
		matcher:  newMatcher(needle),
		aligned:  aligned,
	}
}

// Matches iterates over match positions. It is not safe for concurrent use.
// The zero value yields no matches; use FindAll to get a useful one.
type Matches struct {
	haystack Buffer
	matcher  *matcher
	aligned  bool
	next     uint64
	done     bool
}

// Next returns the next match position, or false once the haystack is
// exhausted.
func (it *Matches) Next() (uint64, bool) {
	if it.done || it.matcher == nil {
		return 0, false
	}
	pos, ok := it.haystack.findFrom(it.matcher, it.next, it.aligned)
	if !ok {
		it.done = true
		return 0, false
	}
	it.next = pos + 1
	return pos, true
}

// Reset restarts the iteration from the beginning of the haystack.
func (it *Matches) Reset() {
	it.next = 0
	it.done = false
}

// All collects every remaining match position.
func (it *Matches) All() []uint64 {
	var positions []uint64
	for {
		pos, ok := it.Next()
		if !ok {
			return positions
		}
		positions = append(positions, pos)
	}
}
