package bitbuf_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitbuf"
)

func TestAnd(t *testing.T) {
	req := require.New(t)

	a, err := mustHex(t, "f0f").And(mustHex(t, "123"))
	req.NoError(err)
	req.True(a.Equal(mustHex(t, "103")))
	h, err := a.ToHex()
	req.NoError(err)
	req.Equal("103", h)

	// Operands at different offsets.
	left := mustSlice(t, mustHex(t, "00ff00"), 4, 20)
	a, err = left.And(mustHex(t, "aaaa"))
	req.NoError(err)
	h, err = a.ToHex()
	req.NoError(err)
	req.Equal("0aa0", h)
	req.Equal(uint64(16), a.Len())
}

func TestOrXor(t *testing.T) {
	req := require.New(t)

	o, err := mustHex(t, "f0f").Or(mustHex(t, "123"))
	req.NoError(err)
	h, err := o.ToHex()
	req.NoError(err)
	req.Equal("f2f", h)

	x, err := mustHex(t, "f0f").Xor(mustHex(t, "123"))
	req.NoError(err)
	h, err = x.ToHex()
	req.NoError(err)
	req.Equal("e2c", h)

	x, err = mustSlice(t, mustBin(t, "1110011"), 1, 6).Xor(mustBin(t, "11111"))
	req.NoError(err)
	req.Equal("00110", x.ToBin())
}

func TestAlgebra_LengthMismatch(t *testing.T) {
	req := require.New(t)

	_, err := mustHex(t, "f").And(mustHex(t, "ff"))
	req.True(errors.Is(err, bitbuf.ErrLengthMismatch))
	req.Equal(bitbuf.LengthMismatchError{Left: 4, Right: 8}, err)

	_, err = mustHex(t, "f").Or(mustZeros(t, 0))
	req.True(errors.Is(err, bitbuf.ErrLengthMismatch))

	e, err := mustZeros(t, 0).Xor(mustOnes(t, 0))
	req.NoError(err)
	req.Equal(uint64(0), e.Len())
}

func TestJoinReverseAnd(t *testing.T) {
	req := require.New(t)

	c := bitbuf.Join(mustZeros(t, 4), mustOnes(t, 4))
	req.Equal("00001111", c.ToBin())
	d := c.Reverse()
	req.Equal("11110000", d.ToBin())
	e, err := c.And(d)
	req.NoError(err)
	req.Equal("00000000", e.ToBin())
}

func TestCount(t *testing.T) {
	req := require.New(t)

	req.Equal(uint64(9), mustOnes(t, 9).CountOnes())
	req.Equal(uint64(0), mustOnes(t, 9).CountZeros())
	req.Equal(uint64(9), mustZeros(t, 9).CountZeros())

	// Only the viewed bits count.
	s := mustSlice(t, bitbuf.FromBytes([]byte{0xff}), 0, 4)
	req.Equal(uint64(4), s.CountOnes())
	s = mustSlice(t, bitbuf.FromBytes([]byte{0xf0, 0x0f}), 2, 14)
	req.Equal(uint64(4), s.CountOnes())
	req.Equal(uint64(8), s.CountZeros())

	req.Equal(uint64(0), mustZeros(t, 0).CountOnes())
}

func TestAllAny(t *testing.T) {
	req := require.New(t)

	req.True(mustOnes(t, 13).All())
	req.True(mustOnes(t, 13).Any())
	req.False(mustZeros(t, 13).Any())
	req.False(mustZeros(t, 13).All())

	s := mustSlice(t, bitbuf.FromBytes([]byte{0x0f, 0xf0}), 4, 12)
	req.True(s.All())
	s = mustSlice(t, bitbuf.FromBytes([]byte{0xf0, 0x0f}), 4, 12)
	req.False(s.Any())

	req.True(mustZeros(t, 0).All())
	req.False(mustZeros(t, 0).Any())
}

func TestReverse(t *testing.T) {
	req := require.New(t)

	req.Equal("1110100", mustBin(t, "0010111").Reverse().ToBin())

	// Bits are reversed within each byte; byte order is kept.
	h, err := mustHex(t, "0123").Reverse().ToHex()
	req.NoError(err)
	req.Equal("80c4", h)
	req.Equal([]byte{0x80, 0x40}, mustHex(t, "0102").Reverse().Data())

	s := mustSlice(t, mustHex(t, "0123456789"), 3, 29)
	r := s.Reverse()
	req.Equal(uint64(3), r.Offset())
	req.Equal("00000110001001010001011100", r.ToBin())
	req.True(r.Reverse().Equal(s))

	req.Equal(uint64(0), mustZeros(t, 0).Reverse().Len())

	// Within a single byte the result is the full reversal.
	b := mustHex(t, "b5")
	for start := uint64(0); start < 8; start++ {
		for end := start; end <= 8; end++ {
			sub := mustSlice(t, b, start, end)
			req.Equal(reverseString(sub.ToBin()), sub.Reverse().ToBin(), "[%d:%d]", start, end)
		}
	}
}

func TestInvert(t *testing.T) {
	req := require.New(t)

	b := mustBin(t, "0011")
	req.Equal("1100", b.Invert().ToBin())

	flipped, err := b.InvertBit(1)
	req.NoError(err)
	req.Equal("0111", flipped.ToBin())
	req.Equal("0011", b.ToBin())

	_, err = b.InvertBit(4)
	req.True(errors.Is(err, bitbuf.ErrOutOfBounds))

	s := mustSlice(t, mustHex(t, "00ff"), 6, 11)
	req.Equal("00111", s.ToBin())
	req.Equal("11000", s.Invert().ToBin())
	flipped, err = s.InvertBit(0)
	req.NoError(err)
	req.Equal("10111", flipped.ToBin())
}

func TestSet(t *testing.T) {
	req := require.New(t)

	b := mustBin(t, "0011")
	set, err := b.Set(2, false)
	req.NoError(err)
	req.Equal("0001", set.ToBin())

	set, err = b.Set(0, true)
	req.NoError(err)
	req.Equal("1011", set.ToBin())

	set, err = b.Set(3, true)
	req.NoError(err)
	req.True(set.Equal(b))
	req.Equal("0011", b.ToBin())

	_, err = b.Set(4, true)
	req.Equal(bitbuf.OutOfBoundsError{Index: 4, Length: 4}, err)
}

func reverseString(s string) string {
	r := []byte(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
