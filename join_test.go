package bitbuf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitbuf"
)

func mustBin(t *testing.T, s string) bitbuf.Buffer {
	t.Helper()
	b, err := bitbuf.FromBin(s)
	require.NoError(t, err)
	return b
}

func mustHex(t *testing.T, s string) bitbuf.Buffer {
	t.Helper()
	b, err := bitbuf.FromHex(s)
	require.NoError(t, err)
	return b
}

func mustZeros(t *testing.T, length uint64) bitbuf.Buffer {
	t.Helper()
	b, err := bitbuf.FromZeros(length)
	require.NoError(t, err)
	return b
}

func mustOnes(t *testing.T, length uint64) bitbuf.Buffer {
	t.Helper()
	b, err := bitbuf.FromOnes(length)
	require.NoError(t, err)
	return b
}

func mustSlice(t *testing.T, b bitbuf.Buffer, start, end uint64) bitbuf.Buffer {
	t.Helper()
	s, err := b.Slice(start, end)
	require.NoError(t, err)
	return s
}

func TestJoin_WholeBytes(t *testing.T) {
	req := require.New(t)

	b1, err := bitbuf.New([]byte{5, 10, 20}, 0, 24)
	req.NoError(err)
	b2 := bitbuf.FromBytes([]byte{30, 40, 50})
	j := bitbuf.Join(b1, b2, b1)
	req.Equal([]byte{5, 10, 20, 30, 40, 50, 5, 10, 20}, j.Data())
	req.Equal(uint64(0), j.Offset())
	req.Equal(uint64(72), j.Len())
}

func TestJoin_SingleBits(t *testing.T) {
	req := require.New(t)

	b1 := mustBin(t, "1")
	b2 := mustBin(t, "0")
	j := bitbuf.Join(b1, b2, b1)
	req.Equal(uint64(0), j.Offset())
	req.Equal(uint64(3), j.Len())
	req.Equal([]byte{0b10100000}, j.Data())

	b3 := mustBin(t, "11111111")
	j = bitbuf.Join(b2, b3)
	req.Equal(uint64(9), j.Len())
	req.Equal([]byte{0b01111111, 0b10000000}, j.Data())

	j = bitbuf.Join(b3, b2, b3)
	req.Equal(uint64(17), j.Len())
	req.True(j.Equal(mustBin(t, "11111111011111111")))
	req.Equal(mustBin(t, "11111111011111111").Data(), j.Data())
}

func TestJoin_Mixed(t *testing.T) {
	req := require.New(t)

	b1 := mustHex(t, "abcdef")
	b2 := mustBin(t, "01")
	b3 := bitbuf.Join(b1, b2, b1, b2)
	h, err := b3.ToHex()
	req.NoError(err)
	req.Equal("abcdef6af37bd", h)

	inner := mustSlice(t, b3, b1.Len()+2, b3.Len()-2)
	h, err = inner.ToHex()
	req.NoError(err)
	req.Equal("abcdef", h)
}

func TestJoin_EdgeCases(t *testing.T) {
	req := require.New(t)

	j := bitbuf.Join()
	req.Equal(uint64(0), j.Len())
	req.True(j.Equal(mustZeros(t, 0)))

	b := mustSlice(t, mustHex(t, "0123456789"), 13, 31)
	j = bitbuf.Join(b)
	req.True(j.Equal(b))
	req.Equal(b.Offset(), j.Offset())

	empty := mustZeros(t, 0)
	j = bitbuf.Join(empty, mustBin(t, "101"), empty, mustBin(t, "1"), empty)
	req.Equal("1011", j.ToBin())
	req.Equal([]byte{0xb0}, j.Data())

	// The first Buffer's sub-byte offset is kept.
	j = bitbuf.Join(b, b)
	req.Equal(b.ToBin()+b.ToBin(), j.ToBin())
	req.Equal(b.Offset()%8, j.Offset())
}

func TestJoin_Padding(t *testing.T) {
	req := require.New(t)

	// Stored bits outside the views must not leak into the result.
	ones := mustOnes(t, 24)
	zeros := mustZeros(t, 24)
	j := bitbuf.Join(mustSlice(t, zeros, 0, 3), mustSlice(t, ones, 5, 7), mustSlice(t, zeros, 9, 12))
	req.Equal("00011000", j.ToBin())
	req.Equal([]byte{0x18}, j.Data())
}
