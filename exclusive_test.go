package bitbuf_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitbuf"
)

func TestExclusive(t *testing.T) {
	req := require.New(t)

	b := mustBin(t, "0000")
	e := b.Exclusive()
	req.Equal(uint64(4), e.Len())
	req.NoError(e.Set(1, true))
	req.NoError(e.Invert(3))

	bit, err := e.Index(1)
	req.NoError(err)
	req.True(bit)

	frozen := e.Freeze()
	req.Equal("0101", frozen.ToBin())
	req.Equal("0000", b.ToBin())

	// Writes after Freeze copy again.
	req.NoError(e.Set(0, true))
	req.NoError(e.Set(1, false))
	req.Equal("0101", frozen.ToBin())
	req.Equal("1001", e.Freeze().ToBin())
}

func TestExclusive_View(t *testing.T) {
	req := require.New(t)

	b := mustHex(t, "0123456789")
	s := mustSlice(t, b, 12, 28)
	e := s.Exclusive()
	for i := uint64(0); i < e.Len(); i++ {
		req.NoError(e.Invert(i))
	}
	h, err := e.Freeze().ToHex()
	req.NoError(err)
	req.Equal("cba9", h)

	h, err = b.ToHex()
	req.NoError(err)
	req.Equal("0123456789", h)
}

func TestExclusive_OutOfBounds(t *testing.T) {
	req := require.New(t)

	e := mustZeros(t, 3).Exclusive()
	req.True(errors.Is(e.Set(3, true), bitbuf.ErrOutOfBounds))
	req.True(errors.Is(e.Invert(10), bitbuf.ErrOutOfBounds))
	_, err := e.Index(3)
	req.True(errors.Is(err, bitbuf.ErrOutOfBounds))
}
