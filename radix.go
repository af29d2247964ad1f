package bitbuf

import (
	"bytes"
	"strings"

	hex "github.com/tmthrgd/go-hex"

	"github.com/spacemeshos/bitbuf/bitstream"
)

// FromHex returns a Buffer of 4 bits per hex digit. An odd number of digits
// is padded with a zero nibble in storage; the length counts only the digits
// given.
func FromHex(s string) (Buffer, error) {
	padded := s
	if len(s)%2 != 0 {
		padded += "0"
	}
	data, err := hex.DecodeString(padded)
	if err != nil {
		return Buffer{}, DecodeError{Err: err}
	}
	return Buffer{data: data, length: uint64(len(s)) * 4}, nil
}

// FromBin returns a Buffer of one bit per '0' or '1' character.
func FromBin(s string) (Buffer, error) {
	var out bytes.Buffer
	out.Grow((len(s) + 7) / 8)
	w := bitstream.NewWriter(&out)

	for i, c := range s {
		var bit bitstream.Bit
		switch c {
		case '0':
			bit = bitstream.Zero
		case '1':
			bit = bitstream.One
		default:
			return Buffer{}, InvalidCharacterError{Char: c, Pos: i}
		}
		if err := w.WriteBit(bit); err != nil {
			return Buffer{}, err
		}
	}
	if err := w.Flush(bitstream.Zero); err != nil {
		return Buffer{}, err
	}

	return Buffer{data: out.Bytes(), length: w.Written()}, nil
}

// FromOct returns a Buffer of 3 bits per octal digit.
func FromOct(s string) (Buffer, error) {
	var out bytes.Buffer
	out.Grow((len(s)*3 + 7) / 8)
	w := bitstream.NewWriter(&out)

	for i, c := range s {
		if c < '0' || c > '7' {
			return Buffer{}, InvalidCharacterError{Char: c, Pos: i}
		}
		if err := w.WriteBits(uint64(c-'0'), 3); err != nil {
			return Buffer{}, err
		}
	}
	if err := w.Flush(bitstream.Zero); err != nil {
		return Buffer{}, err
	}

	return Buffer{data: out.Bytes(), length: w.Written()}, nil
}

// ToBin returns the bits as a string of '0' and '1' characters.
func (b Buffer) ToBin() string {
	if b.length == 0 {
		return ""
	}
	span := b.span()
	var sb strings.Builder
	sb.Grow(len(span) * 8)
	for _, x := range span {
		for shift := 7; shift >= 0; shift-- {
			sb.WriteByte('0' + x>>uint(shift)&1)
		}
	}
	head := b.offset % 8
	return sb.String()[head : head+b.length]
}

// ToHex returns the bits as lowercase hex digits. The length must be a
// multiple of 4.
func (b Buffer) ToHex() (string, error) {
	if b.length%4 != 0 {
		return "", RadixLengthError{Radix: "hex", Length: b.length, Group: 4}
	}
	if b.length == 0 {
		return "", nil
	}

	// Offsets of 0 and 4 start on a nibble, so the stored bytes can be
	// rendered directly.
	head := b.offset % 8
	var data []byte
	if head == 0 || head == 4 {
		data = b.span()
	} else {
		data = b.rebase(0).data
	}
	x := hex.EncodeToString(data)

	if head == 4 {
		if b.length%8 == 0 {
			return x[1 : len(x)-1], nil
		}
		return x[1:], nil
	}
	if b.length%8 == 0 {
		return x, nil
	}
	return x[:len(x)-1], nil
}

// ToOct returns the bits as octal digits. The length must be a multiple of 3.
func (b Buffer) ToOct() (string, error) {
	if b.length%3 != 0 {
		return "", RadixLengthError{Radix: "oct", Length: b.length, Group: 3}
	}
	if b.length == 0 {
		return "", nil
	}

	r := bitstream.NewReader(bytes.NewReader(b.rebase(0).data))
	var sb strings.Builder
	sb.Grow(int(b.length / 3))
	for i := uint64(0); i < b.length/3; i++ {
		d, err := r.ReadBits(3)
		if err != nil {
			return "", err
		}
		sb.WriteByte('0' + byte(d))
	}
	return sb.String(), nil
}

// Bytes returns the bits packed into bytes, starting at the MS bit of the
// first byte. A length that is not a multiple of 8 is rounded up, with the
// trailing bits of the last byte zeroed.
func (b Buffer) Bytes() []byte {
	if b.length == 0 {
		return []byte{}
	}
	return b.rebase(0).data
}
