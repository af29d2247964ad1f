package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spacemeshos/bitbuf"
	"github.com/spacemeshos/bitbuf/config"
)

var errNoPrefix = errors.New("value must start with 0x, 0b or 0o")

// parseValue reads a literal such as 0xdeadbeef, 0b1011 or 0o17, optionally
// followed by a bit range: 0xdeadbeef[4:12].
func parseValue(s string) (bitbuf.Buffer, error) {
	lit, rng, hasRange := strings.Cut(s, "[")

	var b bitbuf.Buffer
	var err error
	switch {
	case strings.HasPrefix(lit, "0x"):
		b, err = bitbuf.FromHex(lit[2:])
	case strings.HasPrefix(lit, "0b"):
		b, err = bitbuf.FromBin(lit[2:])
	case strings.HasPrefix(lit, "0o"):
		b, err = bitbuf.FromOct(lit[2:])
	default:
		return bitbuf.Buffer{}, fmt.Errorf("parse %q: %w", s, errNoPrefix)
	}
	if err != nil {
		return bitbuf.Buffer{}, fmt.Errorf("parse %q: %w", s, err)
	}
	if !hasRange {
		return b, nil
	}

	start, end, err := parseRange(rng, b.Len())
	if err != nil {
		return bitbuf.Buffer{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return b.Slice(start, end)
}

// parseRange reads "start:end]". Either bound may be omitted.
func parseRange(s string, length uint64) (uint64, uint64, error) {
	body, ok := strings.CutSuffix(s, "]")
	if !ok {
		return 0, 0, errors.New("unterminated range")
	}
	lo, hi, ok := strings.Cut(body, ":")
	if !ok {
		return 0, 0, fmt.Errorf("range %q: expected start:end", body)
	}

	start, end := uint64(0), length
	var err error
	if lo != "" {
		if start, err = strconv.ParseUint(lo, 10, 64); err != nil {
			return 0, 0, err
		}
	}
	if hi != "" {
		if end, err = strconv.ParseUint(hi, 10, 64); err != nil {
			return 0, 0, err
		}
	}
	return start, end, nil
}

// formatValue renders b as a prefixed literal that parseValue accepts.
func formatValue(b bitbuf.Buffer, format string) (string, error) {
	if format == config.FormatAuto {
		format = config.FormatBin
		if b.Len()%4 == 0 {
			format = config.FormatHex
		}
	}

	switch format {
	case config.FormatHex:
		s, err := b.ToHex()
		return "0x" + s, err
	case config.FormatOct:
		s, err := b.ToOct()
		return "0o" + s, err
	case config.FormatBin:
		return "0b" + b.ToBin(), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// preview renders at most maxBits of b, marking truncated output with "...".
func preview(b bitbuf.Buffer, format string, maxBits uint64) (string, error) {
	if b.Len() <= maxBits {
		return formatValue(b, format)
	}

	// Keep whole digits of the chosen radix.
	n := maxBits
	switch format {
	case config.FormatAuto, config.FormatHex:
		n -= n % 4
	case config.FormatOct:
		n -= n % 3
	}
	head, err := b.Slice(0, n)
	if err != nil {
		return "", err
	}
	s, err := formatValue(head, format)
	if err != nil {
		return "", err
	}
	return s + "...", nil
}
