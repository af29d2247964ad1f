// Package bitbuf implements an immutable, bit-addressable buffer over packed
// binary data that need not be byte-aligned.
//
// A Buffer is a view of a shared byte store: a bit offset into the first
// stored byte plus a bit length. Slicing only adjusts the view, so it never
// copies. Every other operation (join, bitwise algebra, reversal, inversion,
// single-bit updates) returns a new Buffer and leaves its inputs untouched,
// which makes a Buffer safe to share between goroutines.
//
// Bits are numbered from the most-significant bit of each byte:
//
//	b, _ := bitbuf.FromHex("0f")
//	b.ToBin()   // "00001111"
//	s, _ := b.Slice(4, 8)
//	s.ToHex()   // "f"
//
// The one mutable type is Exclusive, obtained from Buffer.Exclusive, which
// flips bits in a private copy of the data and hands back a Buffer on Freeze.
package bitbuf
