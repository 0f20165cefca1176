// Package huffman builds minimum-redundancy prefix codes over the byte alphabet
// and encodes/decodes bit streams with them.
//
// Conventions shared by the builder, the code table and the decoder:
//   - the first tree popped from the queue becomes the left child, the second the right child;
//   - a left edge is a 0 bit, a right edge a 1 bit, codes are written root first;
//   - frequency ties are broken by creation order: leaves in ascending byte order, then internal nodes.
package huffman

import "github.com/pkg/errors"

var (
	ErrNoSymbols         = errors.New("no symbol has a non-zero frequency")
	ErrFrequencyOverflow = errors.New("frequency sum overflows 64 bits")
	ErrUnknownSymbol     = errors.New("symbol has no code")
	ErrUnexpectedEnd     = errors.New("bit stream ended in the middle of a code")
	ErrInvalidCode       = errors.New("bit sequence is not a code")
)
