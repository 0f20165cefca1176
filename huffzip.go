// Package huffzip compresses byte buffers with a static Huffman code.
//
// The compressed data is a Header (the frequency of every byte value) followed by the Huffman-coded
// payload. Compressing an empty buffer yields an empty buffer, and vice versa.
package huffzip

import "github.com/pkg/errors"

var (
	ErrUnsupportedVersion = errors.New("unsupported compressed format version")
	// ErrTruncated is returned when the compressed data is shorter than its header declares.
	ErrTruncated = errors.New("compressed data is truncated")
	// ErrCorrupt is returned when the compressed data is inconsistent.
	ErrCorrupt = errors.New("compressed data is corrupt")
)
