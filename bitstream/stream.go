package bitstream

import (
	"bytes"
	"hash"

	"github.com/icza/bitio"
)

// Stream is an append-only sequence of bits backed by a byte buffer.
// Bits are packed MSB first, the same order GetBit reads them back in.
type Stream struct {
	bb     bytes.Buffer
	bw     *bitio.Writer
	nbBits uint64
	closed bool
}

// NewStream returns an empty stream with room for about sizeHint bytes.
func NewStream(sizeHint int) *Stream {
	s := &Stream{}
	s.bb.Grow(sizeHint)
	s.bw = bitio.NewWriter(&s.bb)
	return s
}

// Write appends 8 bits per byte of p, whatever the current alignment.
// It implements io.Writer so that a header can be written in front of the payload.
func (s *Stream) Write(p []byte) (n int, err error) {
	for n = range p {
		if err = s.bw.WriteByte(p[n]); err != nil {
			return
		}
		s.nbBits += 8
	}
	return len(p), nil
}

// TryWriteBits appends the nbBits least significant bits of v, most significant first.
// Errors are recorded and reported by Err and Close.
func (s *Stream) TryWriteBits(v uint64, nbBits uint8) {
	s.bw.TryWriteBits(v, nbBits)
	s.nbBits += uint64(nbBits)
}

// TryWriteBool appends a single bit.
func (s *Stream) TryWriteBool(b bool) {
	s.bw.TryWriteBool(b)
	s.nbBits++
}

// Len is the number of bits written so far, padding excluded.
func (s *Stream) Len() uint64 {
	return s.nbBits
}

// Err returns the first error encountered by a Try write, if any.
func (s *Stream) Err() error {
	return s.bw.TryError
}

// Close pads the last byte with zero bits and flushes it.
// The stream must not be written to afterwards.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.bw.TryError; err != nil {
		return err
	}
	return s.bw.Close()
}

// Bytes returns the packed content. Unless the stream is closed, a trailing partial byte is not included.
// This returns the internal buffer, so it should not be modified
func (s *Stream) Bytes() []byte {
	return s.bb.Bytes()
}

// Checksum closes the stream and hashes its packed content.
func (s *Stream) Checksum(hsh hash.Hash) ([]byte, error) {
	if err := s.Close(); err != nil {
		return nil, err
	}
	hsh.Write(s.bb.Bytes())
	return hsh.Sum(nil), nil
}

// ByteLen is the number of bytes needed to hold nbBits bits.
func ByteLen(nbBits uint64) uint64 {
	return (nbBits + 7) / 8
}
