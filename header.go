package huffzip

import (
	"encoding/binary"
	"io"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/consensys/huffzip/huffman"
)

const (
	// Version is the current release version of the compressed format.
	Version = 1

	headerFixedSize = 2 + 8 + 8 // version, original length, number of symbols
	headerEntrySize = 1 + 8     // symbol, frequency
)

// Header is the header of compressed data.
// It carries everything needed to rebuild the Huffman tree used by the compressor:
//
//	uint16 version | uint64 original length | uint64 number of symbols | (byte symbol, uint64 frequency)...
//
// all big endian, symbols in ascending order. The payload follows, byte aligned.
type Header struct {
	Version uint16 // compressed format version
	Length  uint64 // length of the uncompressed data
	Freqs   huffman.Frequencies
}

// HeaderSize is the size in bytes of a header listing nbSymbols symbols.
func HeaderSize(nbSymbols int) int {
	return headerFixedSize + nbSymbols*headerEntrySize
}

// Size is the serialized size of h.
func (h *Header) Size() int {
	return HeaderSize(h.Freqs.Distinct())
}

func (h *Header) WriteTo(w io.Writer) (int64, error) {
	b := make([]byte, 0, h.Size())
	b = binary.BigEndian.AppendUint16(b, h.Version)
	b = binary.BigEndian.AppendUint64(b, h.Length)
	b = binary.BigEndian.AppendUint64(b, uint64(h.Freqs.Distinct()))
	for s, f := range h.Freqs {
		if f != 0 {
			b = append(b, byte(s))
			b = binary.BigEndian.AppendUint64(b, f)
		}
	}

	n, err := w.Write(b)
	return int64(n), err
}

// ReadFrom parses a header and checks its consistency:
// symbols are listed at most once, in ascending order, with non-zero frequencies summing up to Length.
// It reads no more than the header itself. The version is not checked.
func (h *Header) ReadFrom(r io.Reader) (int64, error) {
	var b [headerFixedSize]byte
	n, err := io.ReadFull(r, b[:])
	if err != nil {
		return int64(n), errors.Wrap(ErrTruncated, "header")
	}

	h.Version = binary.BigEndian.Uint16(b[:2])
	h.Length = binary.BigEndian.Uint64(b[2:10])
	nbSymbols := binary.BigEndian.Uint64(b[10:])
	if nbSymbols > huffman.NbSymbols {
		return int64(n), errors.Wrapf(ErrCorrupt, "header lists %d symbols", nbSymbols)
	}

	h.Freqs = huffman.Frequencies{}
	var (
		entry [headerEntrySize]byte
		total uint64
		carry uint64
		last  = -1
	)
	for i := 0; i < int(nbSymbols); i++ {
		m, err := io.ReadFull(r, entry[:])
		n += m
		if err != nil {
			return int64(n), errors.Wrapf(ErrTruncated, "header entry %d", i)
		}
		s, f := entry[0], binary.BigEndian.Uint64(entry[1:])
		if int(s) <= last {
			return int64(n), errors.Wrapf(ErrCorrupt, "header entry %d: symbol %#02x out of order", i, s)
		}
		if f == 0 {
			return int64(n), errors.Wrapf(ErrCorrupt, "header entry %d: zero frequency", i)
		}
		h.Freqs[s] = f
		last = int(s)
		if total, carry = bits.Add64(total, f, 0); carry != 0 {
			return int64(n), errors.Wrap(ErrCorrupt, "header frequencies overflow")
		}
	}

	if total != h.Length {
		return int64(n), errors.Wrapf(ErrCorrupt, "header frequencies sum up to %d, expected %d", total, h.Length)
	}

	return int64(n), nil
}
