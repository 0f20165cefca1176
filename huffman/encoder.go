package huffman

import "github.com/pkg/errors"

// BitWriter is the bit sink of an Encoder. Both *bitio.Writer and *bitstream.Stream satisfy it.
type BitWriter interface {
	TryWriteBits(v uint64, nbBits uint8)
	TryWriteBool(b bool)
}

type Encoder struct {
	w BitWriter
	t *Table
}

// NewEncoder creates an [Encoder] from a code [Table] and a [BitWriter].
// The [Encoder] will not own the writer. Interleaved writes are permitted.
// The [Table] is not duplicated, so any modifications will be reflected in future writes.
func NewEncoder(t *Table, w BitWriter) *Encoder {
	return &Encoder{t: t, w: w}
}

// Write implements [io.Writer], writing the code of every byte of p.
// Errors of the underlying writer are left to its own error reporting.
func (e *Encoder) Write(p []byte) (n int, err error) {
	for n = range p {
		c := &e.t[p[n]]
		if !c.Used {
			return n, errors.Wrapf(ErrUnknownSymbol, "symbol %#02x", p[n])
		}
		if c.Length <= 64 {
			e.w.TryWriteBits(c.word, c.Length)
			continue
		}
		for i := 0; i < int(c.Length); i++ {
			e.w.TryWriteBool(c.Bit(i))
		}
	}
	return len(p), nil
}

// BitCounter is a BitWriter that only counts bits.
type BitCounter struct {
	nbBits uint64
}

func (b *BitCounter) TryWriteBits(_ uint64, nbBits uint8) {
	b.nbBits += uint64(nbBits)
}

func (b *BitCounter) TryWriteBool(_ bool) {
	b.nbBits++
}

// Len is the number of bits written so far.
func (b *BitCounter) Len() uint64 {
	return b.nbBits
}

func (b *BitCounter) Reset() {
	b.nbBits = 0
}
