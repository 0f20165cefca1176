package huffman

import (
	"github.com/consensys/huffzip/bitstream"
	"github.com/pkg/errors"
)

type Decoder struct {
	tree   *Tree
	src    []byte
	nbBits uint64 // number of readable bits of src
	pos    uint64
}

// NewDecoder creates a [Decoder] reading the first nbBits bits of src with the codes of tree.
// Nothing past bit nbBits (or past the end of src) is ever read.
func NewDecoder(tree *Tree, src []byte, nbBits uint64) *Decoder {
	nbBits = min(nbBits, 8*uint64(len(src)))
	return &Decoder{tree: tree, src: src, nbBits: nbBits}
}

// Read decodes exactly len(p) symbols into p.
// If the bits run out first, it returns the number of symbols decoded and ErrUnexpectedEnd.
func (d *Decoder) Read(p []byte) (n int, err error) {
	root := &d.tree.nodes[d.tree.root]

	if b, ok := root.Symbol.Byte(); ok {
		// single symbol; every occurrence is the code "0"
		for n = range p {
			if d.pos == d.nbBits {
				return n, errors.WithStack(ErrUnexpectedEnd)
			}
			if bitstream.GetBit(d.src, d.pos) {
				return n, errors.Wrapf(ErrInvalidCode, "at bit %d", d.pos)
			}
			d.pos++
			p[n] = b
		}
		return len(p), nil
	}

	for n = range p {
		cur := root
		for !cur.Symbol.IsLeaf() {
			if d.pos == d.nbBits {
				return n, errors.WithStack(ErrUnexpectedEnd)
			}
			if bitstream.GetBit(d.src, d.pos) {
				cur = &d.tree.nodes[cur.Right]
			} else {
				cur = &d.tree.nodes[cur.Left]
			}
			d.pos++
		}
		p[n], _ = cur.Symbol.Byte()
	}
	return len(p), nil
}

// Offset is the number of bits consumed so far.
func (d *Decoder) Offset() uint64 {
	return d.pos
}

// Remaining is the number of readable bits not consumed yet.
func (d *Decoder) Remaining() uint64 {
	return d.nbBits - d.pos
}
