package huffman

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// MaxCodeLength bounds the length of a code: a tree over 256 symbols is at most 255 deep.
const MaxCodeLength = NbSymbols - 1

// Entry is the code of one symbol.
type Entry struct {
	Used   bool  // whether the symbol occurs at all
	Length uint8 // number of bits in the code
	// Bits holds the code, root first: bit i is the i-th edge on the path to the leaf, set for a right edge.
	Bits *bitset.BitSet
	word uint64 // the code packed MSB first, valid when Length <= 64
}

func newEntry(code *bitset.BitSet, length uint8) Entry {
	e := Entry{Used: true, Length: length, Bits: code}
	if length <= 64 {
		for i := uint(0); i < uint(length); i++ {
			e.word <<= 1
			if code.Test(i) {
				e.word |= 1
			}
		}
	}
	return e
}

// Bit returns the i-th bit of the code.
func (e *Entry) Bit(i int) bool {
	return e.Bits.Test(uint(i))
}

// HasPrefix reports whether o's code is a prefix of e's code.
func (e *Entry) HasPrefix(o *Entry) bool {
	if o.Length > e.Length {
		return false
	}
	for i := 0; i < int(o.Length); i++ {
		if e.Bit(i) != o.Bit(i) {
			return false
		}
	}
	return true
}

// String prints the code as a sequence of 0s and 1s.
func (e *Entry) String() string {
	var sb strings.Builder
	for i := 0; i < int(e.Length); i++ {
		if e.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Table holds the code of every byte value.
type Table [NbSymbols]Entry

// Table derives the code of every symbol by walking the tree depth first,
// appending a 0 for every left edge and a 1 for every right edge.
// A tree made of a single leaf gets the 1-bit code "0".
func (t *Tree) Table() *Table {
	var tbl Table

	if t.nodes[t.root].Symbol.IsLeaf() {
		b, _ := t.nodes[t.root].Symbol.Byte()
		tbl[b] = newEntry(bitset.New(1), 1)
		return &tbl
	}

	type frame struct {
		id    NodeID
		depth uint
		bit   bool // the edge leading to id
	}
	path := bitset.New(MaxCodeLength)
	stack := make([]frame, 1, MaxCodeLength+1)
	stack[0] = frame{id: t.root}

	// explicit stack: a maximally skewed tree is 255 levels deep
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > 0 {
			path.SetTo(f.depth-1, f.bit)
		}

		n := &t.nodes[f.id]
		if b, ok := n.Symbol.Byte(); ok {
			code := bitset.New(f.depth)
			for i := uint(0); i < f.depth; i++ {
				code.SetTo(i, path.Test(i))
			}
			tbl[b] = newEntry(code, uint8(f.depth))
			continue
		}

		// right first, so that the left subtree is walked first
		stack = append(stack,
			frame{id: n.Right, depth: f.depth + 1, bit: true},
			frame{id: n.Left, depth: f.depth + 1, bit: false},
		)
	}

	return &tbl
}

// NbUsed is the number of symbols with a code.
func (tbl *Table) NbUsed() int {
	n := 0
	for i := range tbl {
		if tbl[i].Used {
			n++
		}
	}
	return n
}

// IsPrefixFree reports whether no code is a prefix of another.
func (tbl *Table) IsPrefixFree() bool {
	for i := range tbl {
		for j := range tbl {
			if i != j && tbl[i].Used && tbl[j].Used && tbl[i].HasPrefix(&tbl[j]) {
				return false
			}
		}
	}
	return true
}

// BitLen is the number of bits needed to encode a text with the given frequencies.
func (tbl *Table) BitLen(freqs *Frequencies) (uint64, error) {
	var res uint64
	for s, f := range freqs {
		if f == 0 {
			continue
		}
		if !tbl[s].Used {
			return 0, errors.Wrapf(ErrUnknownSymbol, "symbol %#02x", s)
		}
		hi, lo := bits.Mul64(f, uint64(tbl[s].Length))
		var carry uint64
		if res, carry = bits.Add64(res, lo, 0); hi != 0 || carry != 0 {
			return 0, errors.WithStack(ErrFrequencyOverflow)
		}
	}
	return res, nil
}

// Symbols returns the used symbols, shortest codes first, ties by symbol value.
func (tbl *Table) Symbols() []byte {
	res := make([]byte, 0, NbSymbols)
	for s := range tbl {
		if tbl[s].Used {
			res = append(res, byte(s))
		}
	}
	slices.SortFunc(res, func(a, b byte) int {
		if la, lb := tbl[a].Length, tbl[b].Length; la != lb {
			return int(la) - int(lb)
		}
		return int(a) - int(b)
	})
	return res
}

// String lists the used codes, one "symbol length code" line each.
func (tbl *Table) String() string {
	var sb strings.Builder
	for _, s := range tbl.Symbols() {
		fmt.Fprintf(&sb, "%#02x %d %s\n", s, tbl[s].Length, tbl[s].String())
	}
	return sb.String()
}
