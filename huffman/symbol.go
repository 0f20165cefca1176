package huffman

import "fmt"

// Symbol is what a tree node stands for: either a byte value (leaf) or nothing (internal node).
type Symbol struct {
	b    byte
	leaf bool
}

// Internal is the symbol of every internal node.
var Internal = Symbol{}

// Leaf returns the symbol of a leaf carrying b.
func Leaf(b byte) Symbol {
	return Symbol{b: b, leaf: true}
}

func (s Symbol) IsLeaf() bool {
	return s.leaf
}

// Byte returns the byte carried by a leaf symbol. ok is false for Internal.
func (s Symbol) Byte() (b byte, ok bool) {
	return s.b, s.leaf
}

func (s Symbol) String() string {
	if !s.leaf {
		return "internal"
	}
	return fmt.Sprintf("%#02x", s.b)
}
