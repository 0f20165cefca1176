package huffman

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// NbSymbols is the size of the alphabet: every byte value.
const NbSymbols = 256

// Frequencies maps every byte value to its number of occurrences.
type Frequencies [NbSymbols]uint64

// Count scans d once and returns the occurrences of each byte value.
func Count(d []byte) Frequencies {
	var f Frequencies
	for _, b := range d {
		f[b]++
	}
	return f
}

// Distinct is the number of byte values with a non-zero frequency.
func (f *Frequencies) Distinct() int {
	n := 0
	for _, c := range f {
		if c != 0 {
			n++
		}
	}
	return n
}

// Total is the sum of all frequencies, i.e. the length of the counted text.
func (f *Frequencies) Total() (uint64, error) {
	var total, carry uint64
	for _, c := range f {
		if total, carry = bits.Add64(total, c, 0); carry != 0 {
			return 0, errors.WithStack(ErrFrequencyOverflow)
		}
	}
	return total, nil
}

// Entropy is the Shannon bound, in bits, for the whole counted text:
// the sum over all symbols s of -f(s)·log2(f(s)/total).
// No prefix code can do better; a Huffman code is within one bit per symbol of it.
func (f *Frequencies) Entropy() float64 {
	var e float64
	for s := range f {
		e += f.SymbolEntropy(byte(s))
	}
	return e
}

// SymbolEntropy is the contribution of symbol s to Entropy.
// e.g. in "ABCBCBCJKUGRFCCCSYJIOIHICCC", 'C' appears 9 times out of 27
// and contributes 9·-log2(9/27) ≈ 14.26 bits.
func (f *Frequencies) SymbolEntropy(s byte) float64 {
	c := f[s]
	if c == 0 {
		return 0
	}
	var total float64
	for _, x := range f {
		total += float64(x)
	}
	return -float64(c) * math.Log2(float64(c)/total)
}
