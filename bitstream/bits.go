// Package bitstream addresses a byte buffer as a contiguous sequence of bits.
// Bit 0 is the most significant bit of buf[0], bit 8 the most significant bit of buf[1], etc.
package bitstream

import "math/bits"

// mask returns the mask selecting bit offset within its byte (MSB first)
func mask(offset uint64) byte {
	return 0x80 >> (offset & 7)
}

// GetBit reports whether bit offset of buf is set.
// The caller guarantees offset < 8*len(buf).
func GetBit(buf []byte, offset uint64) bool {
	return buf[offset>>3]&mask(offset) != 0
}

// SetBit sets or clears bit offset of buf.
func SetBit(buf []byte, offset uint64, value bool) {
	if value {
		buf[offset>>3] |= mask(offset)
	} else {
		buf[offset>>3] &^= mask(offset)
	}
}

// XorBit writes a[offset] ^ b[offset] into out[offset].
// out may alias a or b.
func XorBit(a, b, out []byte, offset uint64) {
	SetBit(out, offset, GetBit(a, offset) != GetBit(b, offset))
}

// Diff returns a buffer of (nbBits+7)/8 bytes whose first nbBits bits are the xor of a and b.
// Set bits mark the positions where a and b disagree.
func Diff(a, b []byte, nbBits uint64) []byte {
	out := make([]byte, (nbBits+7)/8)
	for i := uint64(0); i < nbBits; i++ {
		XorBit(a, b, out, i)
	}
	return out
}

// RotateLeft rotates the first nbBits bits of buf left by n positions.
// Bits pushed off the front of the window come back in at its end; bits past the window are untouched.
// e.g. 10110110 rotated by 4 over 8 bits becomes 01101011.
func RotateLeft(buf []byte, nbBits, n uint64) {
	if nbBits == 0 {
		return
	}
	n %= nbBits
	if n == 0 {
		return
	}
	// three reversals: rev(0,n) rev(n,len) rev(0,len)
	reverse(buf, 0, n)
	reverse(buf, n, nbBits)
	reverse(buf, 0, nbBits)
}

// reverse reverses bits [from, to) in place
func reverse(buf []byte, from, to uint64) {
	for to > from+1 {
		to--
		x, y := GetBit(buf, from), GetBit(buf, to)
		SetBit(buf, from, y)
		SetBit(buf, to, x)
		from++
	}
}

// PopCount returns the number of set bits among the first nbBits bits of buf.
func PopCount(buf []byte, nbBits uint64) int {
	n := 0
	full := nbBits / 8
	for _, b := range buf[:full] {
		n += bits.OnesCount8(b)
	}
	if rem := nbBits % 8; rem != 0 {
		n += bits.OnesCount8(buf[full] & ^byte(0xff>>rem))
	}
	return n
}
