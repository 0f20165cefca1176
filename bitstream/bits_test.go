package bitstream

import (
	"bytes"
	"crypto/sha256"
	"math/rand"
	"testing"

	gobitstream "github.com/dgryski/go-bitstream"
	"github.com/stretchr/testify/require"
)

func TestGetBitMSBFirst(t *testing.T) {
	buf := []byte{0b1000_0001, 0b0100_0000}
	require.True(t, GetBit(buf, 0))
	require.False(t, GetBit(buf, 1))
	require.True(t, GetBit(buf, 7))
	require.False(t, GetBit(buf, 8))
	require.True(t, GetBit(buf, 9))
}

func TestSetBit(t *testing.T) {
	buf := make([]byte, 2)
	SetBit(buf, 0, true)
	SetBit(buf, 15, true)
	require.Equal(t, []byte{0x80, 0x01}, buf)

	SetBit(buf, 0, false)
	SetBit(buf, 15, true) // idempotent
	require.Equal(t, []byte{0x00, 0x01}, buf)
}

func TestXorBit(t *testing.T) {
	a := []byte{0b1100_0000}
	b := []byte{0b1010_0000}
	out := []byte{0xff}
	for i := uint64(0); i < 4; i++ {
		XorBit(a, b, out, i)
	}
	require.Equal(t, byte(0b0110_1111), out[0], "bits past offset 3 are untouched")

	// aliasing
	XorBit(a, a, a, 0)
	require.False(t, GetBit(a, 0))
}

func TestDiff(t *testing.T) {
	a := []byte{0xf0, 0xaa}
	b := []byte{0xf0, 0xab}
	d := Diff(a, b, 16)
	require.Equal(t, []byte{0x00, 0x01}, d)
	require.Equal(t, 1, PopCount(d, 16))

	require.Equal(t, 8, PopCount([]byte{0xff, 0xff}, 8))
	require.Equal(t, 11, PopCount([]byte{0xff, 0xe7}, 11))
	require.Equal(t, 2, PopCount([]byte{0xc7, 0xff}, 4))
	require.Equal(t, 0, PopCount(nil, 0))

	require.Equal(t, []byte{0x00}, Diff(a, b, 8))
}

func TestRotateLeft(t *testing.T) {
	buf := []byte{0b1011_0110}
	RotateLeft(buf, 8, 4)
	require.Equal(t, byte(0b0110_1011), buf[0])

	// window smaller than the buffer
	buf = []byte{0b1100_0000, 0xff}
	RotateLeft(buf, 3, 1) // 110 -> 101
	require.Equal(t, []byte{0b1010_0000, 0xff}, buf)

	// full turn is the identity
	buf = []byte{0x12, 0x34, 0x56}
	RotateLeft(buf, 20, 20)
	require.Equal(t, []byte{0x12, 0x34, 0x56}, buf)

	RotateLeft(buf, 0, 3)
	require.Equal(t, []byte{0x12, 0x34, 0x56}, buf)
}

func TestRotateLeftMatchesNaive(t *testing.T) {
	for range 100 {
		buf := make([]byte, 1+rand.Intn(8)) //nolint:gosec
		rand.Read(buf)                      //nolint:gosec
		nbBits := uint64(1 + rand.Intn(len(buf)*8))
		n := uint64(rand.Intn(3 * int(nbBits)))

		want := bytes.Clone(buf)
		for range n % nbBits {
			first := GetBit(want, 0)
			for i := uint64(0); i+1 < nbBits; i++ {
				SetBit(want, i, GetBit(want, i+1))
			}
			SetBit(want, nbBits-1, first)
		}

		RotateLeft(buf, nbBits, n)
		require.Equal(t, want, buf, "nbBits %d n %d", nbBits, n)
	}
}

// the accessor must agree with an independent MSB-first bit writer
func TestGetBitAgreesWithBitWriter(t *testing.T) {
	bits := make([]bool, 1000)
	for i := range bits {
		bits[i] = rand.Intn(2) == 1 //nolint:gosec
	}

	var bb bytes.Buffer
	w := gobitstream.NewWriter(&bb)
	for _, b := range bits {
		require.NoError(t, w.WriteBit(gobitstream.Bit(b)))
	}
	require.NoError(t, w.Flush(gobitstream.Zero))

	for i, b := range bits {
		require.Equal(t, b, GetBit(bb.Bytes(), uint64(i)), "bit %d", i)
	}

	// and SetBit must produce the same bytes
	buf := make([]byte, len(bb.Bytes()))
	for i, b := range bits {
		SetBit(buf, uint64(i), b)
	}
	require.Equal(t, bb.Bytes(), buf)
}

func TestStream(t *testing.T) {
	s := NewStream(4)
	_, err := s.Write([]byte{0xab})
	require.NoError(t, err)
	s.TryWriteBits(0b101, 3)
	s.TryWriteBool(true)
	require.Equal(t, uint64(12), s.Len())
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	require.Equal(t, []byte{0xab, 0b1011_0000}, s.Bytes())
	require.Equal(t, uint64(2), ByteLen(s.Len()))

	for i := uint64(0); i < s.Len(); i++ {
		want := i < 8 && (0xab>>(7-i))&1 == 1 || i == 8 || i == 10 || i == 11
		require.Equal(t, want, GetBit(s.Bytes(), i), "bit %d", i)
	}
}

func TestStreamChecksum(t *testing.T) {
	s := NewStream(0)
	s.TryWriteBits(0xff, 8)
	sum, err := s.Checksum(sha256.New())
	require.NoError(t, err)

	want := sha256.Sum256([]byte{0xff})
	require.Equal(t, want[:], sum)
}
