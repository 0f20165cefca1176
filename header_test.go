package huffzip

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/huffzip/huffman"
)

func TestHeaderLayout(t *testing.T) {
	h := Header{Version: Version, Length: 3}
	h.Freqs[0x41] = 3

	var bb bytes.Buffer
	n, err := h.WriteTo(&bb)
	require.NoError(t, err)
	require.Equal(t, int64(HeaderSize(1)), n)
	require.Equal(t, "0001"+
		"0000000000000003"+
		"0000000000000001"+
		"41"+"0000000000000003", hex.EncodeToString(bb.Bytes()))
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{Version: Version, Length: 27, Freqs: huffman.Count([]byte(example))}

	var bb bytes.Buffer
	n, err := h.WriteTo(&bb)
	require.NoError(t, err)
	require.Equal(t, int64(h.Size()), n)
	bb.WriteString("payload")

	var back Header
	m, err := back.ReadFrom(&bb)
	require.NoError(t, err)
	require.Equal(t, n, m)
	require.Equal(t, h, back)
	require.Equal(t, "payload", bb.String(), "ReadFrom must not consume the payload")
}

func TestHeaderZeroFrequency(t *testing.T) {
	var bb bytes.Buffer
	bb.Write([]byte{0, 1})
	bb.Write(make([]byte, 8))                     // length 0
	bb.Write([]byte{0, 0, 0, 0, 0, 0, 0, 1})      // one symbol
	bb.Write([]byte{'a', 0, 0, 0, 0, 0, 0, 0, 0}) // with frequency 0

	var h Header
	_, err := h.ReadFrom(&bb)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestHeaderFrequencyOverflow(t *testing.T) {
	h := Header{Version: Version}
	h.Freqs['a'] = 1 << 63
	h.Freqs['b'] = 1 << 63

	var bb bytes.Buffer
	_, err := h.WriteTo(&bb)
	require.NoError(t, err)

	var back Header
	_, err = back.ReadFrom(&bb)
	require.ErrorIs(t, err, ErrCorrupt)
}
