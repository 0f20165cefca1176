package huffzip

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	c, err := Compress([]byte(example))
	require.NoError(t, err)

	r, err := Inspect(c)
	require.NoError(t, err)
	require.Equal(t, uint64(27), r.Header.Length)
	require.Equal(t, HeaderSize(14), r.HeaderSize)
	require.Equal(t, uint64(90), r.PayloadBits)
	require.Equal(t, 5, r.Depth)
	require.Equal(t, len(c), r.CompressedSize())
	require.InDelta(t, 27.0/float64(len(c)), r.Ratio(), 1e-9)
	require.LessOrEqual(t, r.Entropy(), float64(r.PayloadBits))

	var bb bytes.Buffer
	require.NoError(t, r.WriteCSV(&bb))
	lines := strings.Split(strings.TrimSpace(bb.String()), "\n")
	require.Len(t, lines, 15)
	require.Equal(t, "symbol,frequency,length,code,entropy", lines[0])
	require.Equal(t, "0x43,9,2,11,14.26", lines[1], "'C' has the shortest code")
}

func TestInspectEmpty(t *testing.T) {
	r, err := Inspect(nil)
	require.NoError(t, err)
	require.Zero(t, r.CompressedSize())
	require.Zero(t, r.Ratio())

	var bb bytes.Buffer
	require.NoError(t, r.WriteCSV(&bb))
	require.Equal(t, "symbol,frequency,length,code,entropy\n", bb.String())
}

func TestInspectCorrupt(t *testing.T) {
	_, err := Inspect([]byte{0, 1, 2})
	require.ErrorIs(t, err, ErrTruncated)
}
