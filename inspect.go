package huffzip

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/consensys/huffzip/huffman"
)

// Report describes compressed data without decompressing it.
type Report struct {
	Header      Header
	HeaderSize  int
	PayloadBits uint64
	Depth       int // depth of the Huffman tree
	Table       *huffman.Table
}

// Inspect parses and validates the header of compressed data and rebuilds its code table.
// The payload is checked for length and padding only.
func Inspect(data []byte) (*Report, error) {
	if len(data) == 0 {
		return &Report{Table: &huffman.Table{}}, nil
	}
	tree, _, header, nbBits, err := parse(data)
	if err != nil {
		return nil, err
	}
	r := &Report{
		Header:      header,
		HeaderSize:  header.Size(),
		PayloadBits: nbBits,
		Table:       &huffman.Table{},
	}
	if tree != nil {
		r.Depth = tree.Depth()
		r.Table = tree.Table()
	}
	return r, nil
}

// CompressedSize is the size of the compressed data in bytes.
func (r *Report) CompressedSize() int {
	if r.Header.Length == 0 && r.HeaderSize == 0 {
		return 0
	}
	return r.HeaderSize + int((r.PayloadBits+7)/8)
}

// Ratio is the compression ratio, uncompressed size over compressed size.
func (r *Report) Ratio() float64 {
	if r.CompressedSize() == 0 {
		return 0
	}
	return float64(r.Header.Length) / float64(r.CompressedSize())
}

// Entropy is the Shannon bound of the payload in bits.
func (r *Report) Entropy() float64 {
	return r.Header.Freqs.Entropy()
}

// WriteCSV writes one line per symbol: symbol, frequency, code length, code, entropy contribution in bits.
// Symbols are listed shortest code first.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"symbol", "frequency", "length", "code", "entropy"}); err != nil {
		return err
	}
	for _, s := range r.Table.Symbols() {
		e := &r.Table[s]
		record := []string{
			fmt.Sprintf("%#02x", s),
			strconv.FormatUint(r.Header.Freqs[s], 10),
			strconv.Itoa(int(e.Length)),
			e.String(),
			strconv.FormatFloat(r.Header.Freqs.SymbolEntropy(s), 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
