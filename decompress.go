package huffzip

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/consensys/huffzip/bitstream"
	"github.com/consensys/huffzip/huffman"
)

// Decompress decompresses the given data.
// Malformed data results in an error wrapping ErrTruncated, ErrCorrupt or ErrUnsupportedVersion;
// it never causes a read outside of data.
func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	tree, payload, header, nbBits, err := parse(data)
	if err != nil {
		return nil, err
	}
	if header.Length == 0 {
		return []byte{}, nil
	}

	// every symbol takes at least one bit, so header.Length <= nbBits <= 8*len(data)
	out := make([]byte, header.Length)
	d := huffman.NewDecoder(tree, payload, nbBits)
	if _, err = d.Read(out); err != nil {
		return nil, errors.Wrap(ErrCorrupt, err.Error())
	}
	if d.Remaining() != 0 {
		return nil, errors.Wrapf(ErrCorrupt, "%d payload bits left over", d.Remaining())
	}

	return out, nil
}

// parse reads and validates the header, rebuilds the tree and delimits the payload
func parse(data []byte) (tree *huffman.Tree, payload []byte, header Header, nbBits uint64, err error) {
	sizeHeader, err := header.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return
	}
	if header.Version != Version {
		err = errors.Wrapf(ErrUnsupportedVersion, "version %d", header.Version)
		return
	}
	payload = data[sizeHeader:]

	if header.Length == 0 {
		if len(payload) != 0 {
			err = errors.Wrap(ErrCorrupt, "payload after an empty header")
		}
		return
	}

	if tree, err = huffman.BuildTree(&header.Freqs); err != nil {
		err = errors.Wrap(ErrCorrupt, err.Error())
		return
	}
	if nbBits, err = tree.Table().BitLen(&header.Freqs); err != nil {
		err = errors.Wrap(ErrCorrupt, err.Error())
		return
	}

	switch expected := bitstream.ByteLen(nbBits); {
	case uint64(len(payload)) < expected:
		err = errors.Wrapf(ErrTruncated, "payload is %d bytes, expected %d", len(payload), expected)
		return
	case uint64(len(payload)) > expected:
		err = errors.Wrapf(ErrCorrupt, "payload is %d bytes, expected %d", len(payload), expected)
		return
	}

	// padding must be zero
	for i := nbBits; i < 8*uint64(len(payload)); i++ {
		if bitstream.GetBit(payload, i) {
			err = errors.Wrap(ErrCorrupt, "non-zero padding")
			return
		}
	}

	return
}
