package huffzip

import (
	"github.com/consensys/huffzip/bitstream"
	"github.com/consensys/huffzip/huffman"
)

// Compressor compresses whole buffers. It only holds configuration,
// so a single Compressor can be used from several goroutines.
type Compressor struct {
	queue huffman.QueueConfig
}

type Option func(*Compressor)

// WithQueueCapacity sets the initial capacity of the priority queue used to build the tree.
func WithQueueCapacity(capacity int) Option {
	return func(c *Compressor) { c.queue.Capacity = capacity }
}

// WithFixedQueue prevents the priority queue from growing past its initial capacity.
// Data with more distinct bytes than the capacity then fails with pqueue.ErrCapacityExceeded.
func WithFixedQueue() Option {
	return func(c *Compressor) { c.queue.Fixed = true }
}

func NewCompressor(opts ...Option) *Compressor {
	c := &Compressor{}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Compress compresses the given data and returns the compressed data
func (c *Compressor) Compress(d []byte) ([]byte, error) {
	if len(d) == 0 {
		return []byte{}, nil
	}

	header := Header{
		Version: Version,
		Length:  uint64(len(d)),
		Freqs:   huffman.Count(d),
	}

	tree, err := huffman.BuildTreeWith(&header.Freqs, c.queue)
	if err != nil {
		return nil, err
	}
	table := tree.Table()
	nbBits, err := table.BitLen(&header.Freqs)
	if err != nil {
		return nil, err
	}

	out := bitstream.NewStream(header.Size() + int(bitstream.ByteLen(nbBits)))
	if _, err = header.WriteTo(out); err != nil {
		return nil, err
	}
	if _, err = huffman.NewEncoder(table, out).Write(d); err != nil {
		return nil, err
	}
	if err = out.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Compress compresses d with the default configuration.
func Compress(d []byte) ([]byte, error) {
	return NewCompressor().Compress(d)
}
