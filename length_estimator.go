package huffzip

import (
	"sync"

	"github.com/consensys/huffzip/bitstream"
	"github.com/consensys/huffzip/huffman"
)

// LengthEstimator computes the size Compress would produce, without producing it.
// It is safe for concurrent use; each call gets scratch space of its own from a pool.
type LengthEstimator struct {
	// pool of scratch spaces
	poolLock sync.Mutex
	scratch  []*estimatorScratch

	compressor *Compressor
}

type estimatorScratch struct {
	freqs   huffman.Frequencies
	counter huffman.BitCounter
}

func NewLengthEstimator(opts ...Option) *LengthEstimator {
	return &LengthEstimator{
		compressor: NewCompressor(opts...),
	}
}

// EstimateLength returns the exact length of the compressed form of data, header included.
func (le *LengthEstimator) EstimateLength(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	s := le.getScratch()
	defer le.freeScratch(s)

	s.freqs = huffman.Count(data)
	tree, err := huffman.BuildTreeWith(&s.freqs, le.compressor.queue)
	if err != nil {
		return 0, err
	}

	// "compress" the data
	if _, err = huffman.NewEncoder(tree.Table(), &s.counter).Write(data); err != nil {
		return 0, err
	}

	return HeaderSize(s.freqs.Distinct()) + int(bitstream.ByteLen(s.counter.Len())), nil
}

func (le *LengthEstimator) getScratch() *estimatorScratch {
	le.poolLock.Lock()
	defer le.poolLock.Unlock()
	if len(le.scratch) == 0 {
		return &estimatorScratch{}
	}
	s := le.scratch[len(le.scratch)-1]
	le.scratch = le.scratch[:len(le.scratch)-1]
	return s
}

func (le *LengthEstimator) freeScratch(s *estimatorScratch) {
	s.counter.Reset()
	le.poolLock.Lock()
	defer le.poolLock.Unlock()
	le.scratch = append(le.scratch, s)
}
