package huffman

import (
	"github.com/consensys/huffzip/pqueue"
	"github.com/pkg/errors"
)

// NodeID is the handle of a node within its Tree.
type NodeID int32

// NoNode is the handle of a missing child.
const NoNode NodeID = -1

// Node is a tree node. Leaves have no children; internal nodes have exactly two.
type Node struct {
	Symbol      Symbol
	Freq        uint64 // for an internal node, the sum of its children's
	Left, Right NodeID
}

// Tree is a Huffman tree. Nodes live in a single arena and refer to each other by handle,
// so the whole tree goes away with the Tree value.
type Tree struct {
	nodes []Node
	root  NodeID
}

// QueueConfig controls the priority queue used while building a tree.
type QueueConfig struct {
	// Capacity is the initial capacity of the queue. 0 means the number of distinct symbols.
	Capacity int
	// Fixed forbids the queue from growing past Capacity.
	Fixed bool
}

// BuildTree builds the Huffman tree of the given frequencies.
// Symbols with a zero frequency do not take part.
func BuildTree(freqs *Frequencies) (*Tree, error) {
	return BuildTreeWith(freqs, QueueConfig{})
}

// BuildTreeWith is BuildTree with an explicit queue configuration.
// A fixed queue too small for the alphabet results in pqueue.ErrCapacityExceeded.
func BuildTreeWith(freqs *Frequencies, cfg QueueConfig) (*Tree, error) {
	k := freqs.Distinct()
	if k == 0 {
		return nil, errors.WithStack(ErrNoSymbols)
	}

	t := &Tree{
		nodes: make([]Node, 0, 2*k-1),
		root:  NoNode,
	}

	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = k
	}
	var opts []pqueue.Option
	if cfg.Fixed {
		opts = append(opts, pqueue.Fixed())
	}
	pq := pqueue.New(capacity, t.less, opts...)

	// one single-node tree per symbol
	for s, f := range freqs {
		if f == 0 {
			continue
		}
		if err := pq.Push(t.add(Node{Symbol: Leaf(byte(s)), Freq: f, Left: NoNode, Right: NoNode})); err != nil {
			return nil, err
		}
	}

	// merge the two smallest trees until one remains
	for {
		left, err := pq.Pop()
		if err != nil {
			return nil, err
		}
		if pq.Len() == 0 {
			t.root = left
			return t, nil
		}
		right, err := pq.Pop()
		if err != nil {
			return nil, err
		}

		sum := t.nodes[left].Freq + t.nodes[right].Freq
		if sum < t.nodes[left].Freq {
			return nil, errors.WithStack(ErrFrequencyOverflow)
		}
		parent := t.add(Node{Symbol: Internal, Freq: sum, Left: left, Right: right})
		if err = pq.Push(parent); err != nil {
			return nil, err
		}
	}
}

func (t *Tree) add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// less orders subtrees by frequency, then by creation order
func (t *Tree) less(a, b NodeID) bool {
	fa, fb := t.nodes[a].Freq, t.nodes[b].Freq
	if fa != fb {
		return fa < fb
	}
	return a < b
}

// Root returns the handle of the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the node with handle id.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len is the number of nodes in the tree: 2k-1 for k symbols.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NbLeaves is the number of symbols in the tree.
func (t *Tree) NbLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Depth is the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	type frame struct {
		id    NodeID
		depth int
	}
	res := 0
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[f.id]
		if n.Symbol.IsLeaf() {
			res = max(res, f.depth)
			continue
		}
		stack = append(stack, frame{n.Left, f.depth + 1}, frame{n.Right, f.depth + 1})
	}
	return res
}
