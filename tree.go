package huffman

import (
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// NodeID addresses one node within a Tree.
type NodeID int32

// NoNode is the NodeID of an absent child.
const NoNode = NodeID(-1)

// Tree is a binary Huffman code tree.  Its nodes live in an arena owned by
// the Tree; each node other than the root belongs to exactly one parent.
//
// A node with no children is a leaf.  Trees built from frequencies give
// every internal node exactly two children.  Trees rebuilt from a code table
// may leave a child absent where the table assigns no code.
//
type Tree struct {
	nodes      []node
	root       NodeID
	numSymbols int
}

type node struct {
	symbol Symbol
	freq   uint64
	left   NodeID
	right  NodeID
}

// BuildTree constructs a Huffman tree from the given frequencies.  Leaves
// enter the queue in ascending Symbol order and ties are broken by insertion
// order, so equal frequencies always produce the same tree.
//
// A lone symbol is paired with a sentinel leaf so that it still receives a
// one-bit code.
//
func BuildTree(ft *FrequencyTable) (*Tree, error) {
	distinct := ft.Distinct()
	switch {
	case distinct == 0:
		return nil, ErrEmptyInput
	case distinct >= NumSymbols:
		return nil, fmt.Errorf("%w: %d distinct symbols, max %d", ErrTooManySymbols, distinct, NumSymbols-1)
	}

	t := &Tree{
		nodes:      make([]node, 0, 2*distinct),
		root:       NoNode,
		numSymbols: distinct,
	}

	q := NewPriorityQueue(distinct)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if freq := ft[symbol]; freq != 0 {
			q.Insert(t.newNode(symbol, freq, NoNode, NoNode), freq)
		}
	}

	if distinct == 1 {
		leaf, _ := q.Remove(0)
		sentinel := t.newNode(InvalidSymbol, 0, NoNode, NoNode)
		t.root = t.newNode(InvalidSymbol, t.nodes[leaf].freq, leaf, sentinel)
		return t, nil
	}

	for q.Len() > 1 {
		a, b, err := q.ExtractTwoSmallest()
		if err != nil {
			return nil, err
		}

		// Compute freqSum using saturating addition
		freqA, freqB := t.nodes[a].freq, t.nodes[b].freq
		freqSum := freqA + freqB
		if freqSum < freqA {
			freqSum = math.MaxUint64
		}

		q.Insert(t.newNode(InvalidSymbol, freqSum, a, b), freqSum)
	}

	h, ok := q.Min()
	assert.Assertf(ok, "priority queue drained before the root was found")
	root, err := q.Remove(h)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

// RebuildTree reconstructs a code tree from a code table alone, by walking
// each code's path from the root and creating nodes as needed.
//
// Fails with ErrMalformedContainer if one code is a prefix of another.
//
func RebuildTree(ct *CodeTable) (*Tree, error) {
	if ct.Len() == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{
		nodes:      make([]node, 0, 2*ct.Len()),
		numSymbols: ct.Len(),
	}
	t.root = t.newNode(InvalidSymbol, 0, NoNode, NoNode)

	for _, symbol := range ct.Symbols() {
		hc, _ := ct.Get(symbol)
		if hc.Size == 0 {
			return nil, fmt.Errorf("%w: symbol %d has an empty code", ErrMalformedContainer, symbol)
		}

		cur := t.root
		for i := byte(0); i < hc.Size; i++ {
			if t.nodes[cur].symbol != InvalidSymbol {
				return nil, fmt.Errorf("%w: code %s for symbol %d passes through the leaf for symbol %d", ErrMalformedContainer, hc, symbol, t.nodes[cur].symbol)
			}

			bit := hc.Bit(i)
			child := t.Child(cur, bit)
			if i == hc.Size-1 {
				if child != NoNode {
					return nil, fmt.Errorf("%w: code %s for symbol %d collides with another code", ErrMalformedContainer, hc, symbol)
				}
				t.setChild(cur, bit, t.newNode(symbol, 0, NoNode, NoNode))
				break
			}
			if child == NoNode {
				child = t.newNode(InvalidSymbol, 0, NoNode, NoNode)
				t.setChild(cur, bit, child)
			}
			cur = child
		}
	}
	return t, nil
}

// Root returns the root of the tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// NumSymbols returns the number of distinct symbols with leaves in the tree.
func (t *Tree) NumSymbols() int {
	return t.numSymbols
}

// IsLeaf returns true iff the node has no children.
func (t *Tree) IsLeaf(id NodeID) bool {
	n := t.nodes[id]
	return n.left == NoNode && n.right == NoNode
}

// Symbol returns the node's Symbol, or InvalidSymbol for internal and
// sentinel nodes.
func (t *Tree) Symbol(id NodeID) Symbol {
	return t.nodes[id].symbol
}

// Frequency returns the node's frequency.  Rebuilt trees have no frequency
// data and report 0 throughout.
func (t *Tree) Frequency(id NodeID) uint64 {
	return t.nodes[id].freq
}

// Child returns the left child for bit 0 and the right child for bit 1.
func (t *Tree) Child(id NodeID, bit byte) NodeID {
	if bit == 0 {
		return t.nodes[id].left
	}
	return t.nodes[id].right
}

// Codes derives the code table by walking the tree depth-first, appending 0
// when descending left and 1 when descending right.
//
// Fails with ErrCodeTooLong if any leaf lies deeper than MaxCodeSize.
//
func (t *Tree) Codes() (*CodeTable, error) {
	type stackItem struct {
		id   NodeID
		code Code
	}

	ct := new(CodeTable)
	stack := make([]stackItem, 0, MaxCodeSize+1)
	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[top.id]
		if n.left == NoNode && n.right == NoNode {
			if n.symbol == InvalidSymbol {
				continue
			}
			assert.Assertf(top.code.Size != 0, "symbol %d is at the root", n.symbol)
			err := ct.Set(n.symbol, top.code)
			assert.Assertf(err == nil, "tree leaf produced an invalid code: %v", err)
			continue
		}

		if top.code.Size >= MaxCodeSize {
			return nil, fmt.Errorf("%w: node at %s has children, but codes are limited to %d bits", ErrCodeTooLong, top.code, MaxCodeSize)
		}
		if n.right != NoNode {
			stack = append(stack, stackItem{n.right, top.code.Append(1)})
		}
		if n.left != NoNode {
			stack = append(stack, stackItem{n.left, top.code.Append(0)})
		}
	}
	return ct, nil
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols in %d nodes)", t.numSymbols, len(t.nodes))
}

var _ fmt.Stringer = (*Tree)(nil)

func (t *Tree) newNode(symbol Symbol, freq uint64, left NodeID, right NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{symbol: symbol, freq: freq, left: left, right: right})
	return id
}

func (t *Tree) setChild(id NodeID, bit byte, child NodeID) {
	if bit == 0 {
		t.nodes[id].left = child
	} else {
		t.nodes[id].right = child
	}
}
