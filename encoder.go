package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder assigns Huffman codes to Symbols and packs byte sequences into
// Containers.
type Encoder struct {
	tree  *Tree
	table *CodeTable
}

// Init initializes this Encoder from the frequency (i.e. number of
// occurrences) of each Symbol.  Symbols with a frequency of 0 receive no
// code.
//
// Fails with ErrEmptyInput if every frequency is 0, with ErrTooManySymbols if
// every frequency is non-zero, and with ErrCodeTooLong if the distribution is
// skewed enough to push some code past MaxCodeSize bits.
//
func (e *Encoder) Init(ft *FrequencyTable) error {
	tree, err := BuildTree(ft)
	if err != nil {
		return err
	}

	table, err := tree.Codes()
	if err != nil {
		return err
	}

	assert.Assertf(table.Len() == tree.NumSymbols(), "code table has %d symbols, tree has %d", table.Len(), tree.NumSymbols())

	*e = Encoder{
		tree:  tree,
		table: table,
	}
	return nil
}

// Encode encodes a Symbol into a Huffman-coded bit string.  Symbols without
// a code yield the empty Code.
func (e Encoder) Encode(symbol Symbol) Code {
	hc, _ := e.table.Get(symbol)
	return hc
}

// EncodeBytes packs data into a Container using this Encoder's codes.  Every
// byte of data must have a code.
func (e Encoder) EncodeBytes(data []byte) (*Container, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	bw := newBitWriter(uint64(len(data)) * uint64(e.table.MaxSize()))
	for index, b := range data {
		hc, found := e.table.Get(Symbol(b))
		if !found {
			return nil, fmt.Errorf("byte %d at offset %d has no code", b, index)
		}
		bw.WriteCode(hc)
	}

	return &Container{
		Table:   *e.table,
		Padding: bw.Padding(),
		Payload: bw.Bytes(),
	}, nil
}

// Table returns the code table.
func (e Encoder) Table() *CodeTable {
	return e.table
}

// Tree returns the code tree.
func (e Encoder) Tree() *Tree {
	return e.tree
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.table.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.table.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.MaxSize())
	for _, symbol := range e.table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.Encode(symbol))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode compresses data into the binary container format.
func Encode(data []byte) ([]byte, error) {
	c, err := encodeContainer(data)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}

// Compress drains r, compresses its contents, and writes the container to w.
// The whole input is held in memory.
func Compress(w io.Writer, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	c, err := encodeContainer(data)
	if err != nil {
		return 0, err
	}
	return c.WriteTo(w)
}

func encodeContainer(data []byte) (*Container, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	ft := CountFrequencies(data)
	var e Encoder
	if err := e.Init(&ft); err != nil {
		return nil, err
	}
	return e.EncodeBytes(data)
}
