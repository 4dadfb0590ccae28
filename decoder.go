package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder decodes packed bitstreams by walking a tree rebuilt from a code
// table.  No frequency data is needed.
type Decoder struct {
	tree  *Tree
	table *CodeTable
}

// Init initializes this Decoder from a code table.
//
// Fails with ErrEmptyInput if the table is empty, and with
// ErrMalformedContainer if the codes are not prefix-free.
//
func (d *Decoder) Init(ct *CodeTable) error {
	tree, err := RebuildTree(ct)
	if err != nil {
		return err
	}

	table := new(CodeTable)
	*table = *ct

	*d = Decoder{
		tree:  tree,
		table: table,
	}
	return nil
}

// Lookup returns the Symbol whose code is exactly hc, or InvalidSymbol if
// there is no such Symbol.
func (d Decoder) Lookup(hc Code) Symbol {
	cur := d.tree.Root()
	for i := byte(0); i < hc.Size; i++ {
		cur = d.tree.Child(cur, hc.Bit(i))
		if cur == NoNode {
			return InvalidSymbol
		}
	}
	if !d.tree.IsLeaf(cur) {
		return InvalidSymbol
	}
	return d.tree.Symbol(cur)
}

// Decode unpacks a payload whose final byte carries padding filler bits.
//
// Fails with ErrCorruptBitstream if the payload is empty, if the filler bits
// are not zero, if a bit leads off the tree, or if the payload ends partway
// through a code.
//
func (d Decoder) Decode(payload []byte, padding byte) ([]byte, error) {
	if padding > 7 {
		return nil, fmt.Errorf("%w: padding %d, max 7", ErrMalformedContainer, padding)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrCorruptBitstream)
	}
	if padding != 0 && payload[len(payload)-1]>>(8-padding) != 0 {
		return nil, fmt.Errorf("%w: non-zero padding bits in final byte 0x%02x", ErrCorruptBitstream, payload[len(payload)-1])
	}

	br := newBitReader(payload, padding)
	out := make([]byte, 0, br.Remaining()/uint64(d.table.MaxSize()))
	root := d.tree.Root()
	cur := root
	for {
		bit, ok := br.ReadBit()
		if !ok {
			break
		}

		next := d.tree.Child(cur, bit)
		if next == NoNode {
			return nil, fmt.Errorf("%w: no code continues with bit %d at payload bit %d", ErrCorruptBitstream, bit, br.pos-1)
		}
		if !d.tree.IsLeaf(next) {
			cur = next
			continue
		}

		symbol := d.tree.Symbol(next)
		if symbol == InvalidSymbol {
			return nil, fmt.Errorf("%w: payload bit %d reaches a leaf with no symbol", ErrCorruptBitstream, br.pos-1)
		}
		out = append(out, byte(symbol))
		cur = root
	}

	if cur != root {
		return nil, fmt.Errorf("%w: payload ends partway through a code", ErrCorruptBitstream)
	}
	return out, nil
}

// DecodeContainer decodes a parsed Container.
func DecodeContainer(c *Container) ([]byte, error) {
	var d Decoder
	if err := d.Init(&c.Table); err != nil {
		return nil, err
	}
	return d.Decode(c.Payload, c.Padding)
}

// Table returns the code table.
func (d Decoder) Table() *CodeTable {
	return d.table
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.table.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.table.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.MaxSize())
	for _, symbol := range d.table.Symbols() {
		hc, _ := d.table.Get(symbol)
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, d.Lookup(hc))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decode decompresses a container produced by Encode.
func Decode(data []byte) ([]byte, error) {
	var c Container
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return DecodeContainer(&c)
}

// Decompress drains r, decompresses the container it holds, and writes the
// original bytes to w.
func Decompress(w io.Writer, r io.Reader) (int64, error) {
	var c Container
	if _, err := c.ReadFrom(r); err != nil {
		return 0, err
	}
	out, err := DecodeContainer(&c)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(out)
	return int64(n), err
}
