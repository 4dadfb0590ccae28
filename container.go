package huffman

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
)

const (
	headerSize = 1
	recordSize = 3
)

// Container is the serialized form of a Huffman-coded byte sequence: the code
// table needed to rebuild the tree, plus the packed bitstream.
//
// Binary layout:
//
//     symbol_count   1 byte        1..255
//     records        3 bytes each  code length, symbol, packed code
//     padding_count  1 byte        0..7
//     payload        rest          packed codes, LSB first
//
// Records appear in ascending Symbol order.  A packed code holds the code's
// i'th bit in bit i of the byte.
//
type Container struct {
	Table   CodeTable
	Padding byte
	Payload []byte
}

// Size returns the length of the container's binary form.
func (c *Container) Size() int {
	return headerSize + recordSize*c.Table.Len() + 1 + len(c.Payload)
}

// MarshalBinary returns the container's binary form.
func (c *Container) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(c.Size())
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the container's binary form to the given writer.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	numSymbols := c.Table.Len()
	switch {
	case numSymbols == 0:
		return 0, ErrEmptyInput
	case numSymbols >= NumSymbols:
		return 0, fmt.Errorf("%w: %d distinct symbols, max %d", ErrTooManySymbols, numSymbols, NumSymbols-1)
	case c.Padding > 7:
		return 0, fmt.Errorf("%w: padding %d, max 7", ErrMalformedContainer, c.Padding)
	}

	var buf bytes.Buffer
	buf.Grow(c.Size())
	buf.WriteByte(byte(numSymbols))
	for _, symbol := range c.Table.Symbols() {
		hc, _ := c.Table.Get(symbol)
		buf.WriteByte(hc.Size)
		buf.WriteByte(byte(symbol))
		buf.WriteByte(hc.Bits)
	}
	buf.WriteByte(c.Padding)
	buf.Write(c.Payload)
	return buf.WriteTo(w)
}

// UnmarshalBinary parses a container from its binary form.  The payload is
// copied.
func (c *Container) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%w: missing symbol count", ErrMalformedContainer)
	}

	numSymbols := int(data[0])
	if numSymbols == 0 {
		return fmt.Errorf("%w: container declares 0 symbols", ErrEmptyInput)
	}

	paddingOffset := headerSize + recordSize*numSymbols
	if len(data) <= paddingOffset {
		return fmt.Errorf("%w: %d symbols need %d header bytes, have %d", ErrMalformedContainer, numSymbols, paddingOffset+1, len(data))
	}

	var table CodeTable
	for index := 0; index < numSymbols; index++ {
		record := data[headerSize+recordSize*index : headerSize+recordSize*(index+1)]
		size, symbol, bits := record[0], Symbol(record[1]), record[2]

		if size == 0 || size > MaxCodeSize {
			return fmt.Errorf("%w: record %d: code length %d out of range 1..%d", ErrMalformedContainer, index, size, MaxCodeSize)
		}
		if size < MaxCodeSize && bits>>size != 0 {
			return fmt.Errorf("%w: record %d: code 0x%02x has bits beyond length %d", ErrMalformedContainer, index, bits, size)
		}
		if _, found := table.Get(symbol); found {
			return fmt.Errorf("%w: record %d: symbol %d appears twice", ErrMalformedContainer, index, symbol)
		}
		if err := table.Set(symbol, MakeCode(size, bits)); err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrMalformedContainer, index, err)
		}
	}

	padding := data[paddingOffset]
	if padding > 7 {
		return fmt.Errorf("%w: padding %d, max 7", ErrMalformedContainer, padding)
	}

	payload := data[paddingOffset+1:]
	*c = Container{
		Table:   table,
		Padding: padding,
		Payload: make([]byte, len(payload)),
	}
	copy(c.Payload, payload)
	return nil
}

// ReadFrom drains the given reader and parses a container from its contents.
func (c *Container) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	n := int64(len(data))
	if err != nil {
		return n, err
	}
	return n, c.UnmarshalBinary(data)
}

// String returns a brief description of this Container.
func (c *Container) String() string {
	return fmt.Sprintf("(Huffman container with %d symbols, %d payload bytes, %d padding bits)", c.Table.Len(), len(c.Payload), c.Padding)
}

var (
	_ encoding.BinaryMarshaler   = (*Container)(nil)
	_ encoding.BinaryUnmarshaler = (*Container)(nil)
	_ io.WriterTo                = (*Container)(nil)
	_ io.ReaderFrom              = (*Container)(nil)
	_ fmt.Stringer               = (*Container)(nil)
)
