package huffman

import (
	"fmt"
	"strings"
)

// MaxCodeSize is the longest code the container format can carry: each code
// is packed into a single byte.
const MaxCodeSize = 8

// Code represents a sequence of bits, i.e. the path from the root of a
// Huffman tree to one of its leaves.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.  Bits above Size are always zero.
	Bits byte
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits byte) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode constructs a Code from a string of '0' and '1' characters, first
// bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("%w: %q has %d bits, max %d", ErrCodeTooLong, str, len(str), MaxCodeSize)
	}
	var hc Code
	for _, ch := range str {
		switch ch {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q in code %q", ch, str)
		}
	}
	return hc, nil
}

// Append returns this Code extended by one bit.  The caller must ensure that
// Size < MaxCodeSize.
func (hc Code) Append(bit byte) Code {
	hc.Bits |= (bit & 1) << hc.Size
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i byte) byte {
	return bitAt(hc.Bits, uint(i))
}

// HasPrefix returns true iff the first prefix.Size bits of this Code are
// equal to prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	mask := byte((uint16(1) << prefix.Size) - 1)
	return hc.Bits&mask == prefix.Bits
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + hc.Bit(i))
	}
	sb.WriteByte('"')
	return sb.String()
}

var _ fmt.Stringer = Code{}
