package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol in use to its Code.
type CodeTable struct {
	codes [NumSymbols]Code
	count int
}

// Set assigns a Code to a Symbol, replacing any previous assignment.  The
// Code must be non-empty and no longer than MaxCodeSize.
func (ct *CodeTable) Set(symbol Symbol, hc Code) error {
	if !symbol.IsValid() {
		return fmt.Errorf("invalid symbol %d", symbol)
	}
	if hc.Size == 0 {
		return fmt.Errorf("empty code for symbol %d", symbol)
	}
	if hc.Size > MaxCodeSize {
		return fmt.Errorf("%w: symbol %d has a %d-bit code, max %d", ErrCodeTooLong, symbol, hc.Size, MaxCodeSize)
	}
	if ct.codes[symbol].Size == 0 {
		ct.count++
	}
	ct.codes[symbol] = hc
	return nil
}

// Get returns the Code for a Symbol.  The second return value is false if
// the Symbol has no Code.
func (ct *CodeTable) Get(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() {
		return Code{}, false
	}
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of Symbols that have a Code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// Symbols returns the Symbols that have a Code, in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ct.count)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if ct.codes[symbol].Size != 0 {
			out = append(out, symbol)
		}
	}
	return out
}

// MinSize is the bit length of the shortest Code in the table.
func (ct *CodeTable) MinSize() byte {
	var min byte
	for _, hc := range ct.codes {
		if hc.Size != 0 && (min == 0 || hc.Size < min) {
			min = hc.Size
		}
	}
	return min
}

// MaxSize is the bit length of the longest Code in the table.
func (ct *CodeTable) MaxSize() byte {
	var max byte
	for _, hc := range ct.codes {
		if hc.Size > max {
			max = hc.Size
		}
	}
	return max
}

// IsPrefixFree returns true iff no Code in the table is a prefix of another.
func (ct *CodeTable) IsPrefixFree() bool {
	symbols := ct.Symbols()
	for i, a := range symbols {
		for _, b := range symbols[i+1:] {
			ca, cb := ct.codes[a], ct.codes[b]
			if ca.HasPrefix(cb) || cb.HasPrefix(ca) {
				return false
			}
		}
	}
	return true
}

// BitLen returns the number of bits needed to encode every Symbol counted
// in ft.  Symbols without a Code contribute nothing.
func (ct *CodeTable) BitLen(ft *FrequencyTable) uint64 {
	var sum uint64
	for symbol, freq := range ft {
		sum += freq * uint64(ct.codes[symbol].Size)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\t%d = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
