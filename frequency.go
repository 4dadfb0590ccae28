package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies counts the occurrences of each byte in data.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	ft.Add(data)
	return ft
}

// Add counts the occurrences of each byte in data on top of the counts
// already in this FrequencyTable.
func (ft *FrequencyTable) Add(data []byte) {
	for _, b := range data {
		ft[b]++
	}
}

// Distinct returns the number of Symbols with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum += freq
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.  Symbols with a count of zero are omitted.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if freq := ft[symbol]; freq != 0 {
			fmt.Fprintf(&buf, "\t%d = %d\n", symbol, freq)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
