package huffman

// Symbol represents one byte of input.  The alphabet is fixed at NumSymbols
// values; negative symbols are not valid, except for InvalidSymbol.
type Symbol int16

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol marks tree nodes that do not carry a symbol, i.e. internal
// nodes and the synthetic sibling of a lone leaf.  It is also returned by
// some functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is in the alphabet.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= MaxSymbol
}
