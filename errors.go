package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when there is nothing to encode, or when a
	// container declares zero symbols.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrTooManySymbols is returned when the input uses all 256 byte
	// values, which the 1-byte symbol count cannot represent.
	ErrTooManySymbols = errors.New("huffman: too many distinct symbols")

	// ErrCodeTooLong is returned when a derived code would not fit in the
	// container's 8-bit code field.
	ErrCodeTooLong = errors.New("huffman: code too long")

	// ErrMalformedContainer is returned when a container's header or code
	// table is structurally invalid.
	ErrMalformedContainer = errors.New("huffman: malformed container")

	// ErrCorruptBitstream is returned when the payload cannot be walked to
	// completion against the code tree.
	ErrCorruptBitstream = errors.New("huffman: corrupt bitstream")

	// ErrAmbiguousQueueRemoval is returned when a PriorityQueue is asked
	// to remove an entry through a handle it does not hold.
	ErrAmbiguousQueueRemoval = errors.New("huffman: ambiguous priority queue removal")

	// ErrQueueUnderflow is returned when a PriorityQueue holds too few
	// entries for the requested extraction.
	ErrQueueUnderflow = errors.New("huffman: priority queue underflow")
)
