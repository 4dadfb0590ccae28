// Package huffman implements a Huffman-coding compressor for byte sequences.
// Compressed data is stored in a small self-describing container: the code
// table needed to rebuild the tree, followed by the packed bitstream.
//
// Codes are derived from a Huffman tree built with a priority queue over
// symbol frequencies; they are neither adaptive nor canonical.  The
// container gives each code a single byte, so no code may exceed
// MaxCodeSize bits, and the symbol count is a single byte, so at most 255
// distinct byte values may appear in one input.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
