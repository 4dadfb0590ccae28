// huffpack compresses and decompresses files with Huffman coding.
//
// Usage:
//
//	huffpack [-d|--decompress] [-o|--output <file>] [-v|--verbose] [<file>|-]
//
// With no file, or with '-', input is read from stdin.  Output goes to
// stdout unless -o is given.
//
// Options:
//
//	-d, --decompress  Decompress instead of compressing
//	-o, --output      Write output to the named file
//	-v, --verbose     Print the code table and sizes to stderr
//	-h, --help        Print help message
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	huffman "github.com/chronos-tachyon/huffpack"
)

var (
	decompress bool
	outputPath string
	verbose    bool
	showHelp   bool
)

func init() {
	flag.BoolVar(&decompress, "d", false, "decompress")
	flag.BoolVar(&decompress, "decompress", false, "decompress")
	flag.StringVar(&outputPath, "o", "", "output file")
	flag.StringVar(&outputPath, "output", "", "output file")
	flag.BoolVar(&verbose, "v", false, "verbose mode")
	flag.BoolVar(&verbose, "verbose", false, "verbose mode")
	flag.BoolVar(&showHelp, "h", false, "print help message")
	flag.BoolVar(&showHelp, "help", false, "print help message")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-d|--decompress] [-o|--output <file>] [-v|--verbose] [<file>|-]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Compress or decompress a file with Huffman coding.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  -d, --decompress  decompress instead of compressing\n")
	fmt.Fprintf(os.Stderr, "  -o, --output      write output to the named file\n")
	fmt.Fprintf(os.Stderr, "  -v, --verbose     print the code table and sizes\n")
	fmt.Fprintf(os.Stderr, "  -h, --help        print this message\n")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffpack: ")

	flag.Usage = usage
	flag.Parse()

	if showHelp {
		usage()
		os.Exit(0)
	}
	if flag.NArg() > 1 {
		usage()
		os.Exit(2)
	}

	input, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatalf("read: %v", err)
	}

	var output []byte
	if decompress {
		output, err = runDecompress(input)
	} else {
		output, err = runCompress(input)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := writeOutput(outputPath, output); err != nil {
		log.Fatalf("write: %v", err)
	}
}

func runCompress(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, huffman.ErrEmptyInput
	}

	ft := huffman.CountFrequencies(input)
	var e huffman.Encoder
	if err := e.Init(&ft); err != nil {
		return nil, err
	}
	c, err := e.EncodeBytes(input)
	if err != nil {
		return nil, err
	}

	if verbose {
		_, _ = e.Dump(os.Stderr)
		log.Printf("%d bytes in, %d bytes out", len(input), c.Size())
	}
	return c.MarshalBinary()
}

func runDecompress(input []byte) ([]byte, error) {
	var c huffman.Container
	if err := c.UnmarshalBinary(input); err != nil {
		return nil, err
	}

	if verbose {
		log.Print(c.String())
		_, _ = c.Table.Dump(os.Stderr)
	}
	return huffman.DecodeContainer(&c)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := io.Copy(os.Stdout, bytes.NewReader(data))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
