package huffman

// bitWriter packs Codes into bytes, least significant bit first.
type bitWriter struct {
	buf []byte
	n   uint64
}

func newBitWriter(sizeHint uint64) *bitWriter {
	return &bitWriter{buf: make([]byte, 0, (sizeHint+7)/8)}
}

func (bw *bitWriter) WriteCode(hc Code) {
	for i := byte(0); i < hc.Size; i++ {
		shift := uint(bw.n % 8)
		if shift == 0 {
			bw.buf = append(bw.buf, 0)
		}
		bw.buf[len(bw.buf)-1] |= hc.Bit(i) << shift
		bw.n++
	}
}

// Len returns the number of bits written so far.
func (bw *bitWriter) Len() uint64 {
	return bw.n
}

// Padding returns the number of zero bits filling out the last byte.
func (bw *bitWriter) Padding() byte {
	return paddingFor(bw.n)
}

func (bw *bitWriter) Bytes() []byte {
	return bw.buf
}

// bitReader yields the bits of a packed payload, least significant bit
// first, stopping before the trailing padding bits.
type bitReader struct {
	data []byte
	n    uint64
	pos  uint64
}

func newBitReader(data []byte, padding byte) *bitReader {
	n := uint64(len(data)) * 8
	if uint64(padding) > n {
		n = 0
	} else {
		n -= uint64(padding)
	}
	return &bitReader{data: data, n: n}
}

// ReadBit returns the next bit.  The second return value is false once the
// payload is exhausted.
func (br *bitReader) ReadBit() (byte, bool) {
	if br.pos >= br.n {
		return 0, false
	}
	bit := bitAt(br.data[br.pos/8], uint(br.pos%8))
	br.pos++
	return bit, true
}

// Remaining returns the number of unread bits.
func (br *bitReader) Remaining() uint64 {
	return br.n - br.pos
}
