package huffman

func bitAt(b byte, i uint) byte {
	return (b >> i) & 1
}

func paddingFor(numBits uint64) byte {
	return byte((8 - numBits%8) % 8)
}
