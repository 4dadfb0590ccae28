package huffman

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var abracadabraContainer = []byte{
	0x05,
	0x01, 'a', 0x00,
	0x03, 'b', 0x03,
	0x03, 'c', 0x01,
	0x03, 'd', 0x05,
	0x03, 'r', 0x07,
	0x01,
	0x76, 0x51, 0x3b,
}

func TestEncode_Abracadabra(t *testing.T) {
	raw, err := Encode([]byte("abracadabra"))
	require.NoError(t, err)
	require.Equal(t, abracadabraContainer, raw)
	require.Equal(t, byte(5), raw[0])

	out, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, "abracadabra", string(out))
}

func TestEncode_SingleSymbol(t *testing.T) {
	raw, err := Encode([]byte("aaaa"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x01, 'a', 0x00, 0x04, 0x00}, raw)

	out, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, "aaaa", string(out))
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	all := make([]byte, NumSymbols)
	for index := range all {
		all[index] = byte(index)
	}
	_, err = Encode(all)
	require.ErrorIs(t, err, ErrTooManySymbols)

	var skewed []byte
	for index, freq := range []int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55} {
		skewed = append(skewed, bytes.Repeat([]byte{byte('a' + index)}, freq)...)
	}
	_, err = Encode(skewed)
	require.ErrorIs(t, err, ErrCodeTooLong)
}

func TestEncode_MaxDistinctSymbols(t *testing.T) {
	input := make([]byte, 0, 2*(NumSymbols-1))
	for round := 0; round < 2; round++ {
		for symbol := 0; symbol < NumSymbols-1; symbol++ {
			input = append(input, byte(symbol))
		}
	}

	raw, err := Encode(input)
	require.NoError(t, err)
	require.Equal(t, byte(NumSymbols-1), raw[0])

	out, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		alphabet := make([]byte, 1+rng.Intn(9))
		rng.Read(alphabet)

		input := make([]byte, 1+rng.Intn(500))
		for index := range input {
			input[index] = alphabet[rng.Intn(len(alphabet))]
		}

		raw, err := Encode(input)
		require.NoError(t, err, "input %x", input)

		var c Container
		require.NoError(t, c.UnmarshalBinary(raw))
		require.True(t, c.Table.IsPrefixFree(), "input %x", input)

		out, err := Decode(raw)
		require.NoError(t, err, "input %x", input)
		require.Equal(t, input, out)
	}
}

func TestDecode_Truncated(t *testing.T) {
	raw, err := Encode([]byte("abcdefgh"))
	require.NoError(t, err)

	var c Container
	require.NoError(t, c.UnmarshalBinary(raw))
	require.Equal(t, byte(3), c.Table.MaxSize())
	require.Equal(t, byte(0), c.Padding)
	require.Len(t, c.Payload, 3)

	_, err = Decode(raw[:len(raw)-1])
	require.ErrorIs(t, err, ErrCorruptBitstream)
}

func TestDecode_DirtyPadding(t *testing.T) {
	raw := append([]byte(nil), abracadabraContainer...)
	raw[len(raw)-1] |= 0x80
	_, err := Decode(raw)
	require.ErrorIs(t, err, ErrCorruptBitstream)
}

func TestDecode_Malformed(t *testing.T) {
	type testRow struct {
		name string
		raw  []byte
		err  error
	}

	testData := [...]testRow{
		{"empty", nil, ErrMalformedContainer},
		{"zero-symbols", []byte{0x00, 0x00, 0x00}, ErrEmptyInput},
		{"short-records", []byte{0x02, 0x01, 'a', 0x00}, ErrMalformedContainer},
		{"missing-padding", []byte{0x01, 0x01, 'a', 0x00}, ErrMalformedContainer},
		{"zero-length", []byte{0x01, 0x00, 'a', 0x00, 0x00, 0x00}, ErrMalformedContainer},
		{"long-code", []byte{0x01, 0x09, 'a', 0x00, 0x00, 0x00}, ErrMalformedContainer},
		{"stray-bits", []byte{0x01, 0x01, 'a', 0x02, 0x00, 0x00}, ErrMalformedContainer},
		{"duplicate", []byte{0x02, 0x01, 'a', 0x00, 0x01, 'a', 0x01, 0x00, 0x00}, ErrMalformedContainer},
		{"prefix", []byte{0x02, 0x01, 'a', 0x00, 0x02, 'b', 0x00, 0x00, 0x00}, ErrMalformedContainer},
		{"same-code", []byte{0x02, 0x01, 'a', 0x01, 0x01, 'b', 0x01, 0x00, 0x00}, ErrMalformedContainer},
		{"big-padding", []byte{0x01, 0x01, 'a', 0x00, 0x08, 0x00}, ErrMalformedContainer},
		{"no-payload", []byte{0x01, 0x01, 'a', 0x00, 0x00}, ErrCorruptBitstream},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Decode(row.raw)
			require.ErrorIs(t, err, row.err)
		})
	}
}

func TestContainer_WriteTo(t *testing.T) {
	var c Container
	require.NoError(t, c.UnmarshalBinary(abracadabraContainer))
	require.Equal(t, len(abracadabraContainer), c.Size())
	require.Equal(t, "(Huffman container with 5 symbols, 3 payload bytes, 1 padding bits)", c.String())

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len(abracadabraContainer)), n)
	require.Equal(t, abracadabraContainer, buf.Bytes())

	var empty Container
	_, err = empty.MarshalBinary()
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestCompress(t *testing.T) {
	const input = "she sells sea shells by the sea shore"

	var packed bytes.Buffer
	_, err := Compress(&packed, strings.NewReader(input))
	require.NoError(t, err)

	var unpacked bytes.Buffer
	n, err := Decompress(&unpacked, &packed)
	require.NoError(t, err)
	require.Equal(t, int64(len(input)), n)
	require.Equal(t, input, unpacked.String())
}
