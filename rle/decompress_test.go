package rle_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/dargueta/rlekit"
	"github.com/dargueta/rlekit/rle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decompressTestCase struct {
	Input          []byte
	ExpectedOutput []byte
	Name           string
}

func runDecompressTestCase(t *testing.T, v rle.Variant, test decompressTestCase) {
	probed, err := rle.Decompress(v, test.Input, nil)
	require.NoError(t, err, "unexpected error while sizing")
	assert.Equal(t, len(test.ExpectedOutput), probed, "probed size is wrong")

	output := make([]byte, len(test.ExpectedOutput))
	n, err := rle.Decompress(v, test.Input, output)
	require.NoError(t, err, "unexpected error while decompressing")
	assert.Equal(t, len(test.ExpectedOutput), n, "bytes written is wrong")
	assert.Equal(t, test.ExpectedOutput, output)
}

func TestDecompress__Goldbox(t *testing.T) {
	tests := []decompressTestCase{
		{[]byte{}, []byte{}, "empty"},
		{[]byte{0xFD, 0x07}, []byte{7, 7, 7}, "repeat of three"},
		{[]byte{0x02, 'a', 'b', 'c'}, []byte("abc"), "copy of three"},
		{
			[]byte{0x01, 'x', 'y', 0xFF, 'z'},
			[]byte("xyz"),
			"copy then closing repeat",
		},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			runDecompressTestCase(t, rle.Goldbox, test)
		})
	}
}

func TestDecompress__PackBits(t *testing.T) {
	tests := []decompressTestCase{
		{[]byte{0x80}, []byte{}, "lone no-op"},
		{[]byte{0x80, 0xFF, 'Q', 0x80}, bytes.Repeat([]byte{'Q'}, 2), "no-ops around a repeat"},
		{[]byte{0xF1, 0x61}, bytes.Repeat([]byte{0x61}, 16), "repeat of sixteen"},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			runDecompressTestCase(t, rle.PackBits, test)
		})
	}
}

func TestDecompress__PCX(t *testing.T) {
	tests := []decompressTestCase{
		{[]byte{0x41}, []byte{0x41}, "bare literal"},
		{[]byte{0xC4, 0x41}, bytes.Repeat([]byte{0x41}, 4), "repeat of four"},
		{[]byte{0xC0, 0x41}, []byte{}, "zero repeat consumes its payload"},
		{[]byte{0xC0, 0x41, 0x42}, []byte{0x42}, "literal after zero repeat"},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			runDecompressTestCase(t, rle.PCX, test)
		})
	}
}

func TestDecompress__ICNS(t *testing.T) {
	tests := []decompressTestCase{
		{[]byte{0x80, 'A'}, []byte("AAA"), "minimum repeat"},
		{[]byte{0x01, 'A', 'A', 0x82, 'B'}, []byte("AABBBBB"), "copy then repeat"},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			runDecompressTestCase(t, rle.ICNS, test)
		})
	}
}

func TestDecompress__InvalidControlByte(t *testing.T) {
	for _, b := range []byte{0x7E, 0x7F, 0x80} {
		output := make([]byte, 16)
		n, err := rle.Decompress(rle.Goldbox, []byte{0x00, 'A', b}, output)
		require.Error(t, err, "control byte 0x%02x should be rejected", b)
		assert.ErrorIs(t, err, rlekit.ErrInvalidControlByte)
		assert.Equal(t, 1, n, "output before the violation should still be counted")
		assert.Equal(t, byte('A'), output[0])
	}
}

func TestDecompress__TruncatedRepeat(t *testing.T) {
	for _, name := range rle.Names() {
		v, _ := rle.Lookup(name)
		repeatControl, ok := v.EncodeOp(rle.Op{Kind: rle.OpRepeat, Count: 4})
		require.True(t, ok)

		_, err := rle.Decompress(v, []byte{repeatControl}, nil)
		require.Error(t, err, "%s: repeat without payload should fail", name)
		assert.ErrorIs(t, err, rlekit.ErrTruncatedStream)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	}
}

func TestDecompress__TruncatedCopy(t *testing.T) {
	// Copy of four with only two payload bytes behind it.
	_, err := rle.Decompress(rle.PackBits, []byte{0x03, 'a', 'b'}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, rlekit.ErrTruncatedStream)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
