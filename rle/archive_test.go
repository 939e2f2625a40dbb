package rle_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/dargueta/rlekit/rle"
	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTrip(t *testing.T) {
	randomData := make([]byte, 119)
	rand.Read(randomData)

	testData := []struct {
		Name string
		Data []byte
	}{
		{"homogenous", bytes.Repeat([]byte{100}, 9174)},
		{"empty", []byte{}},
		{"heterogenous", randomData},
	}

	for _, name := range rle.Names() {
		v, _ := rle.Lookup(name)
		t.Run(name, func(t *testing.T) {
			for _, data := range testData {
				t.Run(data.Name, func(t *testing.T) {
					runArchiveRoundTripTest(t, v, data.Data)
				})
			}
		})
	}
}

func runArchiveRoundTripTest(t *testing.T, v rle.Variant, sourceData []byte) {
	archiveBuffer := bytes.Buffer{}

	packedSize, err := rle.CompressArchive(v, bytes.NewReader(sourceData), &archiveBuffer)
	require.NoError(t, err, "unexpected error while compressing")
	t.Logf("asset size after packing: %d -> %d (rle), %d (archived)",
		len(sourceData), packedSize, archiveBuffer.Len())

	decompressedBuffer := make([]byte, len(sourceData))
	decompressedWriter := bytewriter.New(decompressedBuffer)

	n, err := rle.DecompressArchive(v, bytes.NewReader(archiveBuffer.Bytes()), decompressedWriter)
	require.NoError(t, err, "unexpected error while decompressing")
	assert.EqualValues(t, len(sourceData), n, "decompressed asset has wrong size")
	assert.Equal(t, sourceData, decompressedBuffer, "decompressed data is wrong")
}

func TestDecompressArchiveToBytes(t *testing.T) {
	original := append(bytes.Repeat([]byte{0}, 512), []byte("header")...)

	archiveBuffer := bytes.Buffer{}
	_, err := rle.CompressArchive(rle.Goldbox, bytes.NewReader(original), &archiveBuffer)
	require.NoError(t, err)

	decompressed, err := rle.DecompressArchiveToBytes(rle.Goldbox, &archiveBuffer)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestDecompressArchive__NotGzip(t *testing.T) {
	output := bytes.Buffer{}
	_, err := rle.DecompressArchive(rle.PackBits, bytes.NewReader([]byte("not a gzip stream")), &output)
	assert.Error(t, err)
}
