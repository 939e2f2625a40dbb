package rle_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/rlekit/rle"
)

// Seed corpus shared by both fuzz targets: boundary-sized runs, alternating
// data, the dead goldbox control bytes, and repeat prefixes.
func addSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("A"))
	f.Add([]byte("AB"))
	f.Add([]byte("AAB"))
	f.Add([]byte{0x7E, 0x7F, 0x80, 0x81})
	f.Add([]byte{0xC0, 0xC1, 0xFF})
	f.Add(bytes.Repeat([]byte{0}, 130))
	f.Add(bytes.Repeat([]byte{0xFF}, 260))
	f.Add(append(bytes.Repeat([]byte{'x'}, 5), []byte("abcdef")...))
}

func FuzzRoundTrip(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, name := range rle.Names() {
			v, _ := rle.Lookup(name)

			compressed := make([]byte, rle.Compress(v, data, nil))
			n := rle.Compress(v, data, compressed)
			if n != len(compressed) {
				t.Fatalf("%s: tight compress wrote %d, probe said %d", name, n, len(compressed))
			}

			decompressed := make([]byte, len(data))
			n, err := rle.Decompress(v, compressed, decompressed)
			if err != nil {
				t.Fatalf("%s: decompressing own output failed: %s", name, err.Error())
			}
			if n != len(data) {
				t.Fatalf("%s: round trip size %d, want %d", name, n, len(data))
			}
			if !bytes.Equal(data, decompressed) {
				t.Errorf("%s: round trip corrupted the data", name)
			}
		}
	})
}

// Arbitrary input against a fixed small destination: both directions must
// return a length and never write outside the buffer, no matter how
// malformed the input is. Decoding errors are fine; panics are not.
func FuzzBoundedDestination(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		dest := make([]byte, 1024)
		for _, name := range rle.Names() {
			v, _ := rle.Lookup(name)

			if n := rle.Compress(v, data, dest); n < 0 {
				t.Fatalf("%s: negative compress result %d", name, n)
			}
			n, err := rle.Decompress(v, data, dest)
			if n < 0 {
				t.Fatalf("%s: negative decompress result %d", name, n)
			}
			_ = err // malformed input is allowed to fail, not to crash
		}
	})
}
