// Package rle implements byte-exact run-length codecs for a small zoo of
// legacy file formats.
//
// Run-length encoding replaces a run of identical bytes with a (count, value)
// token. Every format in this package uses single-byte tokens, but each one
// carves up the 256 possible control bytes differently: which values mean
// "repeat", which mean "copy literals", whether a byte can stand for itself,
// and which values mean nothing at all. Those layout rules are what make the
// formats mutually incompatible, and reproducing them bit-for-bit is the whole
// point -- output from this package must be readable by the original decoders,
// some of which shipped in the 1980s and are not getting patched.
//
// The variants:
//
//   - goldbox: the asset packer used by SSI's Gold Box engine. Repeat
//     runs of 1-127, copy runs of 1-126, and three dead control bytes
//     (0x7E-0x80). The engine's decoder requires the final token of a stream
//     to be a repeat, so the compressor closes every stream with one even
//     when the trailing run is a single byte.
//   - packbits: the classic Apple/TIFF scheme. Repeat runs of 2-128, copy
//     runs of 1-128, and 0x80 as a no-op filler byte.
//   - pcx: ZSoft Paintbrush scanline encoding. No copy runs; a byte below
//     0xC0 simply stands for itself, and 0xC0|n prefixes a repeat of n.
//   - icns: the QuickDraw-style packing used inside Apple icon containers.
//     Repeat runs of 3-130, copy runs of 1-128; runs shorter than three
//     bytes must travel as literals.
//
// All four compress/decompress entry points share one calling convention:
// pass a nil destination to get the exact output size without writing
// anything, or pass a real buffer and compare the returned total against its
// length to detect truncation. Writes are bounds-checked individually, so an
// undersized buffer is never overrun and never an error.
package rle
