package rle

import "sort"

// CountRange gives the inclusive bounds of the count argument a variant
// accepts for one operation kind.
type CountRange struct {
	Min uint8
	Max uint8
}

// Contains tells whether count falls inside the range.
func (r CountRange) Contains(count uint8) bool {
	return count >= r.Min && count <= r.Max
}

// Variant is the rule set of one legacy RLE format: a total decoding over all
// 256 control byte values, and the partial inverse mapping operations back to
// control bytes.
//
// Every variant satisfies the round-trip contract: for any byte b where
// DecodeByte(b) is not invalid, EncodeOp(DecodeByte(b)) returns (b, true).
// The gentables package checks this exhaustively.
type Variant interface {
	// Name is the identifier used for registry lookup, e.g. "goldbox".
	Name() string

	// DecodeByte maps a control byte to its operation. It is total: bytes the
	// format assigns no meaning to decode to InvalidOp.
	DecodeByte(b byte) Op

	// EncodeOp maps an operation back to its control byte. The second return
	// is false when the operation's kind or count is not representable in
	// this format.
	EncodeOp(op Op) (byte, bool)

	// CountRange reports the declared count bounds for an operation kind, or
	// false for kinds the format does not use (or, for OpNoOp, does not give
	// a meaningful count).
	CountRange(kind OpKind) (CountRange, bool)

	// layout hands the greedy compressor its per-format parameters. Keeping
	// it unexported keeps the variant set closed: a rule set outside this
	// package could not promise the bit-exactness this package is for.
	layout() codecLayout
}

// codecLayout parameterizes the shared greedy compressor.
type codecLayout struct {
	// minRepeat is the shortest run worth a repeat token mid-stream.
	minRepeat int
	// maxRepeat caps run counting for repeat tokens.
	maxRepeat int
	// maxCopy caps run counting for copy tokens. Zero for formats without a
	// copy operation.
	maxCopy int
	// literalOnly formats (pcx) have no copy operation; unrepeated bytes are
	// emitted as themselves when possible.
	literalOnly bool
	// maxBareLiteral is the highest byte value a literalOnly format can emit
	// as itself without colliding with a repeat prefix.
	maxBareLiteral byte
	// repeatAtTail forces the stream to end with a repeat token, even a
	// repeat of one. The goldbox decoder depends on this.
	repeatAtTail bool
}

// The four supported formats. Each value is stateless and safe for
// concurrent use.
var (
	Goldbox  Variant = goldboxVariant{}
	PackBits Variant = packbitsVariant{}
	PCX      Variant = pcxVariant{}
	ICNS     Variant = icnsVariant{}
)

var registry = map[string]Variant{
	Goldbox.Name():  Goldbox,
	PackBits.Name(): PackBits,
	PCX.Name():      PCX,
	ICNS.Name():     ICNS,
}

// Lookup finds a variant by its registry name.
func Lookup(name string) (Variant, bool) {
	v, ok := registry[name]
	return v, ok
}

// Names lists the registered variant names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
