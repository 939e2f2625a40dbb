package rle

import "strings"

// OpKind identifies what a decoded control byte tells the decoder to do.
type OpKind uint8

const (
	// OpCopy emits the Count payload bytes following the control byte verbatim.
	OpCopy OpKind = iota
	// OpRepeat emits the single payload byte following the control byte Count
	// times.
	OpRepeat
	// OpLiteral emits the control byte itself as one output byte. Count holds
	// the byte value.
	OpLiteral
	// OpNoOp emits nothing and consumes no payload.
	OpNoOp
	// OpInvalid marks a control byte with no valid decoding in the variant.
	OpInvalid

	// NumOpKinds counts the real operation kinds, i.e. everything before
	// OpInvalid.
	NumOpKinds = int(OpInvalid)
)

var opKindNames = [...]string{"CPY", "REP", "LIT", "NOP", "INVALID"}

func (kind OpKind) String() string {
	if int(kind) < len(opKindNames) {
		return opKindNames[kind]
	}
	return "UNKNOWN"
}

// Op is one decoded RLE operation. Count is a run length for OpCopy and
// OpRepeat, the byte value for OpLiteral, and meaningless for the rest.
type Op struct {
	Kind  OpKind
	Count uint8
}

// InvalidOp is what DecodeByte returns for a control byte the variant assigns
// no meaning to. It must never be fed to EncodeOp or serialized.
var InvalidOp = Op{Kind: OpInvalid, Count: 0}

// KindMask is a bit set over operation kinds.
type KindMask uint8

// MaskOf builds a KindMask containing the given kinds.
func MaskOf(kinds ...OpKind) KindMask {
	var m KindMask
	for _, k := range kinds {
		m |= 1 << k
	}
	return m
}

// Has tells whether the mask contains the given kind.
func (m KindMask) Has(kind OpKind) bool {
	return m&(1<<kind) != 0
}

func (m KindMask) String() string {
	var parts []string
	for kind := OpCopy; int(kind) < NumOpKinds; kind++ {
		if m.Has(kind) {
			parts = append(parts, kind.String())
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}
