package rle

// pcxVariant is the scanline encoding of ZSoft's PCX image format.
//
// There is no copy operation. A byte with both top bits set (0xC0-0xFF) is a
// repeat whose count lives in the low six bits, 0-63; anything else stands
// for itself. The price is that pixel values of 0xC0 and above can never be
// bare literals -- even a single occurrence has to ride in a repeat token.
type pcxVariant struct{}

func (pcxVariant) Name() string { return "pcx" }

func (pcxVariant) DecodeByte(b byte) Op {
	if b&0xC0 == 0xC0 {
		return Op{Kind: OpRepeat, Count: b & 0x3F}
	}
	return Op{Kind: OpLiteral, Count: b}
}

func (pcxVariant) EncodeOp(op Op) (byte, bool) {
	switch op.Kind {
	case OpRepeat:
		if op.Count <= 63 {
			return 0xC0 | op.Count, true
		}
	case OpLiteral:
		if op.Count <= 0xBF {
			return op.Count, true
		}
	}
	return 0, false
}

func (pcxVariant) CountRange(kind OpKind) (CountRange, bool) {
	switch kind {
	case OpRepeat:
		return CountRange{Min: 0, Max: 63}, true
	case OpLiteral:
		return CountRange{Min: 0, Max: 191}, true
	}
	return CountRange{}, false
}

func (pcxVariant) layout() codecLayout {
	return codecLayout{
		minRepeat:      2,
		maxRepeat:      63,
		literalOnly:    true,
		maxBareLiteral: 0xBF,
	}
}
