// Package gentables derives lookup tables from an RLE variant's rule
// functions.
//
// The runtime codecs in the rle package evaluate a variant's decode and
// encode functions per byte and don't need tables to be correct. What tables
// buy is two things: a table-driven implementation can skip re-evaluating
// the rules in its hot loop, and -- more importantly -- building the tables
// exhaustively exercises every control byte and every count, so the
// generator doubles as a consistency check on the rule set itself. Hand-
// maintained tables drift; derived ones can't.
package gentables

import (
	"fmt"

	"github.com/boljen/go-bitmap"
	"github.com/dargueta/rlekit"
	"github.com/dargueta/rlekit/rle"
	"github.com/hashicorp/go-multierror"
)

// NoEncoding is the sentinel stored in an encode table for counts the
// variant has no control byte for.
const NoEncoding = int16(-1)

// probeLimit bounds the count probe for encode tables. Counts are carried in
// a byte, so probing 0..255 covers everything any rule set could accept.
const probeLimit = 256

// Table holds everything derivable from a rule set by scanning its full
// domain. It has no lifecycle of its own: regenerate whenever the rule set
// changes.
type Table struct {
	// Variant is the name of the rule set the table was derived from.
	Variant string

	// Decode maps every control byte to its operation.
	Decode [256]rle.Op

	// Encode maps, for each real operation kind, a count to the control byte
	// expressing it, or NoEncoding.
	Encode [rle.NumOpKinds][probeLimit]int16

	// Ranges holds the observed count bounds per kind, gathered from the
	// decode scan. This is the authoritative range for the format -- the
	// declared constants on the variant are checked against it by Verify.
	// No-op counts carry no information and are not tracked.
	Ranges [rle.NumOpKinds]rle.CountRange

	// KindsUsed flags the operation kinds that appear in the decode table at
	// least once, so a table-driven decoder can skip dead branches.
	KindsUsed rle.KindMask

	// Usage counts how many control bytes decode to each kind. The slot past
	// the real kinds counts invalid bytes.
	Usage [rle.NumOpKinds + 1]int

	// ValidBytes flags every control byte with a valid decoding.
	ValidBytes bitmap.Bitmap
}

// Build scans all 256 control bytes and all probe-able counts of the given
// variant and materializes the result.
func Build(v rle.Variant) *Table {
	table := &Table{
		Variant:    v.Name(),
		ValidBytes: bitmap.New(256),
	}

	for kind := rle.OpCopy; int(kind) < rle.NumOpKinds; kind++ {
		for count := 0; count < probeLimit; count++ {
			table.Encode[kind][count] = NoEncoding
			b, ok := v.EncodeOp(rle.Op{Kind: kind, Count: uint8(count)})
			if ok {
				table.Encode[kind][count] = int16(b)
			}
		}
	}

	var seen [rle.NumOpKinds]bool
	for i := 0; i < 256; i++ {
		op := v.DecodeByte(byte(i))
		table.Decode[i] = op
		table.Usage[op.Kind]++
		if op.Kind == rle.OpInvalid {
			continue
		}

		table.ValidBytes.Set(i, true)
		table.KindsUsed |= rle.MaskOf(op.Kind)

		if op.Kind == rle.OpNoOp {
			continue
		}
		if !seen[op.Kind] {
			table.Ranges[op.Kind] = rle.CountRange{Min: op.Count, Max: op.Count}
			seen[op.Kind] = true
			continue
		}
		if op.Count < table.Ranges[op.Kind].Min {
			table.Ranges[op.Kind].Min = op.Count
		}
		if op.Count > table.Ranges[op.Kind].Max {
			table.Ranges[op.Kind].Max = op.Count
		}
	}
	return table
}

// Verify checks the table against the rule set it was built from: every
// valid control byte must survive a decode/encode round trip, and the
// observed count ranges must agree with the variant's declared ones. All
// violations are reported, not just the first.
func (table *Table) Verify(v rle.Variant) error {
	var result *multierror.Error

	for i := 0; i < 256; i++ {
		op := table.Decode[i]
		if op.Kind == rle.OpInvalid {
			continue
		}

		recoded, ok := v.EncodeOp(op)
		if !ok {
			result = multierror.Append(result, rlekit.ErrTableMismatch.WithMessage(
				fmt.Sprintf("%s: 0x%02x decodes to %s %d but has no encoding",
					table.Variant, i, op.Kind, op.Count)))
			continue
		}
		if recoded != byte(i) {
			result = multierror.Append(result, rlekit.ErrTableMismatch.WithMessage(
				fmt.Sprintf("%s: re-encode mismatch: 0x%02x -> %s %d -> 0x%02x",
					table.Variant, i, op.Kind, op.Count, recoded)))
		}
	}

	for kind := rle.OpCopy; int(kind) < rle.NumOpKinds; kind++ {
		if kind == rle.OpNoOp || !table.KindsUsed.Has(kind) {
			continue
		}

		declared, ok := v.CountRange(kind)
		if !ok {
			result = multierror.Append(result, rlekit.ErrTableMismatch.WithMessage(
				fmt.Sprintf("%s: decode table uses %s but the variant declares no range",
					table.Variant, kind)))
			continue
		}
		if declared != table.Ranges[kind] {
			result = multierror.Append(result, rlekit.ErrTableMismatch.WithMessage(
				fmt.Sprintf("%s: %s range is declared %d-%d but observed %d-%d",
					table.Variant, kind,
					declared.Min, declared.Max,
					table.Ranges[kind].Min, table.Ranges[kind].Max)))
		}
	}

	return result.ErrorOrNil()
}
