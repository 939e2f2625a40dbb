package gentables

import (
	"fmt"
	"io"

	"github.com/dargueta/rlekit/rle"
)

// WriteReport prints a human-readable listing of every control byte and its
// decoding, one per line, followed by the observed metadata. Handy for
// eyeballing a rule set against a format's documentation.
func (table *Table) WriteReport(w io.Writer) error {
	_, err := fmt.Fprintf(w, "// Operation table for RLE variant '%s'\n", table.Variant)
	if err != nil {
		return err
	}

	for i := 0; i < 256; i++ {
		op := table.Decode[i]
		if table.ValidBytes.Get(i) {
			_, err = fmt.Fprintf(w, "0x%02x (%d/%d) => %s %d\n", i, i, int8(i), op.Kind, op.Count)
		} else {
			_, err = fmt.Fprintf(w, "0x%02x (%d/%d) => %s\n", i, i, int8(i), op.Kind)
		}
		if err != nil {
			return err
		}
	}

	if _, err = fmt.Fprintf(w, "\n// Kinds used: %s\n", table.KindsUsed); err != nil {
		return err
	}
	for kind, usage := range table.Usage[:len(table.Usage)-1] {
		if usage == 0 {
			continue
		}
		r := table.Ranges[kind]
		_, err = fmt.Fprintf(
			w, "// %s: %d control bytes, counts %d-%d\n",
			opKindFromIndex(kind), usage, r.Min, r.Max)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteGo emits the table as a compilable Go source file in the given
// package, for a table-driven runtime to build in without re-deriving
// anything at startup.
func (table *Table) WriteGo(w io.Writer, pkg string) error {
	var err error
	put := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	put("// Code generated by rlekit gen; DO NOT EDIT.\n\n")
	put("package %s\n\n", pkg)
	put("import \"github.com/dargueta/rlekit/rle\"\n\n")

	put("// %sDecode maps every control byte of the '%s' variant to its operation.\n",
		table.Variant, table.Variant)
	put("var %sDecode = [256]rle.Op{\n", table.Variant)
	for i := 0; i < 256; i++ {
		if i%4 == 0 {
			put("\t")
		}
		op := table.Decode[i]
		put("{Kind: %d, Count: %d}, ", op.Kind, op.Count)
		if i%4 == 3 {
			put("// 0x%02x-0x%02x\n", i-3, i)
		}
	}
	put("}\n\n")

	put("// %sEncode maps, per operation kind, a count to its control byte;\n", table.Variant)
	put("// -1 marks counts the format cannot express.\n")
	put("var %sEncode = [%d][%d]int16{\n", table.Variant, len(table.Encode), probeLimit)
	for kind := range table.Encode {
		put("\t// %s\n\t{", opKindFromIndex(kind))
		for count, b := range table.Encode[kind] {
			if count > 0 {
				put(", ")
			}
			put("%d", b)
		}
		put("},\n")
	}
	put("}\n\n")

	put("// %sKindsUsed is the bit set of operation kinds the decode table uses: %s.\n",
		table.Variant, table.KindsUsed)
	put("const %sKindsUsed = rle.KindMask(%d)\n", table.Variant, table.KindsUsed)

	return err
}

func opKindFromIndex(kind int) string {
	return rle.OpKind(kind).String()
}
