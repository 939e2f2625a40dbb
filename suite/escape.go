package suite

import (
	"fmt"

	"github.com/dargueta/rlekit"
)

// Fixture inputs are authored as C-style escape strings so binary test data
// can live in a plain text file. The distinguished error values let tests of
// the expander itself tell failure modes apart.
var (
	ErrEscapeDangling = rlekit.ErrBadFixture.WithMessage("dangling backslash at end of input")
	ErrEscapeHex      = rlekit.ErrBadFixture.WithMessage("hex escape needs exactly two hex digits")
	ErrEscapeDecimal  = rlekit.ErrBadFixture.WithMessage("decimal escape out of byte range")
	ErrEscapeChar     = rlekit.ErrBadFixture.WithMessage("unknown escape character")
)

// ExpandEscapes decodes a fixture input string into raw bytes. Supported
// escapes: \xHH with exactly two hex digits, decimal \0 through \255 (at
// most three digits), the C single-character escapes \a \b \f \n \r \t \v,
// and \\ and \" for the two metacharacters. Everything else after a
// backslash is an error.
func ExpandEscapes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); {
		ch := s[i]
		if ch != '\\' {
			out = append(out, ch)
			i++
			continue
		}

		i++
		if i >= len(s) {
			return nil, ErrEscapeDangling
		}

		switch esc := s[i]; {
		case esc == 'x':
			if i+2 >= len(s) || !isHexDigit(s[i+1]) || !isHexDigit(s[i+2]) {
				return nil, ErrEscapeHex.WithMessage(fmt.Sprintf("at offset %d", i-1))
			}
			out = append(out, hexValue(s[i+1])<<4|hexValue(s[i+2]))
			i += 3

		case esc >= '0' && esc <= '9':
			value := 0
			digits := 0
			for i < len(s) && digits < 3 && s[i] >= '0' && s[i] <= '9' {
				value = value*10 + int(s[i]-'0')
				digits++
				i++
			}
			if value > 255 {
				return nil, ErrEscapeDecimal.WithMessage(fmt.Sprintf("\\%d", value))
			}
			out = append(out, byte(value))

		default:
			expanded, ok := charEscapes[esc]
			if !ok {
				return nil, ErrEscapeChar.WithMessage(fmt.Sprintf("\\%c at offset %d", esc, i-1))
			}
			out = append(out, expanded)
			i++
		}
	}
	return out, nil
}

var charEscapes = map[byte]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'"':  '"',
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexValue(ch byte) byte {
	switch {
	case ch >= 'a':
		return ch - 'a' + 10
	case ch >= 'A':
		return ch - 'A' + 10
	}
	return ch - '0'
}
