package regtext

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// controlEscapes maps the low control code units that get a named one-letter
// escape (spec.md §4.4.2) instead of a numeric one.
var controlEscapes = map[uint16]byte{
	7: 'a', 8: 'b', 9: 't', 10: 'n', 11: 'v', 12: 'f', 13: 'r', 27: 'e',
}

var controlUnescapes = map[byte]uint16{
	'a': 7, 'b': 8, 't': 9, 'n': 10, 'v': 11, 'f': 12, 'r': 13, 'e': 27,
}

func isHexDigit(c uint16) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigit(c uint16) bool {
	return c >= '0' && c <= '7'
}

// EscapeString renders s for embedding in the v2/v1 text formats
// (spec.md §4.4.2, dump_strW): every UTF-16 code unit above 127 becomes
// \xNNNN (padded to four digits only when the following unit would
// otherwise read as part of the hex escape), control code units below 32
// become a named escape or \NNN octal (same padding rule), and a literal
// backslash or either caller-supplied delimiter is backslash-prefixed.
func EscapeString(s string, d1, d2 rune) string {
	units := utf16.Encode([]rune(s))
	var b strings.Builder
	for i, c := range units {
		switch {
		case c == 0 && i == len(units)-1:
			// trailing NUL is dropped, not escaped
		case c > 127:
			if i+1 < len(units) && isHexDigit(units[i+1]) {
				fmt.Fprintf(&b, `\x%04x`, c)
			} else {
				fmt.Fprintf(&b, `\x%x`, c)
			}
		case c < 32:
			if letter, ok := controlEscapes[c]; ok {
				b.WriteByte('\\')
				b.WriteByte(letter)
			} else if i+1 < len(units) && isOctalDigit(units[i+1]) {
				fmt.Fprintf(&b, `\%03o`, c)
			} else {
				fmt.Fprintf(&b, `\%o`, c)
			}
		case rune(c) == '\\' || rune(c) == d1 || rune(c) == d2:
			b.WriteByte('\\')
			b.WriteRune(rune(c))
		default:
			b.WriteRune(rune(c))
		}
	}
	return b.String()
}

// UnescapeString decodes a raw (still-escaped) substring produced by a prior
// boundary scan — see findRawEnd and splitKeypathRaw — back into its
// original text (spec.md §4.4.3, parse_strW). It returns an error only for a
// dangling backslash at end of input.
func UnescapeString(s string) (string, error) {
	var units []uint16
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(s[i:])
			units = append(units, utf16.Encode([]rune{r})...)
			i += size
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("regtext: dangling escape at end of %q", s)
		}
		e := s[i]
		switch {
		case controlUnescapes[e] != 0:
			units = append(units, controlUnescapes[e])
			i++
		case e == 'x':
			i++
			start := i
			for i < len(s) && i-start < 4 && isHexDigit(uint16(s[i])) {
				i++
			}
			if i == start {
				units = append(units, uint16('x'))
			} else {
				v, _ := strconv.ParseUint(s[start:i], 16, 32)
				units = append(units, uint16(v))
			}
		case e >= '0' && e <= '7':
			start := i
			for i < len(s) && i-start < 3 && s[i] >= '0' && s[i] <= '7' {
				i++
			}
			v, _ := strconv.ParseUint(s[start:i], 8, 32)
			units = append(units, uint16(v))
		default:
			units = append(units, uint16(e))
			i++
		}
	}
	return string(utf16.Decode(units)), nil
}

// findRawEnd returns the index of the first occurrence of term in s that is
// not escaped, skipping exactly one extra byte after every backslash. This
// is sufficient to locate a format delimiter (a closing quote or bracket)
// without fully interpreting escape semantics, because a literal occurrence
// of term is always backslash-escaped by EscapeString when it is also one of
// the call's forbidden delimiters. Returns -1 if term is never found.
func findRawEnd(s string, term byte) int {
	i := 0
	for i < len(s) {
		if s[i] == '\\' {
			i += 2
			continue
		}
		if s[i] == term {
			return i
		}
		i++
	}
	return -1
}

// splitKeypathRaw splits a section header's bracket content on raw backslash
// bytes. Key and value names may not contain a literal backslash — the same
// rule the real Windows registry API enforces on key names — so a plain byte
// split is sound here and needs no escape-aware lookahead; see package doc.
func splitKeypathRaw(s string) []string {
	return strings.Split(s, Backslash)
}

// parseHexPayload parses a comma-separated hex byte list, tolerating the
// whitespace and backslash-newline continuations a wrapped hex: line
// introduces (spec.md §4.4.5).
func parseHexPayload(s string) ([]byte, error) {
	var clean strings.Builder
	clean.Grow(len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\\' {
			continue
		}
		clean.WriteRune(r)
	}
	parts := strings.Split(clean.String(), HexByteSeparator)
	buf := make([]byte, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if len(p) == 1 {
			p = "0" + p
		}
		b, err := hex.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("regtext: invalid hex byte %q: %w", p, err)
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

// encodeUTF16LEZeroTerminated renders s as null-terminated UTF-16LE bytes,
// the wire representation of REG_SZ/REG_EXPAND_SZ value data (spec.md §3).
func encodeUTF16LEZeroTerminated(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, (len(units)+1)*2)
	for i, u := range units {
		buf[i*2] = byte(u)
		buf[i*2+1] = byte(u >> 8)
	}
	return buf
}

// decodeUTF16LEString reads UTF-16LE bytes up to (not including) the first
// null code unit, or the whole buffer if none is present.
func decodeUTF16LEString(data []byte) string {
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		u := uint16(data[i]) | uint16(data[i+1])<<8
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}

// decodeUTF16LEMultiString splits REG_MULTI_SZ data on null code units,
// dropping the final (double-null) terminator entry.
func decodeUTF16LEMultiString(data []byte) []string {
	var out []string
	var cur []uint16
	for i := 0; i+1 < len(data); i += 2 {
		u := uint16(data[i]) | uint16(data[i+1])<<8
		if u == 0 {
			if len(cur) == 0 {
				break
			}
			out = append(out, string(utf16.Decode(cur)))
			cur = nil
			continue
		}
		cur = append(cur, u)
	}
	if len(cur) > 0 {
		out = append(out, string(utf16.Decode(cur)))
	}
	return out
}

// encodeUTF16LEMultiString renders vals as the concatenated null-terminated
// REG_MULTI_SZ wire format, double-null terminated.
func encodeUTF16LEMultiString(vals []string) []byte {
	var buf []byte
	for _, v := range vals {
		buf = append(buf, encodeUTF16LEZeroTerminated(v)...)
	}
	buf = append(buf, 0, 0)
	return buf
}

func formatDword(v uint32) string {
	return fmt.Sprintf(DWORDPrefix+DWORDHexFormat, v)
}
