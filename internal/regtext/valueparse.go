package regtext

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/winelayer/regsrv/internal/keytree"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

// parseValueLine parses one "name=payload" or "@=payload" line and attaches
// the decoded value to k (spec.md §4.4.1 "value", §4.4.4).
func parseValueLine(k *keytree.Key, trim string, scanner *bufio.Scanner, lineNo *int, currentLevel int) error {
	var name, rest string
	switch {
	case strings.HasPrefix(trim, DefaultValuePrefix):
		name, rest = "", trim[len(DefaultValuePrefix):]
	case strings.HasPrefix(trim, Quote):
		content := trim[len(Quote):]
		end := findRawEnd(content, '"')
		if end < 0 {
			return fmt.Errorf("regtext: unterminated value name in %q", trim)
		}
		decoded, err := UnescapeString(content[:end])
		if err != nil {
			return err
		}
		name, rest = decoded, content[end+1:]
	default:
		return fmt.Errorf("regtext: malformed value line %q", trim)
	}

	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, ValueAssignment) {
		return fmt.Errorf("regtext: missing %q in %q", ValueAssignment, trim)
	}
	payload := strings.TrimSpace(rest[len(ValueAssignment):])

	typ, data, err := parsePayload(payload, scanner, lineNo)
	if err != nil {
		return err
	}
	k.SetValue(name, typ, data, currentLevel)
	return nil
}

// parsePayload decodes one of the five payload forms in spec.md §4.4.1.
func parsePayload(payload string, scanner *bufio.Scanner, lineNo *int) (regtypes.ValueType, []byte, error) {
	switch {
	case strings.HasPrefix(payload, Quote):
		s, err := parseQuotedString(payload)
		if err != nil {
			return 0, nil, err
		}
		return regtypes.REG_SZ, encodeUTF16LEZeroTerminated(s), nil

	case strings.HasPrefix(payload, "str("):
		close := strings.IndexByte(payload, ')')
		if close < 0 {
			return 0, nil, fmt.Errorf("regtext: malformed str() payload %q", payload)
		}
		n, err := strconv.Atoi(payload[len("str("):close])
		if err != nil {
			return 0, nil, fmt.Errorf("regtext: invalid str() type in %q: %w", payload, err)
		}
		strRest := strings.TrimSpace(payload[close+1:])
		if !strings.HasPrefix(strRest, TypedPayloadColon) {
			return 0, nil, fmt.Errorf("regtext: missing %q after str() in %q", TypedPayloadColon, payload)
		}
		s, err := parseQuotedString(strings.TrimSpace(strRest[len(TypedPayloadColon):]))
		if err != nil {
			return 0, nil, err
		}
		typ := regtypes.ValueType(n)
		if typ == regtypes.REG_MULTI_SZ {
			return typ, encodeUTF16LEMultiString(strings.Split(s, "\x00")), nil
		}
		return typ, encodeUTF16LEZeroTerminated(s), nil

	case strings.HasPrefix(payload, DWORDPrefix):
		hexPart := payload[len(DWORDPrefix):]
		if len(hexPart) != DWORDHexLength {
			return 0, nil, fmt.Errorf("regtext: invalid dword payload %q", payload)
		}
		v, err := strconv.ParseUint(hexPart, 16, 32)
		if err != nil {
			return 0, nil, err
		}
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(v))
		return regtypes.REG_DWORD, buf, nil

	case strings.HasPrefix(payload, "hex("):
		close := strings.IndexByte(payload, ')')
		if close < 0 {
			return 0, nil, fmt.Errorf("regtext: malformed hex() payload %q", payload)
		}
		n, err := strconv.ParseUint(payload[len("hex("):close], 16, 32)
		if err != nil {
			return 0, nil, fmt.Errorf("regtext: invalid hex() type in %q: %w", payload, err)
		}
		hexRest := strings.TrimSpace(payload[close+1:])
		if !strings.HasPrefix(hexRest, TypedPayloadColon) {
			return 0, nil, fmt.Errorf("regtext: missing %q after hex() in %q", TypedPayloadColon, payload)
		}
		data, err := readHexBytes(strings.TrimSpace(hexRest[len(TypedPayloadColon):]), scanner, lineNo)
		return regtypes.ValueType(n), data, err

	case strings.HasPrefix(payload, HexPrefix):
		data, err := readHexBytes(payload[len(HexPrefix):], scanner, lineNo)
		return regtypes.REG_BINARY, data, err

	default:
		return 0, nil, fmt.Errorf("regtext: unrecognized payload %q", payload)
	}
}

// parseQuotedString parses a leading quoted_string, ignoring any trailing
// text after the closing quote.
func parseQuotedString(s string) (string, error) {
	if !strings.HasPrefix(s, Quote) {
		return "", fmt.Errorf("regtext: expected quoted string, got %q", s)
	}
	content := s[len(Quote):]
	end := findRawEnd(content, '"')
	if end < 0 {
		return "", fmt.Errorf("regtext: unterminated string %q", s)
	}
	return UnescapeString(content[:end])
}

// readHexBytes reads a hex byte list, consuming additional physical lines
// while the current one ends in a line-continuation backslash (spec.md
// §4.4.1 "bytes", §4.4.4).
func readHexBytes(firstLine string, scanner *bufio.Scanner, lineNo *int) ([]byte, error) {
	full := firstLine
	for strings.HasSuffix(strings.TrimRight(full, " \t"), Backslash) {
		if !scanner.Scan() {
			return nil, fmt.Errorf("regtext: unterminated hex continuation")
		}
		*lineNo++
		cont := strings.TrimLeft(scanner.Text(), " \t")
		full = strings.TrimSuffix(strings.TrimRight(full, " \t"), Backslash) + cont
	}
	return parseHexPayload(full)
}
