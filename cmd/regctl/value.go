package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/winelayer/regsrv/pkg/regtypes"
)

// parseValue converts a --type name and a literal string argument into the
// (type, data) pair set_key_value expects. Strings encode as UTF-16LE,
// matching the byte layout internal/regtext and the real Windows registry
// both use for SZ/EXPAND_SZ/MULTI_SZ (SPEC_FULL.md §5).
func parseValue(typeName, value string) (regtypes.ValueType, []byte, error) {
	switch strings.ToLower(typeName) {
	case "sz", "":
		return regtypes.REG_SZ, utf16leZeroTerminated(value), nil
	case "expand_sz":
		return regtypes.REG_EXPAND_SZ, utf16leZeroTerminated(value), nil
	case "multi_sz":
		return regtypes.REG_MULTI_SZ, utf16leMultiString(strings.Split(value, ";")), nil
	case "dword":
		n, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid dword %q: %w", value, err)
		}
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(n))
		return regtypes.REG_DWORD, buf, nil
	case "qword":
		n, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid qword %q: %w", value, err)
		}
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, n)
		return regtypes.REG_QWORD, buf, nil
	case "binary":
		data, err := hex.DecodeString(strings.ReplaceAll(value, ",", ""))
		if err != nil {
			return 0, nil, fmt.Errorf("invalid hex binary %q: %w", value, err)
		}
		return regtypes.REG_BINARY, data, nil
	default:
		return 0, nil, fmt.Errorf("unknown value type %q", typeName)
	}
}

// formatValue renders a (type, data) pair for display, the inverse of
// parseValue for the types it understands.
func formatValue(typ regtypes.ValueType, data []byte) string {
	switch typ {
	case regtypes.REG_SZ, regtypes.REG_EXPAND_SZ:
		return utf16leDecodeString(data)
	case regtypes.REG_MULTI_SZ:
		return strings.Join(utf16leDecodeMultiString(data), ";")
	case regtypes.REG_DWORD:
		if len(data) == 4 {
			return fmt.Sprintf("%d", binary.LittleEndian.Uint32(data))
		}
	case regtypes.REG_QWORD:
		if len(data) == 8 {
			return fmt.Sprintf("%d", binary.LittleEndian.Uint64(data))
		}
	}
	return hex.EncodeToString(data)
}

func utf16leZeroTerminated(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, (len(units)+1)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	return buf
}

func utf16leMultiString(parts []string) []byte {
	var buf []byte
	for _, p := range parts {
		buf = append(buf, utf16leZeroTerminated(p)...)
	}
	buf = append(buf, 0, 0)
	return buf
}

func utf16leDecodeString(data []byte) string {
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		u := binary.LittleEndian.Uint16(data[i:])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}

func utf16leDecodeMultiString(data []byte) []string {
	var out []string
	start := 0
	for i := 0; i+1 < len(data); i += 2 {
		if binary.LittleEndian.Uint16(data[i:]) == 0 {
			if i > start {
				out = append(out, utf16leDecodeString(data[start:i]))
			}
			start = i + 2
		}
	}
	return out
}
