package regtext

import (
	"bufio"
	"fmt"
	"io"

	"github.com/winelayer/regsrv/internal/keytree"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

// SaveV2 writes startKey's subtree in the current text format (spec.md
// §4.4.5): a pre-order traversal that emits a section for a key iff its
// level meets savingLevel, it is not VOLATILE, and it either carries a value
// or has no children. rootName is the canonical name of the ultimate root
// ancestor (spec.md §6.2); every section's path is the full path from that
// root, not a path relative to startKey.
func SaveV2(w io.Writer, startKey *keytree.Key, rootName string, savingLevel int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n\n", HeaderV2); err != nil {
		return err
	}
	if err := saveKeyV2(bw, startKey, rootName, savingLevel); err != nil {
		return err
	}
	return bw.Flush()
}

func saveKeyV2(bw *bufio.Writer, k *keytree.Key, rootName string, savingLevel int) error {
	emit := k.Eligible(savingLevel) && (k.ValueCount() > 0 || k.ChildCount() == 0)
	if emit {
		if err := writeSectionV2(bw, k, rootName); err != nil {
			return err
		}
	}
	for i := 0; i < k.ChildCount(); i++ {
		child, err := k.ChildAt(i)
		if err != nil {
			return err
		}
		if err := saveKeyV2(bw, child, rootName, savingLevel); err != nil {
			return err
		}
	}
	return nil
}

func writeSectionV2(bw *bufio.Writer, k *keytree.Key, rootName string) error {
	full := keyPathV2(k, rootName)
	if _, err := fmt.Fprintf(bw, "[%s] %d\n", full, k.Modif.UnixNano()); err != nil {
		return err
	}
	for i := 0; i < k.ValueCount(); i++ {
		v, err := k.EnumValue(i)
		if err != nil {
			return err
		}
		if err := writeValueV2(bw, v); err != nil {
			return err
		}
	}
	_, err := bw.WriteString("\n")
	return err
}

// keyPathV2 renders k's full canonical path: rootName followed by each
// component escaped with '['/']' as the forbidden delimiter pair
// (spec.md §4.4.1).
func keyPathV2(k *keytree.Key, rootName string) string {
	rel := k.Path()
	if rel == "" {
		return rootName
	}
	parts := splitUnescapedComponents(rel)
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = EscapeString(p, '[', ']')
	}
	return rootName + Backslash + joinBackslash(escaped)
}

// splitUnescapedComponents splits a Key.Path() result (plain, un-escaped
// component names joined with raw backslashes) back into components. Key
// names may not contain a literal backslash, so this is a plain byte split.
func splitUnescapedComponents(p string) []string {
	return splitKeypathRaw(p)
}

func joinBackslash(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += Backslash
		}
		out += p
	}
	return out
}

func writeValueV2(bw *bufio.Writer, v *keytree.Value) error {
	if v.Name == "" {
		if _, err := bw.WriteString(DefaultValuePrefix); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(bw, "%s%s%s", Quote, EscapeString(v.Name, '"', '"'), Quote)
	}
	if _, err := bw.WriteString(ValueAssignment); err != nil {
		return err
	}

	switch {
	case v.Type == regtypes.REG_SZ:
		fmt.Fprintf(bw, "%s%s%s", Quote, EscapeString(decodeUTF16LEString(v.Data), '"', '"'), Quote)

	case v.Type.IsString(): // REG_EXPAND_SZ, REG_MULTI_SZ
		var text string
		if v.Type == regtypes.REG_MULTI_SZ {
			parts := decodeUTF16LEMultiString(v.Data)
			text = joinNUL(parts)
		} else {
			text = decodeUTF16LEString(v.Data)
		}
		fmt.Fprintf(bw, "str(%d):%s%s%s", int(v.Type), Quote, EscapeString(text, '"', '"'), Quote)

	case v.Type == regtypes.REG_DWORD && len(v.Data) == 4:
		n := uint32(v.Data[0]) | uint32(v.Data[1])<<8 | uint32(v.Data[2])<<16 | uint32(v.Data[3])<<24
		bw.WriteString(formatDword(n))

	case v.Type == regtypes.REG_BINARY:
		writeHexWrapped(bw, HexPrefix, v.Data)

	default:
		writeHexWrapped(bw, fmt.Sprintf(HexTypeFormat, int(v.Type)), v.Data)
	}
	_, err := bw.WriteString("\n")
	return err
}

func joinNUL(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\x00"
		}
		out += p
	}
	return out
}

// writeHexWrapped writes prefix followed by comma-separated hex bytes,
// wrapping at hexWrapCol with a trailing-backslash line continuation
// (spec.md §4.4.5).
func writeHexWrapped(bw *bufio.Writer, prefix string, data []byte) {
	bw.WriteString(prefix)
	col := len(prefix)
	for i, b := range data {
		tok := fmt.Sprintf(HexByteFormat, b)
		if i > 0 {
			tok = HexByteSeparator + tok
		}
		if col+len(tok) > hexWrapCol {
			bw.WriteString("\\\n  ")
			col = 2
		}
		bw.WriteString(tok)
		col += len(tok)
	}
}
