package regtext

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/winelayer/regsrv/internal/keytree"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

// SaveV1 writes startKey's subtree in the legacy indented format (spec.md
// §4.4.6): one line per value ("name=type,0,payload"), one line per child
// key (its name alone), descendants indented one level deeper. There is no
// corresponding loader — this format is an export-only convenience for
// tools that still expect it.
//
// Per spec.md §4.4.6, eligibility is computed from each key's *effective*
// level — own level maxed bottom-up with every descendant's — rather than
// the key's own stored level, so an eligible deep value still pulls in the
// pass-through ancestors needed to reach it in this format's indentation.
func SaveV1(w io.Writer, startKey *keytree.Key, savingLevel int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n", HeaderV1); err != nil {
		return err
	}
	levels := make(map[*keytree.Key]int)
	computeEffectiveLevels(startKey, levels)
	if err := saveKeyV1(bw, startKey, savingLevel, levels, 0); err != nil {
		return err
	}
	return bw.Flush()
}

func computeEffectiveLevels(k *keytree.Key, out map[*keytree.Key]int) int {
	lvl := k.Level
	for i := 0; i < k.ChildCount(); i++ {
		child, _ := k.ChildAt(i)
		if cl := computeEffectiveLevels(child, out); cl > lvl {
			lvl = cl
		}
	}
	out[k] = lvl
	return lvl
}

func saveKeyV1(bw *bufio.Writer, k *keytree.Key, savingLevel int, levels map[*keytree.Key]int, depth int) error {
	if levels[k] < savingLevel || k.Flags.Has(regtypes.FlagVolatile) {
		return nil
	}
	if depth > 0 {
		if _, err := fmt.Fprintf(bw, "%s%s\n", strings.Repeat(" ", (depth-1)*v1IndentWidth), escapeV1(k.Name)); err != nil {
			return err
		}
	}
	valueIndent := strings.Repeat(" ", depth*v1IndentWidth)
	for i := 0; i < k.ValueCount(); i++ {
		v, err := k.EnumValue(i)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s%s=%d,0,%s\n", valueIndent, escapeV1(v.Name), int(v.Type), escapeV1(v1Payload(v)))
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	for i := 0; i < k.ChildCount(); i++ {
		child, err := k.ChildAt(i)
		if err != nil {
			return err
		}
		if err := saveKeyV1(bw, child, savingLevel, levels, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// escapeV1 escapes only backslash, '=', newline, and non-ASCII runes (spec.md
// §4.4.6) — a much smaller escape set than the v2 format's, since this
// legacy format has no quoting grammar to protect. Other control characters
// (e.g. a literal tab) pass through unescaped.
func escapeV1(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '=':
			b.WriteString(`\=`)
		case r == '\n':
			b.WriteString(`\n`)
		case r > 127:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func v1Payload(v *keytree.Value) string {
	switch {
	case v.Type == regtypes.REG_SZ || v.Type == regtypes.REG_EXPAND_SZ:
		return decodeUTF16LEString(v.Data)
	case v.Type == regtypes.REG_MULTI_SZ:
		return strings.Join(decodeUTF16LEMultiString(v.Data), ";")
	case v.Type == regtypes.REG_DWORD && len(v.Data) == 4:
		n := uint32(v.Data[0]) | uint32(v.Data[1])<<8 | uint32(v.Data[2])<<16 | uint32(v.Data[3])<<24
		return fmt.Sprintf("%d", n)
	default:
		return hex.EncodeToString(v.Data)
	}
}
