package path

import (
	"fmt"
	"strings"

	"github.com/winelayer/regsrv/pkg/regtypes"
)

// Tokenizer walks a backslash-separated path one component at a time.
// Leading and repeated backslashes are skipped; an exhausted path yields
// ok=false with no error (spec.md §4.3 "the empty path denotes the current
// key").
type Tokenizer struct {
	rest   string
	maxLen int
}

// NewTokenizer seeds a tokenizer over p. maxLen bounds each component's
// length (0 means unbounded); spec.md §4.3 "Tokens are bounded by a maximum
// component length".
func NewTokenizer(p string, maxLen int) *Tokenizer {
	return &Tokenizer{rest: p, maxLen: maxLen}
}

// Next returns the next path component. ok is false once the path is
// exhausted. err is non-nil only if a component exceeds maxLen.
func (t *Tokenizer) Next() (comp string, ok bool, err error) {
	for len(t.rest) > 0 && t.rest[0] == '\\' {
		t.rest = t.rest[1:]
	}
	if t.rest == "" {
		return "", false, nil
	}
	if i := strings.IndexByte(t.rest, '\\'); i >= 0 {
		comp, t.rest = t.rest[:i], t.rest[i+1:]
	} else {
		comp, t.rest = t.rest, ""
	}
	if t.maxLen > 0 && len(comp) > t.maxLen {
		return "", false, regtypes.Wrap(regtypes.ErrOutOfMemory,
			fmt.Sprintf("path component %q exceeds maximum length %d", comp, t.maxLen), nil)
	}
	return comp, true, nil
}
