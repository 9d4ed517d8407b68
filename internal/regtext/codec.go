package regtext

import (
	"io"
	"log/slog"

	"github.com/winelayer/regsrv/internal/keytree"
)

// Codec bundles the text codec's load/save entry points behind one value,
// mirroring the teacher's Codec wrapper — pkg/registry holds one Codec
// rather than calling the package-level functions directly, so a future
// format variant only needs a new method here.
type Codec struct {
	Diag *slog.Logger
}

// NewCodec returns a Codec that logs load diagnostics to diag (nil uses a
// discarding logger).
func NewCodec(diag *slog.Logger) *Codec {
	return &Codec{Diag: diag}
}

// LoadInto merges r (v2 text) into base, per spec.md §4.4.4.
func (c *Codec) LoadInto(base *keytree.Key, r io.Reader, currentLevel, maxComponentLen int) error {
	return Load(base, r, currentLevel, maxComponentLen, c.Diag)
}

// SaveV2 and SaveV1 are re-exported as methods for symmetry with LoadInto;
// both are stateless aside from the diagnostic logger, which save doesn't need.
func (c *Codec) SaveV2(w io.Writer, startKey *keytree.Key, rootName string, savingLevel int) error {
	return SaveV2(w, startKey, rootName, savingLevel)
}

func (c *Codec) SaveV1(w io.Writer, startKey *keytree.Key, savingLevel int) error {
	return SaveV1(w, startKey, savingLevel)
}
