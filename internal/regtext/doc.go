// Package regtext implements C4, the text codec (spec.md §4.4): the v2
// grammar (current format, load + save) and the v1 legacy indented format
// (save-only), including the shared escape grammar (§4.4.2/§4.4.3) both
// formats build value payload encoding on top of.
//
// This package is grounded on the teacher's own internal/regtext package —
// its line-oriented scanner loop, hex-byte/line-continuation handling, and
// token constants — reworked for two output formats instead of one, the
// saving-level gating a save pass applies (§4.4.5), and the spec's own
// \xNNNN / control-letter / octal escape grammar in place of the teacher's
// Windows-1252 transcoding (this format's escapes are self-contained; they
// don't need to round-trip through a legacy codepage).
//
// Key and value names may not contain the backslash path-separator byte —
// the same rule the real Windows registry enforces on key names via its
// API — so the v2 loader can split a section's bracketed key path on raw
// backslash bytes and unescape each resulting component independently,
// without needing unbounded lookahead to tell an escaped backslash-in-a-name
// apart from a path separator (an ambiguity the textual grammar does not
// otherwise resolve).
package regtext
