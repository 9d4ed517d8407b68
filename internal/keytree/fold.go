package keytree

import "golang.org/x/text/cases"

// folder produces the canonical case-folded form of a key or value name used
// for ordering and lookup (spec.md §3 "compared case-insensitively"). Unicode
// case folding (rather than a simple ToUpper/ToLower loop) is what the
// teacher's own golang.org/x/text dependency is for elsewhere in the corpus;
// here it gives correct comparison for names outside ASCII, which a plain
// strings.EqualFold loop would get wrong for some scripts.
var folder = cases.Fold()

// foldName returns the cached comparison key for name. Computed once per
// name (at key/value creation) rather than per comparison, so binary search
// over n siblings costs n string compares, not n case-fold transforms.
func foldName(name string) string {
	return folder.String(name)
}
