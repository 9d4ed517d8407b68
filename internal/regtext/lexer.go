package regtext

import "strings"

// lineKind classifies one physical v2 line (spec.md §4.4.4): a line is a
// section header, a value assignment, a comment, or blank. Comments carry no
// further structure — they are opaque and simply skipped.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineSection
	lineValue
)

func classifyLine(trim string) lineKind {
	switch {
	case trim == "":
		return lineBlank
	case strings.HasPrefix(trim, "#"), strings.HasPrefix(trim, CommentPrefix):
		return lineComment
	case strings.HasPrefix(trim, KeyOpenBracket):
		return lineSection
	default:
		return lineValue
	}
}
