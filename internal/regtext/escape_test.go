package regtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeUnescape_RoundTrip(t *testing.T) {
	cases := []string{
		"plain",
		`back\slash`,
		"with \"quotes\"",
		"tab\ttab",
		"newline\nhere",
		"unicode: héllo wörld",
		"control\x01char",
		"",
	}
	for _, s := range cases {
		esc := EscapeString(s, '"', '"')
		got, err := UnescapeString(esc)
		require.NoError(t, err, "input %q", s)
		assert.Equal(t, s, got, "round trip of %q via %q", s, esc)
	}
}

func TestEscapeString_ControlLetterEscapes(t *testing.T) {
	assert.Equal(t, `\t`, EscapeString("\t", '"', '"'))
	assert.Equal(t, `\n`, EscapeString("\n", '"', '"'))
	assert.Equal(t, `\r`, EscapeString("\r", '"', '"'))
}

func TestEscapeString_DelimiterEscaped(t *testing.T) {
	assert.Equal(t, `a\]b`, EscapeString("a]b", '[', ']'))
	assert.Equal(t, `a\"b`, EscapeString(`a"b`, '"', '"'))
}

func TestEscapeString_BackslashAlwaysEscaped(t *testing.T) {
	assert.Equal(t, `a\\b`, EscapeString(`a\b`, '"', '"'))
}

func TestEscapeString_HighCodeUnitEscaping(t *testing.T) {
	esc := EscapeString("é", '"', '"') // é
	assert.Contains(t, esc, `\x`)
	got, err := UnescapeString(esc)
	require.NoError(t, err)
	assert.Equal(t, "é", got)
}

func TestUnescapeString_DanglingBackslashErrors(t *testing.T) {
	_, err := UnescapeString(`abc\`)
	assert.Error(t, err)
}

func TestUnescapeString_HexEscapeWithFourDigits(t *testing.T) {
	got, err := UnescapeString(`\x00e9`)
	require.NoError(t, err)
	assert.Equal(t, "é", got)
}

func TestUnescapeString_OctalEscape(t *testing.T) {
	got, err := UnescapeString(`\007`)
	require.NoError(t, err)
	assert.Equal(t, "\a", got)
}

func TestFindRawEnd(t *testing.T) {
	assert.Equal(t, 3, findRawEnd(`abc"rest`, '"'))
	assert.Equal(t, -1, findRawEnd(`abc`, '"'))
	assert.Equal(t, 5, findRawEnd(`ab\"c"`, '"'), "escaped quote must be skipped")
}
