package regtext

const (
	// ============================================================================
	// Format headers
	// ============================================================================

	// HeaderV2 is the required first line of the current text format (spec.md §4.4.1).
	HeaderV2 = "WINE REGISTRY Version 2"

	// HeaderV1 is the required first line of the legacy indented format
	// (spec.md §4.4.6), which SaveV1 writes and nothing here loads back.
	HeaderV1 = "REGEDIT4"

	// ============================================================================
	// Delimiters and structural tokens
	// ============================================================================

	KeyOpenBracket     = "["
	KeyCloseBracket    = "]"
	ValueAssignment    = "="
	TypedPayloadColon  = ":"
	DefaultValuePrefix = "@"
	CommentPrefix      = ";"

	Quote     = "\""
	Backslash = "\\"

	// ============================================================================
	// Value type payload prefixes (spec.md §4.4.5)
	// ============================================================================

	DWORDPrefix = "dword:"
	HexPrefix   = "hex:"
	HexTypeFormat = "hex(%x):"

	// ============================================================================
	// Hex data formatting
	// ============================================================================

	HexByteSeparator = ","
	HexByteFormat    = "%02x"
	DWORDHexFormat   = "%08x"
	DWORDHexLength   = 8

	// ============================================================================
	// Scanner sizing
	// ============================================================================

	ScannerInitialBufferSize = 64 * 1024
	ScannerMaxLineSize       = 1024 * 1024
	InitialKeyCapacity       = 1000

	// hexWrapCol is the column a hex: payload line wraps at when saving,
	// continued onto the next physical line with a trailing backslash
	// (spec.md §4.4.5).
	hexWrapCol = 76

	// v1IndentWidth is the number of spaces each nesting level is indented by
	// in the legacy format (spec.md §4.4.6).
	v1IndentWidth = 2
)
