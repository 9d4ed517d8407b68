package regtypes

import "fmt"

// ValueType identifies the type tag carried by a key-value (spec.md §3).
// Unknown tags are passed through opaquely: any value not in the well-known
// set below round-trips by its raw integer tag alone.
type ValueType uint32

// Well-known value type tags (spec.md §3 "a well-known set").
const (
	REG_NONE       ValueType = 0
	REG_SZ         ValueType = 1
	REG_EXPAND_SZ  ValueType = 2
	REG_BINARY     ValueType = 3
	REG_DWORD      ValueType = 4
	REG_DWORD_BE   ValueType = 5
	REG_LINK       ValueType = 6
	REG_MULTI_SZ   ValueType = 7
	REG_RESOURCE_LIST              ValueType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   ValueType = 9
	REG_RESOURCE_REQUIREMENTS_LIST ValueType = 10
	REG_QWORD      ValueType = 11
)

// String renders the well-known name, or UNKNOWN_TYPE_<n> for an opaque tag,
// matching the convention a registry inspection tool expects.
func (t ValueType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BE:
		return "REG_DWORD_BE"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_RESOURCE_LIST:
		return "REG_RESOURCE_LIST"
	case REG_FULL_RESOURCE_DESCRIPTOR:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case REG_RESOURCE_REQUIREMENTS_LIST:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
	}
}

// IsString reports whether t always renders as a quoted string in the v2
// codec (spec.md §4.4.5): REG_SZ, REG_EXPAND_SZ, and REG_MULTI_SZ.
func (t ValueType) IsString() bool {
	return t == REG_SZ || t == REG_EXPAND_SZ || t == REG_MULTI_SZ
}
