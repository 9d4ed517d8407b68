package regtypes

// AccessMask is the access-right bitmask carried on every request (spec.md
// §6.1/§6.3). A handle records the mask it was opened with, and each request
// checks it against that request's required rights (internal/handle's
// Table.Get fails with ErrAccessDenied when a right is missing).
// MAXIMUM_ALLOWED is widened to KEY_ALL_ACCESS (§4.5).
type AccessMask uint32

const (
	KeyQueryValue       AccessMask = 0x0001
	KeySetValue         AccessMask = 0x0002
	KeyCreateSubKey     AccessMask = 0x0004
	KeyEnumerateSubKeys AccessMask = 0x0008
	KeyNotify           AccessMask = 0x0010
	KeyCreateLink       AccessMask = 0x0020

	// KeyWOW64_32Key / KeyWOW64_64Key are accepted and ignored (SPEC_FULL.md
	// §6, supplemented from the original source's access mask normalization).
	KeyWOW64_32Key AccessMask = 0x0200
	KeyWOW64_64Key AccessMask = 0x0100

	KeyAllAccess AccessMask = 0xF003F

	// MaximumAllowed is widened to KeyAllAccess before handle allocation
	// (spec.md §4.5).
	MaximumAllowed AccessMask = 0x02000000
)

// wow64Mask is masked off before any rights check (SPEC_FULL.md §6).
const wow64Mask = KeyWOW64_32Key | KeyWOW64_64Key

// Normalize widens MAXIMUM_ALLOWED to KEY_ALL_ACCESS and strips the
// WOW64-redirection bits, which carry no meaning for this single-view
// registry core.
func (m AccessMask) Normalize() AccessMask {
	if m&MaximumAllowed != 0 {
		m = KeyAllAccess
	}
	return m &^ wow64Mask
}

// Has reports whether m grants every right set in want, after normalization.
func (m AccessMask) Has(want AccessMask) bool {
	m = m.Normalize()
	return m&want == want
}

// KeyFlags is the subset of {VOLATILE, DELETED, ROOT} a key carries
// (spec.md §3).
type KeyFlags uint8

const (
	FlagVolatile KeyFlags = 1 << iota
	FlagDeleted
	FlagRoot
)

func (f KeyFlags) Has(bit KeyFlags) bool { return f&bit != 0 }

// CreateOptions mirrors REG_OPTION_* passed to create_key (spec.md §6.3).
type CreateOptions uint32

const (
	OptionNonVolatile CreateOptions = 0
	OptionVolatile    CreateOptions = 1 << 0
	// OptionCreateLink is recognized and rejected with ErrUnsupported
	// (SPEC_FULL.md §6 — symbolic links between keys are a spec Non-goal).
	OptionCreateLink CreateOptions = 1 << 1
)
