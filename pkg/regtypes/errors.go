package regtypes

// ErrKind classifies registry core errors so callers can branch on intent
// (spec.md §7) instead of matching error strings.
type ErrKind int

const (
	ErrKindNotFound             ErrKind = iota // FILE_NOT_FOUND: missing key or value on lookup
	ErrKindDeleted                             // KEY_DELETED: operation on a detached key
	ErrKindMustBeVolatile                      // CHILD_MUST_BE_VOLATILE: non-volatile child of a volatile key
	ErrKindAccessDenied                        // ACCESS_DENIED: deleting a root, or a key with children
	ErrKindNoMoreItems                         // NO_MORE_ITEMS: enumeration past the end
	ErrKindOutOfMemory                         // OUTOFMEMORY: allocation failure, including oversized requests
	ErrKindNotRegistryFile                     // NOT_REGISTRY_FILE: bad v2 header on load
	ErrKindUnsupported                         // a recognized but intentionally unsupported feature (e.g. links)
)

// Error is a typed registry core error with an optional underlying cause.
// Mirrors the shape of the teacher's pkg/types.Error: a stable Kind plus a
// human message, so programmatic callers switch on Kind and humans read Msg.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) match any *Error sharing the same Kind,
// regardless of Msg/Err, since call sites raise the same Kind with varying
// context (e.g. "value %q not found" vs "key %q not found").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors, one per spec.md §7 error kind.
var (
	ErrNotFound         = &Error{Kind: ErrKindNotFound, Msg: "file not found"}
	ErrKeyDeleted       = &Error{Kind: ErrKindDeleted, Msg: "key deleted"}
	ErrMustBeVolatile   = &Error{Kind: ErrKindMustBeVolatile, Msg: "child must be volatile"}
	ErrAccessDenied     = &Error{Kind: ErrKindAccessDenied, Msg: "access denied"}
	ErrNoMoreItems      = &Error{Kind: ErrKindNoMoreItems, Msg: "no more items"}
	ErrOutOfMemory      = &Error{Kind: ErrKindOutOfMemory, Msg: "out of memory"}
	ErrNotRegistryFile  = &Error{Kind: ErrKindNotRegistryFile, Msg: "not a registry file"}
	ErrUnsupported      = &Error{Kind: ErrKindUnsupported, Msg: "unsupported registry feature"}
)

// Wrap returns a new *Error of the same Kind as base, with msg and an
// optional wrapped cause, for call sites that want to add path/name context
// to a sentinel without losing Is-comparability.
func Wrap(base *Error, msg string, cause error) *Error {
	return &Error{Kind: base.Kind, Msg: msg, Err: cause}
}
