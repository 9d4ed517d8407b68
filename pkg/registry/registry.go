package registry

import (
	"log/slog"
	"sync"

	"github.com/winelayer/regsrv/internal/handle"
	"github.com/winelayer/regsrv/internal/keytree"
	"github.com/winelayer/regsrv/internal/regtext"
	"github.com/winelayer/regsrv/internal/roots"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

// Registry is the single "registry context" value spec.md §9 asks
// implementations to group current_level/saving_level/saving_version and
// the roots table into. One Registry is created at startup and torn down
// by Close, mirroring "close_registry on shutdown releases all roots".
type Registry struct {
	mu sync.RWMutex

	roots   *roots.Table
	handles *handle.Table
	codec   *regtext.Codec
	limits  regtypes.Limits

	currentLevel  int
	savingLevel   int
	savingVersion int

	// OnMutate is called after every successful mutating request, with the
	// full path (rooted at a well-known root name) of the key that changed.
	// This stands in for the notification fan-out the host's thread/event
	// subsystem would otherwise own (SPEC_FULL.md §6) — a host can wire it
	// to its own change-notification mechanism without this package
	// depending on one.
	OnMutate func(path string)
}

// Option configures a new Registry.
type Option func(*Registry)

// WithLimits overrides the default request-size limits (regtypes.DefaultLimits).
func WithLimits(l regtypes.Limits) Option {
	return func(r *Registry) { r.limits = l }
}

// WithDiagnostics routes load_registry's per-line diagnostics to diag
// instead of the default discarding sink (spec.md §7).
func WithDiagnostics(diag *slog.Logger) Option {
	return func(r *Registry) { r.codec = regtext.NewCodec(diag) }
}

// New creates a Registry initialised to level 0 / saving_version 1, per
// spec.md §9 "initialised to zero / version 1 at startup".
func New(opts ...Option) *Registry {
	r := &Registry{
		roots:         roots.NewTable(regtypes.DefaultLimits().MaxComponentLen),
		handles:       handle.NewTable(),
		codec:         regtext.NewCodec(nil),
		limits:        regtypes.DefaultLimits(),
		savingVersion: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close releases every instantiated root (spec.md §9 "close_registry...
// releases all roots").
func (r *Registry) Close() {
	r.roots.Close()
}

// Handle is re-exported so callers (cmd/regctl) never import internal/handle directly.
type Handle = handle.Handle

// OpenRoot resolves one of the seven predefined roots to a handle, widening
// MAXIMUM_ALLOWED per spec.md §4.5 before allocation. This is the only entry
// point into the tree a caller has without an existing handle.
func (r *Registry) OpenRoot(id regtypes.RootID, access regtypes.AccessMask) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k, err := r.roots.Get(id, r.currentLevel)
	if err != nil {
		return 0, err
	}
	return r.handles.Alloc(k, access.Normalize(), true), nil
}

// mutatePath renders k's full rooted path ("HKEY_LOCAL_MACHINE\Software\...")
// for use with OnMutate, or "" if k no longer belongs to any instantiated
// root (already detached).
func (r *Registry) mutatePath(k *keytree.Key) string {
	rootName, ok := r.roots.NameOf(k)
	if !ok {
		return ""
	}
	if p := k.Path(); p != "" {
		return rootName + `\` + p
	}
	return rootName
}

// notifyMutate invokes OnMutate, if set, with k's full rooted path. Called
// with r.mu already held by the caller.
func (r *Registry) notifyMutate(k *keytree.Key) {
	if r.OnMutate == nil {
		return
	}
	if p := r.mutatePath(k); p != "" {
		r.OnMutate(p)
	}
}
