package handle

import (
	"fmt"
	"sync"

	"github.com/winelayer/regsrv/internal/keytree"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

// Handle is an opaque, copyable reference to an entry in a Table, analogous
// to the host's HKEY (spec.md §6.1).
type Handle uint64

type entry struct {
	key    *keytree.Key
	mask   regtypes.AccessMask
	isRoot bool
}

// Table is a process-wide handle table (spec.md §6.2 "resolve hkey via the
// handle service with a declared access mask"). Safe for concurrent use.
type Table struct {
	mu      sync.Mutex
	entries map[Handle]entry
	next    uint64
}

// NewTable returns an empty handle table.
func NewTable() *Table {
	return &Table{entries: make(map[Handle]entry)}
}

// Alloc allocates a new handle over key, recording the access mask it was
// opened with (already normalized — MAXIMUM_ALLOWED widening, §4.5, is the
// caller's responsibility before calling Alloc). isRoot marks a handle onto
// one of the seven predefined roots, so Close can silently ignore it
// (spec.md §6.3 "close_key... ignored on roots").
func (t *Table) Alloc(key *keytree.Key, mask regtypes.AccessMask, isRoot bool) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	h := Handle(t.next)
	t.entries[h] = entry{key: key, mask: mask, isRoot: isRoot}
	return h
}

// Get resolves h, failing unless its access mask grants every right in want.
func (t *Table) Get(h Handle, want regtypes.AccessMask) (*keytree.Key, error) {
	t.mu.Lock()
	e, ok := t.entries[h]
	t.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("handle: invalid handle %d", h)
	}
	if !e.mask.Has(want) {
		return nil, regtypes.ErrAccessDenied
	}
	return e.key, nil
}

// Close releases h. Closing a handle onto a root is silently ignored
// (spec.md §6.3); closing an unknown handle is also silently ignored, since
// a double-close has no state left to corrupt.
func (t *Table) Close(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[h]; ok && e.isRoot {
		return
	}
	delete(t.entries, h)
}
