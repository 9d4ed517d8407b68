package roots

import (
	"fmt"
	"sync"

	"github.com/winelayer/regsrv/internal/keytree"
	"github.com/winelayer/regsrv/internal/path"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

// classesRootPath is the subkey HKEY_CLASSES_ROOT aliases under
// HKEY_LOCAL_MACHINE (spec.md §4.6).
const classesRootPath = `SOFTWARE\Classes`

// Table is the module-wide root-keys table (spec.md §9 "Shared resources").
// It is safe for concurrent use; C5 holds exactly one Table for the life of
// the process.
type Table struct {
	mu              sync.Mutex
	roots           map[regtypes.RootID]*keytree.Key
	maxComponentLen int
}

// NewTable returns an empty table. No root is instantiated until first use.
func NewTable(maxComponentLen int) *Table {
	return &Table{
		roots:           make(map[regtypes.RootID]*keytree.Key),
		maxComponentLen: maxComponentLen,
	}
}

// Get returns id's root key, instantiating it on first use (spec.md §4.6).
// currentLevel is only consulted the first time HKEY_CLASSES_ROOT is
// resolved, since its backing chain is built via the normal create path and
// inherits that path's touch behavior.
func (t *Table) Get(id regtypes.RootID, currentLevel int) (*keytree.Key, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.getLocked(id, currentLevel)
}

func (t *Table) getLocked(id regtypes.RootID, currentLevel int) (*keytree.Key, error) {
	if k, ok := t.roots[id]; ok {
		return k, nil
	}

	if id == regtypes.HKEYClassesRoot {
		hklm, err := t.getLocked(regtypes.HKEYLocalMachine, currentLevel)
		if err != nil {
			return nil, err
		}
		res, err := path.Create(hklm, classesRootPath, path.CreateOptions{}, currentLevel, t.maxComponentLen)
		if err != nil {
			return nil, err
		}
		t.roots[id] = res.Key
		return res.Key, nil
	}

	name := regtypes.RootName(id)
	if name == "" {
		return nil, fmt.Errorf("roots: unknown root identifier %#x", uint32(id))
	}
	k := keytree.New("")
	k.Flags |= regtypes.FlagRoot
	t.roots[id] = k
	return k, nil
}

// NameOf reports the canonical root name of k's tree, walking up to k's
// ultimate ancestor and matching it against the table's instantiated roots
// (spec.md §4.4.1 "keypath is the root key's canonical name"). ok is false
// only if k's tree was never reached through this table — which shouldn't
// happen for any key reachable from a handle.
func (t *Table) NameOf(k *keytree.Key) (string, bool) {
	for k.Parent != nil {
		k = k.Parent
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, root := range t.roots {
		if root == k {
			return regtypes.RootName(id), true
		}
	}
	return "", false
}

// Close releases every instantiated root (spec.md §9 "close_registry...
// releases all roots"). The table is left empty and ready to lazily
// re-instantiate roots on a subsequent Get, matching a fresh process start.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id := range t.roots {
		delete(t.roots, id)
	}
}
