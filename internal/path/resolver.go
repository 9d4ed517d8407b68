package path

import (
	"fmt"

	"github.com/winelayer/regsrv/internal/keytree"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

// Open implements spec.md §4.3 "Open": walk tokens via binary search on
// each node's child array; on any miss, fail with FILE_NOT_FOUND.
func Open(base *keytree.Key, relPath string, maxComponentLen int) (*keytree.Key, error) {
	cur := base
	tok := NewTokenizer(relPath, maxComponentLen)
	for {
		comp, ok, err := tok.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return cur, nil
		}
		child, _ := cur.FindChild(comp)
		if child == nil {
			return nil, regtypes.Wrap(regtypes.ErrNotFound, fmt.Sprintf("key %q not found", comp), nil)
		}
		cur = child
	}
}

// CreateOptions controls spec.md §4.3 "Create".
type CreateOptions struct {
	Volatile bool   // REG_OPTION_VOLATILE: new components are created VOLATILE
	Class    string // attaches only to the terminal node
}

// CreateResult is the outcome of Create.
type CreateResult struct {
	Key     *keytree.Key
	Created bool // true iff at least one new node was produced
}

// Create implements spec.md §4.3 "Create": walk until the first missing
// component, then allocate the remaining chain. Volatile containment (I3)
// is enforced component by component; any failure rolls back only the
// first newly allocated node, relying on it recursively taking its
// descendants with it (spec.md §9).
func Create(base *keytree.Key, relPath string, opts CreateOptions, currentLevel, maxComponentLen int) (*CreateResult, error) {
	if base.Flags.Has(regtypes.FlagDeleted) {
		return nil, regtypes.ErrKeyDeleted
	}

	cur := base
	var firstNew *keytree.Key
	tok := NewTokenizer(relPath, maxComponentLen)

	for {
		comp, ok, err := tok.Next()
		if err != nil {
			rollbackCreate(firstNew)
			return nil, err
		}
		if !ok {
			break
		}

		if child, idx := cur.FindChild(comp); child != nil {
			cur = child
			continue
		} else if cur.Flags.Has(regtypes.FlagVolatile) && !opts.Volatile {
			rollbackCreate(firstNew)
			return nil, regtypes.ErrMustBeVolatile
		} else {
			nk := keytree.New(comp)
			if opts.Volatile || cur.Flags.Has(regtypes.FlagVolatile) {
				nk.Flags |= regtypes.FlagVolatile
			}
			cur.InsertChildAt(idx, nk)
			if firstNew == nil {
				firstNew = nk
			}
			cur = nk
		}
	}

	if opts.Class != "" {
		cur.Class = opts.Class
	}
	cur.Touch(currentLevel)

	return &CreateResult{Key: cur, Created: firstNew != nil}, nil
}

// rollbackCreate removes the first newly allocated node from its parent.
// Its descendants (if any were created past it before the failure) go with
// it once nothing references them — spec.md §9 notes the source relies on
// exactly this recursive-release property.
func rollbackCreate(firstNew *keytree.Key) {
	if firstNew == nil || firstNew.Parent == nil {
		return
	}
	parent := firstNew.Parent
	if child, idx := parent.FindChild(firstNew.Name); child == firstNew {
		parent.RemoveChildAt(idx)
	}
}

// Delete implements spec.md §4.3 "Delete": resolve relPath, reject ROOT or
// non-empty targets with ACCESS_DENIED and DELETED targets with KEY_DELETED,
// otherwise unlink and mark DELETED, then touch the parent.
func Delete(base *keytree.Key, relPath string, currentLevel, maxComponentLen int) error {
	target, err := Open(base, relPath, maxComponentLen)
	if err != nil {
		return err
	}
	if target.Flags.Has(regtypes.FlagRoot) {
		return regtypes.ErrAccessDenied
	}
	if target.Flags.Has(regtypes.FlagDeleted) {
		return regtypes.ErrKeyDeleted
	}
	if target.ChildCount() > 0 {
		return regtypes.ErrAccessDenied
	}
	parent := target.Parent
	if parent == nil {
		return regtypes.ErrAccessDenied
	}
	_, idx := parent.FindChild(target.Name)
	parent.RemoveChildAt(idx)
	target.Flags |= regtypes.FlagDeleted
	parent.Touch(currentLevel)
	return nil
}
