package keytree

import (
	"time"

	"github.com/winelayer/regsrv/pkg/regtypes"
)

// Key is a node in the registry tree (spec.md §3). Root keys carry an empty
// Name. Children and values are kept in sorted, case-insensitive order by
// sortedList (I1); Parent is a non-owning back-link cleared on unlink
// (spec.md §9 "Cyclic back-reference").
type Key struct {
	Name  string
	fold  string
	Class string

	Parent *Key

	children *sortedList[*Key]
	values   *sortedList[*Value]

	Flags KeyFlagsT
	Level int
	Modif time.Time
}

// KeyFlagsT is an alias kept local to this package's call sites for
// readability; it is exactly regtypes.KeyFlags.
type KeyFlagsT = regtypes.KeyFlags

// New creates a detached key named name with no parent. Callers (roots
// registry, path resolver) link it into the tree themselves.
func New(name string) *Key {
	k := &Key{Name: name, fold: foldName(name)}
	k.children = newSortedList(func(c *Key) string { return c.fold })
	k.values = newSortedList(func(v *Value) string { return v.fold })
	k.Modif = time.Now()
	return k
}

// FoldName returns the cached case-fold comparison key for k.Name.
func (k *Key) FoldName() string { return k.fold }

// Touch implements spec.md §4.2 "touch": modif becomes now, and level rises
// to max(level, currentLevel) — I5's monotonic-non-decreasing rule.
func (k *Key) Touch(currentLevel int) {
	k.Modif = time.Now()
	if currentLevel > k.Level {
		k.Level = currentLevel
	}
}

// FindChild performs the binary search from spec.md §4.3 "Open": it returns
// the matching child and its index, or (nil, insertion-point) on a miss.
func (k *Key) FindChild(name string) (*Key, int) {
	idx, found := k.children.find(foldName(name))
	if !found {
		return nil, idx
	}
	return k.children.At(idx), idx
}

// InsertChildAt links child as k's new child at idx (the insertion point
// returned by FindChild on a prior miss). The caller (internal/path) is
// responsible for every precondition in spec.md §4.3 "Create" — volatile
// containment, DELETED rejection, and so on; this method only maintains the
// sorted array invariant (I1).
func (k *Key) InsertChildAt(idx int, child *Key) {
	child.Parent = k
	k.children.insertAt(idx, child)
}

// RemoveChildAt unlinks and returns the child at idx, clearing its Parent
// back-link (spec.md §9).
func (k *Key) RemoveChildAt(idx int) *Key {
	c := k.children.At(idx)
	k.children.removeAt(idx)
	c.Parent = nil
	return c
}

// ChildCount reports the number of direct children.
func (k *Key) ChildCount() int { return k.children.Len() }

// ChildAt implements spec.md §4.3 "Enum": ErrNoMoreItems once index is out
// of range.
func (k *Key) ChildAt(index int) (*Key, error) {
	if index < 0 || index >= k.children.Len() {
		return nil, regtypes.ErrNoMoreItems
	}
	return k.children.At(index), nil
}

// QueryInfo is the result of Query (spec.md §4.2 "query").
type QueryInfo struct {
	SubkeyCount      int
	MaxSubkeyNameLen int
	MaxClassLen      int
	ValueCount       int
	MaxValueNameLen  int
	MaxValueDataLen  int
	Modif            time.Time
	Class            string
}

// Query implements spec.md §4.2 "query". The source under-counts the widest
// name by walking indices [0, last-1); spec.md §9 calls this out as a bug
// to NOT replicate, so this loop is the natural Go range over the full
// slice — [0, last] inclusive — with no special-casing needed to get that
// right.
func (k *Key) Query() QueryInfo {
	qi := QueryInfo{
		SubkeyCount: k.children.Len(),
		ValueCount:  k.values.Len(),
		Modif:       k.Modif,
		Class:       k.Class,
	}
	for i := 0; i < k.children.Len(); i++ {
		c := k.children.At(i)
		if l := len(c.Name); l > qi.MaxSubkeyNameLen {
			qi.MaxSubkeyNameLen = l
		}
		if l := len(c.Class); l > qi.MaxClassLen {
			qi.MaxClassLen = l
		}
	}
	for i := 0; i < k.values.Len(); i++ {
		v := k.values.At(i)
		if l := len(v.Name); l > qi.MaxValueNameLen {
			qi.MaxValueNameLen = l
		}
		if l := len(v.Data); l > qi.MaxValueDataLen {
			qi.MaxValueDataLen = l
		}
	}
	return qi
}

// Eligible reports whether k should be persisted given the saver's current
// saving_level threshold (spec.md §4.2 "Saving level rule"): level >=
// savingLevel and not VOLATILE.
func (k *Key) Eligible(savingLevel int) bool {
	return k.Level >= savingLevel && !k.Flags.Has(regtypes.FlagVolatile)
}

// Path renders k's full backslash-separated path up to (but not including)
// its root, which callers prefix with the root's canonical name
// (spec.md §4.4.1 "keypath").
func (k *Key) Path() string {
	var parts []string
	for cur := k; cur != nil && cur.Parent != nil; cur = cur.Parent {
		parts = append(parts, cur.Name)
	}
	out := ""
	for i := len(parts) - 1; i >= 0; i-- {
		if out != "" {
			out += `\`
		}
		out += parts[i]
	}
	return out
}
