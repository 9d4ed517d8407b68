package keytree

import (
	"fmt"

	"github.com/winelayer/regsrv/pkg/regtypes"
)

// Value is a key-value (spec.md §3): a named, typed byte buffer attached to
// a Key. The empty Name denotes the key's default value.
type Value struct {
	Name string
	fold string
	Type regtypes.ValueType
	Data []byte // nil represents "null data, len = 0", not an error state
}

func newValue(name string) *Value {
	return &Value{Name: name, fold: foldName(name)}
}

// FindValue performs the binary search from spec.md §4.1 "find": it returns
// the matching value and its index, or (nil, insertion-point) on a miss.
func (k *Key) FindValue(name string) (*Value, int) {
	idx, found := k.values.find(foldName(name))
	if !found {
		return nil, idx
	}
	return k.values.At(idx), idx
}

// InsertValue implements spec.md §4.1 "insert": find; if present, return the
// existing value; otherwise allocate, link into the sorted array, and
// return the new (zeroed) value.
func (k *Key) InsertValue(name string) *Value {
	fold := foldName(name)
	idx, found := k.values.find(fold)
	if found {
		return k.values.At(idx)
	}
	v := &Value{Name: name, fold: fold}
	k.values.insertAt(idx, v)
	return v
}

// SetValue implements spec.md §4.1 "set": the buffer is copied *before* the
// value is inserted, so a nil/failed copy would leave the key unchanged —
// matching the "copy-data-before-insert" discipline spec.md §7 requires for
// allocation-failure safety. currentLevel is the registry context's
// current_level, applied by Touch (spec.md §4.2 "touch").
func (k *Key) SetValue(name string, typ regtypes.ValueType, data []byte, currentLevel int) *Value {
	var buf []byte
	if len(data) > 0 {
		buf = make([]byte, len(data))
		copy(buf, data)
	}
	v := k.InsertValue(name)
	v.Type = typ
	v.Data = buf
	k.Touch(currentLevel)
	return v
}

// GetValue implements spec.md §4.1 "get": ErrNotFound if name is absent.
func (k *Key) GetValue(name string) (*Value, error) {
	v, _ := k.FindValue(name)
	if v == nil {
		return nil, regtypes.Wrap(regtypes.ErrNotFound, fmt.Sprintf("value %q not found", name), nil)
	}
	return v, nil
}

// ValueCount reports the number of values on k.
func (k *Key) ValueCount() int { return k.values.Len() }

// EnumValue implements spec.md §4.1 "enum": ErrNoMoreItems once index is out
// of range.
func (k *Key) EnumValue(index int) (*Value, error) {
	if index < 0 || index >= k.values.Len() {
		return nil, regtypes.ErrNoMoreItems
	}
	return k.values.At(index), nil
}

// DeleteValue implements spec.md §4.1 "delete": ErrNotFound if absent,
// otherwise unlinks the value and touches k.
func (k *Key) DeleteValue(name string, currentLevel int) error {
	idx, found := k.values.find(foldName(name))
	if !found {
		return regtypes.ErrNotFound
	}
	k.values.removeAt(idx)
	k.Touch(currentLevel)
	return nil
}
