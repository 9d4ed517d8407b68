package registry

import (
	"io"
	"time"

	"github.com/winelayer/regsrv/internal/keytree"
	"github.com/winelayer/regsrv/internal/path"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

// CreateKey implements create_key (spec.md §6.3): requires KEY_CREATE_SUB_KEY
// on parent. class attaches only to the terminal node; options carries
// REG_OPTION_VOLATILE.
func (r *Registry) CreateKey(parent Handle, name, class string, options regtypes.CreateOptions, access regtypes.AccessMask) (Handle, bool, error) {
	if options&regtypes.OptionCreateLink != 0 {
		return 0, false, regtypes.ErrUnsupported
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	base, err := r.handles.Get(parent, regtypes.KeyCreateSubKey)
	if err != nil {
		return 0, false, err
	}
	res, err := path.Create(base, name, path.CreateOptions{
		Volatile: options&regtypes.OptionVolatile != 0,
		Class:    class,
	}, r.currentLevel, r.limits.MaxComponentLen)
	if err != nil {
		return 0, false, err
	}
	h := r.handles.Alloc(res.Key, access.Normalize(), false)
	if res.Created {
		r.notifyMutate(res.Key)
	}
	return h, res.Created, nil
}

// OpenKey implements open_key (spec.md §6.3): no access right is enforced on
// the parent handle beyond it being resolvable at all (KEY_QUERY_VALUE is
// the least privileged right every handle-granting open implies).
func (r *Registry) OpenKey(parent Handle, name string, access regtypes.AccessMask) (Handle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	base, err := r.handles.Get(parent, 0)
	if err != nil {
		return 0, err
	}
	k, err := path.Open(base, name, r.limits.MaxComponentLen)
	if err != nil {
		return 0, err
	}
	return r.handles.Alloc(k, access.Normalize(), k.Flags.Has(regtypes.FlagRoot)), nil
}

// DeleteKey implements delete_key (spec.md §6.3): requires KEY_CREATE_SUB_KEY
// on hkey, the parent of the key named by name.
func (r *Registry) DeleteKey(hkey Handle, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	base, err := r.handles.Get(hkey, regtypes.KeyCreateSubKey)
	if err != nil {
		return err
	}
	var mutated string
	if target, ferr := path.Open(base, name, r.limits.MaxComponentLen); ferr == nil {
		mutated = r.mutatePath(target)
	}
	if err := path.Delete(base, name, r.currentLevel, r.limits.MaxComponentLen); err != nil {
		return err
	}
	if r.OnMutate != nil && mutated != "" {
		r.OnMutate(mutated)
	}
	return nil
}

// CloseKey implements close_key (spec.md §6.3): no access check, silently
// ignored on root handles and on handles already closed.
func (r *Registry) CloseKey(hkey Handle) {
	r.handles.Close(hkey)
}

// EnumKey implements enum_key (spec.md §6.3): requires KEY_ENUMERATE_SUB_KEYS.
func (r *Registry) EnumKey(hkey Handle, index int) (name, class string, modif time.Time, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, err := r.handles.Get(hkey, regtypes.KeyEnumerateSubKeys)
	if err != nil {
		return "", "", time.Time{}, err
	}
	child, err := k.ChildAt(index)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return child.Name, child.Class, child.Modif, nil
}

// QueryKeyInfo implements query_key_info (spec.md §6.3): requires KEY_QUERY_VALUE.
func (r *Registry) QueryKeyInfo(hkey Handle) (keytree.QueryInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, err := r.handles.Get(hkey, regtypes.KeyQueryValue)
	if err != nil {
		return keytree.QueryInfo{}, err
	}
	return k.Query(), nil
}

// SetKeyValue implements set_key_value (spec.md §6.3): requires KEY_SET_VALUE.
func (r *Registry) SetKeyValue(hkey Handle, name string, typ regtypes.ValueType, data []byte) error {
	if err := r.checkValueLen(name, data); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k, err := r.handles.Get(hkey, regtypes.KeySetValue)
	if err != nil {
		return err
	}
	k.SetValue(name, typ, data, r.currentLevel)
	r.notifyMutate(k)
	return nil
}

// GetKeyValue implements get_key_value (spec.md §6.3): requires KEY_QUERY_VALUE.
func (r *Registry) GetKeyValue(hkey Handle, name string) (regtypes.ValueType, []byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, err := r.handles.Get(hkey, regtypes.KeyQueryValue)
	if err != nil {
		return 0, nil, err
	}
	v, err := k.GetValue(name)
	if err != nil {
		return 0, nil, err
	}
	return v.Type, cloneBytes(v.Data), nil
}

// EnumKeyValue implements enum_key_value (spec.md §6.3): requires KEY_QUERY_VALUE.
func (r *Registry) EnumKeyValue(hkey Handle, index int) (name string, typ regtypes.ValueType, data []byte, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, err := r.handles.Get(hkey, regtypes.KeyQueryValue)
	if err != nil {
		return "", 0, nil, err
	}
	v, err := k.EnumValue(index)
	if err != nil {
		return "", 0, nil, err
	}
	return v.Name, v.Type, cloneBytes(v.Data), nil
}

// DeleteKeyValue implements delete_key_value (spec.md §6.3): requires KEY_SET_VALUE.
func (r *Registry) DeleteKeyValue(hkey Handle, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k, err := r.handles.Get(hkey, regtypes.KeySetValue)
	if err != nil {
		return err
	}
	if err := k.DeleteValue(name, r.currentLevel); err != nil {
		return err
	}
	r.notifyMutate(k)
	return nil
}

// LoadRegistry implements load_registry (spec.md §6.3): requires
// KEY_SET_VALUE|KEY_CREATE_SUB_KEY, merges rd under hkey.
func (r *Registry) LoadRegistry(hkey Handle, rd io.Reader) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k, err := r.handles.Get(hkey, regtypes.KeySetValue|regtypes.KeyCreateSubKey)
	if err != nil {
		return err
	}
	if err := r.codec.LoadInto(k, rd, r.currentLevel, r.limits.MaxComponentLen); err != nil {
		return err
	}
	r.notifyMutate(k)
	return nil
}

// SaveRegistry implements save_registry (spec.md §6.3): requires
// KEY_QUERY_VALUE|KEY_ENUMERATE_SUB_KEYS, writes hkey's subtree per
// saving_version (v2 unless set to 1).
func (r *Registry) SaveRegistry(hkey Handle, w io.Writer) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, err := r.handles.Get(hkey, regtypes.KeyQueryValue|regtypes.KeyEnumerateSubKeys)
	if err != nil {
		return err
	}
	if r.savingVersion == 1 {
		return r.codec.SaveV1(w, k, r.savingLevel)
	}
	rootName, ok := r.roots.NameOf(k)
	if !ok {
		return regtypes.Wrap(regtypes.ErrNotFound, "save_registry: key does not belong to any root", nil)
	}
	return r.codec.SaveV2(w, k, rootName, r.savingLevel)
}

// SetRegistryLevels implements set_registry_levels (spec.md §6.3): updates
// the current_level/saving_level globals. No access check is required.
func (r *Registry) SetRegistryLevels(current, saving int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentLevel = current
	r.savingLevel = saving
}

// SetSavingVersion selects which format SaveRegistry produces (spec.md §4.4
// "produced when saving_version == 2" / "== 1"). Not one of the thirteen
// named requests — bootstrap configuration sets this once at startup
// (SPEC_FULL.md §2/§3).
func (r *Registry) SetSavingVersion(version int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.savingVersion = version
}

func (r *Registry) checkValueLen(name string, data []byte) error {
	if len(name) > r.limits.MaxValueNameLen || len(data) > r.limits.MaxValueDataLen {
		return regtypes.ErrOutOfMemory
	}
	return nil
}

// cloneBytes returns a copy of data so callers of GetKeyValue/EnumKeyValue
// can't mutate the tree's stored bytes in place, bypassing SetValue's
// copy-before-insert discipline and Touch/OnMutate.
func cloneBytes(data []byte) []byte {
	if data == nil {
		return nil
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf
}
