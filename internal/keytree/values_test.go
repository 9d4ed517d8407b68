package keytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func TestKey_SetValue_CopiesDataBeforeInsert(t *testing.T) {
	k := New("k")
	buf := []byte("hello")

	v := k.SetValue("name", regtypes.REG_SZ, buf, 0)
	buf[0] = 'X'

	assert.Equal(t, "hello", string(v.Data), "SetValue must copy, not alias, the caller's buffer")
}

func TestKey_SetValue_NilDataForEmpty(t *testing.T) {
	k := New("k")
	v := k.SetValue("name", regtypes.REG_NONE, nil, 0)
	assert.Nil(t, v.Data)
}

func TestKey_SetValue_TouchesKey(t *testing.T) {
	k := New("k")
	k.Level = 5
	k.SetValue("name", regtypes.REG_SZ, []byte("x"), 9)
	assert.Equal(t, 9, k.Level)
}

func TestKey_GetValue_NotFound(t *testing.T) {
	k := New("k")
	_, err := k.GetValue("missing")
	assert.ErrorIs(t, err, regtypes.ErrNotFound)
}

func TestKey_GetValue_Found(t *testing.T) {
	k := New("k")
	k.SetValue("name", regtypes.REG_DWORD, []byte{1, 0, 0, 0}, 0)

	v, err := k.GetValue("NAME")
	require.NoError(t, err)
	assert.Equal(t, regtypes.REG_DWORD, v.Type)
}

func TestKey_DeleteValue(t *testing.T) {
	k := New("k")
	k.SetValue("name", regtypes.REG_SZ, []byte("v"), 0)

	err := k.DeleteValue("NAME", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, k.ValueCount())

	err = k.DeleteValue("name", 0)
	assert.ErrorIs(t, err, regtypes.ErrNotFound)
}

func TestKey_EnumValue_SortedAndOutOfRange(t *testing.T) {
	k := New("k")
	k.SetValue("zeta", regtypes.REG_SZ, nil, 0)
	k.SetValue("alpha", regtypes.REG_SZ, nil, 0)
	k.SetValue("mid", regtypes.REG_SZ, nil, 0)

	var names []string
	for i := 0; ; i++ {
		v, err := k.EnumValue(i)
		if err != nil {
			assert.ErrorIs(t, err, regtypes.ErrNoMoreItems)
			break
		}
		names = append(names, v.Name)
	}
	require.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestKey_InsertValue_ReturnsExistingOnRepeat(t *testing.T) {
	k := New("k")
	first := k.InsertValue("dup")
	second := k.InsertValue("DUP")
	assert.Same(t, first, second)
	assert.Equal(t, 1, k.ValueCount())
}

func TestKey_DefaultValue_EmptyName(t *testing.T) {
	k := New("k")
	k.SetValue("", regtypes.REG_SZ, []byte("default"), 0)

	v, err := k.GetValue("")
	require.NoError(t, err)
	assert.Equal(t, "default", string(v.Data))
}
