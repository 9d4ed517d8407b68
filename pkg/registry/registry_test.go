package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func TestCreateSetGetKeyValue(t *testing.T) {
	r := New()
	defer r.Close()

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey)
	require.NoError(t, err)
	defer r.CloseKey(hklm)

	h, created, err := r.CreateKey(hklm, `Software\MyApp`, "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
	require.NoError(t, err)
	assert.True(t, created)
	defer r.CloseKey(h)

	err = r.SetKeyValue(h, "Name", regtypes.REG_SZ, []byte("hello"))
	require.NoError(t, err)

	typ, data, err := r.GetKeyValue(h, "Name")
	require.NoError(t, err)
	assert.Equal(t, regtypes.REG_SZ, typ)
	assert.Equal(t, []byte("hello"), data)
}

func TestCreateKey_SecondCallReturnsExistingNotCreated(t *testing.T) {
	r := New()
	defer r.Close()

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey)
	require.NoError(t, err)

	_, created1, err := r.CreateKey(hklm, "MyApp", "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
	require.NoError(t, err)
	assert.True(t, created1)

	_, created2, err := r.CreateKey(hklm, "MyApp", "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
	require.NoError(t, err)
	assert.False(t, created2)
}

func TestEnumKey_SortedInsertion(t *testing.T) {
	r := New()
	defer r.Close()

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey|regtypes.KeyEnumerateSubKeys)
	require.NoError(t, err)

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		_, _, err := r.CreateKey(hklm, name, "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
		require.NoError(t, err)
	}

	var names []string
	for i := 0; ; i++ {
		name, _, _, err := r.EnumKey(hklm, i)
		if err != nil {
			assert.ErrorIs(t, err, regtypes.ErrNoMoreItems)
			break
		}
		names = append(names, name)
	}
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names)
}

func TestCreateKey_VolatileContainment(t *testing.T) {
	r := New()
	defer r.Close()

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey)
	require.NoError(t, err)

	vh, _, err := r.CreateKey(hklm, "Vol", "", regtypes.OptionVolatile, regtypes.KeyAllAccess)
	require.NoError(t, err)

	_, _, err = r.CreateKey(vh, "Child", "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
	assert.ErrorIs(t, err, regtypes.ErrMustBeVolatile)
}

func TestDeleteKey_RejectsKeyWithChildren(t *testing.T) {
	r := New()
	defer r.Close()

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey)
	require.NoError(t, err)

	_, _, err = r.CreateKey(hklm, `A\B`, "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
	require.NoError(t, err)

	err = r.DeleteKey(hklm, "A")
	assert.ErrorIs(t, err, regtypes.ErrAccessDenied)

	err = r.DeleteKey(hklm, `A\B`)
	require.NoError(t, err)
	err = r.DeleteKey(hklm, "A")
	assert.NoError(t, err)
}

func TestCreateKey_AccessMaskEnforced(t *testing.T) {
	r := New()
	defer r.Close()

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey)
	require.NoError(t, err)

	h, _, err := r.CreateKey(hklm, "Restricted", "", regtypes.OptionNonVolatile, regtypes.KeyQueryValue)
	require.NoError(t, err)

	err = r.SetKeyValue(h, "X", regtypes.REG_SZ, []byte("y"))
	assert.ErrorIs(t, err, regtypes.ErrAccessDenied)
}

func TestCloseKey_IgnoredOnRoot(t *testing.T) {
	r := New()
	defer r.Close()

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyAllAccess)
	require.NoError(t, err)

	r.CloseKey(hklm)

	_, err = r.QueryKeyInfo(hklm)
	assert.NoError(t, err, "closing a root handle must be a no-op")
}

func TestSaveLoadRegistry_RoundTrip(t *testing.T) {
	r := New()
	defer r.Close()
	r.SetSavingVersion(2)

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey|regtypes.KeyQueryValue|regtypes.KeyEnumerateSubKeys)
	require.NoError(t, err)

	h, _, err := r.CreateKey(hklm, `Software\MyApp`, "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
	require.NoError(t, err)
	value := []byte{'v', 0, 'a', 0, 'l', 0, 'u', 0, 'e', 0, 0, 0} // UTF-16LE "value\0"
	require.NoError(t, r.SetKeyValue(h, "Name", regtypes.REG_SZ, value))

	var buf strings.Builder
	require.NoError(t, r.SaveRegistry(hklm, &buf))
	assert.Contains(t, buf.String(), "HKEY_LOCAL_MACHINE")
	assert.Contains(t, buf.String(), "MyApp")

	r2 := New()
	defer r2.Close()
	hklm2, err := r2.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeySetValue|regtypes.KeyCreateSubKey|regtypes.KeyQueryValue)
	require.NoError(t, err)
	require.NoError(t, r2.LoadRegistry(hklm2, strings.NewReader(buf.String())))

	h2, err := r2.OpenKey(hklm2, `Software\MyApp`, regtypes.KeyQueryValue)
	require.NoError(t, err)
	typ, data, err := r2.GetKeyValue(h2, "Name")
	require.NoError(t, err)
	assert.Equal(t, regtypes.REG_SZ, typ)
	assert.Equal(t, value, data)
}

func TestSaveRegistry_V1WhenSavingVersionOne(t *testing.T) {
	r := New()
	defer r.Close()
	r.SetSavingVersion(1)

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey|regtypes.KeyQueryValue|regtypes.KeyEnumerateSubKeys)
	require.NoError(t, err)
	h, _, err := r.CreateKey(hklm, "MyApp", "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
	require.NoError(t, err)
	require.NoError(t, r.SetKeyValue(h, "Name", regtypes.REG_SZ, []byte("v")))

	var buf strings.Builder
	require.NoError(t, r.SaveRegistry(hklm, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "REGEDIT4"))
}

func TestSetRegistryLevels_AffectsEligibility(t *testing.T) {
	r := New()
	defer r.Close()

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey|regtypes.KeyQueryValue|regtypes.KeyEnumerateSubKeys)
	require.NoError(t, err)

	h, _, err := r.CreateKey(hklm, "Low", "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
	require.NoError(t, err)
	require.NoError(t, r.SetKeyValue(h, "V", regtypes.REG_SZ, []byte("x")))

	r.SetRegistryLevels(0, 5)

	var buf strings.Builder
	require.NoError(t, r.SaveRegistry(hklm, &buf))
	assert.NotContains(t, buf.String(), "Low")
}

func TestDeleteKeyValue(t *testing.T) {
	r := New()
	defer r.Close()

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey)
	require.NoError(t, err)
	h, _, err := r.CreateKey(hklm, "App", "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
	require.NoError(t, err)

	require.NoError(t, r.SetKeyValue(h, "V", regtypes.REG_SZ, []byte("x")))
	require.NoError(t, r.DeleteKeyValue(h, "V"))

	_, _, err = r.GetKeyValue(h, "V")
	assert.ErrorIs(t, err, regtypes.ErrNotFound)
}

func TestQueryKeyInfo(t *testing.T) {
	r := New()
	defer r.Close()

	hklm, err := r.OpenRoot(regtypes.HKEYLocalMachine, regtypes.KeyCreateSubKey|regtypes.KeyQueryValue)
	require.NoError(t, err)
	h, _, err := r.CreateKey(hklm, "App", "", regtypes.OptionNonVolatile, regtypes.KeyAllAccess)
	require.NoError(t, err)
	require.NoError(t, r.SetKeyValue(h, "Name", regtypes.REG_SZ, []byte("x")))

	qi, err := r.QueryKeyInfo(h)
	require.NoError(t, err)
	assert.Equal(t, 1, qi.ValueCount)
}
