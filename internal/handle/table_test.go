package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winelayer/regsrv/internal/keytree"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

func TestTable_AllocGet(t *testing.T) {
	tbl := NewTable()
	k := keytree.New("k")

	h := tbl.Alloc(k, regtypes.KeyQueryValue|regtypes.KeySetValue, false)

	got, err := tbl.Get(h, regtypes.KeyQueryValue)
	require.NoError(t, err)
	assert.Same(t, k, got)
}

func TestTable_Get_AccessDeniedOnInsufficientMask(t *testing.T) {
	tbl := NewTable()
	k := keytree.New("k")
	h := tbl.Alloc(k, regtypes.KeyQueryValue, false)

	_, err := tbl.Get(h, regtypes.KeySetValue)
	assert.ErrorIs(t, err, regtypes.ErrAccessDenied)
}

func TestTable_Get_UnknownHandle(t *testing.T) {
	tbl := NewTable()
	_, err := tbl.Get(Handle(9999), regtypes.KeyQueryValue)
	assert.Error(t, err)
}

func TestTable_AllocReturnsDistinctHandles(t *testing.T) {
	tbl := NewTable()
	k := keytree.New("k")
	h1 := tbl.Alloc(k, regtypes.KeyAllAccess, false)
	h2 := tbl.Alloc(k, regtypes.KeyAllAccess, false)
	assert.NotEqual(t, h1, h2)
}

func TestTable_Close_RemovesOrdinaryHandle(t *testing.T) {
	tbl := NewTable()
	k := keytree.New("k")
	h := tbl.Alloc(k, regtypes.KeyAllAccess, false)

	tbl.Close(h)

	_, err := tbl.Get(h, regtypes.KeyQueryValue)
	assert.Error(t, err)
}

func TestTable_Close_IgnoredOnRootHandle(t *testing.T) {
	tbl := NewTable()
	k := keytree.New("")
	h := tbl.Alloc(k, regtypes.KeyAllAccess, true)

	tbl.Close(h)

	got, err := tbl.Get(h, regtypes.KeyQueryValue)
	require.NoError(t, err, "closing a root handle must be a no-op")
	assert.Same(t, k, got)
}

func TestTable_Close_UnknownHandleIsNoop(t *testing.T) {
	tbl := NewTable()
	assert.NotPanics(t, func() { tbl.Close(Handle(42)) })
}

func TestTable_Get_NormalizesMaximumAllowed(t *testing.T) {
	tbl := NewTable()
	k := keytree.New("k")
	h := tbl.Alloc(k, regtypes.MaximumAllowed, false)

	_, err := tbl.Get(h, regtypes.KeyAllAccess)
	assert.NoError(t, err, "a handle opened with MAXIMUM_ALLOWED must satisfy any request")
}
