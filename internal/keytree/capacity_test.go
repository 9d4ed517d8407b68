package keytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowCapacity(t *testing.T) {
	assert.Equal(t, minCapacity, growCapacity(0))
	assert.Equal(t, 12, growCapacity(8))  // +50%
	assert.Equal(t, 18, growCapacity(12))
}

func TestShrinkCapacity_ClampedToMinimum(t *testing.T) {
	assert.Equal(t, minCapacity, shrinkCapacity(8))
	assert.Equal(t, minCapacity, shrinkCapacity(10))
	assert.Equal(t, 12, shrinkCapacity(18))
}

func TestSortedList_CapacityNeverShrinksBelowFloor(t *testing.T) {
	l := newSortedList(func(s string) string { return s })
	for i := 0; i < 100; i++ {
		l.insertAt(l.Len(), string(rune('a'+i%26))+string(rune(i)))
	}
	for l.Len() > 0 {
		l.removeAt(0)
		assert.GreaterOrEqual(t, l.Cap(), minCapacity)
	}
	assert.Equal(t, minCapacity, l.Cap())
}

func TestSortedList_GrowsWhenFull(t *testing.T) {
	l := newSortedList(func(s string) string { return s })
	startCap := l.Cap()
	for i := 0; i <= startCap; i++ {
		idx, _ := l.find(string(rune('a' + i)))
		l.insertAt(idx, string(rune('a'+i)))
	}
	assert.Greater(t, l.Cap(), startCap)
}

func TestSortedList_FindReturnsInsertionPointOnMiss(t *testing.T) {
	l := newSortedList(func(s string) string { return s })
	l.insertAt(0, "b")
	l.insertAt(1, "d")

	idx, found := l.find("c")
	assert.False(t, found)
	assert.Equal(t, 1, idx)

	idx, found = l.find("d")
	assert.True(t, found)
	assert.Equal(t, 1, idx)
}
