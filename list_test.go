// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package positional

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T, depth int) *List[int, string] {
	t.Helper()
	cfg, err := NewConfig(depth)
	require.NoError(t, err)
	return New[int, string](cfg)
}

func TestEmptyList(t *testing.T) {
	a := assert.New(t)

	l := newTestList(t, 3)
	a.True(l.IsEmpty())
	a.Equal(0, l.Len())
	a.Equal(0, l.Start())
	a.Equal(0, l.End())
	a.Equal(0, l.Length())

	_, ok := l.FirstKey()
	a.False(ok)
	_, ok = l.LastKey()
	a.False(ok)
}

func TestAddElementAndPositionScenario(t *testing.T) {
	a := assert.New(t)

	l := newTestList(t, 9)

	aKey := l.AddElement("a", 4)
	a.Equal(1, l.Len())
	a.Equal(4, l.Start())
	a.Equal(4, l.End())
	pos, ok := l.Position(aKey)
	a.True(ok)
	a.Equal(4, pos)

	bKey := l.AddElement("b", 2)
	cKey := l.AddElement("c", 3)
	dKey := l.AddElement("d", 1)

	a.Equal(4, l.Len())
	a.Equal(4, l.Start())
	a.Equal(10, l.End())
	a.Equal(6, l.Length())

	for _, tc := range []struct {
		h    Handle
		want int
	}{
		{aKey, 4}, {bKey, 6}, {cKey, 9}, {dKey, 10},
	} {
		pos, ok := l.Position(tc.h)
		a.True(ok)
		a.Equal(tc.want, pos)
	}

	eA, ok := l.Element(aKey)
	a.True(ok)
	a.Equal("a", eA)

	first, ok := l.FirstKey()
	a.True(ok)
	a.Equal(aKey, first)

	last, ok := l.LastKey()
	a.True(ok)
	a.Equal(dKey, last)
}

func TestAddNineElementsDepthThreeSplitsRoot(t *testing.T) {
	a := assert.New(t)

	l := newTestList(t, 3) // K = 4, frame capacity 5

	var handles []Handle
	for i := 0; i < 9; i++ {
		handles = append(handles, l.AddElement(strconv.Itoa(i), 1))
	}

	a.Equal(9, l.Len())
	a.Equal(1, l.Start())
	a.Equal(9, l.End())

	root := l.frameAt(l.root)
	a.Equal(1, root.Level())
	a.Equal(2, root.Len()) // two base-frame children

	for i, h := range handles {
		pos, ok := l.Position(h)
		a.True(ok)
		a.Equal(i+1, pos)
	}
}

func TestAddSeventeenElementsDepthThreeTwoLevelsOfMeta(t *testing.T) {
	a := assert.New(t)

	l := newTestList(t, 3)

	var handles []Handle
	for i := 0; i < 17; i++ {
		handles = append(handles, l.AddElement(strconv.Itoa(i), 1))
	}

	a.Equal(17, l.Len())

	root := l.frameAt(l.root)
	a.Equal(2, root.Level())

	for i, h := range handles {
		pos, ok := l.Position(h)
		a.True(ok)
		a.Equal(i+1, pos)
	}
}

func TestAddElementFirstDeltaMayBeZero(t *testing.T) {
	a := assert.New(t)

	l := newTestList(t, 3)
	h := l.AddElement("a", 0)
	a.Equal(0, l.Start())
	a.Equal(0, l.End())

	pos, ok := l.Position(h)
	a.True(ok)
	a.Equal(0, pos)
}

func TestElementMutMutatesInPlace(t *testing.T) {
	a := assert.New(t)

	l := newTestList(t, 3)
	h := l.AddElement("a", 1)

	ptr, ok := l.ElementMut(h)
	a.True(ok)
	*ptr = "b"

	v, ok := l.Element(h)
	a.True(ok)
	a.Equal("b", v)
}

// TestFirstHandleIsNotZeroValue guards against the zero Handle (the
// "no handle" sentinel returned by e.g. an empty list's FirstKey)
// accidentally aliasing a real, live element. A naive arena that
// starts generation counting at 0 hands out exactly the zero ID for
// the very first insertion, which would make a caller's zero-valued
// Handle resolve to that element instead of being reported absent.
func TestFirstHandleIsNotZeroValue(t *testing.T) {
	a := assert.New(t)

	l := newTestList(t, 3)
	h := l.AddElement("a", 1)

	var zeroHandle Handle
	a.NotEqual(zeroHandle, h)
	a.False(zeroHandle.Valid())
	a.True(h.Valid())
}

func TestMissingHandleReturnsFalse(t *testing.T) {
	a := assert.New(t)

	l := newTestList(t, 3)
	l.AddElement("a", 1)

	var zeroHandle Handle
	_, ok := l.Element(zeroHandle)
	a.False(ok)
	_, ok = l.Position(zeroHandle)
	a.False(ok)
}
