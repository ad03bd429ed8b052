// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package frame

import (
	"testing"

	"github.com/gaissmai/positional/internal/arena"
	"github.com/stretchr/testify/assert"
)

func TestBaseAddHandleGrowsDistances(t *testing.T) {
	a := assert.New(t)

	var handles arena.Slab[struct{}]
	h0 := handles.Insert(struct{}{})
	h1 := handles.Insert(struct{}{})
	h2 := handles.Insert(struct{}{})
	h3 := handles.Insert(struct{}{})
	h4 := handles.Insert(struct{}{})

	b, idx := NewBase[int](4, h0, Root) // depth 4 -> capacity 8, frame capacity 9
	a.Equal(0, idx)
	a.Equal(1, b.Len())

	a.Equal(1, b.AddHandle(h1, 1))
	a.Equal(1, b.Distances().Distance(0))

	a.Equal(2, b.AddHandle(h2, 2))
	a.Equal(2, b.Distances().Distance(1))

	a.Equal(3, b.AddHandle(h3, 3))
	a.Equal(3, b.Distances().Distance(2))

	a.Equal(4, b.AddHandle(h4, 4))
	a.Equal(4, b.Distances().Distance(3))

	a.Equal(h0, b.FirstHandle())
	a.Equal(h4, b.LastHandle())
	a.Equal(5, b.Len())
	a.False(b.IsFull())
}

func TestBaseIsFullAtCapacity(t *testing.T) {
	a := assert.New(t)

	var handles arena.Slab[struct{}]
	b, _ := NewBase[int](2, handles.Insert(struct{}{}), Root) // capacity 2, frame capacity 3
	a.False(b.IsFull())

	b.AddHandle(handles.Insert(struct{}{}), 1)
	a.False(b.IsFull())

	b.AddHandle(handles.Insert(struct{}{}), 1)
	a.True(b.IsFull())
}

func TestBaseRemoveAtShiftsHandles(t *testing.T) {
	a := assert.New(t)

	var handles arena.Slab[struct{}]
	h0 := handles.Insert(struct{}{})
	h1 := handles.Insert(struct{}{})
	h2 := handles.Insert(struct{}{})

	b, _ := NewBase[int](3, h0, Root)
	b.AddHandle(h1, 2)
	b.AddHandle(h2, 3)

	b.RemoveAt(1) // drop h1

	a.Equal(2, b.Len())
	a.Equal(h0, b.HandleAt(0))
	a.Equal(h2, b.HandleAt(1))
}
