// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/gaissmai/positional/internal/arena"
	"github.com/gaissmai/positional/internal/distances"
)

// Meta is an interior frame: its endpoints are child frame ids, all of
// a common Level one below this frame's own.
type Meta[S Scalar] struct {
	distances *distances.Distances[S]
	children  []arena.ID // never empty
	capacity  int
	level     int
	embedding Embedding
}

// NewMeta returns a Meta frame of the given level wrapping the single
// child, plus the slot index (always 0) at which it was placed.
func NewMeta[S Scalar](depth int, child arena.ID, level int, embedding Embedding) (*Meta[S], int) {
	capacity := 1<<(depth-1) + 1
	m := &Meta[S]{
		distances: distances.New[S](depth),
		children:  make([]arena.ID, 0, capacity),
		capacity:  capacity,
		level:     level,
		embedding: embedding,
	}
	m.children = append(m.children, child)
	return m, 0
}

// AddChild appends child at distance delta (> 0) past the current last
// child, returning its new slot index. The caller must have already
// checked !IsFull().
func (m *Meta[S]) AddChild(child arena.ID, delta S) int {
	m.distances.IncreaseDistance(len(m.children)-1, delta)
	m.children = append(m.children, child)
	return len(m.children) - 1
}

// FirstChild returns the leftmost child id.
func (m *Meta[S]) FirstChild() arena.ID {
	return m.children[0]
}

// LastChild returns the rightmost child id.
func (m *Meta[S]) LastChild() arena.ID {
	return m.children[len(m.children)-1]
}

// ChildAt returns the child id at slot i.
func (m *Meta[S]) ChildAt(i int) arena.ID {
	return m.children[i]
}

// Children exposes the live child slice.
func (m *Meta[S]) Children() []arena.ID {
	return m.children
}

// RemoveAt splices out the child at slot i along with the gap that
// followed it (gap i).
func (m *Meta[S]) RemoveAt(i int) {
	m.distances.Remove(i)
	m.children = append(m.children[:i], m.children[i+1:]...)
}

// Extend appends another meta frame's children and re-homes the shared
// boundary gap, used when merging with a sibling of the same level.
func (m *Meta[S]) Extend(other *Meta[S], distanceBetween S) {
	lastIdx := len(m.children) - 1
	m.distances.IncreaseDistance(lastIdx, distanceBetween)
	for i := 0; i < other.Len()-1; i++ {
		m.distances.IncreaseDistance(lastIdx+1+i, other.distances.Distance(i))
	}
	m.children = append(m.children, other.children...)
}

func (m *Meta[S]) Len() int { return len(m.children) }

func (m *Meta[S]) IsFull() bool { return len(m.children) == m.capacity }

// Capacity returns K+1, the maximum number of children this frame may hold.
func (m *Meta[S]) Capacity() int { return m.capacity }

func (m *Meta[S]) Distances() *distances.Distances[S] { return m.distances }

func (m *Meta[S]) Level() int { return m.level }

// LowerLevel decrements this frame's level by one, used when a chain of
// single-child meta frames collapses beneath it.
func (m *Meta[S]) LowerLevel() { m.level-- }

func (m *Meta[S]) Embedding() Embedding { return m.embedding }

func (m *Meta[S]) SetEmbedding(e Embedding) { m.embedding = e }
