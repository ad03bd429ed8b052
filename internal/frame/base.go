// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package frame

import (
	"github.com/gaissmai/positional/internal/arena"
	"github.com/gaissmai/positional/internal/distances"
)

// Base is a leaf frame: its endpoints are point handles (represented
// here as raw arena ids; the root package wraps them into its exported
// Handle type at the API boundary).
type Base[S Scalar] struct {
	distances *distances.Distances[S]
	handles   []arena.ID // never empty
	capacity  int        // K+1; fixed regardless of append-driven slice growth
	embedding Embedding
}

// NewBase returns a Base frame holding the single handle h, plus the
// slot index (always 0) at which it was placed.
func NewBase[S Scalar](depth int, h arena.ID, embedding Embedding) (*Base[S], int) {
	capacity := 1<<(depth-1) + 1
	b := &Base[S]{
		distances: distances.New[S](depth),
		handles:   make([]arena.ID, 0, capacity),
		capacity:  capacity,
		embedding: embedding,
	}
	b.handles = append(b.handles, h)
	return b, 0
}

// AddHandle appends h at distance delta (> 0) past the current last
// handle, returning its new slot index. The caller must have already
// checked !IsFull().
func (b *Base[S]) AddHandle(h arena.ID, delta S) int {
	b.distances.IncreaseDistance(len(b.handles)-1, delta)
	b.handles = append(b.handles, h)
	return len(b.handles) - 1
}

// FirstHandle returns the frame's leftmost handle.
func (b *Base[S]) FirstHandle() arena.ID {
	return b.handles[0]
}

// LastHandle returns the frame's rightmost handle.
func (b *Base[S]) LastHandle() arena.ID {
	return b.handles[len(b.handles)-1]
}

// HandleAt returns the handle at slot i.
func (b *Base[S]) HandleAt(i int) arena.ID {
	return b.handles[i]
}

// Handles exposes the live handle slice; callers must not mutate past
// RemoveAt/Extend, which keep it and the distances array in sync.
func (b *Base[S]) Handles() []arena.ID {
	return b.handles
}

// RemoveAt splices out the handle at slot i along with the gap that
// followed it (gap i), shifting later handles one slot left. Use distances
// bookkeeping (replenishing the vacated gap into a neighbor) is the
// caller's responsibility before or after calling this.
func (b *Base[S]) RemoveAt(i int) {
	b.distances.Remove(i)
	b.handles = append(b.handles[:i], b.handles[i+1:]...)
}

// Extend appends another base frame's handles and re-homes the shared
// boundary gap, used when merging with a full-enough right sibling.
// distanceBetween is the gap from this frame's last handle to other's
// first handle.
func (b *Base[S]) Extend(other *Base[S], distanceBetween S) {
	lastIdx := len(b.handles) - 1
	b.distances.IncreaseDistance(lastIdx, distanceBetween)
	for i := 0; i < other.Len()-1; i++ {
		b.distances.IncreaseDistance(lastIdx+1+i, other.distances.Distance(i))
	}
	b.handles = append(b.handles, other.handles...)
}

func (b *Base[S]) Len() int { return len(b.handles) }

func (b *Base[S]) IsFull() bool { return len(b.handles) == b.capacity }

// Capacity returns K+1, the maximum number of handles this frame may hold.
func (b *Base[S]) Capacity() int { return b.capacity }

func (b *Base[S]) Distances() *distances.Distances[S] { return b.distances }

func (b *Base[S]) Level() int { return 0 }

func (b *Base[S]) Embedding() Embedding { return b.embedding }

func (b *Base[S]) SetEmbedding(e Embedding) { b.embedding = e }
