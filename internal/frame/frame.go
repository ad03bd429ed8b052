// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package frame implements the two frame kinds that make up a
// positional index's tree: base frames, whose endpoints are point
// handles, and meta frames, whose endpoints are child frames one level
// down. Both share a common capability surface described by the Frame
// interface and the internal/arena.ID-based Embedding.
package frame

import (
	"github.com/gaissmai/positional/internal/arena"
	"github.com/gaissmai/positional/internal/distances"
)

// Scalar mirrors positional.Scalar; kept local to avoid an import cycle
// between this package and the root module.
type Scalar = distances.Scalar

// Embedding records where a frame sits: at the root of the list, or at
// a specific slot inside a parent meta frame.
type Embedding struct {
	InList bool
	Parent arena.ID
	Index  int
}

// Root is the embedding of the single frame that is the list's root.
var Root = Embedding{InList: true}

// InMeta builds the embedding for a frame sitting at index idx inside
// the meta frame parent.
func InMeta(parent arena.ID, idx int) Embedding {
	return Embedding{Parent: parent, Index: idx}
}

// Frame is the shared capability surface of Base and Meta frames, used
// by code that walks the tree without caring which kind a node is
// (embedding resolution, level bookkeeping, capacity checks).
type Frame[S Scalar] interface {
	// Len returns the number of endpoints (handles for a base frame,
	// children for a meta frame).
	Len() int
	// IsFull reports whether the frame holds its maximum Capacity()
	// endpoints.
	IsFull() bool
	// Capacity returns K+1, the maximum number of endpoints this frame
	// may hold.
	Capacity() int
	// Distances is the gap array describing the span between this
	// frame's consecutive endpoints.
	Distances() *distances.Distances[S]
	// Level is 0 for a base frame, and 1 + the level of its children
	// for a meta frame.
	Level() int
	// Embedding reports this frame's location in the tree.
	Embedding() Embedding
	// SetEmbedding re-homes this frame, used when the tree rebalances
	// (new root wrap, sibling merge, meta-frame dissolve).
	SetEmbedding(Embedding)
}
