// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package positional

import (
	"github.com/gaissmai/positional/internal/arena"
	"github.com/gaissmai/positional/internal/frame"
)

// tryMerge attempts to fold meta frame m's child at rightIndex into its
// left sibling at leftIndex, provided their combined size fits one
// frame's capacity. It reports whether the merge happened.
func (l *List[S, E]) tryMerge(metaFrameID arena.ID, leftIndex int) bool {
	rightIndex := leftIndex + 1

	parentNode, _ := l.frames.Get(metaFrameID)
	meta := parentNode.Meta

	if rightIndex >= meta.Len() {
		return false
	}

	leftID := meta.ChildAt(leftIndex)
	rightID := meta.ChildAt(rightIndex)

	leftNode, _ := l.frames.Get(leftID)
	rightNode, _ := l.frames.Get(rightID)
	leftFrame := leftNode.frame()
	rightFrame := rightNode.frame()

	if leftFrame.Len()+rightFrame.Len() > leftFrame.Capacity() {
		return false
	}

	distanceBetween := meta.Distances().Distance(leftIndex) - leftFrame.Distances().Length()
	leftLenBefore := leftFrame.Len()

	// The gap trailing the right sibling (distance from right's start to
	// whatever sits after it, zero if right was meta's last child) must
	// survive the merge: it now measures from the merged frame's (left's)
	// start to that same next child, so fold it into leftIndex's own gap
	// before the rightIndex slot disappears under RemoveAt below.
	meta.Distances().IncreaseDistance(leftIndex, meta.Distances().Distance(rightIndex))

	// Capture the right frame's own pointer before freeing its arena
	// slot: Remove zeroes the slot's node[S] in place, so reading
	// through rightNode afterward would see nil fields.
	rightMeta, rightBase := rightNode.Meta, rightNode.Base

	l.frames.Remove(rightID)

	switch {
	case leftNode.Meta != nil:
		leftNode.Meta.Extend(rightMeta, distanceBetween)
		l.reembedChildrenAfterMerge(leftID, leftNode.Meta.Children(), leftLenBefore)
	default:
		leftNode.Base.Extend(rightBase, distanceBetween)
		l.reembedPointsAfterMerge(leftID, leftNode.Base.Handles(), leftLenBefore)
	}

	meta.RemoveAt(rightIndex)

	return true
}

// reembedChildrenAfterMerge updates the Embedding of every child that
// moved from the merged-away right meta frame into left, at its new
// index inside left.
func (l *List[S, E]) reembedChildrenAfterMerge(leftID arena.ID, children []arena.ID, fromIndex int) {
	for i := fromIndex; i < len(children); i++ {
		l.setEmbedding(children[i], frame.InMeta(leftID, i))
	}
}

// reembedPointsAfterMerge updates the (frame, slot) location of every
// point handle that moved from the merged-away right base frame into
// left, at its new slot inside left.
func (l *List[S, E]) reembedPointsAfterMerge(leftID arena.ID, handles []arena.ID, fromIndex int) {
	for i := fromIndex; i < len(handles); i++ {
		loc, ok := l.points.Get(handles[i])
		if !ok {
			continue
		}
		loc.frame = leftID
		loc.index = i
	}
}

// lower decrements the level of every meta frame on embedding's
// ancestor chain, used after a chain of single-child meta frames
// collapses beneath a frame whose level just changed.
func (l *List[S, E]) lower(embedding frame.Embedding) {
	for !embedding.InList {
		parentNode, _ := l.frames.Get(embedding.Parent)
		parentNode.Meta.LowerLevel()
		embedding = parentNode.Meta.Embedding()
	}
}

// tryMergeAround attempts to merge id's frame with a sibling, then
// recursively propagates the attempt upward and dissolves any meta
// frame left holding a single child.
func (l *List[S, E]) tryMergeAround(id arena.ID) {
	n, _ := l.frames.Get(id)
	embedding := n.frame().Embedding()
	if embedding.InList {
		return
	}

	parent := embedding.Parent
	index := embedding.Index

	var merged bool
	switch {
	case index > 0:
		merged = l.tryMerge(parent, index-1) || l.tryMerge(parent, index)
	default:
		merged = l.tryMerge(parent, index)
	}
	if !merged {
		return
	}

	l.tryMergeAround(parent)

	parentNode, _ := l.frames.Get(parent)
	if parentNode.Meta.Len() == 1 {
		sole := parentNode.Meta.FirstChild()
		dissolvedEmbedding := parentNode.Meta.Embedding()

		l.frames.Remove(parent)
		l.lower(dissolvedEmbedding)

		if dissolvedEmbedding.InList {
			l.root = sole
		}
		l.setEmbedding(sole, dissolvedEmbedding)
	}
}

// distanceBefore returns the gap immediately preceding loc: the
// previous slot in the same frame, or, when loc is slot 0, the gap
// recorded in the parent frame at this frame's own embedding slot
// (recursively). Symmetric to replenishDistance, extended beyond the
// reference implementation's local-only read to avoid an out-of-range
// lookup when the boundary element sits at slot 0 of an embedded frame.
func (l *List[S, E]) distanceBefore(loc pointLoc) S {
	f := l.frameAt(loc.frame)
	if loc.index > 0 {
		return f.Distances().Distance(loc.index - 1)
	}

	embedding := f.Embedding()
	if embedding.InList {
		return *new(S)
	}
	return l.distanceBefore(pointLoc{frame: embedding.Parent, index: embedding.Index})
}

// replenishDistance transfers distance, the gap that trailed the
// just-removed element, into whichever neighboring gap logically
// precedes it: the previous slot in the same frame, or, when the
// removed element was at slot 0, the frame's own embedding slot in its
// parent (recursively, since that slot may itself be index 0).
func (l *List[S, E]) replenishDistance(loc pointLoc, distance S) {
	f := l.frameAt(loc.frame)
	if loc.index > 0 {
		f.Distances().IncreaseDistance(loc.index-1, distance)
		return
	}

	embedding := f.Embedding()
	if !embedding.InList {
		l.replenishDistance(pointLoc{frame: embedding.Parent, index: embedding.Index}, distance)
	}
}

// RemoveElement removes the element at handle h, returning its payload
// and true, or the zero value and false if h is not present.
//
// Removing the list's sole remaining element resets it to the same
// state as a freshly constructed List.
func (l *List[S, E]) RemoveElement(h Handle) (E, bool) {
	if l.IsEmpty() {
		return *new(E), false
	}

	loc, ok := l.points.Get(h.id)
	if !ok {
		return *new(E), false
	}
	frameOfRemoved, index := loc.frame, loc.index

	firstKey := l.firstKeyOf(l.root)
	lastKey := l.lastKeyOf(l.root)

	l.count--

	if h.id == firstKey && h.id == lastKey {
		e, _ := l.elements[h.id]
		val := *e

		l.root = arena.ID{}
		l.hasRoot = false
		l.frames.Clear()
		l.start = *new(S)
		l.end = *new(S)
		l.points.Clear()
		delete(l.elements, h.id)

		return val, true
	}

	baseNode, _ := l.frames.Get(frameOfRemoved)
	baseFrame := baseNode.Base

	distanceAfterRemoved := baseFrame.Distances().Distance(index)

	if h.id == firstKey {
		l.start += distanceAfterRemoved
	}
	if h.id == lastKey {
		distanceBeforeRemoved := l.distanceBefore(pointLoc{frame: frameOfRemoved, index: index})
		l.end -= distanceBeforeRemoved
		if index > 0 {
			// That gap now trails the frame's new last handle; clear it so
			// the next append measures from the new last element.
			baseFrame.Distances().IncreaseDistance(index-1, -distanceBeforeRemoved)
		}
	}

	baseFrame.RemoveAt(index)

	l.replenishDistance(pointLoc{frame: frameOfRemoved, index: index}, distanceAfterRemoved)

	baseNode, _ = l.frames.Get(frameOfRemoved)
	baseFrame = baseNode.Base
	for i := index; i < baseFrame.Len(); i++ {
		if hloc, ok := l.points.Get(baseFrame.HandleAt(i)); ok {
			hloc.index = i
		}
	}

	l.points.Remove(h.id)
	e := l.elements[h.id]
	val := *e
	delete(l.elements, h.id)

	l.tryMergeAround(frameOfRemoved)

	return val, true
}
