// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package positional

import (
	"github.com/gaissmai/positional/internal/arena"
	"github.com/gaissmai/positional/internal/assert"
	"github.com/gaissmai/positional/internal/frame"
)

// addStrategy is the outcome of walking the rightmost-child chain to
// find where a new element lands.
type addStrategy struct {
	newBaseFrameNecessary  bool
	frameWithFullLastFrame arena.ID // only set when newBaseFrameNecessary
	lastFrame              arena.ID // only set when newBaseFrameNecessary
	baseFrame              arena.ID // only set when !newBaseFrameNecessary
}

// keyCanBeAddedTo reports whether an element could be appended
// somewhere along id's rightmost-child chain without growing the tree.
func (l *List[S, E]) keyCanBeAddedTo(id arena.ID) bool {
	n, _ := l.frames.Get(id)
	if n.Meta != nil {
		return !n.Meta.IsFull() || l.keyCanBeAddedTo(n.Meta.LastChild())
	}
	return !n.Base.IsFull()
}

// ensureRootCanAdd wraps the root in a fresh meta frame, one level
// higher, whenever the rightmost-child chain is entirely full. At most
// one wrap is needed per append, since the old root becomes the new
// root's sole (therefore non-full) child.
func (l *List[S, E]) ensureRootCanAdd() {
	if l.keyCanBeAddedTo(l.root) {
		return
	}

	level := l.frameAt(l.root).Level() + 1
	newRoot, idx := frame.NewMeta[S](l.cfg.Depth, l.root, level, frame.Root)
	newRootID := l.frames.Insert(node[S]{Meta: newRoot})
	l.setEmbedding(l.root, frame.InMeta(newRootID, idx))
	l.root = newRootID
}

// addBaseFrame allocates a point and a new base frame holding it,
// embedded as list root by default; callers that place it elsewhere
// overwrite the embedding afterward.
func (l *List[S, E]) addBaseFrame(element E) (arena.ID, arena.ID) {
	pointID := l.points.Insert(pointLoc{})

	b, idx := frame.NewBase[S](l.cfg.Depth, pointID, frame.Root)
	frameID := l.frames.Insert(node[S]{Base: b})

	loc, _ := l.points.Get(pointID)
	loc.frame = frameID
	loc.index = idx

	e := element
	l.elements[pointID] = &e

	return frameID, pointID
}

// addKeyStrategy descends from root along last-child pointers until it
// finds either a non-full base frame to append to directly, or the
// first meta frame whose last child is full, marking the split point.
func (l *List[S, E]) addKeyStrategy() addStrategy {
	id := l.root
	for {
		n, _ := l.frames.Get(id)
		if n.Meta == nil {
			return addStrategy{baseFrame: id}
		}

		last := n.Meta.LastChild()
		if l.keyCanBeAddedTo(last) {
			id = last
			continue
		}
		return addStrategy{newBaseFrameNecessary: true, frameWithFullLastFrame: id, lastFrame: last}
	}
}

// AddElement appends element at distance deltaFromLast past the
// current last element (interpreted as the list's starting position on
// the very first insertion), returning its handle. deltaFromLast must
// be strictly positive except on the first insertion, where it must be
// non-negative.
func (l *List[S, E]) AddElement(element E, deltaFromLast S) Handle {
	l.count++

	var zero S
	if !l.hasRoot {
		assert.That(deltaFromLast >= zero, "AddElement: first delta must be non-negative")

		l.start = deltaFromLast
		l.end = deltaFromLast

		frameID, pointID := l.addBaseFrame(element)
		l.root = frameID
		l.hasRoot = true

		return Handle{id: pointID}
	}

	assert.That(deltaFromLast > zero, "AddElement: distance from last must be positive")
	l.end += deltaFromLast

	l.ensureRootCanAdd()

	strat := l.addKeyStrategy()
	if strat.newBaseFrameNecessary {
		currentFrame, pointID := l.addBaseFrame(element)

		lastLevel := l.frameAt(strat.lastFrame).Level()
		for level := 1; level <= lastLevel; level++ {
			m, idx := frame.NewMeta[S](l.cfg.Depth, currentFrame, level, frame.Root)
			metaID := l.frames.Insert(node[S]{Meta: m})
			l.setEmbedding(currentFrame, frame.InMeta(metaID, idx))
			currentFrame = metaID
		}

		parent, _ := l.frames.Get(strat.frameWithFullLastFrame)
		index := parent.Meta.Len()
		l.setEmbedding(currentFrame, frame.InMeta(strat.frameWithFullLastFrame, index))

		lengthOfLast := l.lengthOf(strat.lastFrame)
		parent.Meta.AddChild(currentFrame, deltaFromLast+lengthOfLast)

		return Handle{id: pointID}
	}

	n, _ := l.frames.Get(strat.baseFrame)
	pointID := l.points.Insert(pointLoc{})
	index := n.Base.AddHandle(pointID, deltaFromLast)

	loc, _ := l.points.Get(pointID)
	loc.frame = strat.baseFrame
	loc.index = index

	e := element
	l.elements[pointID] = &e

	return Handle{id: pointID}
}
