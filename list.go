// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package positional implements the positional index core: an
// in-memory ordered container where every element carries a scalar
// position on a one-dimensional axis, appended by relative distance
// from the previous element. A stable opaque Handle is returned at
// insertion time and resolves to its element's absolute position and
// payload in O(log N) regardless of how many elements have been
// inserted, via a hierarchy of fixed-capacity frames carrying a
// Fenwick-style prefix-sum array.
package positional

import (
	"github.com/gaissmai/positional/internal/arena"
	"github.com/gaissmai/positional/internal/frame"
	"go.uber.org/zap"
)

// node is the tagged-union slot stored in a List's frame arena: exactly
// one of Base or Meta is non-nil. Go has no sum types, so this mirrors
// the reference implementation's EitherFrame enum as two optional
// pointer fields instead of an interface, since Base[S] and Meta[S]
// are distinct instantiations that both need to live in one arena.
type node[S Scalar] struct {
	Base *frame.Base[S]
	Meta *frame.Meta[S]
}

func (n node[S]) frame() frame.Frame[S] {
	if n.Base != nil {
		return n.Base
	}
	return n.Meta
}

// pointLoc is where a point handle currently lives: which base frame,
// and at which slot within it.
type pointLoc struct {
	frame arena.ID
	index int
}

// List is the user-facing positional index. The zero value is not
// ready to use; construct one with New.
type List[S Scalar, E any] struct {
	cfg Config
	log *zap.Logger

	frames  arena.Slab[node[S]]
	root    arena.ID
	hasRoot bool

	start S
	end   S
	count int

	points   arena.Slab[pointLoc]
	elements map[arena.ID]*E
}

// New returns an empty List configured with cfg's frame capacity. A
// zero Config is invalid; use DefaultConfig or NewConfig.
func New[S Scalar, E any](cfg Config) *List[S, E] {
	return &List[S, E]{
		cfg:      cfg,
		log:      zap.NewNop(),
		elements: make(map[arena.ID]*E),
	}
}

// SetLogger attaches a zap logger for diagnostic messages. Only Dump
// writes to it; frame splits, merges and dissolves are not logged. A
// nil logger is treated as zap.NewNop().
func (l *List[S, E]) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	l.log = log
}

// Len returns the number of elements stored in the list. Not to be
// confused with Length.
func (l *List[S, E]) Len() int {
	return l.count
}

// IsEmpty reports whether the list holds no elements.
func (l *List[S, E]) IsEmpty() bool {
	return l.count == 0
}

// Start returns the position of the first element, zero for an empty list.
func (l *List[S, E]) Start() S {
	return l.start
}

// End returns the position of the last element, zero for an empty list.
func (l *List[S, E]) End() S {
	return l.end
}

// Length returns the distance between the first and last elements,
// zero for an empty list. Not to be confused with Len.
func (l *List[S, E]) Length() S {
	return l.end - l.start
}

// FirstKey returns the handle of the leftmost element, and false if the
// list is empty.
func (l *List[S, E]) FirstKey() (Handle, bool) {
	if !l.hasRoot {
		return Handle{}, false
	}
	return Handle{id: l.firstKeyOf(l.root)}, true
}

// LastKey returns the handle of the rightmost element, and false if the
// list is empty.
func (l *List[S, E]) LastKey() (Handle, bool) {
	if !l.hasRoot {
		return Handle{}, false
	}
	return Handle{id: l.lastKeyOf(l.root)}, true
}

func (l *List[S, E]) firstKeyOf(id arena.ID) arena.ID {
	n, _ := l.frames.Get(id)
	if n.Meta != nil {
		return l.firstKeyOf(n.Meta.FirstChild())
	}
	return n.Base.FirstHandle()
}

func (l *List[S, E]) lastKeyOf(id arena.ID) arena.ID {
	n, _ := l.frames.Get(id)
	if n.Meta != nil {
		return l.lastKeyOf(n.Meta.LastChild())
	}
	return n.Base.LastHandle()
}

func (l *List[S, E]) lengthOf(id arena.ID) S {
	n, _ := l.frames.Get(id)
	if n.Meta != nil {
		return n.Meta.Distances().Length() + l.lengthOf(n.Meta.LastChild())
	}
	return n.Base.Distances().Length()
}

// Element returns the payload stored under handle h, and false if h is
// not present.
func (l *List[S, E]) Element(h Handle) (E, bool) {
	e, ok := l.elements[h.id]
	if !ok {
		return *new(E), false
	}
	return *e, true
}

// ElementMut returns a pointer to the payload stored under handle h for
// in-place mutation, and false if h is not present.
func (l *List[S, E]) ElementMut(h Handle) (*E, bool) {
	e, ok := l.elements[h.id]
	return e, ok
}

// Position returns handle h's absolute position, and false if h is not
// present.
func (l *List[S, E]) Position(h Handle) (S, bool) {
	loc, ok := l.points.Get(h.id)
	if !ok {
		return *new(S), false
	}

	position := l.start
	id, index := loc.frame, loc.index
	for {
		n, _ := l.frames.Get(id)
		f := n.frame()
		position += f.Distances().Position(index)

		embedding := f.Embedding()
		if embedding.InList {
			break
		}
		id, index = embedding.Parent, embedding.Index
	}
	return position, true
}

func (l *List[S, E]) frameAt(id arena.ID) frame.Frame[S] {
	n, _ := l.frames.Get(id)
	return n.frame()
}

func (l *List[S, E]) setEmbedding(id arena.ID, e frame.Embedding) {
	l.frameAt(id).SetEmbedding(e)
}
