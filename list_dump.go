// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package positional

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/gaissmai/positional/internal/arena"
	"go.uber.org/zap"
)

// Dump renders the frame tree: every frame's level and length, its
// endpoint ids, and every live point's payload and location. Intended
// for debugging and test failure output, not a stable or parseable
// format; the spiritual successor of the reference implementation's
// Debug impl for its point list.
func (l *List[S, E]) Dump() string {
	l.log.Debug("dump requested", zap.Int("len", l.count))

	if l.IsEmpty() {
		return "[empty List]\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "len: %d\n", l.count)
	fmt.Fprintf(&b, "start: %v\n", l.start)
	fmt.Fprintf(&b, "end: %v\n", l.end)
	fmt.Fprintf(&b, "root: %s\n", spew.Sdump(l.root))

	l.dumpFrame(&b, l.root)

	return b.String()
}

func (l *List[S, E]) dumpFrame(b *strings.Builder, id arena.ID) {
	n, _ := l.frames.Get(id)
	f := n.frame()

	fmt.Fprintf(b, "frame %s(level %d, length %v):\n", spew.Sdump(id), f.Level(), f.Distances().Length())

	if n.Meta != nil {
		for _, child := range n.Meta.Children() {
			fmt.Fprintf(b, "  child %s", spew.Sdump(child))
		}
		b.WriteString("\n")
		for _, child := range n.Meta.Children() {
			l.dumpFrame(b, child)
		}
		return
	}

	for _, h := range n.Base.Handles() {
		e := l.elements[h]
		fmt.Fprintf(b, "  point %s: %+v\n", spew.Sdump(h), *e)
	}
	b.WriteString("\n")
}
