// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package positional

import "github.com/gaissmai/positional/internal/arena"

// Handle is the opaque, stable identifier returned by AddElement. It
// remains valid across later insertions and removals, aside from the
// element it names being removed, even as the list's internal frame
// tree rebalances underneath it.
type Handle struct {
	id arena.ID
}

// Valid reports whether h is not the zero Handle, the sentinel value
// returned where a List method has no handle to give (an empty list's
// FirstKey/LastKey).
func (h Handle) Valid() bool {
	return h.id.Valid()
}
