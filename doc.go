// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package positional implements a positional index: a handle-addressed
// sequence of elements, each separated from its predecessor by a
// non-negative scalar distance, that supports O(log N) append and
// O(log N) position lookup by handle.
//
// Internally the sequence is split across a hierarchy of fixed-capacity
// "frames" — leaf frames holding element handles directly, interior
// frames holding child frame ids — each carrying a Fenwick tree
// (internal/distances) of the gaps between its immediate children.
// Looking up an element's position walks from its handle up through
// its ancestor frames, summing prefix distances at each level; this
// keeps both append and lookup logarithmic in the number of elements
// rather than linear.
//
// See List for the full API.
package positional
