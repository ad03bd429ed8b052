// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package assert holds the positional index core's contract-violation
// check, used by AddElement for its insertion-delta preconditions:
// programmer errors that spec.md classifies as "fail fast" bugs rather
// than values to propagate across the public API. Frame levels are not
// checked through it.
package assert

import "github.com/pkg/errors"

// That panics with a wrapped, stack-traced error if cond is false.
// Reserved for invariants the caller is expected to uphold (e.g. a
// strictly positive insertion delta); it must never fire on input that
// a well-behaved caller could not have avoided.
func That(cond bool, msg string) {
	if !cond {
		panic(errors.Wrap(errViolation, msg))
	}
}

var errViolation = errors.New("positional: contract violation")
