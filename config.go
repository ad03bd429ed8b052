// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package positional

import "github.com/pkg/errors"

// Config controls the fixed capacity of every frame in a List. Depth
// is the reference implementation's DISTANCES_DEPTH: the least integer
// such that the distances array's logical length is < 1<<Depth.
//
// K, the distances capacity, is 1<<(Depth-1); a frame's capacity for
// endpoints (handles or child frames) is K+1.
type Config struct {
	Depth int
}

// DefaultConfig is the depth the reference implementation uses in
// production (K = 256).
var DefaultConfig = Config{Depth: 9}

// NewConfig validates depth and returns the corresponding Config. depth
// must be at least 2, matching the reference implementation's minimum;
// depth 3 (K = 4) is what its own unit tests use.
func NewConfig(depth int) (Config, error) {
	if depth < 2 {
		return Config{}, errors.Errorf("positional: depth must be >= 2, got %d", depth)
	}
	return Config{Depth: depth}, nil
}
