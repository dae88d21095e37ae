// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"
)

// Default bounds of a random integer fill: [-10, 9], i.e. floor(U·20) − 10.
const (
	DefaultRandomLo = -10
	DefaultRandomHi = 9
)

// RandomIntegers builds an n×n Dense whose cells are uniform integers in [lo, hi].
// rng drives reproducibility; pass rand.New(rand.NewSource(seed)).
//
// Errors:
//   - ErrInvalidDimensions if n ≤ 0.
//   - ErrBadRange if lo > hi.
//
// A nil rng falls back to a fixed seed of 1.
//
// Complexity: O(n^2).
func RandomIntegers(n, lo, hi int, rng *rand.Rand) (*Dense, error) {
	if lo > hi {
		return nil, matrixErrorf(opRandom, fmt.Errorf("[%d,%d]: %w", lo, hi, ErrBadRange))
	}
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	span := hi - lo + 1
	for idx := range out.data {
		out.data[idx] = float64(lo + rng.Intn(span))
	}

	return out, nil
}
