// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/detrace/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIntegers_RangeAndDeterminism(t *testing.T) {
	a, err := matrix.RandomIntegers(6, matrix.DefaultRandomLo, matrix.DefaultRandomHi, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := matrix.RandomIntegers(6, matrix.DefaultRandomLo, matrix.DefaultRandomHi, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a.ToRows(), b.ToRows(), "same seed must give the same fill")
	for _, row := range a.ToRows() {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, float64(matrix.DefaultRandomLo))
			assert.LessOrEqual(t, v, float64(matrix.DefaultRandomHi))
			assert.Equal(t, float64(int(v)), v, "cells must be integers")
		}
	}
}

func TestRandomIntegers_Errors(t *testing.T) {
	_, err := matrix.RandomIntegers(0, 0, 1, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.RandomIntegers(3, 5, 1, nil)
	assert.ErrorIs(t, err, matrix.ErrBadRange)

	m, err := matrix.RandomIntegers(2, 3, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 3}, {3, 3}}, m.ToRows())
}
