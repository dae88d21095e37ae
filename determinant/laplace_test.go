package determinant_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/detrace/determinant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaplace_MatchesLeibniz(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	for n := 2; n <= 6; n++ {
		trials := 40
		if n == 6 {
			trials = 10
		}
		for trial := 0; trial < trials; trial++ {
			rows := randomInts(rng, n)
			res, err := determinant.Compute(rows, determinant.Laplace)
			require.NoError(t, err)
			require.Equal(t, leibniz(rows), res.Determinant, "n=%d rows=%v", n, rows)
		}
	}
}

func TestLaplace_Trace3x3(t *testing.T) {
	res, err := determinant.Compute(scenario3, determinant.Laplace)
	require.NoError(t, err)

	want := []string{
		"📐 LAPLACE EXPANSION (cofactors)",
		rule,
		"",
		"Original matrix:",
		"[     1      0      2 ]",
		"[    -1      5      0 ]",
		"[     0      3      1 ]",
		"",
		"Expanding along the first row:",
		"",
		"  |5 0; 3 1| = 5×1 − 0×3 = 5",
		"+ 1 × M00   (M00 = 5, term = 5)",
		"  |-1 0; 0 1| = -1×1 − 0×0 = -1",
		"- 0 × M01   (M01 = -1, term = 0)",
		"  |-1 5; 0 3| = -1×3 − 5×0 = -3",
		"+ 2 × M02   (M02 = -3, term = -6)",
		"",
		rule,
		"✅ DETERMINANT = -1",
	}
	assert.Equal(t, want, res.Steps)
}

func TestLaplace_DeepNarrationIsCompact(t *testing.T) {
	res, err := determinant.Compute(perturbed4, determinant.Laplace)
	require.NoError(t, err)
	assert.Equal(t, -118.0, res.Determinant)

	var originals, terms, deep int
	for _, line := range res.Steps {
		switch {
		case line == "Original matrix:":
			originals++
		case strings.Contains(line, " × M0"):
			terms++
		case strings.HasPrefix(line, "    |"):
			deep++
		}
	}
	assert.Equal(t, 1, originals, "only the top level prints the matrix")
	assert.Equal(t, 4, terms, "one signed term per top-level column")
	assert.Equal(t, 12, deep, "4 minors × 3 nested 2×2 determinants at depth 2")
}

func TestLaplace_SmallOrders(t *testing.T) {
	res, err := determinant.Compute([][]float64{{-4}}, determinant.Laplace)
	require.NoError(t, err)
	assert.Equal(t, -4.0, res.Determinant)
	assert.Contains(t, res.Steps, "A 1×1 matrix is its own determinant.")
	assert.Equal(t, "✅ DETERMINANT = -4", res.Steps[len(res.Steps)-1])

	res, err = determinant.Compute([][]float64{{1, 2}, {3, 4}}, determinant.Laplace)
	require.NoError(t, err)
	assert.Equal(t, -2.0, res.Determinant)
	assert.Contains(t, res.Steps, "det(A) = 1×4 − 2×3 = -2")
	assert.Equal(t, "✅ DETERMINANT = -2", res.Steps[len(res.Steps)-1])
}
