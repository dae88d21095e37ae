package determinant

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/detrace/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The 2×2 closed form must equal the general expansion specialized to N=2.
func TestLaplace2_MatchesGeneralExpansion(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 500; trial++ {
		rows := [][]float64{
			{rng.NormFloat64() * 100, rng.NormFloat64() * 100},
			{rng.NormFloat64() * 100, rng.NormFloat64() * 100},
		}
		if trial%2 == 0 {
			for i := range rows {
				for j := range rows[i] {
					rows[i][j] = float64(int(rows[i][j]))
				}
			}
		}
		m, err := matrix.NewDenseFromRows(rows)
		require.NoError(t, err)

		base, _ := laplace2(m, 1)
		general, _ := laplaceExpand(m, 1)
		require.Equal(t, base, general, "rows=%v", rows)
	}
}

func TestLaplace_RecursionReturnsOwnTrace(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	require.NoError(t, err)

	det, tr := laplace(m, 1)
	assert.Equal(t, -3.0, det)
	assert.Equal(t, 3, tr.Len(), "a nested 3×3 emits only its three 2×2 lines")
	for _, line := range tr.Lines() {
		assert.Regexp(t, `^    \|`, line)
	}
}

func TestCofactorSign(t *testing.T) {
	want := []float64{1, -1, 1, -1, 1, -1}
	for j, w := range want {
		assert.Equal(t, w, cofactorSign(j))
	}
}

func TestNum(t *testing.T) {
	assert.Equal(t, "17", num(17))
	assert.Equal(t, "-2", num(-2))
	assert.Equal(t, "0", num(-0.0*1))
	assert.Equal(t, "0.25", num(0.25))
	assert.Equal(t, "0.00", fixed(-0.0*1, 2))
	assert.Equal(t, "-1.50", fixed(-1.5, 2))
}

func TestMustSwap(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {2, 3}})
	require.NoError(t, err)

	mustSwap(d, 0, 1)
	assert.Equal(t, [][]float64{{2, 3}, {0, 1}}, d.ToRows())
	assert.Panics(t, func() { mustSwap(d, 0, 2) })
}

func TestFiniteOrZero(t *testing.T) {
	var tr Trace
	assert.Equal(t, 2.5, finiteOrZero(2.5, &tr))
	assert.Equal(t, 0, tr.Len())

	assert.Equal(t, 0.0, finiteOrZero(math.Inf(-1), &tr))
	assert.Equal(t, 0.0, finiteOrZero(math.NaN(), &tr))
	assert.Equal(t, []string{nonFiniteLine, nonFiniteLine}, tr.Lines())
}
