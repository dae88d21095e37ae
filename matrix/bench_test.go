// Package matrix_test provides benchmarks for the matrix kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/detrace/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{2, 4, 6, 32}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF float64
)

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, err := matrix.RandomIntegers(n, -10, 9, rand.New(rand.NewSource(1337)))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkMinor(b *testing.B) {
	b.ReportAllocs()
	m, err := matrix.RandomIntegers(6, -10, 9, rand.New(rand.NewSource(4242)))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		minor, err := m.Minor(0, i%6)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = minor
	}
}
