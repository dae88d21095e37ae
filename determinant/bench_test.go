package determinant_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/detrace/determinant"
)

var sinkR determinant.Result

func BenchmarkCompute(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(1337))
	for _, m := range determinant.Methods() {
		for n := 2; n <= 6; n++ {
			if m == determinant.Sarrus && n > 3 {
				continue
			}
			rows := randomInts(rng, n)
			b.Run(fmt.Sprintf("%s/n=%d", m, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					res, err := determinant.Compute(rows, m)
					if err != nil {
						b.Fatal(err)
					}
					sinkR = res
				}
			})
		}
	}
}
