// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsparse/matrix"
)

// benchSizes covers small to moderately wide sparse inputs.
var benchSizes = []int{64, 256, 1024}

const benchDensity = 0.01

func BenchmarkAdd(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(int64(n)))
			x := RandomSparse(b, rng, n, n, benchDensity)
			y := RandomSparse(b, rng, n, n, benchDensity)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Add(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(int64(n)))
			x := RandomSparse(b, rng, n, n, benchDensity)
			y := RandomSparse(b, rng, n, n, benchDensity)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Mul(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	src := RandomSparse(b, rng, 512, 512, benchDensity).String()
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Parse(strings.NewReader(src)); err != nil {
			b.Fatal(err)
		}
	}
}
