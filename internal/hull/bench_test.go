package hull

import (
	"fmt"
	"testing"

	"github.com/hullbench/hullbench/internal/generator"
)

func BenchmarkCompute(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	for _, alg := range Algorithms() {
		for _, n := range sizes {
			points, err := generator.New(42).Points(generator.Uniform, n)
			if err != nil {
				b.Fatal(err)
			}
			b.Run(fmt.Sprintf("%s/n=%d", alg, n), func(b *testing.B) {
				for range b.N {
					if _, err := Compute(alg, points); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkComputeCircle(b *testing.B) {
	// Every point is a hull vertex, the worst case for output-sensitive
	// algorithms like the gift wrap.
	points, err := generator.New(42).Points(generator.Circle, 1000)
	if err != nil {
		b.Fatal(err)
	}
	for _, alg := range Algorithms() {
		b.Run(string(alg), func(b *testing.B) {
			for range b.N {
				if _, err := Compute(alg, points); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
