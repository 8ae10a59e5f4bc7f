//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package xor

import (
	"testing"
)

func BenchmarkInto16(b *testing.B) {
	benchmarkInto(b, 16, 4)
}

func BenchmarkInto32(b *testing.B) {
	benchmarkInto(b, 32, 4)
}

func BenchmarkInto100(b *testing.B) {
	benchmarkInto(b, 100, 4)
}

func BenchmarkInto1K(b *testing.B) {
	benchmarkInto(b, 1024, 4)
}

func BenchmarkScalar1K(b *testing.B) {
	acc := make([]byte, 1024)
	x := make([]byte, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xorScalar(acc, x)
	}
}

func benchmarkInto(b *testing.B, lambda, operands int) {
	acc := make([]byte, lambda)
	xs := make([][]byte, operands)
	for i := range xs {
		xs[i] = make([]byte, lambda)
	}
	b.SetBytes(int64(lambda * operands))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Into(acc, xs...); err != nil {
			b.Fatal(err)
		}
	}
}
