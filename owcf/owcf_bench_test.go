//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package owcf

import (
	"testing"
)

func BenchmarkMMOAES128(b *testing.B) {
	block, err := NewAES128(make([]byte, AES128KeySize))
	if err != nil {
		b.Fatal(err)
	}
	mmo, err := NewMMO(block)
	if err != nil {
		b.Fatal(err)
	}
	var in Block

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in = mmo.Compress(in)
	}
}

func BenchmarkHiroseAES256(b *testing.B) {
	block, err := NewAES256(make([]byte, AES256KeySize))
	if err != nil {
		b.Fatal(err)
	}
	h, err := NewHirose(block)
	if err != nil {
		b.Fatal(err)
	}
	var in Block

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in, _ = h.Compress(in)
	}
}
