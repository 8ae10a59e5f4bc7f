//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package xor

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"math/rand"
	"testing"

	"github.com/markkurossi/fss"
)

func randomBuffers(rnd *rand.Rand, count, lambda int) [][]byte {
	result := make([][]byte, count)
	for i := range result {
		result[i] = make([]byte, lambda)
		rnd.Read(result[i])
	}
	return result
}

func TestTieredScalar(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for lambda := 0; lambda <= 200; lambda++ {
		bufs := randomBuffers(rnd, 2, lambda)

		tiered := bytes.Clone(bufs[0])
		scalar := bytes.Clone(bufs[0])
		std := make([]byte, lambda)

		xorTiered(tiered, bufs[1])
		xorScalar(scalar, bufs[1])
		subtle.XORBytes(std, bufs[0], bufs[1])

		if !bytes.Equal(tiered, scalar) {
			t.Errorf("lambda=%d: tiered %x != scalar %x", lambda, tiered, scalar)
		}
		if !bytes.Equal(scalar, std) {
			t.Errorf("lambda=%d: scalar %x != subtle %x", lambda, scalar, std)
		}
	}
}

var xorTests = []struct {
	xs       [][]byte
	expected []byte
}{
	{
		xs:       [][]byte{{0x00}},
		expected: []byte{0x00},
	},
	{
		xs:       [][]byte{{0x0f, 0xf0}, {0xff, 0xff}},
		expected: []byte{0xf0, 0x0f},
	},
	{
		xs:       [][]byte{{0x01, 0x02, 0x03}, {0x01, 0x02, 0x03}, {0xaa, 0xbb, 0xcc}},
		expected: []byte{0xaa, 0xbb, 0xcc},
	},
	{
		xs:       [][]byte{{}, {}},
		expected: []byte{},
	},
}

func TestBytes(t *testing.T) {
	for idx, test := range xorTests {
		result, err := Bytes(test.xs...)
		if err != nil {
			t.Fatalf("test-%d: %v", idx, err)
		}
		if !bytes.Equal(result, test.expected) {
			t.Errorf("test-%d: got %x, expected %x", idx, result, test.expected)
		}
	}
}

func TestBytesFresh(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{5, 6, 7, 8}

	result, err := Bytes(a, b)
	if err != nil {
		t.Fatal(err)
	}
	result[0] = 0xff
	if a[0] != 1 || b[0] != 5 {
		t.Errorf("operands modified: %x %x", a, b)
	}
}

func TestProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))

	for _, lambda := range []int{1, 7, 16, 17, 31, 32, 48, 64, 65, 100, 128, 131} {
		bufs := randomBuffers(rnd, 3, lambda)
		a, b, c := bufs[0], bufs[1], bufs[2]

		abb, err := Bytes(a, b, b)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(abb, a) {
			t.Errorf("lambda=%d: a^b^b != a", lambda)
		}

		ab, _ := Bytes(a, b)
		ba, _ := Bytes(b, a)
		if !bytes.Equal(ab, ba) {
			t.Errorf("lambda=%d: a^b != b^a", lambda)
		}

		abc1, _ := Bytes(ab, c)
		bc, _ := Bytes(b, c)
		abc2, _ := Bytes(a, bc)
		if !bytes.Equal(abc1, abc2) {
			t.Errorf("lambda=%d: (a^b)^c != a^(b^c)", lambda)
		}

		acc := bytes.Clone(a)
		if err := Into(acc, b, b); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(acc, a) {
			t.Errorf("lambda=%d: Into(a, b, b) != a", lambda)
		}
	}
}

func TestIntoSelf(t *testing.T) {
	acc := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x11}
	if err := Into(acc, acc); err != nil {
		t.Fatal(err)
	}
	for i, v := range acc {
		if v != 0 {
			t.Fatalf("acc[%d]=%x, expected 0", i, v)
		}
	}
}

func TestLengthMismatch(t *testing.T) {
	acc := []byte{1, 2, 3, 4}
	orig := bytes.Clone(acc)

	err := Into(acc, []byte{1, 1, 1, 1}, []byte{1, 1, 1})
	if !errors.Is(err, fss.ErrLengthMismatch) {
		t.Fatalf("Into: expected ErrLengthMismatch, got %v", err)
	}
	if !bytes.Equal(acc, orig) {
		t.Errorf("Into modified acc on error: %x", acc)
	}

	_, err = Bytes([]byte{1, 2}, []byte{1, 2, 3})
	if !errors.Is(err, fss.ErrLengthMismatch) {
		t.Errorf("Bytes: expected ErrLengthMismatch, got %v", err)
	}
	_, err = Bytes()
	if !errors.Is(err, fss.ErrLengthMismatch) {
		t.Errorf("Bytes(): expected ErrLengthMismatch, got %v", err)
	}
}

func TestInto16(t *testing.T) {
	var acc, x [16]byte
	for i := range acc {
		acc[i] = byte(i)
		x[i] = byte(0xf0 | i)
	}
	Into16(&acc, &x)
	for i, v := range acc {
		if v != 0xf0 {
			t.Errorf("acc[%d]=%x, expected f0", i, v)
		}
	}
}
