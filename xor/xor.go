//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package xor implements the fixed-width XOR combinator for folding
// equal-length byte buffers such as shares, correction words, and
// evaluation outputs.
package xor

import (
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/fss"
)

// Bytes returns a new buffer holding the XOR of all operands. At
// least one operand is required and all operands must have the same
// length.
func Bytes(xs ...[]byte) ([]byte, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no operands", fss.ErrLengthMismatch)
	}
	result := make([]byte, len(xs[0]))
	if err := Into(result, xs...); err != nil {
		return nil, err
	}
	return result, nil
}

// Into folds the operands into acc from left to right. All operand
// lengths are verified before acc is modified, so on error acc keeps
// its original content.
func Into(acc []byte, xs ...[]byte) error {
	for idx, x := range xs {
		if len(x) != len(acc) {
			return fmt.Errorf("%w: operand %d is %d bytes, expected %d",
				fss.ErrLengthMismatch, idx, len(x), len(acc))
		}
	}
	for _, x := range xs {
		xorTiered(acc, x)
	}
	return nil
}

// Into16 folds the 16-byte block x into acc.
func Into16(acc, x *[16]byte) {
	xor16(acc[:], x[:])
}

// xorTiered computes dst ^= src using the widest tier that fits the
// unprocessed range. The length of src must equal the length of dst.
func xorTiered(dst, src []byte) {
	n := len(dst)
	i := 0
	for i < n {
		switch left := n - i; {
		case left >= 64:
			xor64(dst[i:i+64], src[i:i+64])
			i += 64

		case left >= 32:
			xor32(dst[i:i+32], src[i:i+32])
			i += 32

		case left >= 16:
			xor16(dst[i:i+16], src[i:i+16])
			i += 16

		case left >= 8:
			xor8(dst[i:i+8], src[i:i+8])
			i += 8

		default:
			for ; i < n; i++ {
				dst[i] ^= src[i]
			}
		}
	}
}

// xorScalar is the byte-by-byte reference for xorTiered.
func xorScalar(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func xor64(dst, src []byte) {
	_ = dst[63]
	_ = src[63]
	xor32(dst[0:32], src[0:32])
	xor32(dst[32:64], src[32:64])
}

func xor32(dst, src []byte) {
	_ = dst[31]
	_ = src[31]
	xor16(dst[0:16], src[0:16])
	xor16(dst[16:32], src[16:32])
}

func xor16(dst, src []byte) {
	_ = dst[15]
	_ = src[15]
	d0 := binary.LittleEndian.Uint64(dst[0:8]) ^
		binary.LittleEndian.Uint64(src[0:8])
	d1 := binary.LittleEndian.Uint64(dst[8:16]) ^
		binary.LittleEndian.Uint64(src[8:16])
	binary.LittleEndian.PutUint64(dst[0:8], d0)
	binary.LittleEndian.PutUint64(dst[8:16], d1)
}

func xor8(dst, src []byte) {
	binary.LittleEndian.PutUint64(dst,
		binary.LittleEndian.Uint64(dst)^binary.LittleEndian.Uint64(src))
}
