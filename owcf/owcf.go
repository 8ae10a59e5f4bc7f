//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package owcf

import (
	"crypto/cipher"
	"fmt"

	"github.com/markkurossi/fss"
	"github.com/markkurossi/fss/xor"
)

// Block is one cipher block.
type Block [BlockSize]byte

// Function is a one-way compression function bound to a fixed key.
type Function interface {
	// OutputSize returns the number of bytes produced for one input
	// block.
	OutputSize() int

	// CompressBytes compresses the BlockSize bytes of in into the
	// OutputSize bytes of out.
	CompressBytes(out, in []byte) error
}

var (
	_ Function = &MMO{}
	_ Function = &Hirose{}
)

// hiroseConstant separates the two Hirose branches.
var hiroseConstant = Block{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// HiroseConstant returns the public constant XORed into the input of
// the second Hirose branch.
func HiroseConstant() Block {
	return hiroseConstant
}

// MMO implements the Matyas-Meyer-Oseas compression function.
type MMO struct {
	cipher cipher.Block
}

// NewMMO creates an MMO compression function over the keyed block
// cipher.
func NewMMO(block cipher.Block) (*MMO, error) {
	if err := checkBlockSize(block); err != nil {
		return nil, err
	}
	return &MMO{
		cipher: block,
	}, nil
}

// OutputSize implements Function.OutputSize.
func (m *MMO) OutputSize() int {
	return BlockSize
}

// Compress returns E(k, in) ^ in.
func (m *MMO) Compress(in Block) Block {
	var out Block
	m.compress(&out, &in)
	return out
}

// CompressBytes implements Function.CompressBytes. The out and in
// buffers may overlap exactly.
func (m *MMO) CompressBytes(out, in []byte) error {
	if len(in) != BlockSize || len(out) != BlockSize {
		return fmt.Errorf("%w: MMO in=%d out=%d, expected %d/%d",
			fss.ErrLengthMismatch, len(in), len(out), BlockSize, BlockSize)
	}
	var result Block
	m.compress(&result, (*Block)(in))
	copy(out, result[:])
	return nil
}

func (m *MMO) compress(out, in *Block) {
	m.cipher.Encrypt(out[:], in[:])
	xor.Into16((*[BlockSize]byte)(out), (*[BlockSize]byte)(in))
}

// Hirose implements the Hirose double-block-length compression
// function.
type Hirose struct {
	cipher cipher.Block
}

// NewHirose creates a Hirose compression function over the keyed
// block cipher.
func NewHirose(block cipher.Block) (*Hirose, error) {
	if err := checkBlockSize(block); err != nil {
		return nil, err
	}
	return &Hirose{
		cipher: block,
	}, nil
}

// OutputSize implements Function.OutputSize.
func (h *Hirose) OutputSize() int {
	return 2 * BlockSize
}

// Compress returns the two output blocks E(k, in) ^ in and
// E(k, in^c) ^ (in^c).
func (h *Hirose) Compress(in Block) (Block, Block) {
	var out0, out1 Block
	h.compress(&out0, &out1, &in)
	return out0, out1
}

// CompressBytes implements Function.CompressBytes. The out buffer
// receives both output blocks in order.
func (h *Hirose) CompressBytes(out, in []byte) error {
	if len(in) != BlockSize || len(out) != 2*BlockSize {
		return fmt.Errorf("%w: Hirose in=%d out=%d, expected %d/%d",
			fss.ErrLengthMismatch, len(in), len(out), BlockSize, 2*BlockSize)
	}
	var out0, out1 Block
	h.compress(&out0, &out1, (*Block)(in))
	copy(out[:BlockSize], out0[:])
	copy(out[BlockSize:], out1[:])
	return nil
}

func (h *Hirose) compress(out0, out1, in *Block) {
	in0 := *in
	in1 := *in
	xor.Into16((*[BlockSize]byte)(&in1), (*[BlockSize]byte)(&hiroseConstant))

	h.cipher.Encrypt(out0[:], in0[:])
	h.cipher.Encrypt(out1[:], in1[:])

	xor.Into16((*[BlockSize]byte)(out0), (*[BlockSize]byte)(&in0))
	xor.Into16((*[BlockSize]byte)(out1), (*[BlockSize]byte)(&in1))
}
