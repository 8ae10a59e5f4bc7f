//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements multi-key pseudorandom generators built from
// one-way compression functions. A PRG with N keys expands an N-block
// seed by compressing seed block i with the function keyed by key i
// and concatenating the outputs in order.
package prg

import (
	"crypto/cipher"
	"fmt"

	"github.com/markkurossi/fss"
	"github.com/markkurossi/fss/owcf"
)

// Generator is the seed expansion interface used by DPF key
// generation and evaluation.
type Generator interface {
	// Gen expands seed into out. The seed must be SeedSize bytes and
	// out must be OutputSize bytes.
	Gen(out, seed []byte) error

	// SeedSize returns the seed size in bytes.
	SeedSize() int

	// OutputSize returns the output size in bytes.
	OutputSize() int
}

var _ Generator = &PRG{}

// PRG implements a multi-key PRG. It is immutable after construction
// and safe for concurrent use.
type PRG struct {
	funcs     []owcf.Function
	chunkSize int
}

// New creates a PRG from the compression functions. All functions
// must have the same output size.
func New(funcs []owcf.Function) (*PRG, error) {
	if len(funcs) == 0 {
		return nil, fmt.Errorf("%w: no compression functions",
			fss.ErrLengthMismatch)
	}
	chunkSize := funcs[0].OutputSize()
	for idx, f := range funcs {
		if f == nil {
			return nil, fmt.Errorf("%w: function %d is nil",
				fss.ErrLengthMismatch, idx)
		}
		if f.OutputSize() != chunkSize {
			return nil, fmt.Errorf("%w: function %d outputs %d bytes, expected %d",
				fss.ErrLengthMismatch, idx, f.OutputSize(), chunkSize)
		}
	}
	return &PRG{
		funcs:     append([]owcf.Function(nil), funcs...),
		chunkSize: chunkSize,
	}, nil
}

// NewMMO creates a PRG with one Matyas-Meyer-Oseas function per
// cipher.
func NewMMO(blocks []cipher.Block) (*PRG, error) {
	funcs := make([]owcf.Function, len(blocks))
	for idx, block := range blocks {
		mmo, err := owcf.NewMMO(block)
		if err != nil {
			return nil, fmt.Errorf("cipher %d: %w", idx, err)
		}
		funcs[idx] = mmo
	}
	return New(funcs)
}

// NewHirose creates a PRG with one Hirose function per cipher.
func NewHirose(blocks []cipher.Block) (*PRG, error) {
	funcs := make([]owcf.Function, len(blocks))
	for idx, block := range blocks {
		h, err := owcf.NewHirose(block)
		if err != nil {
			return nil, fmt.Errorf("cipher %d: %w", idx, err)
		}
		funcs[idx] = h
	}
	return New(funcs)
}

// NumKeys returns the number of keyed compression functions.
func (p *PRG) NumKeys() int {
	return len(p.funcs)
}

// SeedSize implements Generator.SeedSize.
func (p *PRG) SeedSize() int {
	return len(p.funcs) * owcf.BlockSize
}

// OutputSize implements Generator.OutputSize.
func (p *PRG) OutputSize() int {
	return len(p.funcs) * p.chunkSize
}

// Gen implements Generator.Gen. The out buffer must not overlap seed
// unless the PRG outputs one block per key and out and seed are the
// same buffer.
func (p *PRG) Gen(out, seed []byte) error {
	if len(seed) != p.SeedSize() {
		return fmt.Errorf("%w: seed is %d bytes, expected %d",
			fss.ErrLengthMismatch, len(seed), p.SeedSize())
	}
	if len(out) != p.OutputSize() {
		return fmt.Errorf("%w: output is %d bytes, expected %d",
			fss.ErrLengthMismatch, len(out), p.OutputSize())
	}
	for i, f := range p.funcs {
		err := f.CompressBytes(out[i*p.chunkSize:(i+1)*p.chunkSize],
			seed[i*owcf.BlockSize:(i+1)*owcf.BlockSize])
		if err != nil {
			return err
		}
	}
	return nil
}
