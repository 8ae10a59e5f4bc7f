//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prg

import (
	"crypto/cipher"
	"fmt"

	"github.com/markkurossi/fss"
	"github.com/markkurossi/fss/owcf"
)

// NewAES128MMO creates an MMO PRG with one AES-128 cipher per key.
func NewAES128MMO(keys [][]byte) (*PRG, error) {
	blocks, err := newCiphers(keys, owcf.NewAES128)
	if err != nil {
		return nil, err
	}
	return NewMMO(blocks)
}

// NewAES256MMO creates an MMO PRG with one AES-256 cipher per key.
func NewAES256MMO(keys [][]byte) (*PRG, error) {
	blocks, err := newCiphers(keys, owcf.NewAES256)
	if err != nil {
		return nil, err
	}
	return NewMMO(blocks)
}

// NewAES128Hirose creates a Hirose PRG with one AES-128 cipher per
// key.
func NewAES128Hirose(keys [][]byte) (*PRG, error) {
	blocks, err := newCiphers(keys, owcf.NewAES128)
	if err != nil {
		return nil, err
	}
	return NewHirose(blocks)
}

// NewAES256Hirose creates a Hirose PRG with one AES-256 cipher per
// key.
func NewAES256Hirose(keys [][]byte) (*PRG, error) {
	blocks, err := newCiphers(keys, owcf.NewAES256)
	if err != nil {
		return nil, err
	}
	return NewHirose(blocks)
}

// NewTwofishMMO creates an MMO PRG with one Twofish cipher per key.
func NewTwofishMMO(keys [][]byte) (*PRG, error) {
	blocks, err := newCiphers(keys, owcf.NewTwofish)
	if err != nil {
		return nil, err
	}
	return NewMMO(blocks)
}

// NewTwofishHirose creates a Hirose PRG with one Twofish cipher per
// key.
func NewTwofishHirose(keys [][]byte) (*PRG, error) {
	blocks, err := newCiphers(keys, owcf.NewTwofish)
	if err != nil {
		return nil, err
	}
	return NewHirose(blocks)
}

func newCiphers(keys [][]byte,
	newCipher func(key []byte) (cipher.Block, error)) ([]cipher.Block, error) {

	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no keys", fss.ErrLengthMismatch)
	}
	blocks := make([]cipher.Block, len(keys))
	for idx, key := range keys {
		block, err := newCipher(key)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", idx, err)
		}
		blocks[idx] = block
	}
	return blocks, nil
}
