//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package owcf

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/markkurossi/fss"
	"golang.org/x/crypto/twofish"
)

// Cipher block and key sizes in bytes.
const (
	BlockSize     = 16
	AES128KeySize = 16
	AES256KeySize = 32
)

// NewAES128 creates an AES-128 cipher. The key must be exactly
// AES128KeySize bytes.
func NewAES128(key []byte) (cipher.Block, error) {
	if len(key) != AES128KeySize {
		return nil, keySizeError("AES-128", len(key), AES128KeySize)
	}
	return aes.NewCipher(key)
}

// NewAES256 creates an AES-256 cipher. The key must be exactly
// AES256KeySize bytes.
func NewAES256(key []byte) (cipher.Block, error) {
	if len(key) != AES256KeySize {
		return nil, keySizeError("AES-256", len(key), AES256KeySize)
	}
	return aes.NewCipher(key)
}

// NewTwofish creates a Twofish cipher with a 16, 24, or 32 byte key.
func NewTwofish(key []byte) (cipher.Block, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: Twofish key is %d bytes, expected 16, 24, or 32",
			fss.ErrLengthMismatch, len(key))
	}
	block, err := twofish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return block, nil
}

func keySizeError(name string, got, expected int) error {
	return fmt.Errorf("%w: %s key is %d bytes, expected %d",
		fss.ErrLengthMismatch, name, got, expected)
}

func checkBlockSize(block cipher.Block) error {
	if block == nil {
		return fmt.Errorf("%w: nil cipher", fss.ErrLengthMismatch)
	}
	if block.BlockSize() != BlockSize {
		return fmt.Errorf("%w: cipher block is %d bytes, expected %d",
			fss.ErrLengthMismatch, block.BlockSize(), BlockSize)
	}
	return nil
}
