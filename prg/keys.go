//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prg

import (
	"fmt"
	"io"

	"github.com/markkurossi/fss"
	"github.com/markkurossi/fss/env"
	"golang.org/x/crypto/chacha20"
)

// DeriveSeedSize is the master seed size for DeriveKeys.
const DeriveSeedSize = chacha20.KeySize

// NewKeys reads n independent keySize byte keys from the entropy
// source of config.
func NewKeys(config *env.Config, n, keySize int) ([][]byte, error) {
	if n <= 0 || keySize <= 0 {
		return nil, fmt.Errorf("%w: invalid key count %d or size %d",
			fss.ErrLengthMismatch, n, keySize)
	}
	buf := make([]byte, n*keySize)
	if _, err := io.ReadFull(config.GetRandom(), buf); err != nil {
		return nil, err
	}
	return splitKeys(buf, n, keySize), nil
}

// DeriveKeys expands the master seed into n keySize byte keys with
// the ChaCha20 keystream. Parties sharing the seed derive identical
// keys and therefore identical PRGs.
func DeriveKeys(seed []byte, n, keySize int) ([][]byte, error) {
	if len(seed) != DeriveSeedSize {
		return nil, fmt.Errorf("%w: master seed is %d bytes, expected %d",
			fss.ErrLengthMismatch, len(seed), DeriveSeedSize)
	}
	if n <= 0 || keySize <= 0 {
		return nil, fmt.Errorf("%w: invalid key count %d or size %d",
			fss.ErrLengthMismatch, n, keySize)
	}
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(seed, nonce[:])
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n*keySize)
	stream.XORKeyStream(buf, buf)

	return splitKeys(buf, n, keySize), nil
}

func splitKeys(buf []byte, n, keySize int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = buf[i*keySize : (i+1)*keySize : (i+1)*keySize]
	}
	return keys
}
