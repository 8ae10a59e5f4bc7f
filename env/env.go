//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global configuration for the PRG layer.
package env

import (
	"crypto/rand"
	"io"
)

// Config defines the configuration shared by the PRG constructors
// and tools. Config must not be modified after being passed to any
// module. It is safe for concurrent use as no module modifies it.
type Config struct {
	// Rand is the source of entropy for key material. If nil,
	// crypto/rand.Reader is used.
	Rand io.Reader
}

// GetRandom returns the source of entropy for key generation.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}
