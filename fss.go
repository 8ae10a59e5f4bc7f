//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package fss implements the pseudorandom generator layer for
// function secret sharing and distributed point functions. The
// one-way compression functions live in the owcf package, the
// multi-key generators in the prg package, and the fixed-width
// buffer folding in the xor package.
package fss

import (
	"errors"
)

// ErrLengthMismatch is returned when a key, block, seed, or output
// buffer does not have the length the operation requires. It is a
// caller error and is never retried.
var ErrLengthMismatch = errors.New("fss: length mismatch")
