//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package owcf implements one-way compression functions over keyed
// 128-bit block ciphers.
//
// Two constructions are provided. The Matyas-Meyer-Oseas (MMO)
// construction produces one output block from one input block:
//
//	out = E(k, in) ^ in
//
// The Hirose construction produces two output blocks from one input
// block and one key. The second branch encrypts the input XORed with
// the public constant c = 0xff..ff:
//
//	out0 = E(k, in) ^ in
//	out1 = E(k, in ^ c) ^ (in ^ c)
//
// The feed-forward XOR is part of both constructions and is always
// applied by the adapters. Any cipher.Block with a 16-byte block size
// can be wrapped; NewAES128, NewAES256, and NewTwofish create the
// supported ciphers from raw keys.
//
// Adapters are immutable after construction and safe for concurrent
// use.
package owcf
