//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/markkurossi/fss/env"
	"github.com/markkurossi/fss/owcf"
	"github.com/markkurossi/fss/prg"
	"github.com/markkurossi/fss/xor"
	"github.com/markkurossi/text/superscript"
	"github.com/markkurossi/text/symbols"
)

type variant struct {
	name    string
	keySize int
	mmo     func(keys [][]byte) (*prg.PRG, error)
	hirose  func(keys [][]byte) (*prg.PRG, error)
}

var variants = []variant{
	{
		name:    "AES-128",
		keySize: owcf.AES128KeySize,
		mmo:     prg.NewAES128MMO,
		hirose:  prg.NewAES128Hirose,
	},
	{
		name:    "AES-256",
		keySize: owcf.AES256KeySize,
		mmo:     prg.NewAES256MMO,
		hirose:  prg.NewAES256Hirose,
	},
	{
		name:    "Twofish",
		keySize: 32,
		mmo:     prg.NewTwofishMMO,
		hirose:  prg.NewTwofishHirose,
	},
}

var verbose bool

func main() {
	numKeys := flag.Int("keys", 4, "number of keys per PRG")
	count := flag.Int("n", 100000, "number of operations per measurement")
	lambda := flag.Int("lambda", 16, "XOR buffer width in bytes")
	operands := flag.Int("operands", 4, "number of XOR operands")
	seedHex := flag.String("seed", "", "hex master seed for key derivation")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	verbose = *fVerbose

	if *count <= 0 || *numKeys <= 0 || *lambda < 0 || *operands <= 0 {
		log.Fatal("invalid arguments")
	}

	var seed []byte
	var err error
	if len(*seedHex) > 0 {
		seed, err = hex.DecodeString(*seedHex)
		if err != nil {
			log.Fatalf("invalid seed: %v", err)
		}
	}
	config := &env.Config{}

	fmt.Printf("PRG: %d keys, seed %dB, %d calls, seed space 2%s per key\n",
		*numKeys, *numKeys*owcf.BlockSize, *count,
		superscript.Itoa(owcf.BlockSize*8))
	fmt.Printf("XOR: %c=%d, %d operands\n", symbols.Lambda, *lambda, *operands)

	timing := NewTiming()

	for _, v := range variants {
		var keys [][]byte
		if seed != nil {
			keys, err = prg.DeriveKeys(seed, *numKeys, v.keySize)
		} else {
			keys, err = prg.NewKeys(config, *numKeys, v.keySize)
		}
		if err != nil {
			log.Fatal(err)
		}

		mmo, err := v.mmo(keys)
		if err != nil {
			log.Fatal(err)
		}
		dMMO, nMMO, err := measure(v.name+"/MMO", mmo, *count)
		if err != nil {
			log.Fatal(err)
		}

		hirose, err := v.hirose(keys)
		if err != nil {
			log.Fatal(err)
		}
		dHirose, nHirose, err := measure(v.name+"/Hirose", hirose, *count)
		if err != nil {
			log.Fatal(err)
		}

		sample := timing.Sample(v.name)
		sample.AbsSubSample("MMO", dMMO, nMMO)
		sample.AbsSubSample("Hirose", dHirose, nHirose)
	}

	d, n, err := measureXor(*lambda, *operands, *count)
	if err != nil {
		log.Fatal(err)
	}
	timing.Sample("XOR").AbsSubSample(
		fmt.Sprintf("%c=%d", symbols.Lambda, *lambda), d, n)

	timing.Print(os.Stdout)
}

func measure(name string, g prg.Generator, count int) (
	time.Duration, uint64, error) {

	seed := make([]byte, g.SeedSize())
	out := make([]byte, g.OutputSize())

	start := time.Now()
	for i := 0; i < count; i++ {
		if err := g.Gen(out, seed); err != nil {
			return 0, 0, err
		}
		// Chain the output into the next seed like a tree walk.
		copy(seed, out)
	}
	elapsed := time.Since(start)

	if verbose {
		fmt.Printf(" - %s: %x\n", name, out)
	}
	return elapsed, uint64(count) * uint64(len(out)), nil
}

func measureXor(lambda, operands, count int) (time.Duration, uint64, error) {
	acc := make([]byte, lambda)
	xs := make([][]byte, operands)
	for i := range xs {
		xs[i] = make([]byte, lambda)
		for j := range xs[i] {
			xs[i][j] = byte(i + j)
		}
	}

	start := time.Now()
	for i := 0; i < count; i++ {
		if err := xor.Into(acc, xs...); err != nil {
			return 0, 0, err
		}
	}
	elapsed := time.Since(start)

	if verbose {
		fmt.Printf(" - XOR: %x\n", acc)
	}
	return elapsed, uint64(count) * uint64(lambda*operands), nil
}
