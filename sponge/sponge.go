// Package sponge implements the Keccak sponge construction: pad10*1
// absorption of arbitrary-length input at a given rate, followed by
// rate-at-a-time squeezing, built on package keccak's Keccak-f[1600]
// permutation. Domain-separation suffix bytes (0x1F/0x9F for SHAKE, 0x04
// for cSHAKE) are the caller's responsibility — see package xof.
package sponge

import (
	"encoding/binary"

	"github.com/nwade/goldilocks/keccak"
)

const totalBits = 1600

// Sponge absorbs in (which the caller has already appended any trailing
// domain-separation byte to) and squeezes outBitLen bits at the given
// capacity, returning outBitLen/8 bytes. outBitLen must be a positive
// multiple of 8; capacity must leave a rate that divides evenly into
// 64-bit lanes (512 is standard; rate = 1600 - capacity = 1088 bits =
// 136 bytes = 17 lanes for the capacities this module uses).
func Sponge(in []byte, outBitLen, capacity int) []byte {
	rateBytes := (totalBits - capacity) / 8
	lanesPerBlock := rateBytes / 8

	padded := in
	if len(in)%rateBytes != 0 {
		padded = padTenOne(in, rateBytes)
	}

	var state keccak.State
	for offset := 0; offset < len(padded); offset += rateBytes {
		block := padded[offset : offset+rateBytes]
		for lane := 0; lane < lanesPerBlock; lane++ {
			state[lane] ^= binary.LittleEndian.Uint64(block[lane*8:])
		}
		keccak.Permute(&state)
	}

	outLen := outBitLen / 8
	out := make([]byte, 0, outLen+rateBytes)
	for len(out) < outLen {
		block := make([]byte, rateBytes)
		for lane := 0; lane < lanesPerBlock; lane++ {
			binary.LittleEndian.PutUint64(block[lane*8:], state[lane])
		}
		out = append(out, block...)
		if len(out) < outLen {
			keccak.Permute(&state)
		}
	}
	return out[:outLen]
}

// padTenOne appends the pad10*1 padding: a 0x00 first byte (the domain
// separator, if any, was already appended by the caller), zero or more
// zero bytes, and a final 0x80 byte, so the result's length is the next
// multiple of rateBytes strictly greater than len(in).
func padTenOne(in []byte, rateBytes int) []byte {
	pad := rateBytes - len(in)%rateBytes
	out := make([]byte, len(in)+pad)
	copy(out, in)
	out[len(out)-1] = 0x80
	return out
}
