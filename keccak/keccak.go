// Package keccak implements the Keccak-f[1600] permutation: the five step
// mappings theta, rho+pi, chi, iota, composed for 24 rounds over a
// 25-lane x 64-bit state. Everything above this permutation (padding,
// absorption, squeezing) lives in package sponge.
package keccak

// State is the 1600-bit Keccak state: 25 lanes of 64 bits each, addressed
// as state[x + 5*y] for column x, row y, per FIPS 202 sec. 3.1.2.
type State [25]uint64

// rc holds the 24 round constants used by the iota step.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// piLane is the lane permutation order consumed by the combined rho+pi step.
var piLane = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// rhoRot holds the rotation offset applied at each step of rho+pi.
var rhoRot = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// rotl64 left-rotates x by y bits; y is reduced mod 64. When y is 0 a plain
// (x<<y)|(x>>(64-y)) shifts right by 64, which is undefined in C; Go
// defines that shift as 0, and the explicit y == 0 branch returns x
// without relying on it.
func rotl64(x uint64, y uint) uint64 {
	y &= 63
	if y == 0 {
		return x
	}
	return (x << y) | (x >> (64 - y))
}

// theta is the first Keccak-f step mapping: column parity XORed into every
// lane of that column, with a rotated neighbor-column contribution.
func theta(s *State) {
	var c [5]uint64
	for i := 0; i < 5; i++ {
		c[i] = s[i] ^ s[i+5] ^ s[i+10] ^ s[i+15] ^ s[i+20]
	}
	var d [5]uint64
	for i := 0; i < 5; i++ {
		d[i] = c[(i+4)%5] ^ rotl64(c[(i+1)%5], 1)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			s[i+5*j] ^= d[i]
		}
	}
}

// rhoPi applies the combined rho (rotation) and pi (lane permutation) steps
// in a single pass, following the standard tiny_sha3-style formulation: walk
// the permutation order, rotating as lanes are relocated. Lane 0 is fixed.
func rhoPi(s *State) {
	t := s[1]
	for i := 0; i < 24; i++ {
		idx := piLane[i]
		temp := s[idx]
		s[idx] = rotl64(t, uint(rhoRot[i]))
		t = temp
	}
}

// chi is the only nonlinear step: each lane is XORed with the AND of the
// complement of its row-neighbor and the next row-neighbor, evaluated
// against a snapshot of the pre-chi state.
func chi(s *State) {
	var prev State
	copy(prev[:], s[:])
	for j := 0; j < 5; j++ {
		row := 5 * j
		for i := 0; i < 5; i++ {
			s[i+row] = prev[i+row] ^ ((^prev[(i+1)%5+row]) & prev[(i+2)%5+row])
		}
	}
}

// iota XORs the round constant into lane 0.
func iota(s *State, round int) {
	s[0] ^= rc[round]
}

// Permute applies all 24 rounds of Keccak-f[1600] to s in place.
func Permute(s *State) {
	for round := 0; round < 24; round++ {
		theta(s)
		rhoPi(s)
		chi(s)
		iota(s, round)
	}
}
