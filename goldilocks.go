// Package goldilocks implements a from-scratch Keccak-f[1600] permutation,
// the SP 800-185 SHAKE256/cSHAKE256/KMACXOF256 constructions built on top
// of it, KMACXOF256-based symmetric authenticated encryption, and
// Ed448-Goldilocks elliptic-curve arithmetic with a matching public-key
// authenticated encryption scheme.
//
// WARNING: this is a from-scratch, from-spec implementation built for
// clarity and testability, not audited for constant-time behavior. Big
// integer arithmetic in the curve package runs in variable time; tag
// comparisons in the symmetric and pke packages go through crypto/subtle,
// which leaks only the tag length; see DESIGN.md.
package goldilocks

// Version of this toolkit.
const Version = "1.0.0"

// API summary:
//
// Hashing and MAC (package xof):
//   - xof.Shake256(data, bitLen) - SHAKE256 extendable-output hash
//   - xof.CShake256(data, bitLen, name, custom) - customizable SHAKE
//   - xof.KMACXOF256(key, data, bitLen, custom) - keyed XOF MAC
//
// Symmetric authenticated encryption (package symmetric):
//   - symmetric.Encrypt(pw, m) - encrypt m under passphrase pw
//   - symmetric.Decrypt(pw, cryptogram) - recover m, or ErrTagMismatch
//
// Elliptic curve arithmetic (package curve):
//   - curve.G() - the Ed448-Goldilocks base point
//   - curve.Add(p1, p2) - complete Edwards point addition
//   - curve.ScalarMultSafe(p, s) - scalar multiplication, s >= 0
//
// Public-key authenticated encryption (package pke):
//   - pke.GenerateKeyPair(pw) - derive a key pair from a passphrase
//   - pke.Encrypt(v, m) - encrypt m under recipient public point v
//   - pke.Decrypt(pw, cryptogram) - recover m, or ErrTagMismatch
