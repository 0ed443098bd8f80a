// Package xof implements the NIST SP 800-185 string-encoding primitives
// (left_encode, right_encode, encode_string, bytepad) and the three
// domain-separated extendable-output functions built on them: SHAKE256,
// cSHAKE256, and KMACXOF256. Everything here is a pure function of its
// byte-slice inputs, built on package sponge's absorb/squeeze sponge.
package xof

import (
	"encoding/binary"

	"github.com/nwade/goldilocks/sponge"
)

const rate = 136 // bytes; rate = 1600 - 512 capacity, in bytes.

// concat returns a freshly-allocated copy of a followed by b. Used
// throughout instead of append(a, b...) to avoid aliasing the caller's
// backing array, matching the defensive copying style of the byte-framing
// helpers this package is grounded on.
func concat(a, b []byte) []byte {
	out := make([]byte, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// minimalBigEndian returns the minimal-length big-endian encoding of n,
// with n=0 represented as a single zero byte.
func minimalBigEndian(n uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// LeftEncode implements SP 800-185's left_encode: the byte-count prefix
// comes first, i.e. [k, b(k-1), ..., b0].
func LeftEncode(n uint64) []byte {
	b := minimalBigEndian(n)
	out := make([]byte, 0, len(b)+1)
	out = append(out, byte(len(b)))
	return append(out, b...)
}

// RightEncode implements SP 800-185's right_encode: the same big-endian
// bytes as LeftEncode, but with the byte-count suffixed instead of
// prefixed, i.e. [b(k-1), ..., b0, k].
func RightEncode(n uint64) []byte {
	b := minimalBigEndian(n)
	out := make([]byte, 0, len(b)+1)
	out = append(out, b...)
	return append(out, byte(len(b)))
}

// EncodeString implements SP 800-185's encode_string: left_encode(8*|S|)
// followed by S itself. An empty S yields just left_encode(0).
func EncodeString(s []byte) []byte {
	return concat(LeftEncode(uint64(len(s))*8), s)
}

// Bytepad implements SP 800-185's bytepad: left_encode(w) || X, padded
// with zero bytes so the total length is the smallest positive multiple
// of w that is >= len(left_encode(w))+len(X). w must be > 0.
func Bytepad(x []byte, w int) []byte {
	wEnc := LeftEncode(uint64(w))
	total := len(wEnc) + len(x)
	padded := ((total + w - 1) / w) * w
	z := make([]byte, padded)
	copy(z, wEnc)
	copy(z[len(wEnc):], x)
	return z
}

// Shake256 computes the SHAKE256 extendable-output function over in,
// producing L bits (L must be a positive multiple of 8). The trailing
// domain-separator byte is 0x9F when exactly one byte of padding would
// remain to fill the rate (fusing the SHAKE suffix 0x1F with the pad10*1
// terminal 0x80 bit), else the plain SHAKE suffix 0x1F.
func Shake256(in []byte, bitLen int) []byte {
	bytesToPad := rate - len(in)%rate
	sep := byte(0x1F)
	if bytesToPad == 1 {
		sep = 0x9F
	}
	return sponge.Sponge(concat(in, []byte{sep}), bitLen, 512)
}

// CShake256 computes cSHAKE256 over in, producing bitLen bits, with
// function-name and customization-string domain separation. When both
// name and custom are empty it falls through to plain SHAKE256, per SP
// 800-185.
func CShake256(in []byte, bitLen int, name, custom []byte) []byte {
	if len(name) == 0 && len(custom) == 0 {
		return Shake256(in, bitLen)
	}
	prefix := Bytepad(concat(EncodeString(name), EncodeString(custom)), rate)
	body := concat(concat(prefix, in), []byte{0x04})
	return sponge.Sponge(body, bitLen, 512)
}

// KMACXOF256 computes the extendable-output KMAC variant: a keyed,
// domain-separated cSHAKE256 MAC whose output length is a parameter
// rather than fixed. The trailing right_encode(0) marks this as the XOF
// (as opposed to fixed-length) KMAC variant.
func KMACXOF256(key, msg []byte, bitLen int, custom []byte) []byte {
	payload := concat(Bytepad(EncodeString(key), rate), msg)
	payload = concat(payload, RightEncode(0))
	return CShake256(payload, bitLen, []byte("KMAC"), custom)
}
