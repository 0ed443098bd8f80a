package xof

import (
	"bytes"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/sha3"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal: %v", err)
	}
	return b
}

// TestShake256EmptyKAT checks the two empty-string SHAKE256 known-answer
// values from spec.md.
func TestShake256EmptyKAT(t *testing.T) {
	want512 := mustHex(t, "46B9DD2B0BA88D13233B3FEB743EEB243FCD52EA62B81B82B50C27646ED5762"+
		"FD75DC4DDD8C0F200CB05019D67B592F6FC821C49479AB48640292EACB3B7C4BE")
	got := Shake256(nil, 512)
	if !bytes.Equal(got, want512) {
		t.Fatalf("SHAKE256(\"\", 512) = %X, want %X", got, want512)
	}

	want256 := mustHex(t, "46B9DD2B0BA88D13233B3FEB743EEB243FCD52EA62B81B82B50C27646ED5762F")
	got256 := Shake256(nil, 256)
	if !bytes.Equal(got256, want256) {
		t.Fatalf("SHAKE256(\"\", 256) = %X, want %X", got256, want256)
	}
}

// TestShake256CrossValidation cross-checks this from-scratch SHAKE256
// against the standard library's golang.org/x/crypto/sha3 implementation,
// the same technique used to validate a from-scratch Keccak permutation
// in the example corpus (Giulio2002/faster_keccak's keccak_test.go).
func TestShake256CrossValidation(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("hello, world"),
		bytes.Repeat([]byte{0xAB}, 135),
		bytes.Repeat([]byte{0xCD}, 136),
		bytes.Repeat([]byte{0xEF}, 137),
		bytes.Repeat([]byte{0x42}, 1000),
	}
	for _, in := range inputs {
		want := make([]byte, 64)
		ref := sha3.NewShake256()
		ref.Write(in)
		ref.Read(want)

		got := Shake256(in, 512)
		if !bytes.Equal(got, want) {
			t.Errorf("Shake256(%x) = %X, want %X", in, got, want)
		}
	}
}

// TestKMACXOF256_NISTSample4 checks NIST SP 800-185 KMACXOF256 sample #4.
func TestKMACXOF256_NISTSample4(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(0x40 + i)
	}
	msg := make([]byte, 4)
	for i := range msg {
		msg[i] = byte(i)
	}
	out := KMACXOF256(key, msg, 512, []byte("My Tagged Application"))
	wantPrefix := mustHex(t, "1755133F1534752A")
	if !bytes.Equal(out[:8], wantPrefix) {
		t.Fatalf("KMACXOF256 sample #4 first 8 bytes = %X, want %X", out[:8], wantPrefix)
	}
}

func TestKMACXOF256Deterministic(t *testing.T) {
	key := []byte("key")
	msg := []byte("message")
	a := KMACXOF256(key, msg, 256, []byte("custom"))
	b := KMACXOF256(key, msg, 256, []byte("custom"))
	if !bytes.Equal(a, b) {
		t.Fatal("KMACXOF256 is not deterministic for identical inputs")
	}
}

func TestKMACXOF256DomainSeparation(t *testing.T) {
	key := []byte("key")
	msg := []byte("message")
	a := KMACXOF256(key, msg, 256, []byte("customA"))
	b := KMACXOF256(key, msg, 256, []byte("customB"))
	if bytes.Equal(a, b) {
		t.Fatal("different customization strings produced identical output")
	}
}

func TestLeftEncodeRightEncode(t *testing.T) {
	cases := []struct {
		n            uint64
		leftWant     []byte
		rightWant    []byte
	}{
		{0, []byte{1, 0}, []byte{0, 1}},
		{1, []byte{1, 1}, []byte{1, 1}},
		{255, []byte{1, 255}, []byte{255, 1}},
		{256, []byte{2, 1, 0}, []byte{1, 0, 2}},
		{136, []byte{1, 136}, []byte{136, 1}},
	}
	for _, c := range cases {
		if got := LeftEncode(c.n); !bytes.Equal(got, c.leftWant) {
			t.Errorf("LeftEncode(%d) = %v, want %v", c.n, got, c.leftWant)
		}
		if got := RightEncode(c.n); !bytes.Equal(got, c.rightWant) {
			t.Errorf("RightEncode(%d) = %v, want %v", c.n, got, c.rightWant)
		}
	}
}

func TestEncodeStringEmpty(t *testing.T) {
	got := EncodeString(nil)
	want := LeftEncode(0)
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeString(nil) = %v, want %v", got, want)
	}
}

func TestBytepadMultipleOfW(t *testing.T) {
	for _, w := range []int{136, 168} {
		for _, n := range []int{0, 1, w - 1, w, w + 1, 2 * w} {
			out := Bytepad(make([]byte, n), w)
			if len(out)%w != 0 {
				t.Errorf("Bytepad(%d bytes, w=%d) length %d not a multiple of w", n, w, len(out))
			}
		}
	}
}

func TestCShake256FallsThroughToShake256(t *testing.T) {
	in := []byte("some input")
	a := CShake256(in, 256, nil, nil)
	b := Shake256(in, 256)
	if !bytes.Equal(a, b) {
		t.Fatal("CShake256 with empty name/custom did not match Shake256")
	}
}
