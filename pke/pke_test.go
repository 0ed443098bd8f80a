package pke

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/nwade/goldilocks/core"
	"github.com/nwade/goldilocks/curve"
)

func TestGenerateKeyPairPublicOnCurve(t *testing.T) {
	kp := GenerateKeyPair([]byte("passphrase"))
	if !curve.OnCurve(kp.Public) {
		t.Fatal("derived public key is not on the curve")
	}
}

func TestGenerateKeyPairDeterministic(t *testing.T) {
	a := GenerateKeyPair([]byte("same passphrase"))
	b := GenerateKeyPair([]byte("same passphrase"))
	if a.Secret.Cmp(b.Secret) != 0 {
		t.Error("same passphrase should derive the same scalar")
	}
	if a.Public.X.Cmp(b.Public.X) != 0 || a.Public.Y.Cmp(b.Public.Y) != 0 {
		t.Error("same passphrase should derive the same public key")
	}
}

func TestGenerateKeyPairDistinctPassphrases(t *testing.T) {
	a := GenerateKeyPair([]byte("passphrase A"))
	b := GenerateKeyPair([]byte("passphrase B"))
	if a.Public.X.Cmp(b.Public.X) == 0 && a.Public.Y.Cmp(b.Public.Y) == 0 {
		t.Error("different passphrases derived the same public key")
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	pw := []byte("recipient passphrase")
	kp := GenerateKeyPair(pw)

	m := []byte("a message for the recipient's public key")
	ct, err := Encrypt(kp.Public, m)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	got, err := Decrypt(pw, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(got, m) {
		t.Errorf("round trip mismatch: got %q, want %q", got, m)
	}
}

func TestEncryptDecryptEmptyMessage(t *testing.T) {
	pw := []byte("pw")
	kp := GenerateKeyPair(pw)
	ct, err := Encrypt(kp.Public, nil)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	got, err := Decrypt(pw, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty message, got %q", got)
	}
}

func TestDecryptWrongPassphraseFails(t *testing.T) {
	kp := GenerateKeyPair([]byte("right"))
	ct, err := Encrypt(kp.Public, []byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := Decrypt([]byte("wrong"), ct); !errors.Is(err, core.ErrTagMismatch) {
		t.Errorf("expected ErrTagMismatch, got %v", err)
	}
}

func TestDecryptTamperedTagFails(t *testing.T) {
	pw := []byte("pw")
	kp := GenerateKeyPair(pw)
	ct, err := Encrypt(kp.Public, []byte("message"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	ct.T[0] ^= 0xFF
	if _, err := Decrypt(pw, ct); !errors.Is(err, core.ErrTagMismatch) {
		t.Errorf("expected ErrTagMismatch, got %v", err)
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	pw := []byte("pw")
	kp := GenerateKeyPair(pw)
	ct, err := Encrypt(kp.Public, []byte("round trip through the wire format"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	params := core.Default()
	wire := Marshal(ct, params.CoordinateLen)
	got, err := Unmarshal(wire, params.CoordinateLen, params.ECTagLen)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Z.X.Cmp(ct.Z.X) != 0 || got.Z.Y.Cmp(ct.Z.Y) != 0 {
		t.Error("unmarshaled Z does not match original")
	}
	if !bytes.Equal(got.C, ct.C) || !bytes.Equal(got.T, ct.T) {
		t.Error("unmarshaled ciphertext/tag does not match original")
	}

	m, err := Decrypt(pw, got)
	if err != nil {
		t.Fatalf("Decrypt after unmarshal: %v", err)
	}
	if string(m) != "round trip through the wire format" {
		t.Errorf("got %q", m)
	}
}

func TestUnmarshalRejectsTruncated(t *testing.T) {
	params := core.Default()
	if _, err := Unmarshal(make([]byte, 10), params.CoordinateLen, params.ECTagLen); !errors.Is(err, core.ErrInvalidInputLength) {
		t.Errorf("expected ErrInvalidInputLength, got %v", err)
	}
}

func TestUnmarshalRejectsOffCurvePoint(t *testing.T) {
	params := core.Default()
	data := make([]byte, 2*params.CoordinateLen+params.ECTagLen)
	data[params.CoordinateLen-1] = 2 // Z.x = 2, Z.y = 0: not on curve
	if _, err := Unmarshal(data, params.CoordinateLen, params.ECTagLen); !errors.Is(err, core.ErrInvalidCurvePoint) {
		t.Errorf("expected ErrInvalidCurvePoint, got %v", err)
	}
}

func TestEncryptWithPointDeterministic(t *testing.T) {
	params := core.Default()
	w := curve.ScalarMult(curve.G(), big.NewInt(42))
	z := curve.ScalarMult(curve.G(), big.NewInt(7))
	a := encryptWithPoint(params, w, z, []byte("msg"))
	b := encryptWithPoint(params, w, z, []byte("msg"))
	if !bytes.Equal(a.C, b.C) || !bytes.Equal(a.T, b.T) {
		t.Error("encryptWithPoint should be deterministic given fixed w and z")
	}
}
