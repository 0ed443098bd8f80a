// Package pke implements Ed448-Goldilocks public-key authenticated
// encryption: passphrase-derived key pairs and KMACXOF256-based
// ECIES-style encryption under a recipient's public point.
package pke

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/nwade/goldilocks/core"
	"github.com/nwade/goldilocks/curve"
	"github.com/nwade/goldilocks/utils"
	"github.com/nwade/goldilocks/xof"
)

const (
	domainScalar = "SK"
	domainKeys   = "PK"
	domainStream = "PKE"
	domainTag    = "PKA"
)

// Debug logging helpers, gated on DEBUG_GOLDILOCKS so key-derivation
// tracing never runs by default.
var debugPKE = os.Getenv("DEBUG_GOLDILOCKS") != ""

func logPKE(format string, args ...interface{}) {
	if debugPKE {
		fmt.Fprintf(os.Stderr, "[PKE] "+format+"\n", args...)
	}
}

// KeyPair is a passphrase-derived Ed448-Goldilocks key pair. Secret is
// kept only so callers can zeroize it; the canonical secret is the
// passphrase itself, from which Secret is always rederivable.
type KeyPair struct {
	Secret *big.Int
	Public curve.Point
}

// deriveScalar computes s = (4 * decode_be(KMACXOF256(pw, "", 448, "SK"))) mod r,
// the shared passphrase-to-scalar step used by both key-pair generation and
// decryption.
func deriveScalar(pw []byte) *big.Int {
	logPKE("deriveScalar: pw len=%d", len(pw))
	raw := xof.KMACXOF256(pw, nil, 448, []byte(domainScalar))
	defer utils.Zeroize(raw)
	logPKE("deriveScalar: KMACXOF256(pw,\"\",448,\"SK\")=%s", hex.EncodeToString(raw))

	s := new(big.Int).SetBytes(raw)
	s.Mul(s, big.NewInt(4))
	s.Mod(s, curve.R)
	logPKE("deriveScalar: s=%s", s.Text(16))
	return s
}

// GenerateKeyPair derives an Ed448-Goldilocks key pair from a passphrase:
// s = (4 * decode_be(KMACXOF256(pw, "", 448, "SK"))) mod r, V = s*G.
func GenerateKeyPair(pw []byte) KeyPair {
	logPKE("GenerateKeyPair: start")
	s := deriveScalar(pw)
	v := curve.ScalarMultSafe(curve.G(), s)
	logPKE("GenerateKeyPair: V.x=%s V.y=%s", v.X.Text(16), v.Y.Text(16))
	return KeyPair{Secret: s, Public: v}
}

// Cryptogram is the wire format of an EC public-key cryptogram: the
// ephemeral point Z, a ciphertext masking m, and a 56-byte authentication
// tag. Coordinates serialize to a canonical fixed width (see Marshal),
// resolving spec.md's flagged variable-length wire-format ambiguity.
type Cryptogram struct {
	Z Point
	C []byte
	T []byte
}

// Point pairs an affine curve point's coordinates for serialization.
type Point = curve.Point

// Encrypt encrypts m under recipient public key v, returning a Cryptogram
// whose Z is the ephemeral point k*G.
func Encrypt(v curve.Point, m []byte) (Cryptogram, error) {
	params := core.Default()

	kBytes, err := utils.SecureRandomBytes(params.ECRandLen)
	if err != nil {
		return Cryptogram{}, err
	}
	defer utils.Zeroize(kBytes)
	if err := utils.ValidateSeedEntropy(kBytes); err != nil {
		return Cryptogram{}, err
	}
	logPKE("Encrypt: ephemeral k bytes=%s", hex.EncodeToString(kBytes))

	k := new(big.Int).SetBytes(kBytes)
	k.Mul(k, big.NewInt(4))
	k.Mod(k, curve.R)

	w := curve.ScalarMultSafe(v, k)
	z := curve.ScalarMultSafe(curve.G(), k)
	logPKE("Encrypt: Z.x=%s W.x=%s", z.X.Text(16), w.X.Text(16))

	return encryptWithPoint(params, w, z, m), nil
}

// encryptWithPoint derives ke/ka from the shared point w and builds the
// cryptogram around ephemeral point z, split out so tests can pin w and z
// directly instead of going through the RNG.
func encryptWithPoint(params core.Params, w, z curve.Point, m []byte) Cryptogram {
	wxBytes := marshalCoordinate(w.X, params.CoordinateLen)

	keys := xof.KMACXOF256(wxBytes, nil, 896, []byte(domainKeys))
	ke := keys[:params.ECRandLen]
	ka := keys[params.ECRandLen:]
	defer utils.Zeroize(keys)

	stream := xof.KMACXOF256(ke, nil, 8*len(m), []byte(domainStream))
	defer utils.Zeroize(stream)

	c := make([]byte, len(m))
	for i := range m {
		c[i] = m[i] ^ stream[i]
	}

	t := xof.KMACXOF256(ka, m, 448, []byte(domainTag))

	return Cryptogram{Z: z, C: c, T: t}
}

// Decrypt recovers m from a Cryptogram produced by Encrypt, given the
// passphrase for the recipient's key pair.
func Decrypt(pw []byte, ct Cryptogram) ([]byte, error) {
	params := core.Default()
	logPKE("Decrypt: start, ct.C len=%d", len(ct.C))
	if len(ct.T) != params.ECTagLen {
		return nil, core.ErrInvalidInputLength.WithMessage("EC cryptogram tag has wrong length")
	}

	s := deriveScalar(pw)
	defer s.SetInt64(0)

	w := curve.ScalarMultSafe(ct.Z, s)
	logPKE("Decrypt: W.x=%s", w.X.Text(16))
	wxBytes := marshalCoordinate(w.X, params.CoordinateLen)

	keys := xof.KMACXOF256(wxBytes, nil, 896, []byte(domainKeys))
	ke := keys[:params.ECRandLen]
	ka := keys[params.ECRandLen:]
	defer utils.Zeroize(keys)

	stream := xof.KMACXOF256(ke, nil, 8*len(ct.C), []byte(domainStream))
	defer utils.Zeroize(stream)

	m := make([]byte, len(ct.C))
	for i := range ct.C {
		m[i] = ct.C[i] ^ stream[i]
	}

	tPrime := xof.KMACXOF256(ka, m, 448, []byte(domainTag))
	if !utils.ConstantTimeEqual(ct.T, tPrime) {
		utils.Zeroize(m)
		return nil, core.ErrTagMismatch
	}

	return m, nil
}

// Marshal serializes a Cryptogram to rand-free wire bytes: Z.x and Z.y at
// a fixed coordinate width, followed by the raw ciphertext and tag.
func Marshal(ct Cryptogram, coordinateLen int) []byte {
	zx := marshalCoordinate(ct.Z.X, coordinateLen)
	zy := marshalCoordinate(ct.Z.Y, coordinateLen)

	out := make([]byte, 0, len(zx)+len(zy)+len(ct.C)+len(ct.T))
	out = append(out, zx...)
	out = append(out, zy...)
	out = append(out, ct.C...)
	out = append(out, ct.T...)
	return out
}

// Unmarshal parses wire bytes produced by Marshal back into a Cryptogram.
// Length arithmetic runs through utils.Safe*/ValidateSliceAccess so a
// corrupt or attacker-controlled coordinateLen/tagLen/data triple fails
// with a typed error instead of overflowing or panicking on a bad slice.
func Unmarshal(data []byte, coordinateLen, tagLen int) (Cryptogram, error) {
	if err := utils.CheckPositive(coordinateLen, "coordinateLen"); err != nil {
		return Cryptogram{}, core.ErrInvalidInputLength.WithMessage(err.Error())
	}
	if err := utils.CheckPositive(tagLen, "tagLen"); err != nil {
		return Cryptogram{}, core.ErrInvalidInputLength.WithMessage(err.Error())
	}
	if err := utils.CheckLength(len(data), utils.MaxPayloadLength); err != nil {
		return Cryptogram{}, core.ErrInvalidInputLength.WithMessage("EC cryptogram exceeds maximum payload length")
	}

	coords, err := utils.SafeMultiply(2, coordinateLen)
	if err != nil {
		return Cryptogram{}, core.ErrInvalidInputLength.WithMessage(err.Error())
	}
	if err := utils.ValidateSliceAccess(data, 0, coords+tagLen); err != nil {
		return Cryptogram{}, core.ErrInvalidInputLength.WithMessage("EC cryptogram shorter than two coordinates plus a tag")
	}

	zx := new(big.Int).SetBytes(data[:coordinateLen])
	zy := new(big.Int).SetBytes(data[coordinateLen:coords])
	z := curve.Point{X: zx, Y: zy}
	if !curve.OnCurve(z) {
		return Cryptogram{}, core.ErrInvalidCurvePoint
	}

	rest := data[coords:]
	cSrc := rest[:len(rest)-tagLen]
	tSrc := rest[len(rest)-tagLen:]

	c, err := utils.SafeMakeByteSlice(len(cSrc), utils.MaxPayloadLength)
	if err != nil {
		return Cryptogram{}, core.ErrInvalidInputLength.WithMessage(err.Error())
	}
	copy(c, cSrc)
	t, err := utils.SafeMakeByteSlice(len(tSrc), utils.MaxPayloadLength)
	if err != nil {
		return Cryptogram{}, core.ErrInvalidInputLength.WithMessage(err.Error())
	}
	copy(t, tSrc)

	return Cryptogram{Z: z, C: c, T: t}, nil
}

// marshalCoordinate encodes a field element as a fixed-width big-endian
// byte string, zero-padded on the left.
func marshalCoordinate(x *big.Int, width int) []byte {
	b := x.Bytes()
	if len(b) > width {
		b = b[len(b)-width:]
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out
}
