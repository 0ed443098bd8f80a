// Package symmetric implements KMACXOF256-based authenticated encryption
// under a passphrase, per spec.md's symmetric authenticated encryption
// component.
package symmetric

import (
	"github.com/nwade/goldilocks/core"
	"github.com/nwade/goldilocks/utils"
	"github.com/nwade/goldilocks/xof"
)

const (
	domainKeys   = "S"
	domainStream = "SKE"
	domainTag    = "SKA"
)

// Encrypt produces a cryptogram rand ‖ c ‖ t for message m under passphrase
// pw, where rand is a fresh 64-byte salt, c is m masked by a KMACXOF256
// keystream, and t is a 64-byte authentication tag.
func Encrypt(pw, m []byte) ([]byte, error) {
	params := core.Default()

	rnd, err := utils.SecureRandomBytes(params.SymRandLen)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateSeedEntropy(rnd); err != nil {
		utils.Zeroize(rnd)
		return nil, err
	}

	ct := encryptWithRand(params, rnd, pw, m)
	utils.Zeroize(rnd)
	return ct, nil
}

// encryptWithRand is Encrypt with the salt supplied by the caller, split
// out so tests can pin rand and check against a fixed cryptogram.
func encryptWithRand(params core.Params, rnd, pw, m []byte) []byte {
	keys := xof.KMACXOF256(concat(rnd, pw), nil, 1024, []byte(domainKeys))
	ke := keys[:params.SymTagLen]
	ka := keys[params.SymTagLen:]
	defer utils.Zeroize(keys)
	defer utils.Zeroize(ke)
	defer utils.Zeroize(ka)

	stream := xof.KMACXOF256(ke, nil, 8*len(m), []byte(domainStream))
	defer utils.Zeroize(stream)

	c := make([]byte, len(m))
	for i := range m {
		c[i] = m[i] ^ stream[i]
	}

	t := xof.KMACXOF256(ka, m, 512, []byte(domainTag))

	out := make([]byte, 0, len(rnd)+len(c)+len(t))
	out = append(out, rnd...)
	out = append(out, c...)
	out = append(out, t...)
	return out
}

// Decrypt recovers m from a cryptogram produced by Encrypt, returning
// core.ErrInvalidInputLength if the cryptogram is too short to contain a
// salt and tag, and core.ErrTagMismatch if the authentication tag does not
// verify.
func Decrypt(pw, cryptogram []byte) ([]byte, error) {
	params := core.Default()
	if err := utils.CheckLength(len(cryptogram), utils.MaxPayloadLength); err != nil {
		return nil, core.ErrInvalidInputLength.WithMessage("symmetric cryptogram exceeds maximum payload length")
	}
	minLen := params.SymRandLen + params.SymTagLen
	if len(cryptogram) < minLen {
		return nil, core.ErrInvalidInputLength.WithMessage("symmetric cryptogram too short")
	}
	if err := utils.ValidateSliceAccess(cryptogram, 0, params.SymRandLen); err != nil {
		return nil, core.ErrInvalidInputLength.WithMessage(err.Error())
	}

	rnd := cryptogram[:params.SymRandLen]
	c := cryptogram[params.SymRandLen : len(cryptogram)-params.SymTagLen]
	t := cryptogram[len(cryptogram)-params.SymTagLen:]

	keys := xof.KMACXOF256(concat(rnd, pw), nil, 1024, []byte(domainKeys))
	ke := keys[:params.SymTagLen]
	ka := keys[params.SymTagLen:]
	defer utils.Zeroize(keys)
	defer utils.Zeroize(ke)
	defer utils.Zeroize(ka)

	stream := xof.KMACXOF256(ke, nil, 8*len(c), []byte(domainStream))
	defer utils.Zeroize(stream)

	m := make([]byte, len(c))
	for i := range c {
		m[i] = c[i] ^ stream[i]
	}

	tPrime := xof.KMACXOF256(ka, m, 512, []byte(domainTag))
	if !utils.ConstantTimeEqual(t, tPrime) {
		utils.Zeroize(m)
		return nil, core.ErrTagMismatch
	}

	return m, nil
}

func concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
