package core

import "errors"

// Params collects the protocol-wide byte lengths this toolkit's wire
// formats are built from. Unlike the teacher's MOS-128/MOS-256 parameter
// families, Ed448-Goldilocks and KMACXOF256 have exactly one canonical
// parameter set, so there is no security-level selector here — Default
// always returns the same values. The type still exists, and Validate
// still checks it, because every other package imports these lengths by
// name instead of re-deriving them, and a single validated source of
// truth is what the teacher's GetParams/ValidateParams pair was for.
type Params struct {
	// SpongeCapacityBits is the Keccak sponge capacity; rate is derived
	// as 1600 - SpongeCapacityBits.
	SpongeCapacityBits int
	// SymRandLen is the length in bytes of the random salt prefixed to a
	// symmetric cryptogram.
	SymRandLen int
	// SymTagLen is the length in bytes of a symmetric authentication tag.
	SymTagLen int
	// ECRandLen is the length in bytes of randomness drawn for an
	// ephemeral EC scalar (56 bytes = 448 bits, before the *4 mod r
	// reduction spec.md §4.5 describes).
	ECRandLen int
	// CoordinateLen is the canonical fixed width, in bytes, of a
	// serialized Ed448 field coordinate (see DESIGN.md's resolution of
	// spec.md §9's EC wire format open question).
	CoordinateLen int
	// ECTagLen is the length in bytes of an EC authentication tag (448
	// bits).
	ECTagLen int
}

// Default returns the toolkit's single canonical parameter set.
func Default() Params {
	return Params{
		SpongeCapacityBits: 512,
		SymRandLen:         64,
		SymTagLen:          64,
		ECRandLen:          56,
		CoordinateLen:      57,
		ECTagLen:           56,
	}
}

// Validate checks the internal consistency invariants a Params value must
// satisfy; it exists primarily so a caller that constructs Params by hand
// (e.g. in a test exercising a non-default rate) can sanity-check it
// before use, mirroring the teacher's ValidateParams shape.
func Validate(p Params) error {
	if p.SpongeCapacityBits <= 0 || p.SpongeCapacityBits >= 1600 {
		return errors.New("sponge capacity must be in (0, 1600) bits")
	}
	if (1600-p.SpongeCapacityBits)%64 != 0 {
		return errors.New("sponge rate must be a whole number of 64-bit lanes")
	}
	if p.SymRandLen <= 0 || p.SymTagLen <= 0 {
		return errors.New("symmetric rand/tag lengths must be positive")
	}
	if p.ECRandLen <= 0 || p.CoordinateLen <= 0 || p.ECTagLen <= 0 {
		return errors.New("EC rand/coordinate/tag lengths must be positive")
	}
	return nil
}
