package pke

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nwade/goldilocks/core"
)

func TestUnmarshalRejectsNonPositiveCoordinateLen_Coverage(t *testing.T) {
	if _, err := Unmarshal(make([]byte, 200), 0, 56); !errors.Is(err, core.ErrInvalidInputLength) {
		t.Errorf("expected ErrInvalidInputLength for coordinateLen=0, got %v", err)
	}
}

func TestUnmarshalRejectsNonPositiveTagLen_Coverage(t *testing.T) {
	if _, err := Unmarshal(make([]byte, 200), 57, -1); !errors.Is(err, core.ErrInvalidInputLength) {
		t.Errorf("expected ErrInvalidInputLength for tagLen=-1, got %v", err)
	}
}

func TestUnmarshalRejectsOverflowingCoordinateLen_Coverage(t *testing.T) {
	// A coordinateLen so large that 2*coordinateLen overflows int must be
	// rejected by the SafeMultiply guard rather than wrapping into a
	// small, wrong value that a subsequent slice access might accept.
	if _, err := Unmarshal(make([]byte, 200), 1<<62, 56); !errors.Is(err, core.ErrInvalidInputLength) {
		t.Errorf("expected ErrInvalidInputLength for an overflowing coordinateLen, got %v", err)
	}
}

func TestUnmarshalExactMinimumLength_Coverage(t *testing.T) {
	params := core.Default()
	data := make([]byte, 2*params.CoordinateLen+params.ECTagLen)
	// Z = (0, 1) is the neutral point, which is on the curve, so this
	// exercises the boundary where rest has length exactly tagLen (an
	// empty ciphertext) without hitting the off-curve rejection path.
	data[2*params.CoordinateLen-1] = 1
	ct, err := Unmarshal(data, params.CoordinateLen, params.ECTagLen)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(ct.C) != 0 {
		t.Errorf("expected an empty ciphertext, got %d bytes", len(ct.C))
	}
	if len(ct.T) != params.ECTagLen {
		t.Errorf("len(ct.T) = %d, want %d", len(ct.T), params.ECTagLen)
	}
}

func TestMarshalCoordinateTruncatesOverwideValue_Coverage(t *testing.T) {
	// x.Bytes() longer than width must be truncated to its low-order
	// width bytes rather than overflowing the fixed-width output.
	x := new(big.Int).Lsh(big.NewInt(1), 8*64)
	out := marshalCoordinate(x, 57)
	if len(out) != 57 {
		t.Fatalf("len(out) = %d, want 57", len(out))
	}
}
