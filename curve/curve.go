// Package curve implements Ed448-Goldilocks point arithmetic: the Edwards
// curve x^2 + y^2 = 1 + d*x^2*y^2 (mod p), its base point G, complete
// addition, double-and-add scalar multiplication, and modular square
// roots for point decompression.
package curve

import (
	"math/big"
)

var (
	// P is the field prime 2^448 - 2^224 - 1.
	P = mustBig("726838724295606890549323807888004534353641360687318060281490199180612328166730772686396383698676545930088884461843637361053498018365439")

	// D is the Edwards curve coefficient, -39081 mod P.
	D = new(big.Int).Mod(big.NewInt(-39081), P)

	// R is the prime order of the base point's cyclic subgroup.
	R = mustBig("181709681073901722637330951972001133588410340171829515070372549795146003961539585716195755291692375963310293709091662304773755859649779")

	one = big.NewInt(1)
)

func mustBig(dec string) *big.Int {
	n, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("curve: bad constant literal")
	}
	return n
}

// Point is an affine point on the Ed448-Goldilocks curve.
type Point struct {
	X, Y *big.Int
}

// Neutral returns the curve's identity element, (0, 1).
func Neutral() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(1)}
}

// G is the canonical Ed448-Goldilocks base point, x_G = 8.
func G() Point {
	return Point{
		X: big.NewInt(8),
		Y: mustBig("563400200929088152613609629378641385410102682117258566404750214022059686929583319585040850282322731241505930835997382613319689400286258"),
	}
}

// OnCurve reports whether p satisfies x^2 + y^2 = 1 + d*x^2*y^2 (mod P).
func OnCurve(p Point) bool {
	x2 := new(big.Int).Mul(p.X, p.X)
	x2.Mod(x2, P)
	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, P)

	lhs := new(big.Int).Add(x2, y2)
	lhs.Mod(lhs, P)

	rhs := new(big.Int).Mul(x2, y2)
	rhs.Mul(rhs, D)
	rhs.Add(rhs, one)
	rhs.Mod(rhs, P)

	return lhs.Cmp(rhs) == 0
}

// Add computes the complete Edwards sum p1 + p2. Doubling a point is
// Add(p, p); there is no separate doubling formula.
func Add(p1, p2 Point) Point {
	x1y2 := new(big.Int).Mul(p1.X, p2.Y)
	y1x2 := new(big.Int).Mul(p1.Y, p2.X)
	y1y2 := new(big.Int).Mul(p1.Y, p2.Y)
	x1x2 := new(big.Int).Mul(p1.X, p2.X)

	dProd := new(big.Int).Mul(x1x2, y1y2)
	dProd.Mul(dProd, D)
	dProd.Mod(dProd, P)

	xNum := new(big.Int).Add(x1y2, y1x2)
	xNum.Mod(xNum, P)
	xDen := new(big.Int).Add(one, dProd)
	xDen.Mod(xDen, P)
	xDen.ModInverse(xDen, P)

	yNum := new(big.Int).Sub(y1y2, x1x2)
	yNum.Mod(yNum, P)
	yDen := new(big.Int).Sub(one, dProd)
	yDen.Mod(yDen, P)
	yDen.ModInverse(yDen, P)

	x3 := new(big.Int).Mul(xNum, xDen)
	x3.Mod(x3, P)
	y3 := new(big.Int).Mul(yNum, yDen)
	y3.Mod(y3, P)

	return Point{X: x3, Y: y3}
}

// ScalarMult computes s*p by left-to-right double-and-add. The ladder
// starts at P := p and scans bits of s from bitlen(s)-2 down to 0,
// implicitly consuming the top bit; callers that may pass s == 0 or
// s == 1 must use ScalarMultSafe instead, which branches on those cases
// before entering the ladder.
func ScalarMult(p Point, s *big.Int) Point {
	acc := p
	for i := s.BitLen() - 2; i >= 0; i-- {
		acc = Add(acc, acc)
		if s.Bit(i) == 1 {
			acc = Add(acc, p)
		}
	}
	return acc
}

// ScalarMultSafe computes s*p for any non-negative s, including 0 and 1,
// where the bare double-and-add ladder's implicit top-bit assumption
// does not hold.
func ScalarMultSafe(p Point, s *big.Int) Point {
	switch s.Sign() {
	case 0:
		return Neutral()
	}
	if s.Cmp(one) == 0 {
		return p
	}
	return ScalarMult(p, s)
}

// Sqrt returns a square root r of v mod P whose low bit is 1 if lsb is true
// and 0 otherwise, and ok == true, provided v is a quadratic residue. P ≡ 3 (mod 4), so
// r = v^((P+1)/4) mod P is computed directly via modular exponentiation
// and then verified by squaring.
func Sqrt(v *big.Int, lsb bool) (r *big.Int, ok bool) {
	if v.Sign() == 0 {
		return big.NewInt(0), true
	}

	exp := new(big.Int).Add(P, one)
	exp.Rsh(exp, 2)
	root := new(big.Int).Exp(v, exp, P)

	wantBit := uint(0)
	if lsb {
		wantBit = 1
	}
	if root.Bit(0) != wantBit {
		root.Sub(P, root)
	}

	check := new(big.Int).Mul(root, root)
	check.Mod(check, P)
	vMod := new(big.Int).Mod(v, P)
	if check.Cmp(vMod) != 0 {
		return nil, false
	}
	return root, true
}
