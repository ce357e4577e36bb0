package bignum

import "github.com/agbru/bignum/internal/digits"

// GCD returns the greatest common divisor of x and y by the Euclidean
// algorithm over their magnitudes. The result is always non-negative;
// GCD(0, 0) is 0.
func (x Int) GCD(y Int) Int {
	return NewIntFromUint(x.Abs().GCD(y.Abs()))
}

// GCD returns the greatest common divisor of x and y.
func (x Uint) GCD(y Uint) Uint {
	a, b := x.mag, y.mag
	for !b.IsZero() {
		_, r := a.DivMod(b)
		a, b = b, r
	}
	return Uint{mag: a}
}

// ModPow returns x**exp mod m in [0, m). A zero modulus returns
// ErrDivisionByZero.
func (x Uint) ModPow(exp, m Uint) (Uint, error) {
	r, err := NewIntFromUint(x).ModPow(NewIntFromUint(exp), NewIntFromUint(m))
	return r.Abs(), err
}

// ModPow returns x**exp reduced into the canonical residue range of m:
// [0, m) for positive m, (m, 0] for negative m. A zero modulus returns
// ErrDivisionByZero; a negative exponent is a contract violation and panics
// (use ModInverse to invert first when an inverse exists).
//
// The computation is square-and-multiply over the exponent bits, least
// significant first, floor-reducing the accumulator and the running base
// after every multiplication so operand growth stays bounded by the modulus.
func (x Int) ModPow(exp, m Int) (Int, error) {
	if m.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	if exp.Sign() < 0 {
		panic("bignum: negative exponent in ModPow")
	}

	result, _ := NewInt(1).ModFloor(m) // 1 mod m, which is 0 for |m| = 1
	base, _ := x.ModFloor(m)
	e := exp.mag
	for i, n := 0, e.BitLen(); i < n; i++ {
		if e.Bit(uint(i)) == 1 {
			result, _ = result.Mul(base).ModFloor(m)
		}
		base, _ = base.Mul(base).ModFloor(m)
	}
	return result, nil
}

// ModInverse returns the multiplicative inverse of x modulo m, if it
// exists. The inverse is present exactly when gcd(x, m) = 1; absence is a
// normal outcome reported through ok, not an error. When present, the
// inverse lies in the canonical residue range of m: [0, m) for positive m,
// (m, 0] for negative m. A zero modulus returns ErrDivisionByZero.
func (x Int) ModInverse(m Int) (inv Int, ok bool, err error) {
	if m.IsZero() {
		return Int{}, false, ErrDivisionByZero
	}

	g, s := extendedGCD(x.mag, m.mag)
	if !(len(g) == 1 && g[0] == 1) {
		return Int{}, false, nil
	}
	// s inverts |x| modulo |m|; flip it for a negative x since
	// (-|x|)·(-s) = |x|·s.
	if x.neg {
		s = s.Neg()
	}
	// floor reduction lands the inverse in the canonical range for m's sign.
	inv, _ = s.ModFloor(m)
	return inv, true, nil
}

// extendedGCD runs the extended Euclidean algorithm on two magnitudes,
// returning g = gcd(a, b) and a signed s with s*a ≡ g (mod b).
func extendedGCD(a, b digits.Vector) (g digits.Vector, s Int) {
	// Invariants: r0 = s0*a (mod b), r1 = s1*a (mod b).
	r0, r1 := a, b
	s0, s1 := NewInt(1), NewInt(0)
	for !r1.IsZero() {
		q, r := r0.DivMod(r1)
		r0, r1 = r1, r
		s0, s1 = s1, s0.Sub(NewIntFromUint(Uint{mag: q}).Mul(s1))
	}
	return r0, s0
}
