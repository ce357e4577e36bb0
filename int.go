package bignum

import "github.com/agbru/bignum/internal/digits"

// An Int is a signed integer of arbitrary precision, stored as a sign and an
// unsigned magnitude. The zero value is ready to use and represents 0.
//
// The representation keeps one invariant: a zero magnitude is never tagged
// negative, so every value has exactly one encoding. All sign logic lives in
// this layer; the magnitude kernel never reasons about sign.
//
// Int values are immutable: operations return new values and never modify
// their operands.
type Int struct {
	neg bool
	mag digits.Vector
}

// NewInt returns an Int holding v.
func NewInt(v int64) Int {
	if v < 0 {
		// negating math.MinInt64 overflows int64; go through uint64
		return Int{neg: true, mag: digits.FromUint64(-uint64(v))}
	}
	return Int{mag: digits.FromUint64(uint64(v))}
}

// NewIntFromUint returns an Int holding the non-negative value x.
func NewIntFromUint(x Uint) Int {
	return Int{mag: x.mag}
}

// makeInt assembles an Int while re-establishing the sign invariant: a zero
// magnitude always normalizes to the positive tag.
func makeInt(neg bool, mag digits.Vector) Int {
	if mag.IsZero() {
		return Int{}
	}
	return Int{neg: neg, mag: mag}
}

// Sign returns -1, 0, or +1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case x.mag.IsZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x Int) IsZero() bool { return x.mag.IsZero() }

// IsOne reports whether x is 1.
func (x Int) IsOne() bool { return !x.neg && len(x.mag) == 1 && x.mag[0] == 1 }

// Neg returns -x.
func (x Int) Neg() Int {
	return makeInt(!x.neg, x.mag)
}

// Abs returns the magnitude of x as a Uint.
func (x Int) Abs() Uint { return Uint{mag: x.mag} }

// BitLen returns the length of the magnitude of x in bits.
func (x Int) BitLen() int { return x.mag.BitLen() }

// Cmp compares x and y and returns -1, 0, or +1.
func (x Int) Cmp(y Int) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	c := x.mag.Cmp(y.mag)
	if sx < 0 {
		return -c
	}
	return c
}

// Equal reports whether x and y are the same value.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Add returns x + y. Same-sign operands add magnitudes and keep the sign;
// mixed-sign operands subtract the smaller magnitude from the larger and
// take the sign of the larger, so the unsigned subtraction precondition
// always holds.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, x.mag.Add(y.mag))
	}
	switch x.mag.Cmp(y.mag) {
	case 0:
		return Int{}
	case 1:
		return makeInt(x.neg, x.mag.Sub(y.mag))
	}
	return makeInt(y.neg, y.mag.Sub(x.mag))
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y. The result is negative exactly when the signs differ
// and neither operand is zero.
func (x Int) Mul(y Int) Int {
	return makeInt(x.neg != y.neg, x.mag.Mul(y.mag))
}

// QuoRem returns the quotient and remainder of truncating division,
// rounding toward zero: x = q*y + r with |r| < |y| and r taking the sign of
// the dividend x. It returns ErrDivisionByZero if y is zero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	qv, rv := x.mag.DivMod(y.mag)
	return makeInt(x.neg != y.neg, qv), makeInt(x.neg, rv), nil
}

// Quo returns the truncating quotient of x / y.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of truncating division; it takes the sign of x.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// DivModFloor returns the quotient and modulus of floor division, rounding
// toward negative infinity: x = q*y + m with |m| < |y| and a nonzero m
// taking the sign of the divisor y. It returns ErrDivisionByZero if y is
// zero.
func (x Int) DivModFloor(y Int) (q, m Int, err error) {
	q, m, err = x.QuoRem(y)
	if err != nil {
		return
	}
	// truncation and floor agree unless the truncated remainder is nonzero
	// and the operand signs differ.
	if !m.IsZero() && x.neg != y.neg {
		q = q.Sub(NewInt(1))
		m = m.Add(y)
	}
	return
}

// DivFloor returns the floor quotient of x / y.
func (x Int) DivFloor(y Int) (Int, error) {
	q, _, err := x.DivModFloor(y)
	return q, err
}

// ModFloor returns the floor modulus of x / y; a nonzero result takes the
// sign of y.
func (x Int) ModFloor(y Int) (Int, error) {
	_, m, err := x.DivModFloor(y)
	return m, err
}

// Pow returns x**n computed by repeated squaring on the magnitude. The
// result is negative only for a negative base and odd exponent; Pow(0) is 1
// for every x.
func (x Int) Pow(n uint) Int {
	return makeInt(x.neg && n&1 == 1, x.Abs().Pow(n).mag)
}

// Lsh returns x << k, an exact multiplication by 2**k.
func (x Int) Lsh(k uint) Int {
	return makeInt(x.neg, x.mag.Shl(k))
}

// Rsh returns x >> k as an arithmetic shift over the infinite-precision
// value, which is floor division by 2**k. For negative x this is NOT
// truncating division: whenever any discarded bit is set the result rounds
// away from zero, matching native fixed-width signed shifts.
func (x Int) Rsh(k uint) Int {
	mag := x.mag.Shr(k)
	if x.neg && x.mag.Sticky(k) {
		mag = mag.Add(digits.Vector{1})
	}
	return makeInt(x.neg, mag)
}

// String returns the base-10 representation of x.
func (x Int) String() string { return x.Text(10) }
