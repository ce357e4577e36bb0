package bignum

import "github.com/agbru/bignum/internal/digits"

// A Uint is an unsigned integer of arbitrary precision. The zero value is
// ready to use and represents 0.
//
// Uint values are immutable: operations return new values and never modify
// their operands.
type Uint struct {
	mag digits.Vector
}

// NewUint returns a Uint holding v.
func NewUint(v uint64) Uint {
	return Uint{mag: digits.FromUint64(v)}
}

// NewUintFromWords builds a Uint from 32-bit words in little-endian order.
// The input need not be normalized; trailing zero words are stripped.
func NewUintFromWords(words []uint32) Uint {
	v := make(digits.Vector, len(words))
	for i, w := range words {
		v[i] = digits.Word(w)
	}
	return Uint{mag: v.Norm()}
}

// Words returns the canonical little-endian 32-bit words of x. The zero
// value yields an empty slice.
func (x Uint) Words() []uint32 {
	words := make([]uint32, len(x.mag))
	for i, w := range x.mag {
		words[i] = uint32(w)
	}
	return words
}

// Sign returns 0 if x is zero and 1 otherwise.
func (x Uint) Sign() int {
	if x.mag.IsZero() {
		return 0
	}
	return 1
}

// IsZero reports whether x is 0.
func (x Uint) IsZero() bool { return x.mag.IsZero() }

// IsOne reports whether x is 1.
func (x Uint) IsOne() bool { return len(x.mag) == 1 && x.mag[0] == 1 }

// BitLen returns the length of x in bits; the bit length of 0 is 0.
func (x Uint) BitLen() int { return x.mag.BitLen() }

// Bit returns the value of bit i of x.
func (x Uint) Bit(i uint) uint { return x.mag.Bit(i) }

// Cmp compares x and y and returns -1, 0, or +1.
func (x Uint) Cmp(y Uint) int { return x.mag.Cmp(y.mag) }

// Equal reports whether x and y are the same value.
func (x Uint) Equal(y Uint) bool { return x.Cmp(y) == 0 }

// Add returns x + y.
func (x Uint) Add(y Uint) Uint {
	return Uint{mag: x.mag.Add(y.mag)}
}

// Sub returns x - y. The caller must ensure x >= y; a negative result cannot
// be represented and panics. Callers that cannot order their operands should
// use Int.
func (x Uint) Sub(y Uint) Uint {
	if x.Cmp(y) < 0 {
		panic("bignum: Uint.Sub underflow")
	}
	return Uint{mag: x.mag.Sub(y.mag)}
}

// Mul returns x * y.
func (x Uint) Mul(y Uint) Uint {
	return Uint{mag: x.mag.Mul(y.mag)}
}

// QuoRem returns the quotient and remainder of x / y, satisfying
// x = q*y + r with 0 <= r < y. It returns ErrDivisionByZero if y is zero.
func (x Uint) QuoRem(y Uint) (q, r Uint, err error) {
	if y.IsZero() {
		return Uint{}, Uint{}, ErrDivisionByZero
	}
	qv, rv := x.mag.DivMod(y.mag)
	return Uint{mag: qv}, Uint{mag: rv}, nil
}

// Quo returns the quotient of x / y.
func (x Uint) Quo(y Uint) (Uint, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x / y.
func (x Uint) Rem(y Uint) (Uint, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Pow returns x**n computed by repeated squaring. Pow(0) is 1 for every x,
// including x = 0.
func (x Uint) Pow(n uint) Uint {
	result := NewUint(1)
	base := x
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		if n > 1 {
			base = base.Mul(base)
		}
	}
	return result
}

// Lsh returns x << k, an exact multiplication by 2**k.
func (x Uint) Lsh(k uint) Uint {
	return Uint{mag: x.mag.Shl(k)}
}

// Rsh returns x >> k, discarding the k low-order bits. This is floor
// division by 2**k.
func (x Uint) Rsh(k uint) Uint {
	return Uint{mag: x.mag.Shr(k)}
}

// String returns the base-10 representation of x.
func (x Uint) String() string { return x.Text(10) }
