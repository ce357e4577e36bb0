// Package digits implements the unsigned multi-precision magnitude kernel
// used by the bignum types.
//
// A magnitude is a Vector of 32-bit Words stored least-significant first.
// Vectors are kept normalized: the highest-index word is never zero, and the
// zero value is the empty (usually nil) vector. All operations treat their
// operands as immutable and return freshly allocated results; in-place
// updates are only ever applied to vectors allocated inside the same
// operation, so a Vector may be shared freely once it has been returned.
package digits

import "math/bits"

// A Word is a single digit of a magnitude.
type Word uint32

const (
	_W = 32         // word size in bits
	_B = 1 << _W    // digit base, as a uint64
	_M = 1<<_W - 1  // digit mask
)

// A Vector holds a magnitude as little-endian words.
type Vector []Word

// Norm strips trailing zero words and returns the normalized vector. The
// result aliases x.
func (x Vector) Norm() Vector {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// IsZero reports whether x is the canonical zero vector.
func (x Vector) IsZero() bool { return len(x) == 0 }

// Clone returns a copy of x with its own backing array.
func (x Vector) Clone() Vector {
	if len(x) == 0 {
		return nil
	}
	z := make(Vector, len(x))
	copy(z, x)
	return z
}

// FromUint64 returns the normalized vector holding v.
func FromUint64(v uint64) Vector {
	if v == 0 {
		return nil
	}
	if v <= _M {
		return Vector{Word(v)}
	}
	return Vector{Word(v), Word(v >> _W)}
}

// Uint64 returns the value of x as a uint64 and whether it fits.
func (x Vector) Uint64() (uint64, bool) {
	switch len(x) {
	case 0:
		return 0, true
	case 1:
		return uint64(x[0]), true
	case 2:
		return uint64(x[1])<<_W | uint64(x[0]), true
	}
	return 0, false
}

// Cmp compares two normalized vectors and returns -1, 0, or +1. Lengths are
// compared first; normalization makes length monotonic with magnitude.
func (x Vector) Cmp(y Vector) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns x + y.
func (x Vector) Add(y Vector) Vector {
	m, n := len(x), len(y)
	if m < n {
		return y.Add(x)
	}
	if n == 0 {
		return x
	}
	z := make(Vector, m+1)
	c := addVV(z[:n], x[:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.Norm()
}

// Sub returns x - y. The caller must arrange x >= y; a smaller minuend is a
// contract violation and panics.
func (x Vector) Sub(y Vector) Vector {
	m, n := len(x), len(y)
	if m < n {
		panic("digits: subtraction underflow")
	}
	if n == 0 {
		return x
	}
	z := make(Vector, m)
	b := subVV(z[:n], x[:n], y)
	if m > n {
		b = subVW(z[n:m], x[n:], b)
	}
	if b != 0 {
		panic("digits: subtraction underflow")
	}
	return z.Norm()
}

// MulAddWord returns x*m + a. It is the accumulation step of radix parsing.
func (x Vector) MulAddWord(m, a Word) Vector {
	if len(x) == 0 {
		if a == 0 {
			return nil
		}
		return Vector{a}
	}
	z := make(Vector, len(x)+1)
	z[len(x)] = mulAddVWW(z[:len(x)], x, m, a)
	return z.Norm()
}

// BitLen returns the length of x in bits. The bit length of zero is 0.
func (x Vector) BitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*_W + bits.Len32(uint32(x[len(x)-1]))
}

// Bit returns bit i of x.
func (x Vector) Bit(i uint) uint {
	j := int(i / _W)
	if j >= len(x) {
		return 0
	}
	return uint(x[j]>>(i%_W)) & 1
}

// Sticky reports whether any of the n least-significant bits of x is set.
func (x Vector) Sticky(n uint) bool {
	q, r := int(n/_W), n%_W
	if q >= len(x) {
		return len(x) > 0
	}
	for _, w := range x[:q] {
		if w != 0 {
			return true
		}
	}
	return r > 0 && x[q]&(1<<r-1) != 0
}

// Shl returns x << k, growing the vector as needed.
func (x Vector) Shl(k uint) Vector {
	if len(x) == 0 {
		return nil
	}
	n, s := int(k/_W), k%_W
	z := make(Vector, len(x)+n+1)
	z[len(z)-1] = shlVU(z[n:len(z)-1], x, s)
	return z.Norm()
}

// Shr returns x >> k, discarding the k least-significant bits.
func (x Vector) Shr(k uint) Vector {
	n, s := int(k/_W), k%_W
	if n >= len(x) {
		return nil
	}
	z := make(Vector, len(x)-n)
	shrVU(z, x[n:], s)
	return z.Norm()
}
