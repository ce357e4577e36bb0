package bignum

import "math"

// Conversions between the arbitrary-precision types and fixed-width machine
// numbers. Downcasts that do not fit report ok = false rather than failing;
// an out-of-range value is an expected outcome, not an error.
//
// The float conversions return the nearest representable value using
// round-to-nearest-even on the mantissa boundary, so any value that
// originated from a fixed-width integer converts exactly as Go's native
// widening conversion would.

// Uint64 returns the value of x as a uint64 and whether it fits.
func (x Uint) Uint64() (uint64, bool) { return x.mag.Uint64() }

// Int64 returns the value of x as an int64 and whether it fits.
func (x Uint) Int64() (int64, bool) {
	v, ok := x.mag.Uint64()
	if !ok || v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// Uint64 returns the value of x as a uint64 and whether it fits; negative
// values never fit.
func (x Int) Uint64() (uint64, bool) {
	if x.neg {
		return 0, false
	}
	return x.mag.Uint64()
}

// Int64 returns the value of x as an int64 and whether it fits.
func (x Int) Int64() (int64, bool) {
	v, ok := x.mag.Uint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		if v > 1<<63 {
			return 0, false
		}
		if v == 1<<63 {
			return math.MinInt64, true
		}
		return -int64(v), true
	}
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// Float64 returns the nearest float64 to x, or +Inf if x exceeds the finite
// range.
func (x Uint) Float64() float64 { return magFloat(x, 53) }

// Float32 returns the nearest float32 to x, or +Inf if x exceeds the finite
// range.
func (x Uint) Float32() float32 { return float32(magFloat(x, 24)) }

// Float64 returns the nearest float64 to x, or ±Inf if x exceeds the finite
// range.
func (x Int) Float64() float64 {
	f := magFloat(x.Abs(), 53)
	if x.neg {
		return -f
	}
	return f
}

// Float32 returns the nearest float32 to x, or ±Inf if x exceeds the finite
// range.
func (x Int) Float32() float32 {
	f := float32(magFloat(x.Abs(), 24))
	if x.neg {
		return -f
	}
	return f
}

// magFloat rounds a magnitude to a float with the given mantissa width.
// The top mantWidth+1 bits supply the mantissa and the round bit; every bit
// below them collapses into a sticky bit, and ties round to even.
//
// The float32 path rounds to 24 bits here and converts afterwards, which
// cannot double-round: a 24-bit mantissa scaled by a power of two is either
// exactly representable in float64 or overflows to infinity.
func magFloat(x Uint, mantWidth int) float64 {
	n := x.mag.BitLen()
	if n == 0 {
		return 0
	}
	if n <= mantWidth {
		v, _ := x.mag.Uint64()
		return float64(v) // exact, no rounding possible
	}

	shift := uint(n - mantWidth - 1)
	top, _ := x.mag.Shr(shift).Uint64() // mantWidth+1 significant bits
	mant := top >> 1
	round := top&1 == 1
	if round && (x.mag.Sticky(shift) || mant&1 == 1) {
		mant++ // may carry into mantWidth+1 bits; still exact below
	}
	return math.Ldexp(float64(mant), n-mantWidth)
}
