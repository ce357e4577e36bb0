// Package bignum implements arbitrary-precision integer arithmetic.
//
// Two types are provided: Uint, an unsigned big integer, and Int, a signed
// big integer stored as a sign and an unsigned magnitude. Both are immutable
// values: every operation returns a new value and never modifies its
// operands, so values may be copied, shared, and used as map keys' source
// material without defensive cloning.
//
// Beyond the ring operations the package provides truncating and floor
// division, modular exponentiation and inversion, integer square and cube
// roots, radix conversion for bases 2 through 36, exact conversions to and
// from fixed-width integers, correctly rounded conversions to floating
// point, and a stable binary wire format for both types.
//
// Failure handling follows three tiers. Programming errors - violating a
// documented precondition such as subtracting a larger Uint from a smaller
// one - panic. Division and modular reduction by zero return
// ErrDivisionByZero. Outcomes that are expected in normal operation, such as
// a modular inverse that does not exist or a conversion that overflows its
// target width, are reported with an ok boolean rather than an error.
package bignum
