package bignum

// Sqrt returns the floor square root of x: the largest r with r² <= x.
func (x Uint) Sqrt() Uint {
	return Uint{mag: x.mag.Sqrt()}
}

// Cbrt returns the floor cube root of x: the largest r with r³ <= x.
func (x Uint) Cbrt() Uint {
	return Uint{mag: x.mag.Cbrt()}
}

// Sqrt returns the floor square root of x. A negative operand is a contract
// violation and panics.
func (x Int) Sqrt() Int {
	if x.Sign() < 0 {
		panic("bignum: square root of negative number")
	}
	return NewIntFromUint(x.Abs().Sqrt())
}

// Cbrt returns the cube root of x rounded toward zero on the magnitude.
// Cube root is an odd function, so Cbrt(-x) = -Cbrt(x) holds at the integer
// approximation level as well.
func (x Int) Cbrt() Int {
	return makeInt(x.neg, x.mag.Cbrt())
}
