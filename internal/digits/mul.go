package digits

// karatsubaThreshold is the operand length, in words, above which
// multiplication switches from the schoolbook loop to Karatsuba splitting.
// Both paths produce bit-for-bit identical results; the crossover is purely
// a performance choice.
const karatsubaThreshold = 40

// Mul returns the product x * y.
func (x Vector) Mul(y Vector) Vector {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return y.Mul(x)
	case n == 0:
		return nil
	case n == 1:
		z := make(Vector, m+1)
		z[m] = mulAddVWW(z[:m], x, y[0], 0)
		return z.Norm()
	}
	if n >= karatsubaThreshold {
		return karatsuba(x, y)
	}
	z := make(Vector, m+n)
	basicMul(z, x, y)
	return z.Norm()
}

// basicMul computes z = x*y by schoolbook accumulation, one scanned word of y
// at a time. z must be zeroed and have length len(x)+len(y).
func basicMul(z, x, y Vector) {
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// karatsuba multiplies by recursive splitting:
//
//	x*y = z2*B^(2k) + z1*B^k + z0
//	z0 = x0*y0
//	z2 = x1*y1
//	z1 = (x0+x1)*(y0+y1) - z0 - z2
//
// Operands shorter than half of the larger one fall back to splitting only
// the larger operand, which keeps the recursion balanced for lopsided inputs.
func karatsuba(x, y Vector) Vector {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < karatsubaThreshold {
		if len(y) == 0 {
			return nil
		}
		z := make(Vector, len(x)+len(y))
		basicMul(z, x, y)
		return z.Norm()
	}

	k := (len(x) + 1) / 2
	if len(y) <= k {
		lo := karatsuba(x[:k].Norm(), y)
		hi := karatsuba(x[k:], y)
		return lo.Add(hi.shiftWords(k))
	}

	x0, x1 := x[:k].Norm(), x[k:]
	y0, y1 := y[:k].Norm(), y[k:]
	z0 := karatsuba(x0, y0)
	z2 := karatsuba(x1, y1)
	z1 := karatsuba(x0.Add(x1), y0.Add(y1)).Sub(z0).Sub(z2)
	return z0.Add(z1.shiftWords(k)).Add(z2.shiftWords(2 * k))
}

// shiftWords returns x * B^k, that is, x with k zero words prepended.
func (x Vector) shiftWords(k int) Vector {
	if len(x) == 0 {
		return nil
	}
	z := make(Vector, len(x)+k)
	copy(z[k:], x)
	return z
}
