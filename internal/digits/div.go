package digits

import "math/bits"

// DivMod returns the quotient and remainder of x / y with 0 <= r < y.
// A zero divisor is a contract violation; the sign-aware callers report
// division by zero as an error before reaching this point.
func (x Vector) DivMod(y Vector) (q, r Vector) {
	if len(y) == 0 {
		panic("digits: division by zero")
	}
	if x.Cmp(y) < 0 {
		return nil, x
	}
	if len(y) == 1 {
		q, rw := x.divW(y[0])
		if rw != 0 {
			r = Vector{rw}
		}
		return q, r
	}
	return x.divKnuth(y)
}

// divW returns the quotient and remainder of x divided by a single nonzero word.
func (x Vector) divW(w Word) (Vector, Word) {
	z := make(Vector, len(x))
	r := divWVW(z, 0, x, w)
	return z.Norm(), r
}

// divKnuth implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) for a
// multi-word divisor, with len(x) >= len(y) >= 2.
//
// Step D1 shifts both operands left so the top divisor word has its high bit
// set; that bounds the quotient-digit estimate within one of the true value
// and keeps the correction loop below constant-time. The remainder is shifted
// back at the end.
func (x Vector) divKnuth(y Vector) (q, r Vector) {
	n := len(y)
	m := len(x) - n

	shift := uint(bits.LeadingZeros32(uint32(y[n-1])))
	v := make(Vector, n)
	shlVU(v, y, shift)
	u := make(Vector, len(x)+1)
	u[len(x)] = shlVU(u[:len(x)], x, shift)

	q = make(Vector, m+1)
	vn1 := uint64(v[n-1])
	vn2 := uint64(v[n-2])
	for j := m; j >= 0; j-- {
		// D3: estimate the quotient digit from the top two words of the
		// running dividend, then refine against the third word. After the
		// refinement qhat is at most one too large.
		ujn := uint64(u[j+n])<<_W | uint64(u[j+n-1])
		qhat := ujn / vn1
		rhat := ujn - qhat*vn1
		for qhat >= _B || qhat*vn2 > rhat<<_W|uint64(u[j+n-2]) {
			qhat--
			rhat += vn1
			if rhat >= _B {
				break
			}
		}

		// D4: multiply and subtract.
		b := subMulVVW(u[j:j+n], v, Word(qhat))
		ujnw := u[j+n]
		u[j+n] = ujnw - b

		// D6: the rare one-off over-estimate; add the divisor back.
		if ujnw < b {
			u[j+n] += addVV(u[j:j+n], u[j:j+n], v)
			qhat--
		}
		q[j] = Word(qhat)
	}

	r = make(Vector, n)
	shrVU(r, u[:n], shift)
	return q.Norm(), r.Norm()
}
