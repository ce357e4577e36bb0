package digits

// Newton iteration on integers does not converge to a fixed point: one step
// away from the true root the sequence can oscillate between r and r+1
// forever. Both root routines therefore start from an estimate known to be
// too large, iterate while the estimate strictly decreases, and stop at the
// first non-improving step, at which point the previous estimate is the
// floor root. See Brent & Zimmermann, Modern Computer Arithmetic, alg. 1.13.

var (
	vecOne   = Vector{1}
	vecTwo   = Vector{2}
	vecThree = Vector{3}
)

// Sqrt returns the floor square root of x, the largest r with r*r <= x.
func (x Vector) Sqrt() Vector {
	if x.Cmp(vecOne) <= 0 {
		return x
	}

	// 2^⌈bitLen/2⌉ >= √x, so the first step can only shrink the estimate.
	z1 := vecOne.Shl(uint(x.BitLen()+1) / 2)
	for {
		z2, _ := x.DivMod(z1)
		z2 = z2.Add(z1).Shr(1)
		if z2.Cmp(z1) >= 0 {
			return z1
		}
		z1 = z2
	}
}

// Cbrt returns the floor cube root of x, the largest r with r*r*r <= x.
func (x Vector) Cbrt() Vector {
	if x.Cmp(vecOne) <= 0 {
		return x
	}

	// 2^(⌊bitLen/3⌋+1) >= ∛x.
	z1 := vecOne.Shl(uint(x.BitLen())/3 + 1)
	for {
		t, _ := x.DivMod(z1.Mul(z1))
		z2 := z1.Mul(vecTwo).Add(t)
		z2, _ = z2.DivMod(vecThree)
		if z2.Cmp(z1) >= 0 {
			return z1
		}
		z1 = z2
	}
}
