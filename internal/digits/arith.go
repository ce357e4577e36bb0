// Word-by-word primitives underlying the Vector operations. All of them
// operate on equal-length slices and propagate the carry or borrow out of the
// high end. Digits are 32 bits wide, so a uint64 accumulator covers every
// intermediate product and carry without overflow.

package digits

// addVV computes z = x + y and returns the carry, with len(z) == len(x) == len(y).
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		t := uint64(x[i]) + uint64(y[i]) + uint64(c)
		z[i] = Word(t)
		c = Word(t >> _W)
	}
	return
}

// subVV computes z = x - y and returns the borrow, with len(z) == len(x) == len(y).
func subVV(z, x, y []Word) (b Word) {
	for i := range z {
		t := uint64(x[i]) - uint64(y[i]) - uint64(b)
		z[i] = Word(t)
		b = Word(t>>_W) & 1
	}
	return
}

// addVW computes z = x + y for a single-word addend and returns the carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		t := uint64(x[i]) + uint64(c)
		z[i] = Word(t)
		c = Word(t >> _W)
	}
	return
}

// subVW computes z = x - y for a single-word subtrahend and returns the borrow.
func subVW(z, x []Word, y Word) (b Word) {
	b = y
	for i := range z {
		t := uint64(x[i]) - uint64(b)
		z[i] = Word(t)
		b = Word(t>>_W) & 1
	}
	return
}

// shlVU computes z = x << s with 0 <= s < _W and returns the bits shifted out
// of the high end, with len(z) == len(x).
func shlVU(z, x []Word, s uint) (c Word) {
	if len(z) == 0 {
		return
	}
	if s == 0 {
		copy(z, x)
		return
	}
	ŝ := _W - s
	c = x[len(z)-1] >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return
}

// shrVU computes z = x >> s with 0 <= s < _W and returns the bits shifted out
// of the low end, with len(z) == len(x).
func shrVU(z, x []Word, s uint) (c Word) {
	if len(z) == 0 {
		return
	}
	if s == 0 {
		copy(z, x)
		return
	}
	ŝ := _W - s
	c = x[0] << ŝ
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return
}

// mulAddVWW computes z = x*y + r and returns the carry word.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		t := uint64(x[i])*uint64(y) + uint64(c)
		z[i] = Word(t)
		c = Word(t >> _W)
	}
	return
}

// addMulVVW computes z += x*y and returns the carry word.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		t := uint64(x[i])*uint64(y) + uint64(z[i]) + uint64(c)
		z[i] = Word(t)
		c = Word(t >> _W)
	}
	return
}

// subMulVVW computes z -= x*y and returns the borrow word.
func subMulVVW(z, x []Word, y Word) (b Word) {
	for i := range z {
		p := uint64(x[i])*uint64(y) + uint64(b)
		t := uint64(z[i]) - (p & _M)
		z[i] = Word(t)
		b = Word(p>>_W) + Word(t>>_W)&1
	}
	return
}

// divWVW computes z = (xn*B + x) / y and returns the remainder, with
// len(z) == len(x). The divisor y must be nonzero.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		t := uint64(r)<<_W | uint64(x[i])
		z[i] = Word(t / uint64(y))
		r = Word(t % uint64(y))
	}
	return
}
