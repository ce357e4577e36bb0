package bignum

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genUint generates arbitrary Uint values with a handful of words, biased
// toward short magnitudes so edge cases around zero and one word stay hot.
func genUint() gopter.Gen {
	return gen.SliceOf(gen.UInt32()).Map(func(words []uint32) Uint {
		if len(words) > 8 {
			words = words[:8]
		}
		return NewUintFromWords(words)
	})
}

// genInt generates arbitrary Int values, both signs.
func genInt() gopter.Gen {
	return gopter.CombineGens(gen.Bool(), genUint()).Map(func(vals []interface{}) Int {
		n := NewIntFromUint(vals[1].(Uint))
		if vals[0].(bool) {
			n = n.Neg()
		}
		return n
	})
}

func newProperties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestRingLaws_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("unsigned addition commutes", prop.ForAll(
		func(a, b Uint) bool { return a.Add(b).Equal(b.Add(a)) },
		genUint(), genUint(),
	))
	properties.Property("signed addition commutes", prop.ForAll(
		func(a, b Int) bool { return a.Add(b).Equal(b.Add(a)) },
		genInt(), genInt(),
	))
	properties.Property("unsigned addition associates", prop.ForAll(
		func(a, b, c Uint) bool { return a.Add(b).Add(c).Equal(a.Add(b.Add(c))) },
		genUint(), genUint(), genUint(),
	))
	properties.Property("signed addition associates", prop.ForAll(
		func(a, b, c Int) bool { return a.Add(b).Add(c).Equal(a.Add(b.Add(c))) },
		genInt(), genInt(), genInt(),
	))
	properties.Property("zero is the additive identity", prop.ForAll(
		func(a Int) bool { return a.Add(Int{}).Equal(a) },
		genInt(),
	))
	properties.Property("unsigned multiplication commutes", prop.ForAll(
		func(a, b Uint) bool { return a.Mul(b).Equal(b.Mul(a)) },
		genUint(), genUint(),
	))
	properties.Property("signed multiplication commutes", prop.ForAll(
		func(a, b Int) bool { return a.Mul(b).Equal(b.Mul(a)) },
		genInt(), genInt(),
	))
	properties.Property("unsigned multiplication associates", prop.ForAll(
		func(a, b, c Uint) bool { return a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))) },
		genUint(), genUint(), genUint(),
	))
	properties.Property("one is the multiplicative identity", prop.ForAll(
		func(a Int) bool { return a.Mul(NewInt(1)).Equal(a) },
		genInt(),
	))
	properties.Property("multiplication by zero annihilates", prop.ForAll(
		func(a Int) bool { return a.Mul(Int{}).IsZero() },
		genInt(),
	))
	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c Int) bool {
			return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c)))
		},
		genInt(), genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func TestComparison_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("equality is reflexive", prop.ForAll(
		func(a Int) bool { return a.Equal(a) },
		genInt(),
	))
	properties.Property("exactly one of <, =, > holds (unsigned)", prop.ForAll(
		func(a, b Uint) bool {
			lt := a.Cmp(b) < 0
			eq := a.Cmp(b) == 0
			gt := a.Cmp(b) > 0
			count := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					count++
				}
			}
			return count == 1 && eq == b.Equal(a)
		},
		genUint(), genUint(),
	))
	properties.Property("exactly one of <, =, > holds (signed)", prop.ForAll(
		func(a, b Int) bool {
			lt := a.Cmp(b) < 0
			eq := a.Cmp(b) == 0
			gt := a.Cmp(b) > 0
			count := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					count++
				}
			}
			return count == 1 && gt == (b.Cmp(a) < 0)
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func TestSubtraction_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("unsigned subtraction inverts addition", prop.ForAll(
		func(a, b Uint) bool {
			// order the operands so the precondition holds
			if a.Cmp(b) < 0 {
				a, b = b, a
			}
			return a.Sub(b).Add(b).Equal(a)
		},
		genUint(), genUint(),
	))
	properties.Property("signed subtraction inverts addition", prop.ForAll(
		func(a, b Int) bool { return a.Sub(b).Add(b).Equal(a) },
		genInt(), genInt(),
	))
	properties.Property("a - a is zero", prop.ForAll(
		func(a Int) bool { return a.Sub(a).IsZero() },
		genInt(),
	))

	properties.TestingRun(t)
}

func TestDivision_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("truncating division identity and remainder range", prop.ForAll(
		func(a, b Int) bool {
			if b.IsZero() {
				return true
			}
			q, r, err := a.QuoRem(b)
			if err != nil {
				return false
			}
			if !q.Mul(b).Add(r).Equal(a) {
				return false
			}
			// |r| < |b|, sign of r matches the dividend (or r is zero)
			if r.Abs().Cmp(b.Abs()) >= 0 {
				return false
			}
			return r.IsZero() || r.Sign() == a.Sign()
		},
		genInt(), genInt(),
	))
	properties.Property("floor division identity and modulus sign", prop.ForAll(
		func(a, b Int) bool {
			if b.IsZero() {
				return true
			}
			q, m, err := a.DivModFloor(b)
			if err != nil {
				return false
			}
			if !q.Mul(b).Add(m).Equal(a) {
				return false
			}
			if m.Abs().Cmp(b.Abs()) >= 0 {
				return false
			}
			return m.IsZero() || m.Sign() == b.Sign()
		},
		genInt(), genInt(),
	))
	properties.Property("native truncating division parity", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				return true
			}
			q, r, err := NewInt(a).QuoRem(NewInt(b))
			if err != nil {
				return false
			}
			qv, _ := q.Int64()
			rv, _ := r.Int64()
			return qv == a/b && rv == a%b
		},
		gen.Int64(), gen.Int64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}

func TestShift_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("left shift multiplies by a power of two", prop.ForAll(
		func(a Uint, s uint8) bool {
			k := uint(s % 96)
			return a.Lsh(k).Equal(a.Mul(NewUint(2).Pow(k)))
		},
		genUint(), gen.UInt8(),
	))
	properties.Property("unsigned right shift matches the native shift", prop.ForAll(
		func(v uint64, s uint8) bool {
			k := uint(s % 64)
			got, ok := NewUint(v).Rsh(k).Uint64()
			return ok && got == v>>k
		},
		gen.UInt64(), gen.UInt8(),
	))
	properties.Property("signed right shift matches the native arithmetic shift", prop.ForAll(
		func(v int64, s uint8) bool {
			k := uint(s % 64)
			got, ok := NewInt(v).Rsh(k).Int64()
			return ok && got == v>>k
		},
		gen.Int64(), gen.UInt8(),
	))
	properties.Property("right shift after left shift is the identity", prop.ForAll(
		func(a Int, s uint8) bool {
			k := uint(s)
			return a.Lsh(k).Rsh(k).Equal(a)
		},
		genInt(), gen.UInt8(),
	))

	properties.TestingRun(t)
}

func TestPowAndRoots_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("pow 0 is one, pow 1 is the identity", prop.ForAll(
		func(a Uint) bool {
			return a.Pow(0).IsOne() && a.Pow(1).Equal(a)
		},
		genUint(),
	))
	properties.Property("sqrt bounds", prop.ForAll(
		func(a Uint) bool {
			r := a.Sqrt()
			r1 := r.Add(NewUint(1))
			return r.Mul(r).Cmp(a) <= 0 && r1.Mul(r1).Cmp(a) > 0
		},
		genUint(),
	))
	properties.Property("cbrt of a cube recovers the operand", prop.ForAll(
		func(a Int) bool {
			return a.Mul(a).Mul(a).Cbrt().Equal(a)
		},
		genInt(),
	))

	properties.TestingRun(t)
}

func TestRadixRoundTrip_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("parse inverts format in every base", prop.ForAll(
		func(a Int, base uint8) bool {
			b := int(base%35) + 2
			back, err := ParseInt(a.Text(b), b)
			return err == nil && back.Equal(a)
		},
		genInt(), gen.UInt8(),
	))

	properties.TestingRun(t)
}

func TestModular_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("modpow matches pow followed by floor reduction", prop.ForAll(
		func(base, modulus Int, exp uint8) bool {
			if modulus.IsZero() {
				return true
			}
			e := uint(exp % 24)
			got, err := base.ModPow(NewInt(int64(e)), modulus)
			if err != nil {
				return false
			}
			want, err := base.Pow(e).ModFloor(modulus)
			if err != nil {
				return false
			}
			return got.Equal(want)
		},
		genInt(), genInt(), gen.UInt8(),
	))
	properties.Property("modular inverse exists exactly when gcd is one", prop.ForAll(
		func(v, m Int) bool {
			if m.IsZero() {
				return true
			}
			inv, ok, err := v.ModInverse(m)
			if err != nil {
				return false
			}
			coprime := v.GCD(m).IsOne()
			if ok != coprime {
				return false
			}
			if !ok {
				return true
			}
			// canonical range for the modulus sign
			if m.Sign() > 0 && (inv.Sign() < 0 || inv.Cmp(m) >= 0) {
				return false
			}
			if m.Sign() < 0 && (inv.Sign() > 0 || inv.Cmp(m) <= 0) {
				return false
			}
			// and the defining product law
			prod, _ := v.Mul(inv).ModFloor(m)
			one, _ := NewInt(1).ModFloor(m)
			return prod.Equal(one)
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func TestConversion_PropertyBased(t *testing.T) {
	properties := newProperties(t)

	properties.Property("int64 values round trip", prop.ForAll(
		func(v int64) bool {
			got, ok := NewInt(v).Int64()
			return ok && got == v
		},
		gen.Int64(),
	))
	properties.Property("float conversion equals the native cast", prop.ForAll(
		func(v int64) bool {
			n := NewInt(v)
			return n.Float64() == float64(v) && n.Float32() == float32(v)
		},
		gen.Int64(),
	))
	properties.Property("wire codec round trips", prop.ForAll(
		func(a Int) bool {
			data, err := a.MarshalBinary()
			if err != nil {
				return false
			}
			var back Int
			if err := back.UnmarshalBinary(data); err != nil {
				return false
			}
			return back.Equal(a)
		},
		genInt(),
	))

	properties.TestingRun(t)
}
