package bignum

import "github.com/agbru/bignum/internal/digits"

// ParseUint parses an unsigned digit string in the given base, 2 through 36.
// Digits above 9 are letters in either case. No sign marker is accepted. A
// base outside [2, 36] is a contract violation and panics; malformed input
// returns a *ParseError.
func ParseUint(s string, base int) (Uint, error) {
	mag, err := parseMagnitude(s, s, base)
	if err != nil {
		return Uint{}, err
	}
	return Uint{mag: mag}, nil
}

// ParseInt parses a signed digit string in the given base, 2 through 36. An
// optional leading '+' or '-' is followed by at least one digit. A base
// outside [2, 36] is a contract violation and panics; malformed input
// returns a *ParseError.
func ParseInt(s string, base int) (Int, error) {
	digitsPart := s
	neg := false
	if len(digitsPart) > 0 && (digitsPart[0] == '+' || digitsPart[0] == '-') {
		neg = digitsPart[0] == '-'
		digitsPart = digitsPart[1:]
	}
	mag, err := parseMagnitude(s, digitsPart, base)
	if err != nil {
		return Int{}, err
	}
	return makeInt(neg, mag), nil
}

// parseMagnitude converts the digit portion of an input to a magnitude,
// accumulating one full Word chunk per multi-precision step. input is the
// original string, used only for error reporting.
func parseMagnitude(input, s string, base int) (digits.Vector, error) {
	if base < digits.MinBase || base > digits.MaxBase {
		panic("bignum: base out of range")
	}
	if len(s) == 0 {
		return nil, &ParseError{Input: input, Base: base, Pos: -1, Err: ErrEmptyDigits}
	}

	bb, nd := digits.MaxPow(digits.Word(base))
	var mag digits.Vector
	var chunk digits.Word
	pending := 0 // digits accumulated in chunk
	for i := 0; i < len(s); i++ {
		d := digits.ParseDigit(s[i], base)
		if d < 0 {
			pos := len(input) - len(s) + i
			return nil, &ParseError{Input: input, Base: base, Pos: pos, Err: ErrInvalidDigit}
		}
		chunk = chunk*digits.Word(base) + digits.Word(d)
		pending++
		if pending == nd {
			mag = mag.MulAddWord(bb, chunk)
			chunk, pending = 0, 0
		}
	}
	if pending > 0 {
		pow := digits.Word(base)
		for i := 1; i < pending; i++ {
			pow *= digits.Word(base)
		}
		mag = mag.MulAddWord(pow, chunk)
	}
	return mag, nil
}

// Text returns the representation of x in the given base, 2 through 36,
// with no leading zero digits; zero formats as "0". Digits above 9 use
// lowercase letters. A base outside [2, 36] is a contract violation and
// panics.
func (x Uint) Text(base int) string {
	return string(x.mag.Utoa(base))
}

// Text returns the representation of x in the given base, 2 through 36,
// with a leading '-' for negative values. A base outside [2, 36] is a
// contract violation and panics.
func (x Int) Text(base int) string {
	s := x.mag.Utoa(base)
	if x.neg {
		return "-" + string(s)
	}
	return string(s)
}
