package digits

// Radix conversion between magnitudes and digit strings for bases 2 through
// 36. Conversion works one Word-sized chunk at a time: formatting divides by
// the largest power of the base that fits in a Word, parsing multiplies the
// accumulator by the same power, so the expensive multi-precision steps run
// once per chunk instead of once per character.

// alphabet is the canonical digit set. Output uses lowercase; parsing is
// case-insensitive.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// MinBase and MaxBase bound the supported radixes.
const (
	MinBase = 2
	MaxBase = len(alphabet)
)

// MaxPow returns b**n, the largest power of b fitting in a Word, and n.
func MaxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for max := Word(_M / uint64(b)); p <= max; {
		p *= b
		n++
	}
	return
}

// ParseDigit returns the value of an ASCII digit character in the given base,
// accepting both letter cases, or -1 if the character is not a digit of that
// base.
func ParseDigit(c byte, base int) int {
	var d int
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'z':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return -1
	}
	if d >= base {
		return -1
	}
	return d
}

// Utoa formats x in the given base with no leading zero digits; the zero
// vector formats as "0". Bases outside [MinBase, MaxBase] are a contract
// violation.
func (x Vector) Utoa(base int) []byte {
	if base < MinBase || base > MaxBase {
		panic("digits: base out of range")
	}
	if len(x) == 0 {
		return []byte{'0'}
	}

	bb, nd := MaxPow(Word(base))
	var buf []byte // digits in reverse order
	q := x
	for len(q) > 0 {
		var r Word
		q, r = q.divW(bb)
		if len(q) == 0 {
			// top chunk: no zero padding
			for r != 0 {
				buf = append(buf, alphabet[r%Word(base)])
				r /= Word(base)
			}
		} else {
			for i := 0; i < nd; i++ {
				buf = append(buf, alphabet[r%Word(base)])
				r /= Word(base)
			}
		}
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
