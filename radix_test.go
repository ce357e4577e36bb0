package bignum

import (
	"errors"
	"strings"
	"testing"
)

func TestParseUintBasic(t *testing.T) {
	tests := []struct {
		in   string
		base int
		want string // decimal
	}{
		{"0", 10, "0"},
		{"00000", 10, "0"},
		{"42", 10, "42"},
		{"ff", 16, "255"},
		{"FF", 16, "255"},       // parsing is case-insensitive
		{"DeAdBeEf", 16, "3735928559"},
		{"11111111", 2, "255"},
		{"z", 36, "35"},
		{"Z", 36, "35"},
		{"0042", 10, "42"},      // leading zeros accepted
		{"18446744073709551616", 10, "18446744073709551616"},
	}
	for _, tt := range tests {
		x, err := ParseUint(tt.in, tt.base)
		if err != nil {
			t.Fatalf("ParseUint(%q, %d): %v", tt.in, tt.base, err)
		}
		if got := x.String(); got != tt.want {
			t.Errorf("ParseUint(%q, %d) = %s, want %s", tt.in, tt.base, got, tt.want)
		}
	}
}

func TestParseIntSigns(t *testing.T) {
	tests := []struct {
		in   string
		base int
		want string
	}{
		{"42", 10, "42"},
		{"+42", 10, "42"},
		{"-42", 10, "-42"},
		{"-0", 10, "0"}, // negative zero normalizes to zero
		{"+0", 10, "0"},
		{"-ff", 16, "-255"},
	}
	for _, tt := range tests {
		x, err := ParseInt(tt.in, tt.base)
		if err != nil {
			t.Fatalf("ParseInt(%q, %d): %v", tt.in, tt.base, err)
		}
		if got := x.String(); got != tt.want {
			t.Errorf("ParseInt(%q, %d) = %s, want %s", tt.in, tt.base, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	var perr *ParseError

	// empty inputs
	for _, in := range []string{"", "-", "+"} {
		_, err := ParseInt(in, 10)
		if !errors.Is(err, ErrEmptyDigits) {
			t.Errorf("ParseInt(%q): err = %v, want ErrEmptyDigits", in, err)
		}
		if !errors.As(err, &perr) || perr.Pos != -1 {
			t.Errorf("ParseInt(%q): expected ParseError with Pos = -1, got %#v", in, err)
		}
	}

	// invalid digits, with position
	tests := []struct {
		in   string
		base int
		pos  int
	}{
		{"12x45", 10, 2},
		{"2", 2, 0},
		{"-12g", 16, 3},
		{"abc!", 16, 3},
		{"123 456", 10, 3},
	}
	for _, tt := range tests {
		_, err := ParseInt(tt.in, tt.base)
		if !errors.Is(err, ErrInvalidDigit) {
			t.Fatalf("ParseInt(%q, %d): err = %v, want ErrInvalidDigit", tt.in, tt.base, err)
		}
		if !errors.As(err, &perr) || perr.Pos != tt.pos {
			t.Errorf("ParseInt(%q, %d): Pos = %d, want %d", tt.in, tt.base, perr.Pos, tt.pos)
		}
	}

	// a sign marker is not accepted by the unsigned parser
	if _, err := ParseUint("-1", 10); !errors.Is(err, ErrInvalidDigit) {
		t.Errorf("ParseUint(\"-1\"): err = %v, want ErrInvalidDigit", err)
	}
}

func TestParseBaseOutOfRangePanics(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 37, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ParseUint with base %d did not panic", base)
				}
			}()
			ParseUint("1", base)
		}()
	}
}

func TestTextFormatting(t *testing.T) {
	tests := []struct {
		x    string
		base int
		want string
	}{
		{"0", 2, "0"},
		{"0", 36, "0"},
		{"255", 16, "ff"},
		{"255", 2, "11111111"},
		{"-255", 16, "-ff"},
		{"35", 36, "z"},
		{"4294967296", 16, "100000000"},
		{"-4294967296", 10, "-4294967296"},
	}
	for _, tt := range tests {
		x := mustParseInt(t, tt.x)
		if got := x.Text(tt.base); got != tt.want {
			t.Errorf("Text(%s, %d) = %q, want %q", tt.x, tt.base, got, tt.want)
		}
	}
}

func TestRadixRoundTripAllBases(t *testing.T) {
	values := []string{
		"0", "1", "-1", "2", "-2", "35", "36", "37",
		"4294967295", "4294967296", "-4294967297",
		"18446744073709551615", "18446744073709551616",
		"-123456789012345678901234567890123456789",
	}
	for base := 2; base <= 36; base++ {
		for _, v := range values {
			x := mustParseInt(t, v)
			s := x.Text(base)
			back, err := ParseInt(s, base)
			if err != nil {
				t.Fatalf("base %d: ParseInt(Text(%s)) failed: %v", base, v, err)
			}
			if !back.Equal(x) {
				t.Errorf("base %d: round trip of %s = %s via %q", base, v, back, s)
			}
			// round trip must also survive case folding
			upper, err := ParseInt(strings.ToUpper(s), base)
			if err != nil || !upper.Equal(x) {
				t.Errorf("base %d: case-folded round trip of %s failed (%v)", base, v, err)
			}
		}
	}
}

func TestTextNoLeadingZeros(t *testing.T) {
	x, _ := ParseUint("000123", 10)
	if got := x.Text(10); got != "123" {
		t.Errorf("formatting stripped value = %q, want \"123\"", got)
	}
	if got := (Uint{}).Text(7); got != "0" {
		t.Errorf("zero in base 7 = %q, want \"0\"", got)
	}
}
