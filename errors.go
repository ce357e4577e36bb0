package bignum

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by the division, modulo, and modular
// arithmetic operations when the divisor or modulus is zero.
var ErrDivisionByZero = errors.New("bignum: division by zero")

// ErrEmptyDigits is the cause reported by a ParseError when the input
// contains no digit characters after the optional sign.
var ErrEmptyDigits = errors.New("bignum: empty digit string")

// ErrInvalidDigit is the cause reported by a ParseError when the input
// contains a character outside the alphabet of the requested base.
var ErrInvalidDigit = errors.New("bignum: invalid digit")

// A ParseError describes a digit string that could not be parsed in the
// requested base. Pos is the byte offset of the offending character, or -1
// when the digit portion is empty.
type ParseError struct {
	Input string
	Base  int
	Pos   int
	Err   error
}

// Error returns the error message.
func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("bignum: parsing %q (base %d): empty digit string", e.Input, e.Base)
	}
	return fmt.Sprintf("bignum: parsing %q (base %d): invalid digit %q at offset %d",
		e.Input, e.Base, e.Input[e.Pos], e.Pos)
}

// Unwrap returns the underlying cause, one of ErrEmptyDigits or
// ErrInvalidDigit.
func (e *ParseError) Unwrap() error { return e.Err }

// A DecodeError describes malformed wire-format input. Decoding failures
// never modify the destination value.
type DecodeError struct {
	Offset int64 // byte offset into the stream where decoding failed
	Msg    string
}

// Error returns the error message.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("bignum: decode error at offset %d: %s", e.Offset, e.Msg)
}
