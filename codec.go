package bignum

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/agbru/bignum/internal/digits"
)

// Wire format. The format is stable and must never change, so that
// serialized values remain exchangeable across versions regardless of the
// internal representation.
//
// An unsigned value is encoded as its canonical (trailing-zero-free) 32-bit
// words, least significant first:
//
//	uvarint  element-count hint
//	per word: 0x01 tag, then the word as 4 little-endian bytes
//	0x00     end of sequence
//
// Zero is the empty sequence. The leading count is a pre-allocation hint
// only: the sequence is delimited by its end tag, a decoder must accept a
// correctly terminated sequence whose actual length differs from the hint,
// and a hostile hint must not drive allocation.
//
// A signed value is a single sign byte - 0x00, 0x01, or 0xff for -1 - or
// any other value is rejected - followed by the magnitude encoded as above.

// wire framing constants
const (
	wireElem = 0x01
	wireEnd  = 0x00

	wireNegative = 0xff
	wireZero     = 0x00
	wirePositive = 0x01

	// maxPreallocWords caps the slice capacity reserved from the decoder's
	// count hint. Sequences longer than this simply grow by appending.
	maxPreallocWords = 256
)

// Encode writes the wire encoding of x to w.
func (x Uint) Encode(w io.Writer) error {
	var hint [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(hint[:], uint64(len(x.mag)))
	if _, err := w.Write(hint[:n]); err != nil {
		return err
	}
	var elem [5]byte
	elem[0] = wireElem
	for _, word := range x.mag {
		binary.LittleEndian.PutUint32(elem[1:], uint32(word))
		if _, err := w.Write(elem[:]); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{wireEnd})
	return err
}

// Decode reads a wire-encoded unsigned value from r, replacing x. On error
// x is left unchanged.
func (x *Uint) Decode(r io.Reader) error {
	d := &wireDecoder{r: r}
	mag, err := d.magnitude()
	if err != nil {
		return err
	}
	x.mag = mag
	return nil
}

// Encode writes the wire encoding of x to w.
func (x Int) Encode(w io.Writer) error {
	sign := byte(wireZero)
	switch x.Sign() {
	case 1:
		sign = wirePositive
	case -1:
		sign = wireNegative
	}
	if _, err := w.Write([]byte{sign}); err != nil {
		return err
	}
	return x.Abs().Encode(w)
}

// Decode reads a wire-encoded signed value from r, replacing x. The decoded
// pair is normalized: a zero sign byte yields zero, and a signed zero
// magnitude collapses to zero. On error x is left unchanged.
func (x *Int) Decode(r io.Reader) error {
	d := &wireDecoder{r: r}
	sign, err := d.byte()
	if err != nil {
		return err
	}
	if sign != wireZero && sign != wirePositive && sign != wireNegative {
		return &DecodeError{Offset: 0, Msg: "invalid sign byte"}
	}
	mag, err := d.magnitude()
	if err != nil {
		return err
	}
	if sign == wireZero {
		mag = nil
	}
	*x = makeInt(sign == wireNegative, mag)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Uint) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := x.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The input must
// contain exactly one encoded value.
func (x *Uint) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var v Uint
	if err := v.Decode(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return &DecodeError{Offset: int64(len(data) - r.Len()), Msg: "trailing bytes after value"}
	}
	*x = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Int) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := x.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The input must
// contain exactly one encoded value.
func (x *Int) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var v Int
	if err := v.Decode(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return &DecodeError{Offset: int64(len(data) - r.Len()), Msg: "trailing bytes after value"}
	}
	*x = v
	return nil
}

// MarshalText implements encoding.TextMarshaler using base 10.
func (x Uint) MarshalText() ([]byte, error) {
	return []byte(x.Text(10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Uint) UnmarshalText(text []byte) error {
	v, err := ParseUint(string(text), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalText implements encoding.TextMarshaler using base 10.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.Text(10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := ParseInt(string(text), 10)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// wireDecoder reads framed values while tracking the stream offset for
// error reporting.
type wireDecoder struct {
	r   io.Reader
	off int64
}

func (d *wireDecoder) byte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, &DecodeError{Offset: d.off, Msg: "unexpected end of input"}
	}
	d.off++
	return b[0], nil
}

// ReadByte lets encoding/binary read the count hint byte by byte.
func (d *wireDecoder) ReadByte() (byte, error) { return d.byte() }

// magnitude decodes one word sequence into a normalized vector.
func (d *wireDecoder) magnitude() (digits.Vector, error) {
	hint, err := binary.ReadUvarint(d)
	if err != nil {
		if _, ok := err.(*DecodeError); ok {
			return nil, err
		}
		return nil, &DecodeError{Offset: d.off, Msg: "invalid element-count hint"}
	}
	if hint > maxPreallocWords {
		hint = maxPreallocWords
	}
	mag := make(digits.Vector, 0, hint)
	for {
		tag, err := d.byte()
		if err != nil {
			return nil, err
		}
		switch tag {
		case wireEnd:
			return mag.Norm(), nil
		case wireElem:
			var b [4]byte
			if _, err := io.ReadFull(d.r, b[:]); err != nil {
				return nil, &DecodeError{Offset: d.off, Msg: "truncated word"}
			}
			d.off += 4
			mag = append(mag, digits.Word(binary.LittleEndian.Uint32(b[:])))
		default:
			return nil, &DecodeError{Offset: d.off - 1, Msg: "invalid element tag"}
		}
	}
}
