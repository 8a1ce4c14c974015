// Package radix implements RadixCodec: the digit alphabet, byte→digit
// lookup table, and the two binary<->digit-string conversions — Parse
// (digit string to BigInt) and the positive- and negative-radix projections
// ToBasePos/ToBaseNeg (BigInt to digit string).
package radix

import apperrors "github.com/agbru/bigradix/internal/errors"

// Alphabet maps single-byte digit characters to digit values 0..len(chars)-1
// and back, via a 256-entry lookup table keyed by byte value.
type Alphabet struct {
	chars []byte
	lut   [256]int16
}

// NewAlphabet builds an Alphabet from its ordered digit characters (index i
// is the character for digit value i). It requires at least 2 distinct
// single-byte characters; duplicate or empty alphabets are a precondition
// violation — the CLI's validation layer is expected to have already
// rejected those before the core ever sees them.
func NewAlphabet(chars []byte) *Alphabet {
	if len(chars) < 2 {
		panic(apperrors.NewPreconditionError("radix.NewAlphabet: alphabet needs at least 2 characters, got %d", len(chars)))
	}
	a := &Alphabet{chars: append([]byte(nil), chars...)}
	for i := range a.lut {
		a.lut[i] = -1
	}
	for i, c := range a.chars {
		if a.lut[c] != -1 {
			panic(apperrors.NewPreconditionError("radix.NewAlphabet: duplicate character %q", c))
		}
		a.lut[c] = int16(i)
	}
	return a
}

// Base returns the number of digit values the alphabet encodes.
func (a *Alphabet) Base() int {
	return len(a.chars)
}

// Digit returns the digit value for the given byte, and whether it is a
// recognized digit character in this alphabet.
func (a *Alphabet) Digit(b byte) (int, bool) {
	v := a.lut[b]
	return int(v), v >= 0
}

// Char returns the digit character for the given digit value.
func (a *Alphabet) Char(digit int) byte {
	if digit < 0 || digit >= len(a.chars) {
		panic(apperrors.NewPreconditionError("radix.Alphabet.Char: digit %d out of range [0,%d)", digit, len(a.chars)))
	}
	return a.chars[digit]
}
