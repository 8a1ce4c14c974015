package cli

import (
	"unicode"
	"unicode/utf8"

	apperrors "github.com/agbru/bigradix/internal/errors"
	"github.com/agbru/bigradix/internal/radix"
)

// ValidateAlphabet checks that alphabet is usable by radix.NewAlphabet
// before it ever reaches it: NewAlphabet panics on anything it doesn't
// like, and a panic is not a fit way to report a bad flag value to a user.
func ValidateAlphabet(alphabet string) error {
	if !utf8.ValidString(alphabet) {
		return apperrors.NewValidationError("alphabet", "must be valid UTF-8")
	}
	if len(alphabet) < 2 {
		return apperrors.NewValidationError("alphabet", "must have at least 2 characters, got %d", len(alphabet))
	}
	if len(alphabet) > 256 {
		return apperrors.NewValidationError("alphabet", "must have at most 256 characters, got %d", len(alphabet))
	}

	seen := make(map[byte]bool, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c >= utf8.RuneSelf {
			return apperrors.NewValidationError("alphabet", "characters must be single-byte (ASCII/Latin-1), found multi-byte sequence at position %d", i)
		}
		if !unicode.IsPrint(rune(c)) {
			return apperrors.NewValidationError("alphabet", "character %q at position %d is not printable", c, i)
		}
		if seen[c] {
			return apperrors.NewValidationError("alphabet", "character %q is duplicated", c)
		}
		seen[c] = true
	}
	return nil
}

// ValidateBase checks that base falls within a range radix.NewCodec can
// actually project into: a magnitude from 2 to radix.MaxBase, positive or
// negative.
func ValidateBase(base int) error {
	abs := base
	if abs < 0 {
		abs = -abs
	}
	if abs < 2 {
		return apperrors.NewValidationError("base", "must have magnitude at least 2, got %d", base)
	}
	if abs > radix.MaxBase {
		return apperrors.NewValidationError("base", "must have magnitude at most %d, got %d", radix.MaxBase, base)
	}
	return nil
}

// ValidateOperator checks that op is exactly one of the three supported
// arithmetic operators.
func ValidateOperator(op string) error {
	if len(op) != 1 {
		return apperrors.NewValidationError("op", "must be a single character (+, -, or *), got %q", op)
	}
	switch op[0] {
	case '+', '-', '*':
		return nil
	default:
		return apperrors.NewValidationError("op", "unsupported operator %q: expected +, -, or *", op)
	}
}

// ValidateOperand checks that an operand is non-empty and every character
// it contains is present in alphabet (plus an optional leading '-' for sign).
func ValidateOperand(name, operand, alphabet string) error {
	if operand == "" {
		return apperrors.NewValidationError(name, "must not be empty")
	}
	digits := operand
	if digits[0] == '-' {
		digits = digits[1:]
		if digits == "" {
			return apperrors.NewValidationError(name, "must have at least one digit after the sign")
		}
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if !containsByte(alphabet, c) {
			return apperrors.NewValidationError(name, "character %q at position %d is not in the alphabet %q", c, i, alphabet)
		}
	}
	return nil
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

// ValidateInputs runs every input check an invocation needs before any core
// code runs (radix.NewAlphabet panics on a short or duplicated alphabet; the
// codec returns an error for other bad input).
func ValidateInputs(base int, alphabet, z1, z2, op string) error {
	if err := ValidateAlphabet(alphabet); err != nil {
		return err
	}
	if err := ValidateBase(base); err != nil {
		return err
	}
	abs := base
	if abs < 0 {
		abs = -abs
	}
	if abs != len(alphabet) {
		return apperrors.NewValidationError("alphabet", "length %d does not match base magnitude %d", len(alphabet), abs)
	}
	if err := ValidateOperator(op); err != nil {
		return err
	}
	if err := ValidateOperand("z1", z1, alphabet); err != nil {
		return err
	}
	if err := ValidateOperand("z2", z2, alphabet); err != nil {
		return err
	}
	return nil
}
