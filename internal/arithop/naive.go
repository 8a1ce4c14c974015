package arithop

import (
	"strings"

	apperrors "github.com/agbru/bigradix/internal/errors"
	"github.com/agbru/bigradix/internal/radix"
)

// NaiveCompute is the cross-validation oracle: it computes the same
// z1 <op> z2 in the same base/alphabet as Compute, but
// through an entirely independent path — grade-school decimal digit-array
// arithmetic (decNum below), never touching internal/bigint's binary byte
// buffers, internal/arithmetic's word-tiered adders, or internal/radix's
// Double-Dabble projection. Where Compute converts to and from binary,
// NaiveCompute works in decimal throughout: parsing folds digits in via
// repeated small-multiply-and-add on a decimal digit array, and projecting
// back out divides that decimal array down by the target base one digit at
// a time. Two structurally unrelated implementations agreeing is the
// strongest evidence either one is correct.
func NaiveCompute(base int, alphabet []byte, z1, z2 string, op byte) (string, error) {
	alph := radix.NewAlphabet(alphabet)
	posBase := base
	if posBase < 0 {
		posBase = -posBase
	}
	if posBase < 2 || posBase > radix.MaxBase || alph.Base() != posBase {
		return "", apperrors.NewConfigError("naive oracle: base/alphabet mismatch")
	}

	a, err := decParse(z1, base, alph)
	if err != nil {
		return "", apperrors.WrapError(err, "naive oracle: parsing first operand %q", z1)
	}
	b, err := decParse(z2, base, alph)
	if err != nil {
		return "", apperrors.WrapError(err, "naive oracle: parsing second operand %q", z2)
	}

	var result decNum
	switch op {
	case Add:
		result = decAdd(a, b)
	case Sub:
		result = decAdd(a, decNegate(b))
	case Mul:
		result = decMul(a, b)
	default:
		return "", apperrors.NewConfigError("unsupported operator %q: must be one of +, -, *", op)
	}

	if base > 0 {
		return decToBasePos(result, base, alph), nil
	}
	return decToBaseNeg(result, base, alph), nil
}

// decNum is a sign-magnitude decimal integer: digits is big-endian (most
// significant first) with no leading zero digits except the single-digit
// zero value.
type decNum struct {
	digits []uint8
	neg    bool
}

func decZero() decNum { return decNum{digits: []uint8{0}} }

func (d decNum) isZero() bool { return len(d.digits) == 1 && d.digits[0] == 0 }

func decNegate(d decNum) decNum {
	if d.isZero() {
		return d
	}
	return decNum{digits: d.digits, neg: !d.neg}
}

// decParse folds a digit string into a decNum via Horner evaluation:
// acc = acc*base + digit for each character, left to right. base may be
// negative; multiplying by a negative small value and re-normalizing sign
// at each step keeps the running total correct throughout.
func decParse(s string, base int, alph *radix.Alphabet) (decNum, error) {
	if len(s) == 0 {
		return decNum{}, apperrors.NewConfigError("empty operand")
	}
	neg := false
	if s[0] == '-' {
		if base < 0 {
			return decNum{}, apperrors.NewConfigError("leading '-' is not valid for a negative base")
		}
		neg = true
		s = s[1:]
		if len(s) == 0 {
			return decNum{}, apperrors.NewConfigError("empty operand after '-'")
		}
	}

	acc := decZero()
	for i := 0; i < len(s); i++ {
		digit, ok := alph.Digit(s[i])
		if !ok {
			return decNum{}, apperrors.NewConfigError("byte %q at position %d is not in the alphabet", s[i], i)
		}
		acc = decMulSmall(acc, base)
		acc = decAddSmall(acc, digit)
	}
	if base > 0 {
		acc.neg = neg && !acc.isZero()
	}
	return acc, nil
}

// decToBasePos repeatedly divides by base, collecting remainders least
// significant first, then reverses them into a digit string.
func decToBasePos(d decNum, base int, alph *radix.Alphabet) string {
	var out []byte
	mag := decNum{digits: d.digits}
	for !mag.isZero() {
		q, r := decDivModSmall(mag, base)
		out = append(out, alph.Char(r))
		mag = q
	}
	if len(out) == 0 {
		out = append(out, alph.Char(0))
	}
	var sb strings.Builder
	if d.neg && !d.isZero() {
		sb.WriteByte('-')
	}
	for i := len(out) - 1; i >= 0; i-- {
		sb.WriteByte(out[i])
	}
	return sb.String()
}

// decToBaseNeg mirrors internal/radix.Codec.ToBaseNeg's repeated Euclidean
// division, operating on decNum instead of a binary BigInt.
func decToBaseNeg(d decNum, base int, alph *radix.Alphabet) string {
	posBase := -base
	n := d
	var digits []int
	for !n.isZero() {
		qMag, rem := decDivModSmall(decNum{digits: n.digits}, posBase)
		var r int
		var qNeg bool
		if !n.neg {
			r = rem
			qNeg = true
		} else if rem == 0 {
			r = 0
			qNeg = false
		} else {
			r = posBase - rem
			qMag = decAddSmall(qMag, 1)
			qNeg = false
		}
		digits = append(digits, r)
		qMag.neg = qNeg && !qMag.isZero()
		n = qMag
	}
	if len(digits) == 0 {
		digits = []int{0}
	}
	var sb strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(alph.Char(digits[i]))
	}
	return sb.String()
}

// --- decimal magnitude/sign arithmetic -------------------------------------

func decNormalize(digits []uint8) []uint8 {
	i := 0
	for i < len(digits)-1 && digits[i] == 0 {
		i++
	}
	return digits[i:]
}

func magCompare(a, b []uint8) int {
	a, b = decNormalize(a), decNormalize(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func magAdd(a, b []uint8) []uint8 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint8, n+1)
	carry := 0
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(a) {
			av = int(a[len(a)-1-i])
		}
		if i < len(b) {
			bv = int(b[len(b)-1-i])
		}
		sum := av + bv + carry
		out[n-i] = uint8(sum % 10)
		carry = sum / 10
	}
	out[0] = uint8(carry)
	return decNormalize(out)
}

// magSub computes a-b assuming a >= b.
func magSub(a, b []uint8) []uint8 {
	out := make([]uint8, len(a))
	borrow := 0
	for i := 0; i < len(a); i++ {
		av := int(a[len(a)-1-i])
		var bv int
		if i < len(b) {
			bv = int(b[len(b)-1-i])
		}
		d := av - bv - borrow
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[len(a)-1-i] = uint8(d)
	}
	return decNormalize(out)
}

func magMulSmall(a []uint8, m int) []uint8 {
	if m == 0 {
		return []uint8{0}
	}
	out := make([]uint8, len(a)+4)
	carry := 0
	for i := 0; i < len(a); i++ {
		prod := int(a[len(a)-1-i])*m + carry
		out[len(out)-1-i] = uint8(prod % 10)
		carry = prod / 10
	}
	for i := len(a); carry != 0 && i < len(out); i++ {
		out[len(out)-1-i] = uint8(carry % 10)
		carry /= 10
	}
	return decNormalize(out)
}

// magMulFull multiplies two big-endian digit magnitudes via
// grade-school long multiplication: out[i+j] accumulates a[i]*b[j], counting
// i and j from the least-significant end, then a single carry pass resolves
// the accumulated column sums (each column can exceed 9 before carrying).
func magMulFull(a, b []uint8) []uint8 {
	out := make([]int, len(a)+len(b))
	la, lb := len(a), len(b)
	for i := 0; i < la; i++ {
		ai := int(a[la-1-i])
		if ai == 0 {
			continue
		}
		for j := 0; j < lb; j++ {
			bj := int(b[lb-1-j])
			out[i+j] += ai * bj
		}
	}
	carry := 0
	digits := make([]uint8, len(out)+1)
	for i := 0; i < len(out); i++ {
		v := out[i] + carry
		digits[i] = uint8(v % 10)
		carry = v / 10
	}
	idx := len(out)
	for carry != 0 {
		digits[idx] = uint8(carry % 10)
		carry /= 10
		idx++
	}
	// digits is little-endian here; reverse into big-endian.
	rev := make([]uint8, len(digits))
	for i, v := range digits {
		rev[len(digits)-1-i] = v
	}
	return decNormalize(rev)
}

func magDivModSmall(a []uint8, m int) ([]uint8, int) {
	out := make([]uint8, len(a))
	rem := 0
	for i := 0; i < len(a); i++ {
		cur := rem*10 + int(a[i])
		out[i] = uint8(cur / m)
		rem = cur % m
	}
	return decNormalize(out), rem
}

func decAdd(a, b decNum) decNum {
	switch {
	case a.neg == b.neg:
		return decNum{digits: magAdd(a.digits, b.digits), neg: a.neg && !allZero(magAdd(a.digits, b.digits))}
	case magCompare(a.digits, b.digits) >= 0:
		d := magSub(a.digits, b.digits)
		return decNum{digits: d, neg: a.neg && !allZero(d)}
	default:
		d := magSub(b.digits, a.digits)
		return decNum{digits: d, neg: b.neg && !allZero(d)}
	}
}

func decAddSmall(a decNum, v int) decNum {
	if v == 0 {
		return a
	}
	return decAdd(a, decNum{digits: magMulSmall([]uint8{1}, v)})
}

func decMulSmall(a decNum, m int) decNum {
	posM := m
	neg := m < 0
	if neg {
		posM = -m
	}
	d := magMulSmall(a.digits, posM)
	return decNum{digits: d, neg: (a.neg != neg) && !allZero(d)}
}

func decMul(a, b decNum) decNum {
	d := magMulFull(a.digits, b.digits)
	return decNum{digits: d, neg: (a.neg != b.neg) && !allZero(d)}
}

func decDivModSmall(a decNum, m int) (decNum, int) {
	q, r := magDivModSmall(a.digits, m)
	return decNum{digits: q, neg: a.neg && !allZero(q)}, r
}

func allZero(d []uint8) bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}
