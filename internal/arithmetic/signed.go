package arithmetic

import "github.com/agbru/bigradix/internal/bigint"

// AddSigned returns a freshly-sized BigInt holding a + b, treating both
// operands as sign-magnitude integers (the sign-dispatch any schoolbook
// big-integer add implementation needs on top of the unsigned Add/Sub
// primitives above): same-sign operands add magnitudes directly;
// differing-sign operands subtract the smaller magnitude from the larger and
// take the larger operand's sign.
func AddSigned(a, b *bigint.BigInt, useSIMD bool) *bigint.BigInt {
	n := maxLen(a, b) + 1
	result := bigint.New(n)
	switch {
	case a.Sign() == b.Sign():
		Add(a, b, result, useSIMD)
		result.SetSign(a.Sign())
	case AbsGe(a, b):
		Sub(a, b, result, useSIMD)
		result.SetSign(a.Sign())
	default:
		Sub(b, a, result, useSIMD)
		result.SetSign(b.Sign())
	}
	if result.IsZero() {
		result.SetSign(false)
	}
	return result
}

// SubSigned returns a - b.
func SubSigned(a, b *bigint.BigInt, useSIMD bool) *bigint.BigInt {
	bNeg := bigint.Clone(b)
	bNeg.Negate()
	return AddSigned(a, bNeg, useSIMD)
}

// MulSigned returns a * b, sized per §3.3 (a.Length()+b.Length()).
func MulSigned(a, b *bigint.BigInt, useSIMD bool) *bigint.BigInt {
	result := bigint.New(a.Length() + b.Length())
	Mul(a, b, result, useSIMD)
	sign := a.Sign() != b.Sign()
	if result.IsZero() {
		sign = false
	}
	result.SetSign(sign)
	return result
}

func maxLen(a, b *bigint.BigInt) int {
	if a.Length() > b.Length() {
		return a.Length()
	}
	return b.Length()
}
