package arithmetic

import (
	apperrors "github.com/agbru/bigradix/internal/errors"
	"github.com/agbru/bigradix/internal/bigint"
)

// DivSmall divides a's magnitude by the small positive divisor, writing the
// quotient into quotient (same length as a) and returning the remainder.
// divisor must satisfy 0 < divisor <= 128, the cap §3.3 places on |base|.
//
// It implements restoring binary long division: walk a's bits from most to
// least significant, shifting each into a running remainder register and
// subtracting divisor back out whenever the remainder grows large enough to
// hold it, recording a 1 quotient bit exactly when that subtraction fires.
// This is the same bit-serial shape internal/radix's Double-Dabble digit
// extraction uses, just with carry/borrow arithmetic instead of byte-cell
// bookkeeping, which is why it has no SIMD tier: there is no coarser unit of
// work to batch when every step depends on the previous one's remainder.
func DivSmall(a *bigint.BigInt, divisor uint8) (quotient *bigint.BigInt, remainder uint8) {
	if divisor == 0 {
		panic(apperrors.DivisionByZeroError{Operation: "arithmetic.DivSmall"})
	}
	n := a.Length()
	quotient = bigint.New(n)
	var rem uint16
	for byteIdx := n - 1; byteIdx >= 0; byteIdx-- {
		v := a.GetByte(byteIdx)
		var qByte byte
		for bit := 7; bit >= 0; bit-- {
			rem = rem<<1 | uint16((v>>uint(bit))&1)
			qByte <<= 1
			if rem >= uint16(divisor) {
				rem -= uint16(divisor)
				qByte |= 1
			}
		}
		quotient.SetByte(byteIdx, qByte)
	}
	return quotient, uint8(rem)
}
