// Package arithmetic implements BigIntArithmetic: byte-wise add, subtract,
// increment, shift, schoolbook multiply, restoring binary division, and
// magnitude comparison over internal/bigint.BigInt buffers.
//
// Every operation that admits one takes a useSIMD flag selecting between two
// code paths that must agree bit-for-bit:
//
//   - the sequential path processes one byte at a time, the way the
//     algorithm is usually described;
//   - the SIMD-tiered path (simd.go) processes 15-byte (120-bit), then
//     7-byte (56-bit) chunks before falling back to the sequential path for
//     the remainder, simulating the wide-word tiering a real SIMD backend
//     would use without depending on one.
//
// Add, Sub, Incr, the shifts and the multiplies operate on unsigned
// magnitudes and ignore BigInt.Sign; signed.go layers sign handling on top
// (AddSigned, SubSigned, MulSigned), and GeSmall reads a's sign.
package arithmetic

import (
	apperrors "github.com/agbru/bigradix/internal/errors"
	"github.com/agbru/bigradix/internal/bigint"
)

// mask56 isolates the low 56 bits (7 bytes) of a Word15.Hi limb.
const mask56 = (uint64(1) << 56) - 1

// Add computes result = a + b (unsigned magnitudes) and returns the final
// carry-out bit. result must be at least as long as the longer of a, b.
func Add(a, b, result *bigint.BigInt, useSIMD bool) byte {
	if useSIMD {
		return addSIMD(a, b, result)
	}
	return addSequential(a, b, result)
}

func addSequential(a, b, result *bigint.BigInt) byte {
	n := result.Length()
	var carry uint16
	for i := 0; i < n; i++ {
		sum := uint16(byteAt(a, i)) + uint16(byteAt(b, i)) + carry
		result.SetByte(i, byte(sum))
		carry = sum >> 8
	}
	return byte(carry)
}

// Sub computes result = a - b (unsigned magnitudes), assuming a >= b, and
// returns the final borrow-out bit (0 if a >= b as required; 1 would
// indicate the precondition was violated).
func Sub(a, b, result *bigint.BigInt, useSIMD bool) byte {
	if useSIMD {
		return subSIMD(a, b, result)
	}
	return subSequential(a, b, result)
}

func subSequential(a, b, result *bigint.BigInt) byte {
	n := result.Length()
	var borrow int16
	for i := 0; i < n; i++ {
		diff := int16(byteAt(a, i)) - int16(byteAt(b, i)) - borrow
		if diff < 0 {
			diff += 256
			borrow = 1
		} else {
			borrow = 0
		}
		result.SetByte(i, byte(diff))
	}
	return byte(borrow)
}

// Incr adds 1 to a in place and returns the carry-out bit.
func Incr(a *bigint.BigInt, useSIMD bool) byte {
	if useSIMD {
		return incrSIMD(a)
	}
	return incrSequential(a)
}

func incrSequential(a *bigint.BigInt) byte {
	carry := uint16(1)
	for i := 0; i < a.Length() && carry != 0; i++ {
		sum := uint16(a.GetByte(i)) + carry
		a.SetByte(i, byte(sum))
		carry = sum >> 8
	}
	return byte(carry)
}

// ShlBits shifts a left in place by 0-7 bits, shifting zeros in at the low
// end, and returns the bits shifted out of the top byte (right-aligned).
func ShlBits(a *bigint.BigInt, bits uint, useSIMD bool) byte {
	if bits > 7 {
		panic(apperrors.NewPreconditionError("arithmetic.ShlBits: bits %d out of range [0,7]", bits))
	}
	if bits == 0 {
		return 0
	}
	if useSIMD {
		return shlBitsSIMD(a, bits)
	}
	return shlBitsSequential(a, bits)
}

func shlBitsSequential(a *bigint.BigInt, bits uint) byte {
	var carry byte
	n := a.Length()
	for i := 0; i < n; i++ {
		v := a.GetByte(i)
		nv := (v << bits) | carry
		carry = v >> (8 - bits)
		a.SetByte(i, nv)
	}
	return carry
}

// ShlBytes shifts a left in place by a whole number of bytes (multiplying by
// 256^n), discarding bytes shifted out past the top of the buffer.
func ShlBytes(a *bigint.BigInt, n int) {
	if n < 0 {
		panic(apperrors.NewPreconditionError("arithmetic.ShlBytes: negative shift %d", n))
	}
	length := a.Length()
	if n >= length {
		a.SetZero()
		return
	}
	for i := length - 1; i >= n; i-- {
		a.SetByte(i, a.GetByte(i-n))
	}
	for i := 0; i < n; i++ {
		a.SetByte(i, 0)
	}
}

// AddSmall adds a small value (up to 32 bits) into a in place, starting at
// byte 0, and returns the final overflow carry — used by internal/radix's
// Parse to fold in one freshly-read digit after each MulSmall.
func AddSmall(a *bigint.BigInt, v uint32) uint32 {
	carry := v
	for i := 0; i < a.Length() && carry != 0; i++ {
		sum := uint32(a.GetByte(i)) + carry
		a.SetByte(i, byte(sum))
		carry = sum >> 8
	}
	return carry
}

// AbsGt reports whether the magnitude of a is strictly greater than the
// magnitude of b.
func AbsGt(a, b *bigint.BigInt) bool {
	n := a.Length()
	if b.Length() > n {
		n = b.Length()
	}
	for i := n - 1; i >= 0; i-- {
		av, bv := byteAt(a, i), byteAt(b, i)
		if av != bv {
			return av > bv
		}
	}
	return false
}

// AbsGe reports whether the magnitude of a is greater than or equal to the
// magnitude of b.
func AbsGe(a, b *bigint.BigInt) bool {
	return !AbsGt(b, a)
}

// GeSmall reports whether a, read as a signed value, is >= the given
// non-negative small value: a negative a is always less than any v, so it
// short-circuits false before ever comparing magnitudes.
func GeSmall(a *bigint.BigInt, v uint64) bool {
	if a.Sign() && !a.IsZero() {
		return false
	}
	for i := a.Length() - 1; i >= 8; i-- {
		if a.GetByte(i) != 0 {
			return true
		}
	}
	var av uint64
	for i := min(a.Length(), 8) - 1; i >= 0; i-- {
		av = av<<8 | uint64(a.GetByte(i))
	}
	return av >= v
}

// byteAt returns a's byte at i, or 0 if i is beyond a's length — used to let
// Add/Sub operate over operands of differing lengths sized per the §3.3
// buffer-sizing rules.
func byteAt(a *bigint.BigInt, i int) byte {
	if i >= a.Length() {
		return 0
	}
	return a.GetByte(i)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
