package arithmetic

import (
	"math/bits"

	"github.com/agbru/bigradix/internal/bigint"
)

// This file holds the "SIMD-tiered" fast paths: each routine processes
// 15-byte (120-bit), then 7-byte (56-bit) chunks before falling back to a
// byte at a time for the remainder, simulating wide-word parallelism in
// software. Every routine here is required to compute the exact same result
// as its *Sequential counterpart in arithmetic.go — grouping a ripple-carry
// chain into wider limbs changes nothing about the arithmetic, only how many
// bytes are touched per step — and the package's tests assert that directly
// (the Test*SequentialAndSIMDAgree tests in arithmetic_test.go).

// buildWord15 assembles the 15-byte value at offset i from a, reading past
// a's own length as zero — mirroring arithmetic.byteAt so the SIMD tier
// tolerates operands shorter than result, exactly like the sequential path.
func buildWord15(a *bigint.BigInt, i int) bigint.Word15 {
	var lo, hi uint64
	for k := 0; k < 8; k++ {
		lo |= uint64(byteAt(a, i+k)) << (8 * uint(k))
	}
	for k := 0; k < 7; k++ {
		hi |= uint64(byteAt(a, i+8+k)) << (8 * uint(k))
	}
	return bigint.Word15{Lo: lo, Hi: hi}
}

// buildWord7 assembles the 7-byte value at offset i from a, zero-extended
// past a's length.
func buildWord7(a *bigint.BigInt, i int) uint64 {
	var w uint64
	for k := 0; k < 7; k++ {
		w |= uint64(byteAt(a, i+k)) << (8 * uint(k))
	}
	return w
}

func addSIMD(a, b, result *bigint.BigInt) byte {
	n := result.Length()
	i := 0
	carry := uint64(0)
	for ; i+15 <= n; i += 15 {
		aw, bw := buildWord15(a, i), buildWord15(b, i)
		lo, c1 := bits.Add64(aw.Lo, bw.Lo, carry)
		hi := aw.Hi + bw.Hi + c1
		carry = (hi >> 56) & 1
		result.SetWord15(i, bigint.Word15{Lo: lo, Hi: hi & mask56})
	}
	for ; i+7 <= n; i += 7 {
		aw, bw := buildWord7(a, i), buildWord7(b, i)
		sum := aw + bw + carry
		carry = (sum >> 56) & 1
		result.SetWord7(i, sum&mask56)
	}
	for ; i < n; i++ {
		sum := uint16(byteAt(a, i)) + uint16(byteAt(b, i)) + uint16(carry)
		result.SetByte(i, byte(sum))
		carry = uint64(sum >> 8)
	}
	return byte(carry)
}

func subSIMD(a, b, result *bigint.BigInt) byte {
	n := result.Length()
	i := 0
	borrow := uint64(0)
	for ; i+15 <= n; i += 15 {
		aw, bw := buildWord15(a, i), buildWord15(b, i)
		lo, b1 := bits.Sub64(aw.Lo, bw.Lo, borrow)
		hiDiff := int64(aw.Hi) - int64(bw.Hi) - int64(b1)
		if hiDiff < 0 {
			hiDiff += int64(1) << 56
			borrow = 1
		} else {
			borrow = 0
		}
		result.SetWord15(i, bigint.Word15{Lo: lo, Hi: uint64(hiDiff) & mask56})
	}
	for ; i+7 <= n; i += 7 {
		aw, bw := buildWord7(a, i), buildWord7(b, i)
		diff := int64(aw) - int64(bw) - int64(borrow)
		if diff < 0 {
			diff += int64(1) << 56
			borrow = 1
		} else {
			borrow = 0
		}
		result.SetWord7(i, uint64(diff)&mask56)
	}
	for ; i < n; i++ {
		diff := int16(byteAt(a, i)) - int16(byteAt(b, i)) - int16(borrow)
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

func incrSIMD(a *bigint.BigInt) byte {
	n := a.Length()
	i := 0
	carry := uint64(1)
	for ; i+15 <= n && carry != 0; i += 15 {
		w := a.GetWord15(i)
		lo, c1 := bits.Add64(w.Lo, 0, carry)
		hi := w.Hi + c1
		carry = (hi >> 56) & 1
		a.SetWord15(i, bigint.Word15{Lo: lo, Hi: hi & mask56})
	}
	for ; i+7 <= n && carry != 0; i += 7 {
		sum := a.GetWord7(i) + carry
		carry = (sum >> 56) & 1
		a.SetWord7(i, sum&mask56)
	}
	for ; i < n && carry != 0; i++ {
		sum := uint16(a.GetByte(i)) + uint16(carry)
		a.SetByte(i, byte(sum))
		carry = uint64(sum >> 8)
	}
	return byte(carry)
}

func shlBitsSIMD(a *bigint.BigInt, bits uint) byte {
	n := a.Length()
	i := 0
	carry := uint64(0)
	for ; i+15 <= n; i += 15 {
		w := a.GetWord15(i)
		newLo := (w.Lo << bits) | carry
		carryFromLo := w.Lo >> (64 - bits)
		hiFull := (w.Hi << bits) | carryFromLo
		carry = hiFull >> 56
		a.SetWord15(i, bigint.Word15{Lo: newLo, Hi: hiFull & mask56})
	}
	for ; i+7 <= n; i += 7 {
		w := a.GetWord7(i)
		full := (w << bits) | carry
		carry = full >> 56
		a.SetWord7(i, full&mask56)
	}
	for ; i < n; i++ {
		v := a.GetByte(i)
		nv := (v << bits) | byte(carry)
		carry = uint64(v >> (8 - bits))
		a.SetByte(i, nv)
	}
	return byte(carry)
}
