package arithmetic

import "github.com/agbru/bigradix/internal/bigint"

// MulU8 multiplies a by the single byte m, writing the product into result
// (which must be at least a.Length()+1 bytes, per the §3.3 sizing rule for
// multiply-by-byte), and returns the final carry byte.
func MulU8(a *bigint.BigInt, m byte, result *bigint.BigInt, useSIMD bool) byte {
	if useSIMD {
		return mulU8SIMD(a, m, result)
	}
	return mulU8Sequential(a, m, result)
}

func mulU8Sequential(a *bigint.BigInt, m byte, result *bigint.BigInt) byte {
	var carry uint32
	n := a.Length()
	for i := 0; i < n; i++ {
		prod := uint32(a.GetByte(i))*uint32(m) + carry
		result.SetByte(i, byte(prod))
		carry = prod >> 8
	}
	for i := n; i < result.Length() && carry != 0; i++ {
		result.SetByte(i, byte(carry))
		carry >>= 8
	}
	return byte(carry)
}

// mulU8SIMD multiplies in 7-byte-limb chunks: each limb product fits in a
// uint64 (7-byte operand * 1-byte multiplier + a 7-byte carry never exceeds
// 64 bits), avoiding per-byte carry propagation within a chunk.
func mulU8SIMD(a *bigint.BigInt, m byte, result *bigint.BigInt) byte {
	n := a.Length()
	i := 0
	var carry uint64
	for ; i+7 <= n; i += 7 {
		limb := buildWord7(a, i)
		prod := limb*uint64(m) + carry
		result.SetWord7(i, prod&mask56)
		carry = prod >> 56
	}
	for ; i < n; i++ {
		prod := uint64(a.GetByte(i))*uint64(m) + carry
		result.SetByte(i, byte(prod))
		carry = prod >> 8
	}
	for i := n; i < result.Length() && carry != 0; i++ {
		result.SetByte(i, byte(carry))
		carry >>= 8
	}
	return byte(carry)
}

// MulSmall writes a times a small (<=16 bit) value m into result (which may
// be a itself, as the radix codec passes it), returning the final carry
// limb. Used by the radix codec where m is a digit-cell base (|base| <= 128)
// rather than a full operand. Both useSIMD settings run the same byte loop.
func MulSmall(a *bigint.BigInt, m uint16, result *bigint.BigInt, useSIMD bool) uint32 {
	var carry uint32
	n := a.Length()
	for i := 0; i < n; i++ {
		prod := uint32(a.GetByte(i))*uint32(m) + carry
		result.SetByte(i, byte(prod))
		carry = prod >> 8
	}
	for i := n; i < result.Length() && carry != 0; i++ {
		result.SetByte(i, byte(carry))
		carry >>= 8
	}
	return carry
}

// Mul computes result = a * b via schoolbook long multiplication: for each
// byte of b, multiply a by that byte (MulU8), shift the partial product into
// place (ShlBytes-equivalent offset), and accumulate into result with Add.
// result must be sized per §3.3 (a.Length()+b.Length()).
func Mul(a, b, result *bigint.BigInt, useSIMD bool) {
	result.SetZero()
	partial := bigint.New(a.Length() + 1)
	shifted := bigint.New(result.Length())
	for j := 0; j < b.Length(); j++ {
		bj := b.GetByte(j)
		if bj == 0 {
			continue
		}
		for k := range partial.Mem() {
			partial.SetByte(k, 0)
		}
		MulU8(a, bj, partial, useSIMD)
		for k := range shifted.Mem() {
			shifted.SetByte(k, 0)
		}
		for k := 0; k < partial.Length() && j+k < shifted.Length(); k++ {
			shifted.SetByte(j+k, partial.GetByte(k))
		}
		Add(result, shifted, result, useSIMD)
	}
}
