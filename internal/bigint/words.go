package bigint

import (
	"encoding/binary"

	apperrors "github.com/agbru/bigradix/internal/errors"
)

// Word15 is the 120-bit ("15-byte") word used by internal/arithmetic's
// widest SIMD tier: Lo holds the 8 least-significant bytes, Hi the 7 most
// significant (zero-extended into a uint64), matching the little-endian
// byte layout of BigInt.mem.
type Word15 struct {
	Lo uint64
	Hi uint64
}

// GetWord7 reads the 7 contiguous bytes starting at i, zero-extended into a
// uint64. Requires i+6 < Length().
func (b *BigInt) GetWord7(i int) uint64 {
	b.checkLive()
	if i < 0 || i+6 >= b.length {
		panic(apperrors.NewPreconditionError("bigint.GetWord7: index %d out of range for length %d", i, b.length))
	}
	var buf [8]byte
	copy(buf[:7], b.mem[i:i+7])
	return binary.LittleEndian.Uint64(buf[:])
}

// SetWord7 writes the low 7 bytes of v starting at i. Requires i+6 < Length().
func (b *BigInt) SetWord7(i int, v uint64) {
	b.checkLive()
	if i < 0 || i+6 >= b.length {
		panic(apperrors.NewPreconditionError("bigint.SetWord7: index %d out of range for length %d", i, b.length))
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	copy(b.mem[i:i+7], buf[:7])
}

// GetWord15 reads the 15 contiguous bytes starting at i. Requires
// i+14 < Length().
func (b *BigInt) GetWord15(i int) Word15 {
	b.checkLive()
	if i < 0 || i+14 >= b.length {
		panic(apperrors.NewPreconditionError("bigint.GetWord15: index %d out of range for length %d", i, b.length))
	}
	var lo, hi [8]byte
	copy(lo[:8], b.mem[i:i+8])
	copy(hi[:7], b.mem[i+8:i+15])
	return Word15{Lo: binary.LittleEndian.Uint64(lo[:]), Hi: binary.LittleEndian.Uint64(hi[:])}
}

// SetWord15 writes the 15 bytes of w starting at i. Requires i+14 < Length().
func (b *BigInt) SetWord15(i int, w Word15) {
	b.checkLive()
	if i < 0 || i+14 >= b.length {
		panic(apperrors.NewPreconditionError("bigint.SetWord15: index %d out of range for length %d", i, b.length))
	}
	var lo, hi [8]byte
	binary.LittleEndian.PutUint64(lo[:], w.Lo)
	binary.LittleEndian.PutUint64(hi[:], w.Hi)
	copy(b.mem[i:i+8], lo[:8])
	copy(b.mem[i+8:i+15], hi[:7])
}
