// Package bigint implements BigInt: a sign-magnitude, fixed-length,
// little-endian arbitrary-precision integer buffer. It is the data model the
// rest of the binary-conversion core (internal/arithmetic, internal/radix,
// internal/arithop) is built on: every operation reads and writes through the
// accessors here rather than touching mem directly, so that the byte-wise
// sequential path and the word-wise SIMD-tier fast path in internal/arithmetic
// see an identical, precondition-checked view of the same storage.
package bigint

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/bigradix/internal/errors"
)

// BigInt is a sign-magnitude integer: Sign reports whether the value is
// negative, and Mem holds the magnitude as Length little-endian bytes
// (Mem[0] is the least significant byte). A destroyed BigInt must not be
// used again; Destroy exists to catch use-after-free bugs in the core during
// development rather than to manage real resources.
type BigInt struct {
	sign      bool
	length    int
	mem       []byte
	destroyed bool
}

// New allocates a zero-valued, non-negative BigInt with the given number of
// magnitude bytes.
func New(length int) *BigInt {
	if length < 0 {
		panic(apperrors.NewPreconditionError("bigint.New: negative length %d", length))
	}
	return &BigInt{length: length, mem: make([]byte, length)}
}

// NewFromBytes wraps an existing little-endian magnitude slice. The slice is
// taken by reference, not copied; callers that need an independent buffer
// should use Clone.
func NewFromBytes(mem []byte, sign bool) *BigInt {
	return &BigInt{length: len(mem), mem: mem, sign: sign}
}

// Clone returns a deep copy of b.
func Clone(b *BigInt) *BigInt {
	b.checkLive()
	out := New(b.length)
	copy(out.mem, b.mem)
	out.sign = b.sign
	return out
}

// CloneWithExtra returns a deep copy of b with k extra zero bytes appended,
// for operations (add, multiply) whose result may need more bytes than
// either operand — sized per the buffer-sizing rules of §3.3.
func CloneWithExtra(b *BigInt, k int) *BigInt {
	b.checkLive()
	if k < 0 {
		panic(apperrors.NewPreconditionError("bigint.CloneWithExtra: negative extra %d", k))
	}
	out := New(b.length + k)
	copy(out.mem, b.mem)
	out.sign = b.sign
	return out
}

// Destroy marks b as no longer usable. Calling any accessor on a destroyed
// BigInt, or calling Destroy twice, panics with a PreconditionError.
func (b *BigInt) Destroy() {
	b.checkLive()
	b.destroyed = true
	b.mem = nil
}

func (b *BigInt) checkLive() {
	if b.destroyed {
		panic(apperrors.NewPreconditionError("bigint: use of destroyed BigInt"))
	}
}

// Length returns the number of magnitude bytes.
func (b *BigInt) Length() int {
	b.checkLive()
	return b.length
}

// Sign reports whether b is negative. The magnitude being zero with Sign
// true ("negative zero") is permitted by the type; callers that care about
// canonical zero should check IsZero first.
func (b *BigInt) Sign() bool {
	b.checkLive()
	return b.sign
}

// SetSign sets b's sign.
func (b *BigInt) SetSign(s bool) {
	b.checkLive()
	b.sign = s
}

// Negate flips b's sign in place.
func (b *BigInt) Negate() {
	b.checkLive()
	b.sign = !b.sign
}

// Mem returns the underlying little-endian magnitude slice by reference.
// It exists so internal/arithmetic can implement its word7/word15 fast-path
// tiers directly against storage; callers outside this core should prefer
// GetByte/SetByte.
func (b *BigInt) Mem() []byte {
	b.checkLive()
	return b.mem
}

func (b *BigInt) checkIndex(i int) {
	if i < 0 || i >= b.length {
		panic(apperrors.NewPreconditionError("bigint: byte index %d out of range [0,%d)", i, b.length))
	}
}

// GetByte returns the byte at position i (0 = least significant).
func (b *BigInt) GetByte(i int) byte {
	b.checkLive()
	b.checkIndex(i)
	return b.mem[i]
}

// SetByte sets the byte at position i.
func (b *BigInt) SetByte(i int, v byte) {
	b.checkLive()
	b.checkIndex(i)
	b.mem[i] = v
}

// GetBit returns bit bitIndex (0 = least significant) of byte byteIndex.
func (b *BigInt) GetBit(byteIndex, bitIndex int) bool {
	b.checkLive()
	b.checkIndex(byteIndex)
	if bitIndex < 0 || bitIndex > 7 {
		panic(apperrors.NewPreconditionError("bigint: bit index %d out of range [0,8)", bitIndex))
	}
	return (b.mem[byteIndex]>>uint(bitIndex))&1 == 1
}

// SetBit sets bit bitIndex of byte byteIndex.
func (b *BigInt) SetBit(byteIndex, bitIndex int, v bool) {
	b.checkLive()
	b.checkIndex(byteIndex)
	if bitIndex < 0 || bitIndex > 7 {
		panic(apperrors.NewPreconditionError("bigint: bit index %d out of range [0,8)", bitIndex))
	}
	if v {
		b.mem[byteIndex] |= 1 << uint(bitIndex)
	} else {
		b.mem[byteIndex] &^= 1 << uint(bitIndex)
	}
}

// MostSignificantByte returns the index of the highest nonzero byte, or -1
// if the magnitude is zero.
func (b *BigInt) MostSignificantByte() int {
	b.checkLive()
	for i := b.length - 1; i >= 0; i-- {
		if b.mem[i] != 0 {
			return i
		}
	}
	return -1
}

// IsZero reports whether the magnitude is zero, regardless of sign.
func (b *BigInt) IsZero() bool {
	return b.MostSignificantByte() == -1
}

// SetZero zeroes the magnitude and clears the sign.
func (b *BigInt) SetZero() {
	b.checkLive()
	for i := range b.mem {
		b.mem[i] = 0
	}
	b.sign = false
}

// Equals reports whether b and other represent the same integer: equal
// magnitudes (ignoring trailing high zero bytes from differing buffer
// lengths) and equal sign, with +0 and -0 treated as equal.
func (b *BigInt) Equals(other *BigInt) bool {
	b.checkLive()
	other.checkLive()
	if b.IsZero() && other.IsZero() {
		return true
	}
	if b.sign != other.sign {
		return false
	}
	n := b.length
	if other.length > n {
		n = other.length
	}
	for i := 0; i < n; i++ {
		var x, y byte
		if i < b.length {
			x = b.mem[i]
		}
		if i < other.length {
			y = other.mem[i]
		}
		if x != y {
			return false
		}
	}
	return true
}

// CopyInto copies b's sign and magnitude into dst. If dst is shorter than b,
// b's excess high-order magnitude bytes are silently truncated rather than
// rejected.
func (b *BigInt) CopyInto(dst *BigInt) {
	b.checkLive()
	dst.checkLive()
	n := copy(dst.mem, b.mem)
	for i := n; i < dst.length; i++ {
		dst.mem[i] = 0
	}
	dst.sign = b.sign
}

// String renders b as a debug hex dump, most significant byte first.
func (b *BigInt) String() string {
	b.checkLive()
	var sb strings.Builder
	if b.sign {
		sb.WriteByte('-')
	}
	sb.WriteString("0x")
	if b.length == 0 {
		sb.WriteByte('0')
	}
	for i := b.length - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%02x", b.mem[i])
	}
	return sb.String()
}
