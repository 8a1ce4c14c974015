package radix

import (
	"fmt"
	"math"
	"strings"

	"github.com/agbru/bigradix/internal/arithmetic"
	"github.com/agbru/bigradix/internal/bigint"
	apperrors "github.com/agbru/bigradix/internal/errors"
	"github.com/agbru/bigradix/internal/logging"
)

// MaxBase is the largest magnitude a radix may have: |base| <= 128 so every
// digit value fits a single byte and every digit-cell arithmetic op in
// internal/arithmetic's MulSmall/DivSmall stays within a uint8/uint16.
const MaxBase = 128

// Codec binds a radix (possibly negative) to the alphabet that names its
// digit values, and converts between digit strings and BigInt.
type Codec struct {
	Alphabet *Alphabet
	Base     int
	UseSIMD  bool
	Logger   logging.Logger
}

// NewCodec validates base against alphabet and returns a ready Codec.
// |base| must be in [2,128] and must equal the alphabet's digit count.
func NewCodec(alphabet *Alphabet, base int, useSIMD bool, logger logging.Logger) (*Codec, error) {
	posBase := base
	if posBase < 0 {
		posBase = -posBase
	}
	if posBase < 2 || posBase > MaxBase {
		return nil, apperrors.NewConfigError("base %d out of range: |base| must be in [2,%d]", base, MaxBase)
	}
	if alphabet.Base() != posBase {
		return nil, apperrors.NewConfigError("alphabet has %d characters, but base %d needs %d", alphabet.Base(), base, posBase)
	}
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Codec{Alphabet: alphabet, Base: base, UseSIMD: useSIMD, Logger: logger}, nil
}

func (c *Codec) posBase() int {
	if c.Base < 0 {
		return -c.Base
	}
	return c.Base
}

// sizeForParse returns a safely-oversized byte count for the binary
// magnitude of a digitCount-digit number in the given base, per the §3.3
// buffer-sizing rule: ceil(digitCount * log2(base) / 8) + 1 slack byte.
func sizeForParse(digitCount, base int) int {
	if digitCount == 0 {
		return 1
	}
	bits := float64(digitCount) * math.Log2(float64(base))
	n := int(math.Ceil(bits/8)) + 1
	if n < 1 {
		n = 1
	}
	return n
}

// sizeForDigits is sizeForParse's inverse: the number of base-digit cells
// needed to hold the value of a byteLen-byte binary magnitude.
func sizeForDigits(byteLen, base int) int {
	if byteLen == 0 {
		return 1
	}
	bits := float64(byteLen) * 8
	n := int(math.Ceil(bits/math.Log2(float64(base)))) + 1
	if n < 1 {
		n = 1
	}
	return n
}

// Parse reads a digit string (optionally '-'-prefixed for a positive base;
// a negative base has no sign character — the sign is encoded in the digit
// sequence itself via the radix) into a BigInt.
func (c *Codec) Parse(s string) (*bigint.BigInt, error) {
	if len(s) == 0 {
		return nil, apperrors.NewConfigError("empty operand")
	}
	neg := false
	if s[0] == '-' {
		if c.Base < 0 {
			return nil, apperrors.NewConfigError("leading '-' is not valid for a negative base")
		}
		neg = true
		s = s[1:]
		if len(s) == 0 {
			return nil, apperrors.NewConfigError("empty operand after '-'")
		}
	}

	posBase := c.posBase()
	n := sizeForParse(len(s), posBase)

	if c.Base > 0 {
		result := bigint.New(n)
		for i := 0; i < len(s); i++ {
			digit, ok := c.Alphabet.Digit(s[i])
			if !ok {
				return nil, apperrors.NewConfigError("byte %q at position %d is not in the alphabet", s[i], i)
			}
			overflow := arithmetic.MulSmall(result, uint16(posBase), result, c.UseSIMD)
			overflow += arithmetic.AddSmall(result, uint32(digit))
			if overflow != 0 {
				c.Logger.Warn("radix: Parse buffer undersized, truncating", logging.String("operand", s))
			}
		}
		result.SetSign(neg)
		return result, nil
	}

	// Negative base: there is no sign character, the sign is carried by the
	// digit sequence itself, so evaluation must track sign at every step
	// (acc = acc*base + digit, with base negative) rather than accumulate
	// an always-nonnegative magnitude.
	acc := bigint.New(n)
	baseMag := bigint.New(n)
	baseMag.SetByte(0, byte(posBase))
	baseMag.SetSign(true)
	for i := 0; i < len(s); i++ {
		digit, ok := c.Alphabet.Digit(s[i])
		if !ok {
			return nil, apperrors.NewConfigError("byte %q at position %d is not in the alphabet", s[i], i)
		}
		digitBI := bigint.NewFromBytes([]byte{byte(digit)}, false)
		prod := arithmetic.MulSigned(acc, baseMag, c.UseSIMD)
		acc = arithmetic.AddSigned(prod, digitBI, c.UseSIMD)
	}
	return acc, nil
}

// ToBasePos projects a BigInt to a digit string for a positive base, via
// the Double-Dabble algorithm generalized from 4-bit BCD nibbles to
// byte-wide digit cells holding 0..base-1: each binary bit, from most to
// least significant, is shifted into every cell in turn, with a cell that
// reaches base subtracting base back out and carrying 1 into its neighbor —
// exactly double-dabble's "nibble >= 10, add 6" correction, generalized to
// an arbitrary base instead of assuming 10 into a base-16 nibble.
func (c *Codec) ToBasePos(b *bigint.BigInt) string {
	if c.Base <= 0 {
		panic(apperrors.NewPreconditionError("radix.ToBasePos: base %d is not positive", c.Base))
	}
	base := c.Base
	ndigits := sizeForDigits(b.Length(), base)
	cells := make([]byte, ndigits)

	for byteIdx := b.Length() - 1; byteIdx >= 0; byteIdx-- {
		v := b.GetByte(byteIdx)
		for bit := 7; bit >= 0; bit-- {
			carry := (v >> uint(bit)) & 1
			for d := 0; d < ndigits; d++ {
				nv := cells[d]*2 + carry
				if int(nv) >= base {
					nv -= byte(base)
					carry = 1
				} else {
					carry = 0
				}
				cells[d] = nv
			}
			if carry != 0 {
				c.Logger.Warn("radix: ToBasePos digit buffer undersized, truncating")
			}
		}
	}

	top := ndigits - 1
	for top > 0 && cells[top] == 0 {
		top--
	}
	var sb strings.Builder
	if b.Sign() && !b.IsZero() {
		sb.WriteByte('-')
	}
	for i := top; i >= 0; i-- {
		sb.WriteByte(c.Alphabet.Char(int(cells[i])))
	}
	return sb.String()
}

// ToBaseNeg projects a BigInt to a digit string for a negative base, via
// repeated Euclidean division: at each step, divide the current (signed)
// value n by base such that the remainder r is always in [0,|base|), append
// r as the next least-significant digit, and continue with n = (n-r)/base
// until n is zero. Division magnitude is delegated to
// internal/arithmetic.DivSmall (restoring binary division); only the sign
// bookkeeping translating an unsigned divmod into this Euclidean one is done
// here.
func (c *Codec) ToBaseNeg(b *bigint.BigInt) string {
	if c.Base >= 0 {
		panic(apperrors.NewPreconditionError("radix.ToBaseNeg: base %d is not negative", c.Base))
	}
	posBase := uint8(c.posBase())

	n := bigint.Clone(b)
	var digits []byte
	for !n.IsZero() {
		qMag, rem := arithmetic.DivSmall(n, posBase)
		var r uint8
		var qSign bool
		if !n.Sign() {
			r = rem
			qSign = true
		} else if rem == 0 {
			r = 0
			qSign = false
		} else {
			r = posBase - rem
			arithmetic.Incr(qMag, c.UseSIMD)
			qSign = false
		}
		digits = append(digits, r)
		qMag.SetSign(qSign)
		n = qMag
	}
	if len(digits) == 0 {
		digits = []byte{0}
	}

	var sb strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(c.Alphabet.Char(int(digits[i])))
	}
	return sb.String()
}

// ToBase dispatches to ToBasePos or ToBaseNeg according to the sign of
// c.Base.
func (c *Codec) ToBase(b *bigint.BigInt) string {
	if c.Base < 0 {
		return c.ToBaseNeg(b)
	}
	return c.ToBasePos(b)
}

// String implements fmt.Stringer for debug output.
func (c *Codec) String() string {
	return fmt.Sprintf("Codec{base=%d, alphabet=%d chars}", c.Base, c.Alphabet.Base())
}
