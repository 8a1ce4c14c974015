// Package arithop implements ArithOp: the single entry point that ties
// internal/radix's Parse/ToBase projections and internal/arithmetic's
// signed combinators together into "z1 <op> z2 in radix base over
// alphabet", plus (naive.go) a completely independent digit-wise oracle used
// to cross-validate the binary-conversion core's result.
package arithop

import (
	"github.com/agbru/bigradix/internal/arithmetic"
	"github.com/agbru/bigradix/internal/bigint"
	apperrors "github.com/agbru/bigradix/internal/errors"
	"github.com/agbru/bigradix/internal/logging"
	"github.com/agbru/bigradix/internal/radix"
)

// Add, Sub, Mul are the three operators Compute accepts, spelled as the
// bytes a user would type on a command line.
const (
	Add = '+'
	Sub = '-'
	Mul = '*'
)

// Compute parses z1 and z2 in the given base and alphabet, applies op, and
// projects the result back to a digit string in the same base and
// alphabet. It is the binary-conversion core's only entry point: callers
// outside this core never touch internal/bigint, internal/arithmetic or
// internal/radix directly.
func Compute(base int, alphabet []byte, z1, z2 string, op byte, useSIMD bool, logger logging.Logger) (string, error) {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	alph := radix.NewAlphabet(alphabet)
	codec, err := radix.NewCodec(alph, base, useSIMD, logger)
	if err != nil {
		return "", err
	}

	a, err := codec.Parse(z1)
	if err != nil {
		return "", apperrors.WrapError(err, "parsing first operand %q", z1)
	}
	b, err := codec.Parse(z2)
	if err != nil {
		return "", apperrors.WrapError(err, "parsing second operand %q", z2)
	}

	var result *bigint.BigInt
	switch op {
	case Add:
		result = arithmetic.AddSigned(a, b, useSIMD)
	case Sub:
		result = arithmetic.SubSigned(a, b, useSIMD)
	case Mul:
		result = arithmetic.MulSigned(a, b, useSIMD)
	default:
		return "", apperrors.NewConfigError("unsupported operator %q: must be one of +, -, *", op)
	}

	return codec.ToBase(result), nil
}
