package radix

import (
	"testing"

	"github.com/agbru/bigradix/internal/logging"
)

const decimalAlphabet = "0123456789"
const hexAlphabet = "0123456789abcdef"

func newDecimalCodec(t *testing.T, base int, useSIMD bool) *Codec {
	t.Helper()
	posBase := base
	if posBase < 0 {
		posBase = -posBase
	}
	codec, err := NewCodec(NewAlphabet([]byte(decimalAlphabet[:posBase])), base, useSIMD, logging.NewDefaultLogger())
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return codec
}

func TestParseToBaseRoundTripBase10(t *testing.T) {
	codec := newDecimalCodec(t, 10, false)
	for _, s := range []string{"0", "1", "255", "-255", "123456789012345678901234567890"} {
		b, err := codec.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		got := codec.ToBase(b)
		if got != s {
			t.Errorf("round trip %q: got %q", s, got)
		}
	}
}

func TestParseToBaseRoundTripHex(t *testing.T) {
	codec, err := NewCodec(NewAlphabet([]byte(hexAlphabet)), 16, false, logging.NewDefaultLogger())
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	for _, s := range []string{"0", "ff", "-ff", "deadbeef"} {
		b, err := codec.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := codec.ToBase(b); got != s {
			t.Errorf("round trip %q: got %q", s, got)
		}
	}
}

func TestParseRejectsLeadingMinusForNegativeBase(t *testing.T) {
	codec := newDecimalCodec(t, -10, false)
	if _, err := codec.Parse("-12"); err == nil {
		t.Fatal("expected error for leading '-' on a negative base")
	}
}

func TestParseRejectsUnknownCharacter(t *testing.T) {
	codec := newDecimalCodec(t, 10, false)
	if _, err := codec.Parse("12x4"); err == nil {
		t.Fatal("expected error for unrecognized alphabet character")
	}
}

// Negative-base round trips: every value in [-50,50] should survive
// Parse(ToBase(x)) == x for base -10, since ToBaseNeg/Parse's negative-base
// branch are each other's inverse regardless of sign.
func TestNegativeBaseRoundTripSmallValues(t *testing.T) {
	codec := newDecimalCodec(t, -10, false)
	for v := -50; v <= 50; v++ {
		s := decimalDigitsFor(v)
		b, err := codec.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		back := codec.ToBase(b)
		b2, err := codec.Parse(back)
		if err != nil {
			t.Fatalf("Parse(%q) (second pass): %v", back, err)
		}
		if codec.ToBase(b2) != back {
			t.Errorf("value %d: round trip through %q is not a fixed point", v, back)
		}
	}
}

func decimalDigitsFor(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var digits []byte
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func TestToBasePosLeadingZeroStripped(t *testing.T) {
	codec := newDecimalCodec(t, 10, false)
	b, err := codec.Parse("0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := codec.ToBase(b); got != "0" {
		t.Errorf("ToBase(0) = %q, want %q", got, "0")
	}
}

func TestSIMDAndSequentialAgreeOnParseAndProject(t *testing.T) {
	seq := newDecimalCodec(t, 10, false)
	simd := newDecimalCodec(t, 10, true)
	for _, s := range []string{"0", "1", "999999999999999999999999", "-123456789012345678901234"} {
		bSeq, err := seq.Parse(s)
		if err != nil {
			t.Fatalf("seq Parse(%q): %v", s, err)
		}
		bSIMD, err := simd.Parse(s)
		if err != nil {
			t.Fatalf("simd Parse(%q): %v", s, err)
		}
		if seq.ToBase(bSeq) != simd.ToBase(bSIMD) {
			t.Errorf("sequential/SIMD disagree for %q: %q vs %q", s, seq.ToBase(bSeq), simd.ToBase(bSIMD))
		}
	}
}

func TestNewCodecRejectsBaseAlphabetMismatch(t *testing.T) {
	if _, err := NewCodec(NewAlphabet([]byte("01")), 10, false, logging.NewDefaultLogger()); err == nil {
		t.Fatal("expected error for base/alphabet length mismatch")
	}
}

func TestNewCodecRejectsOutOfRangeBase(t *testing.T) {
	if _, err := NewCodec(NewAlphabet([]byte("01")), 1, false, logging.NewDefaultLogger()); err == nil {
		t.Fatal("expected error for base below 2")
	}
}
