package arithop

import "testing"

var decimalAlphabet = []byte("0123456789")

func TestComputeAddSubMulBase10(t *testing.T) {
	cases := []struct {
		z1, z2 string
		op     byte
		want   string
	}{
		{"2", "3", Add, "5"},
		{"123456789012345678901234567890", "1", Add, "123456789012345678901234567891"},
		{"5", "3", Sub, "2"},
		{"3", "5", Sub, "-2"},
		{"0", "0", Add, "0"},
		{"7", "6", Mul, "42"},
		{"-4", "3", Mul, "-12"},
		{"-4", "-3", Mul, "12"},
	}
	for _, c := range cases {
		got, err := Compute(10, decimalAlphabet, c.z1, c.z2, c.op, false, nil)
		if err != nil {
			t.Fatalf("Compute(%q,%q,%q): %v", c.z1, c.z2, string(c.op), err)
		}
		if got != c.want {
			t.Errorf("Compute(%q,%q,%q) = %q, want %q", c.z1, c.z2, string(c.op), got, c.want)
		}
	}
}

func TestComputeSIMDAndSequentialAgree(t *testing.T) {
	z1 := "123456789012345678901234567890123456789"
	z2 := "987654321098765432109876543210987654321"
	for _, op := range []byte{Add, Sub, Mul} {
		seq, err := Compute(10, decimalAlphabet, z1, z2, op, false, nil)
		if err != nil {
			t.Fatalf("sequential Compute: %v", err)
		}
		simd, err := Compute(10, decimalAlphabet, z1, z2, op, true, nil)
		if err != nil {
			t.Fatalf("SIMD Compute: %v", err)
		}
		if seq != simd {
			t.Errorf("op %q: sequential %q != SIMD %q", string(op), seq, simd)
		}
	}
}

func TestComputeUnsupportedOperator(t *testing.T) {
	if _, err := Compute(10, decimalAlphabet, "1", "2", '?', false, nil); err == nil {
		t.Fatal("expected error for unsupported operator")
	}
}

func TestComputeSelfSubtractIsZero(t *testing.T) {
	got, err := Compute(10, decimalAlphabet, "999999999999999999", "999999999999999999", Sub, false, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got != "0" {
		t.Errorf("a-a = %q, want 0", got)
	}
}

func TestComputeMulByNegativeOneNegates(t *testing.T) {
	got, err := Compute(10, decimalAlphabet, "123456789", "-1", Mul, false, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got != "-123456789" {
		t.Errorf("a*(-1) = %q, want -123456789", got)
	}
}

func TestComputeCommutativeAdd(t *testing.T) {
	a, err := Compute(10, decimalAlphabet, "12345", "987654321", Add, false, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	b, err := Compute(10, decimalAlphabet, "987654321", "12345", Add, false, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if a != b {
		t.Errorf("addition not commutative: %q vs %q", a, b)
	}
}

func TestComputeNegativeBase(t *testing.T) {
	alphabet := []byte("01")
	// 110 in base -2 is 1*4 + 1*(-2) + 0*1 = 2; 1 in base -2 is 1; sum is 3,
	// which base -2 renders as "111" (1*4 + 1*(-2) + 1*1 = 3).
	got, err := Compute(-2, alphabet, "110", "1", Add, false, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got != "111" {
		t.Errorf("Compute(-2, 110+1) = %q, want 111", got)
	}
}
