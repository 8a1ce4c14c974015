package bigint

import "testing"

func TestNewIsZero(t *testing.T) {
	t.Parallel()
	b := New(4)
	if !b.IsZero() {
		t.Error("New should be zero")
	}
	if b.Length() != 4 {
		t.Errorf("Length() = %d, want 4", b.Length())
	}
	if b.Sign() {
		t.Error("New should be non-negative")
	}
}

func TestNewFromBytes(t *testing.T) {
	t.Parallel()
	b := NewFromBytes([]byte{0x2A, 0x01}, true)
	if b.Length() != 2 {
		t.Errorf("Length() = %d, want 2", b.Length())
	}
	if b.GetByte(0) != 0x2A || b.GetByte(1) != 0x01 {
		t.Error("NewFromBytes should wrap the given magnitude bytes in order")
	}
	if !b.Sign() {
		t.Error("NewFromBytes should carry the given sign")
	}
}

func TestSetGetByte(t *testing.T) {
	t.Parallel()
	b := New(3)
	b.SetByte(1, 0xAB)
	if got := b.GetByte(1); got != 0xAB {
		t.Errorf("GetByte(1) = %#x, want 0xab", got)
	}
	if b.IsZero() {
		t.Error("should not be zero after SetByte")
	}
}

func TestSetGetBit(t *testing.T) {
	t.Parallel()
	b := New(2)
	b.SetBit(0, 3, true)
	if !b.GetBit(0, 3) {
		t.Error("bit 3 should be set")
	}
	if b.GetByte(0) != 0x08 {
		t.Errorf("byte = %#x, want 0x08", b.GetByte(0))
	}
	b.SetBit(0, 3, false)
	if b.GetBit(0, 3) {
		t.Error("bit 3 should be cleared")
	}
}

func TestMostSignificantByte(t *testing.T) {
	t.Parallel()
	b := New(4)
	if b.MostSignificantByte() != -1 {
		t.Error("zero value should report -1")
	}
	b.SetByte(2, 1)
	if got := b.MostSignificantByte(); got != 2 {
		t.Errorf("MostSignificantByte() = %d, want 2", got)
	}
}

func TestNegateAndSign(t *testing.T) {
	t.Parallel()
	b := New(1)
	b.SetByte(0, 5)
	if b.Sign() {
		t.Fatal("should start non-negative")
	}
	b.Negate()
	if !b.Sign() {
		t.Error("Negate should flip sign")
	}
	b.Negate()
	if b.Sign() {
		t.Error("double Negate should restore sign")
	}
}

func TestEqualsIgnoresTrailingZeroBytesAndZeroSign(t *testing.T) {
	t.Parallel()
	a := New(2)
	a.SetByte(0, 7)
	b := New(4)
	b.SetByte(0, 7)
	if !a.Equals(b) {
		t.Error("equal magnitudes of different buffer lengths should be equal")
	}

	posZero := New(3)
	negZero := New(3)
	negZero.SetSign(true)
	if !posZero.Equals(negZero) {
		t.Error("+0 and -0 should compare equal")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()
	a := New(2)
	a.SetByte(0, 9)
	b := Clone(a)
	b.SetByte(0, 1)
	if a.GetByte(0) == b.GetByte(0) {
		t.Error("Clone should be an independent copy")
	}
}

func TestCloneWithExtra(t *testing.T) {
	t.Parallel()
	a := New(2)
	a.SetByte(0, 0xFF)
	a.SetByte(1, 0xFF)
	b := CloneWithExtra(a, 2)
	if b.Length() != 4 {
		t.Fatalf("Length() = %d, want 4", b.Length())
	}
	if b.GetByte(2) != 0 || b.GetByte(3) != 0 {
		t.Error("extra bytes should be zero")
	}
}

func TestCopyInto(t *testing.T) {
	t.Parallel()
	a := New(2)
	a.SetByte(0, 1)
	a.SetByte(1, 2)
	a.SetSign(true)
	dst := New(4)
	dst.SetByte(3, 0xFF)
	a.CopyInto(dst)
	if dst.GetByte(0) != 1 || dst.GetByte(1) != 2 || dst.GetByte(3) != 0 {
		t.Error("CopyInto should copy magnitude and zero the remainder")
	}
	if !dst.Sign() {
		t.Error("CopyInto should copy sign")
	}
}

func TestCopyIntoTruncatesIntoShorterDestination(t *testing.T) {
	t.Parallel()
	a := New(4)
	a.SetByte(0, 1)
	a.SetByte(1, 2)
	a.SetByte(2, 3)
	a.SetByte(3, 4)
	dst := New(2)
	a.CopyInto(dst)
	if dst.GetByte(0) != 1 || dst.GetByte(1) != 2 {
		t.Error("CopyInto should copy as many low-order bytes as dst can hold")
	}
}

func TestDestroyPanicsOnReuse(t *testing.T) {
	t.Parallel()
	b := New(1)
	b.Destroy()
	defer func() {
		if recover() == nil {
			t.Error("using a destroyed BigInt should panic")
		}
	}()
	b.IsZero()
}

func TestDoubleDestroyPanics(t *testing.T) {
	t.Parallel()
	b := New(1)
	b.Destroy()
	defer func() {
		if recover() == nil {
			t.Error("double Destroy should panic")
		}
	}()
	b.Destroy()
}

func TestOutOfRangeByteIndexPanics(t *testing.T) {
	t.Parallel()
	b := New(2)
	defer func() {
		if recover() == nil {
			t.Error("out-of-range GetByte should panic")
		}
	}()
	b.GetByte(2)
}

func TestWord7RoundTrip(t *testing.T) {
	t.Parallel()
	b := New(8)
	const v = uint64(0x00FFEEDDCCBBAA)
	b.SetWord7(0, v)
	if got := b.GetWord7(0); got != v {
		t.Errorf("GetWord7 = %#x, want %#x", got, v)
	}
}

func TestWord15RoundTrip(t *testing.T) {
	t.Parallel()
	b := New(15)
	w := Word15{Lo: 0x0102030405060708, Hi: 0x0000111213141516}
	b.SetWord15(0, w)
	got := b.GetWord15(0)
	if got != w {
		t.Errorf("GetWord15 = %+v, want %+v", got, w)
	}
}
