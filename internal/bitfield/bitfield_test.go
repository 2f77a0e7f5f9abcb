package bitfield

import "testing"

func TestGetExtractsField(t *testing.T) {
	// 0b1010_1100_0000_0000: bits 11-14 (4 bits) should read 0b0101 = 5.
	v := uint16(0b1010_1100_0000_0000)
	if got := Get(v, 11, 4); got != 0b0101 {
		t.Errorf("Get() = %b, want %b", got, 0b0101)
	}
}

func TestSetReplacesFieldWithoutDisturbingOthers(t *testing.T) {
	v := uint16(0xFFFF)
	got := Set(v, 0, 4, 4)
	want := uint16(0xFF0F)
	if got != want {
		t.Errorf("Set() = %#04x, want %#04x", got, want)
	}
}

func TestSetMasksOverflowingValue(t *testing.T) {
	// val's bits beyond width must be discarded, not bleed into adjacent fields.
	got := Set(0, 0b11111, 0, 4)
	if got != 0b1111 {
		t.Errorf("Set() = %b, want %b (value masked to field width)", got, 0b1111)
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	v := uint16(0)
	v = Set(v, 1, 15, 1)
	v = Set(v, 0b101, 11, 4)
	if Get(v, 15, 1) != 1 {
		t.Errorf("Get(15,1) = %d, want 1", Get(v, 15, 1))
	}
	if Get(v, 11, 4) != 0b101 {
		t.Errorf("Get(11,4) = %b, want %b", Get(v, 11, 4), 0b101)
	}
}
