package riscv

import "testing"

func TestParseRegisterABIName(t *testing.T) {
	cases := []struct {
		name string
		want Register
	}{
		{"zero", Zero},
		{"x0", Zero},
		{"ra", RA},
		{"sp", SP},
		{"fp", S0},
		{"s0", S0},
		{"a0", A0},
		{"a7", A7},
		{"t6", T6},
	}
	for _, c := range cases {
		got, ok := ParseRegister(c.name)
		if !ok {
			t.Fatalf("ParseRegister(%q): not recognized", c.name)
		}
		if got != c.want {
			t.Errorf("ParseRegister(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParseRegisterRejectsUnknown(t *testing.T) {
	for _, bad := range []string{"x32", "a8", "banana", ""} {
		if _, ok := ParseRegister(bad); ok {
			t.Errorf("ParseRegister(%q) unexpectedly succeeded", bad)
		}
	}
}

func TestRegisterStringRoundTrip(t *testing.T) {
	for i := Zero; i <= T6; i++ {
		name := i.String()
		got, ok := ParseRegister(name)
		if !ok {
			t.Fatalf("ParseRegister(%q) failed for register %d", name, int(i))
		}
		if got != i {
			t.Errorf("round trip for register %d produced %v via %q", int(i), got, name)
		}
	}
}

func TestZeroRegisterIsZero(t *testing.T) {
	if !Zero.IsZero() {
		t.Error("Zero.IsZero() = false")
	}
	if RA.IsZero() {
		t.Error("RA.IsZero() = true")
	}
}
