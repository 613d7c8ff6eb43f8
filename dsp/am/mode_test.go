package am

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"DSB-FC", DSBFC},
		{"dsb_fc", DSBFC},
		{"Full Carrier", DSBFC},
		{"DSB-SC", DSBSC},
		{" dsbsc ", DSBSC},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseMode("ssb"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("ParseMode(ssb) error = %v, want ErrUnknownMode", err)
	}
}

func TestParseDemodMode(t *testing.T) {
	tests := []struct {
		in   string
		want DemodMode
	}{
		{"Envelope", Envelope},
		{"envelope detector", Envelope},
		{"COHERENT", Coherent},
		{"synchronous", Coherent},
	}
	for _, tt := range tests {
		got, err := ParseDemodMode(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseDemodMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseDemodMode("product"); !errors.Is(err, ErrUnknownDemodMode) {
		t.Fatalf("ParseDemodMode(product) error = %v, want ErrUnknownDemodMode", err)
	}
}

func TestModeTextRoundTrip(t *testing.T) {
	for _, m := range []Mode{DSBFC, DSBSC} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", m, err)
		}
		var got Mode
		if err := got.UnmarshalText(text); err != nil || got != m {
			t.Fatalf("UnmarshalText(%s) = %v, %v", text, got, err)
		}
	}
	for _, d := range []DemodMode{Envelope, Coherent} {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", d, err)
		}
		var got DemodMode
		if err := got.UnmarshalText(text); err != nil || got != d {
			t.Fatalf("UnmarshalText(%s) = %v, %v", text, got, err)
		}
	}
	if _, err := Mode(0).MarshalText(); err == nil {
		t.Fatal("expected error for invalid mode")
	}
	if Mode(5).String() != "Mode(5)" || DemodMode(5).String() != "DemodMode(5)" {
		t.Fatal("unexpected String for invalid values")
	}
}
