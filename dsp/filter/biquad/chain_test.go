package biquad

import (
	"math"
	"testing"
)

func TestChainCascadeMatchesSections(t *testing.T) {
	coeffs := []Coefficients{
		rbjLowpass(800, 0.5412, 48000),
		rbjLowpass(800, 1.3066, 48000),
	}
	s1 := NewSection(coeffs[0])
	s2 := NewSection(coeffs[1])
	c := NewChain(coeffs)

	if c.NumSections() != 2 || c.Order() != 4 {
		t.Fatalf("sections=%d order=%d, want 2/4", c.NumSections(), c.Order())
	}

	for i := 0; i < 100; i++ {
		x := math.Cos(float64(i) * 0.11)
		want := s2.ProcessSample(s1.ProcessSample(x))
		if got := c.ProcessSample(x); !almostEqual(got, want, eps) {
			t.Fatalf("sample %d: chain %.15f ref %.15f", i, got, want)
		}
	}
}

func TestChainGain(t *testing.T) {
	c := NewChain([]Coefficients{{B0: 1}}, WithGain(0.5))
	if c.Gain() != 0.5 {
		t.Fatalf("gain = %v, want 0.5", c.Gain())
	}
	buf := []float64{2, 4}
	c.ProcessBlock(buf)
	if buf[0] != 1 || buf[1] != 2 {
		t.Fatalf("gain not applied: %v", buf)
	}
}

func TestChainSettleTo(t *testing.T) {
	c := NewChain([]Coefficients{rbjLowpass(300, 0.7, 8000), rbjLowpass(300, 1.2, 8000)})
	c.SettleTo(-1.5)
	want := -1.5 * c.DCGain()
	for i := 0; i < 32; i++ {
		if got := c.ProcessSample(-1.5); !almostEqual(got, want, 1e-12) {
			t.Fatalf("sample %d: %v want %v", i, got, want)
		}
	}
}

func TestChainStateRoundTrip(t *testing.T) {
	c := NewChain([]Coefficients{rbjLowpass(300, 0.7, 8000)})
	c.ProcessSample(1)
	saved := c.State()
	c.Reset()
	c.SetState(saved)
	if c.Section(0).State() != saved[0] {
		t.Fatalf("state mismatch after restore")
	}
}

func TestChainStable(t *testing.T) {
	if !NewChain([]Coefficients{rbjLowpass(1000, 0.7, 48000)}).Stable() {
		t.Fatal("lowpass reported unstable")
	}
	if NewChain([]Coefficients{{B0: 1, A2: 1.2}}).Stable() {
		t.Fatal("pole outside unit circle not detected")
	}
}

func TestChainResponseDC(t *testing.T) {
	c := NewChain([]Coefficients{rbjLowpass(1000, 0.7, 48000), rbjLowpass(1000, 0.7, 48000)})
	if db := c.MagnitudeDB(0, 48000); math.Abs(db) > 1e-9 {
		t.Fatalf("DC magnitude = %v dB, want 0", db)
	}
	if g := c.DCGain(); math.Abs(g-1) > 1e-12 {
		t.Fatalf("DCGain = %v, want 1", g)
	}
}
