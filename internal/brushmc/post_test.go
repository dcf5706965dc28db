package brushmc

import (
	"math"
	"testing"
)

func TestToneMapExactPoints(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	// 0.5 saturates: 0.5*1.5*1.5 = 1.125 → clamp 1 → pow(1, 1/γ) = 1
	fb.Pix[0], fb.Pix[1], fb.Pix[2] = 0.5, 0.0, 1.0
	ToneMap(fb)
	if fb.Pix[0] != 1 {
		t.Fatalf("0.5 should saturate to 1, got %g", fb.Pix[0])
	}
	if fb.Pix[1] != 0 {
		t.Fatalf("0 should stay 0, got %g", fb.Pix[1])
	}
	if fb.Pix[2] != 1 {
		t.Fatalf("1 should stay 1, got %g", fb.Pix[2])
	}
	if fb.Pix[3] != 1 {
		t.Fatalf("alpha not opaque: %g", fb.Pix[3])
	}
}

func TestToneMapOrder(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Pix[ChR] = 0.2
	ToneMap(fb)
	// brightness applied twice before clamp, then inverse gamma
	want := math.Pow(0.2*Brightness*Brightness, 1/Gamma)
	if diff := math.Abs(fb.Pix[ChR] - want); diff > 1e-12 {
		t.Fatalf("0.2 maps to %g, want %g", fb.Pix[ChR], want)
	}
}

func TestToneMapMonotonic(t *testing.T) {
	fb := NewFramebuffer(4, 1)
	in := []float64{0.05, 0.1, 0.2, 0.4}
	for i, v := range in {
		fb.Pix[i*4+ChR] = v
	}
	ToneMap(fb)
	for i := 1; i < len(in); i++ {
		if fb.Pix[i*4+ChR] < fb.Pix[(i-1)*4+ChR] {
			t.Fatalf("tone map not monotonic at %d: %g < %g", i, fb.Pix[i*4+ChR], fb.Pix[(i-1)*4+ChR])
		}
	}
}
