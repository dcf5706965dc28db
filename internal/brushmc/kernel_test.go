package brushmc

import "testing"

func renderTwice(t *testing.T, c *Canvas, photons int, seed uint32) (*Framebuffer, *Framebuffer) {
	t.Helper()
	table := NewPigmentTable()
	a, err := Render(NewCPUDispatcher(0), table, c, photons, seed)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(NewCPUDispatcher(2), table, c, photons, seed)
	if err != nil {
		t.Fatal(err)
	}
	return a, b
}

func TestRenderDeterministic(t *testing.T) {
	c := NewCanvas(4, 4, 4)
	if err := c.StrokeSquare(0, 2, 2, 4, 1.0); err != nil {
		t.Fatal(err)
	}
	a, b := renderTwice(t, c, 1000, 1337)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("renders differ at component %d: %g vs %g", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestRenderChannelBounds(t *testing.T) {
	c := NewCanvas(8, 8, 4)
	if err := c.StrokeCircle(1, 4, 4, 3, 0.8); err != nil {
		t.Fatal(err)
	}
	table := NewPigmentTable()
	fb, err := Render(NewCPUDispatcher(0), table, c, 500, 7)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range fb.Pix {
		if v < 0 || v > 1 {
			t.Fatalf("component %d out of [0,1]: %g", i, v)
		}
	}
}

func TestPaperSurvivesEverything(t *testing.T) {
	// all-paper bag: absorb = 0, so every photon with u > 0 survives
	p := Params{Width: 1, Height: 1, BagSize: 4, Photons: 200, Wavelengths: NWavelengths, Pigments: NPigments, Seed: 3}
	table := NewPigmentTable().Flatten()
	bags := []uint8{PaperID, PaperID, PaperID, PaperID}
	out := NewFramebuffer(1, 1)
	simulatePixel(0, p, table, bags, out)
	r, g, b, a := out.At(0, 0)
	// survivals split across 6 bins, pairwise reduced: channels sum to ~1
	if sum := r + g + b; sum < 0.99 || sum > 1.0+1e-9 {
		t.Fatalf("paper pixel channel sum %g, want ~1", sum)
	}
	if a != 1 {
		t.Fatalf("alpha %g, want 1", a)
	}
}

func TestCrimsonDominatesRed(t *testing.T) {
	c := NewCanvas(4, 4, 4)
	if err := c.StrokeSquare(0, 2, 2, 4, 1.0); err != nil {
		t.Fatal(err)
	}
	table := NewPigmentTable()
	fb, err := Render(NewCPUDispatcher(0), table, c, 1000, 1337)
	if err != nil {
		t.Fatal(err)
	}
	// center is fully pigment 0: bins 0,1 absorb little, 2..5 absorb a lot
	r, g, b, _ := fb.At(2, 2)
	if r <= g || r <= b {
		t.Fatalf("crimson pixel not red-dominant: R=%g G=%g B=%g", r, g, b)
	}
}

func TestDispatchRejectsBadInputs(t *testing.T) {
	d := NewCPUDispatcher(0)
	table := NewPigmentTable().Flatten()
	c := NewCanvas(2, 2, 4)
	good := NewParams(c, 10, 0)

	if err := d.Dispatch(good, table[:5], c.Bags, NewFramebuffer(2, 2)); err == nil {
		t.Fatal("short pigment table accepted")
	}
	if err := d.Dispatch(good, table, c.Bags[:3], NewFramebuffer(2, 2)); err == nil {
		t.Fatal("short canvas buffer accepted")
	}
	if err := d.Dispatch(good, table, c.Bags, NewFramebuffer(3, 2)); err == nil {
		t.Fatal("mismatched output surface accepted")
	}
	bad := good
	bad.Photons = 0
	if err := d.Dispatch(bad, table, c.Bags, NewFramebuffer(2, 2)); err == nil {
		t.Fatal("zero photon count accepted")
	}
}

func TestProgressStep(t *testing.T) {
	if progressStep(16) != 1 {
		t.Fatalf("small domains print every pixel, got %d", progressStep(16))
	}
	if progressStep(100) != 1 {
		t.Fatalf("step at 100 pixels: %d", progressStep(100))
	}
	if progressStep(250000) != 2500 {
		t.Fatalf("step at 250000 pixels: %d", progressStep(250000))
	}
}

func TestRenderBlankCanvas(t *testing.T) {
	// no strokes at all: valid render, every pixel is paper
	c := NewCanvas(3, 3, 2)
	table := NewPigmentTable()
	fb, err := Render(NewCPUDispatcher(0), table, c, 300, 11)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			r, g, b, _ := fb.At(x, y)
			if sum := r + g + b; sum < 0.99 || sum > 1.0+1e-9 {
				t.Fatalf("blank pixel (%d,%d) channel sum %g", x, y, sum)
			}
		}
	}
}
