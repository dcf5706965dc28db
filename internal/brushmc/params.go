package brushmc

import "fmt"

// Params is the immutable configuration snapshot for one render. It is
// built once before dispatch and read concurrently by every pixel unit.
type Params struct {
	Width, Height int
	BagSize       int
	Photons       int
	Wavelengths   int
	Pigments      int
	Seed          uint32
}

// NewParams snapshots the render configuration for a canvas.
func NewParams(c *Canvas, photons int, seed uint32) Params {
	return Params{
		Width:       c.Width,
		Height:      c.Height,
		BagSize:     c.BagSize,
		Photons:     photons,
		Wavelengths: NWavelengths,
		Pigments:    NPigments,
		Seed:        seed,
	}
}

// Validate rejects configuration errors before dispatch; nothing inside
// the per-pixel loop checks these again.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.BagSize <= 0 {
		return fmt.Errorf("bag size must be positive, got %d", p.BagSize)
	}
	if p.Photons <= 0 {
		return fmt.Errorf("photon count must be positive, got %d", p.Photons)
	}
	if p.Wavelengths != NWavelengths {
		return fmt.Errorf("wavelength bins are fixed at %d, got %d", NWavelengths, p.Wavelengths)
	}
	if p.Pigments != NPigments {
		return fmt.Errorf("pigment count is fixed at %d, got %d", NPigments, p.Pigments)
	}
	return nil
}
