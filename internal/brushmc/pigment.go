package brushmc

import "fmt"

// Pigment is an absorption spectrum: one absorption probability per
// wavelength bin, each in [0,1].
type Pigment struct {
	Name   string
	Absorb [NWavelengths]float64
}

// PigmentTable is the closed set of pigments a canvas can hold, indexed
// by 8-bit pigment id. Process-wide constant data, never mutated.
type PigmentTable struct {
	Pigments [NPigments]Pigment
}

// NewPigmentTable returns the built-in table: three inks plus paper.
// Paper absorbs nothing, so photons landing on it always survive.
func NewPigmentTable() *PigmentTable {
	return &PigmentTable{
		Pigments: [NPigments]Pigment{
			{Name: "crimson", Absorb: [NWavelengths]float64{0.1, 0.2, 0.8, 0.9, 0.95, 0.99}},
			{Name: "viridian", Absorb: [NWavelengths]float64{0.85, 0.8, 0.15, 0.2, 0.8, 0.9}},
			{Name: "ultramarine", Absorb: [NWavelengths]float64{0.9, 0.85, 0.8, 0.7, 0.15, 0.1}},
			{Name: "paper", Absorb: [NWavelengths]float64{0, 0, 0, 0, 0, 0}},
		},
	}
}

// Flatten lays the table out as one float slice (pid*NWavelengths + wl),
// the shape the dispatch interface consumes.
func (t *PigmentTable) Flatten() []float64 {
	flat := make([]float64, NPigments*NWavelengths)
	for pid, p := range t.Pigments {
		copy(flat[pid*NWavelengths:], p.Absorb[:])
	}
	return flat
}

// Validate checks every absorption probability is in [0,1].
func (t *PigmentTable) Validate() error {
	for pid, p := range t.Pigments {
		for wl, a := range p.Absorb {
			if a < 0 || a > 1 {
				return fmt.Errorf("pigment %d (%s) bin %d: absorption %g outside [0,1]", pid, p.Name, wl, a)
			}
		}
	}
	return nil
}
