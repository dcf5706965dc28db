package brushmc

import (
	"fmt"
	"math"
)

// Strokes run on the host, single-threaded, strictly before kernel
// dispatch. Later strokes compete against whatever bag state earlier
// strokes left behind; there is no normalization across strokes.

// StrokeCircle deposits pid around (cx,cy) with a radial Gaussian
// falloff. Pixels whose squared distance exceeds radius² are skipped
// before any weight is computed (hard cutoff).
func (c *Canvas) StrokeCircle(pid uint8, cx, cy, radius int, intensity float64) error {
	if err := checkStroke(pid, radius, intensity); err != nil {
		return err
	}
	sigma := float64(radius) / circleSigmaDiv
	denom := 2 * sigma * sigma
	r2 := radius * radius
	baseN := int(float64(c.BagSize) * intensity)

	for y := imax(0, cy-radius); y <= imin(c.Height-1, cy+radius); y++ {
		dy := y - cy
		for x := imax(0, cx-radius); x <= imin(c.Width-1, cx+radius); x++ {
			dx := x - cx
			d2 := dx*dx + dy*dy
			if d2 > r2 {
				continue
			}
			w := math.Exp(-float64(d2) / denom)
			if nAdd := int(float64(baseN) * w); nAdd > 0 {
				c.deposit(x, y, pid, nAdd)
			}
		}
	}
	DebugLog("Circle stroke pid=%d at (%d,%d) r=%d intensity=%.3f", pid, cx, cy, radius, intensity)
	return nil
}

// StrokeSquare deposits pid over the side×side box around (cx,cy) with
// a separable falloff: the product of independent 1-D Gaussians along x
// and y. No distance cutoff beyond the bounding box itself.
func (c *Canvas) StrokeSquare(pid uint8, cx, cy, side int, intensity float64) error {
	if err := checkStroke(pid, side, intensity); err != nil {
		return err
	}
	sigma := float64(side) / squareSigmaDiv
	denom := 2 * sigma * sigma
	half := side / 2
	baseN := int(float64(c.BagSize) * intensity)

	for y := imax(0, cy-half); y <= imin(c.Height-1, cy+half); y++ {
		dy := float64(y - cy)
		wy := math.Exp(-dy * dy / denom)
		for x := imax(0, cx-half); x <= imin(c.Width-1, cx+half); x++ {
			dx := float64(x - cx)
			w := math.Exp(-dx*dx/denom) * wy
			if nAdd := int(float64(baseN) * w); nAdd > 0 {
				c.deposit(x, y, pid, nAdd)
			}
		}
	}
	DebugLog("Square stroke pid=%d at (%d,%d) side=%d intensity=%.3f", pid, cx, cy, side, intensity)
	return nil
}

func checkStroke(pid uint8, extent int, intensity float64) error {
	if pid >= NPigments {
		return fmt.Errorf("pigment id %d out of range (have %d pigments)", pid, NPigments)
	}
	if extent <= 0 {
		return fmt.Errorf("stroke extent must be positive, got %d", extent)
	}
	if intensity < 0 || intensity > 1 {
		return fmt.Errorf("stroke intensity %g outside [0,1]", intensity)
	}
	return nil
}
