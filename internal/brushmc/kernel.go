package brushmc

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Dispatcher runs the transport kernel over every pixel coordinate in
// [0,width)×[0,height) exactly once and returns only after all output
// writes are visible. Backends may fan the work out however they like;
// pixels carry no data dependencies on each other.
type Dispatcher interface {
	Dispatch(p Params, table []float64, bags []uint8, out *Framebuffer) error
}

// cpuDispatcher splits the flattened pixel domain into contiguous
// ranges, one goroutine per worker. The kernel phase only reads shared
// data (table, bags, params); each goroutine mutates its private RNG
// and writes to disjoint framebuffer slots, so no locks are needed.
type cpuDispatcher struct {
	workers int
}

// NewCPUDispatcher returns the default backend. workers <= 0 means one
// per CPU.
func NewCPUDispatcher(workers int) Dispatcher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &cpuDispatcher{workers: workers}
}

func (d *cpuDispatcher) Dispatch(p Params, table []float64, bags []uint8, out *Framebuffer) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if out.Width != p.Width || out.Height != p.Height {
		return fmt.Errorf("output surface is %dx%d, params say %dx%d", out.Width, out.Height, p.Width, p.Height)
	}
	if want := p.Pigments * p.Wavelengths; len(table) != want {
		return fmt.Errorf("pigment table has %d entries, want %d", len(table), want)
	}
	if want := p.Width * p.Height * p.BagSize; len(bags) != want {
		return fmt.Errorf("canvas buffer has %d slots, want %d", len(bags), want)
	}

	nPix := p.Width * p.Height
	workers := d.workers
	if workers > nPix {
		workers = nPix
	}
	per, rem := nPix/workers, nPix%workers

	var done int64
	nextPrint := progressStep(nPix)

	var g errgroup.Group
	start := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < rem {
			count++
		}
		lo, hi := start, start+count
		start = hi
		g.Go(func() error {
			for idx := lo; idx < hi; idx++ {
				simulatePixel(idx, p, table, bags, out)
				if n := atomic.AddInt64(&done, 1); n%nextPrint == 0 {
					fmt.Printf("[PROGRESS] %.2f%%\n", float64(n)*100/float64(nPix))
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// progressStep returns how many finished pixels sit between progress
// prints, about 1% of the domain.
func progressStep(total int) int64 {
	if total >= 100 {
		return int64(total / 100)
	}
	return 1
}

// simulatePixel runs p.Photons independent survival trials against the
// pixel's bag. Per photon the draw order is fixed: wavelength bin, bag
// slot, absorption threshold. The photon survives iff u > absorb; a
// survival adds one to its bin. Bins reduce pairwise to RGB.
func simulatePixel(idx int, p Params, table []float64, bags []uint8, out *Framebuffer) {
	rng := NewPixelRand(uint32(idx), p.Seed)
	base := idx * p.BagSize

	var bins [NWavelengths]int
	for n := 0; n < p.Photons; n++ {
		wl := rng.Intn(uint32(p.Wavelengths))
		slot := rng.Intn(uint32(p.BagSize))
		pid := bags[base+int(slot)]
		absorb := table[int(pid)*p.Wavelengths+int(wl)]
		if u := rng.Float(); u > absorb {
			bins[wl]++
		}
	}

	inv := 1.0 / float64(p.Photons)
	o := idx * 4
	out.Pix[o+ChR] = clamp01(float64(bins[0]+bins[1]) * inv)
	out.Pix[o+ChG] = clamp01(float64(bins[2]+bins[3]) * inv)
	out.Pix[o+ChB] = clamp01(float64(bins[4]+bins[5]) * inv)
	out.Pix[o+ChA] = 1
}

// Render simulates the whole canvas and returns the linear framebuffer
// (before post-processing). The render is a pure function of
// (table, canvas, params): re-running with the same inputs reproduces
// the same sampled sequences, so callers recover from transient host
// failures by just rendering again.
func Render(d Dispatcher, table *PigmentTable, c *Canvas, photons int, seed uint32) (*Framebuffer, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	p := NewParams(c, photons, seed)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := NewFramebuffer(p.Width, p.Height)
	if err := d.Dispatch(p, table.Flatten(), c.Bags, out); err != nil {
		return nil, err
	}
	return out, nil
}
