package brushmc

// Rand is a 32-bit xorshift generator. It is a value type: every unit of
// work constructs its own from (pixel index, global seed), so the kernel
// never shares mutable generator state between goroutines.
type Rand struct {
	s uint32
}

// NewPixelRand seeds a generator for one pixel. The mix decorrelates
// neighbouring linear indices; the exact constants and the final
// avalanche step are load-bearing for reproducibility, keep them as is.
func NewPixelRand(idx, seed uint32) Rand {
	s := idx ^ (seed*seedMulA + seedAddB)
	s ^= s >> 16
	return Rand{s: s}
}

// Uint32 advances the full xorshift state and returns it. Every draw in
// the kernel goes through this; skipping or reordering the three shifts
// changes the whole sampled sequence.
func (r *Rand) Uint32() uint32 {
	x := r.s
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.s = x
	return x
}

// Float returns a uniform value in [0,1) built from the low 24 bits.
// The upper bits are discarded on purpose; 24 bits is plenty for an
// absorption threshold test.
func (r *Rand) Float() float64 {
	return float64(r.Uint32()&0x00FFFFFF) / 16777216.0
}

// Intn returns Uint32() % n. Biased for non-power-of-two n, which is
// within tolerance for a stochastic visual render. Not to be replaced
// with rejection sampling: the draw count per photon must stay fixed.
func (r *Rand) Intn(n uint32) uint32 {
	return r.Uint32() % n
}
