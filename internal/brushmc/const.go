package brushmc

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2
	ChA = 3

	// Spectral model: 6 fixed wavelength bins reduced pairwise to RGB
	// (bins {0,1}→R, {2,3}→G, {4,5}→B).
	NWavelengths = 6
	NPigments    = 4
	PaperID      = 3

	// Post-process constants. Brightness is applied twice before the
	// clamp+gamma step; the output depends on it, do not fold the two
	// multiplies into one.
	Brightness = 1.5
	Gamma      = 2.8

	// Stroke softness divisors, one per shape. Independently tuned,
	// not derived from a shared formula.
	circleSigmaDiv = 2.20
	squareSigmaDiv = 3.0

	// Pixel seeding mix constants. The sampled index sequence must be
	// reproducible bit-for-bit across runs, so these never change.
	seedMulA = 747796405
	seedAddB = 2891336453
)
