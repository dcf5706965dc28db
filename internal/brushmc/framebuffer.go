package brushmc

// Framebuffer is the output surface: a flat grid of 4-component float
// pixels, one non-overlapping write per pixel coordinate during
// dispatch. Values are in [0,1] once the kernel has written them.
type Framebuffer struct {
	Width, Height int
	Pix           []float64 // flat: (y*Width+x)*4 + c
}

// NewFramebuffer allocates a zero-initialized surface.
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic("framebuffer resolution must be positive")
	}
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*4),
	}
}

// idx returns the flat offset of channel c at pixel (x,y).
func (f *Framebuffer) idx(x, y, c int) int {
	return (y*f.Width+x)*4 + c
}

// At returns the RGBA components at (x,y).
func (f *Framebuffer) At(x, y int) (r, g, b, a float64) {
	i := f.idx(x, y, ChR)
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}
