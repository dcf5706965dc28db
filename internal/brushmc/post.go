package brushmc

import "math"

// ToneMap maps the simulated spectral response into display range, in
// place. Per channel, in this exact order: multiply by Brightness, then
// multiply by Brightness again combined with a clamp to 1, then apply
// inverse gamma. The double brightness multiply is part of the visible
// output contract and stays even though it reads like a duplication.
// Alpha is forced fully opaque.
func ToneMap(f *Framebuffer) {
	invGamma := 1.0 / Gamma
	for i := 0; i < len(f.Pix); i += 4 {
		for c := ChR; c <= ChB; c++ {
			v := f.Pix[i+c] * Brightness
			v *= Brightness
			if v > 1 {
				v = 1
			}
			f.Pix[i+c] = math.Pow(v, invGamma)
		}
		f.Pix[i+ChA] = 1
	}
}
