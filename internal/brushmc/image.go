package brushmc

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ToNRGBA quantizes the framebuffer to 8-bit RGBA: each component is
// round(clamp(v,0,1)*255).
func (f *Framebuffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		rowOff := y * img.Stride
		for x := 0; x < f.Width; x++ {
			i := f.idx(x, y, ChR)
			p := rowOff + x*4
			img.Pix[p+0] = toByte(f.Pix[i+ChR])
			img.Pix[p+1] = toByte(f.Pix[i+ChG])
			img.Pix[p+2] = toByte(f.Pix[i+ChB])
			img.Pix[p+3] = toByte(f.Pix[i+ChA])
		}
	}
	return img
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// WriteImage persists the framebuffer as PNG (lossless, best
// compression), BMP or TIFF, chosen by file extension. Encoding and I/O
// failures surface to the caller; the framebuffer itself stays valid
// and can be written again to a different sink.
func WriteImage(f *Framebuffer, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", "", ".bmp", ".tif", ".tiff":
	default:
		return fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}

	img := f.ToNRGBA()

	out, err := os.Create(path)
	if err != nil {
		return err
	}

	switch ext {
	case ".bmp":
		err = bmp.Encode(out, img)
	case ".tif", ".tiff":
		err = tiff.Encode(out, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(out, img)
	}
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	DebugLog("Wrote image: %s (%dx%d)", path, f.Width, f.Height)
	return nil
}
