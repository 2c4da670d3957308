package bitmap

import (
	"image"

	"github.com/MaxHalford/halfgone"
	"github.com/nfnt/resize"
)

// Scale downsamples img to at most maxWidth pixels wide, preserving the
// aspect ratio. Images that already fit are returned unchanged.
func Scale(img image.Image, maxWidth int) image.Image {
	if img.Bounds().Dx() <= maxWidth {
		return img
	}
	return resize.Resize(uint(maxWidth), 0, img, resize.Bilinear)
}

// ForPrinter converts img to a printer-ready 1-bit image: downscale to the
// device width, convert to grayscale, and quantize to pure black and white.
//
// With dither set, Floyd-Steinberg error diffusion preserves the perceived
// tone of photographs. Without it, a hard threshold is applied instead, which
// keeps the crisp edges of synthetic images such as barcodes.
func ForPrinter(img image.Image, maxWidth int, dither bool) *Image {
	// Scale down to size.
	scaled := Scale(img, maxWidth)

	// Convert the image to grayscale.
	gray := halfgone.ImageToGray(scaled)

	if dither {
		// Apply Floyd-Steinberg dithering. Its output is exactly 0 or 255
		// per pixel, which is what the packer's black test expects.
		var floydSteinberg halfgone.FloydSteinbergDitherer
		gray = floydSteinberg.Apply(gray)
	} else {
		threshold(gray, 128)
	}
	return FromGray(gray)
}

// threshold quantizes gray in place: pixels below t become 0, the rest 255.
func threshold(gray *image.Gray, t uint8) {
	for i, y := range gray.Pix {
		if y < t {
			gray.Pix[i] = 0
		} else {
			gray.Pix[i] = 0xff
		}
	}
}
