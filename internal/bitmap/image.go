package bitmap

import (
	"image"
	"image/color"
)

// IsBlack reports whether c is printable black. Only a color whose
// alpha-ignoring RGB channels are all exactly zero counts; near-black grays
// are white. Dithering upstream is responsible for pushing every pixel to
// pure black or pure white, so no further thresholding happens here.
func IsBlack(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0 && g == 0 && b == 0
}

// An Image is a 1-bit image backed by a grayscale source. A pixel is black
// exactly when its luminance is zero.
type Image struct {
	src *image.Gray
}

// New creates an all-white Image with the given bounds.
func New(r image.Rectangle) *Image {
	src := image.NewGray(r)
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	return &Image{src: src}
}

// FromGray wraps a grayscale image whose pixels are already quantized to
// exactly 0 or 255, such as the output of the Floyd-Steinberg ditherer.
func FromGray(src *image.Gray) *Image {
	return &Image{src: src}
}

// ColorModel returns the Image's color model.
func (b *Image) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds returns the domain for which At can return non-zero color.
func (b *Image) Bounds() image.Rectangle {
	return b.src.Bounds()
}

// At returns the color of the pixel at (x, y): color.Black for black bits
// and color.White for everything else.
func (b *Image) At(x, y int) color.Color {
	if b.BlackAt(x, y) {
		return color.Black
	}
	return color.White
}

// BlackAt returns true if the pixel at (x, y) prints black.
func (b *Image) BlackAt(x, y int) bool {
	return IsBlack(b.src.GrayAt(x, y))
}

// SetBlack sets or clears the pixel at (x, y).
func (b *Image) SetBlack(x, y int, v bool) {
	if v {
		b.src.SetGray(x, y, color.Gray{Y: 0})
	} else {
		b.src.SetGray(x, y, color.Gray{Y: 0xff})
	}
}
