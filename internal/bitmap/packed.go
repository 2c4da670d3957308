package bitmap

import "fmt"

// A Packed holds 1-bit image data in the printer's wire layout: row-major
// bytes, eight pixels per byte with the leftmost pixel in the most
// significant bit, and each row padded to a whole byte. A set bit prints
// black; the padding bits past the true width stay clear.
type Packed struct {
	data          []byte
	width, height int
	stride        int
}

const bitsPerByte = 8

// Pack converts a 1-bit image into the packed wire layout. The result always
// holds exactly Stride()*Height() bytes.
func Pack(img *Image) *Packed {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	stride := (width + bitsPerByte - 1) / bitsPerByte

	data := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		row := data[y*stride : (y+1)*stride]
		for x := 0; x < width; x++ {
			if img.BlackAt(bounds.Min.X+x, bounds.Min.Y+y) {
				row[x/bitsPerByte] |= 0x80 >> uint(x%bitsPerByte)
			}
		}
	}

	return &Packed{data: data, width: width, height: height, stride: stride}
}

// Width returns the width of the bitmap in pixels.
func (b *Packed) Width() int {
	return b.width
}

// Height returns the height of the bitmap in rows.
func (b *Packed) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *Packed) Stride() int {
	return b.stride
}

// Data returns the packed bytes, row-major.
func (b *Packed) Data() []byte {
	return b.data
}

// BlackAt reports whether the bit at (x, y) prints black. Padding bits past
// the true width report white.
func (b *Packed) BlackAt(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.data[y*b.stride+x/bitsPerByte]&(0x80>>uint(x%bitsPerByte)) != 0
}

// Rows returns a vertical slice of the bitmap covering n rows starting at
// start. The slice shares the receiver's storage.
func (b *Packed) Rows(start, n int) *Packed {
	return &Packed{
		data:   b.data[start*b.stride : (start+n)*b.stride],
		width:  b.width,
		height: n,
		stride: b.stride,
	}
}

func (b *Packed) String() string {
	return fmt.Sprintf("Packed(%dx%d)", b.width, b.height)
}
