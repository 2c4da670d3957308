package printer

import (
	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/kapil-777/thermal-go/internal/bitmap"
)

// PrintQRCode renders text as a QR code and prints it. The code is scaled up
// for legibility and thresholded rather than dithered so its modules stay
// solid black.
func (d *Device) PrintQRCode(text string) error {
	code, err := qr.Encode(text, qr.M, qr.Auto)
	if err != nil {
		return err
	}

	// Quadrupling the area of each module is enough for most scanners.
	size := code.Bounds().Dx() * 4
	if size > MaxWidth {
		size = MaxWidth
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return err
	}

	return d.PrintBitmap(bitmap.Pack(bitmap.ForPrinter(scaled, MaxWidth, false)))
}
