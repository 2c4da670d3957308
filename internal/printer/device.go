package printer

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/kapil-777/thermal-go/internal/bitmap"
	"github.com/kapil-777/thermal-go/internal/transport"
)

const (
	// MaxWidth is the widest bitmap the print head can render, in dots.
	MaxWidth = 384

	// maxChunkRows bounds the rows sent under a single bitmap header so one
	// chunk never outgrows the device's receive buffer.
	maxChunkRows = 100

	// maxStride is the widest row the single-byte header field can carry.
	maxStride = 255

	// byteDelay is the pause after each payload byte. The device loses data
	// if bytes arrive faster than its intake rate; keep this at 250µs unless
	// the target device's buffer characteristics have been verified.
	byteDelay = 250 * time.Microsecond

	// drainPoll is the sleep between polls while waiting for the transport
	// to finish delivering written bytes.
	drainPoll = time.Millisecond
)

// A Device drives a thermal receipt printer over a Connection.
//
// All operations are synchronous: each write is followed by a wait for the
// transport to drain. There is no timeout on that wait, so a device that
// never drains blocks the caller indefinitely; callers that need
// responsiveness should run the Device on a dedicated worker with their own
// cancellation.
type Device struct {
	conn transport.Connection
}

// New creates a Device over the given connection.
func New(conn transport.Connection) *Device {
	return &Device{conn: conn}
}

// MaxWidth returns the maximum printable width in dots.
func (d *Device) MaxWidth() int {
	return MaxWidth
}

// Print writes a line of text, appending a line feed if text does not end
// with one.
func (d *Device) Print(text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := d.conn.Write([]byte(text)); err != nil {
		return err
	}
	return d.waitDrained()
}

// SetUnderline turns underlined text on or off.
func (d *Device) SetUnderline(on bool) error {
	var weight byte
	if on {
		weight = 2
	}
	if _, err := d.conn.Write(setUnderline(weight)); err != nil {
		return err
	}
	return d.waitDrained()
}

// Feed advances the paper by the given number of dot lines.
func (d *Device) Feed(lines int) error {
	if lines < 0 || lines >= 256 {
		return fmt.Errorf("lines must be in the range [0, 256)")
	}
	if _, err := d.conn.Write(feedLines(byte(lines))); err != nil {
		return err
	}
	return d.waitDrained()
}

// PrintImage runs img through the full pipeline - downscale to the device
// width, grayscale, Floyd-Steinberg dither, pack - and prints the result.
func (d *Device) PrintImage(img image.Image) error {
	return d.PrintBitmap(bitmap.Pack(bitmap.ForPrinter(img, MaxWidth, true)))
}

// PrintBitmap transmits a packed bitmap in chunks of at most 100 rows. The
// bitmap's stride must fit the header's single-byte width field; wider
// bitmaps are rejected before anything is written.
//
// A failure mid-transmission leaves the device in an undefined partially-
// received state; nothing is retried here.
func (d *Device) PrintBitmap(b *bitmap.Packed) error {
	if b.Stride() > maxStride {
		return fmt.Errorf("bitmap must be at most %v pixels wide, got %v", maxStride*8, b.Width())
	}

	for start := 0; start < b.Height(); start += maxChunkRows {
		rows := b.Height() - start
		if rows > maxChunkRows {
			rows = maxChunkRows
		}
		if err := d.sendChunk(b.Rows(start, rows)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Device) sendChunk(chunk *bitmap.Packed) error {
	if _, err := d.conn.Write(bitmapHeader(byte(chunk.Height()), byte(chunk.Stride()))); err != nil {
		return err
	}
	if err := d.waitDrained(); err != nil {
		return err
	}

	// One write per byte, paced to the device's intake rate.
	buf := make([]byte, 1)
	for _, p := range chunk.Data() {
		buf[0] = p
		if _, err := d.conn.Write(buf); err != nil {
			return err
		}
		time.Sleep(byteDelay)
	}
	return d.waitDrained()
}

// waitDrained blocks until the connection reports no pending bytes, sleeping
// between polls. It never times out.
func (d *Device) waitDrained() error {
	for {
		n, err := d.conn.Pending()
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		time.Sleep(drainPoll)
	}
}
