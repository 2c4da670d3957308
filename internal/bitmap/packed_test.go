package bitmap

import (
	"fmt"
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(width, height int, black bool) *Image {
	img := New(image.Rect(0, 0, width, height))
	if black {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.SetBlack(x, y, true)
			}
		}
	}
	return img
}

func randomImage(width, height int) *Image {
	img := New(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetBlack(x, y, rand.Intn(2) == 0)
		}
	}
	return img
}

func TestPackAllBlack(t *testing.T) {
	packed := Pack(solidImage(16, 8, true))

	require.Equal(t, 2, packed.Stride())
	require.Len(t, packed.Data(), 16)
	for _, b := range packed.Data() {
		assert.Equal(t, byte(0xff), b)
	}
}

func TestPackAllWhite(t *testing.T) {
	packed := Pack(solidImage(16, 8, false))

	require.Len(t, packed.Data(), 16)
	for _, b := range packed.Data() {
		assert.Equal(t, byte(0x00), b)
	}
}

func TestPackLengthAndPadding(t *testing.T) {
	// 10 pixels wide: stride 2, six padding bits per row.
	packed := Pack(solidImage(10, 3, true))

	require.Equal(t, 2, packed.Stride())
	require.Len(t, packed.Data(), 6)
	for y := 0; y < 3; y++ {
		assert.Equal(t, byte(0xff), packed.Data()[y*2])
		// Only the top two bits of the trailing byte belong to the image.
		assert.Equal(t, byte(0xc0), packed.Data()[y*2+1])
		for x := 10; x < 16; x++ {
			assert.False(t, packed.BlackAt(x, y))
		}
	}
}

func TestPackPreservesBits(t *testing.T) {
	const testCaseCount = 20

	for i := 0; i < testCaseCount; i++ {
		width, height := 1+rand.Intn(400), 1+rand.Intn(400)
		t.Run(fmt.Sprintf("test %v: %vx%v", i, width, height), func(t *testing.T) {
			img := randomImage(width, height)
			packed := Pack(img)

			require.Equal(t, width, packed.Width())
			require.Equal(t, height, packed.Height())
			require.Equal(t, (width+7)/8, packed.Stride())
			require.Len(t, packed.Data(), packed.Stride()*height)

			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					if img.BlackAt(x, y) != packed.BlackAt(x, y) {
						t.Fatalf("bit at (%v, %v) doesn't match", x, y)
					}
				}
			}
		})
	}
}

func TestPackMSBFirst(t *testing.T) {
	// A single black pixel in the leftmost column must land in bit 7.
	img := New(image.Rect(0, 0, 8, 1))
	img.SetBlack(0, 0, true)

	packed := Pack(img)
	require.Len(t, packed.Data(), 1)
	assert.Equal(t, byte(0x80), packed.Data()[0])
}

func TestRows(t *testing.T) {
	img := randomImage(24, 10)
	packed := Pack(img)

	slice := packed.Rows(4, 3)
	assert.Equal(t, 24, slice.Width())
	assert.Equal(t, 3, slice.Height())
	assert.Equal(t, packed.Stride(), slice.Stride())
	assert.Equal(t, packed.Data()[4*packed.Stride():7*packed.Stride()], slice.Data())

	for y := 0; y < 3; y++ {
		for x := 0; x < 24; x++ {
			assert.Equal(t, packed.BlackAt(x, y+4), slice.BlackAt(x, y))
		}
	}
}
