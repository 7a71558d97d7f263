package trayico

import (
	"image"
	"image/color"
)

// RGB is a color as written in the palette. The container stores it as BGRA.
type RGB struct {
	R, G, B uint8
}

// PixelBuffer holds 32-bit BGRA pixels, bottom row first.
type PixelBuffer []byte

// Render paints b with fg for set bits and bg for the rest.
// Rows are emitted bottom-up since that is how the container stores them.
func Render(b *Bitmap, bg, fg RGB) PixelBuffer {
	size := b.Size
	pixels := make(PixelBuffer, 0, size*size*4)
	for y := 0; y < size; y++ {
		flippedY := size - 1 - y
		for x := 0; x < size; x++ {
			c := bg
			if b.At(x, flippedY) {
				c = fg
			}
			pixels = append(pixels, c.B, c.G, c.R, 255)
		}
	}
	return pixels
}

// Image decodes the buffer back into a top-down image of the given size.
func (p PixelBuffer) Image(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		row := p[(size-1-y)*size*4:]
		for x := 0; x < size; x++ {
			px := row[x*4 : x*4+4]
			img.SetNRGBA(x, y, color.NRGBA{R: px[2], G: px[1], B: px[0], A: px[3]})
		}
	}
	return img
}
