package trayico

import (
	"io"

	"golang.org/x/image/bmp"
)

// WritePreview encodes rendered pixels as a standalone BMP file so a single
// icon image can be inspected without an icon viewer.
func WritePreview(w io.Writer, pixels PixelBuffer, size int) error {
	return bmp.Encode(w, pixels.Image(size))
}
