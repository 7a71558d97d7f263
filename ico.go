package trayico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/akavel/rsrc/ico"
)

const (
	iconDirSize      = 6
	iconDirEntrySize = 16
	infoHeaderSize   = 40

	iconTypeICO = 1
	bitCount    = 32
)

var ErrMalformedICO = errors.New("malformed icon container")

// bitmapInfoHeader is BITMAPINFOHEADER as stored in front of each image.
type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

// Entry is one packed image together with its edge length.
type Entry struct {
	Size int
	Data []byte
}

// PackEntry wraps rendered pixels into an icon image: info header, BGRA data
// and an all-zero AND mask. The header height is doubled because the format
// counts the mask as part of the image.
func PackEntry(pixels PixelBuffer, size int) []byte {
	maskRowBytes := (size + 31) / 32 * 4
	buf := bytes.NewBuffer(make([]byte, 0, infoHeaderSize+len(pixels)+maskRowBytes*size))

	binary.Write(buf, binary.LittleEndian, bitmapInfoHeader{
		Size:      infoHeaderSize,
		Width:     int32(size),
		Height:    int32(size * 2),
		Planes:    1,
		BitCount:  bitCount,
		SizeImage: uint32(len(pixels)),
	})
	buf.Write(pixels)

	// alpha already lives in the pixels, so the mask hides nothing
	buf.Write(make([]byte, maskRowBytes*size))

	return buf.Bytes()
}

// dirDimension encodes an edge length for the directory, where 0 means 256.
// Sizes above 256 cannot be represented and are stored as 0 as well.
func dirDimension(size int) uint8 {
	if size >= 256 {
		return 0
	}
	return uint8(size)
}

// Assemble writes the container header, one directory record per entry and
// then the entry data, in input order.
func Assemble(entries []Entry) []byte {
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.LittleEndian, iconDir{
		Type:  iconTypeICO,
		Count: uint16(len(entries)),
	})

	offset := iconDirSize + iconDirEntrySize*len(entries)
	for _, e := range entries {
		binary.Write(buf, binary.LittleEndian, iconDirEntry{
			Width:       dirDimension(e.Size),
			Height:      dirDimension(e.Size),
			Planes:      1,
			BitCount:    bitCount,
			BytesInRes:  uint32(len(e.Data)),
			ImageOffset: uint32(offset),
		})
		offset += len(e.Data)
	}

	for _, e := range entries {
		buf.Write(e.Data)
	}

	return buf.Bytes()
}

// Build renders g at each size with the given colors and returns the
// complete icon file.
func Build(g Glyph, colors ColorPair, sizes ...int) []byte {
	src := g.Bitmap()
	entries := make([]Entry, 0, len(sizes))
	for _, size := range sizes {
		pixels := Render(Scale(src, size), colors.Background, colors.Foreground)
		entries = append(entries, Entry{
			Size: size,
			Data: PackEntry(pixels, size),
		})
	}
	return Assemble(entries)
}

// VerifyICO checks that every directory record of data points at an image
// inside the file that starts with a 40-byte info header of matching size.
func VerifyICO(data []byte) error {
	var hdr iconDir
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedICO, err)
	}
	if hdr.Type != iconTypeICO {
		return fmt.Errorf("%w: type %d is not an icon", ErrMalformedICO, hdr.Type)
	}

	dir, err := ico.DecodeHeaders(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedICO, err)
	}

	for i, e := range dir {
		start, end := int(e.ImageOffset), int(e.ImageOffset)+int(e.BytesInRes)
		if end > len(data) || end-start < infoHeaderSize {
			return fmt.Errorf("%w: entry %d spans %d..%d of %d bytes", ErrMalformedICO, i, start, end, len(data))
		}

		var info bitmapInfoHeader
		if err := binary.Read(bytes.NewReader(data[start:end]), binary.LittleEndian, &info); err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrMalformedICO, i, err)
		}

		width := int(e.Width)
		if width == 0 {
			width = 256
		}
		if info.Size != infoHeaderSize || int(info.Width) != width || int(info.Height) != 2*width {
			return fmt.Errorf("%w: entry %d header is %dx%d (size %d), want %dx%d", ErrMalformedICO,
				i, info.Width, info.Height, info.Size, width, 2*width)
		}
	}
	return nil
}
