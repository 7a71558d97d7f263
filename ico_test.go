package trayico_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/akavel/rsrc/ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icedream/trayico"
)

func greenColors(t *testing.T) trayico.ColorPair {
	t.Helper()
	v, ok := trayico.LookupVariant(trayico.DefaultVariant)
	require.True(t, ok)
	return v.Colors
}

func TestPackEntry(t *testing.T) {
	for _, size := range []int{16, 32} {
		pixels := trayico.Render(trayico.Scale(trayico.GlyphC.Bitmap(), size), trayico.RGB{}, trayico.RGB{255, 255, 255})
		entry := trayico.PackEntry(pixels, size)

		maskLen := (size + 31) / 32 * 4 * size
		require.Len(t, entry, 40+len(pixels)+maskLen)

		le := binary.LittleEndian
		assert.Equal(t, uint32(40), le.Uint32(entry[0:]), "biSize")
		assert.Equal(t, uint32(size), le.Uint32(entry[4:]), "biWidth")
		assert.Equal(t, uint32(2*size), le.Uint32(entry[8:]), "biHeight")
		assert.Equal(t, uint16(1), le.Uint16(entry[12:]), "biPlanes")
		assert.Equal(t, uint16(32), le.Uint16(entry[14:]), "biBitCount")
		assert.Equal(t, uint32(0), le.Uint32(entry[16:]), "biCompression")
		assert.Equal(t, uint32(len(pixels)), le.Uint32(entry[20:]), "biSizeImage")
		assert.Equal(t, make([]byte, 16), entry[24:40])

		assert.Equal(t, []byte(pixels), entry[40:40+len(pixels)])
		assert.Equal(t, make([]byte, maskLen), entry[40+len(pixels):])
	}
}

func TestPackEntryMaskPadding(t *testing.T) {
	// 33 pixels per row need two 32-bit mask words
	entry := trayico.PackEntry(make(trayico.PixelBuffer, 33*33*4), 33)
	assert.Len(t, entry, 40+33*33*4+8*33)
}

func TestAssembleLayout(t *testing.T) {
	a := trayico.Entry{Size: 16, Data: bytes.Repeat([]byte{0xaa}, 100)}
	b := trayico.Entry{Size: 32, Data: bytes.Repeat([]byte{0xbb}, 50)}
	data := trayico.Assemble([]trayico.Entry{a, b})

	require.Len(t, data, 6+2*16+150)
	assert.Equal(t, []byte{0, 0, 1, 0, 2, 0}, data[:6])

	assert.Equal(t, []byte{
		16, 16, 0, 0, // width, height, colors, reserved
		1, 0, 32, 0, // planes, bit count
		100, 0, 0, 0, // bytes in resource
		38, 0, 0, 0, // offset
	}, data[6:22])
	assert.Equal(t, []byte{
		32, 32, 0, 0,
		1, 0, 32, 0,
		50, 0, 0, 0,
		138, 0, 0, 0,
	}, data[22:38])

	assert.Equal(t, a.Data, data[38:138])
	assert.Equal(t, b.Data, data[138:])
}

func TestBuildRoundTrip(t *testing.T) {
	data := trayico.Build(trayico.GlyphC, greenColors(t), 16, 32)
	require.Len(t, data, 5430)

	le := binary.LittleEndian
	assert.Equal(t, uint16(0), le.Uint16(data[0:]))
	assert.Equal(t, uint16(1), le.Uint16(data[2:]))
	assert.Equal(t, uint16(2), le.Uint16(data[4:]))

	dir, err := ico.DecodeHeaders(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, dir, 2)

	offset := uint32(6 + 16*len(dir))
	for i, size := range []int{16, 32} {
		e := dir[i]
		assert.Equal(t, byte(size), e.Width)
		assert.Equal(t, byte(size), e.Height)
		assert.Equal(t, uint16(1), e.Planes)
		assert.Equal(t, uint16(32), e.BitCount)
		assert.Equal(t, offset, e.ImageOffset, "entry %d offset", i)

		end := e.ImageOffset + e.BytesInRes
		require.LessOrEqual(t, int(end), len(data))
		image := data[e.ImageOffset:end]
		assert.Equal(t, uint32(40), le.Uint32(image[0:]))
		assert.Equal(t, uint32(2*size), le.Uint32(image[8:]))

		offset = end
	}
	assert.Equal(t, uint32(len(data)), offset)

	assert.NoError(t, trayico.VerifyICO(data))
}

func TestBuildDeterministic(t *testing.T) {
	green := greenColors(t)
	assert.Equal(t, trayico.Build(trayico.GlyphC, green, 16, 32), trayico.Build(trayico.GlyphC, green, 16, 32))

	red, ok := trayico.LookupVariant("red")
	require.True(t, ok)
	assert.NotEqual(t, trayico.Build(trayico.GlyphC, green, 16, 32), trayico.Build(trayico.GlyphC, red.Colors, 16, 32))
}

func TestAssembleLargeSizeStoresZero(t *testing.T) {
	// the directory cannot hold 256 or more, so the dimension bytes wrap to 0
	data := trayico.Build(trayico.GlyphC, greenColors(t), 256)

	assert.Equal(t, byte(0), data[6], "width byte")
	assert.Equal(t, byte(0), data[7], "height byte")
	assert.Equal(t, uint32(256), binary.LittleEndian.Uint32(data[22+4:]), "image keeps its real width")
	assert.NoError(t, trayico.VerifyICO(data))

	data = trayico.Assemble([]trayico.Entry{{Size: 300, Data: []byte{1}}})
	assert.Equal(t, byte(0), data[6])
	assert.Equal(t, byte(0), data[7])
}

func TestVerifyICORejects(t *testing.T) {
	valid := trayico.Build(trayico.GlyphC, greenColors(t), 16)

	t.Run("wrong type", func(t *testing.T) {
		data := bytes.Clone(valid)
		data[2] = 2
		assert.ErrorIs(t, trayico.VerifyICO(data), trayico.ErrMalformedICO)
	})

	t.Run("truncated", func(t *testing.T) {
		assert.ErrorIs(t, trayico.VerifyICO(valid[:len(valid)-1]), trayico.ErrMalformedICO)
	})

	t.Run("bad offset", func(t *testing.T) {
		data := bytes.Clone(valid)
		binary.LittleEndian.PutUint32(data[18:], 23)
		assert.ErrorIs(t, trayico.VerifyICO(data), trayico.ErrMalformedICO)
	})

	t.Run("single height", func(t *testing.T) {
		data := bytes.Clone(valid)
		binary.LittleEndian.PutUint32(data[22+8:], 16)
		assert.ErrorIs(t, trayico.VerifyICO(data), trayico.ErrMalformedICO)
	})
}
