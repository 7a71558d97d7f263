package trayico

// Glyph is an 8x8 monochrome pattern, one byte per row.
// The most significant bit of each row is the leftmost column.
type Glyph [8]byte

// GlyphC is the "C" drawn into every tray icon.
var GlyphC = Glyph{
	0b00111110,
	0b01111111,
	0b01100000,
	0b01100000,
	0b01100000,
	0b01100000,
	0b01111111,
	0b00111110,
}

// Bitmap returns the glyph as an 8x8 bitmap.
func (g Glyph) Bitmap() *Bitmap {
	b := NewBitmap(len(g))
	for y, row := range g {
		for x := 0; x < b.Size; x++ {
			b.Set(x, y, (row>>(7-x))&1 == 1)
		}
	}
	return b
}

// Bitmap is a square monochrome image. A set bit is foreground.
type Bitmap struct {
	Size int
	Pix  []bool
}

func NewBitmap(size int) *Bitmap {
	return &Bitmap{
		Size: size,
		Pix:  make([]bool, size*size),
	}
}

func (b *Bitmap) At(x, y int) bool {
	return b.Pix[y*b.Size+x]
}

func (b *Bitmap) Set(x, y int, v bool) {
	b.Pix[y*b.Size+x] = v
}

// Scale resizes src to size x size using nearest-neighbor sampling.
// Edges come out blocky at larger sizes; nothing is interpolated.
func Scale(src *Bitmap, size int) *Bitmap {
	dst := NewBitmap(size)
	for y := 0; y < size; y++ {
		sy := sourceIndex(y, src.Size, size)
		for x := 0; x < size; x++ {
			dst.Set(x, y, src.At(sourceIndex(x, src.Size, size), sy))
		}
	}
	return dst
}

// sourceIndex maps a destination coordinate to the source coordinate it samples.
func sourceIndex(i, srcSize, dstSize int) int {
	return i * srcSize / dstSize
}
