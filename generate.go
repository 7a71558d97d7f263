package trayico

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultSizes are the icon edge lengths a tray needs.
var DefaultSizes = []int{16, 32}

// Generator writes one icon file per variant plus the default icon.
type Generator struct {
	// Dir is created if missing. Defaults to "res".
	Dir   string
	Glyph Glyph
	// Sizes default to DefaultSizes.
	Sizes []int
	// Variants default to the built-in Variants.
	Variants []Variant
	// Default names the variant copied to app.ico. Defaults to DefaultVariant.
	Default string
	// Preview also writes a BMP per variant and size.
	Preview bool
	// Out receives one line per written file. Nil discards them.
	Out io.Writer
}

// NewGenerator returns a generator producing the stock tray icons into dir.
func NewGenerator(dir string) *Generator {
	return &Generator{
		Dir:      dir,
		Glyph:    GlyphC,
		Sizes:    DefaultSizes,
		Variants: Variants,
		Default:  DefaultVariant,
		Out:      os.Stdout,
	}
}

// VariantPath is where the icon for the named variant is written.
func (g *Generator) VariantPath(name string) string {
	return filepath.Join(g.dir(), "app_"+name+".ico")
}

// DefaultPath is where the default icon is written.
func (g *Generator) DefaultPath() string {
	return filepath.Join(g.dir(), "app.ico")
}

func (g *Generator) dir() string {
	if g.Dir == "" {
		return "res"
	}
	return g.Dir
}

func (g *Generator) sizes() []int {
	if len(g.Sizes) == 0 {
		return DefaultSizes
	}
	return g.Sizes
}

func (g *Generator) variants() []Variant {
	if len(g.Variants) == 0 {
		return Variants
	}
	return g.Variants
}

func (g *Generator) defaultVariant() (Variant, error) {
	name := g.Default
	if name == "" {
		name = DefaultVariant
	}
	for _, v := range g.variants() {
		if v.Name == name {
			return v, nil
		}
	}
	if v, ok := LookupVariant(name); ok {
		return v, nil
	}
	return Variant{}, fmt.Errorf("unknown default variant %q", name)
}

// Run writes all icons and returns the paths written, in order.
// It stops at the first filesystem error; files already written stay.
func (g *Generator) Run() ([]string, error) {
	def, err := g.defaultVariant()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.dir(), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var written []string
	for _, v := range g.variants() {
		path := g.VariantPath(v.Name)
		if err := g.writeIcon(path, v.Colors); err != nil {
			return written, err
		}
		written = append(written, path)

		if g.Preview {
			paths, err := g.writePreviews(v)
			written = append(written, paths...)
			if err != nil {
				return written, err
			}
		}
	}

	path := g.DefaultPath()
	if err := g.writeIcon(path, def.Colors); err != nil {
		return written, err
	}
	written = append(written, path)

	return written, nil
}

func (g *Generator) writeIcon(path string, colors ColorPair) error {
	data := Build(g.Glyph, colors, g.sizes()...)
	if err := VerifyICO(data); err != nil {
		return fmt.Errorf("building %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	g.printf("Created %s (%d bytes)\n", path, len(data))
	return nil
}

func (g *Generator) writePreviews(v Variant) ([]string, error) {
	var written []string
	src := g.Glyph.Bitmap()
	for _, size := range g.sizes() {
		path := filepath.Join(g.dir(), fmt.Sprintf("app_%s_%d.bmp", v.Name, size))
		pixels := Render(Scale(src, size), v.Colors.Background, v.Colors.Foreground)

		f, err := os.Create(path)
		if err != nil {
			return written, err
		}
		err = WritePreview(f, pixels, size)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return written, fmt.Errorf("writing preview %s: %w", path, err)
		}

		written = append(written, path)
		g.printf("Created %s\n", path)
	}
	return written, nil
}

func (g *Generator) printf(format string, args ...any) {
	if g.Out != nil {
		fmt.Fprintf(g.Out, format, args...)
	}
}
