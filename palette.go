package trayico

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ColorPair is the background and foreground of one icon variant.
type ColorPair struct {
	Background RGB
	Foreground RGB
}

// Variant is a named color scheme. Each variant becomes its own icon file.
type Variant struct {
	Name   string
	Colors ColorPair
}

const DefaultVariant = "green"

var ErrInvalidColor = errors.New("invalid color")

// Variants are the built-in color schemes, in output order.
var Variants = []Variant{
	{"green", ColorPair{Background: RGB{34, 139, 34}, Foreground: RGB{255, 255, 255}}},
	{"yellow", ColorPair{Background: RGB{218, 165, 32}, Foreground: RGB{0, 0, 0}}},
	{"red", ColorPair{Background: RGB{200, 40, 40}, Foreground: RGB{255, 255, 255}}},
}

// LookupVariant finds a built-in variant by name.
func LookupVariant(name string) (Variant, bool) {
	for _, v := range Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// ParseVariant parses "name=RRGGBB:RRGGBB" (background, then foreground).
// A leading '#' on either color is accepted.
func ParseVariant(s string) (Variant, error) {
	name, colors, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return Variant{}, fmt.Errorf("%w: %q is not name=background:foreground", ErrInvalidColor, s)
	}
	bgText, fgText, ok := strings.Cut(colors, ":")
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q is missing a foreground color", ErrInvalidColor, s)
	}

	bg, err := ParseRGB(bgText)
	if err != nil {
		return Variant{}, err
	}
	fg, err := ParseRGB(fgText)
	if err != nil {
		return Variant{}, err
	}
	return Variant{Name: name, Colors: ColorPair{Background: bg, Foreground: fg}}, nil
}

// ParseRGB parses a six digit hex color such as "228b22" or "#228B22".
func ParseRGB(s string) (RGB, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return RGB{b[0], b[1], b[2]}, nil
}
