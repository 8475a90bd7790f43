// Package colormath implements the sRGB arithmetic behind every color token:
// hex parsing and normalisation, linear-light conversion, WCAG relative
// luminance and hue/saturation/lightness decomposition.
package colormath

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Hex is a validated sRGB color. The channel bytes are the source of truth;
// String always renders the normalised #RRGGBB form.
type Hex struct {
	R, G, B uint8
}

var (
	// White is the canonical #FFFFFF.
	White = Hex{R: 0xFF, G: 0xFF, B: 0xFF}
	// Black is the canonical #000000.
	Black = Hex{}
)

// Parse validates s and returns its channels. "#RGB" shorthand is expanded;
// the leading '#' is optional. It never substitutes a default color.
func Parse(s string) (Hex, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(raw) {
	case 3:
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	case 6:
	default:
		return Hex{}, tserrors.NewValidationError("", fmt.Sprintf("invalid hex color %q: expected 3 or 6 hex digits", s), nil)
	}

	var channels [3]uint8
	for i := range channels {
		hi, okHi := hexDigit(raw[i*2])
		lo, okLo := hexDigit(raw[i*2+1])
		if !okHi || !okLo {
			return Hex{}, tserrors.NewValidationError("", fmt.Sprintf("invalid hex color %q: non-hex character", s), nil)
		}
		channels[i] = hi<<4 | lo
	}

	return Hex{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustParse is Parse for package-level constants; it panics on bad input.
func MustParse(s string) Hex {
	h, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Normalize returns the canonical #RRGGBB spelling of s.
func Normalize(s string) (string, error) {
	h, err := Parse(s)
	if err != nil {
		return "", err
	}
	return h.String(), nil
}

// Valid reports whether s parses as a color.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// String renders the upper-case #RRGGBB form.
func (h Hex) String() string {
	return fmt.Sprintf("#%02X%02X%02X", h.R, h.G, h.B)
}

// ToLinear converts one 8-bit sRGB channel to linear light using the WCAG 2.x
// transfer function (0.03928 knee).
func ToLinear(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance is the WCAG relative luminance in [0,1].
func RelativeLuminance(h Hex) float64 {
	return 0.2126*ToLinear(h.R) + 0.7152*ToLinear(h.G) + 0.0722*ToLinear(h.B)
}

// Luminance parses s and returns its relative luminance.
func Luminance(s string) (float64, error) {
	h, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return RelativeLuminance(h), nil
}

// HSL is a hue (degrees, [0,360)), saturation and lightness ([0,1]) triple.
type HSL struct {
	H, S, L float64
}

// ToHSL decomposes h into hue, saturation and lightness.
func ToHSL(h Hex) HSL {
	hue, sat, light := h.colorful().Hsl()
	return HSL{H: hue, S: sat, L: light}
}

// FromHSL recomposes an HSL triple, clamping out-of-gamut results to the
// nearest 8-bit channel values.
func FromHSL(v HSL) Hex {
	c := colorful.Hsl(v.H, clampUnit(v.S), clampUnit(v.L)).Clamped()
	r, g, b := c.RGB255()
	return Hex{R: r, G: g, B: b}
}

func (h Hex) colorful() colorful.Color {
	return colorful.Color{R: float64(h.R) / 255, G: float64(h.G) / 255, B: float64(h.B) / 255}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
