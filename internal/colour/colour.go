// Package colour provides the colour-space maths used across cattint:
// hex parsing and normalisation, RGB/HSL/LAB conversions, WCAG relative
// luminance and contrast ratios, Delta-E distance, hue arithmetic and
// alpha blending. All functions are pure; the only state is the optional
// memoisation cache in memo.go.
package colour

import (
	"fmt"
	"strings"
)

// RGB represents a colour in 8-bit RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL represents a colour in HSL space.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// LAB represents a colour in CIE L*a*b* space (D65 white point).
type LAB struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// String returns the RGB colour as "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a hex colour string into RGB.
// Accepts #RGB, #RRGGBB, RGB and RRGGBB in any case.
// Returns ok=false for malformed input; callers are expected to skip,
// not fail, since CSS in the wild is routinely messy.
func ParseHex(hex string) (RGB, bool) {
	hex = strings.TrimSpace(hex)
	hex = strings.TrimPrefix(hex, "#")

	// Expand shorthand (RGB -> RRGGBB), doubling each digit.
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return RGB{}, false
	}

	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(hex[i*2])
		lo, ok2 := hexNibble(hex[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, false
		}
		out[i] = hi<<4 | lo
	}

	return RGB{R: out[0], G: out[1], B: out[2]}, true
}

// NormalizeHex canonicalises a hex colour string to lowercase 6-digit
// "#rrggbb" form. Every comparison and cache lookup in cattint happens on
// this canonical form. Returns ok=false for malformed input.
func NormalizeHex(hex string) (string, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return "", false
	}
	return rgb.Hex(), true
}

func hexNibble(c byte) (uint8, bool) {
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

// ColorJSON is the serialisable view of a colour: hex plus RGB and HSL
// components for consumer convenience.
type ColorJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// ToJSON builds the serialisable view of an RGB colour.
func ToJSON(rgb RGB) ColorJSON {
	return ColorJSON{
		Hex: rgb.Hex(),
		RGB: rgb,
		HSL: RGBToHSL(rgb),
	}
}
