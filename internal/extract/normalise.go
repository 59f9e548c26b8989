package extract

import (
	"strconv"
	"strings"

	"github.com/cattint/cattint/internal/colour"
)

// normaliseLiteral converts any supported colour literal (hex in 3, 4, 6
// or 8 digit form, rgb/rgba, hsl/hsla) to canonical lowercase 6-digit
// hex. Alpha channels are discarded. Returns ok=false for anything it
// cannot parse.
func normaliseLiteral(lit string) (string, bool) {
	lit = strings.TrimSpace(lit)

	if strings.HasPrefix(lit, "#") {
		return normaliseHexLiteral(lit)
	}
	if strings.HasPrefix(lit, "rgb") {
		return normaliseRGBLiteral(lit)
	}
	if strings.HasPrefix(lit, "hsl") {
		return normaliseHSLLiteral(lit)
	}
	return "", false
}

func normaliseHexLiteral(lit string) (string, bool) {
	digits := lit[1:]

	// Strip the alpha component from #rgba / #rrggbbaa forms.
	switch len(digits) {
	case 4:
		digits = digits[:3]
	case 8:
		digits = digits[:6]
	}

	return colour.NormalizeHex(digits)
}

// normaliseRGBLiteral parses rgb()/rgba() functional notation, clamping
// each channel to [0, 255].
func normaliseRGBLiteral(lit string) (string, bool) {
	m := rgbFnRe.FindStringSubmatch(lit)
	if m == nil {
		return "", false
	}

	// The regex guarantees valid floats.
	r, _ := strconv.ParseFloat(m[1], 64)
	g, _ := strconv.ParseFloat(m[2], 64)
	b, _ := strconv.ParseFloat(m[3], 64)

	rgb := colour.RGB{
		R: colour.Clamp255(r),
		G: colour.Clamp255(g),
		B: colour.Clamp255(b),
	}
	return rgb.Hex(), true
}

// normaliseHSLLiteral parses hsl()/hsla() functional notation and
// converts through the shared colour-space maths.
func normaliseHSLLiteral(lit string) (string, bool) {
	m := hslFnRe.FindStringSubmatch(lit)
	if m == nil {
		return "", false
	}

	h, _ := strconv.ParseFloat(m[1], 64)
	s, _ := strconv.ParseFloat(m[2], 64)
	l, _ := strconv.ParseFloat(m[3], 64)

	// Tolerate fractional saturation/lightness without % signs.
	if s <= 1 && l <= 1 {
		s *= 100
		l *= 100
	}

	rgb := colour.HSLToRGB(colour.HSL{H: h, S: s, L: l})
	return rgb.Hex(), true
}
