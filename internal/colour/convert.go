package colour

import "math"

// RGBToHSL converts RGB to HSL colour space.
// Returns hue in degrees [0, 360) and saturation/lightness as
// percentages [0, 100].
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic.
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: WrapHue(h), S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL back to RGB.
// Hue is in degrees, saturation and lightness are percentages.
func HSLToRGB(hsl HSL) RGB {
	h := WrapHue(hsl.H) / 360.0
	s := clamp01(hsl.S / 100.0)
	l := clamp01(hsl.L / 100.0)

	if s == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+1.0/3.0)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-1.0/3.0)

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// linearize applies the sRGB gamma decode to a channel in [0, 1].
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance calculates the relative luminance of a colour
// according to WCAG 2.0. Returns a value between 0 (darkest) and 1
// (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	r := linearize(float64(rgb.R) / 255.0)
	g := linearize(float64(rgb.G) / 255.0)
	b := linearize(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// D65 reference white point.
const (
	refX = 95.047
	refY = 100.0
	refZ = 108.883
)

// RGBToLAB converts RGB to CIE L*a*b* via XYZ (D65 illuminant).
// Used wherever the system needs a perceptual distance (Delta-E).
func RGBToLAB(rgb RGB) LAB {
	// sRGB to linear RGB.
	r := linearize(float64(rgb.R)/255.0) * 100
	g := linearize(float64(rgb.G)/255.0) * 100
	b := linearize(float64(rgb.B)/255.0) * 100

	// Linear RGB to XYZ (sRGB D65 matrix).
	x := r*0.4124 + g*0.3576 + b*0.1805
	y := r*0.2126 + g*0.7152 + b*0.0722
	z := r*0.0193 + g*0.1192 + b*0.9505

	// XYZ to LAB (CIE piecewise cube root).
	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// labF is the CIE forward transform: cube root above the linear
// threshold, linear segment below.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Clamp255 restricts a channel value to the [0, 255] uint8 range.
func Clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
