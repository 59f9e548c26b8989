package colour

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantOK  bool
	}{
		{name: "full form", input: "#1a2b3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}, wantOK: true},
		{name: "shorthand doubles digits", input: "#fff", want: RGB{R: 255, G: 255, B: 255}, wantOK: true},
		{name: "uppercase", input: "#ABCDEF", want: RGB{R: 0xab, G: 0xcd, B: 0xef}, wantOK: true},
		{name: "no hash prefix", input: "89b4fa", want: RGB{R: 0x89, G: 0xb4, B: 0xfa}, wantOK: true},
		{name: "surrounding whitespace", input: "  #000  ", want: RGB{}, wantOK: true},
		{name: "wrong length", input: "#abcd", wantOK: false},
		{name: "non-hex digits", input: "#zzzzzz", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHex(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseHex(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#fff", "#ffffff"},
		{"#FFFFFF", "#ffffff"},
		{"ABC", "#aabbcc"},
		{"#58A6FF", "#58a6ff"},
	}

	for _, tt := range tests {
		got, ok := NormalizeHex(tt.input)
		if !ok {
			t.Fatalf("NormalizeHex(%q) unexpectedly failed", tt.input)
		}
		if got != tt.want {
			t.Errorf("NormalizeHex(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, ok := NormalizeHex("not-a-colour"); ok {
		t.Error("NormalizeHex accepted malformed input")
	}
}

func TestContrastRatioProperties(t *testing.T) {
	colours := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{0x1e, 0x1e, 0x2e},
		{0xcd, 0xd6, 0xf4},
		{0x89, 0xb4, 0xfa},
		{0xd2, 0x0f, 0x39},
	}

	// Symmetry: ContrastRatio(a, b) == ContrastRatio(b, a).
	for _, a := range colours {
		for _, b := range colours {
			ab := ContrastRatio(a, b)
			ba := ContrastRatio(b, a)
			if math.Abs(ab-ba) > 1e-12 {
				t.Errorf("asymmetric contrast for %s vs %s: %.12f != %.12f", a.Hex(), b.Hex(), ab, ba)
			}
			if ab < 1 || ab > 21 {
				t.Errorf("contrast %s vs %s = %.2f outside [1, 21]", a.Hex(), b.Hex(), ab)
			}
		}
	}

	// Identity: a colour against itself is exactly 1.
	for _, c := range colours {
		if got := ContrastRatio(c, c); got != 1 {
			t.Errorf("ContrastRatio(%s, %s) = %v, want 1", c.Hex(), c.Hex(), got)
		}
	}

	// Black vs white is the maximum, 21:1.
	if got := ContrastRatio(RGB{0, 0, 0}, RGB{255, 255, 255}); math.Abs(got-21) > 1e-9 {
		t.Errorf("black vs white contrast = %.6f, want 21", got)
	}
}

func TestRGBToHSLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{name: "pure red", rgb: RGB{255, 0, 0}, want: HSL{H: 0, S: 100, L: 50}},
		{name: "pure green", rgb: RGB{0, 255, 0}, want: HSL{H: 120, S: 100, L: 50}},
		{name: "pure blue", rgb: RGB{0, 0, 255}, want: HSL{H: 240, S: 100, L: 50}},
		{name: "white is achromatic", rgb: RGB{255, 255, 255}, want: HSL{H: 0, S: 0, L: 100}},
		{name: "mid grey", rgb: RGB{128, 128, 128}, want: HSL{H: 0, S: 0, L: 50.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.rgb)
			if math.Abs(got.H-tt.want.H) > 0.5 || math.Abs(got.S-tt.want.S) > 0.5 || math.Abs(got.L-tt.want.L) > 0.5 {
				t.Errorf("RGBToHSL(%s) = %+v, want %+v", tt.rgb.Hex(), got, tt.want)
			}

			back := HSLToRGB(got)
			if dr, dg, db := chanDiff(back, tt.rgb); dr > 1 || dg > 1 || db > 1 {
				t.Errorf("round trip %s -> %+v -> %s drifted", tt.rgb.Hex(), got, back.Hex())
			}
		})
	}
}

func chanDiff(a, b RGB) (int, int, int) {
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	return abs(int(a.R) - int(b.R)), abs(int(a.G) - int(b.G)), abs(int(a.B) - int(b.B))
}

// TestRGBToLABAgainstColorful cross-checks our LAB conversion against
// go-colorful's independent implementation. go-colorful scales L to
// [0, 1] and a/b by 1/100, so the comparison rescales.
func TestRGBToLABAgainstColorful(t *testing.T) {
	samples := []RGB{
		{0x58, 0xa6, 0xff},
		{0x63, 0x5b, 0xff},
		{0x23, 0x86, 0x36},
		{0xf3, 0x8b, 0xa8},
		{0x11, 0x11, 0x1b},
		{0xef, 0xf1, 0xf5},
	}

	for _, rgb := range samples {
		got := RGBToLAB(rgb)

		ref, _ := colorful.Hex(rgb.Hex())
		l, a, b := ref.Lab()

		if math.Abs(got.L-l*100) > 1 || math.Abs(got.A-a*100) > 1 || math.Abs(got.B-b*100) > 1 {
			t.Errorf("RGBToLAB(%s) = %+v, colorful reference = (%.2f, %.2f, %.2f)",
				rgb.Hex(), got, l*100, a*100, b*100)
		}
	}
}

func TestDeltaE76AgainstColorful(t *testing.T) {
	a := RGB{0x58, 0xa6, 0xff}
	b := RGB{0x63, 0x5b, 0xff}

	got := DeltaE76(RGBToLAB(a), RGBToLAB(b))

	ca, _ := colorful.Hex(a.Hex())
	cb, _ := colorful.Hex(b.Hex())
	want := ca.DistanceLab(cb) * 100

	if math.Abs(got-want) > 1 {
		t.Errorf("DeltaE76 = %.3f, colorful reference = %.3f", got, want)
	}

	if d := DeltaE76(RGBToLAB(a), RGBToLAB(a)); d != 0 {
		t.Errorf("DeltaE76 of identical colours = %v, want 0", d)
	}
}

func TestWrapHue(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{365, 5},
		{-10, 350},
		{432, 72},
		{-144, 216},
	}

	for _, tt := range tests {
		if got := WrapHue(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHueDistanceWrapsAroundZero(t *testing.T) {
	if got := HueDistance(350, 10); got != 20 {
		t.Errorf("HueDistance(350, 10) = %v, want 20", got)
	}
	if got := HueDistance(10, 350); got != 20 {
		t.Errorf("HueDistance(10, 350) = %v, want 20", got)
	}
	if got := HueDistance(0, 180); got != 180 {
		t.Errorf("HueDistance(0, 180) = %v, want 180", got)
	}
}

func TestBlend(t *testing.T) {
	base := RGB{0, 0, 0}
	overlay := RGB{255, 255, 255}

	if got := Blend(base, overlay, 0); got != base {
		t.Errorf("alpha 0 should return base, got %s", got.Hex())
	}
	if got := Blend(base, overlay, 1); got != overlay {
		t.Errorf("alpha 1 should return overlay, got %s", got.Hex())
	}

	mid := Blend(base, overlay, 0.5)
	if mid.R < 127 || mid.R > 128 {
		t.Errorf("alpha 0.5 blend of black/white = %s, want mid grey", mid.Hex())
	}
}

func TestMemo(t *testing.T) {
	memo := NewMemo(nil)

	hsl, ok := memo.HSL("#89B4FA")
	if !ok {
		t.Fatal("memo rejected valid hex")
	}
	hsl2, _ := memo.HSL("#89b4fa")
	if hsl != hsl2 {
		t.Error("memoised lookups for equivalent hex strings differ")
	}

	if _, ok := memo.LAB("#nope"); ok {
		t.Error("memo accepted malformed hex")
	}

	lum, ok := memo.Luminance("#ffffff")
	if !ok || math.Abs(lum-1.0) > 1e-9 {
		t.Errorf("Luminance(#ffffff) = %v, %v; want 1", lum, ok)
	}
}
