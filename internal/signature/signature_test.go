package signature

import (
	"reflect"
	"testing"

	"github.com/cattint/cattint/internal/catppuccin"
	"github.com/cattint/cattint/internal/colour"
	"github.com/cattint/cattint/internal/extract"
)

func saturatedColor(hex string, freq float64) *extract.AggregatedColor {
	rgb, ok := colour.ParseHex(hex)
	if !ok {
		panic("bad fixture " + hex)
	}
	return &extract.AggregatedColor{
		Hex:       hex,
		HSL:       colour.RGBToHSL(rgb),
		Count:     10,
		Frequency: freq,
	}
}

func TestDominantHueCircularMean(t *testing.T) {
	// Hues 350 and 10 at equal weight must average near the wrap
	// point, not near 180.
	colors := []*extract.AggregatedColor{
		{Hex: "#aa0022", HSL: colour.HSL{H: 350, S: 80, L: 50}, Frequency: 0.5},
		{Hex: "#aa2200", HSL: colour.HSL{H: 10, S: 80, L: 50}, Frequency: 0.5},
	}
	h := dominantHue(colors)
	if colour.HueDistance(h, 0) > 1 {
		t.Errorf("dominantHue({350, 10}) = %.2f, want within 1 degree of 0/360", h)
	}
}

func TestDominantHueDefaultsWithoutSaturation(t *testing.T) {
	colors := []*extract.AggregatedColor{
		{Hex: "#808080", HSL: colour.HSL{H: 0, S: 0, L: 50}, Frequency: 1},
	}
	if h := dominantHue(colors); h != defaultDominantHue {
		t.Errorf("dominantHue(grays) = %.2f, want %d", h, defaultDominantHue)
	}
	if h := dominantHue(nil); h != defaultDominantHue {
		t.Errorf("dominantHue(nil) = %.2f, want %d", h, defaultDominantHue)
	}
}

func TestHueName(t *testing.T) {
	tests := []struct {
		h    float64
		want string
	}{
		{0, "red"}, {350, "red"}, {30, "orange"}, {60, "yellow"},
		{120, "green"}, {180, "cyan"}, {220, "blue"}, {270, "purple"},
		{320, "magenta"},
	}
	for _, tt := range tests {
		if got := hueName(tt.h); got != tt.want {
			t.Errorf("hueName(%.0f) = %s, want %s", tt.h, got, tt.want)
		}
	}
}

func TestSaturationLevels(t *testing.T) {
	vivid := []*extract.AggregatedColor{saturatedColor("#ff0000", 1)}
	if got := saturationLevel(vivid); got != SaturationVibrant {
		t.Errorf("pure red: saturationLevel = %s, want %s", got, SaturationVibrant)
	}
	grays := []*extract.AggregatedColor{
		{Hex: "#808080", HSL: colour.HSL{S: 0, L: 50}, Frequency: 1},
	}
	if got := saturationLevel(grays); got != SaturationNeutral {
		t.Errorf("gray: saturationLevel = %s, want %s", got, SaturationNeutral)
	}
	if got := saturationLevel(nil); got != SaturationNeutral {
		t.Errorf("empty: saturationLevel = %s, want %s", got, SaturationNeutral)
	}
}

func TestBuildScenario(t *testing.T) {
	css := `.header{background:#0d1117;color:#c9d1d9}.btn{background:#238636;color:#fff}a{color:#58a6ff}`
	b := NewBuilder(nil, nil)
	sig := b.Build(css, "github.com", "css")

	if sig.Mode != extract.ModeDark {
		t.Errorf("Mode = %s, want dark", sig.Mode)
	}
	if sig.SuggestedAccent != catppuccin.AccentBlue && sig.SuggestedAccent != catppuccin.AccentSapphire {
		t.Errorf("SuggestedAccent = %s, want blue or sapphire", sig.SuggestedAccent)
	}
	if len(sig.ColorProfile.BrandColors) == 0 || sig.ColorProfile.BrandColors[0] != "#58a6ff" {
		t.Errorf("BrandColors = %v, want #58a6ff first", sig.ColorProfile.BrandColors)
	}
	if sig.ColorProfile.UniqueColorCount != 5 {
		t.Errorf("UniqueColorCount = %d, want 5", sig.ColorProfile.UniqueColorCount)
	}
	if c := sig.Metadata.OverallConfidence; c <= 0 || c > 1 {
		t.Errorf("OverallConfidence = %.2f, want in (0,1]", c)
	}
	if len(sig.SemanticRoles) == 0 {
		t.Error("SemanticRoles is empty")
	}
	if tag, ok := sig.SelectorClassifications["a"]; !ok || tag != "link" {
		t.Errorf("SelectorClassifications[a] = %q, want link", tag)
	}
}

func TestBuildDifferentiatesBrandHues(t *testing.T) {
	b := NewBuilder(nil, nil)
	blue := b.Build(`.brand{background:#58a6ff}`, "a.example", "css")
	violet := b.Build(`.brand{background:#635bff}`, "b.example", "css")

	if blue.SuggestedAccent == violet.SuggestedAccent {
		t.Errorf("both inputs suggested %s; visually distinct sites must differ", blue.SuggestedAccent)
	}
	d := colour.HueDistance(blue.ColorProfile.DominantHue, violet.ColorProfile.DominantHue)
	if d < 20 {
		t.Errorf("dominant hues %.1f and %.1f differ by %.1f degrees, want >= 20",
			blue.ColorProfile.DominantHue, violet.ColorProfile.DominantHue, d)
	}
}

func TestBuildEmptyInputDegradesGracefully(t *testing.T) {
	b := NewBuilder(nil, nil)
	sig := b.Build("", "empty.example", "css")

	if sig.Mode != extract.ModeDark {
		t.Errorf("Mode = %s, want dark default", sig.Mode)
	}
	if sig.ColorProfile.DominantHue != defaultDominantHue {
		t.Errorf("DominantHue = %.1f, want %d", sig.ColorProfile.DominantHue, defaultDominantHue)
	}
	if sig.ColorProfile.SaturationLevel != SaturationNeutral {
		t.Errorf("SaturationLevel = %s, want neutral", sig.ColorProfile.SaturationLevel)
	}
	if sig.ColorProfile.UniqueColorCount != 0 {
		t.Errorf("UniqueColorCount = %d, want 0", sig.ColorProfile.UniqueColorCount)
	}
	if sig.SuggestedAccent == "" {
		t.Error("SuggestedAccent is empty; the fallback table must always produce an accent")
	}
}

func TestBuildDeterministic(t *testing.T) {
	css := `.header{background:#0d1117;color:#c9d1d9}.btn{background:#238636}`
	b := NewBuilder(nil, nil)
	a := b.Build(css, "x.example", "css")
	c := b.Build(css, "x.example", "css")

	a.Metadata.GeneratedAt = c.Metadata.GeneratedAt
	if !reflect.DeepEqual(a, c) {
		t.Error("repeated builds of identical input differ")
	}
}

func TestAccentForHueCoversCircle(t *testing.T) {
	for h := 0.0; h < 360; h += 0.5 {
		if accentForHue(h) == "" {
			t.Fatalf("accentForHue(%.1f) returned empty accent", h)
		}
	}
	if got := accentForHue(213); got != catppuccin.AccentBlue {
		t.Errorf("accentForHue(213) = %s, want blue", got)
	}
	if got := accentForHue(243); got != catppuccin.AccentLavender {
		t.Errorf("accentForHue(243) = %s, want lavender", got)
	}
}
