// Package catppuccin holds the four Catppuccin flavor palettes and the
// accent scheme engine that derives companion accents for each
// (flavor, accent) pair.
package catppuccin

import (
	"fmt"
	"strings"

	"github.com/cattint/cattint/internal/colour"
)

// Flavor identifies one of the four Catppuccin palettes.
type Flavor string

const (
	FlavorLatte     Flavor = "latte"
	FlavorFrappe    Flavor = "frappe"
	FlavorMacchiato Flavor = "macchiato"
	FlavorMocha     Flavor = "mocha"
)

// Flavors lists all flavors, lightest first.
var Flavors = []Flavor{FlavorLatte, FlavorFrappe, FlavorMacchiato, FlavorMocha}

// IsLight reports whether the flavor is a light theme. Latte is the
// only one.
func (f Flavor) IsLight() bool { return f == FlavorLatte }

func (f Flavor) String() string { return string(f) }

// ParseFlavor resolves a user-supplied flavor name. Unknown names are
// an error, not a fallback.
func ParseFlavor(s string) (Flavor, error) {
	switch Flavor(strings.ToLower(strings.TrimSpace(s))) {
	case FlavorLatte:
		return FlavorLatte, nil
	case FlavorFrappe, "frappé":
		return FlavorFrappe, nil
	case FlavorMacchiato:
		return FlavorMacchiato, nil
	case FlavorMocha:
		return FlavorMocha, nil
	}
	return "", fmt.Errorf("unknown flavor %q (expected latte, frappe, macchiato or mocha)", s)
}

// Accent identifies one of the fourteen Catppuccin accent colors.
type Accent string

const (
	AccentRosewater Accent = "rosewater"
	AccentFlamingo  Accent = "flamingo"
	AccentPink      Accent = "pink"
	AccentMauve     Accent = "mauve"
	AccentRed       Accent = "red"
	AccentMaroon    Accent = "maroon"
	AccentPeach     Accent = "peach"
	AccentYellow    Accent = "yellow"
	AccentGreen     Accent = "green"
	AccentTeal      Accent = "teal"
	AccentSky       Accent = "sky"
	AccentSapphire  Accent = "sapphire"
	AccentBlue      Accent = "blue"
	AccentLavender  Accent = "lavender"
)

// Accents lists all accent names in upstream palette order.
var Accents = []Accent{
	AccentRosewater, AccentFlamingo, AccentPink, AccentMauve,
	AccentRed, AccentMaroon, AccentPeach, AccentYellow,
	AccentGreen, AccentTeal, AccentSky, AccentSapphire,
	AccentBlue, AccentLavender,
}

func (a Accent) String() string { return string(a) }

// ParseAccent resolves a user-supplied accent name, failing fast on
// anything outside the fourteen known accents.
func ParseAccent(s string) (Accent, error) {
	want := Accent(strings.ToLower(strings.TrimSpace(s)))
	for _, a := range Accents {
		if a == want {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown accent %q (expected one of %s)", s, accentNameList())
}

func accentNameList() string {
	names := make([]string, len(Accents))
	for i, a := range Accents {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

// Neutral role names within a flavor, darkest-to-lightest in dark
// flavors and the reverse in latte.
const (
	NeutralText     = "text"
	NeutralSubtext1 = "subtext1"
	NeutralSubtext0 = "subtext0"
	NeutralOverlay2 = "overlay2"
	NeutralOverlay1 = "overlay1"
	NeutralOverlay0 = "overlay0"
	NeutralSurface2 = "surface2"
	NeutralSurface1 = "surface1"
	NeutralSurface0 = "surface0"
	NeutralBase     = "base"
	NeutralMantle   = "mantle"
	NeutralCrust    = "crust"
)

// NeutralNames lists the twelve neutral names, text first.
var NeutralNames = []string{
	NeutralText, NeutralSubtext1, NeutralSubtext0,
	NeutralOverlay2, NeutralOverlay1, NeutralOverlay0,
	NeutralSurface2, NeutralSurface1, NeutralSurface0,
	NeutralBase, NeutralMantle, NeutralCrust,
}

// FlavorPalette is the full 26-color palette of one flavor.
type FlavorPalette struct {
	Flavor   Flavor
	Accents  map[Accent]colour.RGB
	Neutrals map[string]colour.RGB
}

// Accent returns the RGB value of an accent in this flavor.
func (p *FlavorPalette) Accent(a Accent) colour.RGB { return p.Accents[a] }

// Neutral returns the RGB value of a neutral by name.
func (p *FlavorPalette) Neutral(name string) colour.RGB { return p.Neutrals[name] }

// Palette returns the palette for a flavor. The maps are shared; treat
// them as read-only.
func Palette(f Flavor) *FlavorPalette { return palettes[f] }

func mustRGB(hex string) colour.RGB {
	rgb, ok := colour.ParseHex(hex)
	if !ok {
		panic("catppuccin: bad palette literal " + hex)
	}
	return rgb
}

// Upstream Catppuccin palette values.
var palettes = map[Flavor]*FlavorPalette{
	FlavorLatte: {
		Flavor: FlavorLatte,
		Accents: map[Accent]colour.RGB{
			AccentRosewater: mustRGB("#dc8a78"),
			AccentFlamingo:  mustRGB("#dd7878"),
			AccentPink:      mustRGB("#ea76cb"),
			AccentMauve:     mustRGB("#8839ef"),
			AccentRed:       mustRGB("#d20f39"),
			AccentMaroon:    mustRGB("#e64553"),
			AccentPeach:     mustRGB("#fe640b"),
			AccentYellow:    mustRGB("#df8e1d"),
			AccentGreen:     mustRGB("#40a02b"),
			AccentTeal:      mustRGB("#179299"),
			AccentSky:       mustRGB("#04a5e5"),
			AccentSapphire:  mustRGB("#209fb5"),
			AccentBlue:      mustRGB("#1e66f5"),
			AccentLavender:  mustRGB("#7287fd"),
		},
		Neutrals: map[string]colour.RGB{
			NeutralText:     mustRGB("#4c4f69"),
			NeutralSubtext1: mustRGB("#5c5f77"),
			NeutralSubtext0: mustRGB("#6c6f85"),
			NeutralOverlay2: mustRGB("#7c7f93"),
			NeutralOverlay1: mustRGB("#8c8fa1"),
			NeutralOverlay0: mustRGB("#9ca0b0"),
			NeutralSurface2: mustRGB("#acb0be"),
			NeutralSurface1: mustRGB("#bcc0cc"),
			NeutralSurface0: mustRGB("#ccd0da"),
			NeutralBase:     mustRGB("#eff1f5"),
			NeutralMantle:   mustRGB("#e6e9ef"),
			NeutralCrust:    mustRGB("#dce0e8"),
		},
	},
	FlavorFrappe: {
		Flavor: FlavorFrappe,
		Accents: map[Accent]colour.RGB{
			AccentRosewater: mustRGB("#f2d5cf"),
			AccentFlamingo:  mustRGB("#eebebe"),
			AccentPink:      mustRGB("#f4b8e4"),
			AccentMauve:     mustRGB("#ca9ee6"),
			AccentRed:       mustRGB("#e78284"),
			AccentMaroon:    mustRGB("#ea999c"),
			AccentPeach:     mustRGB("#ef9f76"),
			AccentYellow:    mustRGB("#e5c890"),
			AccentGreen:     mustRGB("#a6d189"),
			AccentTeal:      mustRGB("#81c8be"),
			AccentSky:       mustRGB("#99d1db"),
			AccentSapphire:  mustRGB("#85c1dc"),
			AccentBlue:      mustRGB("#8caaee"),
			AccentLavender:  mustRGB("#babbf1"),
		},
		Neutrals: map[string]colour.RGB{
			NeutralText:     mustRGB("#c6d0f5"),
			NeutralSubtext1: mustRGB("#b5bfe2"),
			NeutralSubtext0: mustRGB("#a5adce"),
			NeutralOverlay2: mustRGB("#949cbb"),
			NeutralOverlay1: mustRGB("#838ba7"),
			NeutralOverlay0: mustRGB("#737994"),
			NeutralSurface2: mustRGB("#626880"),
			NeutralSurface1: mustRGB("#51576d"),
			NeutralSurface0: mustRGB("#414559"),
			NeutralBase:     mustRGB("#303446"),
			NeutralMantle:   mustRGB("#292c3c"),
			NeutralCrust:    mustRGB("#232634"),
		},
	},
	FlavorMacchiato: {
		Flavor: FlavorMacchiato,
		Accents: map[Accent]colour.RGB{
			AccentRosewater: mustRGB("#f4dbd6"),
			AccentFlamingo:  mustRGB("#f0c6c6"),
			AccentPink:      mustRGB("#f5bde6"),
			AccentMauve:     mustRGB("#c6a0f6"),
			AccentRed:       mustRGB("#ed8796"),
			AccentMaroon:    mustRGB("#ee99a0"),
			AccentPeach:     mustRGB("#f5a97f"),
			AccentYellow:    mustRGB("#eed49f"),
			AccentGreen:     mustRGB("#a6da95"),
			AccentTeal:      mustRGB("#8bd5ca"),
			AccentSky:       mustRGB("#91d7e3"),
			AccentSapphire:  mustRGB("#7dc4e4"),
			AccentBlue:      mustRGB("#8aadf4"),
			AccentLavender:  mustRGB("#b7bdf8"),
		},
		Neutrals: map[string]colour.RGB{
			NeutralText:     mustRGB("#cad3f5"),
			NeutralSubtext1: mustRGB("#b8c0e0"),
			NeutralSubtext0: mustRGB("#a5adcb"),
			NeutralOverlay2: mustRGB("#939ab7"),
			NeutralOverlay1: mustRGB("#8087a2"),
			NeutralOverlay0: mustRGB("#6e738d"),
			NeutralSurface2: mustRGB("#5b6078"),
			NeutralSurface1: mustRGB("#494d64"),
			NeutralSurface0: mustRGB("#363a4f"),
			NeutralBase:     mustRGB("#24273a"),
			NeutralMantle:   mustRGB("#1e2030"),
			NeutralCrust:    mustRGB("#181926"),
		},
	},
	FlavorMocha: {
		Flavor: FlavorMocha,
		Accents: map[Accent]colour.RGB{
			AccentRosewater: mustRGB("#f5e0dc"),
			AccentFlamingo:  mustRGB("#f2cdcd"),
			AccentPink:      mustRGB("#f5c2e7"),
			AccentMauve:     mustRGB("#cba6f7"),
			AccentRed:       mustRGB("#f38ba8"),
			AccentMaroon:    mustRGB("#eba0ac"),
			AccentPeach:     mustRGB("#fab387"),
			AccentYellow:    mustRGB("#f9e2af"),
			AccentGreen:     mustRGB("#a6e3a1"),
			AccentTeal:      mustRGB("#94e2d5"),
			AccentSky:       mustRGB("#89dceb"),
			AccentSapphire:  mustRGB("#74c7ec"),
			AccentBlue:      mustRGB("#89b4fa"),
			AccentLavender:  mustRGB("#b4befe"),
		},
		Neutrals: map[string]colour.RGB{
			NeutralText:     mustRGB("#cdd6f4"),
			NeutralSubtext1: mustRGB("#bac2de"),
			NeutralSubtext0: mustRGB("#a6adc8"),
			NeutralOverlay2: mustRGB("#9399b2"),
			NeutralOverlay1: mustRGB("#7f849c"),
			NeutralOverlay0: mustRGB("#6c7086"),
			NeutralSurface2: mustRGB("#585b70"),
			NeutralSurface1: mustRGB("#45475a"),
			NeutralSurface0: mustRGB("#313244"),
			NeutralBase:     mustRGB("#1e1e2e"),
			NeutralMantle:   mustRGB("#181825"),
			NeutralCrust:    mustRGB("#11111b"),
		},
	},
}
