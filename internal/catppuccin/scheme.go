package catppuccin

import (
	"github.com/cattint/cattint/internal/colour"
)

// AccentSet is the companion accents derived for one (flavor, accent)
// pair. Bi accents sit 72 degrees either side of the main accent's
// hue, co accents 144 degrees. All four are distinct from each other
// and from the main accent.
type AccentSet struct {
	Bi1 Accent `json:"bi1"`
	Bi2 Accent `json:"bi2"`
	Co1 Accent `json:"co1"`
	Co2 Accent `json:"co2"`
}

// Scheme precomputes the companion accent table for every
// (flavor, accent) pair. Construct once with NewScheme; read-only
// afterwards, safe for concurrent use.
type Scheme struct {
	sets map[Flavor]map[Accent]AccentSet
}

// NewScheme builds the full 4x14 companion table.
func NewScheme() *Scheme {
	s := &Scheme{sets: make(map[Flavor]map[Accent]AccentSet, len(Flavors))}
	for _, f := range Flavors {
		s.sets[f] = make(map[Accent]AccentSet, len(Accents))
		for _, a := range Accents {
			s.sets[f][a] = deriveSet(f, a)
		}
	}
	return s
}

// Set returns the precomputed companion accents for a flavor/accent
// pair.
func (s *Scheme) Set(f Flavor, a Accent) AccentSet {
	return s.sets[f][a]
}

// deriveSet rotates the main accent's hue and snaps each rotation to
// the nearest unused palette accent. The exclusion set grows as
// companions are chosen so no accent repeats within a set.
func deriveSet(f Flavor, main Accent) AccentSet {
	p := Palette(f)
	hsl := colour.RGBToHSL(p.Accent(main))

	used := map[Accent]bool{main: true}
	pick := func(offset float64) Accent {
		target := colour.HSLToRGB(colour.HSL{
			H: colour.WrapHue(hsl.H + offset),
			S: hsl.S,
			L: hsl.L,
		})
		a := nearestAccentRGB(p, target, used)
		used[a] = true
		return a
	}

	return AccentSet{
		Bi1: pick(72),
		Bi2: pick(-72),
		Co1: pick(144),
		Co2: pick(-144),
	}
}

// nearestAccentRGB finds the palette accent closest to target by
// squared RGB distance, skipping anything in the exclusion set.
func nearestAccentRGB(p *FlavorPalette, target colour.RGB, exclude map[Accent]bool) Accent {
	var best Accent
	bestDist := -1
	for _, a := range Accents {
		if exclude[a] {
			continue
		}
		d := sqDist(p.Accent(a), target)
		if bestDist < 0 || d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}

func sqDist(a, b colour.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// NearestAccentLAB returns the accent perceptually closest to rgb,
// measured by Delta-E against the mocha palette. Mocha is the
// reference because its accents are the most saturated of the four
// flavors, which keeps hue the dominant term in the distance.
func NearestAccentLAB(rgb colour.RGB) Accent {
	ref := Palette(FlavorMocha)
	lab := colour.RGBToLAB(rgb)

	best := AccentMauve
	bestDist := -1.0
	for _, a := range Accents {
		d := colour.DeltaE76(lab, colour.RGBToLAB(ref.Accent(a)))
		if bestDist < 0 || d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}
