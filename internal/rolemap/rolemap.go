package rolemap

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/cattint/cattint/internal/catppuccin"
	"github.com/cattint/cattint/internal/classify"
	"github.com/cattint/cattint/internal/colour"
	"github.com/cattint/cattint/internal/extract"
)

// Blend opacities for derived interaction states.
const (
	hoverAlpha     = 0.2
	activeAlpha    = 0.3
	focusRingAlpha = 0.5
	selectionAlpha = 0.3
)

// Overlay thresholds: a classification only overrides a flavor
// default when it is both confident and carries real usage share.
const (
	overlayMinConfidence  = 0.5
	overlayBackgroundFreq = 0.2
	overlaySurfaceFreq    = 0.15
	overlayAccentFreq     = 0.05
)

// defaultAccentOrder is the deterministic fallback when no source
// colour suggests a primary accent.
var defaultAccentOrder = []catppuccin.Accent{
	catppuccin.AccentMauve, catppuccin.AccentBlue, catppuccin.AccentSapphire,
	catppuccin.AccentLavender, catppuccin.AccentTeal,
}

// secondaryFallback guarantees chooseSecondaryAccent is total even
// when hue-distance scoring rejects every candidate.
var secondaryFallback = map[catppuccin.Accent]catppuccin.Accent{
	catppuccin.AccentRosewater: catppuccin.AccentLavender,
	catppuccin.AccentFlamingo:  catppuccin.AccentBlue,
	catppuccin.AccentPink:      catppuccin.AccentSapphire,
	catppuccin.AccentMauve:     catppuccin.AccentBlue,
	catppuccin.AccentRed:       catppuccin.AccentBlue,
	catppuccin.AccentMaroon:    catppuccin.AccentSky,
	catppuccin.AccentPeach:     catppuccin.AccentSapphire,
	catppuccin.AccentYellow:    catppuccin.AccentLavender,
	catppuccin.AccentGreen:     catppuccin.AccentMauve,
	catppuccin.AccentTeal:      catppuccin.AccentPink,
	catppuccin.AccentSky:       catppuccin.AccentPeach,
	catppuccin.AccentSapphire:  catppuccin.AccentPeach,
	catppuccin.AccentBlue:      catppuccin.AccentMauve,
	catppuccin.AccentLavender:  catppuccin.AccentPeach,
}

// Mapper orchestrates classification, accent selection, role seeding,
// derived scales and contrast repair. Construct once; safe for
// concurrent use.
type Mapper struct {
	scheme *catppuccin.Scheme
	logger hclog.Logger
}

// NewMapper wires a Mapper. Nil arguments get a fresh scheme and a
// silenced logger.
func NewMapper(scheme *catppuccin.Scheme, logger hclog.Logger) *Mapper {
	if scheme == nil {
		scheme = catppuccin.NewScheme()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Mapper{scheme: scheme, logger: logger}
}

// Companions exposes the precomputed bi/co accent set for a pair.
func (m *Mapper) Companions(f catppuccin.Flavor, a catppuccin.Accent) catppuccin.AccentSet {
	return m.scheme.Set(f, a)
}

// Map builds a complete theme from the source colours. It is total
// and deterministic for valid options: the only failure mode is an
// unknown flavor, and unsatisfiable contrast surfaces as warnings,
// never as an error.
func (m *Mapper) Map(colors []*extract.AggregatedColor, opts Options) (*Theme, error) {
	palette := catppuccin.Palette(opts.Flavor)
	if palette == nil {
		return nil, fmt.Errorf("unknown flavor %q", opts.Flavor)
	}

	mode := extract.ModeDark
	if opts.Flavor.IsLight() {
		mode = extract.ModeLight
	}

	classifications := make([]classify.Classification, len(colors))
	for i, c := range colors {
		classifications[i] = classify.Classify(c, mode)
	}

	primary := m.choosePrimaryAccent(colors, classifications, opts)
	secondary := m.chooseSecondaryAccent(palette, primary, opts)

	theme := &Theme{
		Roles:   seedRoles(palette, primary, secondary),
		Derived: make(map[string]colour.RGB),
		Metadata: ThemeMetadata{
			Flavor:            opts.Flavor,
			PrimaryAccent:     primary,
			SecondaryAccent:   secondary,
			ContrastMode:      opts.ContrastMode,
			ContrastValidated: true,
			Warnings:          []string{},
		},
	}

	overlayClassified(theme, colors, classifications)
	deriveScales(theme, palette)
	repairContrast(theme, palette, opts.ContrastMode)

	m.logger.Debug("mapped theme",
		"flavor", opts.Flavor,
		"primary_accent", primary,
		"secondary_accent", secondary,
		"contrast_validated", theme.Metadata.ContrastValidated,
		"warnings", len(theme.Metadata.Warnings))
	return theme, nil
}

// choosePrimaryAccent prefers an explicit override, then the most
// frequent accent-classified source colour snapped to the palette,
// then the fixed fallback order.
func (m *Mapper) choosePrimaryAccent(colors []*extract.AggregatedColor, cls []classify.Classification, opts Options) catppuccin.Accent {
	if opts.PrimaryAccent != nil {
		return *opts.PrimaryAccent
	}

	type candidate struct {
		hex  string
		freq float64
		conf float64
	}
	var cands []candidate
	for i, c := range colors {
		switch cls[i].Role {
		case classify.RoleAccentLink, classify.RoleAccentInteractive, classify.RoleAccentBrand:
			cands = append(cands, candidate{hex: c.Hex, freq: c.Frequency, conf: cls[i].Confidence})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].freq != cands[j].freq {
			return cands[i].freq > cands[j].freq
		}
		if cands[i].conf != cands[j].conf {
			return cands[i].conf > cands[j].conf
		}
		return cands[i].hex < cands[j].hex
	})
	for _, cand := range cands {
		if rgb, ok := colour.ParseHex(cand.hex); ok {
			return catppuccin.NearestAccentLAB(rgb)
		}
	}
	return defaultAccentOrder[0]
}

// chooseSecondaryAccent scores every other accent by hue distance
// from the primary, preferring the 30-60 degree band with a peak at
// 45. The fixed lookup keeps the function total.
func (m *Mapper) chooseSecondaryAccent(palette *catppuccin.FlavorPalette, primary catppuccin.Accent, opts Options) catppuccin.Accent {
	if opts.SecondaryAccent != nil {
		return *opts.SecondaryAccent
	}

	primaryHue := colour.RGBToHSL(palette.Accent(primary)).H
	best := catppuccin.Accent("")
	bestScore := 0.0
	for _, a := range catppuccin.Accents {
		if a == primary {
			continue
		}
		d := colour.HueDistance(primaryHue, colour.RGBToHSL(palette.Accent(a)).H)
		if d < 30 || d > 60 {
			continue
		}
		score := 1 - (absFloat(d-45) / 15)
		if score > bestScore {
			best, bestScore = a, score
		}
	}
	if bestScore > 0 {
		return best
	}
	return secondaryFallback[primary]
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// seedRoles fills the full role table from flavor constants plus the
// chosen accents.
func seedRoles(p *catppuccin.FlavorPalette, primary, secondary catppuccin.Accent) map[string]colour.RGB {
	onAccent := p.Neutral(catppuccin.NeutralCrust)
	if p.Flavor.IsLight() {
		onAccent = p.Neutral(catppuccin.NeutralBase)
	}

	roles := map[string]colour.RGB{
		RoleBackgroundPrimary:   p.Neutral(catppuccin.NeutralBase),
		RoleBackgroundSecondary: p.Neutral(catppuccin.NeutralMantle),
		RoleBackgroundTertiary:  p.Neutral(catppuccin.NeutralCrust),
		RoleSurface0:            p.Neutral(catppuccin.NeutralSurface0),
		RoleSurface1:            p.Neutral(catppuccin.NeutralSurface1),
		RoleSurface2:            p.Neutral(catppuccin.NeutralSurface2),
		RoleBorderSubtle:        p.Neutral(catppuccin.NeutralSurface1),
		RoleBorderDefault:       p.Neutral(catppuccin.NeutralSurface2),
		RoleTextPrimary:         p.Neutral(catppuccin.NeutralText),
		RoleTextSecondary:       p.Neutral(catppuccin.NeutralSubtext1),
		RoleTextMuted:           p.Neutral(catppuccin.NeutralSubtext0),
		RoleAccentInteractive:   p.Accent(primary),
		RoleAccentSelection:     p.Accent(secondary),
	}

	bases := map[string]colour.RGB{
		"primary":   p.Accent(primary),
		"secondary": p.Accent(secondary),
		"success":   p.Accent(catppuccin.AccentGreen),
		"warning":   p.Accent(catppuccin.AccentYellow),
		"danger":    p.Accent(catppuccin.AccentRed),
		"info":      p.Accent(catppuccin.AccentSapphire),
	}
	for _, g := range semanticGroups {
		roles[g+".base"] = bases[g]
		roles[g+".text"] = onAccent
	}
	return roles
}

// overlayClassified lets strongly-signalled source colours override
// the generic flavor defaults for a small set of roles. When several
// colours target the same role the highest confidence wins, with
// frequency as the tie-break.
func overlayClassified(t *Theme, colors []*extract.AggregatedColor, cls []classify.Classification) {
	type winner struct {
		rgb  colour.RGB
		conf float64
		freq float64
	}
	best := make(map[string]winner)

	consider := func(role string, rgb colour.RGB, conf, freq float64) {
		w, ok := best[role]
		if !ok || conf > w.conf || (conf == w.conf && freq > w.freq) {
			best[role] = winner{rgb: rgb, conf: conf, freq: freq}
		}
	}

	for i, c := range colors {
		if cls[i].Confidence < overlayMinConfidence {
			continue
		}
		rgb, ok := colour.ParseHex(c.Hex)
		if !ok {
			continue
		}
		switch cls[i].Role {
		case classify.RoleBackgroundPrimary:
			if c.Frequency >= overlayBackgroundFreq {
				consider(RoleBackgroundPrimary, rgb, cls[i].Confidence, c.Frequency)
			}
		case classify.RoleSurfaceCard:
			if c.Frequency >= overlaySurfaceFreq {
				consider(RoleSurface0, rgb, cls[i].Confidence, c.Frequency)
			}
		case classify.RoleAccentInteractive, classify.RoleAccentBrand, classify.RoleAccentLink:
			if c.Frequency >= overlayAccentFreq {
				consider(RoleAccentInteractive, rgb, cls[i].Confidence, c.Frequency)
			}
		}
	}

	for role, w := range best {
		t.Roles[role] = w.rgb
	}
}

// deriveScales synthesizes the interaction-state colours by blending
// each semantic base toward a neutral overlay tone.
func deriveScales(t *Theme, p *catppuccin.FlavorPalette) {
	overlay := p.Neutral(catppuccin.NeutralOverlay1)
	base := p.Neutral(catppuccin.NeutralBase)

	for _, g := range semanticGroups {
		gb := t.Roles[g+".base"]
		t.Derived[g+".hover"] = colour.Blend(gb, overlay, hoverAlpha)
		t.Derived[g+".active"] = colour.Blend(gb, overlay, activeAlpha)
	}
	t.Derived["focus.ring"] = colour.Blend(t.Roles[RoleAccentInteractive], overlay, focusRingAlpha)
	t.Derived["selection.bg"] = colour.Blend(t.Roles[RoleAccentSelection], base, selectionAlpha)
}

// textLadder is the repair order for body text: each step trades a
// little hierarchy for contrast.
var textLadder = []string{
	catppuccin.NeutralText, catppuccin.NeutralSubtext1, catppuccin.NeutralSubtext0,
	catppuccin.NeutralOverlay2, catppuccin.NeutralOverlay1,
}

func ratio(a, b colour.RGB) float64 {
	return colour.ContrastRatio(a, b)
}

// repairContrast walks text.primary down the neutral ladder until it
// clears the threshold against background.primary, then repairs every
// semantic base/text pair with a flavor-appropriate on-accent colour.
// Unsatisfiable pairs keep the best-effort value and surface a
// warning instead of failing.
func repairContrast(t *Theme, p *catppuccin.FlavorPalette, mode ContrastMode) {
	threshold := mode.Ratio()
	bg := t.Roles[RoleBackgroundPrimary]

	if ratio(t.Roles[RoleTextPrimary], bg) < threshold {
		repaired := false
		bestName, bestRatio := "", 0.0
		for _, name := range textLadder {
			cand := p.Neutral(name)
			r := ratio(cand, bg)
			if r > bestRatio {
				bestName, bestRatio = name, r
			}
			if r >= threshold {
				t.Roles[RoleTextPrimary] = cand
				t.Metadata.Warnings = append(t.Metadata.Warnings,
					fmt.Sprintf("text.primary failed %.1f:1 against background.primary; swapped to %s (%.2f:1)", threshold, name, r))
				repaired = true
				break
			}
		}
		if !repaired {
			t.Roles[RoleTextPrimary] = p.Neutral(bestName)
			t.Metadata.ContrastValidated = false
			t.Metadata.Warnings = append(t.Metadata.Warnings,
				fmt.Sprintf("text.primary cannot reach %.1f:1 against background.primary; best effort %s at %.2f:1", threshold, bestName, bestRatio))
		}
	}

	// Text-on-accent candidates: the darkest and lightest poles of
	// the flavor.
	candA, candB := catppuccin.NeutralCrust, catppuccin.NeutralBase
	if p.Flavor.IsLight() {
		candA, candB = catppuccin.NeutralText, catppuccin.NeutralBase
	}

	for _, g := range semanticGroups {
		base := t.Roles[g+".base"]
		if ratio(t.Roles[g+".text"], base) >= threshold {
			continue
		}

		name := candA
		if ratio(p.Neutral(candB), base) > ratio(p.Neutral(candA), base) {
			name = candB
		}
		best := p.Neutral(name)
		r := ratio(best, base)
		t.Roles[g+".text"] = best
		if r >= threshold {
			t.Metadata.Warnings = append(t.Metadata.Warnings,
				fmt.Sprintf("%s.text failed %.1f:1 against %s.base; swapped to %s (%.2f:1)", g, threshold, g, name, r))
			continue
		}
		t.Metadata.ContrastValidated = false
		t.Metadata.Warnings = append(t.Metadata.Warnings,
			fmt.Sprintf("%s.text cannot reach %.1f:1 against %s.base; best effort %s at %.2f:1", g, threshold, g, name, r))
	}
}
