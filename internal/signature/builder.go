package signature

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/cattint/cattint/internal/catppuccin"
	"github.com/cattint/cattint/internal/classify"
	"github.com/cattint/cattint/internal/colour"
	"github.com/cattint/cattint/internal/extract"
)

// defaultDominantHue is the degenerate fallback when no saturated
// colour exists in the input. 220 degrees sits in the blue band.
const defaultDominantHue = 220

// minAccentSaturation is the saturation floor below which a colour
// contributes nothing to the dominant hue.
const minAccentSaturation = 20

// Builder turns raw CSS/HTML into a SiteSignature. Construct with
// NewBuilder; safe for concurrent use.
type Builder struct {
	extractor *extract.Extractor
	logger    hclog.Logger
}

// NewBuilder wires a Builder. A nil memo gets a private cache, a nil
// logger is silenced.
func NewBuilder(memo *colour.Memo, logger hclog.Logger) *Builder {
	if memo == nil {
		memo = colour.NewMemo(nil)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Builder{extractor: extract.New(memo), logger: logger}
}

// Build analyses raw CSS and returns the site's signature.
func (b *Builder) Build(css, domain, sourceType string) *SiteSignature {
	return b.fromResult(b.extractor.Extract(css), domain, sourceType)
}

// BuildWithHTML additionally scans the HTML for inline styles and
// custom-property declarations.
func (b *Builder) BuildWithHTML(css, html, domain, sourceType string) *SiteSignature {
	return b.fromResult(b.extractor.ExtractWithHTML(css, html), domain, sourceType)
}

func (b *Builder) fromResult(res *extract.Result, domain, sourceType string) *SiteSignature {
	colors := res.Sorted()

	classifications := make([]classify.Classification, len(colors))
	for i, c := range colors {
		classifications[i] = classify.Classify(c, res.Mode)
	}

	hue := dominantHue(colors)
	level := saturationLevel(colors)
	brand := brandColors(colors, classifications)
	accent := suggestedAccent(brand, hue)

	sig := &SiteSignature{
		Domain: domain,
		ColorProfile: ColorProfile{
			DominantHue:        hue,
			DominantHueName:    hueName(hue),
			SaturationLevel:    level,
			LuminanceMode:      res.Mode.String(),
			BrandColors:        brandHexes(brand),
			AccentDistribution: accentDistribution(colors, classifications),
			UniqueColorCount:   len(colors),
		},
		SemanticRoles:           semanticRoles(classifications),
		SelectorMap:             selectorMap(colors),
		SelectorClassifications: selectorClassifications(colors),
		SuggestedAccent:         accent,
		Mode:                    res.Mode,
		Metadata: Metadata{
			GeneratedAt:       time.Now().UTC(),
			SourceType:        sourceType,
			OverallConfidence: overallConfidence(classifications),
		},
	}

	b.logger.Debug("built site signature",
		"domain", domain,
		"colors", len(colors),
		"dominant_hue", hue,
		"suggested_accent", accent,
		"mode", res.Mode)
	return sig
}

// dominantHue is the frequency and saturation weighted circular mean
// of the observed hues. Unit vectors handle the wrap at 0/360; a
// naive arithmetic mean would average 350 and 10 degrees to 180.
func dominantHue(colors []*extract.AggregatedColor) float64 {
	var sumX, sumY float64
	for _, c := range colors {
		if c.HSL.S < minAccentSaturation {
			continue
		}
		w := c.Frequency * (c.HSL.S / 100)
		rad := c.HSL.H * math.Pi / 180
		sumX += w * math.Cos(rad)
		sumY += w * math.Sin(rad)
	}
	if sumX == 0 && sumY == 0 {
		return defaultDominantHue
	}
	return colour.WrapHue(math.Atan2(sumY, sumX) * 180 / math.Pi)
}

func hueName(h float64) string {
	switch {
	case h < 20 || h >= 345:
		return "red"
	case h < 45:
		return "orange"
	case h < 70:
		return "yellow"
	case h < 160:
		return "green"
	case h < 200:
		return "cyan"
	case h < 250:
		return "blue"
	case h < 290:
		return "purple"
	default:
		return "magenta"
	}
}

func saturationLevel(colors []*extract.AggregatedColor) SaturationLevel {
	var sum, weight float64
	for _, c := range colors {
		sum += c.Frequency * c.HSL.S
		weight += c.Frequency
	}
	if weight == 0 {
		return SaturationNeutral
	}
	mean := sum / weight
	switch {
	case mean >= 60:
		return SaturationVibrant
	case mean >= 30:
		return SaturationMuted
	default:
		return SaturationNeutral
	}
}

type brandColor struct {
	hex   string
	score float64
}

// brandColors ranks accent-ish classifications by frequency times
// confidence and keeps the top three.
func brandColors(colors []*extract.AggregatedColor, cls []classify.Classification) []brandColor {
	var out []brandColor
	for i, c := range colors {
		switch cls[i].Role {
		case classify.RoleAccentBrand, classify.RoleAccentInteractive, classify.RoleAccentLink:
			out = append(out, brandColor{hex: c.Hex, score: c.Frequency * cls[i].Confidence})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].hex < out[j].hex
	})
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func brandHexes(brand []brandColor) []string {
	hexes := make([]string, len(brand))
	for i, b := range brand {
		hexes[i] = b.hex
	}
	return hexes
}

// suggestedAccent prefers the perceptually nearest accent to the top
// brand colour; without brand colours it falls back to a hue-range
// lookup on the dominant hue.
func suggestedAccent(brand []brandColor, dominantHue float64) catppuccin.Accent {
	if len(brand) > 0 {
		if rgb, ok := colour.ParseHex(brand[0].hex); ok {
			return catppuccin.NearestAccentLAB(rgb)
		}
	}
	return accentForHue(dominantHue)
}

// accentForHue maps a hue onto the accent whose mocha value occupies
// that band.
func accentForHue(h float64) catppuccin.Accent {
	switch {
	case h < 15 || h >= 345:
		return catppuccin.AccentRed
	case h < 45:
		return catppuccin.AccentPeach
	case h < 70:
		return catppuccin.AccentYellow
	case h < 150:
		return catppuccin.AccentGreen
	case h < 175:
		return catppuccin.AccentTeal
	case h < 195:
		return catppuccin.AccentSky
	case h < 207:
		return catppuccin.AccentSapphire
	case h < 225:
		return catppuccin.AccentBlue
	case h < 250:
		return catppuccin.AccentLavender
	case h < 290:
		return catppuccin.AccentMauve
	case h < 330:
		return catppuccin.AccentPink
	default:
		return catppuccin.AccentMaroon
	}
}

// accentDistribution is the usage share of every accent-classified
// colour.
func accentDistribution(colors []*extract.AggregatedColor, cls []classify.Classification) map[string]float64 {
	dist := make(map[string]float64)
	for i, c := range colors {
		if cls[i].Role.IsAccent() {
			dist[c.Hex] = c.Frequency
		}
	}
	return dist
}

// semanticRoles keeps the highest-confidence colour per role.
func semanticRoles(cls []classify.Classification) map[string]string {
	best := make(map[string]float64)
	roles := make(map[string]string)
	for _, cl := range cls {
		if cl.Role == classify.RoleUnknown {
			continue
		}
		key := string(cl.Role)
		if cl.Confidence > best[key] {
			best[key] = cl.Confidence
			roles[key] = cl.Hex
		}
	}
	return roles
}

func selectorMap(colors []*extract.AggregatedColor) map[string][]string {
	m := make(map[string][]string, len(colors))
	for _, c := range colors {
		if len(c.Selectors) > 0 {
			m[c.Hex] = c.Selectors
		}
	}
	return m
}

// selectorClassifications tags each observed selector with a coarse
// element type.
func selectorClassifications(colors []*extract.AggregatedColor) map[string]string {
	tags := make(map[string]string)
	for _, c := range colors {
		for _, sel := range c.Selectors {
			if _, ok := tags[sel]; !ok {
				tags[sel] = tagSelector(sel)
			}
		}
	}
	return tags
}

func tagSelector(sel string) string {
	s := strings.ToLower(sel)
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
	switch {
	case has("button", "btn", "cta"):
		return "button"
	case s == "a" || strings.HasPrefix(s, "a:") || strings.HasPrefix(s, "a.") || has("link", "anchor"):
		return "link"
	case has("nav", "menu", "header", "topbar"):
		return "navigation"
	case has("footer"):
		return "footer"
	case has("input", "form", "field", "select", "textarea"):
		return "form"
	case has("h1", "h2", "h3", "title", "heading"):
		return "heading"
	case s == "body" || s == "html" || has("page", "main", "container", "wrapper"):
		return "layout"
	default:
		return "content"
	}
}

func overallConfidence(cls []classify.Classification) float64 {
	if len(cls) == 0 {
		return 0
	}
	var sum float64
	for _, cl := range cls {
		sum += cl.Confidence
	}
	return sum / float64(len(cls))
}
