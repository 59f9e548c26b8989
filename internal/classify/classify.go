// Package classify assigns semantic roles to extracted colours. The
// classifier is a strict priority cascade: selector keywords beat
// luminance heuristics, which beat hue heuristics, which beat the
// terminal fallbacks. Reordering the tiers would silently change
// classification outcomes, so the order here is load-bearing; the
// confidence constants inside each tier are hand-tuned and are not.
package classify

import (
	"fmt"
	"math"
	"strings"

	"github.com/cattint/cattint/internal/colour"
	"github.com/cattint/cattint/internal/extract"
)

// Role is the semantic purpose assigned to a colour.
type Role string

const (
	RoleBackgroundPrimary   Role = "background.primary"
	RoleBackgroundSecondary Role = "background.secondary"
	RoleSurfaceCard         Role = "surface.card"
	RoleSurfaceOverlay      Role = "surface.overlay"
	RoleTextPrimary         Role = "text.primary"
	RoleTextSecondary       Role = "text.secondary"
	RoleTextMuted           Role = "text.muted"
	RoleAccentBrand         Role = "accent.brand"
	RoleAccentLink          Role = "accent.link"
	RoleAccentInteractive   Role = "accent.interactive"
	RoleAccentSecondary     Role = "accent.secondary"
	RoleAccentTertiary      Role = "accent.tertiary"
	RoleSuccess             Role = "semantic.success"
	RoleWarning             Role = "semantic.warning"
	RoleError               Role = "semantic.error"
	RoleInfo                Role = "semantic.info"
	RoleBorderSubtle        Role = "border.subtle"
	RoleBorderDefault       Role = "border.default"
	RoleUnknown             Role = "unknown"
)

// IsAccent reports whether the role belongs to the accent family.
func (r Role) IsAccent() bool {
	return strings.HasPrefix(string(r), "accent.")
}

// Classification is the immutable result of classifying one colour.
// Reasoning is a required audit trail, not optional logging: every tier
// records why it fired (or was skipped) in human-readable form.
type Classification struct {
	Hex        string   `json:"hex"`
	Role       Role     `json:"role"`
	Confidence float64  `json:"confidence"`
	Reasoning  []string `json:"reasoning"`
}

// Classify runs the tier cascade over one aggregated colour.
// First match wins; every branch is total, so the function always
// returns a classification (worst case: unknown at 0.2).
func Classify(c *extract.AggregatedColor, mode extract.Mode) Classification {
	cl := Classification{Hex: c.Hex, Role: RoleUnknown, Confidence: 0.2}

	// Tier 1: selector/variable keyword match.
	if role, conf, why, ok := keywordMatch(c); ok {
		cl.Role = role
		cl.Confidence = conf
		cl.Reasoning = append(cl.Reasoning, why)
		return cl
	}

	// Tier 2: near-gray neutrals with strong usage share.
	if role, conf, why, ok := neutralByLuminance(c, mode); ok {
		cl.Role = role
		cl.Confidence = conf
		cl.Reasoning = append(cl.Reasoning, why)
		return cl
	}

	// Tier 3: saturated accent heuristic.
	if role, conf, why, ok := saturatedAccent(c); ok {
		cl.Role = role
		cl.Confidence = conf
		cl.Reasoning = append(cl.Reasoning, why)
		return cl
	}

	// Tier 4: border-only usage.
	if role, conf, why, ok := borderOnly(c); ok {
		cl.Role = role
		cl.Confidence = conf
		cl.Reasoning = append(cl.Reasoning, why)
		return cl
	}

	// Tier 5: SVG fill/stroke usage.
	if role, conf, why, ok := svgOnly(c); ok {
		cl.Role = role
		cl.Confidence = conf
		cl.Reasoning = append(cl.Reasoning, why)
		return cl
	}

	// Tier 6: luminance-only weak signal.
	if role, why, ok := luminanceFallback(c, mode); ok {
		cl.Role = role
		cl.Confidence = 0.4
		cl.Reasoning = append(cl.Reasoning, why)
		return cl
	}

	// Tier 7: terminal unknown.
	cl.Reasoning = append(cl.Reasoning, "no usage signal matched any heuristic; classified as unknown")
	return cl
}

// keywordFamily binds a role to the selector/variable tokens that imply
// it. Families are checked in declaration order so the strongest
// semantic signals (error/warning/success) win over softer ones (brand).
type keywordFamily struct {
	role       Role
	confidence float64
	tokens     []string
}

var keywordFamilies = []keywordFamily{
	{RoleError, 0.95, []string{"error", "danger", "destructive", "critical", "fail", "invalid"}},
	{RoleWarning, 0.95, []string{"warning", "warn", "caution", "alert"}},
	{RoleSuccess, 0.95, []string{"success", "valid", "confirm", "positive", "ok"}},
	{RoleInfo, 0.9, []string{"info", "notice", "note", "hint"}},
	{RoleAccentLink, 0.95, []string{"link", "anchor", "nav"}},
	{RoleAccentInteractive, 0.9, []string{"button", "btn", "cta", "interactive", "action"}},
	{RoleAccentBrand, 0.9, []string{"brand", "logo", "accent", "primary", "theme"}},
}

func keywordMatch(c *extract.AggregatedColor) (Role, float64, string, bool) {
	tokens := make([]string, 0, len(c.SemanticHints)+len(c.VariableNames))
	tokens = append(tokens, c.SemanticHints...)
	for _, v := range c.VariableNames {
		tokens = append(tokens, splitVariableName(v)...)
	}

	for _, fam := range keywordFamilies {
		for _, tok := range tokens {
			for _, want := range fam.tokens {
				if tok == want {
					why := fmt.Sprintf("keyword %q in selector/variable usage implies %s", tok, fam.role)
					return fam.role, fam.confidence, why, true
				}
			}
		}
	}

	// Bare element selectors ("a", "nav") carry no harvestable token but
	// are as strong a link signal as an explicit .link class.
	if c.HasContext(extract.ContextLink) {
		return RoleAccentLink, 0.95, "anchor/nav selector usage implies accent.link", true
	}

	return RoleUnknown, 0, "", false
}

func splitVariableName(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
}

// neutralByLuminance handles near-gray workhorse colours: the page
// background, card surfaces and body text. It only fires on colours
// with a meaningful usage share, so one-off grays fall through to the
// later tiers.
func neutralByLuminance(c *extract.AggregatedColor, mode extract.Mode) (Role, float64, string, bool) {
	if !isNearGray(c.HSL) {
		return RoleUnknown, 0, "", false
	}

	bgCount := c.PropertyCount(func(p string) bool { return strings.HasPrefix(p, "background") })
	textCount := c.PropertyCount(func(p string) bool {
		return p == "color" || p == "caret-color" || p == "text-decoration-color"
	})

	// A colour with a clear dominant property qualifies at 0.3 share;
	// without one we demand 0.5 before trusting luminance alone.
	hasDominant := bgCount != textCount
	threshold := 0.5
	if hasDominant {
		threshold = 0.3
	}
	if c.Frequency < threshold {
		return RoleUnknown, 0, "", false
	}

	l := c.HSL.L
	dark := mode == extract.ModeDark

	var role Role
	switch {
	case bgCount >= textCount:
		switch {
		case dark && l < 30, !dark && l > 85:
			role = RoleBackgroundPrimary
		case dark && l < 50, !dark && l > 70:
			role = RoleBackgroundSecondary
		default:
			role = RoleSurfaceCard
		}
	default:
		switch {
		case dark && l > 80, !dark && l < 25:
			role = RoleTextPrimary
		case dark && l > 60, !dark && l < 45:
			role = RoleTextSecondary
		default:
			role = RoleTextMuted
		}
	}

	why := fmt.Sprintf("near-gray (S=%.0f%%) with %.0f%% usage share in %s mode; luminance banding assigns %s",
		c.HSL.S, c.Frequency*100, mode, role)
	return role, 0.8, why, true
}

// isNearGray reports whether a colour reads as neutral. Raw HSL
// saturation is unstable at lightness extremes (a near-white like
// #f6f8fa reports S of roughly 28%), so the chroma (saturation scaled
// by distance from the lightness poles) is tested as well.
func isNearGray(hsl colour.HSL) bool {
	chroma := hsl.S * (1 - math.Abs(2*hsl.L/100-1))
	return hsl.S < 10 || chroma < 8
}

// saturatedAccent hue-bands vivid colours into semantic and accent
// roles, then refines by usage context.
func saturatedAccent(c *extract.AggregatedColor) (Role, float64, string, bool) {
	if c.HSL.S < 30 || c.HSL.L < 20 || c.HSL.L > 90 {
		return RoleUnknown, 0, "", false
	}

	// Exclusively SVG usage is a weaker signal; let the SVG tier
	// handle it.
	if svg := c.PropertyCount(func(p string) bool { return p == "fill" || p == "stroke" || p == "stop-color" }); svg > 0 && svg == c.Count {
		return RoleUnknown, 0, "", false
	}
	// Same for colours seen only on borders: a vivid border is still a
	// border, not a semantic accent.
	if c.HasContext(extract.ContextBorder) && len(c.Contexts) == 1 {
		return RoleUnknown, 0, "", false
	}

	h := c.HSL.H
	var hueRole Role
	var hueName string
	switch {
	case h < 15 || h >= 345:
		hueRole, hueName = RoleError, "red"
	case h < 65:
		hueRole, hueName = RoleWarning, "orange-yellow"
	case h < 170:
		hueRole, hueName = RoleSuccess, "green"
	case h < 250:
		hueRole, hueName = RoleInfo, "cyan-blue"
	default:
		hueRole, hueName = RoleAccentBrand, "purple-magenta"
	}

	textual := c.HasContext(extract.ContextText) || c.HasContext(extract.ContextLink)

	// Usage context refines the hue band.
	switch {
	case c.HasContext(extract.ContextLink) && textual:
		why := fmt.Sprintf("saturated %s colour used on link text; classified as %s", hueName, RoleAccentLink)
		return RoleAccentLink, 0.85, why, true
	case c.HasContext(extract.ContextBackground):
		why := fmt.Sprintf("saturated %s colour used as background; treated as brand colour", hueName)
		return RoleAccentBrand, 0.7, why, true
	case textual:
		why := fmt.Sprintf("saturated %s colour used only on text; hue band suggests %s", hueName, hueRole)
		return hueRole, 0.65, why, true
	}

	why := fmt.Sprintf("saturated colour in %s hue band; classified as %s", hueName, hueRole)
	return hueRole, 0.7, why, true
}

// borderOnly fires for colours whose only usage category is borders.
func borderOnly(c *extract.AggregatedColor) (Role, float64, string, bool) {
	if !c.HasContext(extract.ContextBorder) || len(c.Contexts) != 1 {
		return RoleUnknown, 0, "", false
	}

	role := RoleBorderDefault
	if isNearGray(c.HSL) {
		role = RoleBorderSubtle
	}
	why := fmt.Sprintf("used exclusively on borders (S=%.0f%%); classified as %s", c.HSL.S, role)
	return role, 0.6, why, true
}

// svgOnly fires for colours seen only through SVG fill/stroke
// properties.
func svgOnly(c *extract.AggregatedColor) (Role, float64, string, bool) {
	svg := c.PropertyCount(func(p string) bool { return p == "fill" || p == "stroke" || p == "stop-color" })
	if svg == 0 || svg != c.Count {
		return RoleUnknown, 0, "", false
	}

	if c.HSL.S >= 30 {
		return RoleAccentInteractive, 0.55, "saturated colour used only in SVG fill/stroke; likely an interactive icon colour", true
	}
	return RoleTextSecondary, 0.5, "muted colour used only in SVG fill/stroke; treated as secondary text", true
}

// luminanceFallback is the weak-signal tier: nothing but brightness to
// go on.
func luminanceFallback(c *extract.AggregatedColor, mode extract.Mode) (Role, string, bool) {
	l := c.HSL.L
	dark := mode == extract.ModeDark

	// A single occurrence of a mid-lightness colour is pure noise;
	// let it fall through to unknown.
	if c.Count < 2 && l >= 20 && l <= 80 {
		return RoleUnknown, "", false
	}

	var role Role
	switch {
	case dark && l > 60, !dark && l < 40:
		role = RoleTextSecondary
	case dark && l < 20, !dark && l > 80:
		role = RoleBackgroundSecondary
	default:
		role = RoleSurfaceCard
	}

	why := fmt.Sprintf("no strong signal; lightness %.0f%% in %s mode weakly suggests %s", l, mode, role)
	return role, why, true
}
