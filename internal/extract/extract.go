// Package extract pulls colour usage out of raw CSS (and optionally
// HTML) text. It is deliberately not a CSS parser: a pair of permissive
// global regexes lex rule blocks and colour literals in a single linear
// pass, which copes with the messy stylesheets found in the wild and
// stays fast on inputs tens of kilobytes long.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cattint/cattint/internal/colour"
)

// Mode is the overall light/dark appearance detected for a page.
type Mode int

const (
	// ModeDark is the default when no background signal exists.
	ModeDark Mode = iota
	// ModeLight is detected when the dominant background is bright.
	ModeLight
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}

// Context is a coarse usage category for an observed colour.
type Context string

const (
	ContextBackground Context = "background"
	ContextText       Context = "text"
	ContextBorder     Context = "border"
	ContextLink       Context = "link"
	ContextButton     Context = "button"
	ContextSemantic   Context = "semantic"
	ContextOther      Context = "other"
)

// AggregatedColor is one unique colour observed in the input, with
// everything the classifier needs to reason about it. Instances live for
// a single analysis call and are not mutated after extraction.
type AggregatedColor struct {
	Hex                  string           `json:"hex"`
	HSL                  colour.HSL       `json:"hsl"`
	Count                int              `json:"count"`
	Frequency            float64          `json:"frequency"`
	PropertyDistribution map[string]int   `json:"propertyDistribution"`
	Selectors            []string         `json:"selectors"`
	VariableNames        []string         `json:"variableNames"`
	Contexts             map[Context]bool `json:"contexts"`
	SemanticHints        []string         `json:"semanticHints"`
}

// HasContext reports whether the colour was seen in the given usage
// category.
func (a *AggregatedColor) HasContext(c Context) bool {
	return a.Contexts[c]
}

// PropertyCount sums occurrence counts over properties matching the
// predicate.
func (a *AggregatedColor) PropertyCount(match func(string) bool) int {
	total := 0
	for prop, n := range a.PropertyDistribution {
		if match(prop) {
			total += n
		}
	}
	return total
}

// Result holds everything extracted from one CSS (+ optional HTML) input.
type Result struct {
	Colors           map[string]*AggregatedColor `json:"colors"`
	CustomProperties map[string]string           `json:"customProperties"`
	TotalOccurrences int                         `json:"totalOccurrences"`
	Mode             Mode                        `json:"mode"`
}

// Sorted returns the aggregated colours ordered by descending count,
// ties broken by hex for determinism.
func (r *Result) Sorted() []*AggregatedColor {
	out := make([]*AggregatedColor, 0, len(r.Colors))
	for _, c := range r.Colors {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Hex < out[j].Hex
	})
	return out
}

var (
	// ruleRe lexes "selector { declarations }" blocks. Nested braces,
	// @media wrappers and comments are handled permissively, not exactly.
	ruleRe = regexp.MustCompile(`([^{}]+)\{([^{}]*)\}`)

	// colourLitRe matches every colour literal form we normalise:
	// hex (3/4/6/8 digit), rgb/rgba and hsl/hsla functional notation.
	colourLitRe = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b|rgba?\([^)]*\)|hsla?\([^)]*\)`)

	// customPropRe matches CSS custom property declarations anywhere in
	// the text, including inside inline style attributes.
	customPropRe = regexp.MustCompile(`--([a-zA-Z0-9_-]+)\s*:\s*([^;}"']+)`)

	// inlineStyleRe pulls style="..." attribute bodies out of HTML.
	inlineStyleRe = regexp.MustCompile(`style\s*=\s*"([^"]*)"`)

	// Channels admit a sign: out-of-range rgb values clamp per channel
	// and negative hues wrap.
	rgbFnRe = regexp.MustCompile(`rgba?\(\s*(-?[0-9.]+)\s*[, ]\s*(-?[0-9.]+)\s*[, ]\s*(-?[0-9.]+)`)
	hslFnRe = regexp.MustCompile(`hsla?\(\s*(-?[0-9.]+)\s*[, ]\s*([0-9.]+)%?\s*[, ]\s*([0-9.]+)%?`)
)

// colourProperties is the allow-list of colour-bearing declaration
// properties. Everything else (width, content, url(...) noise) is
// ignored.
func isColourProperty(prop string) bool {
	switch prop {
	case "color", "background", "background-color", "fill", "stroke",
		"stop-color", "caret-color", "accent-color", "text-decoration-color":
		return true
	}
	if strings.HasPrefix(prop, "border") || strings.HasPrefix(prop, "outline") {
		return true
	}
	if strings.Contains(prop, "shadow") {
		return true
	}
	return false
}

// Extractor scans CSS text for colour usage. Construct one per process
// (or per request) with New; it holds only the shared conversion memo.
type Extractor struct {
	memo *colour.Memo
}

// New creates an Extractor. A nil memo gets a private one.
func New(memo *colour.Memo) *Extractor {
	if memo == nil {
		memo = colour.NewMemo(nil)
	}
	return &Extractor{memo: memo}
}

// Extract scans raw CSS text and aggregates every colour it finds.
// Malformed colour literals are skipped silently; an input with no
// colours at all yields an empty-but-valid Result in dark mode.
func (e *Extractor) Extract(css string) *Result {
	return e.ExtractWithHTML(css, "")
}

// ExtractWithHTML behaves like Extract and additionally scans inline
// style="..." attributes and custom properties in the supplied HTML.
func (e *Extractor) ExtractWithHTML(css, html string) *Result {
	agg := newAggregator(e.memo)

	for _, m := range ruleRe.FindAllStringSubmatch(css, -1) {
		selector := normaliseSelector(m[1])
		agg.scanDeclarations(selector, m[2])
	}

	agg.scanCustomProperties(css)

	if html != "" {
		for _, m := range inlineStyleRe.FindAllStringSubmatch(html, -1) {
			agg.scanDeclarations("[inline-style]", m[1])
		}
		agg.scanCustomProperties(html)
	}

	return agg.finish()
}

// normaliseSelector trims a raw selector chunk down to its last
// newline-separated segment; the permissive rule regex otherwise drags
// preceding at-rules and comment tails into the selector text.
func normaliseSelector(raw string) string {
	raw = strings.TrimSpace(raw)
	if idx := strings.LastIndexAny(raw, "}\n"); idx >= 0 {
		raw = strings.TrimSpace(raw[idx+1:])
	}
	if len(raw) > 200 {
		raw = raw[:200]
	}
	return raw
}

type aggregator struct {
	memo        *colour.Memo
	colors      map[string]*AggregatedColor
	customProps map[string]string
	total       int
}

func newAggregator(memo *colour.Memo) *aggregator {
	return &aggregator{
		memo:        memo,
		colors:      make(map[string]*AggregatedColor),
		customProps: make(map[string]string),
	}
}

// scanDeclarations walks the declarations of one rule block, keeping
// only colour-bearing properties and recording one occurrence per
// colour literal found in their values.
func (g *aggregator) scanDeclarations(selector, body string) {
	for _, decl := range strings.Split(body, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if strings.HasPrefix(prop, "--") || !isColourProperty(prop) {
			continue
		}

		for _, lit := range colourLitRe.FindAllString(value, -1) {
			hex, ok := normaliseLiteral(lit)
			if !ok {
				continue // skip, don't crash: CSS in the wild is messy
			}
			g.record(hex, prop, selector)
		}
	}
}

// scanCustomProperties records every --name: value declaration whose
// value resolves to a colour.
func (g *aggregator) scanCustomProperties(text string) {
	for _, m := range customPropRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		value := strings.TrimSpace(m[2])

		lit := colourLitRe.FindString(value)
		if lit == "" {
			continue
		}
		if hex, ok := normaliseLiteral(lit); ok {
			g.customProps[name] = hex
		}
	}
}

// record accumulates one occurrence of hex under the given property and
// selector.
func (g *aggregator) record(hex, prop, selector string) {
	ac, ok := g.colors[hex]
	if !ok {
		hsl, _ := g.memo.HSL(hex)
		ac = &AggregatedColor{
			Hex:                  hex,
			HSL:                  hsl,
			PropertyDistribution: make(map[string]int),
			Contexts:             make(map[Context]bool),
		}
		g.colors[hex] = ac
	}

	ac.Count++
	ac.PropertyDistribution[prop]++
	ac.Contexts[contextFor(prop, selector)] = true

	if selector != "" && !containsString(ac.Selectors, selector) {
		ac.Selectors = append(ac.Selectors, selector)
	}
	for _, hint := range harvestHints(selector) {
		if !containsString(ac.SemanticHints, hint) {
			ac.SemanticHints = append(ac.SemanticHints, hint)
		}
	}

	g.total++
}

// finish cross-references custom properties, computes frequencies and
// detects the overall mode.
func (g *aggregator) finish() *Result {
	for name, hex := range g.customProps {
		if ac, ok := g.colors[hex]; ok {
			if !containsString(ac.VariableNames, name) {
				ac.VariableNames = append(ac.VariableNames, name)
			}
		}
	}
	for _, ac := range g.colors {
		sort.Strings(ac.VariableNames)
		if g.total > 0 {
			ac.Frequency = float64(ac.Count) / float64(g.total)
		}
	}

	return &Result{
		Colors:           g.colors,
		CustomProperties: g.customProps,
		TotalOccurrences: g.total,
		Mode:             g.detectMode(),
	}
}

// detectMode finds the colour with the heaviest background usage and
// classifies the page as light when its relative luminance exceeds 0.5.
// Pages with no background-coloured rule at all default to dark; this
// single decision conditions every downstream role default.
func (g *aggregator) detectMode() Mode {
	var best *AggregatedColor
	bestCount := 0

	for _, ac := range g.colors {
		n := ac.PropertyCount(func(p string) bool {
			return strings.HasPrefix(p, "background")
		})
		if n > bestCount || (n == bestCount && n > 0 && best != nil && ac.Hex < best.Hex) {
			best = ac
			bestCount = n
		}
	}

	if best == nil || bestCount == 0 {
		return ModeDark
	}

	lum, ok := g.memo.Luminance(best.Hex)
	if ok && lum > 0.5 {
		return ModeLight
	}
	return ModeDark
}

// contextFor maps a property/selector pair to a coarse usage category.
func contextFor(prop, selector string) Context {
	sel := strings.ToLower(selector)

	switch {
	case selectorHasKeyword(sel, semanticSelectorWords):
		return ContextSemantic
	case selectorHasKeyword(sel, buttonSelectorWords):
		return ContextButton
	case selectorHasKeyword(sel, linkSelectorWords) && (prop == "color" || prop == "text-decoration-color"):
		return ContextLink
	}

	switch {
	case strings.HasPrefix(prop, "background"):
		return ContextBackground
	case prop == "color" || prop == "caret-color" || prop == "text-decoration-color":
		return ContextText
	case strings.HasPrefix(prop, "border") || strings.HasPrefix(prop, "outline"):
		return ContextBorder
	}
	return ContextOther
}

var (
	semanticSelectorWords = []string{"success", "warning", "error", "danger", "alert", "info", "invalid", "valid"}
	buttonSelectorWords   = []string{"button", "btn", "cta"}
	linkSelectorWords     = []string{"a", "link", "nav", "anchor"}
)

// selectorHasKeyword matches whole tokens only, so ".danger" matches
// "danger" but ".alertness" does not match "alert".
func selectorHasKeyword(selector string, words []string) bool {
	for _, tok := range tokeniseSelector(selector) {
		for _, w := range words {
			if tok == w {
				return true
			}
		}
	}
	return false
}

// harvestHints collects lowercase identifier tokens from a selector for
// the classifier's keyword tier.
func harvestHints(selector string) []string {
	var hints []string
	for _, tok := range tokeniseSelector(strings.ToLower(selector)) {
		if len(tok) >= 2 {
			hints = append(hints, tok)
		}
	}
	return hints
}

func tokeniseSelector(selector string) []string {
	return strings.FieldsFunc(selector, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
