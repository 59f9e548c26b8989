// Package signature condenses extractor and classifier output into a
// compact, comparable fingerprint of a site's colour identity.
package signature

import (
	"time"

	"github.com/cattint/cattint/internal/catppuccin"
	"github.com/cattint/cattint/internal/extract"
)

// SaturationLevel buckets the frequency-weighted mean saturation.
type SaturationLevel string

const (
	SaturationVibrant SaturationLevel = "vibrant"
	SaturationMuted   SaturationLevel = "muted"
	SaturationNeutral SaturationLevel = "neutral"
)

// ColorProfile is the perceptual half of the signature.
type ColorProfile struct {
	DominantHue        float64            `json:"dominantHue"`
	DominantHueName    string             `json:"dominantHueName"`
	SaturationLevel    SaturationLevel    `json:"saturationLevel"`
	LuminanceMode      string             `json:"luminanceMode"`
	BrandColors        []string           `json:"brandColors"`
	AccentDistribution map[string]float64 `json:"accentDistribution"`
	UniqueColorCount   int                `json:"uniqueColorCount"`
}

// Metadata records provenance and aggregate confidence.
type Metadata struct {
	GeneratedAt       time.Time `json:"generatedAt"`
	SourceType        string    `json:"sourceType"`
	OverallConfidence float64   `json:"overallConfidence"`
}

// SiteSignature is an immutable snapshot of one site's colour
// fingerprint, safe to JSON-encode and to compare between sites.
type SiteSignature struct {
	Domain                  string              `json:"domain"`
	ColorProfile            ColorProfile        `json:"colorProfile"`
	SemanticRoles           map[string]string   `json:"semanticRoles"`
	SelectorMap             map[string][]string `json:"selectorMap"`
	SelectorClassifications map[string]string   `json:"selectorClassifications"`
	SuggestedAccent         catppuccin.Accent   `json:"suggestedAccent"`
	Mode                    extract.Mode        `json:"-"`
	Metadata                Metadata            `json:"metadata"`
}
