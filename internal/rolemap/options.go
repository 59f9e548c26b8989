// Package rolemap maps a site's observed colours onto a complete
// Catppuccin role table: flavor defaults, high-confidence overrides,
// derived interaction states and a contrast repair pass.
package rolemap

import (
	"fmt"
	"strings"

	"github.com/cattint/cattint/internal/catppuccin"
)

// ContrastMode selects the minimum text/background contrast ratio the
// repair pass enforces.
type ContrastMode string

const (
	ContrastStrict  ContrastMode = "strict"
	ContrastNormal  ContrastMode = "normal"
	ContrastRelaxed ContrastMode = "relaxed"
)

// Ratio returns the WCAG threshold for the mode.
func (m ContrastMode) Ratio() float64 {
	switch m {
	case ContrastStrict:
		return 4.5
	case ContrastRelaxed:
		return 2.5
	default:
		return 3.0
	}
}

// ParseContrastMode resolves a user-supplied mode name, failing fast
// on unknown values. The empty string means normal.
func ParseContrastMode(s string) (ContrastMode, error) {
	switch ContrastMode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return ContrastNormal, nil
	case ContrastStrict:
		return ContrastStrict, nil
	case ContrastNormal:
		return ContrastNormal, nil
	case ContrastRelaxed:
		return ContrastRelaxed, nil
	}
	return "", fmt.Errorf("unknown contrast mode %q (expected strict, normal or relaxed)", s)
}

// Options configures one mapping call. Nil accent pointers mean
// "detect from the source colours".
type Options struct {
	Flavor          catppuccin.Flavor
	PrimaryAccent   *catppuccin.Accent
	SecondaryAccent *catppuccin.Accent
	ContrastMode    ContrastMode
}
