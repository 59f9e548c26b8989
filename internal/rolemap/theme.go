package rolemap

import (
	"encoding/json"

	"github.com/cattint/cattint/internal/catppuccin"
	"github.com/cattint/cattint/internal/colour"
)

// Role keys every theme must populate.
const (
	RoleBackgroundPrimary   = "background.primary"
	RoleBackgroundSecondary = "background.secondary"
	RoleBackgroundTertiary  = "background.tertiary"
	RoleSurface0            = "surface.0"
	RoleSurface1            = "surface.1"
	RoleSurface2            = "surface.2"
	RoleBorderSubtle        = "border.subtle"
	RoleBorderDefault       = "border.default"
	RoleTextPrimary         = "text.primary"
	RoleTextSecondary       = "text.secondary"
	RoleTextMuted           = "text.muted"
	RoleAccentInteractive   = "accent.interactive"
	RoleAccentSelection     = "accent.selection"
)

// Semantic groups carrying a base/text pair each.
var semanticGroups = []string{"primary", "secondary", "success", "warning", "danger", "info"}

// RequiredRoles is the minimal set the repair pass guarantees, in a
// stable output order.
var RequiredRoles = []string{
	RoleBackgroundPrimary, RoleBackgroundSecondary, RoleBackgroundTertiary,
	RoleSurface0, RoleSurface1, RoleSurface2,
	RoleBorderSubtle, RoleBorderDefault,
	RoleTextPrimary, RoleTextSecondary, RoleTextMuted,
	RoleAccentInteractive, RoleAccentSelection,
	"primary.base", "primary.text",
	"secondary.base", "secondary.text",
	"success.base", "success.text",
	"warning.base", "warning.text",
	"danger.base", "danger.text",
	"info.base", "info.text",
}

// ThemeMetadata records the choices and warnings of one mapping call.
type ThemeMetadata struct {
	Flavor            catppuccin.Flavor `json:"flavor"`
	PrimaryAccent     catppuccin.Accent `json:"primaryAccent"`
	SecondaryAccent   catppuccin.Accent `json:"secondaryAccent"`
	ContrastMode      ContrastMode      `json:"contrastMode"`
	ContrastValidated bool              `json:"contrastValidated"`
	Warnings          []string          `json:"warnings"`
}

// Theme is the complete mapping output: the role table, the derived
// interaction-state scales and the metadata. Read-only once returned.
type Theme struct {
	Roles    map[string]colour.RGB
	Derived  map[string]colour.RGB
	Metadata ThemeMetadata
}

// Role returns the colour mapped to a role key.
func (t *Theme) Role(key string) colour.RGB { return t.Roles[key] }

// themeJSON is the wire shape: every colour expanded to hex+RGB+HSL.
type themeJSON struct {
	Roles    map[string]colour.ColorJSON `json:"roles"`
	Derived  map[string]colour.ColorJSON `json:"derived"`
	Metadata ThemeMetadata               `json:"metadata"`
}

func colorViews(m map[string]colour.RGB) map[string]colour.ColorJSON {
	out := make(map[string]colour.ColorJSON, len(m))
	for k, v := range m {
		out[k] = colour.ToJSON(v)
	}
	return out
}

func (t *Theme) MarshalJSON() ([]byte, error) {
	return json.Marshal(themeJSON{
		Roles:    colorViews(t.Roles),
		Derived:  colorViews(t.Derived),
		Metadata: t.Metadata,
	})
}
