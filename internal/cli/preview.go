package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cattint/cattint/internal/catppuccin"
	"github.com/cattint/cattint/internal/colour"
	"github.com/cattint/cattint/internal/rolemap"
	"github.com/cattint/cattint/internal/signature"
)

// swatch renders a coloured block followed by the hex value.
func swatch(rgb colour.RGB) string {
	hex := rgb.Hex()
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
	return fmt.Sprintf("%s %s", block, hex)
}

func accentSwatch(f catppuccin.Flavor, a catppuccin.Accent) string {
	hex := catppuccin.Palette(f).Accent(a).Hex()
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

var previewHeader = lipgloss.NewStyle().Bold(true)

// renderThemePreview lays out every role with its swatch, roles first,
// derived scales after.
func renderThemePreview(theme *rolemap.Theme) string {
	var b strings.Builder
	b.WriteString(previewHeader.Render("roles"))
	b.WriteString("\n")
	for _, role := range rolemap.RequiredRoles {
		fmt.Fprintf(&b, "  %-22s %s\n", role, swatch(theme.Roles[role]))
	}

	derived := make([]string, 0, len(theme.Derived))
	for name := range theme.Derived {
		derived = append(derived, name)
	}
	sort.Strings(derived)

	b.WriteString(previewHeader.Render("derived"))
	b.WriteString("\n")
	for _, name := range derived {
		fmt.Fprintf(&b, "  %-22s %s\n", name, swatch(theme.Derived[name]))
	}
	return b.String()
}

// renderSignaturePreview shows the brand colours and per-role winners.
func renderSignaturePreview(sig *signature.SiteSignature) string {
	var b strings.Builder
	if len(sig.ColorProfile.BrandColors) > 0 {
		b.WriteString(previewHeader.Render("brand colours"))
		b.WriteString("\n")
		for _, hex := range sig.ColorProfile.BrandColors {
			if rgb, ok := colour.ParseHex(hex); ok {
				fmt.Fprintf(&b, "  %s\n", swatch(rgb))
			}
		}
	}

	roles := make([]string, 0, len(sig.SemanticRoles))
	for role := range sig.SemanticRoles {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	if len(roles) > 0 {
		b.WriteString(previewHeader.Render("semantic roles"))
		b.WriteString("\n")
		for _, role := range roles {
			if rgb, ok := colour.ParseHex(sig.SemanticRoles[role]); ok {
				fmt.Fprintf(&b, "  %-20s %s\n", role, swatch(rgb))
			}
		}
	}
	return b.String()
}
