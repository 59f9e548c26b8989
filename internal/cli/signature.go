package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cattint/cattint/internal/profilecache"
	"github.com/cattint/cattint/internal/signature"
)

var signatureCmd = &cobra.Command{
	Use:   "signature <css-file|->",
	Short: "Derive a site's colour signature from CSS",
	Long: `Signature extracts every colour from the given CSS (and optionally
HTML), classifies each one's semantic role and prints the site's colour
fingerprint: dominant hue, saturation level, light/dark mode, brand
colours and the suggested Catppuccin accent.`,
	Args: cobra.ExactArgs(1),
	RunE: runSignature,
}

func init() {
	signatureCmd.Flags().String("html", "", "HTML file to scan for inline styles and custom properties")
	signatureCmd.Flags().String("domain", "", "domain label recorded in the signature")
	signatureCmd.Flags().String("format", "text", "output format (json, text)")
	signatureCmd.Flags().Bool("preview", false, "render colour swatches")
	signatureCmd.Flags().String("cache", "", "profile cache database path (enables read/write-through caching)")
}

func runSignature(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	logger := newLogger(cmd)

	css, err := readInput(args[0])
	if err != nil {
		return err
	}

	var html string
	if htmlPath := configString("html", ""); htmlPath != "" {
		if html, err = readInput(htmlPath); err != nil {
			return err
		}
	}

	domain := configString("domain", "")
	builder := signature.NewBuilder(nil, logger)

	build := func() (*signature.SiteSignature, error) {
		if html != "" {
			return builder.BuildWithHTML(css, html, domain, "css+html"), nil
		}
		return builder.Build(css, domain, "css"), nil
	}

	var sig *signature.SiteSignature
	if cachePath := configString("cache", ""); cachePath != "" && html != "" {
		store, err := profilecache.Open(cachePath, logger)
		if err != nil {
			return err
		}
		defer store.Close()
		if sig, err = store.GetOrBuild(domain, html, build); err != nil {
			return err
		}
	} else if sig, err = build(); err != nil {
		return err
	}

	switch configString("format", "text") {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(sig); err != nil {
			return err
		}
	case "text":
		printSignature(cmd, sig)
	default:
		return fmt.Errorf("unknown format %q (expected json or text)", configString("format", "text"))
	}

	if configBool("preview") {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), renderSignaturePreview(sig))
	}
	return nil
}

func printSignature(cmd *cobra.Command, sig *signature.SiteSignature) {
	out := cmd.OutOrStdout()
	if sig.Domain != "" {
		fmt.Fprintf(out, "domain:           %s\n", sig.Domain)
	}
	fmt.Fprintf(out, "mode:             %s\n", sig.ColorProfile.LuminanceMode)
	fmt.Fprintf(out, "dominant hue:     %.1f° (%s)\n", sig.ColorProfile.DominantHue, sig.ColorProfile.DominantHueName)
	fmt.Fprintf(out, "saturation:       %s\n", sig.ColorProfile.SaturationLevel)
	fmt.Fprintf(out, "unique colours:   %d\n", sig.ColorProfile.UniqueColorCount)
	fmt.Fprintf(out, "suggested accent: %s\n", sig.SuggestedAccent)
	fmt.Fprintf(out, "confidence:       %.2f\n", sig.Metadata.OverallConfidence)

	if len(sig.ColorProfile.BrandColors) > 0 {
		fmt.Fprintf(out, "brand colours:\n")
		for _, hex := range sig.ColorProfile.BrandColors {
			fmt.Fprintf(out, "  %s\n", hex)
		}
	}
	if len(sig.SemanticRoles) > 0 {
		fmt.Fprintf(out, "semantic roles:\n")
		roles := make([]string, 0, len(sig.SemanticRoles))
		for role := range sig.SemanticRoles {
			roles = append(roles, role)
		}
		sort.Strings(roles)
		for _, role := range roles {
			fmt.Fprintf(out, "  %-20s %s\n", role, sig.SemanticRoles[role])
		}
	}
}
