package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cattint/cattint/internal/catppuccin"
	"github.com/cattint/cattint/internal/colour"
	"github.com/cattint/cattint/internal/extract"
	"github.com/cattint/cattint/internal/rolemap"
)

var themeCmd = &cobra.Command{
	Use:   "theme <css-file|->",
	Short: "Map a site's colours onto a Catppuccin flavor",
	Long: `Theme runs the full pipeline: extraction, classification, accent
selection, role mapping, derived interaction states and a WCAG contrast
repair pass. The result is a complete role table in the chosen flavor.
Contrast warnings go to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runTheme,
}

func init() {
	themeCmd.Flags().String("flavor", "mocha", "target flavor (latte, frappe, macchiato, mocha)")
	themeCmd.Flags().String("accent", "", "primary accent override")
	themeCmd.Flags().String("secondary-accent", "", "secondary accent override")
	themeCmd.Flags().String("contrast", "normal", "contrast mode (strict, normal, relaxed)")
	themeCmd.Flags().String("format", "text", "output format (json, text)")
	themeCmd.Flags().Bool("preview", false, "render colour swatches")
	themeCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
}

func runTheme(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	logger := newLogger(cmd)

	opts, err := themeOptions()
	if err != nil {
		return err
	}

	css, err := readInput(args[0])
	if err != nil {
		return err
	}

	res := extract.New(colour.NewMemo(nil)).Extract(css)
	mapper := rolemap.NewMapper(nil, logger)
	theme, err := mapper.Map(res.Sorted(), opts)
	if err != nil {
		return err
	}

	for _, warning := range theme.Metadata.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
	}

	out := cmd.OutOrStdout()
	if path := configString("output", ""); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	switch format := configString("format", "text"); format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(theme); err != nil {
			return err
		}
	case "text":
		fmt.Fprintf(out, "flavor:    %s\n", theme.Metadata.Flavor)
		fmt.Fprintf(out, "primary:   %s\n", theme.Metadata.PrimaryAccent)
		fmt.Fprintf(out, "secondary: %s\n", theme.Metadata.SecondaryAccent)
		fmt.Fprintf(out, "contrast:  validated=%v\n", theme.Metadata.ContrastValidated)
		for _, role := range rolemap.RequiredRoles {
			fmt.Fprintf(out, "  %-22s %s\n", role, theme.Roles[role].Hex())
		}
	default:
		return fmt.Errorf("unknown format %q (expected json or text)", format)
	}

	if configBool("preview") {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), renderThemePreview(theme))
	}
	return nil
}

// themeOptions resolves and validates the flavor/accent/contrast
// configuration. Unknown identifiers fail here, at the boundary.
func themeOptions() (rolemap.Options, error) {
	flavor, err := catppuccin.ParseFlavor(configString("flavor", "mocha"))
	if err != nil {
		return rolemap.Options{}, err
	}
	mode, err := rolemap.ParseContrastMode(configString("contrast", ""))
	if err != nil {
		return rolemap.Options{}, err
	}

	opts := rolemap.Options{Flavor: flavor, ContrastMode: mode}
	if name := configString("accent", ""); name != "" {
		accent, err := catppuccin.ParseAccent(name)
		if err != nil {
			return rolemap.Options{}, err
		}
		opts.PrimaryAccent = &accent
	}
	if name := configString("secondary-accent", ""); name != "" {
		accent, err := catppuccin.ParseAccent(name)
		if err != nil {
			return rolemap.Options{}, err
		}
		opts.SecondaryAccent = &accent
	}
	return opts, nil
}
