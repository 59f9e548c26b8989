package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cattint/cattint/internal/catppuccin"
	"github.com/cattint/cattint/internal/rolemap"
)

var accentsCmd = &cobra.Command{
	Use:   "accents",
	Short: "Show the precomputed companion accent table",
	Long: `Accents dumps the bi-accent (±72°) and co-accent (±144°) companions
derived for every accent of a flavor. Bi-accents pair with their main
accent in gradients; co-accents serve as independent accents on
unrelated elements.`,
	RunE: runAccents,
}

func init() {
	accentsCmd.Flags().String("flavor", "", "limit output to one flavor")
	accentsCmd.Flags().Bool("preview", false, "render colour swatches")
}

func runAccents(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	flavors := catppuccin.Flavors
	if name := configString("flavor", ""); name != "" {
		flavor, err := catppuccin.ParseFlavor(name)
		if err != nil {
			return err
		}
		flavors = []catppuccin.Flavor{flavor}
	}

	mapper := rolemap.NewMapper(nil, newLogger(cmd))
	preview := configBool("preview")
	out := cmd.OutOrStdout()

	for _, f := range flavors {
		fmt.Fprintf(out, "%s:\n", f)
		for _, a := range catppuccin.Accents {
			set := mapper.Companions(f, a)
			if preview {
				fmt.Fprintf(out, "  %s %-10s bi: %s %s / %s %s  co: %s %s / %s %s\n",
					accentSwatch(f, a), a,
					accentSwatch(f, set.Bi1), set.Bi1,
					accentSwatch(f, set.Bi2), set.Bi2,
					accentSwatch(f, set.Co1), set.Co1,
					accentSwatch(f, set.Co2), set.Co2)
				continue
			}
			fmt.Fprintf(out, "  %-10s bi: %s/%s  co: %s/%s\n", a, set.Bi1, set.Bi2, set.Co1, set.Co2)
		}
	}
	return nil
}
