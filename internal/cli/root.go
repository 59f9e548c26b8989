// Package cli provides the command-line interface for cattint.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/cattint/cattint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cattint",
	Short: "Map a website's colours onto the Catppuccin palette",
	Long: `Cattint analyses a site's CSS and HTML, derives its colour signature
(dominant hue, brand colours, light/dark mode) and maps it onto one of
the four Catppuccin flavors while preserving visual hierarchy and WCAG
contrast.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default .cattint.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(signatureCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(accentsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// newLogger builds the process logger from the --log-level flag.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return hclog.New(&hclog.LoggerOptions{
		Name:   "cattint",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
		Color:  hclog.AutoColor,
	})
}

// readInput reads a CSS/HTML argument: a file path, or stdin for "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
