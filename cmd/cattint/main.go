// Cattint maps website colour schemes onto the Catppuccin palette.
//
// It analyses a site's CSS/HTML, derives a perceptual colour signature
// and produces an accessibility-checked role table in any of the four
// Catppuccin flavors.
package main

import "github.com/cattint/cattint/internal/cli"

func main() {
	cli.Execute()
}
