package colour

// Blend composites overlay onto base at the given opacity using the
// Porter-Duff "over" operator on opaque colours. alpha is the overlay
// opacity in [0, 1]; 0 returns base, 1 returns overlay.
// Interaction-state colours (hover, active, focus, selection) are all
// derived through this single function so they stay deterministic.
func Blend(base, overlay RGB, alpha float64) RGB {
	alpha = clamp01(alpha)
	inv := 1 - alpha

	return RGB{
		R: Clamp255(float64(overlay.R)*alpha + float64(base.R)*inv),
		G: Clamp255(float64(overlay.G)*alpha + float64(base.G)*inv),
		B: Clamp255(float64(overlay.B)*alpha + float64(base.B)*inv),
	}
}
