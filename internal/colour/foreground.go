// Package colour provides foreground colour selection logic.
package colour

// Foreground selection constants.
const (
	// MinTextContrast is the WCAG AA minimum for normal text.
	MinTextContrast = 4.5
	// MinMutedContrast is the WCAG AA minimum for large/secondary text.
	MinMutedContrast = 3.0

	fgLightL   = 0.97 // near-white starting point
	fgDarkL    = 0.16 // near-black starting point
	fgMaxTint  = 0.03 // chroma ceiling for foregrounds
	fgStepL    = 0.05
	fgAttempts = 20
)

// SelectForegroundHex chooses a readable foreground for the given background:
// a faintly tinted near-white or near-black sharing the background's hue,
// whichever clears minContrast by the larger margin. If the starting point
// falls short, lightness steps toward the extreme until the ratio is met.
// Hue is kept for visual cohesion; only contrast decides the winner.
func SelectForegroundHex(bgHex string, minContrast float64) string {
	bg := ToOklch(bgHex)
	bgRGB := HexToRGB(bgHex)

	tint := bg.C
	if tint > fgMaxTint {
		tint = fgMaxTint
	}

	light := ensureContrast(Oklch{L: fgLightL, C: tint, H: bg.H}, bgRGB, minContrast, true)
	dark := ensureContrast(Oklch{L: fgDarkL, C: tint, H: bg.H}, bgRGB, minContrast, false)

	lightRatio := ContrastRatio(light.RGB(), bgRGB)
	darkRatio := ContrastRatio(dark.RGB(), bgRGB)

	if lightRatio >= darkRatio {
		return light.Hex()
	}
	return dark.Hex()
}

// ensureContrast steps a colour's lightness toward white (lighter=true) or
// black until it reaches minContrast against the background, dropping chroma
// to zero at the end if tint alone is what keeps it short. The input is
// returned unchanged when it already complies.
func ensureContrast(c Oklch, bg RGB, minContrast float64, lighter bool) Oklch {
	c = ClampToSRGBGamut(c)
	for i := 0; i < fgAttempts; i++ {
		if ContrastRatio(c.RGB(), bg) >= minContrast {
			return c
		}
		if lighter {
			if c.L >= 1 {
				break
			}
			c = ClampToSRGBGamut(Oklch{L: clamp01(c.L + fgStepL), C: c.C, H: c.H})
		} else {
			if c.L <= 0 {
				break
			}
			c = ClampToSRGBGamut(Oklch{L: clamp01(c.L - fgStepL), C: c.C, H: c.H})
		}
	}
	if ContrastRatio(c.RGB(), bg) < minContrast {
		// Tint can cost the last fraction of a ratio; pure grey is the
		// highest-contrast colour at any lightness extreme.
		c = Oklch{L: c.L, C: 0, H: c.H}
	}
	return c
}
