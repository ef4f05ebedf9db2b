// Package colour provides derivation of one theme mode from the other.
// Exactly one mode per generation is built from first principles; the
// opposite mode is always a pure function of it, which is what keeps the two
// modes visually coherent.
package colour

import "math"

// Derivation constants.
const (
	// neutralCarry controls how much of a neutral's offset from its
	// opposite-mode target survives derivation. The retained fraction is
	// scaled by the token's chroma, so achromatic neutrals land exactly on
	// target while tinted ones keep a trace of their character.
	neutralCarry = 0.5

	brandDeriveDL  = 0.10  // lightness nudge for brand/status tokens
	darkBrandMaxL  = 0.85  // cap when lightening for dark mode
	lightBrandMinL = 0.30  // floor when darkening for light mode
	chromaToDark   = 0.875 // darker contexts need desaturation
	chromaToLight  = 1.125 // lighter contexts tolerate more saturation
)

// DeriveDarkMode computes the dark counterpart of a light theme.
func DeriveDarkMode(light ThemeTokens, baseHue float64) ThemeTokens {
	return deriveOpposite(light, baseHue, true)
}

// DeriveLightMode computes the light counterpart of a dark theme.
func DeriveLightMode(dark ThemeTokens, baseHue float64) ThemeTokens {
	return deriveOpposite(dark, baseHue, false)
}

// deriveOpposite maps every token of src into the opposite mode. Neutrals
// move toward the destination mode's target lightness and are re-clamped
// into its band; brand and status tokens preserve hue exactly, with fixed
// lightness nudges and chroma scaling. Foreground tokens are never derived:
// they are recomputed fresh against the destination mode's own backgrounds,
// so each mode independently satisfies its readability requirement.
func deriveOpposite(src ThemeTokens, baseHue float64, toDark bool) ThemeTokens {
	targets := lightTargets
	if toDark {
		targets = darkTargets
	}
	tintHue := neutralTintHue(baseHue)

	neutral := func(hex string, target float64, band lightnessBand) Oklch {
		c := ToOklchWithHueFallback(hex, tintHue)
		residual := (c.L - target) * neutralCarry * math.Min(1, c.C*10)
		return ClampToSRGBGamut(Oklch{
			L: band.clamp(target + residual),
			C: c.C,
			H: c.H,
		})
	}

	brand := func(hex string) Oklch {
		c := ToOklchWithHueFallback(hex, baseHue)
		var l, chroma float64
		if toDark {
			l = math.Min(darkBrandMaxL, c.L+brandDeriveDL)
			chroma = c.C * chromaToDark
		} else {
			l = math.Max(lightBrandMinL, c.L-brandDeriveDL)
			chroma = math.Min(brandChromaCap, c.C*chromaToLight)
		}
		return ClampToSRGBGamut(Oklch{L: l, C: chroma, H: c.H})
	}

	bg := neutral(src.Bg, targets.bg, targets.bgBand)
	bgRGB := bg.RGB()

	text := ensureContrast(neutral(src.Text, targets.text, targets.textBand), bgRGB, MinTextContrast, toDark)
	textMuted := ensureContrast(neutral(src.TextMuted, targets.textMuted, targets.textMutedBand), bgRGB, MinMutedContrast, toDark)

	primary := brand(src.Primary)
	secondary := brand(src.Secondary)
	accent := brand(src.Accent)
	good := brand(src.Good)
	warn := brand(src.Warn)
	bad := brand(src.Bad)
	ring := brand(src.Ring)

	out := ThemeTokens{
		Bg:        bg.Hex(),
		Card:      neutral(src.Card, targets.card, targets.cardBand).Hex(),
		Card2:     neutral(src.Card2, targets.card2, targets.card2Band).Hex(),
		Text:      text.Hex(),
		TextMuted: textMuted.Hex(),
		Border:    neutral(src.Border, targets.border, targets.borderBand).Hex(),
		Primary:   primary.Hex(),
		Secondary: secondary.Hex(),
		Accent:    accent.Hex(),
		Ring:      ring.Hex(),
		Good:      good.Hex(),
		Warn:      warn.Hex(),
		Bad:       bad.Hex(),
	}
	fillForegrounds(&out)
	return out
}

// fillForegrounds recomputes every *Fg token plus textOnColor from the
// token set's own backgrounds.
func fillForegrounds(t *ThemeTokens) {
	t.TextOnColor = SelectForegroundHex(t.Primary, MinTextContrast)
	t.PrimaryFg = SelectForegroundHex(t.Primary, MinTextContrast)
	t.SecondaryFg = SelectForegroundHex(t.Secondary, MinTextContrast)
	t.AccentFg = SelectForegroundHex(t.Accent, MinTextContrast)
	t.GoodFg = SelectForegroundHex(t.Good, MinTextContrast)
	t.WarnFg = SelectForegroundHex(t.Warn, MinTextContrast)
	t.BadFg = SelectForegroundHex(t.Bad, MinTextContrast)
}
