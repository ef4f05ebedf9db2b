// Package colour provides the neutral foundation builder: background,
// surface, text and border tones for one theme mode.
package colour

import "math"

// neutralSet holds the six neutral tones for one mode, in OKLCH.
type neutralSet struct {
	Bg        Oklch
	Card      Oklch
	Card2     Oklch
	Text      Oklch
	TextMuted Oklch
	Border    Oklch
}

// lightnessBand is the legal lightness range for one neutral role in one
// mode. Band clamping is the contrast-safety invariant: the text bands and
// background bands never overlap, so text and background lightness cannot
// cross regardless of slider extremes.
type lightnessBand struct {
	lo, hi float64
}

func (b lightnessBand) clamp(l float64) float64 {
	return clampRange(l, b.lo, b.hi)
}

// neutralTargets holds per-role target lightness and bands for one mode.
type neutralTargets struct {
	bg, card, card2, text, textMuted, border float64
	bgBand, cardBand, card2Band              lightnessBand
	textBand, textMutedBand, borderBand      lightnessBand
}

var lightTargets = neutralTargets{
	bg: 0.97, card: 0.93, card2: 0.90, text: 0.18, textMuted: 0.42, border: 0.82,
	bgBand:        lightnessBand{0.85, 0.99},
	cardBand:      lightnessBand{0.82, 0.97},
	card2Band:     lightnessBand{0.80, 0.95},
	textBand:      lightnessBand{0.05, 0.35},
	textMutedBand: lightnessBand{0.30, 0.55},
	borderBand:    lightnessBand{0.70, 0.92},
}

var darkTargets = neutralTargets{
	bg: 0.08, card: 0.12, card2: 0.15, text: 0.92, textMuted: 0.65, border: 0.25,
	bgBand:        lightnessBand{0.03, 0.25},
	cardBand:      lightnessBand{0.06, 0.30},
	card2Band:     lightnessBand{0.08, 0.35},
	textBand:      lightnessBand{0.75, 0.98},
	textMutedBand: lightnessBand{0.50, 0.80},
	borderBand:    lightnessBand{0.15, 0.45},
}

// Slider weights for the neutral foundation.
const (
	contrastStep    = 0.015 // widens the bg/text gap per contrast level
	brightnessStep  = 0.02  // uniform lightness shift per brightness level
	brightnessText  = 0.01  // reduced brightness weight on text and border
	neutralTintBase = 0.004 // chroma of neutrals at saturation level 0
	neutralTintStep = 0.003 // added chroma per saturation level
	warmTintHue     = 60.0
	coolTintHue     = 240.0
)

// neutralTintHue picks the hue neutrals lean toward. The warmth signal is
// continuous; its sign decides warm (60) versus cool (240). Base hues within
// a quarter turn of yellow read as warm.
func neutralTintHue(baseHue float64) float64 {
	warmth := 90 - HueDistance(baseHue, warmTintHue)
	if warmth >= 0 {
		return warmTintHue
	}
	return coolTintHue
}

// buildNeutrals computes the six neutral tones for one mode from the base
// hue and the three slider levels. Every output is band-clamped and then
// gamut-clamped; see lightnessBand for the contrast-safety invariant.
func buildNeutrals(baseHue float64, contrast, brightness, saturation int, dark bool) neutralSet {
	targets := lightTargets
	if dark {
		targets = darkTargets
	}

	cl := float64(clampLevel(contrast))
	bl := float64(clampLevel(brightness))
	sl := float64(clampLevel(saturation))

	// Text moves away from the background as contrast rises; muted text
	// follows at half weight. In light mode "away" is darker, in dark mode
	// lighter.
	textShift := contrastStep * cl
	if !dark {
		textShift = -textShift
	}

	bgL := targets.bg + brightnessStep*bl
	cardL := targets.card + brightnessStep*bl
	card2L := targets.card2 + brightnessStep*bl
	textL := targets.text + textShift + brightnessText*bl
	textMutedL := targets.textMuted + textShift/2 + brightnessText*bl
	borderL := targets.border + brightnessText*bl

	tint := math.Max(0, neutralTintBase+neutralTintStep*sl)
	hue := neutralTintHue(baseHue)

	mk := func(l float64, band lightnessBand, chroma float64) Oklch {
		return ClampToSRGBGamut(Oklch{L: band.clamp(l), C: chroma, H: hue})
	}

	return neutralSet{
		Bg:        mk(bgL, targets.bgBand, tint),
		Card:      mk(cardL, targets.cardBand, tint),
		Card2:     mk(card2L, targets.card2Band, tint),
		Text:      mk(textL, targets.textBand, tint/2),
		TextMuted: mk(textMutedL, targets.textMutedBand, tint/2),
		Border:    mk(borderL, targets.borderBand, tint),
	}
}
