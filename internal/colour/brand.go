// Package colour provides brand and status colour construction.
package colour

import "math"

// brandSet holds the three brand colours for one mode, in OKLCH.
type brandSet struct {
	Primary   Oklch
	Secondary Oklch
	Accent    Oklch
}

// statusSet holds the three status colours for one mode, in OKLCH.
type statusSet struct {
	Good Oklch
	Warn Oklch
	Bad  Oklch
}

// Candidate sampling and scoring weights for brand hue selection.
const (
	brandCandidates   = 8
	candidateChromaLo = 0.08
	candidateChromaHi = 0.22
	contrastWeight    = 2.0
	separationWeight  = 10.0
	sweetSpotBonus    = 5.0 // awarded when chroma lands in [0.10, 0.20]
)

// Slider mappings for brand/status magnitude.
const (
	chromaBudgetLo = 0.02 // saturation level -5
	chromaBudgetHi = 0.26 // saturation level +5
	brandBaseL     = 0.52
	brandLSpan     = 0.125 // lightness swing across the brightness range
	brandContrastL = 0.02  // lightness offset per contrast level
	brandChromaCap = 0.28
)

// Status hue anchors. Warn is pinned near yellow regardless of harmony.
const (
	greenHue = 140.0
	redHue   = 0.0
	warnHue  = 60.0
)

// roleAdjust biases one role's magnitude relative to the shared slider
// values: secondary is less chromatic and lighter than primary, accent more
// chromatic and brighter.
type roleAdjust struct {
	chromaFactor float64
	lightnessDL  float64
}

var (
	primaryAdjust   = roleAdjust{chromaFactor: 1.0, lightnessDL: 0}
	secondaryAdjust = roleAdjust{chromaFactor: 0.85, lightnessDL: 0.06}
	accentAdjust    = roleAdjust{chromaFactor: 1.15, lightnessDL: 0.04}
	goodAdjust      = roleAdjust{chromaFactor: 1.0, lightnessDL: 0.02}
	warnAdjust      = roleAdjust{chromaFactor: 0.95, lightnessDL: 0.10}
	badAdjust       = roleAdjust{chromaFactor: 1.05, lightnessDL: -0.06}
)

// sliderMagnitude maps the three slider levels to a base lightness and
// chroma budget for brand and status colours. The contrast slider pushes
// lightness away from the mode's background: darker against light
// backgrounds, lighter against dark ones.
func sliderMagnitude(saturation, contrast, brightness int, chromaVariance float64, dark bool) (l, c float64) {
	sl := float64(clampLevel(saturation))
	cl := float64(clampLevel(contrast))
	bl := float64(clampLevel(brightness))

	c = chromaBudgetLo + (sl+5)/10*(chromaBudgetHi-chromaBudgetLo)
	c = math.Min(brandChromaCap, c*chromaVariance)

	l = brandBaseL + bl/5*brandLSpan
	if dark {
		l += brandContrastL * cl
	} else {
		l -= brandContrastL * cl
	}
	return clamp01(l), c
}

// pickBrandHue samples brandCandidates chroma candidates at the role's
// target lightness and hue, scores each against background contrast,
// separation from already-chosen colours, and a chroma sweet-spot bonus,
// and returns the winning candidate's hue. Only the hue survives: the
// sampled lightness and chroma are discarded and the final colour is rebuilt
// from the slider-derived magnitude. The sampling step selects hue, the
// slider step fixes magnitude.
func pickBrandHue(r *Rand, targetHue, targetL float64, bg Oklch, chosen []Oklch) float64 {
	bgRGB := bg.RGB()

	best := targetHue
	bestScore := math.Inf(-1)
	for i := 0; i < brandCandidates; i++ {
		chroma := r.NextFloat(candidateChromaLo, candidateChromaHi)
		candidate := ClampToSRGBGamut(Oklch{L: targetL, C: chroma, H: targetHue})

		score := contrastWeight * ContrastRatio(candidate.RGB(), bgRGB)
		for _, other := range chosen {
			score += separationWeight * DeltaE(candidate, other)
		}
		if chroma >= 0.10 && chroma <= 0.20 {
			score += sweetSpotBonus
		}

		if score > bestScore {
			bestScore = score
			best = candidate.H
		}
	}
	return best
}

// buildRole constructs one brand or status colour at a fixed hue from the
// shared slider magnitude plus the role's bias, gamut-clamped.
func buildRole(hue, baseL, baseC float64, adj roleAdjust) Oklch {
	return ClampToSRGBGamut(Oklch{
		L: clamp01(baseL + adj.lightnessDL),
		C: math.Min(brandChromaCap, baseC*adj.chromaFactor),
		H: normaliseHue(hue),
	})
}

// buildBrand constructs primary, secondary and accent for one mode. Hues
// come from candidate sampling around the harmony's first three target hues;
// magnitude comes from the sliders.
func buildBrand(r *Rand, hues [5]float64, bg Oklch, saturation, contrast, brightness int, chromaVariance float64, dark bool) brandSet {
	baseL, baseC := sliderMagnitude(saturation, contrast, brightness, chromaVariance, dark)

	var chosen []Oklch

	primaryHue := pickBrandHue(r, hues[0], baseL+primaryAdjust.lightnessDL, bg, chosen)
	primary := buildRole(primaryHue, baseL, baseC, primaryAdjust)
	chosen = append(chosen, primary)

	secondaryHue := pickBrandHue(r, hues[1], baseL+secondaryAdjust.lightnessDL, bg, chosen)
	secondary := buildRole(secondaryHue, baseL, baseC, secondaryAdjust)
	chosen = append(chosen, secondary)

	accentHue := pickBrandHue(r, hues[2], baseL+accentAdjust.lightnessDL, bg, chosen)
	accent := buildRole(accentHue, baseL, baseC, accentAdjust)

	return brandSet{Primary: primary, Secondary: secondary, Accent: accent}
}

// statusHues resolves the good and bad hues from the harmony's two status
// offsets, swapping them if "bad" landed hue-closer to green than "good", or
// "good" closer to red than "bad". The guard prevents a green error or red
// success regardless of where the harmony offsets fell.
func statusHues(hues [5]float64) (good, bad float64) {
	good, bad = hues[3], hues[4]
	if HueDistance(bad, greenHue) < HueDistance(good, greenHue) ||
		HueDistance(good, redHue) < HueDistance(bad, redHue) {
		good, bad = bad, good
	}
	return good, bad
}

// buildStatus constructs the good, warn and bad colours for one mode. Good
// and bad hues come from the harmony table via the swap guard; warn is fixed
// near yellow. Magnitude follows the same slider formulas as brand colours.
// Under monochrome harmony good and bad share one hue and are told apart by
// the lightness and chroma biases alone.
func buildStatus(hues [5]float64, saturation, contrast, brightness int, chromaVariance float64, dark bool) statusSet {
	baseL, baseC := sliderMagnitude(saturation, contrast, brightness, chromaVariance, dark)
	goodHue, badHue := statusHues(hues)

	return statusSet{
		Good: buildRole(goodHue, baseL, baseC, goodAdjust),
		Warn: buildRole(warnHue, baseL, baseC, warnAdjust),
		Bad:  buildRole(badHue, baseL, baseC, badAdjust),
	}
}
