// Package colour provides the palette scoring engine.
package colour

import "math"

// Scoring weights. The three components sum to 100 when a palette is
// maximally readable, well separated, and on-harmony.
const (
	readabilityPoints = 40.0
	separationPoints  = 30.0
	harmonyPoints     = 30.0

	// separationSpan is the mean pairwise deltaE at which the separation
	// component saturates. 0.15 in OKLab is a clearly distinct pair.
	separationSpan = 0.15
)

// ScoreTokens computes a figure of merit in [0, 100] for one mode's token
// set: WCAG readability of the text pairs, perceptual separation of the
// brand and status roles, and conformance of the realised hues to the chosen
// harmony. Scoring only annotates a palette; it never fails or rejects one.
func ScoreTokens(t ThemeTokens, baseHue float64, mode Mode) float64 {
	return scoreReadability(t) + scoreSeparation(t) + scoreHarmony(t, baseHue, mode)
}

func scoreReadability(t ThemeTokens) float64 {
	text := math.Min(1, ContrastRatioHex(t.Text, t.Bg)/MinTextContrast)
	muted := math.Min(1, ContrastRatioHex(t.TextMuted, t.Bg)/MinMutedContrast)
	return readabilityPoints * (text + muted) / 2
}

func scoreSeparation(t ThemeTokens) float64 {
	p := ToOklch(t.Primary)
	s := ToOklch(t.Secondary)
	a := ToOklch(t.Accent)
	good := ToOklch(t.Good)
	bad := ToOklch(t.Bad)

	pairs := []float64{
		DeltaE(p, s),
		DeltaE(p, a),
		DeltaE(s, a),
		DeltaE(good, bad),
	}

	var sum float64
	for _, d := range pairs {
		sum += math.Min(1, d/separationSpan)
	}
	return separationPoints * sum / float64(len(pairs))
}

func scoreHarmony(t ThemeTokens, baseHue float64, mode Mode) float64 {
	hues := harmonyHues(baseHue, Harmony(mode))
	roles := []struct {
		hex      string
		expected float64
	}{
		{t.Primary, hues[0]},
		{t.Secondary, hues[1]},
		{t.Accent, hues[2]},
	}

	var sum float64
	for _, role := range roles {
		c := ToOklchWithHueFallback(role.hex, role.expected)
		sum += 1 - HueDistance(c.H, role.expected)/180
	}
	return harmonyPoints * sum / float64(len(roles))
}
