// Package colour provides the harmony table mapping mode names to hue layouts.
package colour

// Mode names a harmony rule for deriving the palette's five target hues from
// one base hue.
type Mode string

const (
	// ModeMonochrome keeps every role on the base hue; status colours are
	// distinguished by lightness and chroma only.
	ModeMonochrome Mode = "monochrome"
	// ModeAnalogous clusters brand hues within 30 degrees of the base.
	ModeAnalogous Mode = "analogous"
	// ModeComplementary pairs the base hue with its opposite.
	ModeComplementary Mode = "complementary"
	// ModeSplitComplementary flanks the base hue's complement.
	ModeSplitComplementary Mode = "split-complementary"
	// ModeTriadic spaces brand hues 120 degrees apart.
	ModeTriadic Mode = "triadic"
	// ModeTetradic uses two complementary pairs 90 degrees apart.
	ModeTetradic Mode = "tetradic"
	// ModeRandom resolves to one of the non-monochrome modes at generation
	// time, using the seeded stream so the choice is reproducible.
	ModeRandom Mode = "random"
)

// HarmonyConfig describes one harmony mode: five signed hue offsets in
// degrees (for the primary, secondary, accent, good and bad roles) and a
// chroma-variance factor applied to brand chroma budgets.
type HarmonyConfig struct {
	Offsets        [5]float64
	ChromaVariance float64
}

// harmonies is the static mode table. Offsets[3] and Offsets[4] feed status
// colour hue selection; the green/red orientation is corrected downstream, so
// the table only has to provide two well-separated hues.
var harmonies = map[Mode]HarmonyConfig{
	ModeMonochrome:         {Offsets: [5]float64{0, 0, 0, 0, 0}, ChromaVariance: 0.6},
	ModeAnalogous:          {Offsets: [5]float64{0, 30, -30, 150, 210}, ChromaVariance: 0.85},
	ModeComplementary:      {Offsets: [5]float64{0, 180, 30, 150, 330}, ChromaVariance: 1.0},
	ModeSplitComplementary: {Offsets: [5]float64{0, 150, 210, 120, 240}, ChromaVariance: 1.0},
	ModeTriadic:            {Offsets: [5]float64{0, 120, 240, 120, 240}, ChromaVariance: 1.1},
	ModeTetradic:           {Offsets: [5]float64{0, 90, 180, 90, 270}, ChromaVariance: 1.05},
}

// namedModes lists the concrete (non-random) modes in a stable order, needed
// so random resolution draws over a deterministic sequence.
var namedModes = []Mode{
	ModeMonochrome,
	ModeAnalogous,
	ModeComplementary,
	ModeSplitComplementary,
	ModeTriadic,
	ModeTetradic,
}

// Modes returns the concrete harmony modes in a stable order.
func Modes() []Mode {
	out := make([]Mode, len(namedModes))
	copy(out, namedModes)
	return out
}

// Harmony returns the configuration for a mode. Unknown mode names fall back
// to analogous rather than failing; the engine degrades, it does not reject.
func Harmony(m Mode) HarmonyConfig {
	if cfg, ok := harmonies[m]; ok {
		return cfg
	}
	return harmonies[ModeAnalogous]
}

// ResolveMode maps the random style to a concrete mode using the seeded
// stream, choosing uniformly among the non-monochrome modes. Concrete modes
// pass through unchanged; unknown names degrade to analogous.
func ResolveMode(m Mode, r *Rand) Mode {
	if m != ModeRandom {
		if _, ok := harmonies[m]; ok {
			return m
		}
		return ModeAnalogous
	}

	candidates := make([]Mode, 0, len(namedModes)-1)
	for _, candidate := range namedModes {
		if candidate != ModeMonochrome {
			candidates = append(candidates, candidate)
		}
	}
	return Pick(r, candidates)
}

// harmonyHues expands a base hue through a mode's offsets into the five
// per-role target hues.
func harmonyHues(base float64, cfg HarmonyConfig) [5]float64 {
	var hues [5]float64
	for i, off := range cfg.Offsets {
		hues[i] = normaliseHue(base + off)
	}
	return hues
}
