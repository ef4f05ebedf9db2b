// Package colour provides the palette generation orchestrator.
package colour

import (
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Generate produces a paired light/dark theme from the given options. The
// call is synchronous and purely functional over its inputs aside from the
// seeded stream, which is local to this call: identical options (with an
// explicit seed) yield byte-identical results, and concurrent calls share no
// state.
//
// One mode is built from first principles — light unless DarkFirst is set —
// and the opposite mode is derived from it, never regenerated independently.
func Generate(opts Options) PaletteResult {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	saturation := clampLevel(opts.SaturationLevel)
	contrast := clampLevel(opts.ContrastLevel)
	brightness := clampLevel(opts.BrightnessLevel)

	seed := opts.Seed
	if seed == "" {
		seed = opts.SeedColour
	}
	if seed == "" {
		seed = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	r := NewRandFromString(seed)

	requested := opts.Mode
	if requested == "" {
		requested = ModeRandom
	}
	mode := ResolveMode(requested, r)
	cfg := Harmony(mode)

	baseHue, ok := hueFromHex(opts.SeedColour)
	if !ok {
		baseHue = r.Next() * 360
	}
	if h, ok := overrideHue(opts.OverridePalette, 0); ok {
		// A pinned primary slot rebases the whole palette.
		baseHue = h
	}

	hues := harmonyHues(baseHue, cfg)
	for i := range hues {
		if h, ok := overrideHue(opts.OverridePalette, i); ok {
			hues[i] = h
		}
	}

	logger.Debug("resolved generation inputs",
		"mode", mode, "baseHue", baseHue, "seed", seed,
		"saturation", saturation, "contrast", contrast, "brightness", brightness,
		"darkFirst", opts.DarkFirst)

	var light, dark ThemeTokens
	if opts.DarkFirst {
		dark = buildTokens(r, hues, baseHue, cfg.ChromaVariance, saturation, contrast, brightness, true)
		light = DeriveLightMode(dark, baseHue)
	} else {
		light = buildTokens(r, hues, baseHue, cfg.ChromaVariance, saturation, contrast, brightness, false)
		dark = DeriveDarkMode(light, baseHue)
	}

	score := (ScoreTokens(light, baseHue, mode) + ScoreTokens(dark, baseHue, mode)) / 2
	logger.Debug("palette scored", "score", score)

	return PaletteResult{
		Light:   light,
		Dark:    dark,
		Seed:    seed,
		BaseHue: baseHue,
		Mode:    mode,
		Score:   score,
	}
}

// buildTokens assembles one mode's full token set from first principles:
// neutral foundation, then brand colours against it, then status colours,
// then foregrounds.
func buildTokens(r *Rand, hues [5]float64, baseHue, chromaVariance float64, saturation, contrast, brightness int, dark bool) ThemeTokens {
	neutrals := buildNeutrals(baseHue, contrast, brightness, saturation, dark)
	brand := buildBrand(r, hues, neutrals.Bg, saturation, contrast, brightness, chromaVariance, dark)
	status := buildStatus(hues, saturation, contrast, brightness, chromaVariance, dark)

	bgRGB := neutrals.Bg.RGB()
	text := ensureContrast(neutrals.Text, bgRGB, MinTextContrast, dark)
	textMuted := ensureContrast(neutrals.TextMuted, bgRGB, MinMutedContrast, dark)

	// Focus ring: primary's hue at a border-adjacent lightness, quiet enough
	// not to compete with the brand colour itself.
	ring := ClampToSRGBGamut(Oklch{
		L: (neutrals.Border.L + brand.Primary.L) / 2,
		C: math.Min(0.08, brand.Primary.C*0.5),
		H: brand.Primary.H,
	})

	t := ThemeTokens{
		Bg:        neutrals.Bg.Hex(),
		Card:      neutrals.Card.Hex(),
		Card2:     neutrals.Card2.Hex(),
		Text:      text.Hex(),
		TextMuted: textMuted.Hex(),
		Border:    neutrals.Border.Hex(),
		Primary:   brand.Primary.Hex(),
		Secondary: brand.Secondary.Hex(),
		Accent:    brand.Accent.Hex(),
		Ring:      ring.Hex(),
		Good:      status.Good.Hex(),
		Warn:      status.Warn.Hex(),
		Bad:       status.Bad.Hex(),
	}
	fillForegrounds(&t)
	return t
}

// hueFromHex extracts the HSL hue of a hex colour. The second return is
// false for empty or achromatic input (including malformed hex, which
// degrades to black), where hue is undefined.
func hueFromHex(hex string) (float64, bool) {
	if hex == "" {
		return 0, false
	}
	h, s, _ := HexToHSL(hex)
	if s == 0 {
		return 0, false
	}
	return h, true
}

// overrideHue reads slot i of an override palette. Overrides only apply when
// exactly five slots are supplied; empty slots mean "use the computed hue".
func overrideHue(palette []string, i int) (float64, bool) {
	if len(palette) != 5 || i < 0 || i >= 5 {
		return 0, false
	}
	return hueFromHex(palette[i])
}
