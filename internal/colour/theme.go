// Package colour defines the theme token set and generation result types.
package colour

import "github.com/hashicorp/go-hclog"

// ThemeTokens is the fixed set of named colour roles for one theme mode.
// Every value is a lowercase "#rrggbb" hex string. Every *Fg token is
// guaranteed readable against its paired background token: the foreground
// selection step enforces the contrast minimum, it is not merely hoped for.
type ThemeTokens struct {
	Bg          string `json:"bg"`
	Card        string `json:"card"`
	Card2       string `json:"card2"`
	Text        string `json:"text"`
	TextMuted   string `json:"textMuted"`
	TextOnColor string `json:"textOnColor"`
	Primary     string `json:"primary"`
	PrimaryFg   string `json:"primaryFg"`
	Secondary   string `json:"secondary"`
	SecondaryFg string `json:"secondaryFg"`
	Accent      string `json:"accent"`
	AccentFg    string `json:"accentFg"`
	Border      string `json:"border"`
	Ring        string `json:"ring"`
	Good        string `json:"good"`
	GoodFg      string `json:"goodFg"`
	Warn        string `json:"warn"`
	WarnFg      string `json:"warnFg"`
	Bad         string `json:"bad"`
	BadFg       string `json:"badFg"`
}

// PaletteResult is the complete outcome of one generation call: both theme
// modes, the resolved seed and harmony mode, the base hue, and the aggregate
// quality score. It is immutable after construction; each caller owns its
// own copy.
type PaletteResult struct {
	Light   ThemeTokens `json:"light"`
	Dark    ThemeTokens `json:"dark"`
	Seed    string      `json:"seed"`
	BaseHue float64     `json:"baseHue"`
	Mode    Mode        `json:"mode"`
	Score   float64     `json:"score"`
}

// Options configures one generation call. The zero value is usable: random
// harmony mode, a time-derived seed, all sliders centred.
type Options struct {
	// Mode is the requested harmony style. ModeRandom (or empty) resolves to
	// a concrete mode via the seeded stream.
	Mode Mode

	// SeedColour, when non-empty, fixes the base hue from this hex colour
	// and contributes the default seed string. Malformed hex degrades to
	// black (an achromatic seed), whose hue falls back to a seeded draw.
	SeedColour string

	// Seed, when non-empty, overrides the string that seeds the random
	// stream. Identical options produce byte-identical results.
	Seed string

	// SaturationLevel, ContrastLevel and BrightnessLevel are slider values
	// in [-5, 5]; out-of-range values are clamped at the boundary.
	SaturationLevel int
	ContrastLevel   int
	BrightnessLevel int

	// OverridePalette optionally pins per-slot hues. When supplied it must
	// contain exactly 5 hex strings for the primary, secondary, accent,
	// good and bad slots; empty entries mean "use the computed hue". A
	// non-empty slot 0 also rebases the palette's base hue.
	OverridePalette []string

	// DarkFirst builds the dark mode from first principles and derives
	// light from it, instead of the default light-first order.
	DarkFirst bool

	// Logger receives stage-level debug output. Nil disables logging.
	Logger hclog.Logger
}

// clampLevel restricts a slider value to the supported [-5, 5] range.
func clampLevel(level int) int {
	if level < -5 {
		return -5
	}
	if level > 5 {
		return 5
	}
	return level
}
