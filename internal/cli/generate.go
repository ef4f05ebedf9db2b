// Package cli provides the command-line interface for Tonal.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/image"
)

// generateOptions holds the flag values for one invocation of generate.
type generateOptions struct {
	mode       string
	seedColour string
	seed       string
	imagePath  string
	saturation int
	contrast   int
	brightness int
	override   []string
	darkFirst  bool
	jsonOut    bool
}

// newGenerateCmd builds the generate command.
func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a paired light/dark colour theme",
		Long: `Generate a paired light and dark UI colour theme.

The base hue comes from a seed colour, an image, or a seeded random draw.
A harmony mode spreads the brand and status hues around that base, and three
slider levels (-5..5) shape saturation, contrast and brightness. One mode is
built from first principles and the other derived from it, so the pair stays
visually coherent.

Harmony modes: ` + modeList() + `, random

Examples:
  # Random harmony from a seed colour
  tonal generate -c "#3b82f6"

  # A reproducible triadic theme
  tonal generate -m triadic -s my-project --saturation 2

  # Build dark mode first and derive light from it
  tonal generate -m complementary -c "#10b981" --dark-first

  # Seed colour sampled from a wallpaper
  tonal generate -i wallpaper.jpg

  # Pin the primary and accent hues, compute the rest
  tonal generate -m analogous --override "#ff0000,,#0000ff,,"

  # Machine-readable output
  tonal generate -c "#3b82f6" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	generateCmd.Flags().StringVarP(&opts.mode, "mode", "m", "random", "harmony mode")
	generateCmd.Flags().StringVarP(&opts.seedColour, "seed-colour", "c", "", "seed colour as #rrggbb hex")
	generateCmd.Flags().StringVarP(&opts.seed, "seed", "s", "", "seed string for reproducible generation")
	generateCmd.Flags().StringVarP(&opts.imagePath, "image", "i", "", "derive the seed colour from an image file")
	generateCmd.Flags().IntVar(&opts.saturation, "saturation", 0, "saturation level (-5..5)")
	generateCmd.Flags().IntVar(&opts.contrast, "contrast", 0, "contrast level (-5..5)")
	generateCmd.Flags().IntVar(&opts.brightness, "brightness", 0, "brightness level (-5..5)")
	generateCmd.Flags().StringSliceVar(&opts.override, "override", nil, "five hue-override hex slots (primary,secondary,accent,good,bad); empty slots use computed hues")
	generateCmd.Flags().BoolVar(&opts.darkFirst, "dark-first", false, "build dark mode first and derive light from it")
	generateCmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit the full result as JSON")

	return generateCmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	mode := colour.Mode(opts.mode)
	if !validMode(mode) {
		return fmt.Errorf("unknown harmony mode: %s (valid: %s, random)", opts.mode, modeList())
	}

	if opts.override != nil && len(opts.override) != 5 {
		return fmt.Errorf("override requires exactly 5 slots, got %d", len(opts.override))
	}

	seedColour := opts.seedColour
	if opts.imagePath != "" {
		if seedColour != "" {
			return fmt.Errorf("--seed-colour and --image are mutually exclusive")
		}
		var err error
		seedColour, err = image.SeedColourFromFile(opts.imagePath)
		if err != nil {
			return fmt.Errorf("failed to extract seed colour: %w", err)
		}
		logger.Debug("extracted seed colour from image", "path", opts.imagePath, "colour", seedColour)
	}

	result := colour.Generate(colour.Options{
		Mode:            mode,
		SeedColour:      seedColour,
		Seed:            opts.seed,
		SaturationLevel: opts.saturation,
		ContrastLevel:   opts.contrast,
		BrightnessLevel: opts.brightness,
		OverridePalette: opts.override,
		DarkFirst:       opts.darkFirst,
		Logger:          logger,
	})

	if opts.jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printResult(cmd, result)
	return nil
}

// newLogger builds the command logger: debug to stderr when verbose,
// otherwise silent.
func newLogger(verbose bool) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tonal",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Output: os.Stderr,
		Level:  hclog.Off,
	})
}

// validMode reports whether the given mode is one the generator accepts.
func validMode(m colour.Mode) bool {
	if m == colour.ModeRandom {
		return true
	}
	for _, known := range colour.Modes() {
		if m == known {
			return true
		}
	}
	return false
}

// modeList returns the concrete harmony modes as a comma-separated string.
func modeList() string {
	modes := colour.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// printResult renders the generation summary and one token table per mode.
func printResult(cmd *cobra.Command, result colour.PaletteResult) {
	swatches := term.IsTerminal(int(os.Stdout.Fd()))

	cmd.Printf("Mode:    %s\n", result.Mode)
	cmd.Printf("Seed:    %s\n", result.Seed)
	cmd.Printf("BaseHue: %.1f\n", result.BaseHue)
	cmd.Printf("Score:   %.1f/100\n", result.Score)

	cmd.Printf("\nLight\n%s", renderTokens(result.Light, swatches))
	cmd.Printf("\nDark\n%s", renderTokens(result.Dark, swatches))
}

// renderTokens formats one mode's tokens as a table: token name, hex value,
// contrast against the mode's background, and an ANSI swatch on terminals.
func renderTokens(tokens colour.ThemeTokens, swatches bool) string {
	headers := []string{"Token", "Hex", "Contrast"}
	if swatches {
		headers = append(headers, "Swatch")
	}
	table := NewTable(headers)

	for _, row := range tokenRows(tokens) {
		cells := []string{row.name, row.hex, fmt.Sprintf("%.2f", colour.ContrastRatioHex(row.hex, tokens.Bg))}
		if swatches {
			cells = append(cells, swatch(row.hex))
		}
		table.AddRow(cells)
	}

	return table.Render()
}

// tokenRow pairs a token name with its hex value for display.
type tokenRow struct {
	name string
	hex  string
}

// tokenRows lists the tokens in a stable display order.
func tokenRows(t colour.ThemeTokens) []tokenRow {
	return []tokenRow{
		{"bg", t.Bg},
		{"card", t.Card},
		{"card2", t.Card2},
		{"text", t.Text},
		{"textMuted", t.TextMuted},
		{"textOnColor", t.TextOnColor},
		{"primary", t.Primary},
		{"primaryFg", t.PrimaryFg},
		{"secondary", t.Secondary},
		{"secondaryFg", t.SecondaryFg},
		{"accent", t.Accent},
		{"accentFg", t.AccentFg},
		{"border", t.Border},
		{"ring", t.Ring},
		{"good", t.Good},
		{"goodFg", t.GoodFg},
		{"warn", t.Warn},
		{"warnFg", t.WarnFg},
		{"bad", t.Bad},
		{"badFg", t.BadFg},
	}
}

// swatch renders a truecolor background block for the given hex colour.
func swatch(hex string) string {
	rgb := colour.HexToRGB(hex)
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm      \x1b[0m", rgb.R, rgb.G, rgb.B)
}
