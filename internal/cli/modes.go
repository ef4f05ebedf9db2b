package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
)

// newModesCmd builds the modes command, which lists the harmony modes and
// the hue offsets each applies to the base hue.
func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the available harmony modes",
		Long: `List the available harmony modes.

Each mode places the five coloured roles (primary, secondary, accent, good,
bad) at fixed hue offsets from the base hue, and scales chroma by a
per-mode variance factor. The "random" mode picks one of the non-monochrome
modes from the seed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := NewTable([]string{"Mode", "Hue offsets", "Chroma variance"})
			for _, mode := range colour.Modes() {
				cfg := colour.Harmony(mode)
				offsets := ""
				for i, o := range cfg.Offsets {
					if i > 0 {
						offsets += ", "
					}
					offsets += fmt.Sprintf("%g", o)
				}
				table.AddRow([]string{string(mode), offsets, fmt.Sprintf("%.2f", cfg.ChromaVariance)})
			}
			table.AddRow([]string{string(colour.ModeRandom), "seeded pick of a mode above", "-"})
			cmd.Print(table.Render())
			return nil
		},
	}
}
