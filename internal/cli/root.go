// Package cli provides the command-line interface for Tonal.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached. A fresh
// command tree per call keeps flag state isolated, which matters for tests.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tonal",
		Short: "A paired light/dark UI theme generator",
		Long: `Tonal generates paired light and dark UI colour themes from a seed colour
or a randomised harmony style, using the OKLCH perceptual colour space to
guarantee contrast, harmony, and accessibility.

Every generation is seeded and deterministic: the same seed, mode and slider
values always reproduce the same palette in both modes.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newModesCmd())

	return rootCmd
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version.String())
		},
	}
}
