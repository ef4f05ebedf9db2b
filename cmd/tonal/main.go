// Tonal - A paired light/dark UI theme generator
//
// Tonal generates paired light and dark colour themes from a seed colour
// or a randomised harmony style, in the OKLCH perceptual colour space.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
