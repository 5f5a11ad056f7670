// Bannersmith - A promotional banner generator
//
// Bannersmith arranges product photographs on a grid over a background,
// adds a caption in per-event colours, and exports the result as WEBP.
//
// Copyright (c) 2026 Mark Whitfield
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/mwhitfield/bannersmith/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
