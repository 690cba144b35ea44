// SPDX-License-Identifier: EPL-2.0

// Command ddsgen renders a DDS oscillator tone to a 16-bit mono WAV file.
//
//	ddsgen --wave triangle --note A4 --duration 2s --output a4.wav
//	ddsgen --table cycle.wav --resolution 16x1024 --freq 110 -o bass.wav
//
// Every flag can also be set through its DDSGEN_* environment variable.
package main

import (
	"log/slog"
	"os"
)

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error rendering tone", "error", err)
		os.Exit(1)
	}
}
