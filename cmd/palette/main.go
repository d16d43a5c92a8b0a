// Palette - a deterministic colour palette generator
//
// Palette partitions the RGB colour cube into an evenly spaced grid and
// emits the midpoint colour of each cell, along with hex/RGB conversion
// helpers.
package main

import (
	"errors"
	"os"

	"github.com/colourgrid/palette/internal/cli"
	"github.com/colourgrid/palette/internal/colour"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Invalid counts and malformed colours exit 2 per the CLI
		// contract; everything else exits 1.
		if errors.Is(err, colour.ErrInvalidArgument) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
