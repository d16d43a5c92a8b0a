package colour

import (
	"fmt"
	"image/color"
	"math"
)

// SampleGrid generates a palette of evenly spaced colours by partitioning
// the RGB cube into a uniform grid and taking the midpoint colour of each
// cell. The grid resolution is the smallest that yields at least count
// cells; surplus cells are discarded positionally, so the enumeration
// order is part of the contract: the red index varies slowest and the
// blue index fastest.
//
// The result is pure and deterministic: the same count always produces
// the same ordered palette. Safe for concurrent use.
func SampleGrid(count int) (*Palette, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: colour count must not be negative, got %d", ErrInvalidArgument, count)
	}
	if count == 0 {
		return NewPalette(nil), nil
	}

	upper := GridResolution(count)
	mids := channelMidpoints(upper)

	colors := make([]color.Color, 0, count)
	for r := 0; r < upper; r++ {
		for g := 0; g < upper; g++ {
			for b := 0; b < upper; b++ {
				if len(colors) == count {
					return NewPalette(colors), nil
				}
				colors = append(colors, color.RGBA{R: mids[r], G: mids[g], B: mids[b], A: 255})
			}
		}
	}
	return NewPalette(colors), nil
}

// GridResolution returns the smallest positive integer whose cube meets
// or exceeds count, i.e. the per-channel subdivision needed for a grid
// of at least count cells. Resolution of a zero count is 1.
func GridResolution(count int) int {
	upper := 1
	for upper*upper*upper < count {
		upper++
	}
	return upper
}

// channelMidpoints returns the midpoint value of each of the upper
// equal-width intervals that partition a single channel's [0, 256) range.
// Midpoints are rounded half away from zero and clamped to 255; the
// clamp only engages at resolutions of 256 and above, where the final
// midpoint would otherwise round out of byte range.
func channelMidpoints(upper int) []uint8 {
	block := 256.0 / float64(upper)

	mids := make([]uint8, upper)
	for i := 0; i < upper; i++ {
		v := math.Round(block*float64(i) + block/2)
		if v > 255 {
			v = 255
		}
		mids[i] = uint8(v)
	}
	return mids
}
