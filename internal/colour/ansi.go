package colour

import (
	"fmt"
	"math"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"

	defaultSwatchWidth = 8
)

// Swatch returns a solid ANSI truecolor block for a colour.
// Width is the block width in characters; non-positive widths use the
// default.
func Swatch(rgb RGB, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithLabel returns a colour block with centred text overlaid.
// The text colour is black on light backgrounds and white on dark ones,
// chosen by relative luminance.
func SwatchWithLabel(rgb RGB, label string, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}

	var fg RGB
	if Luminance(rgb) <= 0.5 {
		fg = RGB{R: 255, G: 255, B: 255}
	}

	if len(label) > width {
		label = label[:width]
	} else if len(label) < width {
		left := (width - len(label)) / 2
		label = strings.Repeat(" ", left) + label + strings.Repeat(" ", width-len(label)-left)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	text := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)
	return bg + text + label + ansiReset
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
