package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colourgrid/palette/internal/colour"
	"github.com/colourgrid/palette/internal/util"
)

var (
	// Root command flags
	sampleFormat  string
	samplePreview bool
	sampleOutput  string
	sampleNoHash  bool
)

func init() {
	addFormatFlag(rootCmd.Flags(), &sampleFormat, "hex", "output format (hex, rgb, json, table)")
	rootCmd.Flags().BoolVar(&samplePreview, "preview", false, "show colour previews in terminal (hex and rgb formats)")
	rootCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().BoolVar(&sampleNoHash, "no-hash", false, "print hex codes without the # prefix")
}

// runSample executes the root command: sample the colour grid and emit it.
func runSample(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one argument: the number of colours", colour.ErrInvalidArgument)
	}

	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: colour count must be an integer, got %q", colour.ErrInvalidArgument, args[0])
	}

	palette, err := colour.SampleGrid(count)
	if err != nil {
		return err
	}

	logger.Debug("sampled colour grid",
		"count", count,
		"resolution", colour.GridResolution(count))

	output, err := formatPalette(palette, sampleFormat, samplePreview, sampleNoHash)
	if err != nil {
		return err
	}

	if sampleOutput != "" {
		if err := os.WriteFile(sampleOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("wrote palette", "path", sampleOutput, "bytes", len(output))
		return nil
	}

	fmt.Print(output)
	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview, noHash bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview, noHash), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case "table":
		return formatTable(palette, noHash), nil
	default:
		return "", fmt.Errorf("%w: unsupported format: %s (supported: hex, rgb, json, table)", colour.ErrInvalidArgument, format)
	}
}

// formatHex renders one hex code per line, optionally preceded by an
// ANSI colour swatch.
func formatHex(palette *colour.Palette, showPreview, noHash bool) string {
	var sb strings.Builder
	for _, rgb := range palette.ToRGBSlice() {
		if showPreview {
			sb.WriteString(colour.Swatch(rgb, 0))
			sb.WriteString(" ")
		}
		hex := rgb.Hex()
		if noHash {
			hex = util.StripHash(hex)
		}
		sb.WriteString(hex)
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatRGB renders one "rgb(r, g, b)" line per colour.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	var sb strings.Builder
	for _, rgb := range palette.ToRGBSlice() {
		if showPreview {
			sb.WriteString(colour.Swatch(rgb, 0))
			sb.WriteString(" ")
		}
		sb.WriteString(rgb.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatTable renders the palette as an indexed plain-text table.
// Previews are not embedded here: escape sequences would break the
// table's width calculation.
func formatTable(palette *colour.Palette, noHash bool) string {
	table := NewTable([]string{"#", "HEX", "RGB"})
	for i, rgb := range palette.ToRGBSlice() {
		hex := rgb.Hex()
		if noHash {
			hex = util.StripHash(hex)
		}
		table.AddRow([]string{strconv.Itoa(i + 1), hex, rgb.String()})
	}
	return table.Render()
}
