package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colourgrid/palette/internal/colour"
)

var (
	// Convert command flags
	convertFormat string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <colour>",
	Short: "Convert a colour between hex and RGB forms",
	Long: `Convert a single colour between its hex and RGB representations.

Accepts either a hex string (with or without the leading #) or a
comma-separated RGB triple. By default a hex input prints the RGB form
and an RGB input prints the hex form; --format forces a specific output.

Examples:
  # Hex to RGB
  palette convert '#ff0080'

  # RGB to hex
  palette convert 255,0,128

  # Force JSON output for either input form
  palette convert ff0080 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	addFormatFlag(convertCmd.Flags(), &convertFormat, "", "output format (hex, rgb, json; default: the opposite form)")
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	spec := args[0]

	var (
		rgb     colour.RGB
		fromHex bool
		err     error
	)
	if strings.Contains(spec, ",") {
		rgb, err = parseTriple(spec)
	} else {
		fromHex = true
		rgb, err = colour.ParseHex(spec)
	}
	if err != nil {
		return err
	}

	logger.Debug("converted colour", "input", spec, "hex", rgb.Hex())

	format := convertFormat
	if format == "" {
		if fromHex {
			format = "rgb"
		} else {
			format = "hex"
		}
	}

	output, err := formatColour(rgb, format)
	if err != nil {
		return err
	}

	fmt.Println(output)
	return nil
}

// formatColour formats a single colour according to the specified format.
func formatColour(rgb colour.RGB, format string) (string, error) {
	switch format {
	case "hex":
		return rgb.Hex(), nil
	case "rgb":
		return rgb.String(), nil
	case "json":
		data, err := json.MarshalIndent(colour.ColorJSON{Hex: rgb.Hex(), RGB: rgb}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal colour: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: unsupported format: %s (supported: hex, rgb, json)", colour.ErrInvalidArgument, format)
	}
}

// parseTriple parses a comma-separated "r,g,b" channel triple.
func parseTriple(spec string) (colour.RGB, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return colour.RGB{}, fmt.Errorf("%w: expected three comma-separated channels, got %d", colour.ErrInvalidArgument, len(parts))
	}

	var channels [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return colour.RGB{}, fmt.Errorf("%w: invalid channel %q", colour.ErrInvalidArgument, part)
		}
		channels[i] = v
	}

	return colour.NewRGB(channels[0], channels[1], channels[2])
}
