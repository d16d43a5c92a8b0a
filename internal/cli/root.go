// Package cli provides the command-line interface for palette.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/colourgrid/palette/internal/version"
)

// addFormatFlag registers the shared --format flag on a command's flag set.
func addFormatFlag(flags *pflag.FlagSet, target *string, def, usage string) {
	flags.StringVarP(target, "format", "f", def, usage)
}

var (
	// Global verbose flag
	verbose bool

	// logger is shared by all commands; silent unless --verbose is set.
	logger = hclog.NewNullLogger()

	// rootCmd represents the base command; the count argument makes it do
	// the sampling itself rather than delegating to a subcommand.
	rootCmd = &cobra.Command{
		Use:   "palette <count>",
		Short: "A deterministic colour palette generator",
		Long: `Palette generates evenly spaced colour palettes by subdividing the RGB
colour cube into a uniform grid and sampling the midpoint colour of each
cell. The same count always produces the same palette: no randomness, no
image input, just a deterministic partition of colour space.

Examples:
  # Print 8 evenly spaced colours, one hex code per line
  palette 8

  # Preview the colours in the terminal
  palette 16 --preview

  # Emit JSON or a table instead of bare hex codes
  palette 16 --format json
  palette 16 --format table

  # Write the palette to a file
  palette 256 --output palette.txt

Counts must be non-negative integers; invalid counts exit with code 2.
A negative count has to be passed after the flag terminator
(e.g. "palette -- -5") so the flag parser does not consume it.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		Version:      version.Short(),
		RunE:         runSample,
	}
)

// Execute runs the root command and returns its error. Exit-code mapping
// is left to main, which distinguishes invalid-argument failures.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)

	cobra.OnInitialize(initLogger)
}

// initLogger swaps the null logger for a stderr debug logger when
// --verbose is set. Runs after flag parsing, before any RunE.
func initLogger() {
	if verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "palette",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
