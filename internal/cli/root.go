// Package cli provides the command-line interface for Bannersmith.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/mwhitfield/bannersmith/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bannersmith",
	Short: "Compose promotional product banners",
	Long: `Bannersmith composes promotional banner images: product photographs
arranged on a grid over a background, with a decorative spacer line and
a caption coloured by a per-event scheme, exported as WEBP.

Source photographs are TIF files named {item}.tif in the configured
image directory (TIF_PATH or --image-dir).`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// NewRootCmd returns the root command with all subcommands attached.
// This is called by main.main().
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(serveCmd)
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

// newLogger builds the logger for a command, honouring the global
// --verbose and --quiet flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	if quiet {
		level = hclog.Error
	}
	if verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "bannersmith",
		Level:  level,
		Output: os.Stderr,
	})
}
