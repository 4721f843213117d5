package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lockicon",
	Short: "Procedural padlock icon generator for browser extensions",
	Long: `lockicon — renders the extension's padlock glyph straight from geometry
instead of shipping checked-in PNGs.

Generates the full icon set (16/32/48/128 by default), content-hashed
and described by a manifest so packaging scripts can verify what shipped.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"lockicon %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[lockicon] "+format+"\n", args...)
	}
}
