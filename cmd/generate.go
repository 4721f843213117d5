package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/AnyUserName/lockicon-cli/internal/icon"
	"github.com/AnyUserName/lockicon-cli/internal/manifest"
	"github.com/AnyUserName/lockicon-cli/internal/profile"
	"github.com/spf13/cobra"
)

var (
	genOutDir     string
	genProfile    string
	genSizes      []int
	genFormats    []string
	genNoManifest bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the icon set and write it to the output directory",
	Long: `Renders the padlock glyph at every configured size, encodes each canvas
(PNG by default), and writes the files as icon<size>.<ext>.

Also writes lockicon.manifest.json describing every output, so a later
validate run can check the set without regenerating it.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutDir, "out", "o", "extension/icons", "output directory")
	generateCmd.Flags().StringVarP(&genProfile, "profile", "p", "chrome-extension", "icon profile")
	generateCmd.Flags().IntSliceVar(&genSizes, "sizes", nil, "custom sizes (overrides profile)")
	generateCmd.Flags().StringSliceVar(&genFormats, "formats", nil, "output formats (overrides profile)")
	generateCmd.Flags().BoolVar(&genNoManifest, "no-manifest", false, "skip writing the manifest")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	start := time.Now()

	absOut, err := filepath.Abs(genOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	prof := profile.Get(genProfile)
	logVerbose("output:  %s", absOut)
	logVerbose("profile: %s (sizes=%v, formats=%v)", prof.Name, prof.Sizes, prof.Formats)

	written, m, err := icon.Run(icon.Config{
		OutputDir: absOut,
		Profile:   prof,
		Sizes:     genSizes,
		Formats:   genFormats,
		Verbose:   verbose,
	})
	if err != nil {
		return err
	}

	for _, w := range written {
		fmt.Printf("Created %s\n", w.Name)
	}

	if !genNoManifest {
		if err := manifest.WriteJSON(m, filepath.Join(absOut, manifest.FileName)); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}

	fmt.Println("All icons created successfully!")
	logVerbose("done in %s", time.Since(start).Round(time.Millisecond))
	return nil
}
