package cmd

import (
	"fmt"
	"image"
	"image/color"

	"github.com/AnyUserName/lockicon-cli/internal/icon"
	"github.com/AnyUserName/lockicon-cli/internal/profile"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
)

var (
	sheetOut     string
	sheetProfile string
	sheetPad     int
	sheetZoom    int
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render a preview strip of every icon size",
	Long: `Renders the glyph at every profile size and pastes the results onto a
single horizontal strip, bottom-aligned on a neutral background. Handy
for eyeballing how the geometry holds up at small sizes.`,
	Args: cobra.NoArgs,
	RunE: runSheet,
}

func init() {
	sheetCmd.Flags().StringVarP(&sheetOut, "out", "o", "preview.png", "output file")
	sheetCmd.Flags().StringVarP(&sheetProfile, "profile", "p", "chrome-extension", "icon profile")
	sheetCmd.Flags().IntVar(&sheetPad, "pad", 8, "padding between icons in pixels")
	sheetCmd.Flags().IntVar(&sheetZoom, "zoom", 1, "integer upscale factor (nearest neighbor)")
	rootCmd.AddCommand(sheetCmd)
}

func runSheet(_ *cobra.Command, _ []string) error {
	prof := profile.Get(sheetProfile)
	sizes := prof.EffectiveSizes(nil)
	if len(sizes) == 0 {
		return fmt.Errorf("profile %q has no sizes", prof.Name)
	}

	pad := sheetPad
	if pad < 0 {
		pad = 0
	}

	totalW := pad
	maxH := 0
	for _, s := range sizes {
		totalW += s + pad
		if s > maxH {
			maxH = s
		}
	}

	gray := color.NRGBA{R: 238, G: 238, B: 238, A: 255}
	canvas := imaging.New(totalW, maxH+2*pad, gray)

	x := pad
	for _, s := range sizes {
		img := icon.Render(s, prof)
		canvas = imaging.Paste(canvas, img, image.Pt(x, pad+maxH-s))
		x += s + pad
	}

	if sheetZoom > 1 {
		b := canvas.Bounds()
		canvas = imaging.Resize(canvas, b.Dx()*sheetZoom, b.Dy()*sheetZoom, imaging.NearestNeighbor)
	}

	if err := imaging.Save(canvas, sheetOut); err != nil {
		return fmt.Errorf("save sheet: %w", err)
	}

	logVerbose("sheet: %d icons, %dx%d", len(sizes), totalW, maxH+2*pad)
	fmt.Printf("Preview written to %s\n", sheetOut)
	return nil
}
