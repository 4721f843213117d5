package icon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/lockicon-cli/internal/encoder"
	"github.com/AnyUserName/lockicon-cli/internal/hasher"
	"github.com/AnyUserName/lockicon-cli/internal/manifest"
	"github.com/AnyUserName/lockicon-cli/internal/profile"
)

// Config holds all parameters for a generation run.
type Config struct {
	OutputDir string
	Profile   profile.Profile
	Sizes     []int    // overrides profile sizes when non-empty
	Formats   []string // overrides profile formats when non-empty
	Verbose   bool
}

// Result reports one file written during a run.
type Result struct {
	Name string // base filename, e.g. "icon16.png"
	Size int
	Path string // absolute path on disk
}

// Run renders every configured size in order and writes each encoded
// output, overwriting any existing file. Each canvas lives only for its
// own iteration; nothing is shared across sizes. Returns the written
// files in order plus the populated manifest.
func Run(cfg Config) ([]Result, *manifest.Manifest, error) {
	registry := encoder.NewRegistry()
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[lockicon] %s\n", registry.String())
	}

	formats := cfg.Profile.Formats
	if len(cfg.Formats) > 0 {
		formats = cfg.Formats
	}
	resolved := registry.Resolve(formats)
	if len(resolved) == 0 {
		return nil, nil, fmt.Errorf("no usable output formats (requested %v)", formats)
	}

	sizes := cfg.Profile.EffectiveSizes(cfg.Sizes)
	if len(sizes) == 0 {
		return nil, nil, fmt.Errorf("no sizes to render")
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output dir: %w", err)
	}

	m := manifest.New(cfg.Profile.Name)
	var written []Result
	for _, size := range sizes {
		img := Render(size, cfg.Profile)
		avg := AvgColor(img)
		entry := manifest.Icon{Size: size, AvgColor: &avg}

		for _, format := range resolved {
			enc := registry.Get(format)
			if enc == nil {
				continue
			}

			data, err := enc.Encode(img)
			if err != nil {
				return written, nil, fmt.Errorf("encode icon%d as %s: %w", size, format, err)
			}

			name := fmt.Sprintf("icon%d.%s", size, enc.Extension())
			outPath := filepath.Join(cfg.OutputDir, name)
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return written, nil, fmt.Errorf("write %s: %w", name, err)
			}

			entry.Outputs = append(entry.Outputs, manifest.Output{
				Format: format,
				Width:  size,
				Height: size,
				Bytes:  int64(len(data)),
				Hash:   hasher.ContentHash(data, 16),
				Path:   name,
			})
			written = append(written, Result{Name: name, Size: size, Path: outPath})

			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[lockicon] wrote %s (%d bytes)\n", name, len(data))
			}
		}

		m.Icons[fmt.Sprintf("icon%d", size)] = entry
	}

	m.ComputeStats()
	return written, m, nil
}
