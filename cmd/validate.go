package cmd

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/lockicon-cli/internal/hasher"
	"github.com/AnyUserName/lockicon-cli/internal/manifest"
	_ "github.com/sergeymakinen/go-ico"
	"github.com/spf13/cobra"

	_ "golang.org/x/image/bmp"
)

var validateCmd = &cobra.Command{
	Use:   "validate <out_dir_or_manifest>",
	Short: "Validate a generated icon set against its manifest",
	Long: `Reads lockicon.manifest.json and checks every referenced file: it must
exist, re-hash to the recorded content hash, and decode to exactly the
recorded pixel dimensions. Also reports icon files in the directory
that the manifest does not mention.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, manifest.FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	baseDir := filepath.Dir(path)
	errors := validateManifest(&m, baseDir)
	errors = append(errors, findOrphans(&m, baseDir)...)

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d icons, %d outputs — all files present and intact\n",
			m.Stats.TotalIcons, m.Stats.TotalOutputs)
		return nil
	}

	fmt.Printf("  ✗ Icon set has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	for key, ic := range m.Icons {
		if ic.Size <= 0 {
			errs = append(errs, fmt.Sprintf("icon %q: invalid size %d", key, ic.Size))
		}
		if len(ic.Outputs) == 0 {
			errs = append(errs, fmt.Sprintf("icon %q: no outputs", key))
		}

		seenPaths := map[string]bool{}
		for i, o := range ic.Outputs {
			if o.Format == "" {
				errs = append(errs, fmt.Sprintf("icon %q output[%d]: empty format", key, i))
			}
			if o.Width != ic.Size || o.Height != ic.Size {
				errs = append(errs, fmt.Sprintf("icon %q output[%d]: dimensions %dx%d do not match size %d",
					key, i, o.Width, o.Height, ic.Size))
			}
			if o.Hash == "" {
				errs = append(errs, fmt.Sprintf("icon %q output[%d]: missing hash", key, i))
			}
			if o.Path == "" {
				errs = append(errs, fmt.Sprintf("icon %q output[%d]: missing path", key, i))
				continue
			}

			if seenPaths[o.Path] {
				errs = append(errs, fmt.Sprintf("icon %q output[%d]: duplicate path %q", key, i, o.Path))
			}
			seenPaths[o.Path] = true

			fullPath := filepath.Join(baseDir, o.Path)
			errs = append(errs, checkOutputFile(key, i, o, fullPath)...)
		}
	}

	// Verify stats consistency.
	iconCount := len(m.Icons)
	outputCount := 0
	var byteSum int64
	for _, ic := range m.Icons {
		outputCount += len(ic.Outputs)
		for _, o := range ic.Outputs {
			byteSum += o.Bytes
		}
	}
	if m.Stats.TotalIcons != iconCount {
		errs = append(errs, fmt.Sprintf("stats.total_icons mismatch: %d != %d", m.Stats.TotalIcons, iconCount))
	}
	if m.Stats.TotalOutputs != outputCount {
		errs = append(errs, fmt.Sprintf("stats.total_outputs mismatch: %d != %d", m.Stats.TotalOutputs, outputCount))
	}
	if m.Stats.TotalBytes != byteSum {
		errs = append(errs, fmt.Sprintf("stats.total_bytes mismatch: %d != %d", m.Stats.TotalBytes, byteSum))
	}

	return errs
}

// checkOutputFile verifies one referenced file on disk: presence, byte
// size, content hash, and decoded pixel dimensions. All three output
// formats register decoders with the image package.
func checkOutputFile(key string, i int, o manifest.Output, fullPath string) []string {
	var errs []string

	info, err := os.Stat(fullPath)
	if err != nil {
		return []string{fmt.Sprintf("icon %q output[%d]: file not found: %s", key, i, o.Path)}
	}
	if o.Bytes > 0 && info.Size() != o.Bytes {
		errs = append(errs, fmt.Sprintf("icon %q output[%d]: size mismatch: manifest=%d, disk=%d",
			key, i, o.Bytes, info.Size()))
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return append(errs, fmt.Sprintf("icon %q output[%d]: open: %v", key, i, err))
	}
	defer f.Close()

	if o.Hash != "" {
		got, err := hasher.ContentHashReader(f, len(o.Hash))
		if err != nil {
			return append(errs, fmt.Sprintf("icon %q output[%d]: hash: %v", key, i, err))
		}
		if got != o.Hash {
			errs = append(errs, fmt.Sprintf("icon %q output[%d]: hash mismatch: manifest=%s, disk=%s",
				key, i, o.Hash, got))
		}
	}

	if o.Format == "png" || o.Format == "bmp" || o.Format == "ico" {
		if _, err := f.Seek(0, 0); err != nil {
			return append(errs, fmt.Sprintf("icon %q output[%d]: seek: %v", key, i, err))
		}
		cfg, _, err := image.DecodeConfig(f)
		if err != nil {
			errs = append(errs, fmt.Sprintf("icon %q output[%d]: decode: %v", key, i, err))
		} else if cfg.Width != o.Width || cfg.Height != o.Height {
			errs = append(errs, fmt.Sprintf("icon %q output[%d]: decoded %dx%d, manifest says %dx%d",
				key, i, cfg.Width, cfg.Height, o.Width, o.Height))
		}
	}

	return errs
}

// findOrphans lists icon files in the output directory that no manifest
// entry references. A clean regeneration never leaves orphans behind.
func findOrphans(m *manifest.Manifest, baseDir string) []string {
	referenced := map[string]bool{}
	for _, ic := range m.Icons {
		for _, o := range ic.Outputs {
			referenced[filepath.ToSlash(o.Path)] = true
		}
	}

	iconExtensions := map[string]bool{
		".png": true,
		".bmp": true,
		".ico": true,
	}

	var errs []string
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return []string{fmt.Sprintf("scan output dir: %v", err)}
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !iconExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		if !referenced[name] {
			errs = append(errs, fmt.Sprintf("orphan file not in manifest: %s", name))
		}
	}
	return errs
}
