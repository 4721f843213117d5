package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/lockicon-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a generated icon set",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for manifest inside.
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

	printStats(&m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", m.Profile)
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total icons:      %d\n", s.TotalIcons)
	fmt.Printf("  Total outputs:    %d\n", s.TotalOutputs)
	fmt.Printf("  Total size:       %s\n", formatBytes(s.TotalBytes))
	fmt.Println()

	// Per-format breakdown.
	formatStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, ic := range m.Icons {
		for _, o := range ic.Outputs {
			fs := formatStats[o.Format]
			fs.count++
			fs.bytes += o.Bytes
			formatStats[o.Format] = fs
		}
	}

	fmt.Println("  Format breakdown:")
	for _, f := range []string{"png", "bmp", "ico"} {
		if fs, ok := formatStats[f]; ok {
			fmt.Printf("    %-4s  %4d files  %s\n", f, fs.count, formatBytes(fs.bytes))
		}
	}
	fmt.Println()

	// Per-size breakdown.
	sizeStats := map[int]int64{}
	for _, ic := range m.Icons {
		for _, o := range ic.Outputs {
			sizeStats[ic.Size] += o.Bytes
		}
	}
	var sizes []int
	for s := range sizeStats {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	fmt.Println("  Size breakdown:")
	for _, s := range sizes {
		fmt.Printf("    %5dpx  %s\n", s, formatBytes(sizeStats[s]))
	}
	fmt.Println()

	// Warnings.
	var warnings []string
	for key, ic := range m.Icons {
		if len(ic.Outputs) == 0 {
			warnings = append(warnings, fmt.Sprintf("icon %q has no outputs", key))
		}
	}
	if len(warnings) > 0 {
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
		fmt.Println()
	}
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
