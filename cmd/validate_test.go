package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/lockicon-cli/internal/icon"
	"github.com/AnyUserName/lockicon-cli/internal/manifest"
	"github.com/AnyUserName/lockicon-cli/internal/profile"
)

// generateSet writes a full icon set plus manifest into a temp dir and
// returns the dir and the in-memory manifest.
func generateSet(t *testing.T, profileName string) (string, *manifest.Manifest) {
	t.Helper()
	dir := t.TempDir()
	_, m, err := icon.Run(icon.Config{
		OutputDir: dir,
		Profile:   profile.Get(profileName),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := manifest.WriteJSON(m, filepath.Join(dir, manifest.FileName)); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return dir, m
}

func hasError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidateCleanSet(t *testing.T) {
	dir, m := generateSet(t, "chrome-extension")

	errs := validateManifest(m, dir)
	errs = append(errs, findOrphans(m, dir)...)
	if len(errs) != 0 {
		t.Errorf("clean set reported errors: %v", errs)
	}
}

// The favicon profile emits ICO alongside PNG, so a clean run here covers
// the ICO decode path too.
func TestValidateCleanSetWithICO(t *testing.T) {
	dir, m := generateSet(t, "favicon")

	if errs := validateManifest(m, dir); len(errs) != 0 {
		t.Errorf("clean favicon set reported errors: %v", errs)
	}
}

func TestValidateDetectsCorruptedFile(t *testing.T) {
	dir, m := generateSet(t, "chrome-extension")

	// Flip one byte without changing the file length: only the hash check
	// can catch this.
	path := filepath.Join(dir, "icon16.png")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	data[len(data)-1] ^= 0xff
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	errs := validateManifest(m, dir)
	if !hasError(errs, "hash mismatch") {
		t.Errorf("corruption not detected: %v", errs)
	}
}

func TestValidateDetectsTruncatedFile(t *testing.T) {
	dir, m := generateSet(t, "chrome-extension")

	path := filepath.Join(dir, "icon32.png")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if err := os.Truncate(path, info.Size()-4); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	errs := validateManifest(m, dir)
	if !hasError(errs, "size mismatch") {
		t.Errorf("truncation not detected: %v", errs)
	}
}

func TestValidateDetectsMissingFile(t *testing.T) {
	dir, m := generateSet(t, "chrome-extension")

	if err := os.Remove(filepath.Join(dir, "icon48.png")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	errs := validateManifest(m, dir)
	if !hasError(errs, "file not found") {
		t.Errorf("missing file not detected: %v", errs)
	}
}

func TestValidateDetectsDimensionMismatch(t *testing.T) {
	dir, m := generateSet(t, "chrome-extension")

	// Manifest lies about the recorded dimensions; both the size field
	// check and the decoded-dimension check must fire.
	ic := m.Icons["icon128"]
	ic.Outputs[0].Width = 64
	ic.Outputs[0].Height = 64
	m.Icons["icon128"] = ic

	errs := validateManifest(m, dir)
	if !hasError(errs, "do not match size") {
		t.Errorf("size field mismatch not detected: %v", errs)
	}
	if !hasError(errs, "decoded") {
		t.Errorf("decoded dimension mismatch not detected: %v", errs)
	}
}

func TestValidateDetectsStatsMismatch(t *testing.T) {
	dir, m := generateSet(t, "chrome-extension")

	m.Stats.TotalOutputs++
	m.Stats.TotalBytes += 99

	errs := validateManifest(m, dir)
	if !hasError(errs, "stats.total_outputs mismatch") {
		t.Errorf("output count mismatch not detected: %v", errs)
	}
	if !hasError(errs, "stats.total_bytes mismatch") {
		t.Errorf("byte sum mismatch not detected: %v", errs)
	}
}

func TestValidateDetectsOrphan(t *testing.T) {
	dir, m := generateSet(t, "chrome-extension")

	stray := filepath.Join(dir, "stray.png")
	if err := os.WriteFile(stray, []byte("not really a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	errs := findOrphans(m, dir)
	if !hasError(errs, "orphan file not in manifest: stray.png") {
		t.Errorf("orphan not detected: %v", errs)
	}

	// The manifest itself is not an icon file and must never be flagged.
	if hasError(errs, manifest.FileName) {
		t.Errorf("manifest flagged as orphan: %v", errs)
	}
}
