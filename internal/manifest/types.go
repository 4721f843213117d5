package manifest

// Manifest is the top-level record of a lockicon generation run.
type Manifest struct {
	Version     int             `json:"version"`
	GeneratedAt string          `json:"generated_at"`
	Profile     string          `json:"profile"`
	Icons       map[string]Icon `json:"icons"`
	Stats       Stats           `json:"stats"`
}

// Icon describes one rendered glyph size and all its encoded outputs.
type Icon struct {
	Size     int       `json:"size"`
	AvgColor *[3]uint8 `json:"avg_color,omitempty"` // [R,G,B] 0–255, optional
	Outputs  []Output  `json:"outputs"`
}

// Output is one encoded file for an icon size.
type Output struct {
	Format string `json:"format"` // "png", "bmp", "ico"
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Bytes  int64  `json:"bytes"`  // size on disk
	Hash   string `json:"hash"`   // first 16 hex chars of xxhash64
	Path   string `json:"path"`   // relative to the output directory
}

// Stats aggregates run metrics.
type Stats struct {
	TotalIcons   int   `json:"total_icons"`
	TotalOutputs int   `json:"total_outputs"`
	TotalBytes   int64 `json:"total_bytes"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

// FileName is the manifest's filename inside the output directory.
const FileName = "lockicon.manifest.json"
