package manifest

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty manifest with defaults.
func New(profileName string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
		Icons:       make(map[string]Icon),
	}
}

// ComputeStats recalculates aggregate statistics from icons.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalIcons = len(m.Icons)
	for _, ic := range m.Icons {
		s.TotalOutputs += len(ic.Outputs)
		for _, o := range ic.Outputs {
			s.TotalBytes += o.Bytes
		}
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
