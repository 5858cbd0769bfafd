package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest carries per-repository overrides for the external test
// runner, read from a report.yaml placed next to the tracking
// document. Every field is optional; zero values mean "use the flag
// default".
type Manifest struct {
	Project      string `yaml:"project"`
	FilterPrefix string `yaml:"filter_prefix"`
	DotnetBinary string `yaml:"dotnet_binary"`
}

// LoadManifest reads the manifest at path. A missing file is not an
// error and yields the zero manifest; a file that exists but fails to
// parse is a configuration error.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Manifest{}, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return m, nil
}
