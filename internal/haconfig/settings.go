package haconfig

// settings.go: optional tool configuration from .areagen/settings.yaml.
//
// The file is looked up relative to the working directory. All fields are
// optional; a missing file is not an error.

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds configuration from .areagen/settings.yaml.
type Settings struct {
	// OutputDir overrides the default generated_configs directory.
	OutputDir string `yaml:"output_dir"`
}

// LoadSettings reads .areagen/settings.yaml relative to root.
// Returns nil (not an error) if the file does not exist.
func LoadSettings(root string) (*Settings, error) {
	path := filepath.Join(root, ".areagen", "settings.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &s, nil
}

// ResolveOutputDir picks the output directory: an explicit flag wins, then
// the settings file, then the default. Safe to call on a nil receiver.
func (s *Settings) ResolveOutputDir(flag string) string {
	if flag != "" {
		return flag
	}
	if s != nil && s.OutputDir != "" {
		return s.OutputDir
	}
	return DefaultOutputDir
}
