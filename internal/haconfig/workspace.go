package haconfig

// workspace.go: the managed output directory of generated area files.
//
// Directory layout:
//
//	<dir>/
//	    <normalized_area>.yaml    # one generated document per area

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultOutputDir is used when neither the settings file nor the --output
// flag names a directory.
const DefaultOutputDir = "generated_configs"

// Workspace is an output directory holding generated area files.
type Workspace struct {
	Dir string
}

// OpenWorkspace opens dir, creating it if needed.
func OpenWorkspace(dir string) (*Workspace, error) {
	if dir == "" {
		dir = DefaultOutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Workspace{Dir: dir}, nil
}

// Path returns the file path for a normalized area name.
func (w *Workspace) Path(normalized string) string {
	return filepath.Join(w.Dir, normalized+".yaml")
}

// WriteArea validates and writes the document, returning the file path.
func (w *Workspace) WriteArea(normalized string, cfg AreaConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return "", err
	}
	path := w.Path(normalized)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// AreaInfo summarizes one generated area file.
type AreaInfo struct {
	Name          string // area display name (document key)
	File          string // file name inside the workspace
	TemplateItems int
	InputNumbers  int
	InputBooleans int
}

// List reads back every *.yaml in the workspace and summarizes it. Files
// that fail to parse are skipped with their name still listed. Results are
// sorted by file name.
func (w *Workspace) List() ([]AreaInfo, error) {
	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read output dir: %w", err)
	}
	var infos []AreaInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		info := AreaInfo{File: e.Name()}
		data, err := os.ReadFile(filepath.Join(w.Dir, e.Name()))
		if err == nil {
			summarizeArea(data, &info)
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].File < infos[j].File })
	return infos, nil
}

// Remove deletes a generated area file. Errors if it does not exist.
func (w *Workspace) Remove(normalized string) error {
	path := w.Path(normalized)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("area %q not found in %s", normalized, w.Dir)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// summarizeArea fills info from a generated document. Unparseable content
// leaves the counts at zero.
func summarizeArea(data []byte, info *AreaInfo) {
	var doc map[string]AreaBody
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return
	}
	for name, body := range doc {
		info.Name = name
		info.TemplateItems = len(body.Template)
		if body.InputNumber != nil {
			info.InputNumbers = body.InputNumber.Len()
		}
		if body.InputBoolean != nil {
			info.InputBooleans = body.InputBoolean.Len()
		}
	}
}
