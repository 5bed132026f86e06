package haconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil settings for missing file, got %+v", s)
	}
}

func TestLoadSettings(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".areagen")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "output_dir: /tmp/ha-areas\n"
	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(root)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s == nil || s.OutputDir != "/tmp/ha-areas" {
		t.Errorf("settings = %+v", s)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".areagen")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(":\n\t:"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(root); err == nil {
		t.Error("expected error for malformed settings")
	}
}

func TestResolveOutputDir(t *testing.T) {
	tests := []struct {
		name string
		s    *Settings
		flag string
		want string
	}{
		{"flag wins", &Settings{OutputDir: "from_settings"}, "from_flag", "from_flag"},
		{"settings next", &Settings{OutputDir: "from_settings"}, "", "from_settings"},
		{"default", &Settings{}, "", DefaultOutputDir},
		{"nil receiver", nil, "", DefaultOutputDir},
		{"nil receiver with flag", nil, "from_flag", "from_flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.ResolveOutputDir(tt.flag); got != tt.want {
				t.Errorf("ResolveOutputDir(%q) = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}
}
