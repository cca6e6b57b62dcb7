package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeToml(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "modmap.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeToml(t, dir, `
[output]
format = "json"
color = "never"
max_diagnostics = 8

[cache]
enabled = false
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %q", cfg.Output.Format)
	}
	if cfg.Output.Color != "never" {
		t.Errorf("Color = %q", cfg.Output.Color)
	}
	if cfg.Output.MaxDiagnostics != 8 {
		t.Errorf("MaxDiagnostics = %d", cfg.Output.MaxDiagnostics)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled = true")
	}
}

func TestLoadFileDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeToml(t, dir, `
[output]
format = "json"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Output.Color != def.Output.Color {
		t.Errorf("Color = %q, want default %q", cfg.Output.Color, def.Output.Color)
	}
	if cfg.Output.MaxDiagnostics != def.Output.MaxDiagnostics {
		t.Errorf("MaxDiagnostics = %d, want default %d", cfg.Output.MaxDiagnostics, def.Output.MaxDiagnostics)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should default to true")
	}
}

func TestLoadFileRejectsBadFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeToml(t, dir, `
[output]
format = "yaml"
`)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for bad format")
	}
}

func TestLoadFileRejectsBadColor(t *testing.T) {
	dir := t.TempDir()
	path := writeToml(t, dir, `
[output]
color = "rainbow"
`)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for bad color")
	}
}

func TestFindModmapTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	writeToml(t, root, "[output]\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindModmapToml(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("modmap.toml not found")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want file under %q", path, root)
	}
}

func TestLoadWithoutManifest(t *testing.T) {
	cfg, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("unexpected manifest")
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}
