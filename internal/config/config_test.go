package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[diagnostics]\nmax = 5\ncolor = \"off\"\n\n[analyze]\njobs = 3\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Diagnostics.Max != 5 || cfg.Diagnostics.Color != "off" || cfg.Analyze.Jobs != 3 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Diagnostics.PathMode != "auto" {
		t.Fatalf("unset key must keep its default, got %q", cfg.Diagnostics.PathMode)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q", cfg.Path)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[diagnostics]\nmax = 1\nverbose = true\n[extra]\nx = 1\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unknown keys: diagnostics.verbose, extra, extra.x") {
		t.Fatalf("error = %v", err)
	}
}

func TestLoadValidates(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[diagnostics]\ncolor = \"sometimes\"\nmax = -1\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"[diagnostics].max", "[diagnostics].color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadBadSyntax(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[diagnostics\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse TOML") {
		t.Fatalf("error = %v", err)
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[analyze]\njobs = 2\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Analyze.Jobs != 2 || filepath.Dir(cfg.Path) != root {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}
