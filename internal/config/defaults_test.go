package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
available_methods = ["telex", "vni"]

[defaults]
method = "vni"
style = "classic"
workers = 4
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Defaults.Method != "vni" || cfg.Defaults.Style != "classic" || cfg.Defaults.Workers != 4 {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	// keys missing from the file keep their fallbacks
	if !cfg.Defaults.Enabled || cfg.Defaults.OutputDir != "output" {
		t.Errorf("fallbacks lost: %+v", cfg.Defaults)
	}
	if len(cfg.AvailableMethods) != 2 {
		t.Errorf("available methods = %v", cfg.AvailableMethods)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[defaults\nmethod ="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed file should fail")
	}
}

func TestUse(t *testing.T) {
	prev := loaded
	defer func() { loaded = prev }()

	Use(&ConfigFile{
		Defaults:         Defaults{Method: "viqr", Workers: 2},
		AvailableMethods: []string{"viqr", "off"},
	})
	if DefaultMethod() != "viqr" || DefaultWorkers() != 2 {
		t.Errorf("accessors ignore Use: %s %d", DefaultMethod(), DefaultWorkers())
	}
	if got := AvailableMethodsStr(); got != "viqr, off" {
		t.Errorf("AvailableMethodsStr() = %q", got)
	}
}
