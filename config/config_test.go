package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "propane.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Diagnostics.Color != "auto" {
		t.Errorf("color %q, want auto", cfg.Diagnostics.Color)
	}
	if cfg.Diagnostics.TabWidth != 4 {
		t.Errorf("tab width %d, want 4", cfg.Diagnostics.TabWidth)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("level %q, want warn", cfg.Log.Level)
	}
	if cfg.Build.Jobs != runtime.GOMAXPROCS(0) {
		t.Errorf("jobs %d, want GOMAXPROCS", cfg.Build.Jobs)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[diagnostics]
color = "never"
tab_width = 8

[log]
level = "debug"

[build]
jobs = 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Diagnostics.Color != "never" || cfg.Diagnostics.TabWidth != 8 {
		t.Errorf("diagnostics %+v", cfg.Diagnostics)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "" {
		t.Errorf("log %+v", cfg.Log)
	}
	if cfg.Build.Jobs != 2 {
		t.Errorf("jobs %d, want 2", cfg.Build.Jobs)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[log]\nlevel = \"error\"\n"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Diagnostics.Color != "auto" || cfg.Diagnostics.TabWidth != 4 {
		t.Errorf("defaults not applied: %+v", cfg.Diagnostics)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"unknown key", "[diagnostics]\ncolour = \"never\"\n", "unknown config key"},
		{"bad color", "[diagnostics]\ncolor = \"sometimes\"\n", "diagnostics.color"},
		{"bad tab width", "[diagnostics]\ntab_width = 40\n", "diagnostics.tab_width"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"bad jobs", "[build]\njobs = -1\n", "build.jobs"},
		{"syntax", "[log\n", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatalf("expected error")
			}

			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("got %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PROPANE_CONFIG", writeConfig(t, "[build]\njobs = 3\n"))

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Build.Jobs != 3 {
		t.Errorf("jobs %d, want 3", cfg.Build.Jobs)
	}
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("PROPANE_CONFIG", "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}
