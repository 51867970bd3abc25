package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "logchain.toml", `
error_log = "/var/log/app/error.txt"
diagnostics = "stdout"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ErrorLog != "/var/log/app/error.txt" {
		t.Errorf("ErrorLog = %q", cfg.ErrorLog)
	}
	if cfg.Diagnostics != "stdout" {
		t.Errorf("Diagnostics = %q", cfg.Diagnostics)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "logchain.yaml", `
error_log: err.log
diagnostics: discard
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ErrorLog != "err.log" {
		t.Errorf("ErrorLog = %q", cfg.ErrorLog)
	}
	if cfg.DiagnosticsWriter() != io.Discard {
		t.Error("DiagnosticsWriter() should be io.Discard")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "empty.toml", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("Load(empty) = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadRejectsBadDiagnostics(t *testing.T) {
	path := writeConfig(t, "bad.toml", `diagnostics = "syslog"`)

	if _, err := Load(path); err == nil {
		t.Error("Load should reject an unsupported diagnostics target")
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeConfig(t, "config.ini", "error_log=x")

	if _, err := Load(path); err == nil {
		t.Error("Load should reject unsupported file types")
	}
}

func TestLoadRejectsExtraYAMLDocument(t *testing.T) {
	path := writeConfig(t, "multi.yaml", "error_log: a\n---\nerror_log: b\n")

	if _, err := Load(path); err == nil {
		t.Error("Load should reject multi-document YAML")
	}
}

func TestDiagnosticsWriter(t *testing.T) {
	tests := []struct {
		target string
		want   io.Writer
	}{
		{"stderr", os.Stderr},
		{"stdout", os.Stdout},
		{"discard", io.Discard},
	}
	for _, tt := range tests {
		cfg := Config{Diagnostics: tt.target}
		if got := cfg.DiagnosticsWriter(); got != tt.want {
			t.Errorf("DiagnosticsWriter(%q) = %v, want %v", tt.target, got, tt.want)
		}
	}
}
